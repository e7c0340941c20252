package contracts

import (
	"time"

	"github.com/google/uuid"
)

const (
	CheckoutCompletedEventName           = "CheckoutCompleted"
	CheckoutCompletedEventVersion        = 1
	CheckoutCompletedEnvelopedSchemaPath = "contracts/events/checkout/CheckoutCompleted.v1.enveloped.schema.json"
	StorefrontProducer                   = "storefront-service"
)

type EventEnvelope struct {
	EventName     string                   `json:"eventName"`
	EventVersion  int                      `json:"eventVersion"`
	EventID       string                   `json:"eventId"`
	CorrelationID string                   `json:"correlationId,omitempty"`
	CausationID   string                   `json:"causationId,omitempty"`
	Producer      string                   `json:"producer"`
	PartitionKey  string                   `json:"partitionKey"`
	Sequence      int64                    `json:"sequence"`
	OccurredAt    time.Time                `json:"occurredAt"`
	Schema        string                   `json:"schema"`
	Payload       CheckoutCompletedPayload `json:"payload"`
}

type CheckoutCompletedPayload struct {
	SessionID     string         `json:"sessionId"`
	Lines         []CheckoutLine `json:"lines"`
	FreeItems     []FreeLine     `json:"freeItems"`
	Subtotal      float64        `json:"subtotal"`
	TotalDiscount float64        `json:"totalDiscount"`
	TotalAmount   float64        `json:"totalAmount"`
	Timestamp     time.Time      `json:"timestamp"`
}

type CheckoutLine struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

type FreeLine struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	OfferID   string `json:"offerId"`
}

type EnvelopeOptions struct {
	PartitionKey  string
	Sequence      int64
	Producer      string
	SchemaPath    string
	CorrelationID string
	CausationID   string
	EventID       string
	OccurredAt    time.Time
}

// BuildCheckoutCompletedEvent wraps a payload in the versioned envelope shared
// with downstream consumers. Zero-valued options get sensible defaults; the
// payload timestamp mirrors occurredAt when unset.
func BuildCheckoutCompletedEvent(payload CheckoutCompletedPayload, opts EnvelopeOptions) EventEnvelope {
	eventID := opts.EventID
	if eventID == "" {
		eventID = uuid.NewString()
	}

	occurredAt := opts.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now().UTC()
	}

	schemaPath := opts.SchemaPath
	if schemaPath == "" {
		schemaPath = CheckoutCompletedEnvelopedSchemaPath
	}

	producer := opts.Producer
	if producer == "" {
		producer = StorefrontProducer
	}

	if payload.Timestamp.IsZero() {
		payload.Timestamp = occurredAt
	}

	return EventEnvelope{
		EventName:     CheckoutCompletedEventName,
		EventVersion:  CheckoutCompletedEventVersion,
		EventID:       eventID,
		CorrelationID: opts.CorrelationID,
		CausationID:   opts.CausationID,
		Producer:      producer,
		PartitionKey:  opts.PartitionKey,
		Sequence:      opts.Sequence,
		OccurredAt:    occurredAt,
		Schema:        schemaPath,
		Payload:       payload,
	}
}
