package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/andreasstove999/fresh-market/internal/contracts"
)

const CheckoutCompletedQueue = "checkout.completed"

// Publisher emits the CheckoutCompleted event at the end of a checkout.
type Publisher interface {
	PublishCheckoutCompleted(ctx context.Context, payload contracts.CheckoutCompletedPayload) error
	Close() error
}

// RabbitPublisher publishes enveloped events to a durable queue. It owns one
// channel on the shared connection.
type RabbitPublisher struct {
	ch   *amqp.Channel
	seqs *Sequences
}

func NewRabbitPublisher(conn *amqp.Connection, seqs *Sequences) (*RabbitPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}

	// Declare the queue so publish never fails due to missing infra
	_, err = ch.QueueDeclare(CheckoutCompletedQueue, true, false, false, false, nil)
	if err != nil {
		return nil, fmt.Errorf("declare %s: %w", CheckoutCompletedQueue, err)
	}

	return &RabbitPublisher{ch: ch, seqs: seqs}, nil
}

func (p *RabbitPublisher) Close() error {
	return p.ch.Close()
}

func (p *RabbitPublisher) PublishCheckoutCompleted(ctx context.Context, payload contracts.CheckoutCompletedPayload) error {
	seq, err := p.seqs.NextSequence(ctx, payload.SessionID)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	env := contracts.BuildCheckoutCompletedEvent(payload, contracts.EnvelopeOptions{
		PartitionKey: payload.SessionID,
		Sequence:     seq,
	})

	body, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", contracts.CheckoutCompletedEventName, err)
	}

	pubCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	return p.ch.PublishWithContext(
		pubCtx,
		"",                     // default exchange
		CheckoutCompletedQueue, // queue name as routing key
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
}

// NoopPublisher drops events when no broker is configured. The storefront
// stays fully usable without messaging infrastructure.
type NoopPublisher struct {
	Logger *log.Logger
}

func (n *NoopPublisher) PublishCheckoutCompleted(ctx context.Context, payload contracts.CheckoutCompletedPayload) error {
	if n.Logger != nil {
		n.Logger.Printf("event publishing disabled, dropping %s for session %s", contracts.CheckoutCompletedEventName, payload.SessionID)
	}
	return nil
}

func (n *NoopPublisher) Close() error { return nil }
