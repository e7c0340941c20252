package offers

import (
	"fmt"

	"github.com/andreasstove999/fresh-market/internal/catalog"
)

type StatusKind string

const (
	StatusActive    StatusKind = "active"
	StatusProgress  StatusKind = "progress"
	StatusAvailable StatusKind = "available"
)

// Status classifies how far a product is from its offer's next free tier.
type Status struct {
	OfferID string     `json:"offerId"`
	Kind    StatusKind `json:"kind"`
	Text    string     `json:"text"`
}

// StatusFor reports the offer status for a product at its current cart
// quantity: active when the threshold is met (with the granted free count),
// progress when partway there (with how many more units reach the next
// tier), available when the offer exists but nothing is in the cart yet.
// The threshold arithmetic is the same floor/modulo used by
// ComputeCartDetails, so status and discount always agree.
func (e *Engine) StatusFor(p catalog.Product, quantity int) []Status {
	statuses := []Status{}
	for _, r := range e.rules {
		if !nameMatches(p.Name, r.Triggers) {
			continue
		}

		switch {
		case quantity >= r.Threshold:
			statuses = append(statuses, Status{
				OfferID: r.ID,
				Kind:    StatusActive,
				Text:    fmt.Sprintf(r.ActiveFormat, quantity/r.Threshold),
			})
		case quantity > 0:
			needed := r.Threshold - quantity%r.Threshold
			statuses = append(statuses, Status{
				OfferID: r.ID,
				Kind:    StatusProgress,
				Text:    fmt.Sprintf(r.ProgressFormat, needed),
			})
		default:
			statuses = append(statuses, Status{
				OfferID: r.ID,
				Kind:    StatusAvailable,
				Text:    r.AvailableText,
			})
		}
	}
	return statuses
}
