package offers

import (
	"fmt"
	"math"
	"strings"

	"github.com/andreasstove999/fresh-market/internal/catalog"
)

// Engine evaluates promotional rules over a catalog and a cart. It holds no
// state beyond its rule set; ComputeCartDetails is a pure function of its
// arguments and is recomputed on every read.
type Engine struct {
	rules []Rule
}

func NewEngine(rules ...Rule) *Engine {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &Engine{rules: rules}
}

// FreeItem is a zero-priced addition derived from an offer, referencing the
// rewarded product.
type FreeItem struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
	OfferID  string          `json:"offerId"`
	Reason   string          `json:"reason"`
}

type AppliedOffer struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Discount    float64 `json:"discount"`
}

type CartDetails struct {
	Subtotal      float64        `json:"subtotal"`
	TotalDiscount float64        `json:"totalDiscount"`
	Total         float64        `json:"total"`
	FreeItems     []FreeItem     `json:"freeItems"`
	AppliedOffers []AppliedOffer `json:"appliedOffers"`
}

// resolvedRule binds a rule to the concrete products qualifying for it in the
// current catalog: the set of trigger product ids and, for companion rules,
// the rewarded product (first match in catalog order).
type resolvedRule struct {
	rule      Rule
	qualified map[string]bool
	companion *catalog.Product
}

func (e *Engine) resolve(products []catalog.Product) []resolvedRule {
	resolved := make([]resolvedRule, 0, len(e.rules))
	for _, r := range e.rules {
		rr := resolvedRule{rule: r, qualified: make(map[string]bool)}
		for _, p := range products {
			if nameMatches(p.Name, r.Triggers) {
				rr.qualified[p.ID] = true
			}
		}
		if len(r.CompanionTriggers) > 0 {
			for i := range products {
				if nameMatches(products[i].Name, r.CompanionTriggers) {
					rr.companion = &products[i]
					break
				}
			}
		}
		resolved = append(resolved, rr)
	}
	return resolved
}

// reward returns the product a rule grants for trigger product p, or false
// when the rule cannot grant anything (companion missing from the catalog).
func (rr *resolvedRule) reward(p catalog.Product) (catalog.Product, bool) {
	if len(rr.rule.CompanionTriggers) == 0 {
		return p, true
	}
	if rr.companion == nil {
		return catalog.Product{}, false
	}
	return *rr.companion, true
}

// ComputeCartDetails derives subtotal, discount, free items and final total
// for the given cart. Cart entries whose product id does not resolve in the
// catalog are silently skipped. Rules are evaluated in fixed order,
// independently per cart entry: two distinct cola products each produce their
// own offer instance. The total never goes negative.
func (e *Engine) ComputeCartDetails(products []catalog.Product, cart map[string]int) CartDetails {
	details := CartDetails{
		FreeItems:     []FreeItem{},
		AppliedOffers: []AppliedOffer{},
	}

	for _, p := range products {
		qty := cart[p.ID]
		if qty <= 0 {
			continue
		}
		details.Subtotal += catalog.NormalizePrice(p.Price) * float64(qty)
	}

	resolved := e.resolve(products)

	// Iterating the catalog slice keeps offer output order deterministic.
	for _, p := range products {
		qty := cart[p.ID]
		if qty <= 0 {
			continue
		}
		for i := range resolved {
			rr := &resolved[i]
			if !rr.qualified[p.ID] {
				continue
			}
			free := qty / rr.rule.Threshold
			if free == 0 {
				continue
			}
			reward, ok := rr.reward(p)
			if !ok {
				continue
			}
			discount := catalog.NormalizePrice(reward.Price) * float64(free)
			details.TotalDiscount += discount
			details.FreeItems = append(details.FreeItems, FreeItem{
				Product:  reward,
				Quantity: free,
				OfferID:  rr.rule.ID,
				Reason:   rr.rule.Reason,
			})
			details.AppliedOffers = append(details.AppliedOffers, AppliedOffer{
				ID:          rr.rule.ID,
				Description: fmt.Sprintf(rr.rule.OfferFormat, free),
				Discount:    discount,
			})
		}
	}

	details.Total = math.Max(0, details.Subtotal-details.TotalDiscount)
	return details
}

func nameMatches(name string, triggers []string) bool {
	lower := strings.ToLower(name)
	for _, t := range triggers {
		if strings.Contains(lower, t) {
			return true
		}
	}
	return false
}
