package offers

// Rule is a fixed promotional policy: buying Threshold units of a trigger
// product grants floor(quantity/Threshold) free units of a reward product.
// With no CompanionTriggers the reward is the trigger product itself;
// otherwise the reward is the first catalog product matching a companion
// trigger, in catalog order.
//
// Trigger matching is configured as case-insensitive name substrings and
// resolved against concrete product ids at catalog load, so the evaluation
// itself works on explicit id sets rather than ad-hoc string checks.
type Rule struct {
	ID                string
	Triggers          []string
	Threshold         int
	CompanionTriggers []string

	// Display strings. OfferFormat and ActiveFormat take the free quantity,
	// ProgressFormat takes how many more units reach the next tier.
	Reason         string
	OfferFormat    string
	ActiveFormat   string
	ProgressFormat string
	AvailableText  string
}

// DefaultRules returns the storefront's two promotional rules.
func DefaultRules() []Rule {
	return []Rule{
		{
			ID:             "coca-cola-offer",
			Triggers:       []string{"coca", "coke", "cola"},
			Threshold:      6,
			Reason:         "Buy 6 Coca-Cola, get 1 free",
			OfferFormat:    "Buy 6 Coca-Cola, get %d free",
			ActiveFormat:   "%d FREE items applied!",
			ProgressFormat: "Buy %d more for 1 FREE",
			AvailableText:  "Buy 6, get 1 FREE",
		},
		{
			ID:                "croissant-coffee-offer",
			Triggers:          []string{"croissant"},
			Threshold:         3,
			CompanionTriggers: []string{"coffee", "espresso", "cappuccino"},
			Reason:            "Buy 3 croissants, get free coffee",
			OfferFormat:       "Buy 3 croissants, get %d free coffee",
			ActiveFormat:      "%d FREE coffee applied!",
			ProgressFormat:    "Buy %d more for FREE coffee",
			AvailableText:     "Buy 3, get FREE coffee",
		},
	}
}
