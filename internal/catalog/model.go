package catalog

const (
	CategoryAll    = "all"
	CategoryFruit  = "fruit"
	CategoryDrinks = "drinks"
	CategoryBakery = "bakery"
	CategoryOther  = "other"
)

// Product is the strict record the rest of the service works with.
// Price and Stock are always valid non-negative numbers after ingestion;
// raw upstream records never leave this package.
type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	Category string  `json:"category"`
	Image    string  `json:"image"`
}

// ValidCategory reports whether c is a category the upstream endpoint accepts.
func ValidCategory(c string) bool {
	switch c {
	case CategoryAll, CategoryFruit, CategoryDrinks, CategoryBakery:
		return true
	default:
		return false
	}
}
