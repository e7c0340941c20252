package catalog

// Fallback returns the built-in product list served when the upstream catalog
// cannot be reached or returns garbage. It keeps the storefront usable; it is
// a resilience fallback, not a cache.
func Fallback() []Product {
	return []Product{
		{ID: "1", Name: "Coca-Cola", Price: 2.99, Stock: 15, Category: CategoryDrinks, Image: "https://placehold.co/200x200/FF0000/FFFFFF?text=Coke"},
		{ID: "2", Name: "Apple", Price: 0.99, Stock: 8, Category: CategoryFruit, Image: "https://placehold.co/200x200/FF6B6B/FFFFFF?text=Apple"},
		{ID: "3", Name: "Croissant", Price: 1.49, Stock: 12, Category: CategoryBakery, Image: "https://placehold.co/200x200/F4A261/FFFFFF?text=Croissant"},
		{ID: "4", Name: "Coffee", Price: 3.99, Stock: 20, Category: CategoryDrinks, Image: "https://placehold.co/200x200/8B4513/FFFFFF?text=Coffee"},
		{ID: "5", Name: "Banana", Price: 0.79, Stock: 5, Category: CategoryFruit, Image: "https://placehold.co/200x200/FFE135/000000?text=Banana"},
		{ID: "6", Name: "Bread", Price: 2.29, Stock: 18, Category: CategoryBakery, Image: "https://placehold.co/200x200/DEB887/000000?text=Bread"},
	}
}
