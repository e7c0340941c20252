package cart

// Store holds the shopper's current selection as productID -> quantity.
// Absence of a key means quantity zero; no entry ever has quantity <= 0.
// State lives only for the duration of the session; the session manager
// serializes access, so Store itself is not synchronized.
type Store struct {
	items map[string]int
}

func NewStore() *Store {
	return &Store{items: make(map[string]int)}
}

// Add increments the quantity for productID, inserting the entry at 1 when
// absent. Stock limits are the caller's concern.
func (s *Store) Add(productID string) {
	s.items[productID]++
}

// Remove decrements the quantity for productID and deletes the entry when it
// would reach zero. Removing an absent id is a no-op.
func (s *Store) Remove(productID string) {
	q, ok := s.items[productID]
	if !ok {
		return
	}
	if q <= 1 {
		delete(s.items, productID)
		return
	}
	s.items[productID] = q - 1
}

// Quantity returns the current quantity for productID, zero when absent.
func (s *Store) Quantity(productID string) int {
	return s.items[productID]
}

// TotalItems is the sum of all quantities. Used for UI badges.
func (s *Store) TotalItems() int {
	total := 0
	for _, q := range s.items {
		total += q
	}
	return total
}

// Items returns a copy of the productID -> quantity mapping.
func (s *Store) Items() map[string]int {
	cp := make(map[string]int, len(s.items))
	for id, q := range s.items {
		cp[id] = q
	}
	return cp
}

// Empty reports whether the cart holds no entries.
func (s *Store) Empty() bool {
	return len(s.items) == 0
}

// Clear drops every entry. Used after checkout.
func (s *Store) Clear() {
	s.items = make(map[string]int)
}
