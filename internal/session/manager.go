package session

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/andreasstove999/fresh-market/internal/cart"
	"github.com/andreasstove999/fresh-market/internal/catalog"
)

var (
	ErrNotFound       = errors.New("session not found")
	ErrUnknownProduct = errors.New("unknown product")
	ErrOutOfStock     = errors.New("out of stock")
)

// Fetcher fetches the product list for a category. Satisfied by
// *catalog.Client; fakes stand in for it in tests.
type Fetcher interface {
	FetchProducts(ctx context.Context, category string) []catalog.Product
}

// Session owns one shopper's state: their cart, the selected category and the
// catalog snapshot fetched for it. fetchSeq tags catalog fetches so a slow
// response for an old category cannot overwrite a newer one.
type Session struct {
	ID       string
	Category string

	cart     *cart.Store
	products []catalog.Product
	fetchSeq uint64
}

// Snapshot is a consistent copy of a session's state handed to callers.
// Mutating it has no effect on the session.
type Snapshot struct {
	SessionID  string            `json:"sessionId"`
	Category   string            `json:"category"`
	Products   []catalog.Product `json:"products"`
	Cart       map[string]int    `json:"cart"`
	TotalItems int               `json:"totalItems"`
}

// Manager owns all live sessions. A single mutex serializes every mutation,
// matching the one-writer model of the storefront: each user action is a
// discrete event.
type Manager struct {
	mu       sync.Mutex
	fetcher  Fetcher
	sessions map[string]*Session
}

func NewManager(fetcher Fetcher) *Manager {
	return &Manager{
		fetcher:  fetcher,
		sessions: make(map[string]*Session),
	}
}

// Create starts a new session with an empty cart and an initial catalog
// snapshot for the "all" category.
func (m *Manager) Create(ctx context.Context) Snapshot {
	products := m.fetcher.FetchProducts(ctx, catalog.CategoryAll)

	s := &Session{
		ID:       uuid.NewString(),
		Category: catalog.CategoryAll,
		cart:     cart.NewStore(),
		products: products,
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return snapshotLocked(s)
}

// Snapshot returns a copy of the session's current state.
func (m *Manager) Snapshot(id string) (Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return Snapshot{}, ErrNotFound
	}
	return snapshotLocked(s), nil
}

// ChangeCategory refetches the catalog for the new category. The fetch is
// tagged with the session's fetch sequence; if another ChangeCategory was
// issued while this one was in flight, the stale result is discarded instead
// of overwriting the newer snapshot.
func (m *Manager) ChangeCategory(ctx context.Context, id, category string) (Snapshot, error) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	if !ok {
		m.mu.Unlock()
		return Snapshot{}, ErrNotFound
	}
	s.Category = category
	s.fetchSeq++
	seq := s.fetchSeq
	m.mu.Unlock()

	products := m.fetcher.FetchProducts(ctx, category)

	m.mu.Lock()
	defer m.mu.Unlock()
	if seq == s.fetchSeq {
		s.products = products
	}
	return snapshotLocked(s), nil
}

// AddToCart increments the quantity for productID. The product must exist in
// the session's catalog snapshot and have stock; the store itself enforces no
// upper bound.
func (m *Manager) AddToCart(id, productID string) (Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return Snapshot{}, ErrNotFound
	}

	p, ok := findProduct(s.products, productID)
	if !ok {
		return Snapshot{}, ErrUnknownProduct
	}
	if p.Stock <= 0 {
		return Snapshot{}, ErrOutOfStock
	}

	s.cart.Add(productID)
	return snapshotLocked(s), nil
}

// RemoveFromCart decrements the quantity for productID. Removing an id that
// is absent from the cart is a no-op, never an error.
func (m *Manager) RemoveFromCart(id, productID string) (Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return Snapshot{}, ErrNotFound
	}

	s.cart.Remove(productID)
	return snapshotLocked(s), nil
}

// ClearCart empties the session's cart. Used after checkout.
func (m *Manager) ClearCart(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return ErrNotFound
	}

	s.cart.Clear()
	return nil
}

func snapshotLocked(s *Session) Snapshot {
	products := make([]catalog.Product, len(s.products))
	copy(products, s.products)

	return Snapshot{
		SessionID:  s.ID,
		Category:   s.Category,
		Products:   products,
		Cart:       s.cart.Items(),
		TotalItems: s.cart.TotalItems(),
	}
}

func findProduct(products []catalog.Product, id string) (catalog.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return catalog.Product{}, false
}
