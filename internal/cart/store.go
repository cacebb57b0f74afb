// Package cart implements the per-customer shopping cart state container:
// an observable aggregate of line items whose derived totals are recomputed
// inside every mutation, with write-through snapshot persistence.
package cart

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
)

// Product is the catalog record a line item references. The cart never
// mutates products; it only reads id and price.
type Product struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Origin        string  `json:"origin"`
	Price         float64 `json:"price"`
	Image         string  `json:"image"`
	Description   string  `json:"description"`
	CulturalNotes string  `json:"cultural_notes,omitempty"`
	Featured      bool    `json:"featured,omitempty"`
}

// LineItem is one cart entry. ID always equals Product.ID: one line per
// distinct product, adding the same product again merges quantities.
type LineItem struct {
	ID       string  `json:"id"`
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Subtotal float64 `json:"subtotal"`
}

// State is the full cart aggregate. Items keeps insertion order.
// TotalItems and TotalAmount are derived and never go stale: they are
// recomputed before any mutation returns.
type State struct {
	Items       []LineItem `json:"items"`
	TotalItems  int        `json:"total_items"`
	TotalAmount float64    `json:"total_amount"`
}

func (s State) clone() State {
	out := s
	if s.Items != nil {
		out.Items = make([]LineItem, len(s.Items))
		copy(out.Items, s.Items)
	}
	return out
}

// Persister receives the cart state after every mutation. Failures are
// logged and swallowed: the in-memory state stays authoritative for the
// session even when the snapshot write fails.
type Persister interface {
	Save(ctx context.Context, state State) error
}

// PersisterFunc adapts a function to the Persister interface.
type PersisterFunc func(ctx context.Context, state State) error

func (f PersisterFunc) Save(ctx context.Context, state State) error {
	return f(ctx, state)
}

// Subscriber is notified with a consistent state copy after every mutation.
type Subscriber func(state State)

// Store owns a single customer's cart state. Mutations are serialized by a
// mutex so concurrent HTTP handlers always observe a consistent aggregate.
// All mutation operations are total: absent ids are no-ops, and none of them
// returns an error.
//
// Known quirk, kept on purpose: AddItem recomputes a merged line's subtotal
// from the price of the product passed into the call, while UpdateQuantity
// uses the price of the product stored on the line. If the catalog reprices
// a product mid-session the two paths can disagree; see AddItem.
type Store struct {
	mu        sync.Mutex
	state     State
	persister Persister
	subs      []Subscriber
	logger    *logrus.Entry
}

// NewStore returns an empty store. persister may be nil for a purely
// in-memory cart.
func NewStore(persister Persister) *Store {
	return &Store{
		persister: persister,
		logger:    logrus.WithField("component", "cart"),
	}
}

// Subscribe registers a subscriber. Not safe to call concurrently with
// mutations; wire subscribers up before the store is shared.
func (s *Store) Subscribe(fn Subscriber) {
	s.subs = append(s.subs, fn)
}

// Restore replaces the store contents with a previously persisted state.
// Line items are taken as persisted (subtotals included); only the derived
// totals are recomputed. Used when hydrating a session from its snapshot.
func (s *Store) Restore(state State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state.clone()
	s.recomputeTotals()
}

// AddItem adds quantity units of product to the cart. If a line for
// product.ID already exists its quantity grows by quantity and its subtotal
// is recomputed from the passed product's price; the stored product
// reference is kept. Otherwise a new line is appended. quantity below 1 is
// treated as 1 (callers floor at 1 in the quantity stepper).
func (s *Store) AddItem(ctx context.Context, product Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	s.mutate(ctx, func() {
		for i := range s.state.Items {
			if s.state.Items[i].ID == product.ID {
				s.state.Items[i].Quantity += quantity
				s.state.Items[i].Subtotal = float64(s.state.Items[i].Quantity) * product.Price
				return
			}
		}

		s.state.Items = append(s.state.Items, LineItem{
			ID:       product.ID,
			Product:  product,
			Quantity: quantity,
			Subtotal: float64(quantity) * product.Price,
		})
	})
}

// RemoveItem removes the line for productID. No-op if absent.
func (s *Store) RemoveItem(ctx context.Context, productID string) {
	s.mutate(ctx, func() {
		for i := range s.state.Items {
			if s.state.Items[i].ID == productID {
				s.state.Items = append(s.state.Items[:i], s.state.Items[i+1:]...)
				return
			}
		}
	})
}

// UpdateQuantity sets the quantity of the line for productID, recomputing
// its subtotal from the stored product's price. quantity <= 0 removes the
// line; a cart never holds a line with non-positive quantity. No-op if the
// id is absent.
func (s *Store) UpdateQuantity(ctx context.Context, productID string, quantity int) {
	if quantity <= 0 {
		s.RemoveItem(ctx, productID)
		return
	}

	s.mutate(ctx, func() {
		for i := range s.state.Items {
			if s.state.Items[i].ID == productID {
				s.state.Items[i].Quantity = quantity
				s.state.Items[i].Subtotal = float64(quantity) * s.state.Items[i].Product.Price
				return
			}
		}
	})
}

// ClearCart empties the cart. Idempotent.
func (s *Store) ClearCart(ctx context.Context) {
	s.mutate(ctx, func() {
		s.state.Items = nil
	})
}

// GetItem returns the line for productID, or ok=false if absent.
func (s *Store) GetItem(productID string) (LineItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.state.Items {
		if item.ID == productID {
			return item, true
		}
	}
	return LineItem{}, false
}

// State returns a consistent copy of the full cart aggregate.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Items returns a copy of the line items in insertion order.
func (s *Store) Items() []LineItem {
	return s.State().Items
}

func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.TotalItems
}

func (s *Store) TotalAmount() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.TotalAmount
}

// mutate applies fn under the lock, recomputes the derived totals within the
// same critical section, then persists and notifies with a consistent copy.
// No caller can observe items updated with stale totals.
func (s *Store) mutate(ctx context.Context, fn func()) {
	s.mu.Lock()
	fn()
	s.recomputeTotals()
	snapshot := s.state.clone()
	s.mu.Unlock()

	if s.persister != nil {
		if err := s.persister.Save(ctx, snapshot); err != nil {
			s.logger.WithError(err).Warn("cart snapshot write failed, in-memory state kept")
		}
	}

	for _, fn := range s.subs {
		fn(snapshot)
	}
}

func (s *Store) recomputeTotals() {
	totalItems := 0
	totalAmount := 0.0
	for _, item := range s.state.Items {
		totalItems += item.Quantity
		totalAmount += item.Subtotal
	}
	s.state.TotalItems = totalItems
	s.state.TotalAmount = totalAmount
}
