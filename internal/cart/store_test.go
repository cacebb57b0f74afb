package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	teff = Product{
		ID:       "7",
		Name:     "Teff Grain",
		Category: "dryfoods",
		Origin:   "Ethiopian Highlands",
		Price:    8.99,
	}
	berbere = Product{
		ID:       "4",
		Name:     "Berbere Spice Blend",
		Category: "spices",
		Origin:   "Ethiopia",
		Price:    12.99,
	}
)

// assertInvariants checks the consistency rules that must hold after every
// mutation: line subtotals match quantity*price arithmetic, totals match the
// item list, ids are unique, and no line has a non-positive quantity.
func assertInvariants(t *testing.T, s *Store) {
	t.Helper()
	state := s.State()

	totalItems := 0
	totalAmount := 0.0
	seen := make(map[string]bool)
	for _, item := range state.Items {
		assert.Equal(t, item.Product.ID, item.ID, "line id must equal product id")
		assert.Greater(t, item.Quantity, 0, "no line may have quantity <= 0")
		assert.False(t, seen[item.ID], "no two lines may share an id")
		seen[item.ID] = true
		totalItems += item.Quantity
		totalAmount += item.Subtotal
	}
	assert.Equal(t, totalItems, state.TotalItems)
	assert.InDelta(t, totalAmount, state.TotalAmount, 1e-9)
}

func TestAddItemNewLine(t *testing.T) {
	s := NewStore(nil)
	ctx := context.Background()

	s.AddItem(ctx, teff, 1)

	state := s.State()
	require.Len(t, state.Items, 1)
	assert.Equal(t, "7", state.Items[0].ID)
	assert.Equal(t, 1, state.Items[0].Quantity)
	assert.InDelta(t, 8.99, state.Items[0].Subtotal, 1e-9)
	assert.Equal(t, 1, state.TotalItems)
	assert.InDelta(t, 8.99, state.TotalAmount, 1e-9)
	assertInvariants(t, s)
}

func TestAddItemMergesSameProduct(t *testing.T) {
	s := NewStore(nil)
	ctx := context.Background()

	s.AddItem(ctx, teff, 1)
	s.AddItem(ctx, teff, 2)

	state := s.State()
	require.Len(t, state.Items, 1, "adding the same product twice must not create a second line")
	assert.Equal(t, 3, state.Items[0].Quantity)
	assert.InDelta(t, 26.97, state.Items[0].Subtotal, 1e-9)
	assert.Equal(t, 3, state.TotalItems)
	assert.InDelta(t, 26.97, state.TotalAmount, 1e-9)
	assertInvariants(t, s)
}

// The full reference scenario: add, merge, second product, update, remove,
// clear, checking totals at every step.
func TestMutationScenario(t *testing.T) {
	s := NewStore(nil)
	ctx := context.Background()

	s.AddItem(ctx, teff, 1)
	assert.Equal(t, 1, s.TotalItems())
	assert.InDelta(t, 8.99, s.TotalAmount(), 1e-9)

	s.AddItem(ctx, teff, 2)
	assert.Equal(t, 3, s.TotalItems())
	assert.InDelta(t, 26.97, s.TotalAmount(), 1e-9)

	s.AddItem(ctx, berbere, 1)
	require.Len(t, s.Items(), 2)
	assert.Equal(t, 4, s.TotalItems())
	assert.InDelta(t, 39.96, s.TotalAmount(), 1e-9)

	s.UpdateQuantity(ctx, teff.ID, 1)
	item, ok := s.GetItem(teff.ID)
	require.True(t, ok)
	assert.Equal(t, 1, item.Quantity)
	assert.InDelta(t, 8.99, item.Subtotal, 1e-9)
	assert.Equal(t, 2, s.TotalItems())
	assert.InDelta(t, 21.98, s.TotalAmount(), 1e-9)

	s.RemoveItem(ctx, berbere.ID)
	require.Len(t, s.Items(), 1)
	assert.Equal(t, 1, s.TotalItems())
	assert.InDelta(t, 8.99, s.TotalAmount(), 1e-9)

	s.ClearCart(ctx)
	assert.Empty(t, s.Items())
	assert.Equal(t, 0, s.TotalItems())
	assert.Zero(t, s.TotalAmount())
	assertInvariants(t, s)
}

func TestInsertionOrderPreserved(t *testing.T) {
	s := NewStore(nil)
	ctx := context.Background()

	s.AddItem(ctx, teff, 1)
	s.AddItem(ctx, berbere, 1)
	s.AddItem(ctx, teff, 1) // merge must not reorder

	items := s.Items()
	require.Len(t, items, 2)
	assert.Equal(t, teff.ID, items[0].ID)
	assert.Equal(t, berbere.ID, items[1].ID)
}

func TestUpdateQuantityZeroRemoves(t *testing.T) {
	s := NewStore(nil)
	ctx := context.Background()

	s.AddItem(ctx, teff, 2)
	s.UpdateQuantity(ctx, teff.ID, 0)

	assert.Empty(t, s.Items())
	assert.Equal(t, 0, s.TotalItems())
	assertInvariants(t, s)
}

func TestUpdateQuantityNegativeRemoves(t *testing.T) {
	s := NewStore(nil)
	ctx := context.Background()

	s.AddItem(ctx, teff, 2)
	s.UpdateQuantity(ctx, teff.ID, -5)

	assert.Empty(t, s.Items())
	assertInvariants(t, s)
}

func TestAbsentIDsAreNoOps(t *testing.T) {
	s := NewStore(nil)
	ctx := context.Background()

	s.AddItem(ctx, teff, 1)
	before := s.State()

	s.RemoveItem(ctx, "no-such-id")
	s.UpdateQuantity(ctx, "no-such-id", 5)
	_, ok := s.GetItem("no-such-id")

	assert.False(t, ok)
	assert.Equal(t, before, s.State())
}

func TestRemoveItemIdempotent(t *testing.T) {
	s := NewStore(nil)
	ctx := context.Background()

	s.AddItem(ctx, teff, 1)
	s.RemoveItem(ctx, teff.ID)
	once := s.State()
	s.RemoveItem(ctx, teff.ID)

	assert.Equal(t, once, s.State())
}

func TestClearCartIdempotent(t *testing.T) {
	s := NewStore(nil)
	ctx := context.Background()

	s.AddItem(ctx, teff, 1)
	s.ClearCart(ctx)
	once := s.State()
	s.ClearCart(ctx)

	assert.Equal(t, once, s.State())
	assert.Equal(t, 0, s.TotalItems())
}

// AddItem prices a merged line with the product passed into the call while
// keeping the stored product reference; UpdateQuantity prices from the
// stored product. The divergence is intentional and pinned here.
func TestMergeUsesPassedPriceUpdateUsesStoredPrice(t *testing.T) {
	s := NewStore(nil)
	ctx := context.Background()

	s.AddItem(ctx, teff, 1)

	repriced := teff
	repriced.Price = 10.00
	s.AddItem(ctx, repriced, 1)

	item, ok := s.GetItem(teff.ID)
	require.True(t, ok)
	assert.InDelta(t, 20.00, item.Subtotal, 1e-9, "merge must price with the passed product")
	assert.InDelta(t, 8.99, item.Product.Price, 1e-9, "stored product reference must be kept")

	s.UpdateQuantity(ctx, teff.ID, 3)
	item, _ = s.GetItem(teff.ID)
	assert.InDelta(t, 26.97, item.Subtotal, 1e-9, "update must price with the stored product")
	assertInvariants(t, s)
}

func TestAddItemFloorsQuantityAtOne(t *testing.T) {
	s := NewStore(nil)
	ctx := context.Background()

	s.AddItem(ctx, teff, 0)

	item, ok := s.GetItem(teff.ID)
	require.True(t, ok)
	assert.Equal(t, 1, item.Quantity)
}

func TestPersisterCalledOnEveryMutation(t *testing.T) {
	var saved []State
	s := NewStore(PersisterFunc(func(ctx context.Context, state State) error {
		saved = append(saved, state)
		return nil
	}))
	ctx := context.Background()

	s.AddItem(ctx, teff, 1)
	s.UpdateQuantity(ctx, teff.ID, 2)
	s.RemoveItem(ctx, teff.ID)
	s.ClearCart(ctx)

	require.Len(t, saved, 4)
	assert.Equal(t, 1, saved[0].TotalItems)
	assert.Equal(t, 2, saved[1].TotalItems)
	assert.Equal(t, 0, saved[2].TotalItems)
	assert.Equal(t, s.State(), saved[3])
}

func TestPersisterFailureDoesNotAffectState(t *testing.T) {
	s := NewStore(PersisterFunc(func(ctx context.Context, state State) error {
		return errors.New("storage unavailable")
	}))
	ctx := context.Background()

	s.AddItem(ctx, teff, 2)

	assert.Equal(t, 2, s.TotalItems())
	assert.InDelta(t, 17.98, s.TotalAmount(), 1e-9)
	assertInvariants(t, s)
}

func TestSubscriberSeesConsistentState(t *testing.T) {
	s := NewStore(nil)
	var notified []State
	s.Subscribe(func(state State) {
		notified = append(notified, state)
	})
	ctx := context.Background()

	s.AddItem(ctx, teff, 1)
	s.AddItem(ctx, berbere, 2)

	require.Len(t, notified, 2)
	// Each notification must carry items and totals from the same mutation.
	assert.Equal(t, 1, notified[0].TotalItems)
	assert.InDelta(t, 8.99, notified[0].TotalAmount, 1e-9)
	assert.Equal(t, 3, notified[1].TotalItems)
	assert.InDelta(t, 34.97, notified[1].TotalAmount, 1e-9)
}

func TestRestoreRecomputesTotals(t *testing.T) {
	s := NewStore(nil)

	// A snapshot whose derived totals drifted from its items: the items win.
	s.Restore(State{
		Items: []LineItem{
			{ID: teff.ID, Product: teff, Quantity: 2, Subtotal: 17.98},
		},
		TotalItems:  99,
		TotalAmount: 999.99,
	})

	assert.Equal(t, 2, s.TotalItems())
	assert.InDelta(t, 17.98, s.TotalAmount(), 1e-9)
	assertInvariants(t, s)
}
