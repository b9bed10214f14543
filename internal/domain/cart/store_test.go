package cart_test

import (
	"testing"

	"tinytreasures/internal/domain/cart"
	"tinytreasures/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	roseBand  = model.Product{ID: "ring-1", Name: "Delicate Rose Band", Price: 499, Category: "Rings"}
	pearlDrop = model.Product{ID: "earring-1", Name: "Pearl Drop Earrings", Price: 799, Category: "Earrings"}
	heart     = model.Product{ID: "necklace-1", Name: "Golden Heart Pendant", Price: 999, Category: "Necklaces"}
)

func TestStore_AddSameProductAccumulates(t *testing.T) {
	s := cart.NewStore()

	for i := 0; i < 5; i++ {
		s.Add(roseBand)
	}

	lines := s.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "ring-1", lines[0].Product.ID)
	assert.Equal(t, 5, lines[0].Quantity)
	assert.Equal(t, 5, s.TotalItems())
	assert.Equal(t, int64(5*499), s.TotalPrice())
}

func TestStore_KeepsInsertionOrder(t *testing.T) {
	s := cart.NewStore()
	s.Add(heart)
	s.Add(roseBand)
	s.Add(pearlDrop)
	s.Add(heart)

	lines := s.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, "necklace-1", lines[0].Product.ID)
	assert.Equal(t, "ring-1", lines[1].Product.ID)
	assert.Equal(t, "earring-1", lines[2].Product.ID)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestStore_UpdateQuantityZeroOrNegativeRemoves(t *testing.T) {
	for _, qty := range []int{0, -1} {
		s := cart.NewStore()
		s.Add(roseBand)
		s.Add(pearlDrop)

		s.UpdateQuantity("ring-1", qty)

		assert.False(t, s.Contains("ring-1"), "qty=%d", qty)
		assert.Equal(t, 1, s.TotalItems())
		assert.Equal(t, int64(799), s.TotalPrice())
	}
}

func TestStore_UpdateQuantitySetsValue(t *testing.T) {
	s := cart.NewStore()
	s.Add(roseBand)

	s.UpdateQuantity("ring-1", 4)

	assert.Equal(t, 4, s.TotalItems())
	assert.Equal(t, int64(4*499), s.TotalPrice())
}

func TestStore_UpdateQuantityUnknownIsNoop(t *testing.T) {
	s := cart.NewStore()
	s.Add(roseBand)

	s.UpdateQuantity("missing", 3)

	require.Len(t, s.Lines(), 1)
	assert.Equal(t, 1, s.TotalItems())
}

func TestStore_RemoveIsIdempotent(t *testing.T) {
	once := cart.NewStore()
	once.Add(roseBand)
	once.Add(pearlDrop)
	once.Remove("ring-1")

	twice := cart.NewStore()
	twice.Add(roseBand)
	twice.Add(pearlDrop)
	twice.Remove("ring-1")
	twice.Remove("ring-1")

	assert.Equal(t, once.Lines(), twice.Lines())
	assert.Equal(t, once.TotalPrice(), twice.TotalPrice())
}

func TestStore_TotalsAfterClear(t *testing.T) {
	s := cart.NewStore()
	s.Add(roseBand)
	s.Add(roseBand)
	s.Add(pearlDrop)

	assert.Equal(t, 3, s.TotalItems())
	assert.Equal(t, int64(1797), s.TotalPrice())

	s.Clear()

	assert.Empty(t, s.Lines())
	assert.Equal(t, 0, s.TotalItems())
	assert.Equal(t, int64(0), s.TotalPrice())
}

func TestStore_LinesReturnsCopy(t *testing.T) {
	s := cart.NewStore()
	s.Add(roseBand)

	lines := s.Lines()
	lines[0].Quantity = 99

	assert.Equal(t, 1, s.TotalItems())
}

func TestStore_OnChangeSkipsNoops(t *testing.T) {
	s := cart.NewStore()

	var got []cart.Change
	s.OnChange(func(ch cart.Change) { got = append(got, ch) })

	s.Add(roseBand)
	s.Add(roseBand)
	s.Remove("missing")
	s.UpdateQuantity("missing", 2)
	s.UpdateQuantity("ring-1", 5)
	s.Remove("ring-1")
	s.Clear()

	assert.Equal(t, []cart.Change{
		{Op: cart.OpAdd, ProductID: "ring-1", Quantity: 1},
		{Op: cart.OpAdd, ProductID: "ring-1", Quantity: 2},
		{Op: cart.OpUpdate, ProductID: "ring-1", Quantity: 5},
		{Op: cart.OpRemove, ProductID: "ring-1"},
		{Op: cart.OpClear},
	}, got)
}
