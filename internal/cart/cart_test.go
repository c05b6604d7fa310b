package cart_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nveloso/pipeflow/internal/cart"
	"github.com/nveloso/pipeflow/internal/product"
)

func widget(price int64, stock int) product.Product {
	return product.Product{
		ID:    uuid.New(),
		Name:  "Widget",
		SKU:   "W-1",
		Price: price,
		Stock: stock,
	}
}

func TestCart_AddDeduplicatesLines(t *testing.T) {
	c := cart.New(false, 0)
	p := widget(1000, 10)

	require.NoError(t, c.Add(p))
	require.NoError(t, c.Add(p))

	require.Len(t, c.Lines, 1)
	assert.Equal(t, 2, c.Lines[0].Quantity)
}

func TestCart_AddRespectsStockSnapshot(t *testing.T) {
	c := cart.New(false, 0)
	p := widget(1000, 2)

	require.NoError(t, c.Add(p))
	require.NoError(t, c.Add(p))
	assert.ErrorIs(t, c.Add(p), cart.ErrOutOfStock)
	assert.Equal(t, 2, c.Lines[0].Quantity)

	empty := widget(500, 0)
	assert.ErrorIs(t, c.Add(empty), cart.ErrOutOfStock)
	assert.Len(t, c.Lines, 1)
}

func TestCart_DecrementToZeroRemovesLine(t *testing.T) {
	c := cart.New(false, 0)
	p := widget(1000, 10)

	require.NoError(t, c.Add(p))
	require.NoError(t, c.Increment(p.ID))
	assert.Equal(t, 2, c.Lines[0].Quantity)

	c.Decrement(p.ID)
	assert.Equal(t, 1, c.Lines[0].Quantity)

	c.Decrement(p.ID)
	assert.Empty(t, c.Lines)

	// Decrementing an absent product is a no-op.
	c.Decrement(p.ID)
	assert.Empty(t, c.Lines)
}

func TestCart_Totals(t *testing.T) {
	type testCase struct {
		name         string
		taxEnabled   bool
		taxRate      float64
		wantSubtotal int64
		wantTax      int64
		wantTotal    int64
	}

	tests := []testCase{
		{
			name:         "TaxDisabled",
			taxEnabled:   false,
			taxRate:      10,
			wantSubtotal: 3500,
			wantTax:      0,
			wantTotal:    3500,
		},
		{
			name:         "TenPercentTax",
			taxEnabled:   true,
			taxRate:      10,
			wantSubtotal: 3500,
			wantTax:      350,
			wantTotal:    3850,
		},
		{
			name:         "ZeroRateEnabled",
			taxEnabled:   true,
			taxRate:      0,
			wantSubtotal: 3500,
			wantTax:      0,
			wantTotal:    3500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := cart.New(tt.taxEnabled, tt.taxRate)

			a := widget(1000, 10)
			b := product.Product{ID: uuid.New(), Name: "Gadget", SKU: "G-1", Price: 500, Stock: 10}

			require.NoError(t, c.Add(a))
			require.NoError(t, c.Increment(a.ID))

			require.NoError(t, c.Add(b))
			require.NoError(t, c.Increment(b.ID))
			require.NoError(t, c.Increment(b.ID))

			assert.Equal(t, tt.wantSubtotal, c.Subtotal())
			assert.Equal(t, tt.wantTax, c.Tax())
			assert.Equal(t, tt.wantTotal, c.Total())
		})
	}
}

func TestCart_TaxRounding(t *testing.T) {
	c := cart.New(true, 7.5)
	require.NoError(t, c.Add(widget(333, 10)))

	// 333 * 7.5% = 24.975 cents, rounded to 25.
	assert.Equal(t, int64(25), c.Tax())
	assert.Equal(t, int64(358), c.Total())
}

func TestCart_Clear(t *testing.T) {
	c := cart.New(true, 10)
	require.NoError(t, c.Add(widget(1000, 5)))

	c.Clear()

	assert.True(t, c.Empty())
	assert.True(t, c.TaxEnabled)
	assert.Equal(t, int64(0), c.Subtotal())
}
