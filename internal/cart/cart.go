package cart

import (
	"errors"
	"math"

	"github.com/google/uuid"

	"github.com/nveloso/pipeflow/internal/product"
)

var (
	// ErrOutOfStock rejects adding a line past the last-known stock
	// snapshot. The snapshot is client-held and may be stale; the
	// commit transaction is the real gate.
	ErrOutOfStock = errors.New("cart: product out of stock")

	// ErrEmptyCart rejects a checkout with no lines.
	ErrEmptyCart = errors.New("cart: cart is empty")
)

// Line is one distinct product in the cart. Stock is the snapshot taken
// when the product was last looked up, not a live value.
type Line struct {
	ProductID uuid.UUID
	Name      string
	SKU       string
	Price     int64 // Price in cents
	Quantity  int
	Stock     int
}

// Cart is the in-progress, uncommitted collection of product lines.
// Lines are kept in insertion order, one per distinct product.
type Cart struct {
	Lines          []Line
	TaxEnabled     bool
	TaxRatePercent float64
}

func New(taxEnabled bool, taxRatePercent float64) *Cart {
	return &Cart{TaxEnabled: taxEnabled, TaxRatePercent: taxRatePercent}
}

// Add puts the product in the cart, bumping the quantity of an existing
// line instead of duplicating it. The quantity is capped at the stock
// snapshot carried by the product.
func (c *Cart) Add(p product.Product) error {
	for i := range c.Lines {
		if c.Lines[i].ProductID != p.ID {
			continue
		}

		if c.Lines[i].Quantity+1 > c.Lines[i].Stock {
			return ErrOutOfStock
		}

		c.Lines[i].Quantity++

		return nil
	}

	if p.Stock < 1 {
		return ErrOutOfStock
	}

	c.Lines = append(c.Lines, Line{
		ProductID: p.ID,
		Name:      p.Name,
		SKU:       p.SKU,
		Price:     p.Price,
		Quantity:  1,
		Stock:     p.Stock,
	})

	return nil
}

// Increment bumps an existing line's quantity, honoring the stock snapshot.
func (c *Cart) Increment(productID uuid.UUID) error {
	for i := range c.Lines {
		if c.Lines[i].ProductID != productID {
			continue
		}

		if c.Lines[i].Quantity+1 > c.Lines[i].Stock {
			return ErrOutOfStock
		}

		c.Lines[i].Quantity++

		return nil
	}

	return nil
}

// Decrement lowers a line's quantity; a line that would drop below one
// is removed entirely.
func (c *Cart) Decrement(productID uuid.UUID) {
	for i := range c.Lines {
		if c.Lines[i].ProductID != productID {
			continue
		}

		if c.Lines[i].Quantity <= 1 {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}

		c.Lines[i].Quantity--

		return
	}
}

// Remove drops a line regardless of quantity.
func (c *Cart) Remove(productID uuid.UUID) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

func (c *Cart) Empty() bool { return len(c.Lines) == 0 }

// Clear drops every line. Tax settings survive for the next sale.
func (c *Cart) Clear() { c.Lines = nil }

// Subtotal is the sum of price times quantity over all lines, in cents.
func (c *Cart) Subtotal() int64 {
	var subtotal int64
	for _, l := range c.Lines {
		subtotal += l.Price * int64(l.Quantity)
	}

	return subtotal
}

// Tax is zero whenever tax is disabled, regardless of the configured rate.
func (c *Cart) Tax() int64 {
	if !c.TaxEnabled {
		return 0
	}

	return int64(math.Round(float64(c.Subtotal()) * c.TaxRatePercent / 100))
}

func (c *Cart) Total() int64 {
	return c.Subtotal() + c.Tax()
}
