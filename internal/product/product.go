package product

import (
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a product does not exist within the
// caller's business.
var ErrNotFound = errors.New("product: not found")

// Product is a catalog entry as seen by this core: enough to search,
// price a line and hold a stock snapshot. Catalog management lives
// elsewhere; this package only reads.
type Product struct {
	ID         uuid.UUID
	BusinessID uuid.UUID
	Name       string
	SKU        string
	Price      int64 // Price in cents
	Stock      int
}
