package sale

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when a sale does not exist within the
	// caller's business.
	ErrNotFound = errors.New("sale: not found")

	// ErrInsufficientStock aborts a commit whose stock decrement would
	// take any line's product below zero. Nothing is persisted.
	ErrInsufficientStock = errors.New("sale: insufficient stock")

	// ErrEmptySale rejects a commit with no lines before any store call.
	ErrEmptySale = errors.New("sale: no items to commit")
)

// Sale is the immutable record produced by committing a cart. Its lines
// are snapshots captured at commit time; later product edits never
// touch them.
type Sale struct {
	ID          uuid.UUID
	BusinessID  uuid.UUID
	OrderNumber int64
	Subtotal    int64
	AppliedTax  int64
	Total       int64
	CreatedAt   time.Time
}

// Line is a product snapshot frozen into a sale.
type Line struct {
	ID        uuid.UUID
	SaleID    uuid.UUID
	ProductID uuid.UUID
	Name      string
	SKU       string
	Price     int64
	Quantity  int
}

// CommitRequest is the single all-or-nothing unit handed to the commit
// procedure. There is no partial-success shape: either every stock
// decrement, the sale and all line snapshots land, or nothing does.
type CommitRequest struct {
	BusinessID        uuid.UUID
	EmployeeID        uuid.UUID
	Subtotal          int64
	AppliedTaxPercent float64
	Total             int64
	Items             []CommitItem
	LeadID            *uuid.UUID
}

// CommitItem is one requested line of a commit.
type CommitItem struct {
	ProductID uuid.UUID
	Name      string
	SKU       string
	Price     int64
	Quantity  int
}

// CommitResult is returned on success.
type CommitResult struct {
	SaleID      uuid.UUID
	OrderNumber int64
}
