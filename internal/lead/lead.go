package lead

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when a lead or item does not exist within
	// the caller's business.
	ErrNotFound = errors.New("lead: not found")

	// ErrEmptyName rejects a lead create before any store call.
	ErrEmptyName = errors.New("lead: customer name is required")

	// ErrNoStage rejects creating a lead without an initial stage.
	ErrNoStage = errors.New("lead: initial stage is required")

	// ErrClosed is returned when a stage move or a second archive is
	// attempted on a closed lead. Closing is terminal.
	ErrClosed = errors.New("lead: lead is closed")
)

// Lead is a prospective-customer record. It is Active while it occupies
// a stage and Closed once archived: StageID is nil exactly when ClosedAt
// is set.
type Lead struct {
	ID           uuid.UUID
	BusinessID   uuid.UUID
	StageID      *uuid.UUID
	CustomerName string
	Value        int64 // Value in cents
	IsRevenue    bool
	ClosedAt     *time.Time
	Assignee     *uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

// Active reports whether the lead still occupies a stage.
func (l *Lead) Active() bool { return l.ClosedAt == nil }

// Closed reports whether the lead has been archived.
func (l *Lead) Closed() bool { return l.ClosedAt != nil }

// Item is a product line attached to a lead. While a lead has items,
// its Value mirrors the sum of Price times Quantity over them.
type Item struct {
	ID         uuid.UUID
	LeadID     uuid.UUID
	BusinessID uuid.UUID
	ProductID  uuid.UUID
	Name       string
	SKU        string
	Price      int64 // Price in cents
	Quantity   int
	CreatedAt  time.Time
}

// ItemsTotal is the lead value implied by a set of items.
func ItemsTotal(items []*Item) int64 {
	var total int64
	for _, it := range items {
		total += it.Price * int64(it.Quantity)
	}

	return total
}
