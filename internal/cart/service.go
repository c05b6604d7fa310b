package cart

import (
	"context"

	"github.com/google/uuid"

	"github.com/nveloso/pipeflow/internal/sale"
)

// Committer is the external atomic procedure that turns a cart into a
// sale. Satisfied by *sale.Service.
//
//go:generate mockgen -source=service.go -destination=committer_mock.go -package=cart
type Committer interface {
	Commit(ctx context.Context, req sale.CommitRequest) (*sale.CommitResult, error)
}

type Service struct {
	committer Committer
}

func NewService(committer Committer) *Service {
	return &Service{committer: committer}
}

// Checkout hands the cart to the commit procedure as one request.
// Strictly all-or-nothing: any reported failure leaves the cart
// untouched so the same checkout can be retried; the cart is cleared
// only after a successful response.
func (s *Service) Checkout(ctx context.Context, businessID, employeeID uuid.UUID, c *Cart, leadID *uuid.UUID) (*sale.CommitResult, error) {
	if c.Empty() {
		return nil, ErrEmptyCart
	}

	items := make([]sale.CommitItem, len(c.Lines))
	for i, l := range c.Lines {
		items[i] = sale.CommitItem{
			ProductID: l.ProductID,
			Name:      l.Name,
			SKU:       l.SKU,
			Price:     l.Price,
			Quantity:  l.Quantity,
		}
	}

	taxPercent := 0.0
	if c.TaxEnabled {
		taxPercent = c.TaxRatePercent
	}

	result, err := s.committer.Commit(ctx, sale.CommitRequest{
		BusinessID:        businessID,
		EmployeeID:        employeeID,
		Subtotal:          c.Subtotal(),
		AppliedTaxPercent: taxPercent,
		Total:             c.Total(),
		Items:             items,
		LeadID:            leadID,
	})
	if err != nil {
		return nil, err
	}

	c.Clear()

	return result, nil
}
