package product

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// searchLimit bounds a lookup issued per keystroke.
const searchLimit = 20

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=product
type Repository interface {
	SearchProducts(ctx context.Context, businessID uuid.UUID, query string, limit int) ([]*Product, error)
	GetProduct(ctx context.Context, businessID, id uuid.UUID) (*Product, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Search finds products by name or SKU. Callers issue one search per
// keystroke and cancel the previous context; a canceled search returns
// ctx.Err() so its results are never committed over fresher ones.
func (s *Service) Search(ctx context.Context, businessID uuid.UUID, query string) ([]*Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	products, err := s.repo.SearchProducts(ctx, businessID, query, searchLimit)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

// Get refreshes a single product, typically for a stock snapshot.
func (s *Service) Get(ctx context.Context, businessID, id uuid.UUID) (*Product, error) {
	return s.repo.GetProduct(ctx, businessID, id)
}
