package sale

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=sale
type Repository interface {
	CommitSale(ctx context.Context, req CommitRequest) (*CommitResult, error)
	GetSale(ctx context.Context, businessID, id uuid.UUID) (*Sale, error)
	ListLines(ctx context.Context, businessID, saleID uuid.UUID) ([]*Line, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Commit runs the all-or-nothing sale conversion. Validation happens
// before the store is touched; any error from the store means nothing
// was persisted and the caller may retry the same request.
func (s *Service) Commit(ctx context.Context, req CommitRequest) (*CommitResult, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptySale
	}

	return s.repo.CommitSale(ctx, req)
}

func (s *Service) Get(ctx context.Context, businessID, id uuid.UUID) (*Sale, error) {
	return s.repo.GetSale(ctx, businessID, id)
}

func (s *Service) Lines(ctx context.Context, businessID, saleID uuid.UUID) ([]*Line, error) {
	return s.repo.ListLines(ctx, businessID, saleID)
}
