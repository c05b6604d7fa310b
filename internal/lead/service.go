package lead

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=lead
type Repository interface {
	CreateLead(ctx context.Context, l *Lead) error
	GetLead(ctx context.Context, businessID, id uuid.UUID) (*Lead, error)
	ListByPipeline(ctx context.Context, businessID, pipelineID uuid.UUID) ([]*Lead, error)
	UpdateLead(ctx context.Context, l *Lead) error
	UpdateLeadStage(ctx context.Context, businessID, leadID, stageID uuid.UUID) error
	ArchiveLead(ctx context.Context, businessID, leadID uuid.UUID, withRevenue bool, closedAt time.Time) error
	UpdateLeadValue(ctx context.Context, businessID, leadID uuid.UUID, value int64) error

	ListItems(ctx context.Context, businessID, leadID uuid.UUID) ([]*Item, error)
	CreateItem(ctx context.Context, item *Item) error
	UpdateItemQuantity(ctx context.Context, businessID, itemID uuid.UUID, quantity int) error
	DeleteItem(ctx context.Context, businessID, itemID uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	BusinessID   uuid.UUID
	StageID      uuid.UUID
	CustomerName string
	Value        int64
	Assignee     *uuid.UUID
}

type UpdateParams struct {
	CustomerName *string
	Assignee     *uuid.UUID
}

type AddItemParams struct {
	BusinessID uuid.UUID
	LeadID     uuid.UUID
	ProductID  uuid.UUID
	Name       string
	SKU        string
	Price      int64
	Quantity   int
}

// Create opens a lead in its initial stage.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Lead, error) {
	if strings.TrimSpace(params.CustomerName) == "" {
		return nil, ErrEmptyName
	}

	if params.StageID == uuid.Nil {
		return nil, ErrNoStage
	}

	stageID := params.StageID
	l := &Lead{
		BusinessID:   params.BusinessID,
		StageID:      &stageID,
		CustomerName: strings.TrimSpace(params.CustomerName),
		Value:        params.Value,
		Assignee:     params.Assignee,
	}

	if err := s.repo.CreateLead(ctx, l); err != nil {
		return nil, fmt.Errorf("creating lead: %w", err)
	}

	return l, nil
}

func (s *Service) Get(ctx context.Context, businessID, id uuid.UUID) (*Lead, error) {
	return s.repo.GetLead(ctx, businessID, id)
}

func (s *Service) ListByPipeline(ctx context.Context, businessID, pipelineID uuid.UUID) ([]*Lead, error) {
	return s.repo.ListByPipeline(ctx, businessID, pipelineID)
}

func (s *Service) Update(ctx context.Context, businessID, leadID uuid.UUID, params UpdateParams) (*Lead, error) {
	l, err := s.repo.GetLead(ctx, businessID, leadID)
	if err != nil {
		return nil, err
	}

	if params.CustomerName != nil {
		if strings.TrimSpace(*params.CustomerName) == "" {
			return nil, ErrEmptyName
		}

		l.CustomerName = strings.TrimSpace(*params.CustomerName)
	}

	if params.Assignee != nil {
		l.Assignee = params.Assignee
	}

	if err := s.repo.UpdateLead(ctx, l); err != nil {
		return nil, fmt.Errorf("updating lead: %w", err)
	}

	return l, nil
}

// Move places an active lead into another stage. A single write touches
// StageID only; value and revenue flag are left as they are.
func (s *Service) Move(ctx context.Context, businessID, leadID, stageID uuid.UUID) error {
	l, err := s.repo.GetLead(ctx, businessID, leadID)
	if err != nil {
		return err
	}

	if l.Closed() {
		return ErrClosed
	}

	if err := s.repo.UpdateLeadStage(ctx, businessID, leadID, stageID); err != nil {
		return fmt.Errorf("moving lead: %w", err)
	}

	return nil
}

// Archive closes a lead, removing it from stage flow for good. A lead
// archived with revenue counts toward realized revenue.
func (s *Service) Archive(ctx context.Context, businessID, leadID uuid.UUID, withRevenue bool) error {
	l, err := s.repo.GetLead(ctx, businessID, leadID)
	if err != nil {
		return err
	}

	if l.Closed() {
		return ErrClosed
	}

	if err := s.repo.ArchiveLead(ctx, businessID, leadID, withRevenue, time.Now().UTC()); err != nil {
		return fmt.Errorf("archiving lead: %w", err)
	}

	return nil
}

func (s *Service) Items(ctx context.Context, businessID, leadID uuid.UUID) ([]*Item, error) {
	return s.repo.ListItems(ctx, businessID, leadID)
}

// AddItem attaches a product line to a lead. Adding a product that is
// already on the lead bumps that line's quantity instead of duplicating
// it. The lead value is resynced from the items afterwards.
func (s *Service) AddItem(ctx context.Context, params AddItemParams) error {
	if params.Quantity < 1 {
		params.Quantity = 1
	}

	items, err := s.repo.ListItems(ctx, params.BusinessID, params.LeadID)
	if err != nil {
		return fmt.Errorf("listing lead items: %w", err)
	}

	existing := findByProduct(items, params.ProductID)
	if existing != nil {
		err = s.repo.UpdateItemQuantity(ctx, params.BusinessID, existing.ID, existing.Quantity+params.Quantity)
	} else {
		err = s.repo.CreateItem(ctx, &Item{
			LeadID:     params.LeadID,
			BusinessID: params.BusinessID,
			ProductID:  params.ProductID,
			Name:       params.Name,
			SKU:        params.SKU,
			Price:      params.Price,
			Quantity:   params.Quantity,
		})
	}

	if err != nil {
		return fmt.Errorf("adding lead item: %w", err)
	}

	return s.resyncValue(ctx, params.BusinessID, params.LeadID)
}

// SetItemQuantity updates a line's quantity; a quantity below one
// removes the line entirely. The lead value is resynced afterwards.
func (s *Service) SetItemQuantity(ctx context.Context, businessID, leadID, itemID uuid.UUID, quantity int) error {
	var err error
	if quantity < 1 {
		err = s.repo.DeleteItem(ctx, businessID, itemID)
	} else {
		err = s.repo.UpdateItemQuantity(ctx, businessID, itemID, quantity)
	}

	if err != nil {
		return fmt.Errorf("updating lead item: %w", err)
	}

	return s.resyncValue(ctx, businessID, leadID)
}

// RemoveItem deletes a line and resyncs the lead value.
func (s *Service) RemoveItem(ctx context.Context, businessID, leadID, itemID uuid.UUID) error {
	if err := s.repo.DeleteItem(ctx, businessID, itemID); err != nil {
		return fmt.Errorf("removing lead item: %w", err)
	}

	return s.resyncValue(ctx, businessID, leadID)
}

// resyncValue recomputes the lead value from the current items and
// persists it. Read and write are separate round-trips; edits to one
// lead's items are single-actor and human-paced, so the race window is
// accepted.
func (s *Service) resyncValue(ctx context.Context, businessID, leadID uuid.UUID) error {
	items, err := s.repo.ListItems(ctx, businessID, leadID)
	if err != nil {
		return fmt.Errorf("listing lead items: %w", err)
	}

	if err := s.repo.UpdateLeadValue(ctx, businessID, leadID, ItemsTotal(items)); err != nil {
		return fmt.Errorf("syncing lead value: %w", err)
	}

	return nil
}

func findByProduct(items []*Item, productID uuid.UUID) *Item {
	for _, it := range items {
		if it.ProductID == productID {
			return it
		}
	}

	return nil
}
