package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nveloso/pipeflow/internal/lead"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectLeadColumns = `
	l.id, l.business_id, l.stage_id, l.customer_name, l.value,
	l.is_revenue, l.closed_at, l.assignee, l.created_at, l.updated_at
`

func scanLead(s scanner) (*lead.Lead, error) {
	var l lead.Lead

	if err := s.Scan(
		&l.ID, &l.BusinessID, &l.StageID, &l.CustomerName, &l.Value,
		&l.IsRevenue, &l.ClosedAt, &l.Assignee, &l.CreatedAt, &l.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &l, nil
}

func (s *Store) CreateLead(ctx context.Context, l *lead.Lead) error {
	query := `
		INSERT INTO leads (business_id, stage_id, customer_name, value, is_revenue, assignee, created_at)
		VALUES ($1, $2, $3, $4, FALSE, $5, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		l.BusinessID,
		l.StageID,
		l.CustomerName,
		l.Value,
		l.Assignee,
	).Scan(&l.ID, &l.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating lead: %w", err)
	}

	return nil
}

func (s *Store) GetLead(ctx context.Context, businessID, id uuid.UUID) (*lead.Lead, error) {
	query := `SELECT ` + selectLeadColumns + `
		FROM leads l
		WHERE l.id = $1 AND l.business_id = $2`

	l, err := scanLead(s.db.QueryRowContext(ctx, query, id, businessID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, lead.ErrNotFound
		}

		return nil, fmt.Errorf("getting lead: %w", err)
	}

	return l, nil
}

// ListByPipeline returns the active leads occupying the pipeline's
// stages. Closed leads have no stage and therefore never appear here.
func (s *Store) ListByPipeline(ctx context.Context, businessID, pipelineID uuid.UUID) ([]*lead.Lead, error) {
	query := `SELECT ` + selectLeadColumns + `
		FROM leads l
		JOIN stages st ON l.stage_id = st.id
		WHERE st.pipeline_id = $1 AND l.business_id = $2
		ORDER BY l.created_at ASC`

	rows, err := s.db.QueryContext(ctx, query, pipelineID, businessID)
	if err != nil {
		return nil, fmt.Errorf("listing leads: %w", err)
	}
	defer rows.Close()

	var leads []*lead.Lead

	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning lead: %w", err)
		}

		leads = append(leads, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating lead rows: %w", err)
	}

	return leads, nil
}

func (s *Store) UpdateLead(ctx context.Context, l *lead.Lead) error {
	query := `
		UPDATE leads
		SET customer_name = $1, assignee = $2, updated_at = NOW()
		WHERE id = $3 AND business_id = $4
	`

	_, err := s.db.ExecContext(ctx, query, l.CustomerName, l.Assignee, l.ID, l.BusinessID)
	if err != nil {
		return fmt.Errorf("updating lead: %w", err)
	}

	return nil
}

func (s *Store) UpdateLeadStage(ctx context.Context, businessID, leadID, stageID uuid.UUID) error {
	query := `
		UPDATE leads
		SET stage_id = $1, updated_at = NOW()
		WHERE id = $2 AND business_id = $3 AND closed_at IS NULL
	`

	_, err := s.db.ExecContext(ctx, query, stageID, leadID, businessID)
	if err != nil {
		return fmt.Errorf("updating lead stage: %w", err)
	}

	return nil
}

func (s *Store) ArchiveLead(ctx context.Context, businessID, leadID uuid.UUID, withRevenue bool, closedAt time.Time) error {
	query := `
		UPDATE leads
		SET stage_id = NULL, closed_at = $1, is_revenue = $2, updated_at = NOW()
		WHERE id = $3 AND business_id = $4 AND closed_at IS NULL
	`

	_, err := s.db.ExecContext(ctx, query, closedAt, withRevenue, leadID, businessID)
	if err != nil {
		return fmt.Errorf("archiving lead: %w", err)
	}

	return nil
}

func (s *Store) UpdateLeadValue(ctx context.Context, businessID, leadID uuid.UUID, value int64) error {
	query := `
		UPDATE leads
		SET value = $1, updated_at = NOW()
		WHERE id = $2 AND business_id = $3
	`

	_, err := s.db.ExecContext(ctx, query, value, leadID, businessID)
	if err != nil {
		return fmt.Errorf("updating lead value: %w", err)
	}

	return nil
}

func (s *Store) ListItems(ctx context.Context, businessID, leadID uuid.UUID) ([]*lead.Item, error) {
	query := `
		SELECT id, lead_id, business_id, product_id, name, sku, price, quantity, created_at
		FROM lead_items
		WHERE lead_id = $1 AND business_id = $2
		ORDER BY created_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query, leadID, businessID)
	if err != nil {
		return nil, fmt.Errorf("listing lead items: %w", err)
	}
	defer rows.Close()

	var items []*lead.Item

	for rows.Next() {
		var it lead.Item
		if err := rows.Scan(
			&it.ID, &it.LeadID, &it.BusinessID, &it.ProductID,
			&it.Name, &it.SKU, &it.Price, &it.Quantity, &it.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning lead item: %w", err)
		}

		items = append(items, &it)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating lead item rows: %w", err)
	}

	return items, nil
}

func (s *Store) CreateItem(ctx context.Context, item *lead.Item) error {
	query := `
		INSERT INTO lead_items (lead_id, business_id, product_id, name, sku, price, quantity, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		item.LeadID,
		item.BusinessID,
		item.ProductID,
		item.Name,
		item.SKU,
		item.Price,
		item.Quantity,
	).Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating lead item: %w", err)
	}

	return nil
}

func (s *Store) UpdateItemQuantity(ctx context.Context, businessID, itemID uuid.UUID, quantity int) error {
	query := `
		UPDATE lead_items
		SET quantity = $1
		WHERE id = $2 AND business_id = $3
	`

	_, err := s.db.ExecContext(ctx, query, quantity, itemID, businessID)
	if err != nil {
		return fmt.Errorf("updating lead item quantity: %w", err)
	}

	return nil
}

func (s *Store) DeleteItem(ctx context.Context, businessID, itemID uuid.UUID) error {
	query := `
		DELETE FROM lead_items
		WHERE id = $1 AND business_id = $2
	`

	_, err := s.db.ExecContext(ctx, query, itemID, businessID)
	if err != nil {
		return fmt.Errorf("deleting lead item: %w", err)
	}

	return nil
}
