package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/nveloso/pipeflow/internal/pipeline"
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

const selectStageColumns = `
	s.id, s.pipeline_id, s.business_id, s.name, s.color, s.sort_order,
	s.is_revenue, s.is_input, s.default_assignee, s.created_at, s.updated_at
`

func scanStage(s scanner) (*pipeline.Stage, error) {
	var st pipeline.Stage

	var color sql.NullString

	if err := s.Scan(
		&st.ID, &st.PipelineID, &st.BusinessID, &st.Name, &color, &st.Order,
		&st.IsRevenue, &st.IsInput, &st.DefaultAssignee, &st.CreatedAt, &st.UpdatedAt,
	); err != nil {
		return nil, err
	}

	st.Color = color.String

	return &st, nil
}

func (s *Store) GetPipeline(ctx context.Context, businessID, id uuid.UUID) (*pipeline.Pipeline, error) {
	query := `
		SELECT id, business_id, name, created_at
		FROM pipelines
		WHERE id = $1 AND business_id = $2
	`

	var p pipeline.Pipeline

	err := s.db.QueryRowContext(ctx, query, id, businessID).
		Scan(&p.ID, &p.BusinessID, &p.Name, &p.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, pipeline.ErrNotFound
		}

		return nil, fmt.Errorf("getting pipeline: %w", err)
	}

	return &p, nil
}

func (s *Store) ListPipelines(ctx context.Context, businessID uuid.UUID) ([]*pipeline.Pipeline, error) {
	query := `
		SELECT id, business_id, name, created_at
		FROM pipelines
		WHERE business_id = $1
		ORDER BY created_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("listing pipelines: %w", err)
	}
	defer rows.Close()

	var pipelines []*pipeline.Pipeline

	for rows.Next() {
		var p pipeline.Pipeline
		if err := rows.Scan(&p.ID, &p.BusinessID, &p.Name, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning pipeline: %w", err)
		}

		pipelines = append(pipelines, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating pipeline rows: %w", err)
	}

	return pipelines, nil
}

func (s *Store) ListStages(ctx context.Context, businessID, pipelineID uuid.UUID) ([]*pipeline.Stage, error) {
	query := `SELECT ` + selectStageColumns + `
		FROM stages s
		WHERE s.pipeline_id = $1 AND s.business_id = $2
		ORDER BY s.sort_order ASC`

	rows, err := s.db.QueryContext(ctx, query, pipelineID, businessID)
	if err != nil {
		return nil, fmt.Errorf("listing stages: %w", err)
	}
	defer rows.Close()

	var stages []*pipeline.Stage

	for rows.Next() {
		st, err := scanStage(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning stage: %w", err)
		}

		stages = append(stages, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating stage rows: %w", err)
	}

	return stages, nil
}

func (s *Store) GetStage(ctx context.Context, businessID, id uuid.UUID) (*pipeline.Stage, error) {
	query := `SELECT ` + selectStageColumns + `
		FROM stages s
		WHERE s.id = $1 AND s.business_id = $2`

	st, err := scanStage(s.db.QueryRowContext(ctx, query, id, businessID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, pipeline.ErrNotFound
		}

		return nil, fmt.Errorf("getting stage: %w", err)
	}

	return st, nil
}

func (s *Store) CreateStage(ctx context.Context, stage *pipeline.Stage) error {
	query := `
		INSERT INTO stages (pipeline_id, business_id, name, color, sort_order, is_revenue, is_input, default_assignee, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		stage.PipelineID,
		stage.BusinessID,
		stage.Name,
		stage.Color,
		stage.Order,
		stage.IsRevenue,
		stage.IsInput,
		stage.DefaultAssignee,
	).Scan(&stage.ID, &stage.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating stage: %w", err)
	}

	return nil
}

func (s *Store) UpdateStage(ctx context.Context, stage *pipeline.Stage) error {
	query := `
		UPDATE stages
		SET name = $1, color = $2, default_assignee = $3, updated_at = NOW()
		WHERE id = $4 AND business_id = $5
	`

	_, err := s.db.ExecContext(ctx, query,
		stage.Name,
		stage.Color,
		stage.DefaultAssignee,
		stage.ID,
		stage.BusinessID,
	)
	if err != nil {
		return fmt.Errorf("updating stage: %w", err)
	}

	return nil
}

func (s *Store) UpdateStageOrder(ctx context.Context, businessID, stageID uuid.UUID, order int) error {
	query := `
		UPDATE stages
		SET sort_order = $1, updated_at = NOW()
		WHERE id = $2 AND business_id = $3
	`

	_, err := s.db.ExecContext(ctx, query, order, stageID, businessID)
	if err != nil {
		return fmt.Errorf("updating stage order: %w", err)
	}

	return nil
}

func (s *Store) SetStageRevenue(ctx context.Context, businessID, stageID uuid.UUID, isRevenue bool) error {
	query := `
		UPDATE stages
		SET is_revenue = $1, updated_at = NOW()
		WHERE id = $2 AND business_id = $3
	`

	_, err := s.db.ExecContext(ctx, query, isRevenue, stageID, businessID)
	if err != nil {
		return fmt.Errorf("setting revenue stage: %w", err)
	}

	return nil
}
