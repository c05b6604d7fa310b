package board

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/nveloso/pipeflow/internal/lead"
	"github.com/nveloso/pipeflow/internal/pipeline"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=board

// StageSource is satisfied by *pipeline.Service.
type StageSource interface {
	Pipeline(ctx context.Context, businessID, id uuid.UUID) (*pipeline.Pipeline, error)
	Stages(ctx context.Context, businessID, pipelineID uuid.UUID) ([]*pipeline.Stage, error)
}

// LeadSource is satisfied by *lead.Service.
type LeadSource interface {
	ListByPipeline(ctx context.Context, businessID, pipelineID uuid.UUID) ([]*lead.Lead, error)
	Move(ctx context.Context, businessID, leadID, stageID uuid.UUID) error
	Archive(ctx context.Context, businessID, leadID uuid.UUID, withRevenue bool) error
}

// Service translates board gestures into single lead mutations and owns
// the reload discipline: one write, then a full refetch. Several
// employees may edit the same pipeline at once; reloading wholesale
// after every mutation converges to the store's state regardless of
// interleaving, because a reload is idempotent.
type Service struct {
	stages StageSource
	leads  LeadSource
}

func NewService(stages StageSource, leads LeadSource) *Service {
	return &Service{stages: stages, leads: leads}
}

// Load refetches the full stage and lead set and rebuilds the board.
// This is the only way a board comes into existence; it serves user
// resyncs and external change notifications alike.
func (s *Service) Load(ctx context.Context, businessID, pipelineID uuid.UUID) (*Board, error) {
	p, err := s.stages.Pipeline(ctx, businessID, pipelineID)
	if err != nil {
		return nil, err
	}

	stages, err := s.stages.Stages(ctx, businessID, pipelineID)
	if err != nil {
		return nil, fmt.Errorf("loading stages: %w", err)
	}

	leads, err := s.leads.ListByPipeline(ctx, businessID, pipelineID)
	if err != nil {
		return nil, fmt.Errorf("loading leads: %w", err)
	}

	return Build(p, stages, leads), nil
}

// Drop handles a lead dropped onto a stage. Dropping onto its current
// stage changes nothing and issues no write; the returned board is nil
// to signal the caller's projection is still valid. Otherwise exactly
// one write moves the lead, and a fresh Load replaces the projection.
func (s *Service) Drop(ctx context.Context, businessID, pipelineID, leadID, fromStage, toStage uuid.UUID) (*Board, error) {
	if fromStage == toStage {
		return nil, nil
	}

	if err := s.leads.Move(ctx, businessID, leadID, toStage); err != nil {
		return nil, err
	}

	return s.Load(ctx, businessID, pipelineID)
}

// Archive closes a lead off the board, then reloads.
func (s *Service) Archive(ctx context.Context, businessID, pipelineID, leadID uuid.UUID, withRevenue bool) (*Board, error) {
	if err := s.leads.Archive(ctx, businessID, leadID, withRevenue); err != nil {
		return nil, err
	}

	return s.Load(ctx, businessID, pipelineID)
}
