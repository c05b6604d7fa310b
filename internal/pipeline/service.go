package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=pipeline
type Repository interface {
	GetPipeline(ctx context.Context, businessID, id uuid.UUID) (*Pipeline, error)
	ListPipelines(ctx context.Context, businessID uuid.UUID) ([]*Pipeline, error)

	ListStages(ctx context.Context, businessID, pipelineID uuid.UUID) ([]*Stage, error)
	GetStage(ctx context.Context, businessID, id uuid.UUID) (*Stage, error)
	CreateStage(ctx context.Context, stage *Stage) error
	UpdateStage(ctx context.Context, stage *Stage) error
	UpdateStageOrder(ctx context.Context, businessID, stageID uuid.UUID, order int) error
	SetStageRevenue(ctx context.Context, businessID, stageID uuid.UUID, isRevenue bool) error
}

type Service struct {
	repo Repository

	// Single-flight guard for stage moves. A swap issues two
	// independent order writes; a second swap interleaved with a
	// half-finished one could lose an order value for good, so new
	// requests are rejected until the outstanding one resolves.
	reordering atomic.Bool
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateStageParams struct {
	PipelineID      uuid.UUID
	BusinessID      uuid.UUID
	Name            string
	Color           string
	IsRevenue       bool
	IsInput         bool
	DefaultAssignee *uuid.UUID
}

type UpdateStageParams struct {
	Name            *string
	Color           *string
	DefaultAssignee *uuid.UUID
}

func (s *Service) Pipelines(ctx context.Context, businessID uuid.UUID) ([]*Pipeline, error) {
	return s.repo.ListPipelines(ctx, businessID)
}

func (s *Service) Pipeline(ctx context.Context, businessID, id uuid.UUID) (*Pipeline, error) {
	return s.repo.GetPipeline(ctx, businessID, id)
}

func (s *Service) Stages(ctx context.Context, businessID, pipelineID uuid.UUID) ([]*Stage, error) {
	return s.repo.ListStages(ctx, businessID, pipelineID)
}

// AddStage appends a stage at the end of the pipeline: its order is one
// past the current maximum, or 1 on an empty pipeline. When the new stage
// is the revenue stage, the previous holder is demoted alongside the insert.
func (s *Service) AddStage(ctx context.Context, params CreateStageParams) (*Stage, error) {
	if strings.TrimSpace(params.Name) == "" {
		return nil, ErrEmptyName
	}

	stages, err := s.repo.ListStages(ctx, params.BusinessID, params.PipelineID)
	if err != nil {
		return nil, fmt.Errorf("listing stages: %w", err)
	}

	nextOrder := 1
	for _, st := range stages {
		if st.Order >= nextOrder {
			nextOrder = st.Order + 1
		}
	}

	stage := &Stage{
		PipelineID:      params.PipelineID,
		BusinessID:      params.BusinessID,
		Name:            strings.TrimSpace(params.Name),
		Color:           params.Color,
		Order:           nextOrder,
		IsRevenue:       params.IsRevenue,
		IsInput:         params.IsInput,
		DefaultAssignee: params.DefaultAssignee,
	}

	if err := s.repo.CreateStage(ctx, stage); err != nil {
		return nil, fmt.Errorf("creating stage: %w", err)
	}

	if params.IsRevenue {
		if prev := currentRevenueStage(stages); prev != nil {
			if err := s.repo.SetStageRevenue(ctx, params.BusinessID, prev.ID, false); err != nil {
				// The new stage is already in; the duplicate flag is
				// healed by the next reload.
				return stage, fmt.Errorf("demoting revenue stage: %w", err)
			}
		}
	}

	return stage, nil
}

func (s *Service) UpdateStage(ctx context.Context, businessID, stageID uuid.UUID, params UpdateStageParams) (*Stage, error) {
	stage, err := s.repo.GetStage(ctx, businessID, stageID)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		if strings.TrimSpace(*params.Name) == "" {
			return nil, ErrEmptyName
		}

		stage.Name = strings.TrimSpace(*params.Name)
	}

	if params.Color != nil {
		stage.Color = *params.Color
	}

	if params.DefaultAssignee != nil {
		stage.DefaultAssignee = params.DefaultAssignee
	}

	if err := s.repo.UpdateStage(ctx, stage); err != nil {
		return nil, fmt.Errorf("updating stage: %w", err)
	}

	return stage, nil
}

// MoveStage swaps the order values of the stage at index with its
// neighbor in the given direction. An out-of-bounds move is a no-op.
// The two writes are independent and unordered; one can succeed while
// the other fails, leaving a duplicate order until the next reload.
func (s *Service) MoveStage(ctx context.Context, businessID, pipelineID uuid.UUID, index int, direction Direction) error {
	if !s.reordering.CompareAndSwap(false, true) {
		return ErrReordering
	}
	defer s.reordering.Store(false)

	stages, err := s.repo.ListStages(ctx, businessID, pipelineID)
	if err != nil {
		return fmt.Errorf("listing stages: %w", err)
	}

	neighbor := index + 1
	if direction == DirectionLeft {
		neighbor = index - 1
	}

	if index < 0 || index >= len(stages) || neighbor < 0 || neighbor >= len(stages) {
		return nil
	}

	a, b := stages[index], stages[neighbor]

	var (
		wg   sync.WaitGroup
		errA error
		errB error
	)

	wg.Add(2)

	go func() {
		defer wg.Done()
		errA = s.repo.UpdateStageOrder(ctx, businessID, a.ID, b.Order)
	}()

	go func() {
		defer wg.Done()
		errB = s.repo.UpdateStageOrder(ctx, businessID, b.ID, a.Order)
	}()

	wg.Wait()

	if errA != nil || errB != nil {
		return fmt.Errorf("swapping stage order: %w", errors.Join(errA, errB))
	}

	return nil
}

// SetRevenue promotes the given stage to the pipeline's revenue stage,
// demoting the previous holder. Demotion and promotion are issued as two
// concurrent writes with no compensation; a partial failure leaves zero
// or two revenue stages until the next reload observes the settled state.
func (s *Service) SetRevenue(ctx context.Context, businessID, stageID uuid.UUID) error {
	stage, err := s.repo.GetStage(ctx, businessID, stageID)
	if err != nil {
		return err
	}

	if stage.IsRevenue {
		return nil
	}

	stages, err := s.repo.ListStages(ctx, businessID, stage.PipelineID)
	if err != nil {
		return fmt.Errorf("listing stages: %w", err)
	}

	prev := currentRevenueStage(stages)
	if prev == nil {
		if err := s.repo.SetStageRevenue(ctx, businessID, stage.ID, true); err != nil {
			return fmt.Errorf("promoting revenue stage: %w", err)
		}

		return nil
	}

	var (
		wg         sync.WaitGroup
		demoteErr  error
		promoteErr error
	)

	wg.Add(2)

	go func() {
		defer wg.Done()
		demoteErr = s.repo.SetStageRevenue(ctx, businessID, prev.ID, false)
	}()

	go func() {
		defer wg.Done()
		promoteErr = s.repo.SetStageRevenue(ctx, businessID, stage.ID, true)
	}()

	wg.Wait()

	if demoteErr != nil || promoteErr != nil {
		return fmt.Errorf("moving revenue stage: %w", errors.Join(demoteErr, promoteErr))
	}

	return nil
}

func currentRevenueStage(stages []*Stage) *Stage {
	for _, st := range stages {
		if st.IsRevenue {
			return st
		}
	}

	return nil
}
