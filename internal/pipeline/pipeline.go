package pipeline

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when a pipeline or stage does not exist
	// within the caller's business.
	ErrNotFound = errors.New("pipeline: not found")

	// ErrEmptyName rejects a stage create/update before any store call.
	ErrEmptyName = errors.New("pipeline: stage name is required")

	// ErrReordering is returned while a previous stage move is still
	// in flight. The two order writes of a swap are not transactional,
	// so only one swap may be outstanding at a time.
	ErrReordering = errors.New("pipeline: reorder already in progress")
)

// Pipeline is a named workflow of stages owned by one business.
// Pipelines themselves are created and deleted by catalog management;
// this core only reads them.
type Pipeline struct {
	ID         uuid.UUID
	BusinessID uuid.UUID
	Name       string
	CreatedAt  time.Time
}

// Stage is an ordered slot that leads occupy while active.
// Order is unique within a pipeline but not necessarily contiguous;
// only relative ordering matters.
type Stage struct {
	ID              uuid.UUID
	PipelineID      uuid.UUID
	BusinessID      uuid.UUID
	Name            string
	Color           string
	Order           int
	IsRevenue       bool
	IsInput         bool
	DefaultAssignee *uuid.UUID
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}

// Direction of a stage move relative to the current board layout.
type Direction string

const (
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
)
