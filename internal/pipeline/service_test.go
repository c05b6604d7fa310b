package pipeline_test

import (
	"context"
	"errors"
	"math/rand"
	"sort"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/nveloso/pipeflow/internal/pipeline"
)

var (
	businessID = uuid.New()
	pipelineID = uuid.New()
)

func stage(name string, order int, isRevenue bool) *pipeline.Stage {
	return &pipeline.Stage{
		ID:         uuid.New(),
		PipelineID: pipelineID,
		BusinessID: businessID,
		Name:       name,
		Order:      order,
		IsRevenue:  isRevenue,
	}
}

func TestService_AddStage(t *testing.T) {
	type testCase struct {
		name      string
		params    pipeline.CreateStageParams
		setupMock func(m *pipeline.MockRepository)
		wantOrder int
		wantErr   error
	}

	tests := []testCase{
		{
			name: "FirstStageGetsOrderOne",
			params: pipeline.CreateStageParams{
				PipelineID: pipelineID,
				BusinessID: businessID,
				Name:       "Contacted",
			},
			setupMock: func(m *pipeline.MockRepository) {
				m.EXPECT().ListStages(gomock.Any(), businessID, pipelineID).Return(nil, nil)
				m.EXPECT().CreateStage(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantOrder: 1,
		},
		{
			name: "AppendsAfterMaxOrder",
			params: pipeline.CreateStageParams{
				PipelineID: pipelineID,
				BusinessID: businessID,
				Name:       "Negotiation",
			},
			setupMock: func(m *pipeline.MockRepository) {
				m.EXPECT().ListStages(gomock.Any(), businessID, pipelineID).Return([]*pipeline.Stage{
					stage("New", 1, false),
					stage("Qualified", 5, false),
					stage("Won", 7, true),
				}, nil)
				m.EXPECT().CreateStage(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantOrder: 8,
		},
		{
			name: "EmptyNameRejectedBeforeAnyCall",
			params: pipeline.CreateStageParams{
				PipelineID: pipelineID,
				BusinessID: businessID,
				Name:       "   ",
			},
			wantErr: pipeline.ErrEmptyName,
		},
		{
			name: "ListError",
			params: pipeline.CreateStageParams{
				PipelineID: pipelineID,
				BusinessID: businessID,
				Name:       "Won",
			},
			setupMock: func(m *pipeline.MockRepository) {
				m.EXPECT().ListStages(gomock.Any(), businessID, pipelineID).Return(nil, errors.New("db down"))
			},
			wantErr: errors.New("db down"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := pipeline.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := pipeline.NewService(repo)
			got, err := svc.AddStage(context.Background(), tt.params)

			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantOrder, got.Order)
		})
	}
}

func TestService_AddStage_RevenueDemotesPrevious(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := pipeline.NewMockRepository(ctrl)
	svc := pipeline.NewService(repo)

	prev := stage("Won", 3, true)

	repo.EXPECT().ListStages(gomock.Any(), businessID, pipelineID).Return([]*pipeline.Stage{
		stage("New", 1, false),
		stage("Qualified", 2, false),
		prev,
	}, nil)
	repo.EXPECT().CreateStage(gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().SetStageRevenue(gomock.Any(), businessID, prev.ID, false).Return(nil)

	got, err := svc.AddStage(context.Background(), pipeline.CreateStageParams{
		PipelineID: pipelineID,
		BusinessID: businessID,
		Name:       "Closed",
		IsRevenue:  true,
	})
	require.NoError(t, err)
	assert.True(t, got.IsRevenue)
	assert.Equal(t, 4, got.Order)
}

func TestService_MoveStage(t *testing.T) {
	a := stage("A", 1, false)
	b := stage("B", 2, false)
	c := stage("C", 3, false)

	type testCase struct {
		name      string
		index     int
		direction pipeline.Direction
		setupMock func(m *pipeline.MockRepository)
		wantErr   bool
	}

	tests := []testCase{
		{
			name:      "SwapsOrderWithRightNeighbor",
			index:     1,
			direction: pipeline.DirectionRight,
			setupMock: func(m *pipeline.MockRepository) {
				m.EXPECT().ListStages(gomock.Any(), businessID, pipelineID).
					Return([]*pipeline.Stage{a, b, c}, nil)
				m.EXPECT().UpdateStageOrder(gomock.Any(), businessID, b.ID, 3).Return(nil)
				m.EXPECT().UpdateStageOrder(gomock.Any(), businessID, c.ID, 2).Return(nil)
			},
		},
		{
			name:      "LeftOfFirstIsNoOp",
			index:     0,
			direction: pipeline.DirectionLeft,
			setupMock: func(m *pipeline.MockRepository) {
				m.EXPECT().ListStages(gomock.Any(), businessID, pipelineID).
					Return([]*pipeline.Stage{a, b, c}, nil)
			},
		},
		{
			name:      "RightOfLastIsNoOp",
			index:     2,
			direction: pipeline.DirectionRight,
			setupMock: func(m *pipeline.MockRepository) {
				m.EXPECT().ListStages(gomock.Any(), businessID, pipelineID).
					Return([]*pipeline.Stage{a, b, c}, nil)
			},
		},
		{
			name:      "PartialWriteFailureSurfaces",
			index:     0,
			direction: pipeline.DirectionRight,
			setupMock: func(m *pipeline.MockRepository) {
				m.EXPECT().ListStages(gomock.Any(), businessID, pipelineID).
					Return([]*pipeline.Stage{a, b, c}, nil)
				m.EXPECT().UpdateStageOrder(gomock.Any(), businessID, a.ID, 2).Return(nil)
				m.EXPECT().UpdateStageOrder(gomock.Any(), businessID, b.ID, 1).Return(errors.New("write failed"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := pipeline.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := pipeline.NewService(repo)
			err := svc.MoveStage(context.Background(), businessID, pipelineID, tt.index, tt.direction)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestService_MoveStage_SingleFlight(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := pipeline.NewMockRepository(ctrl)
	svc := pipeline.NewService(repo)

	a := stage("A", 1, false)
	b := stage("B", 2, false)

	// A second move issued while the first still holds the guard must be
	// rejected with ErrReordering. The reentrant call happens while the
	// first move is between its list and its writes.
	repo.EXPECT().ListStages(gomock.Any(), businessID, pipelineID).
		DoAndReturn(func(ctx context.Context, _, _ uuid.UUID) ([]*pipeline.Stage, error) {
			err := svc.MoveStage(ctx, businessID, pipelineID, 0, pipeline.DirectionRight)
			assert.ErrorIs(t, err, pipeline.ErrReordering)

			return []*pipeline.Stage{a, b}, nil
		})
	repo.EXPECT().UpdateStageOrder(gomock.Any(), businessID, a.ID, 2).Return(nil)
	repo.EXPECT().UpdateStageOrder(gomock.Any(), businessID, b.ID, 1).Return(nil)

	err := svc.MoveStage(context.Background(), businessID, pipelineID, 0, pipeline.DirectionRight)
	require.NoError(t, err)

	// Guard released once the move resolves.
	repo.EXPECT().ListStages(gomock.Any(), businessID, pipelineID).Return([]*pipeline.Stage{a, b}, nil)
	repo.EXPECT().UpdateStageOrder(gomock.Any(), businessID, a.ID, 2).Return(nil)
	repo.EXPECT().UpdateStageOrder(gomock.Any(), businessID, b.ID, 1).Return(nil)

	err = svc.MoveStage(context.Background(), businessID, pipelineID, 0, pipeline.DirectionRight)
	require.NoError(t, err)
}

func TestService_SetRevenue(t *testing.T) {
	type testCase struct {
		name      string
		setupMock func(m *pipeline.MockRepository) uuid.UUID
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "NoPreviousHolderSingleWrite",
			setupMock: func(m *pipeline.MockRepository) uuid.UUID {
				target := stage("Won", 3, false)
				m.EXPECT().GetStage(gomock.Any(), businessID, target.ID).Return(target, nil)
				m.EXPECT().ListStages(gomock.Any(), businessID, pipelineID).
					Return([]*pipeline.Stage{stage("New", 1, false), target}, nil)
				m.EXPECT().SetStageRevenue(gomock.Any(), businessID, target.ID, true).Return(nil)

				return target.ID
			},
		},
		{
			name: "DemotesPreviousHolder",
			setupMock: func(m *pipeline.MockRepository) uuid.UUID {
				prev := stage("Won", 2, true)
				target := stage("Delivered", 3, false)
				m.EXPECT().GetStage(gomock.Any(), businessID, target.ID).Return(target, nil)
				m.EXPECT().ListStages(gomock.Any(), businessID, pipelineID).
					Return([]*pipeline.Stage{prev, target}, nil)
				m.EXPECT().SetStageRevenue(gomock.Any(), businessID, prev.ID, false).Return(nil)
				m.EXPECT().SetStageRevenue(gomock.Any(), businessID, target.ID, true).Return(nil)

				return target.ID
			},
		},
		{
			name: "AlreadyRevenueIsNoOp",
			setupMock: func(m *pipeline.MockRepository) uuid.UUID {
				target := stage("Won", 2, true)
				m.EXPECT().GetStage(gomock.Any(), businessID, target.ID).Return(target, nil)

				return target.ID
			},
		},
		{
			name: "PartialFailureSurfaces",
			setupMock: func(m *pipeline.MockRepository) uuid.UUID {
				prev := stage("Won", 2, true)
				target := stage("Delivered", 3, false)
				m.EXPECT().GetStage(gomock.Any(), businessID, target.ID).Return(target, nil)
				m.EXPECT().ListStages(gomock.Any(), businessID, pipelineID).
					Return([]*pipeline.Stage{prev, target}, nil)
				m.EXPECT().SetStageRevenue(gomock.Any(), businessID, prev.ID, false).Return(errors.New("demote failed"))
				m.EXPECT().SetStageRevenue(gomock.Any(), businessID, target.ID, true).Return(nil)

				return target.ID
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := pipeline.NewMockRepository(ctrl)
			stageID := tt.setupMock(repo)

			svc := pipeline.NewService(repo)
			err := svc.SetRevenue(context.Background(), businessID, stageID)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
		})
	}
}

// fakeRepo keeps stages in memory so move sequences can be replayed
// end to end without a database.
type fakeRepo struct {
	pipeline.Repository

	stages []*pipeline.Stage
}

func (f *fakeRepo) ListStages(_ context.Context, _, _ uuid.UUID) ([]*pipeline.Stage, error) {
	sorted := make([]*pipeline.Stage, len(f.stages))
	copy(sorted, f.stages)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Order < sorted[j].Order })

	return sorted, nil
}

func (f *fakeRepo) UpdateStageOrder(_ context.Context, _, stageID uuid.UUID, order int) error {
	for _, st := range f.stages {
		if st.ID == stageID {
			st.Order = order
			return nil
		}
	}

	return pipeline.ErrNotFound
}

func TestService_MoveStage_OrdersStayAPermutation(t *testing.T) {
	repo := &fakeRepo{stages: []*pipeline.Stage{
		stage("A", 1, false),
		stage("B", 2, false),
		stage("C", 5, false),
		stage("D", 9, true),
	}}
	svc := pipeline.NewService(repo)

	want := []int{1, 2, 5, 9}

	rng := rand.New(rand.NewSource(42))
	for range 200 {
		index := rng.Intn(len(repo.stages))

		direction := pipeline.DirectionLeft
		if rng.Intn(2) == 0 {
			direction = pipeline.DirectionRight
		}

		require.NoError(t, svc.MoveStage(context.Background(), businessID, pipelineID, index, direction))

		var got []int
		for _, st := range repo.stages {
			got = append(got, st.Order)
		}

		sort.Ints(got)
		require.Equal(t, want, got)
	}
}
