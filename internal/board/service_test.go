package board_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/nveloso/pipeflow/internal/board"
	"github.com/nveloso/pipeflow/internal/lead"
	"github.com/nveloso/pipeflow/internal/pipeline"
)

func TestService_Load(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	businessID := uuid.New()
	p := &pipeline.Pipeline{ID: uuid.New(), BusinessID: businessID, Name: "Sales"}
	st := &pipeline.Stage{ID: uuid.New(), PipelineID: p.ID, Name: "New", Order: 1}

	stages := board.NewMockStageSource(ctrl)
	leads := board.NewMockLeadSource(ctrl)

	stages.EXPECT().Pipeline(gomock.Any(), businessID, p.ID).Return(p, nil)
	stages.EXPECT().Stages(gomock.Any(), businessID, p.ID).Return([]*pipeline.Stage{st}, nil)
	leads.EXPECT().ListByPipeline(gomock.Any(), businessID, p.ID).Return(nil, nil)

	svc := board.NewService(stages, leads)
	b, err := svc.Load(context.Background(), businessID, p.ID)
	require.NoError(t, err)
	require.Len(t, b.Columns, 1)
	assert.Equal(t, st, b.Columns[0].Stage)
}

func TestService_Drop(t *testing.T) {
	businessID := uuid.New()
	pipelineID := uuid.New()
	leadID := uuid.New()
	s1 := uuid.New()
	s2 := uuid.New()

	t.Run("SameStageIsNoOpWithoutWrite", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		stages := board.NewMockStageSource(ctrl)
		leads := board.NewMockLeadSource(ctrl)

		svc := board.NewService(stages, leads)
		b, err := svc.Drop(context.Background(), businessID, pipelineID, leadID, s1, s1)
		require.NoError(t, err)
		assert.Nil(t, b)
	})

	t.Run("MoveThenFullReload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		stages := board.NewMockStageSource(ctrl)
		leads := board.NewMockLeadSource(ctrl)

		p := &pipeline.Pipeline{ID: pipelineID, BusinessID: businessID}
		target := &pipeline.Stage{ID: s2, PipelineID: pipelineID, Name: "Qualified", Order: 2}
		moved := &lead.Lead{ID: leadID, BusinessID: businessID, StageID: &s2, Value: 700}

		leads.EXPECT().Move(gomock.Any(), businessID, leadID, s2).Return(nil)
		stages.EXPECT().Pipeline(gomock.Any(), businessID, pipelineID).Return(p, nil)
		stages.EXPECT().Stages(gomock.Any(), businessID, pipelineID).Return([]*pipeline.Stage{target}, nil)
		leads.EXPECT().ListByPipeline(gomock.Any(), businessID, pipelineID).Return([]*lead.Lead{moved}, nil)

		svc := board.NewService(stages, leads)
		b, err := svc.Drop(context.Background(), businessID, pipelineID, leadID, s1, s2)
		require.NoError(t, err)
		require.NotNil(t, b)

		col := b.Column(s2)
		require.NotNil(t, col)
		require.Len(t, col.Leads, 1)
		assert.Equal(t, leadID, col.Leads[0].ID)
		assert.Equal(t, int64(700), col.Leads[0].Value)
		assert.Nil(t, col.Leads[0].ClosedAt)
	})

	t.Run("RejectedMoveLeavesNoBoard", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		stages := board.NewMockStageSource(ctrl)
		leads := board.NewMockLeadSource(ctrl)

		leads.EXPECT().Move(gomock.Any(), businessID, leadID, s2).Return(errors.New("permission denied"))

		svc := board.NewService(stages, leads)
		b, err := svc.Drop(context.Background(), businessID, pipelineID, leadID, s1, s2)
		assert.Error(t, err)
		assert.Nil(t, b)
	})
}

func TestService_Archive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	businessID := uuid.New()
	pipelineID := uuid.New()
	leadID := uuid.New()

	stages := board.NewMockStageSource(ctrl)
	leads := board.NewMockLeadSource(ctrl)

	p := &pipeline.Pipeline{ID: pipelineID, BusinessID: businessID}

	leads.EXPECT().Archive(gomock.Any(), businessID, leadID, true).Return(nil)
	stages.EXPECT().Pipeline(gomock.Any(), businessID, pipelineID).Return(p, nil)
	stages.EXPECT().Stages(gomock.Any(), businessID, pipelineID).Return(nil, nil)
	leads.EXPECT().ListByPipeline(gomock.Any(), businessID, pipelineID).Return(nil, nil)

	svc := board.NewService(stages, leads)
	b, err := svc.Archive(context.Background(), businessID, pipelineID, leadID, true)
	require.NoError(t, err)
	assert.NotNil(t, b)
	assert.Empty(t, b.Columns)
}
