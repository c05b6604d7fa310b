package lead_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/nveloso/pipeflow/internal/lead"
)

var businessID = uuid.New()

func activeLead(stageID uuid.UUID) *lead.Lead {
	return &lead.Lead{
		ID:           uuid.New(),
		BusinessID:   businessID,
		StageID:      &stageID,
		CustomerName: "Acme Corp",
		Value:        120000,
	}
}

func closedLead() *lead.Lead {
	closedAt := time.Now().UTC()

	return &lead.Lead{
		ID:           uuid.New(),
		BusinessID:   businessID,
		CustomerName: "Gone Inc",
		ClosedAt:     &closedAt,
	}
}

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		params    lead.CreateParams
		setupMock func(m *lead.MockRepository)
		wantErr   error
	}

	stageID := uuid.New()

	tests := []testCase{
		{
			name: "Success",
			params: lead.CreateParams{
				BusinessID:   businessID,
				StageID:      stageID,
				CustomerName: "Acme Corp",
				Value:        50000,
			},
			setupMock: func(m *lead.MockRepository) {
				m.EXPECT().
					CreateLead(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, l *lead.Lead) error {
						l.ID = uuid.New()
						l.CreatedAt = time.Now()
						return nil
					})
			},
		},
		{
			name: "EmptyNameRejectedBeforeAnyCall",
			params: lead.CreateParams{
				BusinessID: businessID,
				StageID:    stageID,
			},
			wantErr: lead.ErrEmptyName,
		},
		{
			name: "MissingStageRejected",
			params: lead.CreateParams{
				BusinessID:   businessID,
				CustomerName: "Acme Corp",
			},
			wantErr: lead.ErrNoStage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := lead.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := lead.NewService(repo)
			got, err := svc.Create(context.Background(), tt.params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got.StageID)
			assert.Equal(t, tt.params.StageID, *got.StageID)
			assert.Nil(t, got.ClosedAt)
		})
	}
}

func TestService_Move(t *testing.T) {
	s1 := uuid.New()
	s2 := uuid.New()

	t.Run("SingleStageWrite", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := lead.NewMockRepository(ctrl)
		l := activeLead(s1)

		repo.EXPECT().GetLead(gomock.Any(), businessID, l.ID).Return(l, nil)
		repo.EXPECT().UpdateLeadStage(gomock.Any(), businessID, l.ID, s2).Return(nil)

		svc := lead.NewService(repo)
		require.NoError(t, svc.Move(context.Background(), businessID, l.ID, s2))
	})

	t.Run("ClosedLeadRejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := lead.NewMockRepository(ctrl)
		l := closedLead()

		repo.EXPECT().GetLead(gomock.Any(), businessID, l.ID).Return(l, nil)

		svc := lead.NewService(repo)
		assert.ErrorIs(t, svc.Move(context.Background(), businessID, l.ID, s2), lead.ErrClosed)
	})

	t.Run("NotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := lead.NewMockRepository(ctrl)
		id := uuid.New()

		repo.EXPECT().GetLead(gomock.Any(), businessID, id).Return(nil, lead.ErrNotFound)

		svc := lead.NewService(repo)
		assert.ErrorIs(t, svc.Move(context.Background(), businessID, id, s2), lead.ErrNotFound)
	})
}

func TestService_Archive(t *testing.T) {
	t.Run("WithRevenue", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := lead.NewMockRepository(ctrl)
		l := activeLead(uuid.New())

		repo.EXPECT().GetLead(gomock.Any(), businessID, l.ID).Return(l, nil)
		repo.EXPECT().
			ArchiveLead(gomock.Any(), businessID, l.ID, true, gomock.Any()).
			Return(nil)

		svc := lead.NewService(repo)
		require.NoError(t, svc.Archive(context.Background(), businessID, l.ID, true))
	})

	t.Run("WithoutRevenue", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := lead.NewMockRepository(ctrl)
		l := activeLead(uuid.New())

		repo.EXPECT().GetLead(gomock.Any(), businessID, l.ID).Return(l, nil)
		repo.EXPECT().
			ArchiveLead(gomock.Any(), businessID, l.ID, false, gomock.Any()).
			Return(nil)

		svc := lead.NewService(repo)
		require.NoError(t, svc.Archive(context.Background(), businessID, l.ID, false))
	})

	t.Run("ArchiveIsTerminal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := lead.NewMockRepository(ctrl)
		l := closedLead()

		repo.EXPECT().GetLead(gomock.Any(), businessID, l.ID).Return(l, nil)

		svc := lead.NewService(repo)
		assert.ErrorIs(t, svc.Archive(context.Background(), businessID, l.ID, true), lead.ErrClosed)
	})
}

func TestService_AddItem(t *testing.T) {
	leadID := uuid.New()
	productID := uuid.New()

	t.Run("NewProductAppendsLineAndResyncs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := lead.NewMockRepository(ctrl)

		repo.EXPECT().ListItems(gomock.Any(), businessID, leadID).Return(nil, nil)
		repo.EXPECT().
			CreateItem(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, it *lead.Item) error {
				assert.Equal(t, productID, it.ProductID)
				assert.Equal(t, 1, it.Quantity)
				it.ID = uuid.New()
				return nil
			})
		repo.EXPECT().ListItems(gomock.Any(), businessID, leadID).Return([]*lead.Item{
			{ProductID: productID, Price: 1000, Quantity: 1},
		}, nil)
		repo.EXPECT().UpdateLeadValue(gomock.Any(), businessID, leadID, int64(1000)).Return(nil)

		svc := lead.NewService(repo)
		require.NoError(t, svc.AddItem(context.Background(), lead.AddItemParams{
			BusinessID: businessID,
			LeadID:     leadID,
			ProductID:  productID,
			Name:       "Widget",
			SKU:        "W-1",
			Price:      1000,
			Quantity:   1,
		}))
	})

	t.Run("ExistingProductIncrementsQuantity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := lead.NewMockRepository(ctrl)
		existing := &lead.Item{ID: uuid.New(), ProductID: productID, Price: 1000, Quantity: 2}

		repo.EXPECT().ListItems(gomock.Any(), businessID, leadID).Return([]*lead.Item{existing}, nil)
		repo.EXPECT().UpdateItemQuantity(gomock.Any(), businessID, existing.ID, 3).Return(nil)
		repo.EXPECT().ListItems(gomock.Any(), businessID, leadID).Return([]*lead.Item{
			{ProductID: productID, Price: 1000, Quantity: 3},
		}, nil)
		repo.EXPECT().UpdateLeadValue(gomock.Any(), businessID, leadID, int64(3000)).Return(nil)

		svc := lead.NewService(repo)
		require.NoError(t, svc.AddItem(context.Background(), lead.AddItemParams{
			BusinessID: businessID,
			LeadID:     leadID,
			ProductID:  productID,
			Price:      1000,
			Quantity:   1,
		}))
	})
}

func TestService_SetItemQuantity(t *testing.T) {
	leadID := uuid.New()
	itemID := uuid.New()

	t.Run("UpdatesAndResyncs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := lead.NewMockRepository(ctrl)

		repo.EXPECT().UpdateItemQuantity(gomock.Any(), businessID, itemID, 4).Return(nil)
		repo.EXPECT().ListItems(gomock.Any(), businessID, leadID).Return([]*lead.Item{
			{ID: itemID, Price: 500, Quantity: 4},
			{ID: uuid.New(), Price: 1000, Quantity: 2},
		}, nil)
		repo.EXPECT().UpdateLeadValue(gomock.Any(), businessID, leadID, int64(4000)).Return(nil)

		svc := lead.NewService(repo)
		require.NoError(t, svc.SetItemQuantity(context.Background(), businessID, leadID, itemID, 4))
	})

	t.Run("QuantityBelowOneRemovesLine", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := lead.NewMockRepository(ctrl)

		repo.EXPECT().DeleteItem(gomock.Any(), businessID, itemID).Return(nil)
		repo.EXPECT().ListItems(gomock.Any(), businessID, leadID).Return(nil, nil)
		repo.EXPECT().UpdateLeadValue(gomock.Any(), businessID, leadID, int64(0)).Return(nil)

		svc := lead.NewService(repo)
		require.NoError(t, svc.SetItemQuantity(context.Background(), businessID, leadID, itemID, 0))
	})

	t.Run("ResyncFailureSurfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := lead.NewMockRepository(ctrl)

		repo.EXPECT().UpdateItemQuantity(gomock.Any(), businessID, itemID, 2).Return(nil)
		repo.EXPECT().ListItems(gomock.Any(), businessID, leadID).Return(nil, errors.New("db down"))

		svc := lead.NewService(repo)
		assert.Error(t, svc.SetItemQuantity(context.Background(), businessID, leadID, itemID, 2))
	})
}

func TestItemsTotal(t *testing.T) {
	items := []*lead.Item{
		{Price: 1000, Quantity: 2},
		{Price: 500, Quantity: 3},
	}

	assert.Equal(t, int64(3500), lead.ItemsTotal(items))
	assert.Equal(t, int64(0), lead.ItemsTotal(nil))
}
