package product_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/nveloso/pipeflow/internal/product"
)

func TestService_Search(t *testing.T) {
	businessID := uuid.New()

	t.Run("ReturnsMatches", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := product.NewMockRepository(ctrl)
		repo.EXPECT().
			SearchProducts(gomock.Any(), businessID, "widget", gomock.Any()).
			Return([]*product.Product{{ID: uuid.New(), Name: "Widget"}}, nil)

		svc := product.NewService(repo)
		got, err := svc.Search(context.Background(), businessID, "  widget ")
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("BlankQuerySkipsStore", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := product.NewMockRepository(ctrl)
		svc := product.NewService(repo)

		got, err := svc.Search(context.Background(), businessID, "   ")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("SupersededQueryDiscardsResults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ctx, cancel := context.WithCancel(context.Background())

		repo := product.NewMockRepository(ctrl)
		repo.EXPECT().
			SearchProducts(gomock.Any(), businessID, "wid", gomock.Any()).
			DoAndReturn(func(context.Context, uuid.UUID, string, int) ([]*product.Product, error) {
				// A newer keystroke cancels this query while its
				// response is in flight.
				cancel()

				return []*product.Product{{ID: uuid.New(), Name: "Widget"}}, nil
			})

		svc := product.NewService(repo)
		got, err := svc.Search(ctx, businessID, "wid")
		assert.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, got)
	})
}
