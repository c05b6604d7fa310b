package cart_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/nveloso/pipeflow/internal/cart"
	"github.com/nveloso/pipeflow/internal/sale"
)

func TestService_Checkout_SuccessClearsCart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	businessID := uuid.New()
	employeeID := uuid.New()

	c := cart.New(true, 10)
	require.NoError(t, c.Add(widget(1000, 5)))
	require.NoError(t, c.Increment(c.Lines[0].ProductID))

	committer := cart.NewMockCommitter(ctrl)
	committer.EXPECT().
		Commit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req sale.CommitRequest) (*sale.CommitResult, error) {
			assert.Equal(t, businessID, req.BusinessID)
			assert.Equal(t, employeeID, req.EmployeeID)
			assert.Equal(t, int64(2000), req.Subtotal)
			assert.Equal(t, 10.0, req.AppliedTaxPercent)
			assert.Equal(t, int64(2200), req.Total)
			require.Len(t, req.Items, 1)
			assert.Equal(t, 2, req.Items[0].Quantity)
			assert.Nil(t, req.LeadID)

			return &sale.CommitResult{SaleID: uuid.New(), OrderNumber: 41}, nil
		})

	svc := cart.NewService(committer)
	result, err := svc.Checkout(context.Background(), businessID, employeeID, c, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(41), result.OrderNumber)
	assert.True(t, c.Empty())
}

func TestService_Checkout_FailureKeepsCart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c := cart.New(false, 0)
	require.NoError(t, c.Add(widget(1000, 5)))

	committer := cart.NewMockCommitter(ctrl)
	committer.EXPECT().
		Commit(gomock.Any(), gomock.Any()).
		Return(nil, sale.ErrInsufficientStock)

	svc := cart.NewService(committer)
	result, err := svc.Checkout(context.Background(), uuid.New(), uuid.New(), c, nil)
	assert.ErrorIs(t, err, sale.ErrInsufficientStock)
	assert.Nil(t, result)

	// The cart stays intact so the same checkout can be retried.
	require.Len(t, c.Lines, 1)
	assert.Equal(t, 1, c.Lines[0].Quantity)
}

func TestService_Checkout_EmptyCartRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	committer := cart.NewMockCommitter(ctrl)
	svc := cart.NewService(committer)

	result, err := svc.Checkout(context.Background(), uuid.New(), uuid.New(), cart.New(false, 0), nil)
	assert.ErrorIs(t, err, cart.ErrEmptyCart)
	assert.Nil(t, result)
}

func TestService_Checkout_AttachesLead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	leadID := uuid.New()

	c := cart.New(false, 12.5)
	require.NoError(t, c.Add(widget(1000, 5)))

	committer := cart.NewMockCommitter(ctrl)
	committer.EXPECT().
		Commit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req sale.CommitRequest) (*sale.CommitResult, error) {
			require.NotNil(t, req.LeadID)
			assert.Equal(t, leadID, *req.LeadID)
			// Disabled tax never reaches the commit request.
			assert.Equal(t, 0.0, req.AppliedTaxPercent)

			return &sale.CommitResult{SaleID: uuid.New(), OrderNumber: 1}, nil
		})

	svc := cart.NewService(committer)
	_, err := svc.Checkout(context.Background(), uuid.New(), uuid.New(), c, &leadID)
	require.NoError(t, err)
}
