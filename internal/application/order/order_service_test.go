package order

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/opalessence/backend/internal/domain/order"
	"github.com/opalessence/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockOrderRepository is a mock implementation of order.Repository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByOrderNumber(ctx context.Context, orderNumber string) (*order.Order, error) {
	args := m.Called(ctx, orderNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]order.Order, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]order.Order), args.Error(1)
}

func (m *MockOrderRepository) Save(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func placedOrder(userID uuid.UUID) *order.Order {
	items := []order.Item{{ProductID: uuid.New(), ProductName: "Opal Ring", UnitPrice: decimal.NewFromInt(120), Quantity: 1}}
	shipping := order.ShippingDetails{State: "OR", ZipCode: "97201", Method: "ground", EstimatedDays: "2-3"}
	summary := order.Summary{Subtotal: decimal.NewFromInt(120), Shipping: decimal.NewFromInt(15), Total: decimal.NewFromInt(135)}
	return order.NewOrder(userID, items, shipping, summary, order.PaymentCompleted)
}

func TestGet(t *testing.T) {
	repo := new(MockOrderRepository)
	svc := NewService(repo, zap.NewNop())

	userID := uuid.New()
	o := placedOrder(userID)
	repo.On("FindByID", mock.Anything, o.ID).Return(o, nil)

	found, err := svc.Get(context.Background(), userID, o.ID)

	require.NoError(t, err)
	assert.Equal(t, o.OrderNumber, found.OrderNumber)
}

func TestGet_OtherUsersOrderIsHidden(t *testing.T) {
	repo := new(MockOrderRepository)
	svc := NewService(repo, zap.NewNop())

	o := placedOrder(uuid.New())
	repo.On("FindByID", mock.Anything, o.ID).Return(o, nil)

	_, err := svc.Get(context.Background(), uuid.New(), o.ID)

	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGet_NotFound(t *testing.T) {
	repo := new(MockOrderRepository)
	svc := NewService(repo, zap.NewNop())

	id := uuid.New()
	repo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

	_, err := svc.Get(context.Background(), uuid.New(), id)

	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestTracking(t *testing.T) {
	repo := new(MockOrderRepository)
	svc := NewService(repo, zap.NewNop())

	userID := uuid.New()
	o := placedOrder(userID)
	require.NoError(t, o.UpdateStatus(order.StatusProcessing))
	require.NoError(t, o.UpdateStatus(order.StatusShipped))
	repo.On("FindByID", mock.Anything, o.ID).Return(o, nil)

	info, err := svc.Tracking(context.Background(), userID, o.ID)

	require.NoError(t, err)
	assert.Equal(t, order.StatusShipped, info.Status)
	assert.Equal(t, "Package in transit from Newberg, OR", info.Message)
	assert.Equal(t, o.TrackingNumber, info.TrackingNumber)
}

func TestUpdateStatus(t *testing.T) {
	repo := new(MockOrderRepository)
	svc := NewService(repo, zap.NewNop())

	o := placedOrder(uuid.New())
	repo.On("FindByID", mock.Anything, o.ID).Return(o, nil)
	repo.On("Save", mock.Anything, o).Return(nil)

	updated, err := svc.UpdateStatus(context.Background(), o.ID, order.StatusProcessing)

	require.NoError(t, err)
	assert.Equal(t, order.StatusProcessing, updated.Status)
	repo.AssertExpectations(t)
}

func TestUpdateStatus_InvalidTransitionNotSaved(t *testing.T) {
	repo := new(MockOrderRepository)
	svc := NewService(repo, zap.NewNop())

	o := placedOrder(uuid.New())
	repo.On("FindByID", mock.Anything, o.ID).Return(o, nil)

	_, err := svc.UpdateStatus(context.Background(), o.ID, order.StatusDelivered)

	assert.Error(t, err)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCancel(t *testing.T) {
	repo := new(MockOrderRepository)
	svc := NewService(repo, zap.NewNop())

	userID := uuid.New()
	o := placedOrder(userID)
	repo.On("FindByID", mock.Anything, o.ID).Return(o, nil)
	repo.On("Save", mock.Anything, o).Return(nil)

	cancelled, err := svc.Cancel(context.Background(), userID, o.ID)

	require.NoError(t, err)
	assert.Equal(t, order.StatusCancelled, cancelled.Status)
}

func TestCancel_ShippedOrderCannotBeCancelled(t *testing.T) {
	repo := new(MockOrderRepository)
	svc := NewService(repo, zap.NewNop())

	userID := uuid.New()
	o := placedOrder(userID)
	require.NoError(t, o.UpdateStatus(order.StatusProcessing))
	require.NoError(t, o.UpdateStatus(order.StatusShipped))
	repo.On("FindByID", mock.Anything, o.ID).Return(o, nil)

	_, err := svc.Cancel(context.Background(), userID, o.ID)

	assert.Error(t, err)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestListByUser(t *testing.T) {
	repo := new(MockOrderRepository)
	svc := NewService(repo, zap.NewNop())

	userID := uuid.New()
	repo.On("FindByUser", mock.Anything, userID).Return([]order.Order{*placedOrder(userID), *placedOrder(userID)}, nil)

	orders, err := svc.ListByUser(context.Background(), userID)

	require.NoError(t, err)
	assert.Len(t, orders, 2)
}
