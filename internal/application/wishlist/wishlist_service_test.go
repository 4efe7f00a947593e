package wishlist

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/opalessence/backend/internal/domain/catalog"
	"github.com/opalessence/backend/internal/domain/shared"
	"github.com/opalessence/backend/internal/domain/wishlist"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockWishlistRepository is a mock implementation of wishlist.Repository
type MockWishlistRepository struct {
	mock.Mock
}

func (m *MockWishlistRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]wishlist.Item, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]wishlist.Item), args.Error(1)
}

func (m *MockWishlistRepository) Exists(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, productID)
	return args.Bool(0), args.Error(1)
}

func (m *MockWishlistRepository) Save(ctx context.Context, item *wishlist.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockWishlistRepository) Delete(ctx context.Context, userID, productID uuid.UUID) error {
	args := m.Called(ctx, userID, productID)
	return args.Error(0)
}

// MockProductRepository is a mock implementation of catalog.Repository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context) ([]catalog.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByCategory(ctx context.Context, category string) ([]catalog.Product, error) {
	args := m.Called(ctx, category)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Search(ctx context.Context, category, query string) ([]catalog.Product, error) {
	args := m.Called(ctx, category, query)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, p *catalog.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func TestAdd(t *testing.T) {
	items := new(MockWishlistRepository)
	products := new(MockProductRepository)
	svc := NewService(items, products)

	product := catalog.NewProduct("Opal Earrings", "", decimal.NewFromInt(65), "earrings", "")
	userID := uuid.New()
	products.On("FindByID", mock.Anything, product.ID).Return(product, nil)
	items.On("Exists", mock.Anything, userID, product.ID).Return(false, nil)
	items.On("Save", mock.Anything, mock.AnythingOfType("*wishlist.Item")).Return(nil)

	item, err := svc.Add(context.Background(), userID, product.ID)

	require.NoError(t, err)
	assert.Equal(t, userID, item.UserID)
	assert.Equal(t, product.ID, item.ProductID)
	items.AssertExpectations(t)
}

func TestAdd_DuplicateRejected(t *testing.T) {
	items := new(MockWishlistRepository)
	products := new(MockProductRepository)
	svc := NewService(items, products)

	product := catalog.NewProduct("Opal Earrings", "", decimal.NewFromInt(65), "earrings", "")
	userID := uuid.New()
	products.On("FindByID", mock.Anything, product.ID).Return(product, nil)
	items.On("Exists", mock.Anything, userID, product.ID).Return(true, nil)

	_, err := svc.Add(context.Background(), userID, product.ID)

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	items.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestAdd_UnknownProduct(t *testing.T) {
	items := new(MockWishlistRepository)
	products := new(MockProductRepository)
	svc := NewService(items, products)

	id := uuid.New()
	products.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

	_, err := svc.Add(context.Background(), uuid.New(), id)

	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestList_SkipsVanishedProducts(t *testing.T) {
	items := new(MockWishlistRepository)
	products := new(MockProductRepository)
	svc := NewService(items, products)

	userID := uuid.New()
	kept := catalog.NewProduct("Opal Ring", "", decimal.NewFromInt(120), "rings", "")
	gone := uuid.New()
	items.On("FindByUser", mock.Anything, userID).Return([]wishlist.Item{
		*wishlist.NewItem(userID, kept.ID),
		*wishlist.NewItem(userID, gone),
	}, nil)
	products.On("FindByID", mock.Anything, kept.ID).Return(kept, nil)
	products.On("FindByID", mock.Anything, gone).Return(nil, shared.ErrNotFound)

	entries, err := svc.List(context.Background(), userID)

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Opal Ring", entries[0].Product.Name)
}

func TestContains(t *testing.T) {
	items := new(MockWishlistRepository)
	svc := NewService(items, new(MockProductRepository))

	userID, productID := uuid.New(), uuid.New()
	items.On("Exists", mock.Anything, userID, productID).Return(true, nil)

	found, err := svc.Contains(context.Background(), userID, productID)

	require.NoError(t, err)
	assert.True(t, found)
}

func TestRemove(t *testing.T) {
	items := new(MockWishlistRepository)
	svc := NewService(items, new(MockProductRepository))

	userID, productID := uuid.New(), uuid.New()
	items.On("Delete", mock.Anything, userID, productID).Return(nil)

	assert.NoError(t, svc.Remove(context.Background(), userID, productID))
	items.AssertExpectations(t)
}
