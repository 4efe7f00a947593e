package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/opalessence/backend/internal/domain/catalog"
	"github.com/opalessence/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

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

func TestList_All(t *testing.T) {
	repo := new(MockProductRepository)
	svc := NewService(repo)

	ring := catalog.NewProduct("Opal Ring", "", decimal.NewFromInt(245), "rings", "")
	repo.On("FindAll", mock.Anything).Return([]catalog.Product{*ring}, nil)

	products, err := svc.List(context.Background(), "", "")

	require.NoError(t, err)
	assert.Len(t, products, 1)
	repo.AssertNotCalled(t, "FindByCategory", mock.Anything, mock.Anything)
}

func TestList_ByCategory(t *testing.T) {
	repo := new(MockProductRepository)
	svc := NewService(repo)

	repo.On("FindByCategory", mock.Anything, "rings").Return([]catalog.Product{}, nil)

	_, err := svc.List(context.Background(), "rings", "")

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestList_SearchWinsOverCategory(t *testing.T) {
	repo := new(MockProductRepository)
	svc := NewService(repo)

	repo.On("Search", mock.Anything, "rings", "opal").Return([]catalog.Product{}, nil)

	_, err := svc.List(context.Background(), "rings", "opal")

	require.NoError(t, err)
	repo.AssertNotCalled(t, "FindByCategory", mock.Anything, mock.Anything)
}

func TestGet_NotFound(t *testing.T) {
	repo := new(MockProductRepository)
	svc := NewService(repo)

	id := uuid.New()
	repo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

	_, err := svc.Get(context.Background(), id)

	assert.ErrorIs(t, err, shared.ErrNotFound)
}
