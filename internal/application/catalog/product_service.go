package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/opalessence/backend/internal/domain/catalog"
)

// Service exposes read access to the product catalog
type Service struct {
	products catalog.Repository
}

// NewService creates a new catalog service
func NewService(products catalog.Repository) *Service {
	return &Service{products: products}
}

// Get returns a product by ID
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	return s.products.FindByID(ctx, id)
}

// List returns products, optionally filtered by category and search query
func (s *Service) List(ctx context.Context, category, query string) ([]catalog.Product, error) {
	if query != "" {
		return s.products.Search(ctx, category, query)
	}
	if category != "" {
		return s.products.FindByCategory(ctx, category)
	}
	return s.products.FindAll(ctx)
}
