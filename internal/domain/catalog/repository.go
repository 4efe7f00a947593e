package catalog

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for product persistence
type Repository interface {
	// FindByID finds a product by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindAll lists all products
	FindAll(ctx context.Context) ([]Product, error)

	// FindByCategory lists products in a category
	FindByCategory(ctx context.Context, category string) ([]Product, error)

	// Search lists products whose name or description matches the query,
	// optionally restricted to a category
	Search(ctx context.Context, category, query string) ([]Product, error)

	// Save creates or updates a product
	Save(ctx context.Context, p *Product) error
}
