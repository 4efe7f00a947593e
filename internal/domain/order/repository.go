package order

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for order persistence.
// Lookups for unknown IDs return shared.ErrNotFound.
type Repository interface {
	// FindByID finds an order by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// FindByOrderNumber finds an order by its human-readable order number
	FindByOrderNumber(ctx context.Context, orderNumber string) (*Order, error)

	// FindByUser finds all orders placed by a user, newest first
	FindByUser(ctx context.Context, userID uuid.UUID) ([]Order, error)

	// Save creates or updates an order
	Save(ctx context.Context, o *Order) error
}
