package wishlist

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for wishlist persistence
type Repository interface {
	// FindByUser lists a user's wishlist items, newest first
	FindByUser(ctx context.Context, userID uuid.UUID) ([]Item, error)

	// Exists checks whether the user already wishlisted the product
	Exists(ctx context.Context, userID, productID uuid.UUID) (bool, error)

	// Save adds an item to the wishlist
	Save(ctx context.Context, item *Item) error

	// Delete removes a product from the user's wishlist
	Delete(ctx context.Context, userID, productID uuid.UUID) error
}
