package wishlist

import (
	"github.com/google/uuid"
	"github.com/opalessence/backend/internal/domain/shared"
)

// Item is a product a user has saved for later.
// A user can hold at most one item per product.
type Item struct {
	shared.BaseEntity
	UserID    uuid.UUID
	ProductID uuid.UUID
}

// NewItem creates a new wishlist entry
func NewItem(userID, productID uuid.UUID) *Item {
	return &Item{
		BaseEntity: shared.NewBaseEntity(),
		UserID:     userID,
		ProductID:  productID,
	}
}
