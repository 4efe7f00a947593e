package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/opalessence/backend/internal/domain/shared"
	"github.com/opalessence/backend/internal/domain/wishlist"
)

// WishlistItemModel is the database model for wishlist entries
type WishlistItemModel struct {
	ID        string `gorm:"primaryKey;type:varchar(36)"`
	UserID    string `gorm:"index;uniqueIndex:idx_wishlist_user_product;type:varchar(36);not null"`
	ProductID string `gorm:"uniqueIndex:idx_wishlist_user_product;type:varchar(36);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name
func (WishlistItemModel) TableName() string {
	return "wishlist_items"
}

// ToDomain converts the model to a domain entity
func (m *WishlistItemModel) ToDomain() (*wishlist.Item, error) {
	id, err := uuid.Parse(m.ID)
	if err != nil {
		return nil, err
	}
	userID, err := uuid.Parse(m.UserID)
	if err != nil {
		return nil, err
	}
	productID, err := uuid.Parse(m.ProductID)
	if err != nil {
		return nil, err
	}
	return &wishlist.Item{
		BaseEntity: shared.BaseEntity{
			ID:        id,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		UserID:    userID,
		ProductID: productID,
	}, nil
}

// WishlistItemModelFromDomain converts a domain entity to the database model
func WishlistItemModelFromDomain(item *wishlist.Item) *WishlistItemModel {
	return &WishlistItemModel{
		ID:        item.ID.String(),
		UserID:    item.UserID.String(),
		ProductID: item.ProductID.String(),
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}
