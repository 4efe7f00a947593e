package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/opalessence/backend/internal/domain/wishlist"
	"github.com/opalessence/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormWishlistRepository implements wishlist.Repository using GORM
type GormWishlistRepository struct {
	db *gorm.DB
}

// NewGormWishlistRepository creates a new wishlist repository
func NewGormWishlistRepository(db *gorm.DB) *GormWishlistRepository {
	return &GormWishlistRepository{db: db}
}

// FindByUser lists a user's wishlist items, newest first
func (r *GormWishlistRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]wishlist.Item, error) {
	var itemModels []models.WishlistItemModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID.String()).
		Order("created_at DESC").
		Find(&itemModels).Error
	if err != nil {
		return nil, err
	}

	items := make([]wishlist.Item, 0, len(itemModels))
	for _, model := range itemModels {
		item, err := model.ToDomain()
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, nil
}

// Exists checks whether the user already wishlisted the product
func (r *GormWishlistRepository) Exists(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.WishlistItemModel{}).
		Where("user_id = ? AND product_id = ?", userID.String(), productID.String()).
		Count(&count).Error
	return count > 0, err
}

// Save adds an item to the wishlist
func (r *GormWishlistRepository) Save(ctx context.Context, item *wishlist.Item) error {
	return r.db.WithContext(ctx).Save(models.WishlistItemModelFromDomain(item)).Error
}

// Delete removes a product from the user's wishlist
func (r *GormWishlistRepository) Delete(ctx context.Context, userID, productID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID.String(), productID.String()).
		Delete(&models.WishlistItemModel{}).Error
}
