package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/opalessence/backend/internal/domain/catalog"
	"github.com/opalessence/backend/internal/domain/shared"
	"github.com/opalessence/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormProductRepository implements catalog.Repository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new product repository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindByID finds a product by ID
func (r *GormProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	var model models.ProductModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", id.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain()
}

// FindAll lists all products
func (r *GormProductRepository) FindAll(ctx context.Context) ([]catalog.Product, error) {
	var productModels []models.ProductModel
	if err := r.db.WithContext(ctx).Order("name").Find(&productModels).Error; err != nil {
		return nil, err
	}
	return toProducts(productModels)
}

// FindByCategory lists products in a category
func (r *GormProductRepository) FindByCategory(ctx context.Context, category string) ([]catalog.Product, error) {
	var productModels []models.ProductModel
	err := r.db.WithContext(ctx).
		Where("category = ?", category).
		Order("name").
		Find(&productModels).Error
	if err != nil {
		return nil, err
	}
	return toProducts(productModels)
}

// Search lists products whose name or description matches the query,
// optionally restricted to a category. Matching is case insensitive.
func (r *GormProductRepository) Search(ctx context.Context, category, query string) ([]catalog.Product, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	tx := r.db.WithContext(ctx).
		Where("(LOWER(name) LIKE ? OR LOWER(description) LIKE ?)", pattern, pattern)
	if category != "" {
		tx = tx.Where("category = ?", category)
	}
	var productModels []models.ProductModel
	if err := tx.Order("name").Find(&productModels).Error; err != nil {
		return nil, err
	}
	return toProducts(productModels)
}

// Save creates or updates a product
func (r *GormProductRepository) Save(ctx context.Context, p *catalog.Product) error {
	return r.db.WithContext(ctx).Save(models.ProductModelFromDomain(p)).Error
}

func toProducts(productModels []models.ProductModel) ([]catalog.Product, error) {
	products := make([]catalog.Product, 0, len(productModels))
	for _, model := range productModels {
		p, err := model.ToDomain()
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, nil
}
