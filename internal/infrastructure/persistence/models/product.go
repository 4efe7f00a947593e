package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/opalessence/backend/internal/domain/catalog"
	"github.com/opalessence/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ProductModel is the database model for catalog products
type ProductModel struct {
	ID          string `gorm:"primaryKey;type:varchar(36)"`
	Name        string `gorm:"not null"`
	Description string
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Category    string          `gorm:"index"`
	ImageURL    string
	InStock     bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the model to a domain entity
func (m *ProductModel) ToDomain() (*catalog.Product, error) {
	id, err := uuid.Parse(m.ID)
	if err != nil {
		return nil, err
	}
	return &catalog.Product{
		BaseEntity: shared.BaseEntity{
			ID:        id,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		Category:    m.Category,
		ImageURL:    m.ImageURL,
		InStock:     m.InStock,
	}, nil
}

// ProductModelFromDomain converts a domain entity to the database model
func ProductModelFromDomain(p *catalog.Product) *ProductModel {
	return &ProductModel{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		ImageURL:    p.ImageURL,
		InStock:     p.InStock,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
