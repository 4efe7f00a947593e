package catalog

import (
	"github.com/opalessence/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Product is a catalog item available for purchase
type Product struct {
	shared.BaseEntity
	Name        string
	Description string
	Price       decimal.Decimal
	Category    string
	ImageURL    string
	InStock     bool
}

// NewProduct creates a new in-stock product
func NewProduct(name, description string, price decimal.Decimal, category, imageURL string) *Product {
	return &Product{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        name,
		Description: description,
		Price:       price,
		Category:    category,
		ImageURL:    imageURL,
		InStock:     true,
	}
}
