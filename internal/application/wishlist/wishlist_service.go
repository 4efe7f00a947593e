package wishlist

import (
	"context"

	"github.com/google/uuid"
	"github.com/opalessence/backend/internal/domain/catalog"
	"github.com/opalessence/backend/internal/domain/shared"
	"github.com/opalessence/backend/internal/domain/wishlist"
)

// Entry pairs a wishlist item with its product
type Entry struct {
	Item    wishlist.Item
	Product catalog.Product
}

// Service manages per-user wishlists
type Service struct {
	items    wishlist.Repository
	products catalog.Repository
}

// NewService creates a new wishlist service
func NewService(items wishlist.Repository, products catalog.Repository) *Service {
	return &Service{items: items, products: products}
}

// Add puts a product on the user's wishlist. Adding a product twice is
// rejected.
func (s *Service) Add(ctx context.Context, userID, productID uuid.UUID) (*wishlist.Item, error) {
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return nil, err
	}

	exists, err := s.items.Exists(ctx, userID, productID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Product is already on the wishlist")
	}

	item := wishlist.NewItem(userID, productID)
	if err := s.items.Save(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Contains reports whether a product is on the user's wishlist
func (s *Service) Contains(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	return s.items.Exists(ctx, userID, productID)
}

// Remove takes a product off the user's wishlist
func (s *Service) Remove(ctx context.Context, userID, productID uuid.UUID) error {
	return s.items.Delete(ctx, userID, productID)
}

// List returns the user's wishlist with product details, newest first
func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]Entry, error) {
	items, err := s.items.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(items))
	for _, item := range items {
		product, err := s.products.FindByID(ctx, item.ProductID)
		if err != nil {
			// Products removed from the catalog drop off the wishlist view
			continue
		}
		entries = append(entries, Entry{Item: item, Product: *product})
	}
	return entries, nil
}
