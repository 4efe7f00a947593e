package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	appwishlist "github.com/opalessence/backend/internal/application/wishlist"
	"github.com/opalessence/backend/internal/interfaces/http/dto"
	"github.com/opalessence/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// WishlistHandler serves per-user wishlists
type WishlistHandler struct {
	BaseHandler
	wishlist *appwishlist.Service
}

// NewWishlistHandler creates a new wishlist handler
func NewWishlistHandler(wishlist *appwishlist.Service, logger *zap.Logger) *WishlistHandler {
	return &WishlistHandler{BaseHandler: NewBaseHandler(logger), wishlist: wishlist}
}

// List returns the user's wishlist
func (h *WishlistHandler) List(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("UNAUTHORIZED", "Not authenticated"))
		return
	}

	entries, err := h.wishlist.List(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	views := make([]dto.WishlistEntryResponse, 0, len(entries))
	for _, entry := range entries {
		views = append(views, dto.NewWishlistEntryResponse(entry))
	}
	h.ListOK(c, views, len(views))
}

// Add puts a product on the user's wishlist
func (h *WishlistHandler) Add(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("UNAUTHORIZED", "Not authenticated"))
		return
	}

	var req dto.AddWishlistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		h.BadRequest(c, "invalid product id")
		return
	}

	if _, err := h.wishlist.Add(c.Request.Context(), userID, productID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, gin.H{"message": "Added to wishlist"})
}

// Contains reports whether a product is on the user's wishlist
func (h *WishlistHandler) Contains(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("UNAUTHORIZED", "Not authenticated"))
		return
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		h.BadRequest(c, "invalid product id")
		return
	}

	found, err := h.wishlist.Contains(c.Request.Context(), userID, productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"inWishlist": found})
}

// Remove takes a product off the user's wishlist
func (h *WishlistHandler) Remove(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("UNAUTHORIZED", "Not authenticated"))
		return
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		h.BadRequest(c, "invalid product id")
		return
	}

	if err := h.wishlist.Remove(c.Request.Context(), userID, productID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"message": "Removed from wishlist"})
}
