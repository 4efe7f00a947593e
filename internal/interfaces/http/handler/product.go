package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	appcatalog "github.com/opalessence/backend/internal/application/catalog"
	"github.com/opalessence/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// ProductHandler serves the product catalog
type ProductHandler struct {
	BaseHandler
	catalog *appcatalog.Service
}

// NewProductHandler creates a new product handler
func NewProductHandler(catalog *appcatalog.Service, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{BaseHandler: NewBaseHandler(logger), catalog: catalog}
}

// List returns products, optionally filtered by category and search query
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.catalog.List(c.Request.Context(), c.Query("category"), c.Query("search"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	views := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		views = append(views, dto.NewProductResponse(&products[i]))
	}
	h.ListOK(c, views, len(views))
}

// Get returns a single product
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "invalid product id")
		return
	}

	product, err := h.catalog.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewProductResponse(product))
}
