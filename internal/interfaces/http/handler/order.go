package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	apporder "github.com/opalessence/backend/internal/application/order"
	"github.com/opalessence/backend/internal/domain/order"
	"github.com/opalessence/backend/internal/interfaces/http/dto"
	"github.com/opalessence/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// OrderHandler serves order history, tracking and lifecycle updates
type OrderHandler struct {
	BaseHandler
	orders *apporder.Service
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orders *apporder.Service, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{BaseHandler: NewBaseHandler(logger), orders: orders}
}

func (h *OrderHandler) userAndOrderID(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("UNAUTHORIZED", "Not authenticated"))
		return uuid.Nil, uuid.Nil, false
	}
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "invalid order id")
		return uuid.Nil, uuid.Nil, false
	}
	return userID, orderID, true
}

// List returns the authenticated user's orders
func (h *OrderHandler) List(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("UNAUTHORIZED", "Not authenticated"))
		return
	}

	orders, err := h.orders.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	views := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		views = append(views, dto.NewOrderResponse(&orders[i]))
	}
	h.ListOK(c, views, len(views))
}

// Get returns one of the user's orders
func (h *OrderHandler) Get(c *gin.Context) {
	userID, orderID, ok := h.userAndOrderID(c)
	if !ok {
		return
	}

	o, err := h.orders.Get(c.Request.Context(), userID, orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewOrderResponse(o))
}

// Tracking returns the tracking view of an order
func (h *OrderHandler) Tracking(c *gin.Context) {
	userID, orderID, ok := h.userAndOrderID(c)
	if !ok {
		return
	}

	info, err := h.orders.Tracking(c.Request.Context(), userID, orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewTrackingResponse(info))
}

// UpdateStatus transitions an order's lifecycle status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	_, orderID, ok := h.userAndOrderID(c)
	if !ok {
		return
	}

	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	o, err := h.orders.UpdateStatus(c.Request.Context(), orderID, order.Status(req.Status))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewOrderResponse(o))
}

// Cancel cancels an order that has not yet shipped
func (h *OrderHandler) Cancel(c *gin.Context) {
	userID, orderID, ok := h.userAndOrderID(c)
	if !ok {
		return
	}

	o, err := h.orders.Cancel(c.Request.Context(), userID, orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewOrderResponse(o))
}
