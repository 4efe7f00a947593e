package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	appcheckout "github.com/opalessence/backend/internal/application/checkout"
	"github.com/opalessence/backend/internal/domain/pricing"
	"github.com/opalessence/backend/internal/interfaces/http/dto"
	"github.com/opalessence/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// CheckoutHandler serves cart quoting and order placement
type CheckoutHandler struct {
	BaseHandler
	checkout *appcheckout.Service
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkout *appcheckout.Service, logger *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{BaseHandler: NewBaseHandler(logger), checkout: checkout}
}

// Quote prices a cart for a destination
func (h *CheckoutHandler) Quote(c *gin.Context) {
	var req dto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	items, err := toLineInputs(req.Items)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	quote, err := h.checkout.Quote(c.Request.Context(), appcheckout.QuoteRequest{
		Items:   items,
		Address: toAddress(req.Address),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewQuoteResponse(quote))
}

// PlaceOrder charges the card and records the order
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("UNAUTHORIZED", "Not authenticated"))
		return
	}

	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	items, err := toLineInputs(req.Items)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	placed, err := h.checkout.PlaceOrder(c.Request.Context(), userID, appcheckout.PlaceOrderRequest{
		Items:   items,
		Address: toAddress(req.Address),
		Method:  pricing.Method(req.Method),
		Card: appcheckout.CardDetails{
			Number:      req.Card.Number,
			ExpiryMonth: req.Card.ExpiryMonth,
			ExpiryYear:  req.Card.ExpiryYear,
			CVC:         req.Card.CVC,
		},
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, dto.NewOrderResponse(placed))
}

func toLineInputs(items []dto.CartItemRequest) ([]appcheckout.LineInput, error) {
	lines := make([]appcheckout.LineInput, 0, len(items))
	for _, item := range items {
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			return nil, err
		}
		lines = append(lines, appcheckout.LineInput{ProductID: productID, Quantity: item.Quantity})
	}
	return lines, nil
}

func toAddress(a dto.AddressRequest) appcheckout.Address {
	return appcheckout.Address{
		Street:  a.Street,
		City:    a.City,
		State:   a.State,
		ZipCode: a.ZipCode,
		Country: a.Country,
	}
}
