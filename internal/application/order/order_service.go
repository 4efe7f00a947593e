package order

import (
	"context"

	"github.com/google/uuid"
	"github.com/opalessence/backend/internal/domain/order"
	"github.com/opalessence/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// Service manages the order ledger after checkout: lookups, tracking and
// lifecycle transitions.
type Service struct {
	orders order.Repository
	logger *zap.Logger
}

// NewService creates a new order service
func NewService(orders order.Repository, logger *zap.Logger) *Service {
	return &Service{orders: orders, logger: logger}
}

// Get returns an order by ID, scoped to its owner
func (s *Service) Get(ctx context.Context, userID, orderID uuid.UUID) (*order.Order, error) {
	o, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.UserID != userID {
		// Hide other users' orders rather than admitting they exist
		return nil, shared.ErrNotFound
	}
	return o, nil
}

// GetByOrderNumber returns an order by its human-readable number, scoped
// to its owner
func (s *Service) GetByOrderNumber(ctx context.Context, userID uuid.UUID, orderNumber string) (*order.Order, error) {
	o, err := s.orders.FindByOrderNumber(ctx, orderNumber)
	if err != nil {
		return nil, err
	}
	if o.UserID != userID {
		return nil, shared.ErrNotFound
	}
	return o, nil
}

// ListByUser returns all orders placed by a user, newest first
func (s *Service) ListByUser(ctx context.Context, userID uuid.UUID) ([]order.Order, error) {
	return s.orders.FindByUser(ctx, userID)
}

// Tracking returns the tracking projection for an order
func (s *Service) Tracking(ctx context.Context, userID, orderID uuid.UUID) (*order.TrackingInfo, error) {
	o, err := s.Get(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	info := o.Tracking()
	return &info, nil
}

// UpdateStatus transitions an order through its lifecycle. Invalid
// transitions and transitions out of terminal states are rejected by the
// aggregate.
func (s *Service) UpdateStatus(ctx context.Context, orderID uuid.UUID, target order.Status) (*order.Order, error) {
	o, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	previous := o.Status
	if err := o.UpdateStatus(target); err != nil {
		return nil, err
	}
	if err := s.orders.Save(ctx, o); err != nil {
		return nil, err
	}

	s.logger.Info("order status updated",
		zap.String("order_number", o.OrderNumber),
		zap.String("from", previous.String()),
		zap.String("to", target.String()))
	return o, nil
}

// Cancel cancels an order that has not yet shipped
func (s *Service) Cancel(ctx context.Context, userID, orderID uuid.UUID) (*order.Order, error) {
	o, err := s.Get(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	if err := o.UpdateStatus(order.StatusCancelled); err != nil {
		return nil, err
	}
	if err := s.orders.Save(ctx, o); err != nil {
		return nil, err
	}

	s.logger.Info("order cancelled",
		zap.String("order_number", o.OrderNumber),
		zap.String("user_id", userID.String()))
	return o, nil
}
