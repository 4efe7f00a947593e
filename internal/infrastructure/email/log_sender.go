package email

import (
	"context"

	"go.uber.org/zap"
)

// LogSender writes account emails to the log instead of delivering them.
// It stands in for a real mail provider in development and tests.
type LogSender struct {
	from   string
	logger *zap.Logger
}

// NewLogSender creates a new log-backed email sender
func NewLogSender(from string, logger *zap.Logger) *LogSender {
	return &LogSender{from: from, logger: logger}
}

// SendVerification logs the verification email
func (s *LogSender) SendVerification(ctx context.Context, to, token string) error {
	s.logger.Info("verification email",
		zap.String("from", s.from),
		zap.String("to", to),
		zap.String("token", token))
	return nil
}

// SendPasswordReset logs the password reset email
func (s *LogSender) SendPasswordReset(ctx context.Context, to, token string) error {
	s.logger.Info("password reset email",
		zap.String("from", s.from),
		zap.String("to", to),
		zap.String("token", token))
	return nil
}

// SendOrderConfirmation logs the order confirmation email
func (s *LogSender) SendOrderConfirmation(ctx context.Context, to, orderNumber string) error {
	s.logger.Info("order confirmation email",
		zap.String("from", s.from),
		zap.String("to", to),
		zap.String("order_number", orderNumber))
	return nil
}
