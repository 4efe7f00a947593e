package identity

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/opalessence/backend/internal/domain/identity"
	"github.com/opalessence/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// TokenIssuer issues access tokens for authenticated users
type TokenIssuer interface {
	Issue(userID uuid.UUID, email string) (string, error)
}

// EmailSender delivers account emails
type EmailSender interface {
	SendVerification(ctx context.Context, to, token string) error
	SendPasswordReset(ctx context.Context, to, token string) error
}

// LoginResult carries the authenticated user and their access token
type LoginResult struct {
	User  *identity.User
	Token string
}

// Service handles registration, login and account recovery
type Service struct {
	users  identity.Repository
	tokens TokenIssuer
	email  EmailSender
	logger *zap.Logger
}

// NewService creates a new identity service
func NewService(users identity.Repository, tokens TokenIssuer, email EmailSender, logger *zap.Logger) *Service {
	return &Service{
		users:  users,
		tokens: tokens,
		email:  email,
		logger: logger,
	}
}

// Register creates a new account and sends the verification email
func (s *Service) Register(ctx context.Context, email, password, firstName, lastName string) (*identity.User, error) {
	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("EMAIL_TAKEN", "An account with this email already exists")
	}

	user, err := identity.NewUser(email, password, firstName, lastName)
	if err != nil {
		return nil, err
	}
	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}

	if err := s.email.SendVerification(ctx, user.Email, user.VerificationToken); err != nil {
		// Registration stands; the user can request a resend
		s.logger.Warn("verification email failed",
			zap.String("email", user.Email),
			zap.Error(err))
	}

	s.logger.Info("user registered", zap.String("user_id", user.ID.String()))
	return user, nil
}

// Login authenticates a user and issues an access token. Repeated failures
// lock the account temporarily.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
		}
		return nil, err
	}

	if user.IsLocked() {
		return nil, shared.NewDomainError("ACCOUNT_LOCKED",
			"Account is temporarily locked due to too many failed attempts")
	}

	if !user.VerifyPassword(password) {
		user.RecordLoginFailure()
		if err := s.users.Save(ctx, user); err != nil {
			return nil, err
		}
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	}

	user.RecordLoginSuccess()
	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user logged in", zap.String("user_id", user.ID.String()))
	return &LoginResult{User: user, Token: token}, nil
}

// VerifyEmail confirms a pending email verification token
func (s *Service) VerifyEmail(ctx context.Context, token string) error {
	user, err := s.users.FindByVerificationToken(ctx, token)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("INVALID_TOKEN", "Verification token is invalid")
		}
		return err
	}
	if err := user.VerifyEmail(token); err != nil {
		return err
	}
	return s.users.Save(ctx, user)
}

// RequestPasswordReset issues a reset token and emails it. The response is
// identical whether or not the email exists or is verified, so the endpoint
// cannot be used to probe for accounts.
func (s *Service) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil
		}
		return err
	}
	if !user.EmailVerified {
		return nil
	}

	token := user.BeginPasswordReset()
	if err := s.users.Save(ctx, user); err != nil {
		return err
	}
	if err := s.email.SendPasswordReset(ctx, user.Email, token); err != nil {
		s.logger.Warn("password reset email failed",
			zap.String("email", user.Email),
			zap.Error(err))
	}
	return nil
}

// ResetPassword sets a new password from a valid reset token
func (s *Service) ResetPassword(ctx context.Context, token, newPassword string) error {
	user, err := s.users.FindByResetToken(ctx, token)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("INVALID_TOKEN", "Reset token is invalid")
		}
		return err
	}
	if err := user.ResetPassword(token, newPassword); err != nil {
		return err
	}
	return s.users.Save(ctx, user)
}

// CurrentUser loads the account for an authenticated user ID
func (s *Service) CurrentUser(ctx context.Context, userID uuid.UUID) (*identity.User, error) {
	return s.users.FindByID(ctx, userID)
}
