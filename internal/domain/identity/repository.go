package identity

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for user persistence
type Repository interface {
	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByEmail finds a user by email address
	FindByEmail(ctx context.Context, email string) (*User, error)

	// FindByVerificationToken finds a user by pending verification token
	FindByVerificationToken(ctx context.Context, token string) (*User, error)

	// FindByResetToken finds a user by active password reset token
	FindByResetToken(ctx context.Context, token string) (*User, error)

	// ExistsByEmail checks whether a user with the email exists
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Save creates or updates a user
	Save(ctx context.Context, u *User) error
}
