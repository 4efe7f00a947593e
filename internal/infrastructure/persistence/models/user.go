package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/opalessence/backend/internal/domain/identity"
	"github.com/opalessence/backend/internal/domain/shared"
)

// UserModel is the database model for users
type UserModel struct {
	ID                string `gorm:"primaryKey;type:varchar(36)"`
	Email             string `gorm:"uniqueIndex;not null"`
	PasswordHash      string `gorm:"not null"`
	FirstName         string
	LastName          string
	EmailVerified     bool
	VerificationToken string `gorm:"index"`
	ResetToken        string `gorm:"index"`
	ResetTokenExpiry  time.Time
	FailedAttempts    int
	LockedUntil       time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName specifies the table name
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the model to a domain entity
func (m *UserModel) ToDomain() (*identity.User, error) {
	id, err := uuid.Parse(m.ID)
	if err != nil {
		return nil, err
	}
	return &identity.User{
		BaseEntity: shared.BaseEntity{
			ID:        id,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		Email:             m.Email,
		PasswordHash:      m.PasswordHash,
		FirstName:         m.FirstName,
		LastName:          m.LastName,
		EmailVerified:     m.EmailVerified,
		VerificationToken: m.VerificationToken,
		ResetToken:        m.ResetToken,
		ResetTokenExpiry:  m.ResetTokenExpiry,
		FailedAttempts:    m.FailedAttempts,
		LockedUntil:       m.LockedUntil,
	}, nil
}

// UserModelFromDomain converts a domain entity to the database model
func UserModelFromDomain(u *identity.User) *UserModel {
	return &UserModel{
		ID:                u.ID.String(),
		Email:             u.Email,
		PasswordHash:      u.PasswordHash,
		FirstName:         u.FirstName,
		LastName:          u.LastName,
		EmailVerified:     u.EmailVerified,
		VerificationToken: u.VerificationToken,
		ResetToken:        u.ResetToken,
		ResetTokenExpiry:  u.ResetTokenExpiry,
		FailedAttempts:    u.FailedAttempts,
		LockedUntil:       u.LockedUntil,
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         u.UpdatedAt,
	}
}
