package identity

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/opalessence/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

const (
	maxLoginAttempts = 5
	lockoutDuration  = 15 * time.Minute
	resetTokenTTL    = time.Hour
)

// User is the aggregate root for a customer account
type User struct {
	shared.BaseEntity
	Email             string
	PasswordHash      string
	FirstName         string
	LastName          string
	EmailVerified     bool
	VerificationToken string
	ResetToken        string
	ResetTokenExpiry  time.Time
	FailedAttempts    int
	LockedUntil       time.Time
}

// NewUser creates a new unverified user with a hashed password and a
// pending email verification token
func NewUser(email, password, firstName, lastName string) (*User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &User{
		BaseEntity:        shared.NewBaseEntity(),
		Email:             email,
		PasswordHash:      string(hash),
		FirstName:         firstName,
		LastName:          lastName,
		EmailVerified:     false,
		VerificationToken: generateToken(),
	}, nil
}

// VerifyPassword checks the password against the stored hash
func (u *User) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// IsLocked reports whether the account is currently locked out
func (u *User) IsLocked() bool {
	return time.Now().Before(u.LockedUntil)
}

// RecordLoginFailure increments the failure counter and locks the account
// once the attempt limit is reached
func (u *User) RecordLoginFailure() {
	u.FailedAttempts++
	if u.FailedAttempts >= maxLoginAttempts {
		u.LockedUntil = time.Now().Add(lockoutDuration)
		u.FailedAttempts = 0
	}
	u.Touch()
}

// RecordLoginSuccess clears the failure counter and any lockout
func (u *User) RecordLoginSuccess() {
	u.FailedAttempts = 0
	u.LockedUntil = time.Time{}
	u.Touch()
}

// VerifyEmail marks the email as verified when the token matches
func (u *User) VerifyEmail(token string) error {
	if u.EmailVerified {
		return nil
	}
	if token == "" || token != u.VerificationToken {
		return shared.NewDomainError("INVALID_TOKEN", "Verification token is invalid")
	}
	u.EmailVerified = true
	u.VerificationToken = ""
	u.Touch()
	return nil
}

// BeginPasswordReset issues a fresh reset token valid for one hour
func (u *User) BeginPasswordReset() string {
	u.ResetToken = generateToken()
	u.ResetTokenExpiry = time.Now().Add(resetTokenTTL)
	u.Touch()
	return u.ResetToken
}

// ResetPassword replaces the password hash when the reset token matches
// and has not expired
func (u *User) ResetPassword(token, newPassword string) error {
	if u.ResetToken == "" || token != u.ResetToken {
		return shared.NewDomainError("INVALID_TOKEN", "Reset token is invalid")
	}
	if time.Now().After(u.ResetTokenExpiry) {
		return shared.NewDomainError("TOKEN_EXPIRED", "Reset token has expired")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	u.ResetToken = ""
	u.ResetTokenExpiry = time.Time{}
	u.FailedAttempts = 0
	u.LockedUntil = time.Time{}
	u.Touch()
	return nil
}

// FullName returns the display name of the user
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// generateToken produces a 64-character hex token
func generateToken() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return hex.EncodeToString(buf)
}
