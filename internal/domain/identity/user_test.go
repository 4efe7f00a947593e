package identity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUser(t *testing.T) *User {
	u, err := NewUser("jane@example.com", "secret123", "Jane", "Doe")
	require.NoError(t, err)
	return u
}

func TestNewUser(t *testing.T) {
	u := newTestUser(t)

	assert.Equal(t, "jane@example.com", u.Email)
	assert.False(t, u.EmailVerified)
	assert.Len(t, u.VerificationToken, 64)
	assert.NotEqual(t, "secret123", u.PasswordHash)
	assert.Equal(t, "Jane Doe", u.FullName())
}

func TestVerifyPassword(t *testing.T) {
	u := newTestUser(t)

	assert.True(t, u.VerifyPassword("secret123"))
	assert.False(t, u.VerifyPassword("wrong"))
}

func TestRecordLoginFailure_LocksAfterFiveAttempts(t *testing.T) {
	u := newTestUser(t)

	for i := 0; i < 4; i++ {
		u.RecordLoginFailure()
		assert.False(t, u.IsLocked())
	}
	u.RecordLoginFailure()
	assert.True(t, u.IsLocked())
}

func TestRecordLoginSuccess_ClearsLockout(t *testing.T) {
	u := newTestUser(t)
	for i := 0; i < 5; i++ {
		u.RecordLoginFailure()
	}
	require.True(t, u.IsLocked())

	u.RecordLoginSuccess()
	assert.False(t, u.IsLocked())
	assert.Zero(t, u.FailedAttempts)
}

func TestVerifyEmail(t *testing.T) {
	u := newTestUser(t)
	token := u.VerificationToken

	require.NoError(t, u.VerifyEmail(token))
	assert.True(t, u.EmailVerified)
	assert.Empty(t, u.VerificationToken)

	// Verifying again is a no-op
	assert.NoError(t, u.VerifyEmail(""))
}

func TestVerifyEmail_RejectsWrongToken(t *testing.T) {
	u := newTestUser(t)

	assert.Error(t, u.VerifyEmail("bogus"))
	assert.False(t, u.EmailVerified)
}

func TestResetPassword(t *testing.T) {
	u := newTestUser(t)
	token := u.BeginPasswordReset()
	require.Len(t, token, 64)

	require.NoError(t, u.ResetPassword(token, "newpass456"))
	assert.True(t, u.VerifyPassword("newpass456"))
	assert.False(t, u.VerifyPassword("secret123"))
	assert.Empty(t, u.ResetToken)
}

func TestResetPassword_RejectsWrongToken(t *testing.T) {
	u := newTestUser(t)
	u.BeginPasswordReset()

	assert.Error(t, u.ResetPassword("bogus", "newpass456"))
	assert.True(t, u.VerifyPassword("secret123"))
}

func TestResetPassword_RejectsExpiredToken(t *testing.T) {
	u := newTestUser(t)
	token := u.BeginPasswordReset()
	u.ResetTokenExpiry = time.Now().Add(-time.Minute)

	assert.Error(t, u.ResetPassword(token, "newpass456"))
}
