package identity

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/opalessence/backend/internal/domain/identity"
	"github.com/opalessence/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockUserRepository is a mock implementation of identity.Repository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByVerificationToken(ctx context.Context, token string) (*identity.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByResetToken(ctx context.Context, token string) (*identity.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, u *identity.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

// stubTokenIssuer returns a fixed token
type stubTokenIssuer struct{}

func (s *stubTokenIssuer) Issue(userID uuid.UUID, email string) (string, error) {
	return "token-" + email, nil
}

// stubEmailSender records sent emails
type stubEmailSender struct {
	verifications int
	resets        int
	lastToken     string
}

func (s *stubEmailSender) SendVerification(ctx context.Context, to, token string) error {
	s.verifications++
	s.lastToken = token
	return nil
}

func (s *stubEmailSender) SendPasswordReset(ctx context.Context, to, token string) error {
	s.resets++
	s.lastToken = token
	return nil
}

func newAuthService(repo *MockUserRepository, email *stubEmailSender) *Service {
	return NewService(repo, &stubTokenIssuer{}, email, zap.NewNop())
}

func verifiedUser(t *testing.T, email, password string) *identity.User {
	u, err := identity.NewUser(email, password, "Jane", "Doe")
	require.NoError(t, err)
	require.NoError(t, u.VerifyEmail(u.VerificationToken))
	return u
}

func TestRegister(t *testing.T) {
	repo := new(MockUserRepository)
	email := &stubEmailSender{}
	svc := newAuthService(repo, email)

	repo.On("ExistsByEmail", mock.Anything, "jane@example.com").Return(false, nil)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*identity.User")).Return(nil)

	user, err := svc.Register(context.Background(), "jane@example.com", "secret123", "Jane", "Doe")

	require.NoError(t, err)
	assert.False(t, user.EmailVerified)
	assert.Equal(t, 1, email.verifications)
	assert.Equal(t, user.VerificationToken, email.lastToken)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := new(MockUserRepository)
	svc := newAuthService(repo, &stubEmailSender{})

	repo.On("ExistsByEmail", mock.Anything, "jane@example.com").Return(true, nil)

	_, err := svc.Register(context.Background(), "jane@example.com", "secret123", "Jane", "Doe")

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "EMAIL_TAKEN", domainErr.Code)
}

func TestLogin(t *testing.T) {
	repo := new(MockUserRepository)
	svc := newAuthService(repo, &stubEmailSender{})

	user := verifiedUser(t, "jane@example.com", "secret123")
	repo.On("FindByEmail", mock.Anything, "jane@example.com").Return(user, nil)
	repo.On("Save", mock.Anything, user).Return(nil)

	result, err := svc.Login(context.Background(), "jane@example.com", "secret123")

	require.NoError(t, err)
	assert.Equal(t, "token-jane@example.com", result.Token)
	assert.Equal(t, user.ID, result.User.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := new(MockUserRepository)
	svc := newAuthService(repo, &stubEmailSender{})

	user := verifiedUser(t, "jane@example.com", "secret123")
	repo.On("FindByEmail", mock.Anything, "jane@example.com").Return(user, nil)
	repo.On("Save", mock.Anything, user).Return(nil)

	_, err := svc.Login(context.Background(), "jane@example.com", "wrong")

	require.Error(t, err)
	assert.Equal(t, 1, user.FailedAttempts)
}

func TestLogin_UnknownEmailGetsSameError(t *testing.T) {
	repo := new(MockUserRepository)
	svc := newAuthService(repo, &stubEmailSender{})

	repo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, shared.ErrNotFound)

	_, err := svc.Login(context.Background(), "ghost@example.com", "whatever")

	require.Error(t, err)
	assert.Equal(t, "Invalid email or password", err.Error())
}

func TestLogin_LockedAccount(t *testing.T) {
	repo := new(MockUserRepository)
	svc := newAuthService(repo, &stubEmailSender{})

	user := verifiedUser(t, "jane@example.com", "secret123")
	for i := 0; i < 5; i++ {
		user.RecordLoginFailure()
	}
	require.True(t, user.IsLocked())
	repo.On("FindByEmail", mock.Anything, "jane@example.com").Return(user, nil)

	_, err := svc.Login(context.Background(), "jane@example.com", "secret123")

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ACCOUNT_LOCKED", domainErr.Code)
}

func TestLogin_UnverifiedEmailAllowed(t *testing.T) {
	repo := new(MockUserRepository)
	svc := newAuthService(repo, &stubEmailSender{})

	user, err := identity.NewUser("jane@example.com", "secret123", "Jane", "Doe")
	require.NoError(t, err)
	repo.On("FindByEmail", mock.Anything, "jane@example.com").Return(user, nil)
	repo.On("Save", mock.Anything, user).Return(nil)

	result, err := svc.Login(context.Background(), "jane@example.com", "secret123")

	require.NoError(t, err)
	assert.False(t, result.User.EmailVerified)
	assert.NotEmpty(t, result.Token)
}

func TestVerifyEmail(t *testing.T) {
	repo := new(MockUserRepository)
	svc := newAuthService(repo, &stubEmailSender{})

	user, err := identity.NewUser("jane@example.com", "secret123", "Jane", "Doe")
	require.NoError(t, err)
	token := user.VerificationToken
	repo.On("FindByVerificationToken", mock.Anything, token).Return(user, nil)
	repo.On("Save", mock.Anything, user).Return(nil)

	require.NoError(t, svc.VerifyEmail(context.Background(), token))
	assert.True(t, user.EmailVerified)
}

func TestRequestPasswordReset(t *testing.T) {
	repo := new(MockUserRepository)
	email := &stubEmailSender{}
	svc := newAuthService(repo, email)

	user := verifiedUser(t, "jane@example.com", "secret123")
	repo.On("FindByEmail", mock.Anything, "jane@example.com").Return(user, nil)
	repo.On("Save", mock.Anything, user).Return(nil)

	require.NoError(t, svc.RequestPasswordReset(context.Background(), "jane@example.com"))
	assert.Equal(t, 1, email.resets)
	assert.Equal(t, user.ResetToken, email.lastToken)
}

func TestRequestPasswordReset_UnknownEmailSucceedsQuietly(t *testing.T) {
	repo := new(MockUserRepository)
	email := &stubEmailSender{}
	svc := newAuthService(repo, email)

	repo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, shared.ErrNotFound)

	assert.NoError(t, svc.RequestPasswordReset(context.Background(), "ghost@example.com"))
	assert.Zero(t, email.resets)
}

func TestRequestPasswordReset_UnverifiedAccountSkipped(t *testing.T) {
	repo := new(MockUserRepository)
	email := &stubEmailSender{}
	svc := newAuthService(repo, email)

	user, err := identity.NewUser("jane@example.com", "secret123", "Jane", "Doe")
	require.NoError(t, err)
	repo.On("FindByEmail", mock.Anything, "jane@example.com").Return(user, nil)

	assert.NoError(t, svc.RequestPasswordReset(context.Background(), "jane@example.com"))
	assert.Zero(t, email.resets)
}

func TestResetPassword(t *testing.T) {
	repo := new(MockUserRepository)
	svc := newAuthService(repo, &stubEmailSender{})

	user := verifiedUser(t, "jane@example.com", "secret123")
	token := user.BeginPasswordReset()
	repo.On("FindByResetToken", mock.Anything, token).Return(user, nil)
	repo.On("Save", mock.Anything, user).Return(nil)

	require.NoError(t, svc.ResetPassword(context.Background(), token, "newpass456"))
	assert.True(t, user.VerifyPassword("newpass456"))
}

func TestResetPassword_InvalidToken(t *testing.T) {
	repo := new(MockUserRepository)
	svc := newAuthService(repo, &stubEmailSender{})

	repo.On("FindByResetToken", mock.Anything, "bogus").Return(nil, shared.ErrNotFound)

	err := svc.ResetPassword(context.Background(), "bogus", "newpass456")

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_TOKEN", domainErr.Code)
}
