package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hellospace/storefront/internal/domain"
	"github.com/hellospace/storefront/pkg/apperr"
)

func newAuthService(users *mockUserRepository) *AuthService {
	return NewAuthService(users, []byte("test-secret-do-not-use"), time.Hour, testLogger())
}

func TestAuthService_SignUp(t *testing.T) {
	users := new(mockUserRepository)
	svc := newAuthService(users)
	ctx := context.Background()

	users.On("GetByEmail", ctx, "maya@example.com").Return(nil, apperr.NotFound("user", "maya@example.com"))
	users.On("Save", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

	session, err := svc.SignUp(ctx, SignUpInput{Email: "Maya@Example.com", Name: "Maya", Password: "password123"})
	require.NoError(t, err)

	assert.NotEmpty(t, session.Token)
	assert.Equal(t, "maya@example.com", session.User.Email)
	assert.Equal(t, domain.RoleCustomer, session.User.Role)
	assert.True(t, session.ExpiresAt.After(time.Now()))
}

func TestAuthService_SignUp_DuplicateEmail(t *testing.T) {
	users := new(mockUserRepository)
	svc := newAuthService(users)
	ctx := context.Background()

	existing := &domain.User{ID: "user-1", Email: "maya@example.com"}
	users.On("GetByEmail", ctx, "maya@example.com").Return(existing, nil)

	_, err := svc.SignUp(ctx, SignUpInput{Email: "maya@example.com", Name: "Maya", Password: "password123"})
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestAuthService_SignUp_Validation(t *testing.T) {
	svc := newAuthService(new(mockUserRepository))

	_, err := svc.SignUp(context.Background(), SignUpInput{Email: "not-an-email", Name: "Maya", Password: "password123"})
	require.Error(t, err)

	_, err = svc.SignUp(context.Background(), SignUpInput{Email: "maya@example.com", Name: "Maya", Password: "short"})
	require.Error(t, err)
}

func TestAuthService_SignIn_ExistingUser(t *testing.T) {
	users := new(mockUserRepository)
	svc := newAuthService(users)
	ctx := context.Background()

	existing := &domain.User{ID: "user-1", Email: "maya@example.com", Name: "Maya", Role: domain.RoleCustomer}
	users.On("GetByEmail", ctx, "maya@example.com").Return(existing, nil)

	session, err := svc.SignIn(ctx, SignInInput{Email: "maya@example.com", Password: "anything-goes"})
	require.NoError(t, err)
	assert.Equal(t, "user-1", session.User.ID)
	users.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestAuthService_SignIn_AutoProvisionsNewUser(t *testing.T) {
	users := new(mockUserRepository)
	svc := newAuthService(users)
	ctx := context.Background()

	users.On("GetByEmail", ctx, "new.visitor@example.com").Return(nil, apperr.NotFound("user", "new.visitor@example.com"))
	users.On("Save", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

	session, err := svc.SignIn(ctx, SignInInput{Email: "new.visitor@example.com", Password: "whatever"})
	require.NoError(t, err)
	assert.Equal(t, "new.visitor@example.com", session.User.Email)
	assert.Equal(t, "New visitor", session.User.Name)
	users.AssertExpectations(t)
}

func TestAuthService_VerifyToken_RoundTrip(t *testing.T) {
	users := new(mockUserRepository)
	svc := newAuthService(users)
	ctx := context.Background()

	existing := &domain.User{ID: "user-1", Email: "maya@example.com", Role: domain.RoleCustomer}
	users.On("GetByEmail", ctx, "maya@example.com").Return(existing, nil)

	session, err := svc.SignIn(ctx, SignInInput{Email: "maya@example.com", Password: "pw"})
	require.NoError(t, err)

	claims, err := svc.VerifyToken(session.Token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "maya@example.com", claims.Email)
	assert.Equal(t, domain.RoleCustomer, claims.Role)
}

func TestAuthService_VerifyToken_Garbage(t *testing.T) {
	svc := newAuthService(new(mockUserRepository))

	_, err := svc.VerifyToken("not.a.token")
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)
}

func TestAuthService_VerifyToken_WrongSecret(t *testing.T) {
	users := new(mockUserRepository)
	issuer := NewAuthService(users, []byte("secret-a"), time.Hour, testLogger())
	verifier := NewAuthService(users, []byte("secret-b"), time.Hour, testLogger())
	ctx := context.Background()

	existing := &domain.User{ID: "user-1", Email: "maya@example.com", Role: domain.RoleCustomer}
	users.On("GetByEmail", ctx, "maya@example.com").Return(existing, nil)

	session, err := issuer.SignIn(ctx, SignInInput{Email: "maya@example.com", Password: "pw"})
	require.NoError(t, err)

	_, err = verifier.VerifyToken(session.Token)
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)
}

func TestAuthService_VerifyToken_Expired(t *testing.T) {
	users := new(mockUserRepository)
	svc := NewAuthService(users, []byte("secret"), -time.Minute, testLogger())
	ctx := context.Background()

	existing := &domain.User{ID: "user-1", Email: "maya@example.com", Role: domain.RoleCustomer}
	users.On("GetByEmail", ctx, "maya@example.com").Return(existing, nil)

	session, err := svc.SignIn(ctx, SignInInput{Email: "maya@example.com", Password: "pw"})
	require.NoError(t, err)

	_, err = svc.VerifyToken(session.Token)
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)
}
