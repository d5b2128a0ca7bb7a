package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/hellospace/storefront/internal/domain"
	"github.com/hellospace/storefront/internal/repository"
	"github.com/hellospace/storefront/pkg/apperr"
	"github.com/hellospace/storefront/pkg/middleware"
	"github.com/hellospace/storefront/pkg/validate"
)

// SignUpInput holds the parameters for creating an account.
type SignUpInput struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

// SignInInput holds the parameters for signing in.
type SignInInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Session is an issued authentication session.
type Session struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      *domain.User `json:"user"`
}

// tokenClaims is the JWT payload for storefront sessions.
type tokenClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// AuthService issues demo sessions. Passwords are accepted but never checked
// or stored; the storefront runs without a real identity provider and any
// well-formed credentials sign in.
type AuthService struct {
	users    repository.UserRepository
	secret   []byte
	tokenTTL time.Duration
	logger   *slog.Logger
}

// NewAuthService creates an auth service signing tokens with secret.
func NewAuthService(users repository.UserRepository, secret []byte, tokenTTL time.Duration, logger *slog.Logger) *AuthService {
	return &AuthService{
		users:    users,
		secret:   secret,
		tokenTTL: tokenTTL,
		logger:   logger,
	}
}

// SignUp creates an account and returns a session for it.
func (s *AuthService) SignUp(ctx context.Context, input SignUpInput) (*Session, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	email := normalizeEmail(input.Email)

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, apperr.Conflict("email is already registered")
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	user := &domain.User{
		ID:        uuid.New().String(),
		Email:     email,
		Name:      input.Name,
		Role:      domain.RoleCustomer,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.users.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}

	s.logger.InfoContext(ctx, "account created",
		slog.String("user_id", user.ID),
		slog.String("email", user.Email),
	)

	return s.newSession(user)
}

// SignIn returns a session for the account with the given email, creating
// the account on first sign-in.
func (s *AuthService) SignIn(ctx context.Context, input SignInInput) (*Session, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	email := normalizeEmail(input.Email)

	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, apperr.ErrNotFound) {
		user = &domain.User{
			ID:        uuid.New().String(),
			Email:     email,
			Name:      nameFromEmail(email),
			Role:      domain.RoleCustomer,
			CreatedAt: time.Now().UTC(),
		}
		if err := s.users.Save(ctx, user); err != nil {
			return nil, fmt.Errorf("save user: %w", err)
		}
		s.logger.InfoContext(ctx, "account auto-provisioned on sign-in",
			slog.String("user_id", user.ID),
			slog.String("email", user.Email),
		)
	} else if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	return s.newSession(user)
}

// VerifyToken parses and validates a session token.
func (s *AuthService) VerifyToken(token string) (*middleware.Claims, error) {
	var claims tokenClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, apperr.Unauthorized("invalid or expired token")
	}

	return &middleware.Claims{
		UserID: claims.Subject,
		Email:  claims.Email,
		Role:   claims.Role,
	}, nil
}

func (s *AuthService) newSession(user *domain.User) (*Session, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(s.tokenTTL)

	claims := tokenClaims{
		Email: user.Email,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			Issuer:    "hellospace-storefront",
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &Session{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// nameFromEmail derives a display name for auto-provisioned accounts.
func nameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	local = strings.ReplaceAll(local, ".", " ")
	if local == "" {
		return "Guest"
	}
	return strings.ToUpper(local[:1]) + local[1:]
}
