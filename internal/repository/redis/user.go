package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/hellospace/storefront/internal/domain"
	"github.com/hellospace/storefront/pkg/apperr"
)

const (
	userKeyPrefix      = "user:"
	userEmailKeyPrefix = "user:email:"
)

// UserRepository stores accounts as JSON documents under user:<id> with a
// secondary email index under user:email:<email>.
type UserRepository struct {
	client *redis.Client
}

// NewUserRepository creates a Redis-backed user repository. Accounts do not
// expire.
func NewUserRepository(client *redis.Client) *UserRepository {
	return &UserRepository{client: client}
}

// GetByID retrieves a user by ID.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	data, err := r.client.Get(ctx, userKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperr.NotFound("user", id)
		}
		return nil, fmt.Errorf("redis get user: %w", err)
	}

	var user domain.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("unmarshal user: %w", err)
	}

	return &user, nil
}

// GetByEmail retrieves a user through the email index.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	id, err := r.client.Get(ctx, userEmailKeyPrefix+normalizeEmail(email)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperr.NotFound("user", email)
		}
		return nil, fmt.Errorf("redis get user email index: %w", err)
	}

	return r.GetByID(ctx, id)
}

// Save persists a user and its email index entry.
func (r *UserRepository) Save(ctx context.Context, user *domain.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, userKeyPrefix+user.ID, data, 0)
	pipe.Set(ctx, userEmailKeyPrefix+normalizeEmail(user.Email), user.ID, 0)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis save user: %w", err)
	}

	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
