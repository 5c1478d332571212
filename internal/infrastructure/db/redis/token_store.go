package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/roomiefies/admin-gateway/internal/core/domain"
)

// Key format: admin_token:<session_id>. Presence of the key is the sole
// "was previously logged in" signal across gateway restarts.
const tokenKeyPrefix = "admin_token:"

// TokenStore persists bearer tokens in Redis with a sliding TTL.
type TokenStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewTokenStore creates a TokenStore. ttl bounds how long an idle
// session survives; each successful Get renews it.
func NewTokenStore(client *redis.Client, ttl time.Duration) *TokenStore {
	return &TokenStore{client: client, ttl: ttl}
}

func (s *TokenStore) Get(ctx context.Context, sessionID string) (string, error) {
	token, err := s.client.Get(ctx, s.key(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", domain.ErrSessionNotFound
	}
	if err != nil {
		return "", fmt.Errorf("token get: %w", err)
	}
	_ = s.client.Expire(ctx, s.key(sessionID), s.ttl).Err()
	return token, nil
}

func (s *TokenStore) Set(ctx context.Context, sessionID, token string) error {
	if err := s.client.Set(ctx, s.key(sessionID), token, s.ttl).Err(); err != nil {
		return fmt.Errorf("token set: %w", err)
	}
	return nil
}

func (s *TokenStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("token delete: %w", err)
	}
	return nil
}

func (s *TokenStore) key(sessionID string) string {
	return tokenKeyPrefix + sessionID
}
