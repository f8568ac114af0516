package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"academix/internal/cache"
)

const sessionKeyPrefix = "session:"

// SessionRecord is the hot session state kept in Redis.
type SessionRecord struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// TokenStoreInterface defines session token storage operations.
type TokenStoreInterface interface {
	StoreSession(ctx context.Context, sessionID, userID, role string, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (*SessionRecord, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

// TokenStore keeps session records in Redis. Misses are not authoritative:
// the auth service falls back to the sessions table before rejecting.
type TokenStore struct {
	cache *cache.Client
}

var _ TokenStoreInterface = (*TokenStore)(nil)

// NewTokenStore creates a new token store.
func NewTokenStore(cache *cache.Client) *TokenStore {
	return &TokenStore{cache: cache}
}

// StoreSession stores a session record with TTL.
func (s *TokenStore) StoreSession(ctx context.Context, sessionID, userID, role string, ttl time.Duration) error {
	payload, err := json.Marshal(SessionRecord{UserID: userID, Role: role})
	if err != nil {
		return fmt.Errorf("marshal session record: %w", err)
	}
	return s.cache.Set(ctx, sessionKeyPrefix+sessionID, payload, ttl)
}

// GetSession retrieves a session record, or an error on miss.
func (s *TokenStore) GetSession(ctx context.Context, sessionID string) (*SessionRecord, error) {
	data, err := s.cache.Get(ctx, sessionKeyPrefix+sessionID)
	if err != nil || data == nil {
		return nil, fmt.Errorf("session not found")
	}
	var rec SessionRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("unmarshal session record: %w", err)
	}
	return &rec, nil
}

// DeleteSession removes a session record.
func (s *TokenStore) DeleteSession(ctx context.Context, sessionID string) error {
	return s.cache.Delete(ctx, sessionKeyPrefix+sessionID)
}
