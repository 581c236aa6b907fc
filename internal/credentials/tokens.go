// Package credentials owns the client-side credential state: the in-memory
// access token with its durable mirror, and the durable-only refresh token
// and user id. No other component touches the durable medium directly.
package credentials

import (
	"context"
	"sync"
)

// TokenStore holds the current access token in memory, mirrored into the
// durable repository, plus accessors for the durable-only refresh token and
// user id. At most one access token is current at a time; setting a new one
// replaces both the memory and durable copies. Safe for concurrent use.
type TokenStore struct {
	mu     sync.RWMutex
	access string
	repo   Repository
}

// NewTokenStore builds a TokenStore backed by repo, loading the previously
// persisted access token into memory if one exists.
func NewTokenStore(ctx context.Context, repo Repository) (*TokenStore, error) {
	v, err := repo.Get(ctx, KeyAccessToken)
	if err != nil {
		return nil, err
	}
	return &TokenStore{access: string(v), repo: repo}, nil
}

// AccessToken returns the current in-memory access token, or "" if absent.
func (s *TokenStore) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.access
}

// SetAccessToken replaces the in-memory token and its durable mirror.
// An empty token removes the durable entry.
func (s *TokenStore) SetAccessToken(ctx context.Context, token string) error {
	s.mu.Lock()
	s.access = token
	s.mu.Unlock()

	if token == "" {
		return s.repo.Delete(ctx, KeyAccessToken)
	}
	return s.repo.Set(ctx, KeyAccessToken, []byte(token))
}

// SetTokenPair replaces the access and refresh tokens together, writing
// both durable entries in one atomic operation. Used after a successful
// refresh so the stored pair can never be mismatched.
func (s *TokenStore) SetTokenPair(ctx context.Context, access, refresh string) error {
	s.mu.Lock()
	s.access = access
	s.mu.Unlock()

	return s.repo.SetMany(ctx, map[string][]byte{
		KeyAccessToken:  []byte(access),
		KeyRefreshToken: []byte(refresh),
	})
}

// RefreshToken returns the durable refresh token, or "" if absent.
// The refresh token is never kept in memory.
func (s *TokenStore) RefreshToken(ctx context.Context) (string, error) {
	v, err := s.repo.Get(ctx, KeyRefreshToken)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// SetRefreshToken replaces the durable refresh token; "" removes it.
func (s *TokenStore) SetRefreshToken(ctx context.Context, token string) error {
	if token == "" {
		return s.repo.Delete(ctx, KeyRefreshToken)
	}
	return s.repo.Set(ctx, KeyRefreshToken, []byte(token))
}

// UserID returns the durable user id, or "" if absent.
func (s *TokenStore) UserID(ctx context.Context) (string, error) {
	v, err := s.repo.Get(ctx, KeyUserID)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// SetUserID replaces the durable user id; "" removes it.
func (s *TokenStore) SetUserID(ctx context.Context, id string) error {
	if id == "" {
		return s.repo.Delete(ctx, KeyUserID)
	}
	return s.repo.Set(ctx, KeyUserID, []byte(id))
}

// Clear wipes the in-memory token and all durable credential entries.
func (s *TokenStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.access = ""
	s.mu.Unlock()
	return s.repo.Clear(ctx)
}
