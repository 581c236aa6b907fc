package credentials

import "context"

// Durable storage keys for auth material.
const (
	KeyAccessToken  = "access_token"
	KeyRefreshToken = "refresh_token"
	KeyUserID       = "user_id"
)

// Repository is a durable key-value medium for credential material.
// Get returns (nil, nil) when the key is absent. SetMany applies all
// writes atomically when the medium supports transactions.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	SetMany(ctx context.Context, values map[string][]byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

// NoopRepository is used in environments without durable storage:
// nothing is persisted and every lookup misses.
type NoopRepository struct{}

func (NoopRepository) Get(ctx context.Context, key string) ([]byte, error)     { return nil, nil }
func (NoopRepository) Set(ctx context.Context, key string, value []byte) error { return nil }
func (NoopRepository) SetMany(ctx context.Context, values map[string][]byte) error {
	return nil
}
func (NoopRepository) Delete(ctx context.Context, key string) error { return nil }
func (NoopRepository) Clear(ctx context.Context) error              { return nil }
