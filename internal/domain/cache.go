package domain

import "context"

// Cache keys in one place so they don't drift across the code.
// Revoked tokens are keyed by hex sha256 of the raw token string, so the
// store never retains the token itself.
func CacheKeyRevokedToken(sha256hex string) string { return "blacklist:jwt:" + sha256hex }

// Minimal k/v interface. Implementation is Redis.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, val []byte, ttlSeconds int) error
	Exists(ctx context.Context, key string) (bool, error)
	Del(ctx context.Context, keys ...string) error
	Ping(context.Context) error
	Close()
}
