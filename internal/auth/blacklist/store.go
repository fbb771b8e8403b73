package blacklist

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	"github.com/arleysouza/auth-api/internal/domain"
)

// KV is the minimal interface we need from the cache.
type KV interface {
	Set(ctx context.Context, key string, val []byte, ttlSeconds int) error
	Exists(ctx context.Context, key string) (bool, error)
}

// Store keeps revoked tokens under "blacklist:jwt:<hex-sha256-of-token>".
// Entries self-expire; nothing deletes them explicitly.
type Store struct {
	kv KV
}

func NewStore(kv KV) *Store { return &Store{kv: kv} }

// Ensure: Store implements domain.TokenBlacklist
var _ domain.TokenBlacklist = (*Store)(nil)

func key(raw domain.Token) string {
	sum := sha256.Sum256([]byte(raw))
	return domain.CacheKeyRevokedToken(hex.EncodeToString(sum[:]))
}

// Revoke writes the flag with the TTL decided by the caller. Store errors
// surface unchanged; there is no retry here.
func (s *Store) Revoke(ctx context.Context, raw domain.Token, ttlSeconds int) error {
	return s.kv.Set(ctx, key(raw), []byte("true"), ttlSeconds)
}

func (s *Store) IsRevoked(ctx context.Context, raw domain.Token) (bool, error) {
	return s.kv.Exists(ctx, key(raw))
}
