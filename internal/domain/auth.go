package domain

import (
	"context"
	"time"
)

type Token string

// TokenClaims is the payload carried by a session token. ExpiresAt is the
// zero time when the token was issued without an exp claim.
type TokenClaims struct {
	JTI       string
	UserID    UserID
	Username  string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// HasExpiry reports whether the token carried an exp claim at all.
func (c TokenClaims) HasExpiry() bool { return !c.ExpiresAt.IsZero() }

// Password hashing (bcrypt in internal/auth/password).
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain string, hash string) bool
}

// Token lifecycle (JWT in internal/auth/token). Parse with ignoreExpired
// still verifies the signature but accepts a past exp; logout needs that
// to compute the revocation TTL from an already-expired token.
type TokenManager interface {
	Issue(ctx context.Context, id UserID, username string) (Token, TokenClaims, error)
	Parse(ctx context.Context, raw Token, ignoreExpired bool) (TokenClaims, error)
}

// Token revocation (Redis-backed blacklist). TTL policy belongs to the
// session manager; the store just writes what it is told.
type TokenBlacklist interface {
	Revoke(ctx context.Context, raw Token, ttlSeconds int) error
	IsRevoked(ctx context.Context, raw Token) (bool, error)
}

// Sessions is the single entry point the transport layer talks to.
type Sessions interface {
	SignUp(ctx context.Context, username, password string) (User, error)
	Login(ctx context.Context, username, password string) (Token, User, error)
	Logout(ctx context.Context, authorization string) error
}
