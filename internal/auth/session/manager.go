package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/arleysouza/auth-api/internal/domain"
)

// Config is the immutable policy the manager is constructed with.
type Config struct {
	// RevokeFallbackTTL is applied when logout sees an already-expired
	// token: the blacklist entry still gets a short grace window.
	RevokeFallbackTTL int
}

const DefaultRevokeFallbackTTL = 60

func DefaultConfig() Config {
	return Config{RevokeFallbackTTL: DefaultRevokeFallbackTTL}
}

// Manager orchestrates signup, login and logout. It owns the business
// rules (duplicate conflicts, ambiguous credential errors, revocation TTL
// policy); transport and storage stay dumb.
type Manager struct {
	log       *log.Logger
	users     domain.UsersRepo
	hasher    domain.PasswordHasher
	tokens    domain.TokenManager
	blacklist domain.TokenBlacklist
	cfg       Config

	now func() time.Time
}

func New(logger *log.Logger, users domain.UsersRepo, hasher domain.PasswordHasher,
	tokens domain.TokenManager, blacklist domain.TokenBlacklist, cfg Config) *Manager {
	if cfg.RevokeFallbackTTL <= 0 {
		cfg.RevokeFallbackTTL = DefaultRevokeFallbackTTL
	}
	return &Manager{
		log:       logger,
		users:     users,
		hasher:    hasher,
		tokens:    tokens,
		blacklist: blacklist,
		cfg:       cfg,
		now:       time.Now,
	}
}

// Ensure: Manager implements domain.Sessions
var _ domain.Sessions = (*Manager)(nil)

// SignUp hashes the password and inserts the user. A unique violation
// comes back as *domain.DuplicateUserError with the store's own text;
// every other failure collapses to ErrPersistence.
func (m *Manager) SignUp(ctx context.Context, username, password string) (domain.User, error) {
	hash, err := m.hasher.Hash(password)
	if err != nil {
		m.log.Printf("signup: hash failed: %v", err)
		return domain.User{}, fmt.Errorf("hash password: %w", domain.ErrPersistence)
	}

	u, err := m.users.CreateUser(ctx, username, []byte(hash))
	if err != nil {
		var dup *domain.DuplicateUserError
		if errors.As(err, &dup) {
			m.log.Printf("signup: duplicate username %q", username)
			return domain.User{}, err
		}
		m.log.Printf("signup: create user failed: %v", err)
		return domain.User{}, fmt.Errorf("create user: %w", domain.ErrPersistence)
	}
	return u, nil
}

// Login resolves the user and checks the password. Unknown username and
// wrong password are indistinguishable to the caller.
func (m *Manager) Login(ctx context.Context, username, password string) (domain.Token, domain.User, error) {
	u, err := m.users.UserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.User{}, domain.ErrInvalidCredentials
		}
		m.log.Printf("login: lookup failed: %v", err)
		return "", domain.User{}, fmt.Errorf("lookup user: %w", domain.ErrPersistence)
	}

	if !m.hasher.Verify(password, string(u.PassHash)) {
		return "", domain.User{}, domain.ErrInvalidCredentials
	}

	tok, _, err := m.tokens.Issue(ctx, u.ID, u.Username)
	if err != nil {
		m.log.Printf("login: issue token failed: %v", err)
		return "", domain.User{}, fmt.Errorf("issue token: %w", domain.ErrPersistence)
	}
	return tok, u, nil
}

// Logout revokes the bearer token from the Authorization header.
//
// The token is parsed with expiration ignored: an expired token is still
// a valid logout, its exp just flips the TTL to the fallback. When the
// token has remaining lifetime R, the blacklist entry gets TTL exactly R,
// so revocation and natural expiry line up and the entry can lapse as soon
// as the token itself is useless.
func (m *Manager) Logout(ctx context.Context, authorization string) error {
	raw := bearerToken(authorization)
	if raw == "" {
		return domain.ErrTokenMissing
	}

	claims, err := m.tokens.Parse(ctx, raw, true)
	if err != nil {
		m.log.Printf("logout: parse token failed: %v", err)
		return domain.ErrTokenInvalid
	}
	// parsed but incomplete: a token without exp is rejected even at logout
	if !claims.HasExpiry() {
		return domain.ErrTokenInvalid
	}

	remaining := int(claims.ExpiresAt.Unix() - m.now().Unix())
	ttl := remaining
	if remaining <= 0 {
		ttl = m.cfg.RevokeFallbackTTL
	}

	if err := m.blacklist.Revoke(ctx, raw, ttl); err != nil {
		m.log.Printf("logout: revoke failed: %v", err)
		return fmt.Errorf("revoke token: %w", domain.ErrLogout)
	}
	return nil
}

func bearerToken(h string) domain.Token {
	if len(h) > 7 && strings.EqualFold(h[:7], "Bearer ") {
		return domain.Token(strings.TrimSpace(h[7:]))
	}
	return ""
}
