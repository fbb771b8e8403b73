package token

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/arleysouza/auth-api/internal/domain"
)

type Manager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

func New(secret string, issuer string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), issuer: issuer, ttl: ttl}
}

// internal type for signing/parsing with jwt.RegisteredClaims
type jwtClaims struct {
	UserID   int64  `json:"id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Ensure: Manager implements domain.TokenManager
var _ domain.TokenManager = (*Manager)(nil)

// Issue signs a JWT with exp = now + ttl and returns the domain claims.
func (m *Manager) Issue(_ context.Context, id domain.UserID, username string) (domain.Token, domain.TokenClaims, error) {
	now := time.Now().UTC()
	jti := uuid.NewString()

	cl := jwtClaims{
		UserID:   id,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        jti,
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, cl)
	tokenStr, err := t.SignedString(m.secret)
	if err != nil {
		return "", domain.TokenClaims{}, err
	}

	return domain.Token(tokenStr), domain.TokenClaims{
		JTI:       jti,
		UserID:    id,
		Username:  username,
		IssuedAt:  now,
		ExpiresAt: cl.ExpiresAt.Time,
	}, nil
}

// Parse validates the signature and, unless ignoreExpired is set, the exp
// claim. With ignoreExpired the signature is still checked, but claims
// validation is skipped so an expired token can be read back (logout needs
// its exp to compute the revocation TTL). A missing exp stays visible to
// the caller as a zero ExpiresAt.
func (m *Manager) Parse(_ context.Context, raw domain.Token, ignoreExpired bool) (domain.TokenClaims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	}
	if ignoreExpired {
		opts = append(opts, jwt.WithoutClaimsValidation())
	}

	var out jwtClaims
	tkn, err := jwt.ParseWithClaims(string(raw), &out, func(token *jwt.Token) (any, error) {
		return m.secret, nil
	}, opts...)
	if err != nil {
		return domain.TokenClaims{}, err
	}
	if !tkn.Valid {
		return domain.TokenClaims{}, jwt.ErrTokenInvalidClaims
	}

	cl := domain.TokenClaims{
		JTI:      out.ID,
		UserID:   out.UserID,
		Username: out.Username,
	}
	if out.IssuedAt != nil {
		cl.IssuedAt = out.IssuedAt.Time
	}
	if out.ExpiresAt != nil {
		cl.ExpiresAt = out.ExpiresAt.Time
	}
	return cl, nil
}
