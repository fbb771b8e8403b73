package session

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/arleysouza/auth-api/internal/auth/password"
	"github.com/arleysouza/auth-api/internal/auth/token"
	"github.com/arleysouza/auth-api/internal/domain"
)

const testSecret = "test-secret"

type fakeUsers struct {
	createUser     func(username string, passHash []byte) (domain.User, error)
	userByUsername func(username string) (domain.User, error)
}

func (f *fakeUsers) Close() {}

func (f *fakeUsers) Ping(context.Context) error { return nil }

func (f *fakeUsers) CreateUser(_ context.Context, username string, passHash []byte) (domain.User, error) {
	return f.createUser(username, passHash)
}
func (f *fakeUsers) UserByUsername(_ context.Context, username string) (domain.User, error) {
	return f.userByUsername(username)
}
func (f *fakeUsers) UserByID(context.Context, domain.UserID) (domain.User, error) {
	return domain.User{}, domain.ErrUserNotFound
}

type fakeBlacklist struct {
	revokeCalls  int
	revokedToken domain.Token
	revokedTTL   int
	revokeErr    error
}

func (f *fakeBlacklist) Revoke(_ context.Context, raw domain.Token, ttlSeconds int) error {
	f.revokeCalls++
	f.revokedToken = raw
	f.revokedTTL = ttlSeconds
	return f.revokeErr
}
func (f *fakeBlacklist) IsRevoked(context.Context, domain.Token) (bool, error) {
	return false, nil
}

func newManager(t *testing.T, users domain.UsersRepo, bl domain.TokenBlacklist) *Manager {
	t.Helper()
	return New(
		log.New(io.Discard, "", 0),
		users,
		password.New(bcrypt.MinCost),
		token.New(testSecret, "auth-api", time.Hour),
		bl,
		DefaultConfig(),
	)
}

func TestSignUpHashesPassword(t *testing.T) {
	var storedHash []byte
	users := &fakeUsers{
		createUser: func(username string, passHash []byte) (domain.User, error) {
			storedHash = passHash
			return domain.User{ID: 1, Username: username, PassHash: passHash}, nil
		},
	}
	m := newManager(t, users, &fakeBlacklist{})

	u, err := m.SignUp(context.Background(), "testuser", "123456")
	require.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)
	assert.Equal(t, "testuser", u.Username)

	require.NotEmpty(t, storedHash)
	assert.NotEqual(t, "123456", string(storedHash), "plaintext must never reach the store")
	assert.NoError(t, bcrypt.CompareHashAndPassword(storedHash, []byte("123456")))
}

func TestSignUpDuplicatePassesStoreMessage(t *testing.T) {
	storeMsg := `duplicate key value violates unique constraint "users_username_key"`
	users := &fakeUsers{
		createUser: func(string, []byte) (domain.User, error) {
			return domain.User{}, &domain.DuplicateUserError{Detail: storeMsg}
		},
	}
	m := newManager(t, users, &fakeBlacklist{})

	_, err := m.SignUp(context.Background(), "testuser", "123456")
	var dup *domain.DuplicateUserError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, storeMsg, dup.Detail)
}

func TestSignUpOtherStoreFailureIsGeneric(t *testing.T) {
	users := &fakeUsers{
		createUser: func(string, []byte) (domain.User, error) {
			return domain.User{}, errors.New("connection reset by peer")
		},
	}
	m := newManager(t, users, &fakeBlacklist{})

	_, err := m.SignUp(context.Background(), "testuser", "123456")
	assert.ErrorIs(t, err, domain.ErrPersistence)
	assert.NotContains(t, err.Error(), "connection reset", "cause must not leak")
}

func TestSignUpThenLogin(t *testing.T) {
	db := map[string]domain.User{}
	users := &fakeUsers{
		createUser: func(username string, passHash []byte) (domain.User, error) {
			u := domain.User{ID: int64(len(db) + 1), Username: username, PassHash: passHash}
			db[username] = u
			return u, nil
		},
		userByUsername: func(username string) (domain.User, error) {
			u, ok := db[username]
			if !ok {
				return domain.User{}, domain.ErrUserNotFound
			}
			return u, nil
		},
	}
	m := newManager(t, users, &fakeBlacklist{})
	ctx := context.Background()

	_, err := m.SignUp(ctx, "testuser", "123456")
	require.NoError(t, err)

	tok, u, err := m.Login(ctx, "testuser", "123456")
	require.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)

	claims, err := token.New(testSecret, "auth-api", time.Hour).Parse(ctx, tok, false)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
	assert.Equal(t, "testuser", claims.Username)
}

func TestLoginAmbiguousFailure(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("right"), bcrypt.MinCost)
	require.NoError(t, err)
	users := &fakeUsers{
		userByUsername: func(username string) (domain.User, error) {
			if username == "known" {
				return domain.User{ID: 1, Username: "known", PassHash: hash}, nil
			}
			return domain.User{}, domain.ErrUserNotFound
		},
	}
	m := newManager(t, users, &fakeBlacklist{})
	ctx := context.Background()

	_, _, errUnknown := m.Login(ctx, "nobody", "whatever")
	_, _, errWrongPass := m.Login(ctx, "known", "wrong")

	// unknown user and wrong password must be indistinguishable
	assert.ErrorIs(t, errUnknown, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPass, domain.ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrongPass.Error())
}

func TestLoginStoreFailureIsGeneric(t *testing.T) {
	users := &fakeUsers{
		userByUsername: func(string) (domain.User, error) {
			return domain.User{}, errors.New("dial tcp: timeout")
		},
	}
	m := newManager(t, users, &fakeBlacklist{})

	_, _, err := m.Login(context.Background(), "testuser", "123456")
	assert.ErrorIs(t, err, domain.ErrPersistence)
	assert.NotErrorIs(t, err, domain.ErrInvalidCredentials)
}

// issueToken signs a token with the manager's secret and the given exp.
func issueToken(t *testing.T, claims jwt.MapClaims) domain.Token {
	t.Helper()
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return domain.Token(raw)
}

func TestLogoutMissingHeader(t *testing.T) {
	m := newManager(t, &fakeUsers{}, &fakeBlacklist{})
	ctx := context.Background()

	assert.ErrorIs(t, m.Logout(ctx, ""), domain.ErrTokenMissing)
	assert.ErrorIs(t, m.Logout(ctx, "Token abc"), domain.ErrTokenMissing)
	assert.ErrorIs(t, m.Logout(ctx, "Bearer"), domain.ErrTokenMissing)
}

func TestLogoutInvalidToken(t *testing.T) {
	bl := &fakeBlacklist{}
	m := newManager(t, &fakeUsers{}, bl)

	err := m.Logout(context.Background(), "Bearer not.a.token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	assert.Zero(t, bl.revokeCalls)
}

func TestLogoutTokenWithoutExp(t *testing.T) {
	bl := &fakeBlacklist{}
	m := newManager(t, &fakeUsers{}, bl)
	tok := issueToken(t, jwt.MapClaims{"id": 1, "username": "testuser"})

	err := m.Logout(context.Background(), "Bearer "+string(tok))
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	assert.Zero(t, bl.revokeCalls)
}

func TestLogoutTTLIsExactRemainingLifetime(t *testing.T) {
	now := time.Now()
	exp := now.Add(137 * time.Second)
	tok := issueToken(t, jwt.MapClaims{
		"id": 1, "username": "testuser", "exp": exp.Unix(),
	})

	bl := &fakeBlacklist{}
	m := newManager(t, &fakeUsers{}, bl)
	m.now = func() time.Time { return now }

	require.NoError(t, m.Logout(context.Background(), "Bearer "+string(tok)))
	assert.Equal(t, 1, bl.revokeCalls)
	assert.Equal(t, tok, bl.revokedToken)
	assert.Equal(t, int(exp.Unix()-now.Unix()), bl.revokedTTL)
}

func TestLogoutExpiredTokenUsesFallbackTTL(t *testing.T) {
	now := time.Now()
	tok := issueToken(t, jwt.MapClaims{
		"id": 1, "username": "testuser", "exp": now.Add(-time.Hour).Unix(),
	})

	bl := &fakeBlacklist{}
	m := newManager(t, &fakeUsers{}, bl)
	m.now = func() time.Time { return now }

	require.NoError(t, m.Logout(context.Background(), "Bearer "+string(tok)))
	assert.Equal(t, 1, bl.revokeCalls)
	assert.Equal(t, 60, bl.revokedTTL)
}

func TestLogoutTwiceRevokesTwice(t *testing.T) {
	tok := issueToken(t, jwt.MapClaims{
		"id": 1, "username": "testuser", "exp": time.Now().Add(time.Hour).Unix(),
	})

	bl := &fakeBlacklist{}
	m := newManager(t, &fakeUsers{}, bl)
	ctx := context.Background()

	require.NoError(t, m.Logout(ctx, "Bearer "+string(tok)))
	require.NoError(t, m.Logout(ctx, "Bearer "+string(tok)))
	assert.Equal(t, 2, bl.revokeCalls)
}

func TestLogoutStoreFailure(t *testing.T) {
	tok := issueToken(t, jwt.MapClaims{
		"id": 1, "username": "testuser", "exp": time.Now().Add(time.Hour).Unix(),
	})

	bl := &fakeBlacklist{revokeErr: errors.New("redis: connection pool timeout")}
	m := newManager(t, &fakeUsers{}, bl)

	err := m.Logout(context.Background(), "Bearer "+string(tok))
	assert.ErrorIs(t, err, domain.ErrLogout)
	assert.NotContains(t, err.Error(), "redis", "cause must not leak")
}
