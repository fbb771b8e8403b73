package mw

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arleysouza/auth-api/internal/auth/token"
	"github.com/arleysouza/auth-api/internal/domain"
)

type fakeBlacklist struct {
	revoked map[domain.Token]bool
}

func (f *fakeBlacklist) Revoke(_ context.Context, raw domain.Token, _ int) error {
	if f.revoked == nil {
		f.revoked = map[domain.Token]bool{}
	}
	f.revoked[raw] = true
	return nil
}
func (f *fakeBlacklist) IsRevoked(_ context.Context, raw domain.Token) (bool, error) {
	return f.revoked[raw], nil
}

func okHandler(t *testing.T, wantUser domain.User) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, ok := domain.UserFromCtx(r.Context())
		require.True(t, ok)
		assert.Equal(t, wantUser, u)
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAuth(t *testing.T) {
	tm := token.New("test-secret", "auth-api", time.Hour)
	bl := &fakeBlacklist{}
	deps := AuthDeps{Tokens: tm, Blacklist: bl}

	tok, _, err := tm.Issue(context.Background(), 9, "testuser")
	require.NoError(t, err)

	h := RequireAuth(deps, okHandler(t, domain.User{ID: 9, Username: "testuser"}))

	t.Run("valid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
		req.Header.Set("Authorization", "Bearer "+string(tok))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"success":false,"error":"Token não fornecido"}`, rec.Body.String())
	})

	t.Run("garbage token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
		req.Header.Set("Authorization", "Bearer nope")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"success":false,"error":"Token inválido"}`, rec.Body.String())
	})

	t.Run("revoked token", func(t *testing.T) {
		require.NoError(t, bl.Revoke(context.Background(), tok, 60))

		req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
		req.Header.Set("Authorization", "Bearer "+string(tok))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		expired, _, err := token.New("test-secret", "auth-api", -time.Minute).Issue(context.Background(), 9, "testuser")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
		req.Header.Set("Authorization", "Bearer "+string(expired))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
