package mw

import (
	"net/http"
	"strings"

	"github.com/arleysouza/auth-api/internal/domain"
)

type AuthDeps struct {
	Tokens    domain.TokenManager
	Blacklist domain.TokenBlacklist
}

// RequireAuth guards a route: valid signature, unexpired, not revoked.
// This is the read side of the blacklist; logout owns the write side.
func RequireAuth(deps AuthDeps, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := extractBearer(r.Header.Get("Authorization"))
		if raw == "" {
			unauthorized(w, domain.MsgTokenMissing)
			return
		}
		claims, err := deps.Tokens.Parse(r.Context(), raw, false)
		if err != nil {
			unauthorized(w, domain.MsgTokenInvalid)
			return
		}
		if revoked, _ := deps.Blacklist.IsRevoked(r.Context(), raw); revoked {
			unauthorized(w, domain.MsgTokenInvalid)
			return
		}
		u := domain.User{ID: claims.UserID, Username: claims.Username}
		next.ServeHTTP(w, r.WithContext(domain.WithUser(r.Context(), u)))
	})
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"success":false,"error":"` + msg + `"}`))
}

func extractBearer(h string) domain.Token {
	if len(h) > 7 && strings.EqualFold(h[:7], "Bearer ") {
		return domain.Token(strings.TrimSpace(h[7:]))
	}
	return ""
}
