package v1

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/arleysouza/auth-api/internal/domain"
	"github.com/arleysouza/auth-api/internal/transport/web/mw"
)

// MapDomainError resolves HTTP status + envelope. Domain errors get their
// precise client message; everything else collapses to the per-operation
// fallback so infrastructure detail never leaks.
func MapDomainError(err error, fallback string) (int, domain.APIEnvelope) {
	var dup *domain.DuplicateUserError
	switch {
	case errors.As(err, &dup):
		return http.StatusBadRequest, domain.Fail(dup.Detail)
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, domain.Fail(domain.MsgInvalidCredentials)
	case errors.Is(err, domain.ErrTokenMissing):
		return http.StatusUnauthorized, domain.Fail(domain.MsgTokenMissing)
	case errors.Is(err, domain.ErrTokenInvalid):
		return http.StatusBadRequest, domain.Fail(domain.MsgTokenInvalid)
	case errors.Is(err, domain.ErrMethodNotAllowed):
		return http.StatusMethodNotAllowed, domain.Fail(domain.MsgMethodNotAllowed)
	default:
		return http.StatusInternalServerError, domain.Fail(fallback)
	}
}

func WriteEnvelope(w http.ResponseWriter, r *http.Request, status int, env domain.APIEnvelope) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Request-ID", mw.RequestIDFromCtx(r.Context()))
	w.WriteHeader(status)
	if r.Method == http.MethodHead {
		return
	}
	_ = json.NewEncoder(w).Encode(env)
}

// Success shortcuts
func WriteOK(w http.ResponseWriter, r *http.Request, data any) {
	WriteEnvelope(w, r, http.StatusOK, domain.Ok(data))
}
func WriteCreated(w http.ResponseWriter, r *http.Request, data any) {
	WriteEnvelope(w, r, http.StatusCreated, domain.Ok(data))
}

// Error shortcuts
func WriteDomainError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status, env := MapDomainError(err, fallback)
	WriteEnvelope(w, r, status, env)
}
func WriteBadRequest(w http.ResponseWriter, r *http.Request, msg string) {
	WriteEnvelope(w, r, http.StatusBadRequest, domain.Fail(msg))
}
