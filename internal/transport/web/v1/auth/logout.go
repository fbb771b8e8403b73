package auth

import (
	"log"
	"net/http"

	"github.com/arleysouza/auth-api/internal/domain"
	"github.com/arleysouza/auth-api/internal/transport/web/logx"
	"github.com/arleysouza/auth-api/internal/transport/web/mw"
	v1 "github.com/arleysouza/auth-api/internal/transport/web/v1"
)

// HandlerLogout handles POST /v1/auth/logout
type HandlerLogout struct {
	Log      *log.Logger
	Sessions domain.Sessions
}

type logoutResponse struct {
	Message string `json:"message"`
}

// Logout godoc
// @Summary     Logout (revoke token)
// @Description Encerra a sessão: coloca o token na blacklist até o exp. Tokens já expirados ainda são registrados com TTL curto.
// @Tags        auth
// @Produce     json
// @Param       Authorization header string true "Bearer <token>"
// @Success     200 {object} domain.APIEnvelope{data=logoutResponse}
// @Failure     400 {object} domain.APIEnvelope
// @Failure     401 {object} domain.APIEnvelope
// @Failure     500 {object} domain.APIEnvelope
// @Router      /v1/auth/logout [post]
func (h *HandlerLogout) Logout(w http.ResponseWriter, r *http.Request) {
	const op = "auth.logout"
	reqID := mw.RequestIDFromCtx(r.Context())
	logx.Info(h.Log, reqID, op, "start", "method", r.Method, "path", r.URL.Path)

	if r.Method != http.MethodPost {
		logx.Error(h.Log, reqID, op, "method not allowed", domain.ErrMethodNotAllowed, "method", r.Method)
		v1.WriteDomainError(w, r, domain.ErrMethodNotAllowed, domain.MsgLogoutFailed)
		return
	}

	// header goes in whole; bearer extraction is a session-manager rule
	if err := h.Sessions.Logout(r.Context(), r.Header.Get("Authorization")); err != nil {
		logx.Error(h.Log, reqID, op, "logout failed", err)
		v1.WriteDomainError(w, r, err, domain.MsgLogoutFailed)
		return
	}

	logx.Info(h.Log, reqID, op, "ok")
	v1.WriteOK(w, r, logoutResponse{Message: domain.MsgLogoutOK})
}
