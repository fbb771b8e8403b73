package auth

import (
	"log"
	"net/http"

	"github.com/arleysouza/auth-api/internal/domain"
	"github.com/arleysouza/auth-api/internal/transport/web/logx"
	"github.com/arleysouza/auth-api/internal/transport/web/mw"
	v1 "github.com/arleysouza/auth-api/internal/transport/web/v1"
)

// HandlerMe handles GET /v1/me (behind mw.RequireAuth)
type HandlerMe struct {
	Log *log.Logger
}

type meResponse struct {
	User domain.PublicUser `json:"user"`
}

// Me godoc
// @Summary     Current user
// @Description Retorna a identidade do portador do token (assinatura válida, não expirado, não revogado).
// @Tags        auth
// @Produce     json
// @Param       Authorization header string true "Bearer <token>"
// @Success     200 {object} domain.APIEnvelope{data=meResponse}
// @Failure     401 {object} domain.APIEnvelope
// @Router      /v1/me [get]
func (h *HandlerMe) Me(w http.ResponseWriter, r *http.Request) {
	const op = "auth.me"
	reqID := mw.RequestIDFromCtx(r.Context())

	u, ok := domain.UserFromCtx(r.Context())
	if !ok {
		// RequireAuth already stands in front of this handler
		logx.Error(h.Log, reqID, op, "no user in context", domain.ErrUnexpected)
		v1.WriteDomainError(w, r, domain.ErrTokenMissing, domain.MsgTokenMissing)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "user_id", u.ID, "username", u.Username)
	v1.WriteOK(w, r, meResponse{User: u.Public()})
}
