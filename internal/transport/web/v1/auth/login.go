package auth

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/arleysouza/auth-api/internal/domain"
	"github.com/arleysouza/auth-api/internal/transport/web/logx"
	"github.com/arleysouza/auth-api/internal/transport/web/mw"
	v1 "github.com/arleysouza/auth-api/internal/transport/web/v1"
)

// HandlerLogin handles POST /v1/auth/login
type HandlerLogin struct {
	Log      *log.Logger
	Sessions domain.Sessions
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message string            `json:"message"`
	Token   string            `json:"token"`
	User    domain.PublicUser `json:"user"`
}

// Login godoc
// @Summary     Authenticate user
// @Description Retorna um JWT quando usuário e senha conferem. Usuário inexistente e senha errada produzem a mesma resposta.
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body loginRequest true "username, password"
// @Success     200 {object} domain.APIEnvelope{data=loginResponse}
// @Failure     401 {object} domain.APIEnvelope
// @Failure     500 {object} domain.APIEnvelope
// @Router      /v1/auth/login [post]
func (h *HandlerLogin) Login(w http.ResponseWriter, r *http.Request) {
	const op = "auth.login"
	reqID := mw.RequestIDFromCtx(r.Context())
	logx.Info(h.Log, reqID, op, "start", "method", r.Method, "path", r.URL.Path)

	if r.Method != http.MethodPost {
		logx.Error(h.Log, reqID, op, "method not allowed", domain.ErrMethodNotAllowed, "method", r.Method)
		v1.WriteDomainError(w, r, domain.ErrMethodNotAllowed, domain.MsgLoginFailed)
		return
	}

	var req loginRequest
	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logx.Error(h.Log, reqID, op, "bad json", err)
			v1.WriteBadRequest(w, r, domain.MsgMissingFields)
			return
		}
	} else {
		_ = r.ParseForm()
		req.Username = r.FormValue("username")
		req.Password = r.FormValue("password")
	}

	if req.Username == "" || req.Password == "" {
		logx.Error(h.Log, reqID, op, "missing fields", domain.ErrBadParams)
		v1.WriteBadRequest(w, r, domain.MsgMissingFields)
		return
	}

	tok, u, err := h.Sessions.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		logx.Error(h.Log, reqID, op, "login failed", err, "username", req.Username)
		v1.WriteDomainError(w, r, err, domain.MsgLoginFailed)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "user_id", u.ID, "username", u.Username)
	v1.WriteOK(w, r, loginResponse{
		Message: domain.MsgLoginOK,
		Token:   string(tok),
		User:    u.Public(),
	})
}
