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

// HandlerRegister handles POST /v1/auth/register
type HandlerRegister struct {
	Log      *log.Logger
	Sessions domain.Sessions
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerResponse struct {
	Message string `json:"message"`
}

// Register godoc
// @Summary     Register new user
// @Description Cria um usuário com senha criptografada (bcrypt). Nenhum token é emitido no cadastro.
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body registerRequest true "username, password"
// @Success     201 {object} domain.APIEnvelope{data=registerResponse}
// @Failure     400 {object} domain.APIEnvelope
// @Failure     500 {object} domain.APIEnvelope
// @Router      /v1/auth/register [post]
func (h *HandlerRegister) Register(w http.ResponseWriter, r *http.Request) {
	const op = "auth.register"
	reqID := mw.RequestIDFromCtx(r.Context())
	logx.Info(h.Log, reqID, op, "start", "method", r.Method, "path", r.URL.Path)

	if r.Method != http.MethodPost {
		logx.Error(h.Log, reqID, op, "method not allowed", domain.ErrMethodNotAllowed, "method", r.Method)
		v1.WriteDomainError(w, r, domain.ErrMethodNotAllowed, domain.MsgSignupFailed)
		return
	}

	// JSON is the contract; form is a convenience for manual testing.
	var req registerRequest
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

	u, err := h.Sessions.SignUp(r.Context(), req.Username, req.Password)
	if err != nil {
		logx.Error(h.Log, reqID, op, "signup failed", err, "username", req.Username)
		v1.WriteDomainError(w, r, err, domain.MsgSignupFailed)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "user_id", u.ID, "username", u.Username)
	v1.WriteCreated(w, r, registerResponse{Message: domain.MsgSignupOK})
}
