package domain

import "errors"

// Business errors. The HTTP layer maps these to statuses and client messages;
// anything else collapses to a generic per-operation 500.
var (
	ErrBadParams          = errors.New("bad_params")          // 400
	ErrInvalidCredentials = errors.New("invalid_credentials") // 401
	ErrTokenMissing       = errors.New("token_missing")       // 401
	ErrTokenInvalid       = errors.New("token_invalid")       // 400
	ErrUserNotFound       = errors.New("user_not_found")      // internal, never leaves the core
	ErrPersistence        = errors.New("persistence_failure") // 500
	ErrLogout             = errors.New("logout_failure")      // 500
	ErrMethodNotAllowed   = errors.New("method_not_allowed")  // 405
	ErrUnexpected         = errors.New("unexpected")          // 500
)

// DuplicateUserError carries the store's unique-violation text verbatim;
// the client sees exactly what the store said.
type DuplicateUserError struct {
	Detail string
}

func (e *DuplicateUserError) Error() string { return e.Detail }

// Client-facing messages. The invalid-credentials text is shared between
// unknown username and wrong password on purpose (no user enumeration).
const (
	MsgInvalidCredentials = "Credenciais inválidas."
	MsgTokenMissing       = "Token não fornecido"
	MsgTokenInvalid       = "Token inválido"
	MsgMissingFields      = "Usuário e senha são obrigatórios."
	MsgMethodNotAllowed   = "Método não permitido"

	MsgSignupOK = "Usuário criado com sucesso!"
	MsgLoginOK  = "Login realizado com sucesso!"
	MsgLogoutOK = "Logout realizado com sucesso!"

	MsgSignupFailed = "Erro ao criar usuário."
	MsgLoginFailed  = "Erro ao realizar login."
	MsgLogoutFailed = "Erro ao realizar logout."
)
