package web

import (
	"github.com/arleysouza/auth-api/internal/domain"
	"github.com/arleysouza/auth-api/internal/transport/web/mw"
)

type Deps struct {
	Users    domain.UsersRepo
	Cache    domain.Cache
	Sessions domain.Sessions
	Auth     mw.AuthDeps
}
