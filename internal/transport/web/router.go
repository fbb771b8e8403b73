package web

import (
	"log"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/arleysouza/auth-api/internal/docs"
	"github.com/arleysouza/auth-api/internal/transport/web/mw"
	authv1 "github.com/arleysouza/auth-api/internal/transport/web/v1/auth"
	"github.com/arleysouza/auth-api/internal/transport/web/v1/health"
)

type routerDeps struct {
	health   *health.Handler
	register *authv1.HandlerRegister
	login    *authv1.HandlerLogin
	logout   *authv1.HandlerLogout
	me       *authv1.HandlerMe
	auth     mw.AuthDeps
}

func newRouter(d routerDeps, logger *log.Logger) http.Handler {
	mux := http.NewServeMux()

	// health
	mux.HandleFunc("GET /v1/healthz", d.health.Liveness)
	mux.HandleFunc("GET /v1/readyz", d.health.Readiness)

	// auth
	mux.HandleFunc("POST /v1/auth/register", limitBody(1<<20, d.register.Register))
	mux.HandleFunc("POST /v1/auth/login", limitBody(1<<20, d.login.Login))
	mux.HandleFunc("POST /v1/auth/logout", d.logout.Logout)

	// protected
	mux.Handle("GET /v1/me", mw.RequireAuth(d.auth, http.HandlerFunc(d.me.Me)))

	// swagger
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// 🔗 middleware
	return mw.WithRequestID(mw.Logging(logger)(mux))
}

func limitBody(n int64, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, n)
		h(w, r)
	}
}
