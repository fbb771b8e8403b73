package web

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/arleysouza/auth-api/internal/config"
	authv1 "github.com/arleysouza/auth-api/internal/transport/web/v1/auth"
	"github.com/arleysouza/auth-api/internal/transport/web/v1/health"
)

type Server struct {
	log    *log.Logger
	server *http.Server
	cfg    *config.Config
}

func New(logger *log.Logger, cfg *config.Config, deps Deps) *Server {
	healthLog := log.New(logger.Writer(), logger.Prefix()+"[health] ", logger.Flags())
	authLog := log.New(logger.Writer(), logger.Prefix()+"[auth] ", logger.Flags())

	healthHandler := &health.Handler{DB: deps.Users, Cache: deps.Cache, Log: healthLog}
	registerHandler := &authv1.HandlerRegister{Log: authLog, Sessions: deps.Sessions}
	loginHandler := &authv1.HandlerLogin{Log: authLog, Sessions: deps.Sessions}
	logoutHandler := &authv1.HandlerLogout{Log: authLog, Sessions: deps.Sessions}
	meHandler := &authv1.HandlerMe{Log: authLog}

	srv := &http.Server{
		Addr: cfg.AppPort,
		Handler: newRouter(routerDeps{
			health:   healthHandler,
			register: registerHandler,
			login:    loginHandler,
			logout:   logoutHandler,
			me:       meHandler,
			auth:     deps.Auth,
		}, logger),
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		MaxHeaderBytes:    1 << 20,
		ReadHeaderTimeout: 2 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return &Server{server: srv, cfg: cfg, log: logger}
}

func (ws *Server) Run() {
	ws.log.Printf("started on %s", ws.server.Addr)
	if err := ws.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		ws.log.Fatalf("error: %v", err)
	}
}

func (ws *Server) Close(ctx context.Context) {
	if err := ws.server.Shutdown(ctx); err != nil {
		ws.log.Printf("forced to shutdown: %v", err)
	}
	ws.log.Println("exited gracefully")
}
