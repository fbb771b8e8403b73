package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/arleysouza/auth-api/internal/auth/blacklist"
	"github.com/arleysouza/auth-api/internal/auth/password"
	"github.com/arleysouza/auth-api/internal/auth/session"
	"github.com/arleysouza/auth-api/internal/auth/token"
	"github.com/arleysouza/auth-api/internal/config"
	"github.com/arleysouza/auth-api/internal/domain"
	redisx "github.com/arleysouza/auth-api/internal/infra/cache/redis"
	"github.com/arleysouza/auth-api/internal/infra/database/postgres"
	"github.com/arleysouza/auth-api/internal/transport/web"
	"github.com/arleysouza/auth-api/internal/transport/web/mw"
)

type App struct {
	config *config.Config
	server *web.Server
	log    *log.Logger
	cache  domain.Cache
	repo   domain.UsersRepo
}

func Build(ctx context.Context) (*App, error) {
	base := log.New(os.Stdout, "[app] ", log.LstdFlags)

	serverLog := log.New(base.Writer(), base.Prefix()+"[server] ", base.Flags())
	pgLog := log.New(base.Writer(), base.Prefix()+"[postgres] ", base.Flags())
	redisLog := log.New(base.Writer(), base.Prefix()+"[redis] ", base.Flags())
	sessionLog := log.New(base.Writer(), base.Prefix()+"[session] ", base.Flags())

	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed load config: %w", err)
	}
	base.Printf("\n  configuration: %s-------------------", cfg)

	base.Println("init PostgreSQL")
	pgRepo, err := postgres.NewPGRepo(ctx, pgLog, cfg.GetDSN(), cfg.DBScheme)
	if err != nil {
		return nil, fmt.Errorf("failed init postgres: %w", err)
	}
	base.Println("PostgreSQL is initialized")

	base.Println("init Redis")
	rc := redisx.New(redisx.Config{
		Addr:     cfg.RedisAddr,
		DB:       cfg.RedisDB,
		Password: cfg.RedisPassword,
	}, redisLog)
	if err := rc.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed init redis: %w", err)
	}
	base.Println("Redis is initialized")

	// Auth primitives
	hasher := password.New(cfg.AuthBcryptCost)
	tm := token.New(cfg.AuthJWTSecret, cfg.AuthIssuer, cfg.AuthTokenTTL)
	bl := blacklist.NewStore(rc)
	sessions := session.New(sessionLog, pgRepo, hasher, tm, bl, session.Config{
		RevokeFallbackTTL: cfg.AuthRevokeFallbackTTL,
	})

	base.Println("init Server")
	server := web.New(serverLog, cfg, web.Deps{
		Users:    pgRepo,
		Cache:    rc,
		Sessions: sessions,
		Auth:     mw.AuthDeps{Tokens: tm, Blacklist: bl},
	})
	base.Println("Server is initialized")

	base.Println("build ended")
	return &App{
		config: cfg,
		server: server,
		log:    base,
		repo:   pgRepo,
		cache:  rc}, nil
}

func (a *App) Run(ctx context.Context) error {
	a.log.Println("start application...")
	go a.server.Run()
	<-ctx.Done()
	a.log.Println("stop application...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	a.server.Close(stopCtx)
	a.repo.Close()
	a.cache.Close()

	return nil
}
