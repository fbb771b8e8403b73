package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/arleysouza/auth-api/internal/app"
)

// @title       auth-api
// @version     1.0
// @description Credential and session lifecycle service: signup, login and
// @description token revocation (logout) backed by PostgreSQL and Redis.
// @BasePath    /
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.Build(ctx)
	if err != nil {
		log.Fatalf("build: %v", err)
	}

	if err := a.Run(ctx); err != nil {
		log.Fatalf("run: %v", err)
	}
}
