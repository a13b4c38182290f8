package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/forms-platform/internal/api/routes"
	"github.com/linskybing/forms-platform/internal/application"
	"github.com/linskybing/forms-platform/internal/config"
	"github.com/linskybing/forms-platform/internal/config/db"
	"github.com/linskybing/forms-platform/internal/migrations"
	"github.com/linskybing/forms-platform/internal/repository"
	"github.com/linskybing/forms-platform/pkg/logger"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gormDB, err := db.Open(ctx, cfg.AuthDB, log)
	if err != nil {
		log.Fatal("Failed to open auth database", "error", err)
	}
	defer db.Close(gormDB, log)

	if err := migrations.Auth(gormDB); err != nil {
		log.Fatal("Failed to migrate database", "error", err)
	}

	repos := repository.NewRepositories(gormDB)
	repos.SetAcquireTimeout(cfg.AuthDB.AcquireTimeout)
	services := application.New(repos, log)

	gin.SetMode(cfg.GinMode)
	router := routes.NewAuthRouter(cfg.AuthBasePath, services, log)

	srv := &http.Server{
		Addr:              ":" + cfg.AuthServerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Info("Starting auth service", "addr", srv.Addr, "base_path", cfg.AuthBasePath)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Auth service stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn("Graceful shutdown failed", "error", err)
	}
	log.Info("Auth service stopped")
}
