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

	gormDB, err := db.Open(ctx, cfg.FormsDB, log)
	if err != nil {
		log.Fatal("Failed to open forms database", "error", err)
	}
	defer db.Close(gormDB, log)

	if err := migrations.Forms(gormDB); err != nil {
		log.Fatal("Failed to migrate database", "error", err)
	}

	repos := repository.NewRepositories(gormDB)
	repos.SetAcquireTimeout(cfg.FormsDB.AcquireTimeout)
	services := application.New(repos, log)

	if n, err := services.Form.SeedForms(ctx, cfg.FormsSeedFile); err != nil {
		log.Error("Failed to seed forms", "file", cfg.FormsSeedFile, "seeded", n, "error", err)
	}

	gin.SetMode(cfg.GinMode)
	router := routes.NewFormsRouter(cfg.FormsBasePath, cfg.CORSAllowOrigins, services, log)

	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Info("Starting forms service", "addr", srv.Addr, "base_path", cfg.FormsBasePath)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Forms service stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn("Graceful shutdown failed", "error", err)
	}
	log.Info("Forms service stopped")
}
