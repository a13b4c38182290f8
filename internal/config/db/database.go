package db

import (
	"context"
	"fmt"

	"github.com/linskybing/forms-platform/internal/config"
	"github.com/linskybing/forms-platform/pkg/logger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// DSN builds a postgres connection string from cfg.
func DSN(cfg config.DBConfig) string {
	if cfg.URL != "" {
		return cfg.URL
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.Name,
	)
}

// Open connects to postgres and sizes the connection pool. The returned
// handle is the only pool of the process and is passed explicitly to the
// repositories; callers own Close.
func Open(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*gorm.DB, error) {
	gormDB, err := gorm.Open(postgres.Open(DSN(cfg)), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		log.Error("Failed to connect to Postgres", "error", err)
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	if err := Configure(ctx, gormDB, cfg); err != nil {
		log.Error("Failed to configure connection pool", "error", err)
		return nil, err
	}
	log.Info("Database connection pool created", "max_open", cfg.PoolMaxSize, "max_idle", cfg.PoolMinSize)
	return gormDB, nil
}

// Configure applies pool sizing to an opened handle and verifies that a
// connection can be acquired within the acquisition timeout.
func Configure(ctx context.Context, gormDB *gorm.DB, cfg config.DBConfig) error {
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	if cfg.PoolMaxSize > 0 {
		sqlDB.SetMaxOpenConns(cfg.PoolMaxSize)
	}
	if cfg.PoolMinSize > 0 {
		sqlDB.SetMaxIdleConns(cfg.PoolMinSize)
	}

	if cfg.AcquireTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.AcquireTimeout)
		defer cancel()
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	return nil
}

func Close(gormDB *gorm.DB, log *logger.Logger) {
	sqlDB, err := gormDB.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Warn("Failed to close database pool", "error", err)
		return
	}
	log.Info("Database connection pool closed")
}
