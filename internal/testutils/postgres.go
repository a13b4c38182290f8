//go:build integration
// +build integration

package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/linskybing/forms-platform/internal/migrations"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewPostgresDB returns a migrated gorm handle on a real postgres plus a raw
// lib/pq handle on the same database. TEST_DB_DSN points at an existing
// server; otherwise a throwaway container is started.
func NewPostgresDB(t *testing.T) (*gorm.DB, *sql.DB) {
	t.Helper()
	ctx := context.Background()

	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		pg, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image: "postgres:15",
				Env: map[string]string{
					"POSTGRES_PASSWORD": "test",
					"POSTGRES_USER":     "test",
					"POSTGRES_DB":       "forms",
				},
				ExposedPorts: []string{"5432/tcp"},
				WaitingFor:   wait.ForLog("database system is ready to accept connections").WithOccurrence(2).WithStartupTimeout(60 * time.Second),
			},
			Started: true,
		})
		require.NoError(t, err)
		t.Cleanup(func() { _ = pg.Terminate(ctx) })

		host, err := pg.Host(ctx)
		require.NoError(t, err)
		port, err := pg.MappedPort(ctx, "5432")
		require.NoError(t, err)
		dsn = fmt.Sprintf("postgres://test:test@%s:%s/forms?sslmode=disable", host, port.Port())
	}

	var raw *sql.DB
	var err error
	for i := 0; i < 10; i++ {
		raw, err = sql.Open("postgres", dsn)
		if err == nil {
			if err = raw.PingContext(ctx); err == nil {
				break
			}
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)
	t.Cleanup(func() { _ = raw.Close() })

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	require.NoError(t, db.Migrator().DropTable("questions", "forms", "users"))
	require.NoError(t, migrations.Forms(db))
	require.NoError(t, migrations.Auth(db))
	return db, raw
}
