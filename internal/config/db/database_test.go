package db

import (
	"context"
	"testing"
	"time"

	"github.com/linskybing/forms-platform/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestDSN(t *testing.T) {
	cfg := config.DBConfig{Host: "db_forms", Port: "5432", User: "forms", Password: "pw", Name: "forms_db"}
	assert.Equal(t, "host=db_forms port=5432 user=forms password=pw dbname=forms_db sslmode=disable", DSN(cfg))

	cfg.URL = "postgresql://admin:1234@db_auth:5432/auth_db"
	assert.Equal(t, cfg.URL, DSN(cfg))
}

func TestConfigure_SizesPool(t *testing.T) {
	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = Configure(context.Background(), gormDB, config.DBConfig{PoolMinSize: 2, PoolMaxSize: 4, AcquireTimeout: time.Second})
	require.NoError(t, err)

	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	assert.Equal(t, 4, sqlDB.Stats().MaxOpenConnections)
}
