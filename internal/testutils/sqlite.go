package testutils

import (
	"fmt"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/linskybing/forms-platform/internal/migrations"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var unsafeName = regexp.MustCompile(`[^A-Za-z0-9_]`)

// NewSQLiteDB opens an in-memory database private to t with the forms and
// auth schemas applied. The pool is capped at one connection so every
// statement sees the same memory database.
func NewSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()
	db := NewEmptySQLiteDB(t)
	migrate(t, db)
	return db
}

// NewEmptySQLiteDB is NewSQLiteDB without any schema.
func NewEmptySQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()
	return openSQLite(t, fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", unsafeName.ReplaceAllString(t.Name(), "_")))
}

// NewSQLiteFileDB keeps the database in a file under t.TempDir, so data
// outlives a discarded connection.
func NewSQLiteFileDB(t *testing.T) *gorm.DB {
	t.Helper()
	db := openSQLite(t, "file:"+filepath.Join(t.TempDir(), "store.db")+"?_foreign_keys=on")
	migrate(t, db)
	return db
}

func openSQLite(t *testing.T, dsn string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func migrate(t *testing.T, db *gorm.DB) {
	require.NoError(t, migrations.Forms(db))
	require.NoError(t, migrations.Auth(db))
}
