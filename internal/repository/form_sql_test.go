package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newMockPostgres(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = sqlDB.Close()
	})

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestFormRepo_ListQuestionsIsOneQuery(t *testing.T) {
	db, mock := newMockPostgres(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "questions" WHERE form_id IN ($1,$2) ORDER BY form_id,position,id`)).
		WithArgs(3, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "form_id", "question_key", "position", "title", "type"}).
			AddRow(10, 1, "a1", 0, "A", "text").
			AddRow(11, 3, "c1", 0, "C", "radio"))

	rows, err := NewFormRepo(db).ListQuestions(3, 1)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "a1", rows[0].QuestionKey)
	assert.Equal(t, uint(3), rows[1].FormID)
}

func TestFormRepo_UpdateMissingRow(t *testing.T) {
	db, mock := newMockPostgres(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "forms" SET .* WHERE id = \$\d+`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	found, err := NewFormRepo(db).UpdateForm(42, "T", nil)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFormRepo_DeleteStoreError(t *testing.T) {
	db, mock := newMockPostgres(t)
	boom := errors.New("connection reset by peer")

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "forms" WHERE "forms"."id" = $1`)).WithArgs(5).WillReturnError(boom)
	mock.ExpectRollback()

	found, err := NewFormRepo(db).DeleteForm(5)
	assert.ErrorIs(t, err, boom)
	assert.False(t, found)
}

func TestRead_OneTransactionPerAggregate(t *testing.T) {
	db, mock := newMockPostgres(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "forms" WHERE "forms"\."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "schema_version"}).AddRow(7, "Survey", 2))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "questions" WHERE form_id IN ($1)`)).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id", "form_id", "question_key", "position", "title", "type"}).
			AddRow(70, 7, "q1", 0, "Name", "text"))
	mock.ExpectCommit()

	err := NewRepositories(db).Read(context.Background(), func(r *Repos) error {
		f, err := r.Form.GetForm(7)
		if err != nil {
			return err
		}
		rows, err := r.Form.ListQuestions(f.ID)
		assert.Len(t, rows, 1)
		return err
	})
	require.NoError(t, err)
}
