package migrations_test

import (
	"context"
	"testing"

	"github.com/linskybing/forms-platform/internal/application"
	"github.com/linskybing/forms-platform/internal/domain/form"
	"github.com/linskybing/forms-platform/internal/migrations"
	"github.com/linskybing/forms-platform/internal/repository"
	"github.com/linskybing/forms-platform/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForms_MarksPreExistingRowsLegacy(t *testing.T) {
	db := testutils.NewEmptySQLiteDB(t)
	require.NoError(t, db.Exec(`CREATE TABLE forms (
		id integer PRIMARY KEY AUTOINCREMENT,
		title text NOT NULL,
		description text,
		fields JSON,
		created_at datetime
	)`).Error)
	require.NoError(t, db.Exec(
		`INSERT INTO forms (title, fields, created_at) VALUES (?, ?, CURRENT_TIMESTAMP), (?, NULL, CURRENT_TIMESTAMP)`,
		"Old", `[{"id":"q1","title":"Your name","type":"text","required":true}]`, "Empty",
	).Error)

	require.NoError(t, migrations.Forms(db))

	var stored []form.Form
	require.NoError(t, db.Order("id").Find(&stored).Error)
	require.Len(t, stored, 2)
	assert.Equal(t, form.SchemaLegacy, stored[0].SchemaVersion)
	assert.Equal(t, form.SchemaNormalized, stored[1].SchemaVersion)

	svc := application.NewFormService(repository.NewRepositories(db), nil)
	got, err := svc.Get(context.Background(), stored[0].ID)
	require.NoError(t, err)
	require.Len(t, got.Questions, 1)
	assert.Equal(t, "q1", got.Questions[0].Key)
	assert.Equal(t, form.QuestionTypeText, got.Questions[0].Type)
	assert.True(t, got.Questions[0].Required)
}

func TestForms_RerunKeepsMarkers(t *testing.T) {
	db := testutils.NewSQLiteDB(t)
	f := form.Form{Title: "New", SchemaVersion: form.SchemaNormalized}
	require.NoError(t, db.Create(&f).Error)

	require.NoError(t, migrations.Forms(db))

	var stored form.Form
	require.NoError(t, db.First(&stored, f.ID).Error)
	assert.Equal(t, form.SchemaNormalized, stored.SchemaVersion)
}
