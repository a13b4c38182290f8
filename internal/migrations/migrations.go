package migrations

import (
	"fmt"

	"github.com/linskybing/forms-platform/internal/domain/form"
	"github.com/linskybing/forms-platform/internal/domain/user"
	"gorm.io/gorm"
)

// Forms creates or extends the forms and questions tables. A forms table
// from before the schema_version column existed only holds legacy rows, so
// every row with a fields payload is marked legacy when the column is added.
func Forms(db *gorm.DB) error {
	m := db.Migrator()
	unmarked := m.HasTable(&form.Form{}) && !m.HasColumn(&form.Form{}, "SchemaVersion")

	if err := db.AutoMigrate(&form.Form{}, &form.Question{}); err != nil {
		return fmt.Errorf("migrate forms schema: %w", err)
	}

	if unmarked {
		err := db.Model(&form.Form{}).
			Where("fields IS NOT NULL").
			UpdateColumn("schema_version", form.SchemaLegacy).Error
		if err != nil {
			return fmt.Errorf("mark legacy forms: %w", err)
		}
	}
	return nil
}

func Auth(db *gorm.DB) error {
	if err := db.AutoMigrate(&user.User{}); err != nil {
		return fmt.Errorf("migrate auth schema: %w", err)
	}
	return nil
}
