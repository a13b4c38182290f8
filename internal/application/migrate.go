package application

import (
	"context"

	"github.com/linskybing/forms-platform/internal/domain/form"
	"github.com/linskybing/forms-platform/internal/repository"
	"github.com/linskybing/forms-platform/pkg/fault"
)

// MigrateLegacy moves every form still stored as a flat fields array onto
// question rows, one transaction per form. Forms that cannot be moved are
// left as they were and returned in failed.
func (s *FormService) MigrateLegacy(ctx context.Context) (migrated int, failed []uint, err error) {
	var ids []uint
	err = s.Repos.Read(ctx, func(r *repository.Repos) error {
		ids, err = r.Form.ListFormIDsBySchema(form.SchemaLegacy)
		return err
	})
	if err != nil {
		return 0, nil, s.storeError("list legacy forms", err)
	}

	for _, id := range ids {
		if err := s.migrateOne(ctx, id); err != nil {
			s.log.Warn("Legacy form left in place", "form_id", id, "error", err)
			failed = append(failed, id)
			continue
		}
		migrated++
	}
	s.log.Info("Legacy migration finished", "migrated", migrated, "failed", len(failed))
	return migrated, failed, nil
}

func (s *FormService) migrateOne(ctx context.Context, id uint) error {
	return s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		f, err := tx.Form.GetForm(id)
		if err != nil {
			return err
		}
		if f.SchemaVersion != form.SchemaLegacy {
			return nil
		}

		// Only a lossless conversion may replace the fields payload.
		asm, err := form.Assemble(f, nil)
		if err != nil {
			return err
		}
		if len(asm.Degraded) > 0 {
			return fault.Validationf("form %d: stored questions %v cannot be read in full", id, asm.Degraded)
		}
		input, err := form.FormInput{
			Title:       f.Title,
			Description: f.Description,
			Questions:   asm.Form.Questions,
		}.Normalize()
		if err != nil {
			return err
		}

		if _, err := tx.Form.UpdateForm(id, f.Title, f.Description); err != nil {
			return err
		}
		return s.writeQuestions(tx, id, input.Questions)
	})
}
