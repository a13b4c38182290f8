package application

import (
	"context"
	"errors"

	"github.com/linskybing/forms-platform/internal/domain/form"
	"github.com/linskybing/forms-platform/internal/repository"
	"github.com/linskybing/forms-platform/pkg/fault"
	"github.com/linskybing/forms-platform/pkg/logger"
	"gorm.io/gorm"
)

const msgFormNotFound = "Form not found"

type FormService struct {
	Repos *repository.Repos
	log   *logger.Logger
}

func NewFormService(repos *repository.Repos, log *logger.Logger) *FormService {
	if log == nil {
		log = logger.Nop()
	}
	return &FormService{
		Repos: repos,
		log:   log.With("component", "form_service"),
	}
}

// Create stores the form and its questions in one transaction and returns
// the aggregate as read back from the store.
func (s *FormService) Create(ctx context.Context, input form.FormInput) (form.FormAggregate, error) {
	input, err := input.Normalize()
	if err != nil {
		return form.FormAggregate{}, err
	}

	var out form.FormAggregate
	err = s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		f := form.Form{
			Title:         input.Title,
			Description:   input.Description,
			SchemaVersion: form.SchemaNormalized,
		}
		if err := tx.Form.CreateForm(&f); err != nil {
			return err
		}
		if err := s.writeQuestions(tx, f.ID, input.Questions); err != nil {
			return err
		}
		agg, err := s.load(tx, f.ID)
		if err != nil {
			return err
		}
		out = agg
		return nil
	})
	if err != nil {
		return form.FormAggregate{}, s.storeError("create form", err)
	}
	s.log.Info("Form created", "form_id", out.ID, "questions", len(out.Questions))
	return out, nil
}

func (s *FormService) Get(ctx context.Context, id uint) (form.FormAggregate, error) {
	var out form.FormAggregate
	err := s.Repos.Read(ctx, func(r *repository.Repos) error {
		var err error
		out, err = s.load(r, id)
		return err
	})
	if err != nil {
		return form.FormAggregate{}, s.storeError("get form", err, "form_id", id)
	}
	return out, nil
}

// List returns every form, newest first. Questions of all forms are read
// with a single query.
func (s *FormService) List(ctx context.Context) ([]form.FormAggregate, error) {
	var out []form.FormAggregate
	err := s.Repos.Read(ctx, func(r *repository.Repos) error {
		forms, err := r.Form.ListForms()
		if err != nil {
			return err
		}

		ids := make([]uint, 0, len(forms))
		for _, f := range forms {
			if f.SchemaVersion == form.SchemaNormalized {
				ids = append(ids, f.ID)
			}
		}
		rows, err := r.Form.ListQuestions(ids...)
		if err != nil {
			return err
		}
		byForm := make(map[uint][]form.Question, len(ids))
		for _, row := range rows {
			byForm[row.FormID] = append(byForm[row.FormID], row)
		}

		out = make([]form.FormAggregate, 0, len(forms))
		for _, f := range forms {
			agg, err := s.assemble(f, byForm[f.ID])
			if err != nil {
				return err
			}
			out = append(out, agg)
		}
		return nil
	})
	if err != nil {
		return nil, s.storeError("list forms", err)
	}
	return out, nil
}

// Replace overwrites the form's fields and its whole question list. Forms
// still on the legacy schema are moved to the normalized one.
func (s *FormService) Replace(ctx context.Context, id uint, input form.FormInput) (form.FormAggregate, error) {
	input, err := input.Normalize()
	if err != nil {
		return form.FormAggregate{}, err
	}

	var out form.FormAggregate
	err = s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		found, err := tx.Form.UpdateForm(id, input.Title, input.Description)
		if err != nil {
			return err
		}
		if !found {
			return fault.NotFound(msgFormNotFound)
		}
		if err := tx.Form.DeleteQuestions(id); err != nil {
			return err
		}
		if err := s.writeQuestions(tx, id, input.Questions); err != nil {
			return err
		}
		out, err = s.load(tx, id)
		return err
	})
	if err != nil {
		return form.FormAggregate{}, s.storeError("replace form", err, "form_id", id)
	}
	s.log.Info("Form replaced", "form_id", id, "questions", len(out.Questions))
	return out, nil
}

func (s *FormService) Delete(ctx context.Context, id uint) error {
	err := s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		if err := tx.Form.DeleteQuestions(id); err != nil {
			return err
		}
		found, err := tx.Form.DeleteForm(id)
		if err != nil {
			return err
		}
		if !found {
			return fault.NotFound(msgFormNotFound)
		}
		return nil
	})
	if err != nil {
		return s.storeError("delete form", err, "form_id", id)
	}
	s.log.Info("Form deleted", "form_id", id)
	return nil
}

func (s *FormService) writeQuestions(tx *repository.Repos, formID uint, questions []form.QuestionDTO) error {
	rows, err := form.ToRows(formID, questions)
	if err != nil {
		return err
	}
	return tx.Form.InsertQuestions(rows)
}

func (s *FormService) load(r *repository.Repos, id uint) (form.FormAggregate, error) {
	f, err := r.Form.GetForm(id)
	if err != nil {
		return form.FormAggregate{}, err
	}
	var rows []form.Question
	if f.SchemaVersion == form.SchemaNormalized {
		if rows, err = r.Form.ListQuestions(id); err != nil {
			return form.FormAggregate{}, err
		}
	}
	return s.assemble(f, rows)
}

func (s *FormService) assemble(f form.Form, rows []form.Question) (form.FormAggregate, error) {
	out, err := form.Assemble(f, rows)
	if err != nil {
		return form.FormAggregate{}, err
	}
	if len(out.Degraded) > 0 {
		s.log.Warn("Stored questions could not be read in full", "form_id", f.ID, "questions", out.Degraded)
	}
	return out.Form, nil
}

// storeError maps a failed unit of work onto the fault taxonomy and logs
// store failures with the operation name.
func (s *FormService) storeError(op string, err error, kv ...interface{}) error {
	var mapped error
	switch {
	case fault.KindOf(err) != fault.KindUnknown:
		mapped = err
	case errors.Is(err, fault.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		mapped = fault.NotFound(msgFormNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		mapped = fault.Conflict("question ids must be unique within a form", err)
	default:
		mapped = fault.Persistence("failed to "+op, err)
	}

	switch fault.KindOf(mapped) {
	case fault.KindNotFound, fault.KindValidation:
	default:
		s.log.Error("Failed to "+op, append(kv, "error", err)...)
	}
	return mapped
}
