package repository

import (
	"errors"

	"github.com/linskybing/forms-platform/internal/domain/form"
	"github.com/linskybing/forms-platform/pkg/fault"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FormRepo interface {
	CreateForm(f *form.Form) error
	GetForm(id uint) (form.Form, error)
	ListForms() ([]form.Form, error)
	CountForms() (int64, error)
	ListFormIDsBySchema(version int) ([]uint, error)
	UpdateForm(id uint, title string, description *string) (bool, error)
	DeleteForm(id uint) (bool, error)
	InsertQuestions(rows []form.Question) error
	DeleteQuestions(formID uint) error
	ListQuestions(formIDs ...uint) ([]form.Question, error)
	WithTx(tx *gorm.DB) FormRepo
}

type DBFormRepo struct {
	db *gorm.DB
}

func NewFormRepo(db *gorm.DB) *DBFormRepo {
	return &DBFormRepo{
		db: db,
	}
}

func (r *DBFormRepo) CreateForm(f *form.Form) error {
	return r.db.Omit(clause.Associations).Create(f).Error
}

// GetForm returns fault.ErrNotFound when no form has the id.
func (r *DBFormRepo) GetForm(id uint) (form.Form, error) {
	var f form.Form
	if err := r.db.First(&f, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return f, fault.ErrNotFound
		}
		return f, err
	}
	return f, nil
}

// ListForms returns every form, newest first.
func (r *DBFormRepo) ListForms() ([]form.Form, error) {
	var forms []form.Form
	err := r.db.Order("created_at DESC").Order("id DESC").Find(&forms).Error
	return forms, err
}

func (r *DBFormRepo) CountForms() (int64, error) {
	var n int64
	err := r.db.Model(&form.Form{}).Count(&n).Error
	return n, err
}

func (r *DBFormRepo) ListFormIDsBySchema(version int) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&form.Form{}).Where("schema_version = ?", version).Order("id").Pluck("id", &ids).Error
	return ids, err
}

// UpdateForm overwrites the scalar columns and moves the row onto the
// normalized schema. The bool reports whether the row existed.
func (r *DBFormRepo) UpdateForm(id uint, title string, description *string) (bool, error) {
	res := r.db.Model(&form.Form{}).Where("id = ?", id).Updates(map[string]interface{}{
		"title":          title,
		"description":    description,
		"schema_version": form.SchemaNormalized,
		"fields":         nil,
	})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *DBFormRepo) DeleteForm(id uint) (bool, error) {
	res := r.db.Delete(&form.Form{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *DBFormRepo) InsertQuestions(rows []form.Question) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.Create(&rows).Error
}

func (r *DBFormRepo) DeleteQuestions(formID uint) error {
	return r.db.Where("form_id = ?", formID).Delete(&form.Question{}).Error
}

// ListQuestions loads the questions of all given forms in one query, grouped
// by form and in stored order within each form.
func (r *DBFormRepo) ListQuestions(formIDs ...uint) ([]form.Question, error) {
	if len(formIDs) == 0 {
		return nil, nil
	}
	var rows []form.Question
	err := r.db.Where("form_id IN ?", formIDs).
		Order("form_id").
		Order("position").
		Order("id").
		Find(&rows).Error
	return rows, err
}

func (r *DBFormRepo) WithTx(tx *gorm.DB) FormRepo {
	if tx == nil {
		return r
	}
	return &DBFormRepo{
		db: tx,
	}
}
