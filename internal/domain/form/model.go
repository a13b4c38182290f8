package form

import (
	"time"

	"gorm.io/datatypes"
)

// Storage generations of a form's question list.
const (
	// SchemaLegacy keeps the questions as a flat JSON array in forms.fields.
	SchemaLegacy = 1
	// SchemaNormalized keeps one questions row per question.
	SchemaNormalized = 2
)

type Form struct {
	ID            uint           `gorm:"primaryKey"`
	Title         string         `gorm:"type:text;not null"`
	Description   *string        `gorm:"type:text"`
	SchemaVersion int            `gorm:"not null;default:2"`
	Fields        datatypes.JSON `gorm:"column:fields"`
	CreatedAt     time.Time      `gorm:"index"`
	UpdatedAt     time.Time
	Questions     []Question `gorm:"foreignKey:FormID;constraint:OnDelete:CASCADE"`
}

func (Form) TableName() string {
	return "forms"
}

// Question is a stored question row. ID is internal and never leaves the
// repository layer; QuestionKey is the caller's stable identifier.
type Question struct {
	ID          uint           `gorm:"primaryKey"`
	FormID      uint           `gorm:"not null;index;uniqueIndex:idx_questions_form_key,priority:1"`
	QuestionKey string         `gorm:"column:question_key;type:text;not null;uniqueIndex:idx_questions_form_key,priority:2"`
	Position    int            `gorm:"not null;default:0"`
	Title       string         `gorm:"type:text;not null"`
	Type        QuestionType   `gorm:"type:text;not null"`
	Required    bool           `gorm:"not null;default:false"`
	Options     datatypes.JSON `gorm:"column:options"`
	MinValue    *int
	MaxValue    *int
	MinLabel    *string `gorm:"type:text"`
	MaxLabel    *string `gorm:"type:text"`
}

func (Question) TableName() string {
	return "questions"
}
