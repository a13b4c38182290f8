package form

import (
	"encoding/json"
	"strings"

	"github.com/linskybing/forms-platform/pkg/fault"
)

type QuestionType string

const (
	QuestionTypeText         QuestionType = "text"
	QuestionTypeSingleChoice QuestionType = "single_choice"
	QuestionTypeMultiChoice  QuestionType = "multi_choice"
	QuestionTypeDropdown     QuestionType = "dropdown"
	QuestionTypeLinearScale  QuestionType = "linear_scale"
)

// Names written by the first generation of the service.
const (
	legacyTypeRadio    QuestionType = "radio"
	legacyTypeCheckbox QuestionType = "checkbox"
)

var questionTypes = []QuestionType{
	QuestionTypeText,
	QuestionTypeSingleChoice,
	QuestionTypeMultiChoice,
	QuestionTypeDropdown,
	QuestionTypeLinearScale,
}

func (t QuestionType) Valid() bool {
	for _, known := range questionTypes {
		if t == known {
			return true
		}
	}
	return false
}

// HasOptions reports whether questions of this type carry a choice list.
func (t QuestionType) HasOptions() bool {
	switch t {
	case QuestionTypeSingleChoice, QuestionTypeMultiChoice, QuestionTypeDropdown:
		return true
	}
	return false
}

func (t QuestionType) HasScale() bool {
	return t == QuestionTypeLinearScale
}

func ParseQuestionType(raw string) (QuestionType, error) {
	t := QuestionType(strings.TrimSpace(raw))
	if !t.Valid() {
		return "", fault.Validationf("invalid question type %q, expected one of %s", raw, joinTypes())
	}
	return t, nil
}

func (t *QuestionType) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return fault.Validation("question type must be a string")
	}
	parsed, err := ParseQuestionType(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t *QuestionType) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw string
	if err := unmarshal(&raw); err != nil {
		return fault.Validation("question type must be a string")
	}
	parsed, err := ParseQuestionType(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// normalizeStoredType maps first-generation names onto the current set.
// Unknown stored values are passed through untouched.
func normalizeStoredType(t QuestionType) QuestionType {
	switch t {
	case legacyTypeRadio:
		return QuestionTypeSingleChoice
	case legacyTypeCheckbox:
		return QuestionTypeMultiChoice
	}
	return t
}

func joinTypes() string {
	names := make([]string, len(questionTypes))
	for i, t := range questionTypes {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}

type Option struct {
	Key   string `json:"id" yaml:"id" binding:"required" example:"o1"`
	Value string `json:"value" yaml:"value" example:"Yes"`
}

type QuestionDTO struct {
	Key      string       `json:"id" yaml:"id" binding:"required" example:"q1"`
	Title    string       `json:"title" yaml:"title" binding:"required" example:"Rate us"`
	Type     QuestionType `json:"type" yaml:"type" binding:"required" example:"linear_scale"`
	Required bool         `json:"required" yaml:"required"`
	Options  []Option     `json:"options" yaml:"options" binding:"omitempty,dive"`
	MinValue *int         `json:"min_value" yaml:"min_value" example:"1"`
	MaxValue *int         `json:"max_value" yaml:"max_value" example:"5"`
	MinLabel *string      `json:"min_label" yaml:"min_label" example:"Poor"`
	MaxLabel *string      `json:"max_label" yaml:"max_label" example:"Great"`
}

// Normalize validates q against its declared type and returns the shaped
// copy that gets persisted: options only on choice types, scale bounds and
// labels only on linear_scale.
func (q QuestionDTO) Normalize() (QuestionDTO, error) {
	q.Key = strings.TrimSpace(q.Key)
	if q.Key == "" {
		return q, fault.Validation("question id is required")
	}
	if strings.TrimSpace(q.Title) == "" {
		return q, fault.Validationf("question %q: title is required", q.Key)
	}
	if !q.Type.Valid() {
		return q, fault.Validationf("question %q: invalid question type %q, expected one of %s", q.Key, q.Type, joinTypes())
	}

	if q.Type.HasOptions() {
		if len(q.Options) == 0 {
			return q, fault.Validationf("question %q: options are required for %s questions", q.Key, q.Type)
		}
		seen := make(map[string]struct{}, len(q.Options))
		for _, opt := range q.Options {
			if strings.TrimSpace(opt.Key) == "" {
				return q, fault.Validationf("question %q: option id is required", q.Key)
			}
			if _, dup := seen[opt.Key]; dup {
				return q, fault.Validationf("question %q: duplicate option id %q", q.Key, opt.Key)
			}
			seen[opt.Key] = struct{}{}
		}
		q.Options = append([]Option(nil), q.Options...)
	} else {
		q.Options = nil
	}

	if q.Type.HasScale() {
		if q.MinValue != nil && q.MaxValue != nil && *q.MinValue > *q.MaxValue {
			return q, fault.Validationf("question %q: min_value %d is greater than max_value %d", q.Key, *q.MinValue, *q.MaxValue)
		}
	} else {
		q.MinValue, q.MaxValue = nil, nil
		q.MinLabel, q.MaxLabel = nil, nil
	}

	return q, nil
}
