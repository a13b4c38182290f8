package form

import (
	"strings"
	"time"

	"github.com/linskybing/forms-platform/pkg/fault"
)

type FormInput struct {
	Title       string        `json:"title" yaml:"title" binding:"required" example:"Customer survey"`
	Description *string       `json:"description" yaml:"description" example:"Tell us how we did"`
	Questions   []QuestionDTO `json:"questions" yaml:"questions" binding:"required,dive"`
}

// Normalize validates the whole input and returns the shaped copy. Question
// ids must be unique within the form.
func (in FormInput) Normalize() (FormInput, error) {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return in, fault.Validation("title is required")
	}

	questions := make([]QuestionDTO, 0, len(in.Questions))
	seen := make(map[string]struct{}, len(in.Questions))
	for _, q := range in.Questions {
		nq, err := q.Normalize()
		if err != nil {
			return in, err
		}
		if _, dup := seen[nq.Key]; dup {
			return in, fault.Validationf("duplicate question id %q", nq.Key)
		}
		seen[nq.Key] = struct{}{}
		questions = append(questions, nq)
	}
	in.Questions = questions
	return in, nil
}

type FormAggregate struct {
	ID          uint          `json:"id" example:"1"`
	Title       string        `json:"title" example:"Customer survey"`
	Description *string       `json:"description" example:"Tell us how we did"`
	CreatedAt   time.Time     `json:"created_at"`
	Questions   []QuestionDTO `json:"questions"`
}
