package application

import (
	"context"
	"fmt"
	"os"

	"github.com/linskybing/forms-platform/internal/domain/form"
	"github.com/linskybing/forms-platform/internal/repository"
	"github.com/linskybing/forms-platform/pkg/utils"
	"gopkg.in/yaml.v2"
)

// ParseSeedForms decodes a YAML stream holding one form per document.
func ParseSeedForms(content string) ([]form.FormInput, error) {
	docs := utils.SplitYAMLDocuments(content)
	inputs := make([]form.FormInput, 0, len(docs))
	for i, doc := range docs {
		var in form.FormInput
		if err := yaml.UnmarshalStrict([]byte(doc), &in); err != nil {
			return nil, fmt.Errorf("seed document %d: %w", i, err)
		}
		if in.Questions == nil {
			in.Questions = []form.QuestionDTO{}
		}
		inputs = append(inputs, in)
	}
	return inputs, nil
}

// SeedForms creates the forms described in the YAML file at path, but only
// when the store holds no form yet. It returns the number of forms created.
func (s *FormService) SeedForms(ctx context.Context, path string) (int, error) {
	if path == "" {
		return 0, nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read seed file: %w", err)
	}
	inputs, err := ParseSeedForms(string(content))
	if err != nil {
		return 0, err
	}

	var existing int64
	err = s.Repos.Read(ctx, func(r *repository.Repos) error {
		existing, err = r.Form.CountForms()
		return err
	})
	if err != nil {
		return 0, s.storeError("count forms", err)
	}
	if existing > 0 {
		s.log.Info("Skipping form seed, store is not empty", "forms", existing)
		return 0, nil
	}

	for i, in := range inputs {
		if _, err := s.Create(ctx, in); err != nil {
			return i, fmt.Errorf("seed form %q: %w", in.Title, err)
		}
	}
	s.log.Info("Seeded forms", "file", path, "forms", len(inputs))
	return len(inputs), nil
}
