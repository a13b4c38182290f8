package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/linskybing/forms-platform/pkg/fault"
	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		write bool
		want  int
	}{
		{"validation", fault.Validation("bad"), false, http.StatusBadRequest},
		{"not found", fault.NotFound("Form not found"), true, http.StatusNotFound},
		{"conflict", fault.Conflict("dup", nil), true, http.StatusBadRequest},
		{"persistence on write", fault.Persistence("failed", errors.New("x")), true, http.StatusBadRequest},
		{"persistence on read", fault.Persistence("failed", errors.New("x")), false, http.StatusInternalServerError},
		{"pool unavailable on write", fault.PoolUnavailable(errors.New("timeout")), true, http.StatusInternalServerError},
		{"unknown", errors.New("boom"), true, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusOf(tt.err, tt.write))
		})
	}
}

func TestFieldLabel(t *testing.T) {
	assert.Equal(t, "questions[0].id", fieldLabel("FormInput.questions[0].id"))
	assert.Equal(t, "full name", fieldLabel("CreateUserInput.full_name"))
	assert.Equal(t, "title", fieldLabel("title"))
}

func TestBindErrorMessage_Fault(t *testing.T) {
	assert.Equal(t, "question type must be a string", bindErrorMessage(fault.Validation("question type must be a string")))
	assert.Equal(t, "Invalid input", bindErrorMessage(errors.New("unexpected EOF")))
}
