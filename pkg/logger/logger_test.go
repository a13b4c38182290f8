package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeKVs_RedactsSecrets(t *testing.T) {
	out := sanitizeKVs([]interface{}{"email", "a@b.c", "Password", "hunter2", "db_password", "x", "form_id", 7})

	assert.Equal(t, []interface{}{
		"email", "a@b.c",
		"Password", "[REDACTED]",
		"db_password", "[REDACTED]",
		"form_id", 7,
	}, out)
}

func TestSanitizeKVs_OddLength(t *testing.T) {
	out := sanitizeKVs([]interface{}{"op", "create", "dangling"})
	assert.Equal(t, []interface{}{"op", "create", "dangling"}, out)
}

func TestNop_DoesNotPanic(t *testing.T) {
	l := Nop().With("service", "forms")
	assert.NotPanics(t, func() {
		l.Info("hello", "token", "abc")
		l.Sync()
	})
}
