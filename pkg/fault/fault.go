package fault

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("resource not found")

type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindPersistence
	KindPoolUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation_error"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindPersistence:
		return "persistence_error"
	case KindPoolUnavailable:
		return "pool_unavailable"
	default:
		return "unknown_error"
	}
}

// Fault carries a stable kind next to the underlying cause so callers never
// have to classify errors by their text.
type Fault struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Fault) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

// Unwrap allows errors.Is and errors.As to work.
func (e *Fault) Unwrap() error {
	return e.Err
}

func New(kind Kind, msg string, err error) error {
	return &Fault{Kind: kind, Message: msg, Err: err}
}

func Validation(msg string) error {
	return &Fault{Kind: KindValidation, Message: msg}
}

func Validationf(format string, args ...any) error {
	return &Fault{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func NotFound(msg string) error {
	return &Fault{Kind: KindNotFound, Message: msg, Err: ErrNotFound}
}

func Conflict(msg string, err error) error {
	return &Fault{Kind: KindConflict, Message: msg, Err: err}
}

func Persistence(msg string, err error) error {
	return &Fault{Kind: KindPersistence, Message: msg, Err: err}
}

func PoolUnavailable(err error) error {
	return &Fault{Kind: KindPoolUnavailable, Message: "database connection not available", Err: err}
}

// KindOf returns the kind of the outermost Fault in the chain.
func KindOf(err error) Kind {
	var f *Fault
	if errors.As(err, &f) {
		return f.Kind
	}
	return KindUnknown
}

// MessageOf returns the client-facing message of the outermost Fault, or
// fallback when err carries none.
func MessageOf(err error, fallback string) string {
	var f *Fault
	if errors.As(err, &f) && f.Message != "" {
		return f.Message
	}
	return fallback
}

func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}
