package form

import (
	"log/slog"

	"github.com/T-Tommy0909/ray-system/pkg/validator"
)

// Option configures a Form.
type Option func(*Form)

// WithSubmit sets the callback run by Submit.
func WithSubmit(fn func()) Option {
	return func(f *Form) {
		f.onSubmit = fn
	}
}

// WithIDGenerator replaces the default per-form counter.
// Nil generators are ignored.
func WithIDGenerator(g IDGenerator) Option {
	return func(f *Form) {
		if g != nil {
			f.ids = g
		}
	}
}

// WithLogger sets the logger used for registry events.
func WithLogger(l *slog.Logger) Option {
	return func(f *Form) {
		if l != nil {
			f.logger = l
		}
	}
}

// WithAutoComplete sets the autocomplete hint rendered on the form element.
func WithAutoComplete(value string) Option {
	return func(f *Form) {
		f.autoComplete = value
	}
}

// FieldOption configures a Field.
type FieldOption func(*fieldConfig)

type fieldConfig struct {
	lazy    bool
	message func(validator.ValidationError) string
	equal   any
}

func defaultFieldConfig() fieldConfig {
	return fieldConfig{lazy: true}
}

// WithLazyError toggles lazy display. Lazy fields hide their message until
// the value changes or the field is blurred. Default is true.
func WithLazyError(lazy bool) FieldOption {
	return func(c *fieldConfig) {
		c.lazy = lazy
	}
}

// WithMessageFunc turns a failing rule's error into the displayed message,
// typically through a translator.
func WithMessageFunc(fn func(validator.ValidationError) string) FieldOption {
	return func(c *fieldConfig) {
		c.message = fn
	}
}

// WithEqual overrides the equality used to detect changes from the initial
// value. T must be the field's value type; NewField panics otherwise.
func WithEqual[T any](eq func(a, b T) bool) FieldOption {
	return func(c *fieldConfig) {
		if eq != nil {
			c.equal = eq
		}
	}
}
