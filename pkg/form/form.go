package form

import (
	"log/slog"

	"github.com/T-Tommy0909/ray-system/pkg/logger"
)

// Form owns a Registry and acts as the Scope for its fields.
type Form struct {
	registry     *Registry
	ids          IDGenerator
	onSubmit     func()
	autoComplete string
	logger       *slog.Logger
}

// New creates a form and reports its initial, empty-and-therefore-valid
// state to onValidated before returning.
func New(onValidated func(valid bool), opts ...Option) *Form {
	f := &Form{
		ids:    NewCounter("field-"),
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(f)
	}

	f.logger = f.logger.With(logger.Component("form"))
	f.registry = NewRegistry(onValidated, f.logger)
	f.registry.Report()
	return f
}

func (f *Form) Register(id FieldID, valid bool) { f.registry.Register(id, valid) }
func (f *Form) Unregister(id FieldID)           { f.registry.Unregister(id) }
func (f *Form) NewID() FieldID                  { return f.ids.NewID() }

// Valid returns the current aggregate validity.
func (f *Form) Valid() bool { return f.registry.Valid() }

// Len returns the number of mounted fields that have reported.
func (f *Form) Len() int { return f.registry.Len() }

// AutoComplete returns the configured autocomplete hint.
func (f *Form) AutoComplete() string { return f.autoComplete }

// Submit runs the submit callback, if any. It does not look at validity;
// the owner decides whether to act on the submission.
func (f *Form) Submit() {
	f.logger.Debug("form submitted", logger.Valid(f.registry.Valid()))
	if f.onSubmit != nil {
		f.onSubmit()
	}
}

// Close destroys the registry. Fields still holding the form become inert.
func (f *Form) Close() {
	f.registry.Close()
}
