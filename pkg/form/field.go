package form

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/T-Tommy0909/ray-system/pkg/validator"
)

// State is the outcome of the latest rule evaluation.
type State struct {
	Valid   bool
	Error   *validator.ValidationError
	Message string
}

// Field validates a single value against an ordered rule list and reports
// its validity to the enclosing scope.
type Field[T any] struct {
	scope   Scope
	id      FieldID
	policy  DisplayPolicy
	equal   func(a, b T) bool
	message func(validator.ValidationError) string

	// reportMu orders evaluate+report pairs; mu guards the fields below.
	reportMu sync.Mutex
	mu       sync.Mutex

	initial  T
	value    T
	rules    []validator.Rule[T]
	state    State
	external string
	changed  bool
	blurred  bool

	reported  bool
	lastValid bool
	unmounted bool
}

// NewField mounts a field in scope: it takes an ID, evaluates the rules
// against value and registers the result. A nil scope means Detached.
// It panics when a WithEqual comparator is not func(T, T) bool.
func NewField[T any](scope Scope, value T, rules []validator.Rule[T], opts ...FieldOption) *Field[T] {
	if scope == nil {
		scope = Detached()
	}

	cfg := defaultFieldConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	f := &Field[T]{
		scope:   scope,
		id:      scope.NewID(),
		policy:  DisplayPolicy{Lazy: cfg.lazy},
		message: cfg.message,
		initial: value,
		value:   value,
		rules:   rules,
	}
	switch eq := cfg.equal.(type) {
	case nil:
		f.equal = func(a, b T) bool { return reflect.DeepEqual(a, b) }
	case func(a, b T) bool:
		f.equal = eq
	default:
		panic(fmt.Sprintf("form: WithEqual comparator %T does not match field type %v", eq, reflect.TypeFor[T]()))
	}

	f.Validate()
	return f
}

func (f *Field[T]) ID() FieldID { return f.id }

// SetValue replaces the value and re-validates. Once the value differs from
// the initial one the field stays changed, even if it is set back.
func (f *Field[T]) SetValue(value T) {
	f.mu.Lock()
	f.value = value
	if !f.changed && !f.equal(value, f.initial) {
		f.changed = true
	}
	f.mu.Unlock()

	f.Validate()
}

// MarkChanged flags the field as changed without touching its value. It
// restores interaction history for a field rebuilt from client state.
func (f *Field[T]) MarkChanged() {
	f.mu.Lock()
	f.changed = true
	f.mu.Unlock()
}

// SetRules replaces the rule list and re-validates.
func (f *Field[T]) SetRules(rules []validator.Rule[T]) {
	f.mu.Lock()
	f.rules = rules
	f.mu.Unlock()

	f.Validate()
}

// Blur marks the field as visited and re-validates.
func (f *Field[T]) Blur() {
	f.mu.Lock()
	f.blurred = true
	f.mu.Unlock()

	f.Validate()
}

// SetError sets an external message that takes precedence over the rule
// message when displayed. It does not affect validity. Empty clears it.
func (f *Field[T]) SetError(message string) {
	f.mu.Lock()
	f.external = message
	f.mu.Unlock()
}

// Validate evaluates the rules against the current value and reports to the
// scope when the result differs from the last report.
func (f *Field[T]) Validate() State {
	f.reportMu.Lock()
	defer f.reportMu.Unlock()

	f.mu.Lock()
	verr, ok := validator.CheckRules(f.value, f.rules)
	state := State{Valid: ok}
	if !ok {
		state.Error = &verr
		state.Message = f.render(verr)
	}
	f.state = state

	report := !f.unmounted && (!f.reported || f.lastValid != ok)
	if report {
		f.reported = true
		f.lastValid = ok
	}
	f.mu.Unlock()

	if report {
		f.scope.Register(f.id, ok)
	}
	return state
}

// Unmount removes the field from its scope. Only the first call has an effect;
// afterwards the field keeps evaluating but never reports again.
func (f *Field[T]) Unmount() {
	f.reportMu.Lock()
	defer f.reportMu.Unlock()

	f.mu.Lock()
	if f.unmounted {
		f.mu.Unlock()
		return
	}
	f.unmounted = true
	f.mu.Unlock()

	f.scope.Unregister(f.id)
}

func (f *Field[T]) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *Field[T]) Value() T {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.value
}

func (f *Field[T]) Changed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.changed
}

func (f *Field[T]) Blurred() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.blurred
}

// DisplayError returns the message the user should see right now, or "".
func (f *Field[T]) DisplayError() string {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.policy.Show(f.changed, f.blurred) {
		return ""
	}
	if f.external != "" {
		return f.external
	}
	return f.state.Message
}

func (f *Field[T]) render(verr validator.ValidationError) string {
	if f.message != nil {
		if msg := f.message(verr); msg != "" {
			return msg
		}
	}
	return verr.Message
}
