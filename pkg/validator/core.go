package validator

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ValidationError represents a single validation error with translation support.
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// Args flattens TranslationValues into sorted key/value pairs suitable for
// named-placeholder translators.
func (e ValidationError) Args() []string {
	if len(e.TranslationValues) == 0 {
		return nil
	}
	keys := make([]string, 0, len(e.TranslationValues))
	for k := range e.TranslationValues {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	args := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		args = append(args, k, fmt.Sprint(e.TranslationValues[k]))
	}
	return args
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule is a pure predicate over a value of type T.
// Check returning true means the value passes; otherwise Error describes the failure.
type Rule[T any] struct {
	Check func(value T) bool
	Error ValidationError
}

// Func builds a custom rule from a predicate and a failure message.
func Func[T any](check func(value T) bool, message string) Rule[T] {
	return Rule[T]{
		Check: check,
		Error: ValidationError{
			Message:        message,
			TranslationKey: "validation.custom",
		},
	}
}

// CheckRules evaluates rules in order and stops at the first failure.
// It returns the failing rule's error and false, or the zero error and true
// when every rule passes. An empty rule list is always valid.
func CheckRules[T any](value T, rules []Rule[T]) (ValidationError, bool) {
	for _, rule := range rules {
		if rule.Check == nil {
			continue
		}
		if !rule.Check(value) {
			return rule.Error, false
		}
	}
	return ValidationError{}, true
}

// Check is a rule list bound to a named value, ready to be applied.
type Check func() (ValidationError, bool)

// Bind binds a value and its rule list under a field name.
// The resulting error, if any, carries the field name.
func Bind[T any](field string, value T, rules ...Rule[T]) Check {
	return func() (ValidationError, bool) {
		verr, ok := CheckRules(value, rules)
		if !ok {
			verr.Field = field
		}
		return verr, ok
	}
}

// Apply runs every bound check and collects the first failure of each one.
func Apply(checks ...Check) error {
	var errs ValidationErrors

	for _, check := range checks {
		if verr, ok := check(); !ok {
			errs.Add(verr)
		}
	}

	if errs.IsEmpty() {
		return nil
	}

	return errs
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}
