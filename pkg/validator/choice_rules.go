package validator

import "math"

// OptionSelected validates that a choice holds a non-zero value.
// The zero value of T means "nothing selected"; NaN counts as nothing too.
func OptionSelected[T comparable]() Rule[T] {
	return Rule[T]{
		Check: func(value T) bool {
			var zero T
			if value == zero {
				return false
			}
			return !isNaN(value)
		},
		Error: ValidationError{
			Message:        "選択してください",
			TranslationKey: "validation.selected",
		},
	}
}

func isNaN(v any) bool {
	switch f := v.(type) {
	case float64:
		return math.IsNaN(f)
	case float32:
		return math.IsNaN(float64(f))
	default:
		return false
	}
}
