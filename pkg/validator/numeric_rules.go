package validator

import (
	"fmt"
	"math"
)

// IntegerOnly validates that a number has no fractional part.
// Integer types always pass; NaN and infinities fail.
func IntegerOnly[T Numeric]() Rule[T] {
	return Rule[T]{
		Check: func(value T) bool {
			f := float64(value)
			if math.IsNaN(f) || math.IsInf(f, 0) {
				return false
			}
			return math.Trunc(f) == f
		},
		Error: ValidationError{
			Message:        "整数値を入力してください",
			TranslationKey: "validation.integer",
		},
	}
}

// MoreThanEqual validates that a number is greater than or equal to threshold.
func MoreThanEqual[T Numeric](threshold T) Rule[T] {
	return Rule[T]{
		Check: func(value T) bool {
			return value >= threshold
		},
		Error: ValidationError{
			Message:        fmt.Sprintf("%v以上の数値を入力してください", threshold),
			TranslationKey: "validation.min",
			TranslationValues: map[string]any{
				"threshold": threshold,
			},
		},
	}
}
