package validator

// ArrayNotEmpty validates that a slice has at least one element.
func ArrayNotEmpty[T any]() Rule[[]T] {
	return Rule[[]T]{
		Check: func(value []T) bool {
			return len(value) >= 1
		},
		Error: ValidationError{
			Message:        "入力してください",
			TranslationKey: "validation.required",
		},
	}
}

// ArrayHasUniqueContents validates that no element appears twice.
// Elements are compared with ==: by value for primitives and plain structs,
// by identity for pointers. Nested data behind pointers is never inspected.
func ArrayHasUniqueContents[T comparable]() Rule[[]T] {
	return Rule[[]T]{
		Check: func(value []T) bool {
			return isUnique(value, func(v T) T { return v })
		},
		Error: uniqueError(),
	}
}

// ArrayHasUniqueKeys is ArrayHasUniqueContents for non-comparable elements:
// uniqueness is decided on the key each element maps to.
func ArrayHasUniqueKeys[T any, K comparable](key func(T) K) Rule[[]T] {
	return Rule[[]T]{
		Check: func(value []T) bool {
			return isUnique(value, key)
		},
		Error: uniqueError(),
	}
}

func uniqueError() ValidationError {
	return ValidationError{
		Message:        "値が被らないようにしてください",
		TranslationKey: "validation.unique",
	}
}

func isUnique[T any, K comparable](values []T, key func(T) K) bool {
	seen := make(map[K]struct{}, len(values))
	for _, v := range values {
		k := key(v)
		if _, dup := seen[k]; dup {
			return false
		}
		seen[k] = struct{}{}
	}
	return true
}
