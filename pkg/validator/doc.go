// Package validator provides a composable set of generic, pure validation
// rules used by form fields and request handlers.
//
// A Rule pairs a Check predicate over a value of type T with rich,
// translation-friendly error metadata. Rules hold no state and capture only
// their parameters, so a single rule list can be evaluated against a field's
// value every time it changes.
//
// # Architecture
//
// Each source file groups a family of rules (`string_rules.go`,
// `collection_rules.go`, `choice_rules.go`, `numeric_rules.go`,
// `password_rules.go`). Every exported constructor returns a Rule[T].
//
// Core building blocks:
//   - Rule[T]           – Check func plus error metadata
//   - CheckRules        – ordered, short-circuiting evaluation of a rule list
//   - ValidationError   – describes a single failure and supports i18n keys
//   - ValidationErrors  – slice type that implements the error interface
//   - Bind / Apply      – server-side aggregation of several fields into one error
//
// Default messages are Japanese, matching the product UI. Each error carries a
// TranslationKey and TranslationValues so a translator can render any other
// language.
//
// # Usage
//
//	rules := []validator.Rule[string]{
//	    validator.StringNotEmpty(),
//	    validator.StringLengthLessThanEqual(64),
//	}
//	if verr, ok := validator.CheckRules(email, rules); !ok {
//	    fmt.Println(verr.Message) // "入力してください"
//	}
//
//	err := validator.Apply(
//	    validator.Bind("email", req.Email, validator.StringNotEmpty(), validator.StringEmailAddress()),
//	    validator.Bind("password", req.Password, validator.StringNotEmpty()),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // iterate over field-level messages or translate them
//	}
//
// # Error Handling
//
// Rule evaluation never returns errors; it reports validity. ValidationErrors
// satisfies the error interface for callers that need to bubble failures up,
// and can be detected with errors.As or IsValidationError.
package validator
