package validator

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

var emailAddressRegex = regexp.MustCompile(`^.+@.+\..+$`)

// StringNotEmpty validates that a string is not empty.
// Whitespace-only input counts as filled.
func StringNotEmpty() Rule[string] {
	return Rule[string]{
		Check: func(value string) bool {
			return value != ""
		},
		Error: ValidationError{
			Message:        "入力してください",
			TranslationKey: "validation.required",
		},
	}
}

// StringLengthMoreThan validates that a string has more than n characters.
func StringLengthMoreThan(n int) Rule[string] {
	return Rule[string]{
		Check: func(value string) bool {
			return charCount(value) > n
		},
		Error: ValidationError{
			Message:        fmt.Sprintf("%d文字より多く入力してください", n),
			TranslationKey: "validation.length_more_than",
			TranslationValues: map[string]any{
				"len": n,
			},
		},
	}
}

// StringLengthMoreThanEqual validates that a string has at least n characters.
func StringLengthMoreThanEqual(n int) Rule[string] {
	return Rule[string]{
		Check: func(value string) bool {
			return charCount(value) >= n
		},
		Error: ValidationError{
			Message:        fmt.Sprintf("%d文字以上で入力してください", n),
			TranslationKey: "validation.length_more_than_equal",
			TranslationValues: map[string]any{
				"len": n,
			},
		},
	}
}

// StringLengthLessThan validates that a string has fewer than n characters.
func StringLengthLessThan(n int) Rule[string] {
	return Rule[string]{
		Check: func(value string) bool {
			return charCount(value) < n
		},
		Error: ValidationError{
			Message:        fmt.Sprintf("%d文字より少なく入力してください", n),
			TranslationKey: "validation.length_less_than",
			TranslationValues: map[string]any{
				"len": n,
			},
		},
	}
}

// StringLengthLessThanEqual validates that a string has at most n characters.
func StringLengthLessThanEqual(n int) Rule[string] {
	return Rule[string]{
		Check: func(value string) bool {
			return charCount(value) <= n
		},
		Error: ValidationError{
			Message:        fmt.Sprintf("%d文字以下で入力してください", n),
			TranslationKey: "validation.length_less_than_equal",
			TranslationValues: map[string]any{
				"len": n,
			},
		},
	}
}

// StringRegexp validates that a string matches the given pattern.
// Compile the pattern once and reuse the rule; the regexp is shared, not copied.
func StringRegexp(re *regexp.Regexp) Rule[string] {
	return Rule[string]{
		Check: func(value string) bool {
			return re != nil && re.MatchString(value)
		},
		Error: ValidationError{
			Message:        "入力形式が正しくありません",
			TranslationKey: "validation.format",
		},
	}
}

// StringEmailAddress validates the loose "something@something.tld" shape.
// Deliverability is out of scope.
func StringEmailAddress() Rule[string] {
	return StringRegexp(emailAddressRegex)
}

// charCount counts user-perceived characters: runes of the NFC-normalized
// string, so composed and decomposed kana or accents measure the same.
func charCount(s string) int {
	return utf8.RuneCountInString(norm.NFC.String(s))
}
