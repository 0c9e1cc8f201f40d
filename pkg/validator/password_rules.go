package validator

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	uppercaseRegex   = regexp.MustCompile(`[A-Z]`)
	lowercaseRegex   = regexp.MustCompile(`[a-z]`)
	digitRegex       = regexp.MustCompile(`[0-9]`)
	specialCharRegex = regexp.MustCompile(`[!@#$%^&*?.\\\[\](){}+\-~"'|]`)

	commonPasswords = map[string]bool{
		"password":    true,
		"password1":   true,
		"password123": true,
		"123456":      true,
		"12345678":    true,
		"123456789":   true,
		"qwerty":      true,
		"qwerty123":   true,
		"abc123":      true,
		"admin":       true,
		"admin123":    true,
		"letmein":     true,
		"welcome":     true,
		"iloveyou":    true,
		"111111":      true,
		"000000":      true,
		"1q2w3e4r":    true,
		"qazwsx":      true,
	}
)

// Password is the default strength rule: at least 3 of the 4 character
// classes (uppercase, lowercase, digit, special) must be present.
func Password() Rule[string] {
	return PasswordCharClasses(3)
}

// PasswordCharClasses validates that a password mixes at least min of the
// four character classes. Length is not checked; combine with the
// StringLength rules for that.
func PasswordCharClasses(min int) Rule[string] {
	return Rule[string]{
		Check: func(value string) bool {
			return charClasses(value) >= min
		},
		Error: ValidationError{
			Message:        fmt.Sprintf("最低%dつの条件を満たしてください", min),
			TranslationKey: "validation.password_strength",
			TranslationValues: map[string]any{
				"min": min,
			},
		},
	}
}

// NotCommonPassword rejects passwords from a short list of the most
// frequently leaked ones, compared case-insensitively.
func NotCommonPassword() Rule[string] {
	return Rule[string]{
		Check: func(value string) bool {
			return !commonPasswords[strings.ToLower(value)]
		},
		Error: ValidationError{
			Message:        "推測されやすいパスワードは使用できません",
			TranslationKey: "validation.password_common",
		},
	}
}

func charClasses(value string) int {
	n := 0
	for _, re := range []*regexp.Regexp{uppercaseRegex, lowercaseRegex, digitRegex, specialCharRegex} {
		if re.MatchString(value) {
			n++
		}
	}
	return n
}
