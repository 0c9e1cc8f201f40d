package i18n

import "errors"

var (
	ErrNilAdapter          = errors.New("i18n: adapter is nil")
	ErrNoTranslations      = errors.New("i18n: no translations loaded")
	ErrEmptyLanguage       = errors.New("i18n: empty language code")
	ErrInvalidLanguage     = errors.New("i18n: invalid language tag")
	ErrLoadingCancelled    = errors.New("i18n: loading translations cancelled")
	ErrFailedToReadDir     = errors.New("i18n: failed to read translations directory")
	ErrFailedToReadFile    = errors.New("i18n: failed to read translation file")
	ErrFailedToParseFile   = errors.New("i18n: failed to parse translation file")
	ErrNoTranslationFiles  = errors.New("i18n: no translation files found")
	ErrFailedToParseYAML   = errors.New("i18n: failed to parse YAML content")
	ErrFailedToParseJSON   = errors.New("i18n: failed to parse JSON content")
	ErrInvalidTranslations = errors.New("i18n: invalid translation structure")
)
