package login

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrNilAuthenticator   = errors.New("authenticator is required")
	ErrNilTranslator      = errors.New("translator is required")
	ErrInvalidIDStrategy  = errors.New("invalid field ID strategy")
	ErrEmptyRedirectURL   = errors.New("redirect URL is empty")
	ErrMissingLocale      = errors.New("login messages missing for default language")
)
