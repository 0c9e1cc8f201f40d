package config

import "errors"

var (
	ErrParsingConfig   = errors.New("failed to parse environment variables into config")
	ErrNilPointer      = errors.New("nil pointer provided to config loader")
	ErrNoEnvFiles      = errors.New("no env files provided")
	ErrLoadingEnvFiles = errors.New("failed to load env files")
)
