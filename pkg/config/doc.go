// Package config loads typed configuration from environment variables using
// github.com/caarlos0/env/v11, with optional .env files read through
// github.com/joho/godotenv.
//
// Each package declares its own struct with `env` tags and calls Load or
// MustLoad. Parsed values are cached per type.
package config
