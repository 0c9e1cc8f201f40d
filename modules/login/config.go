package login

import (
	"fmt"

	"github.com/T-Tommy0909/ray-system/pkg/form"
)

const (
	IDStrategyCounter = "counter"
	IDStrategyUUID    = "uuid"
)

type Config struct {
	DefaultLanguage string `env:"LOGIN_DEFAULT_LANGUAGE" envDefault:"ja"`
	// LazyErrors hides a field's message until it is edited or blurred.
	LazyErrors  bool   `env:"LOGIN_LAZY_ERRORS" envDefault:"true"`
	IDStrategy  string `env:"LOGIN_ID_STRATEGY" envDefault:"counter"`
	RedirectURL string `env:"LOGIN_REDIRECT_URL" envDefault:"/"`
}

func (c Config) validate() error {
	switch c.IDStrategy {
	case IDStrategyCounter, IDStrategyUUID:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidIDStrategy, c.IDStrategy)
	}
	if c.RedirectURL == "" {
		return ErrEmptyRedirectURL
	}
	return nil
}

// idGenerator returns a fresh generator for one form.
func (c Config) idGenerator() form.IDGenerator {
	if c.IDStrategy == IDStrategyUUID {
		return form.UUIDs{}
	}
	return form.NewCounter("login-")
}
