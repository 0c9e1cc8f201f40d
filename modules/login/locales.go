package login

import (
	"context"
	"embed"

	"github.com/T-Tommy0909/ray-system/pkg/i18n"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// NewTranslator loads the embedded ja and en locales.
func NewTranslator(ctx context.Context, opts ...i18n.Option) (*i18n.Translator, error) {
	return i18n.NewTranslator(ctx, i18n.NewFSAdapter(localeFS, "locales"), opts...)
}
