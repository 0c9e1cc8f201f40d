package i18n

import (
	"context"
	"log/slog"

	"github.com/T-Tommy0909/ray-system/pkg/logger"
)

type localeContextKey struct{}

// SetLocale stores the negotiated locale in ctx.
func SetLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeContextKey{}, locale)
}

// GetLocale returns the locale stored by SetLocale, or DefaultLanguage.
func GetLocale(ctx context.Context) string {
	if locale, _ := ctx.Value(localeContextKey{}).(string); locale != "" {
		return locale
	}
	return DefaultLanguage
}

// LoggerExtractor adds the request locale to log records.
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if locale, _ := ctx.Value(localeContextKey{}).(string); locale != "" {
			return logger.Locale(locale), true
		}
		return slog.Attr{}, false
	}
}
