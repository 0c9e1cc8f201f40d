package i18n

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/language"

	"github.com/T-Tommy0909/ray-system/pkg/logger"
)

// DefaultLanguage is used when nothing else is configured or negotiated.
const DefaultLanguage = "ja"

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// Translator holds loaded translations. It is read-only after construction
// and safe for concurrent use.
type Translator struct {
	translations  map[string]map[string]any
	langs         []string
	matcher       language.Matcher
	defaultLang   string
	fallbackToKey bool
	logMissing    bool
	logger        *slog.Logger
}

// NewTranslator loads translations from adapter. The default language is
// always listed first in SupportedLanguages and is what Match falls back to.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, opts ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        logger.Discard(),
	}
	for _, opt := range opts {
		opt(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	if len(translations) == 0 {
		return nil, ErrNoTranslations
	}

	tags := []language.Tag{}
	for lang, tr := range translations {
		if lang == "" {
			return nil, ErrEmptyLanguage
		}
		if tr == nil {
			return nil, fmt.Errorf("%w: nil map for %q", ErrInvalidTranslations, lang)
		}
		if _, err := language.Parse(lang); err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrInvalidLanguage, lang, err)
		}
		t.langs = append(t.langs, lang)
	}
	slices.SortFunc(t.langs, func(a, b string) int {
		switch {
		case a == t.defaultLang:
			return -1
		case b == t.defaultLang:
			return 1
		}
		return strings.Compare(a, b)
	})
	for _, lang := range t.langs {
		tags = append(tags, language.MustParse(lang))
	}

	t.translations = translations
	t.matcher = language.NewMatcher(tags)
	t.logger.InfoContext(ctx, "translations loaded", slog.Any("languages", t.langs))
	return t, nil
}

// SupportedLanguages lists loaded languages, default first.
func (t *Translator) SupportedLanguages() []string {
	return slices.Clone(t.langs)
}

// DefaultLanguage returns the configured default language.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// Match picks the supported language closest to the given preferences.
// Each preference may be a single tag or a full Accept-Language value.
func (t *Translator) Match(prefs ...string) string {
	if lang, ok := t.match(prefs...); ok {
		return lang
	}
	return t.fallbackLang()
}

func (t *Translator) match(prefs ...string) (string, bool) {
	var tags []language.Tag
	for _, p := range prefs {
		parsed, _, err := language.ParseAcceptLanguage(p)
		if err != nil {
			continue
		}
		tags = append(tags, parsed...)
	}
	if len(tags) == 0 {
		return "", false
	}

	_, idx, conf := t.matcher.Match(tags...)
	if conf == language.No {
		return "", false
	}
	return t.langs[idx], true
}

// HasTranslation reports whether key resolves to a string in lang.
func (t *Translator) HasTranslation(lang, key string) bool {
	_, ok := t.lookup(lang, key)
	return ok
}

// T translates key in lang. args are name/value pairs substituted into
// %{name} placeholders. Missing keys return the key itself unless
// WithFallbackToKey(false) is set.
func (t *Translator) T(lang, key string, args ...string) string {
	tmpl, ok := t.lookup(lang, key)
	if !ok {
		if t.logMissing {
			t.logger.Warn("translation not found", logger.Locale(lang), slog.String("key", key))
		}
		if !t.fallbackToKey {
			return ""
		}
		tmpl = key
	}
	return substitute(tmpl, args)
}

// Td is T with an explicit default template for missing keys.
func (t *Translator) Td(lang, key, def string, args ...string) string {
	tmpl, ok := t.lookup(lang, key)
	if !ok {
		tmpl = def
	}
	return substitute(tmpl, args)
}

// Tc translates using the locale stored in ctx.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.T(GetLocale(ctx), key, args...)
}

func (t *Translator) fallbackLang() string {
	if _, ok := t.translations[t.defaultLang]; ok {
		return t.defaultLang
	}
	return t.langs[0]
}

func (t *Translator) lookup(lang, key string) (string, bool) {
	current, ok := t.translations[lang]
	if !ok {
		return "", false
	}

	parts := strings.Split(key, ".")
	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return "", false
		}
		if i == len(parts)-1 {
			s, ok := val.(string)
			return s, ok
		}
		if current, ok = val.(map[string]any); !ok {
			return "", false
		}
	}
	return "", false
}

func substitute(tmpl string, args []string) string {
	if len(args) < 2 {
		return tmpl
	}
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if v, ok := params[match[2:len(match)-1]]; ok {
			return v
		}
		return match
	})
}
