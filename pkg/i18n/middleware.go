package i18n

import (
	"net/http"
	"strings"
)

// LangExtractor returns the raw language preferences found in a request,
// most specific source first.
type LangExtractor func(r *http.Request) []string

type extractorConfig struct {
	cookieName string
	queryParam string
}

// ExtractorOption configures DefaultLangExtractor.
type ExtractorOption func(*extractorConfig)

func WithCookieName(name string) ExtractorOption {
	return func(c *extractorConfig) { c.cookieName = name }
}

func WithQueryParamName(name string) ExtractorOption {
	return func(c *extractorConfig) { c.queryParam = name }
}

// maxPreferenceLength bounds any single header or parameter value.
const maxPreferenceLength = 4096

// DefaultLangExtractor checks the query parameter, then the cookie (both
// named "lang" by default), then Accept-Language.
func DefaultLangExtractor(opts ...ExtractorOption) LangExtractor {
	cfg := &extractorConfig{cookieName: "lang", queryParam: "lang"}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(r *http.Request) []string {
		var prefs []string
		add := func(v string) {
			v = strings.TrimSpace(v)
			if v != "" && len(v) <= maxPreferenceLength {
				prefs = append(prefs, v)
			}
		}

		if cfg.queryParam != "" {
			add(r.URL.Query().Get(cfg.queryParam))
		}
		if cfg.cookieName != "" {
			if c, err := r.Cookie(cfg.cookieName); err == nil {
				add(c.Value)
			}
		}
		add(r.Header.Get("Accept-Language"))
		return prefs
	}
}

// Middleware negotiates the request language against the translator and
// stores it with SetLocale. The first preference source naming a supported
// language wins, so an explicit ?lang=en beats Accept-Language. A nil
// extractor means DefaultLangExtractor.
func Middleware(t *Translator, extr LangExtractor) func(http.Handler) http.Handler {
	if extr == nil {
		extr = DefaultLangExtractor()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := t.fallbackLang()
			for _, pref := range extr(r) {
				if matched, ok := t.match(pref); ok {
					lang = matched
					break
				}
			}
			next.ServeHTTP(w, r.WithContext(SetLocale(r.Context(), lang)))
		})
	}
}
