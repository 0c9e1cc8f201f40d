package i18n_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/T-Tommy0909/ray-system/pkg/i18n"
	"github.com/T-Tommy0909/ray-system/pkg/logger"
)

func TestMiddleware(t *testing.T) {
	tr := newTranslator(t)

	tests := []struct {
		name   string
		url    string
		cookie string
		accept string
		want   string
	}{
		{"nothing set", "/", "", "", "ja"},
		{"accept language", "/", "", "en-US,en;q=0.9", "en"},
		{"cookie beats header", "/", "ja", "en", "ja"},
		{"query beats cookie", "/?lang=en", "ja", "", "en"},
		{"unsupported query is skipped", "/?lang=fr", "", "en", "en"},
		{"all unsupported", "/?lang=fr", "de", "it", "ja"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			h := i18n.Middleware(tr, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = i18n.GetLocale(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "lang", Value: tt.cookie})
			}
			if tt.accept != "" {
				req.Header.Set("Accept-Language", tt.accept)
			}
			h.ServeHTTP(httptest.NewRecorder(), req)

			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("custom names", func(t *testing.T) {
		extr := i18n.DefaultLangExtractor(i18n.WithQueryParamName("locale"), i18n.WithCookieName(""))
		req := httptest.NewRequest(http.MethodGet, "/?locale=en&lang=ja", nil)
		req.AddCookie(&http.Cookie{Name: "lang", Value: "ja"})
		assert.Equal(t, []string{"en"}, extr(req))
	})
}

func TestLoggerExtractor(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithContextExtractors(i18n.LoggerExtractor()))

	log.InfoContext(i18n.SetLocale(context.Background(), "en"), "msg")
	assert.Contains(t, buf.String(), `"locale":"en"`)

	buf.Reset()
	log.InfoContext(context.Background(), "msg")
	assert.NotContains(t, buf.String(), "locale")
}
