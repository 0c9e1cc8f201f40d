package requestid_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/T-Tommy0909/ray-system/pkg/logger"
	"github.com/T-Tommy0909/ray-system/pkg/requestid"
)

func serve(t *testing.T, incoming string, opts ...requestid.Option) (ctxID, headerID string) {
	t.Helper()
	h := requestid.Middleware(opts...)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = requestid.FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if incoming != "" {
		req.Header.Set(requestid.Header, incoming)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return ctxID, rec.Header().Get(requestid.Header)
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	gen := requestid.WithGenerator(func() string { return "generated" })

	tests := []struct {
		name     string
		incoming string
		want     string
	}{
		{"generates when missing", "", "generated"},
		{"reuses valid id", "req_123-abc", "req_123-abc"},
		{"replaces invalid characters", "bad id; drop", "generated"},
		{"replaces overlong id", strings.Repeat("a", 129), "generated"},
		{"accepts max length", strings.Repeat("a", 128), strings.Repeat("a", 128)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctxID, headerID := serve(t, tt.incoming, gen)
			assert.Equal(t, tt.want, ctxID)
			assert.Equal(t, tt.want, headerID)
		})
	}

	t.Run("default generator is uuid", func(t *testing.T) {
		t.Parallel()
		ctxID, _ := serve(t, "")
		assert.Len(t, ctxID, 36)
	})
}

func TestFromContext(t *testing.T) {
	t.Parallel()
	assert.Empty(t, requestid.FromContext(context.Background()))
	assert.Equal(t, "x", requestid.FromContext(requestid.WithContext(context.Background(), "x")))
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithFormat(logger.FormatText),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)

	log.InfoContext(requestid.WithContext(context.Background(), "abc"), "hello")
	assert.Contains(t, buf.String(), "request_id=abc")

	buf.Reset()
	log.Log(context.Background(), slog.LevelInfo, "no id")
	assert.NotContains(t, buf.String(), "request_id")
}
