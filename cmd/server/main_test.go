package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/T-Tommy0909/ray-system/modules/login"
	"github.com/T-Tommy0909/ray-system/pkg/logger"
)

func TestRouter(t *testing.T) {
	t.Parallel()

	tr, err := login.NewTranslator(context.Background())
	require.NoError(t, err)
	svc, err := login.NewService(login.Config{
		DefaultLanguage: "ja",
		LazyErrors:      true,
		IDStrategy:      login.IDStrategyCounter,
		RedirectURL:     "/",
	}, login.NewMemoryDirectory(bcrypt.MinCost), tr)
	require.NoError(t, err)

	h := newRouter(logger.Discard(), svc)

	tests := []struct {
		path     string
		wantCode int
		wantBody string
	}{
		{"/health/live", http.StatusOK, "ALIVE"},
		{"/health/ready", http.StatusOK, "READY"},
		{"/login", http.StatusOK, "ログイン"},
		{"/missing", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestRouter_RequestID(t *testing.T) {
	t.Parallel()

	tr, err := login.NewTranslator(context.Background())
	require.NoError(t, err)
	svc, err := login.NewService(login.Config{IDStrategy: login.IDStrategyUUID, RedirectURL: "/"}, login.NewMemoryDirectory(bcrypt.MinCost), tr)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	req.Header.Set("X-Request-ID", "probe-1")
	rec := httptest.NewRecorder()
	newRouter(logger.Discard(), svc).ServeHTTP(rec, req)

	assert.Equal(t, "probe-1", rec.Header().Get("X-Request-ID"))
}
