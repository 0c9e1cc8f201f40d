package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/T-Tommy0909/ray-system/handler"
	"github.com/T-Tommy0909/ray-system/pkg/binder"
	"github.com/T-Tommy0909/ray-system/pkg/validator"
)

func dataStarRequest(method, target string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	req.Header.Set("Datastar-Request", "true")
	return req
}

func render(t *testing.T, resp handler.Response, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	require.NoError(t, resp.Render(rec, req))
	return rec
}

func TestJSON(t *testing.T) {
	t.Parallel()

	t.Run("wraps data", func(t *testing.T) {
		t.Parallel()
		rec := render(t, handler.JSON(map[string]string{"id": "1"}), httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"data":{"id":"1"}}`, rec.Body.String())
	})

	t.Run("custom status", func(t *testing.T) {
		t.Parallel()
		rec := render(t, handler.JSON("made", handler.WithJSONStatus(http.StatusCreated)), httptest.NewRequest(http.MethodPost, "/", nil))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})
}

func TestJSONError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name: "validation errors",
			err: validator.Apply(
				validator.Bind("email", "", validator.StringNotEmpty()),
			),
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "validation_error",
		},
		{
			name:       "http error",
			err:        fmt.Errorf("login: %w", handler.ErrUnauthorized),
			wantStatus: http.StatusUnauthorized,
			wantCode:   "http.unauthorized",
		},
		{
			name:       "malformed body",
			err:        fmt.Errorf("%w: unexpected EOF", binder.ErrFailedToParseJSON),
			wantStatus: http.StatusBadRequest,
			wantCode:   "http.bad_request",
		},
		{
			name:       "unknown error",
			err:        io.ErrUnexpectedEOF,
			wantStatus: http.StatusInternalServerError,
			wantCode:   "http.internal_server_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := render(t, handler.JSONError(tt.err), httptest.NewRequest(http.MethodPost, "/", nil))
			assert.Equal(t, tt.wantStatus, rec.Code)

			var body handler.JSONResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Nil(t, body.Data)
		})
	}

	t.Run("validation details per field", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(
			validator.Bind("email", "", validator.StringNotEmpty()),
			validator.Bind("password", "abc", validator.StringLengthMoreThanEqual(8)),
		)
		rec := render(t, handler.JSONError(err), httptest.NewRequest(http.MethodPost, "/", nil))

		var body handler.JSONResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, map[string][]string{
			"email":    {"入力してください"},
			"password": {"8文字以上で入力してください"},
		}, body.Error.Details)
	})
}

func TestRedirect(t *testing.T) {
	t.Parallel()

	t.Run("plain request gets see other", func(t *testing.T) {
		t.Parallel()
		rec := render(t, handler.Redirect("/home"), httptest.NewRequest(http.MethodPost, "/login", nil))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/home", rec.Header().Get("Location"))
	})

	t.Run("custom code", func(t *testing.T) {
		t.Parallel()
		rec := render(t, handler.RedirectWithCode("/home", http.StatusFound), httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusFound, rec.Code)
	})

	t.Run("datastar request gets client redirect", func(t *testing.T) {
		t.Parallel()
		rec := render(t, handler.Redirect("/home"), dataStarRequest(http.MethodPost, "/login"))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/event-stream")
		assert.Contains(t, rec.Body.String(), "/home")
		assert.Empty(t, rec.Header().Get("Location"))
	})
}

func TestSignals(t *testing.T) {
	t.Parallel()

	signals := map[string]any{"valid": false, "errors": map[string]string{"email": "入力してください"}}

	t.Run("datastar request gets signal patch with 200 whatever the status", func(t *testing.T) {
		t.Parallel()
		rec := render(t, handler.Signals(signals, http.StatusUnprocessableEntity), dataStarRequest(http.MethodPost, "/login/validate"))

		assert.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "datastar-patch-signals")
		assert.Contains(t, body, `"valid":false`)
		assert.Contains(t, body, "入力してください")
	})

	t.Run("plain request gets json with status", func(t *testing.T) {
		t.Parallel()
		rec := render(t, handler.Signals(signals, http.StatusUnprocessableEntity), httptest.NewRequest(http.MethodPost, "/login/validate", nil))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.JSONEq(t, `{"data":{"valid":false,"errors":{"email":"入力してください"}}}`, rec.Body.String())
	})

	t.Run("zero status means ok", func(t *testing.T) {
		t.Parallel()
		rec := render(t, handler.Signals(signals, 0), httptest.NewRequest(http.MethodPost, "/", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestTempl(t *testing.T) {
	t.Parallel()

	component := func(html string) templ.Component {
		return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
			_, err := io.WriteString(w, html)
			return err
		})
	}

	t.Run("plain request gets html", func(t *testing.T) {
		t.Parallel()
		rec := render(t, handler.Templ(component(`<p id="msg">hi</p>`)), httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Equal(t, `<p id="msg">hi</p>`, rec.Body.String())
	})

	t.Run("status for plain html", func(t *testing.T) {
		t.Parallel()
		rec := render(t, handler.TemplStatus(http.StatusUnauthorized, component("<p>no</p>")), httptest.NewRequest(http.MethodPost, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("partial goes to datastar", func(t *testing.T) {
		t.Parallel()
		resp := handler.TemplPartial(component(`<div id="errors">partial</div>`), component("<html>full</html>"),
			handler.WithTarget("#errors"), handler.WithPatchMode(handler.PatchInner))
		rec := render(t, resp, dataStarRequest(http.MethodPost, "/"))

		body := rec.Body.String()
		assert.Contains(t, body, "datastar-patch-elements")
		assert.Contains(t, body, "partial")
		assert.Contains(t, body, "#errors")
		assert.NotContains(t, body, "full")
	})

	t.Run("full goes to plain request", func(t *testing.T) {
		t.Parallel()
		resp := handler.TemplPartial(component("partial"), component("full"))
		rec := render(t, resp, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, "full", rec.Body.String())
	})
}

func TestJSONError_WithErrorMessage(t *testing.T) {
	t.Parallel()

	rec := render(t, handler.JSONError(handler.ErrUnauthorized, handler.WithErrorMessage("認証に失敗しました")), httptest.NewRequest(http.MethodPost, "/", nil))

	var body handler.JSONResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "認証に失敗しました", body.Error.Message)
	assert.Equal(t, "http.unauthorized", body.Error.Code)

	rec = render(t, handler.JSON("ok", handler.WithErrorMessage("ignored")), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.JSONEq(t, `{"data":"ok"}`, rec.Body.String())
}
