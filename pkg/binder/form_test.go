package binder_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/T-Tommy0909/ray-system/pkg/binder"
)

type profileForm struct {
	Name     string   `form:"name"`
	Age      int      `form:"age"`
	Score    float64  `form:"score"`
	Remember bool     `form:"remember"`
	Tags     []string `form:"tags"`
	Ref      *string  `form:"ref"`
	Internal string   `form:"-"`
	Nickname string
	hidden   string
}

func formRequest(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/profile", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestForm(t *testing.T) {
	t.Parallel()

	t.Run("binds urlencoded values", func(t *testing.T) {
		t.Parallel()
		req := formRequest(url.Values{
			"name":     {"Hanako"},
			"age":      {"31"},
			"score":    {"4.5"},
			"remember": {"on"},
			"tags":     {"a", "b"},
			"ref":      {"newsletter"},
			"Internal": {"x"},
			"nickname": {"hana"},
		})

		var got profileForm
		require.NoError(t, binder.Form()(req, &got))

		assert.Equal(t, "Hanako", got.Name)
		assert.Equal(t, 31, got.Age)
		assert.InDelta(t, 4.5, got.Score, 0.0001)
		assert.True(t, got.Remember)
		assert.Equal(t, []string{"a", "b"}, got.Tags)
		require.NotNil(t, got.Ref)
		assert.Equal(t, "newsletter", *got.Ref)
		assert.Empty(t, got.Internal)
		assert.Equal(t, "hana", got.Nickname, "untagged fields bind by lowercased name")
		assert.Empty(t, got.hidden)
	})

	t.Run("missing values keep zero value", func(t *testing.T) {
		t.Parallel()
		var got profileForm
		require.NoError(t, binder.Form()(formRequest(url.Values{"name": {"x"}}), &got))
		assert.Zero(t, got.Age)
		assert.Nil(t, got.Ref)
	})

	t.Run("invalid number", func(t *testing.T) {
		t.Parallel()
		err := binder.Form()(formRequest(url.Values{"age": {"old"}}), &profileForm{})
		require.ErrorIs(t, err, binder.ErrFailedToParseForm)
		assert.Contains(t, err.Error(), "Age")
	})

	t.Run("invalid bool", func(t *testing.T) {
		t.Parallel()
		err := binder.Form()(formRequest(url.Values{"remember": {"maybe"}}), &profileForm{})
		require.ErrorIs(t, err, binder.ErrFailedToParseForm)
	})

	t.Run("target must be a struct pointer", func(t *testing.T) {
		t.Parallel()
		var s string
		err := binder.Form()(formRequest(url.Values{"name": {"x"}}), &s)
		require.ErrorIs(t, err, binder.ErrInvalidTarget)

		err = binder.Form()(formRequest(url.Values{"name": {"x"}}), profileForm{})
		require.ErrorIs(t, err, binder.ErrInvalidTarget)
	})

	t.Run("multipart values", func(t *testing.T) {
		t.Parallel()
		var body bytes.Buffer
		w := multipart.NewWriter(&body)
		require.NoError(t, w.WriteField("name", "Taro"))
		require.NoError(t, w.WriteField("age", "20"))
		require.NoError(t, w.Close())

		req := httptest.NewRequest(http.MethodPost, "/profile", &body)
		req.Header.Set("Content-Type", w.FormDataContentType())

		var got profileForm
		require.NoError(t, binder.Form()(req, &got))
		assert.Equal(t, "Taro", got.Name)
		assert.Equal(t, 20, got.Age)
	})

	t.Run("json bodies are not applicable", func(t *testing.T) {
		t.Parallel()
		err := binder.Form()(jsonRequest(`{}`), &profileForm{})
		require.ErrorIs(t, err, binder.ErrBinderNotApplicable)
	})
}
