package binder

import (
	"fmt"
	"net/http"
	"strings"
)

// DefaultMaxMemory bounds the in-memory part of multipart parsing (10MB).
const DefaultMaxMemory = 10 << 20

// Form binds application/x-www-form-urlencoded and multipart/form-data
// values into the `form`-tagged fields of v. Other media types are
// reported as ErrBinderNotApplicable.
//
// Supported tags:
//   - `form:"name"` binds to form field "name"
//   - `form:"-"` skips the field
//
// Untagged exported fields bind by their lowercased name. Supported kinds
// are strings, integers, floats, bools, pointers to those, and slices for
// repeated fields.
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		var values map[string][]string

		switch mt := mediaType(r); {
		case mt == "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %w", ErrFailedToParseForm, err)
			}
			values = r.PostForm

		case strings.HasPrefix(mt, "multipart/form-data"):
			if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
				return fmt.Errorf("%w: %w", ErrFailedToParseForm, err)
			}
			if r.MultipartForm != nil {
				values = r.MultipartForm.Value
			}

		case mt == "":
			return fmt.Errorf("%w: %w", ErrBinderNotApplicable, ErrMissingContentType)

		default:
			return fmt.Errorf("%w: %w: %s", ErrBinderNotApplicable, ErrUnsupportedMediaType, mt)
		}

		return bindToStruct(v, "form", values, ErrFailedToParseForm)
	}
}
