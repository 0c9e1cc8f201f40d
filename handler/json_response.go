package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/T-Tommy0909/ray-system/pkg/binder"
	"github.com/T-Tommy0909/ray-system/pkg/validator"
)

// JSONResponse is the envelope for every JSON body.
type JSONResponse struct {
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string              `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

type jsonResponse struct {
	status int
	body   JSONResponse
}

func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

type JSONOption func(*jsonResponse)

func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

// WithErrorMessage replaces the message of an error envelope.
func WithErrorMessage(msg string) JSONOption {
	return func(r *jsonResponse) {
		if r.body.Error != nil && msg != "" {
			r.body.Error.Message = msg
		}
	}
}

// JSON wraps v in the data envelope with status 200.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusOK, body: JSONResponse{Data: v}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// JSONError renders err in the error envelope. Validation errors become 422
// with per-field details, malformed request bodies are 400, HTTPError uses
// its own code and anything else is 500.
func JSONError(err error, opts ...JSONOption) Response {
	info := classifyError(err)
	r := &jsonResponse{
		status: info.StatusCode,
		body:   JSONResponse{Error: &ErrorDetail{Code: info.Code, Message: info.Message, Details: info.Details}},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ErrorInfo is the client-facing view of an error.
type ErrorInfo struct {
	StatusCode int
	Code       string
	Message    string
	Details    map[string][]string
}

func classifyError(err error) ErrorInfo {
	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
		details := make(map[string][]string, len(verrs))
		for _, field := range verrs.Fields() {
			details[field] = verrs.Get(field)
		}
		return ErrorInfo{
			StatusCode: http.StatusUnprocessableEntity,
			Code:       "validation_error",
			Message:    http.StatusText(http.StatusUnprocessableEntity),
			Details:    details,
		}
	}

	if isBindingError(err) {
		httpErr := ErrBadRequest
		return ErrorInfo{StatusCode: httpErr.Code, Code: httpErr.Key, Message: http.StatusText(httpErr.Code)}
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return ErrorInfo{StatusCode: httpErr.Code, Code: httpErr.Key, Message: http.StatusText(httpErr.Code)}
	}

	return ErrorInfo{
		StatusCode: http.StatusInternalServerError,
		Code:       ErrInternalServerError.Key,
		Message:    http.StatusText(http.StatusInternalServerError),
	}
}

func isBindingError(err error) bool {
	for _, target := range []error{
		binder.ErrFailedToParseJSON,
		binder.ErrFailedToParseForm,
		binder.ErrFailedToParseSignals,
		binder.ErrInvalidTarget,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
