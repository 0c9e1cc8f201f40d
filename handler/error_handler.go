package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/T-Tommy0909/ray-system/pkg/logger"
)

// ErrorHandlerConfig configures NewErrorHandler.
type ErrorHandlerConfig struct {
	// Translate turns an error code such as "http.unauthorized" into a
	// localized message. When nil or when it returns the code unchanged,
	// the standard status text is used.
	Translate func(ctx context.Context, key string) string
	// SignalName is the DataStar signal that receives the message.
	// Defaults to "error".
	SignalName string
}

// NewErrorHandler returns an error handler that logs the error and answers
// DataStar requests with a signal patch, JSON clients with the error
// envelope and everyone else with plain text.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler[Context] {
	if log == nil {
		log = logger.Discard()
	}
	if cfg.SignalName == "" {
		cfg.SignalName = "error"
	}
	log = log.With(logger.Component("error_handler"))

	return func(ctx Context, err error) {
		r := ctx.Request()
		info := classifyError(err)
		if cfg.Translate != nil {
			if msg := cfg.Translate(ctx, info.Code); msg != "" && msg != info.Code {
				info.Message = msg
			}
		}

		level := slog.LevelError
		if info.StatusCode < http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		log.LogAttrs(ctx, level, "request error",
			logger.Error(err),
			slog.Int("status_code", info.StatusCode),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Bool("datastar", IsDataStar(r)),
		)

		var resp Response
		switch {
		case IsDataStar(r):
			resp = Signals(map[string]any{cfg.SignalName: info.Message}, info.StatusCode)
		case WantsJSON(r):
			resp = jsonResponse{
				status: info.StatusCode,
				body:   JSONResponse{Error: &ErrorDetail{Code: info.Code, Message: info.Message, Details: info.Details}},
			}
		default:
			http.Error(ctx.ResponseWriter(), info.Message, info.StatusCode)
			return
		}

		if renderErr := resp.Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.ErrorContext(ctx, "failed to render error response", logger.Error(renderErr))
		}
	}
}

// WantsJSON reports whether the client asked for or sent JSON.
func WantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json") ||
		strings.HasPrefix(r.Header.Get("Content-Type"), "application/json")
}
