// Package logger builds *slog.Logger values from functional options and adds
// attribute helpers used across the service.
//
// New picks a text or JSON handler, applies static attributes and wraps the
// result in LogHandlerDecorator, which pulls request-scoped values such as
// the request id or negotiated locale out of context.Context on each call.
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, cfg.ServiceName),
//	    logger.WithContextValue("request_id", requestIDKey{}),
//	)
//	log.InfoContext(ctx, "login rejected", logger.Email(email))
//
// Error and Errors return an empty Attr for nil errors, so they can be passed
// unconditionally.
package logger
