// Package requestid tags every HTTP request with a correlation ID.
//
// Middleware reuses a client-supplied X-Request-ID when it is at most 128
// characters of [a-zA-Z0-9_-], otherwise it generates a UUID. The ID is
// stored in the request context, echoed in the response header, and can be
// attached to every log record through LoggerExtractor:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	r.Use(requestid.Middleware())
package requestid
