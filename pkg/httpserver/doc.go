// Package httpserver runs an http.Handler with graceful shutdown on context
// cancellation or SIGINT/SIGTERM, configured from HTTP_* environment
// variables through Config.
package httpserver
