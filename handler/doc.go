// Package handler adapts typed handler functions to net/http.
//
// A HandlerFunc receives a Context and a request value bound by the binders
// given to Wrap, and returns a Response. Responses pick their wire format
// from the request: DataStar clients get server-sent events (element
// patches, signal patches, client redirects), other clients get HTML or JSON.
//
//	r.Post("/login/validate", handler.Wrap(svc.validate,
//		handler.WithBinders[handler.Context, Credentials](binder.Signals(), binder.JSON(), binder.Form()),
//	))
//
// Errors returned by binders or Render go to the ErrorHandler. The default
// one maps validator.ValidationErrors to 422, HTTPError to its own status
// and anything else to 500.
package handler
