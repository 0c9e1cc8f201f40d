// Package binder decodes HTTP request data into Go structs.
//
// Each binder has the signature func(*http.Request, any) error and returns
// ErrBinderNotApplicable when the request is not meant for it, so several
// binders can be chained and the first one that understands the request
// fills the target:
//
//	handler.Wrap(submit,
//		handler.WithBinders[handler.Context, Credentials](
//			binder.Signals(), // DataStar fetches
//			binder.JSON(),    // API clients
//			binder.Form(),    // plain HTML forms
//		),
//	)
//
// Signals reads the DataStar signal payload. JSON decodes an
// application/json body strictly, rejecting unknown fields and trailing data.
// Form handles urlencoded and multipart bodies using `form` struct tags.
package binder
