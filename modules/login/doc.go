// Package login serves a login page whose email and password fields are
// validated live through DataStar.
//
// Each request evaluates a fresh form.Form: the client's current input and
// the set of fields it has left are replayed onto two form.Field values,
// and the resulting display messages plus the form's aggregate validity are
// sent back as signals. Submission goes through Form.Submit and is only
// authenticated when the latest validity is true.
//
//	tr, _ := login.NewTranslator(ctx)
//	dir := login.NewMemoryDirectory(bcrypt.DefaultCost)
//	_ = dir.Seed(ctx, 50, "password")
//	svc, err := login.NewService(cfg, dir, tr, login.WithLogger(log))
//	r.Mount("/", svc.Handle())
package login
