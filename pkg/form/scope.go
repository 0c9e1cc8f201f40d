package form

import "context"

// Scope is what a field needs from its enclosing form.
type Scope interface {
	Registrar
	NewID() FieldID
}

type detached struct {
	ids *Counter
}

func (detached) Register(FieldID, bool) {}
func (detached) Unregister(FieldID)     {}

func (d detached) NewID() FieldID { return d.ids.NewID() }

var defaultScope Scope = detached{ids: NewCounter("detached-")}

// Detached returns the scope used by fields mounted outside any form.
// Registration is a no-op; IDs are still unique.
func Detached() Scope {
	return defaultScope
}

type scopeKey struct{}

// WithScope stores s in ctx.
func WithScope(ctx context.Context, s Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, s)
}

// ScopeFromContext returns the scope stored by WithScope, or Detached.
func ScopeFromContext(ctx context.Context) Scope {
	if ctx == nil {
		return Detached()
	}
	if s, ok := ctx.Value(scopeKey{}).(Scope); ok && s != nil {
		return s
	}
	return Detached()
}
