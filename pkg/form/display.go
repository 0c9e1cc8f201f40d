package form

// DisplayPolicy decides when a field's error message becomes visible.
type DisplayPolicy struct {
	Lazy bool
}

// Show reports whether a message should be visible given the field's
// interaction history.
func (p DisplayPolicy) Show(changed, blurred bool) bool {
	return !p.Lazy || changed || blurred
}
