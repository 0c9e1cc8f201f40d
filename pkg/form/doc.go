// Package form aggregates the validity of dynamically mounted fields.
//
// A Form owns a Registry mapping each mounted field to its latest validity
// and calls the owner's callback whenever that mapping changes. The form is
// valid when no entry is false, so an empty form is valid.
//
// Fields find their form through a Scope, passed explicitly or carried in a
// context.Context with WithScope. A field with no scope uses Detached, which
// accepts reports and drops them.
//
//	f := form.New(func(valid bool) { submit.Disabled = !valid },
//	    form.WithSubmit(onSubmit),
//	)
//	defer f.Close()
//
//	email := form.NewField(f, "", []validator.Rule[string]{
//	    validator.StringNotEmpty(),
//	    validator.StringEmailAddress(),
//	})
//	email.SetValue(input)
//	msg := email.DisplayError()
//
// Fields report only when their validity flips, and Unmount removes them
// from the registry exactly once. Error messages are lazy by default: hidden
// until the value changes from its initial value or the field is blurred.
package form
