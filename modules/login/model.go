package login

import (
	"log/slog"

	"github.com/T-Tommy0909/ray-system/pkg/form"
	"github.com/T-Tommy0909/ray-system/pkg/i18n"
	"github.com/T-Tommy0909/ray-system/pkg/validator"
)

const (
	fieldEmail    = "email"
	fieldPassword = "password"
)

// Credentials is the submitted or in-progress login input. Touched lists
// the fields the user has left at least once, Changed the fields whose value
// has ever differed from the initial one.
type Credentials struct {
	Email    string          `json:"email" form:"email"`
	Password string          `json:"password" form:"password"`
	Touched  map[string]bool `json:"touched,omitempty" form:"-"`
	Changed  map[string]bool `json:"changed,omitempty" form:"-"`
}

// Result is what the client needs to render the form: the message to show
// under each field and whether submission is allowed. Changed is sent back
// so the next request carries it.
type Result struct {
	Errors  map[string]string `json:"errors"`
	Changed map[string]bool   `json:"changed"`
	Valid   bool              `json:"valid"`
}

var (
	emailRules    = []validator.Rule[string]{validator.StringNotEmpty()}
	passwordRules = []validator.Rule[string]{validator.StringNotEmpty()}
)

// loginForm is one evaluation of the login form. It lives for a single
// request.
type loginForm struct {
	form     *form.Form
	email    *form.Field[string]
	password *form.Field[string]
	valid    bool
}

func newLoginForm(cfg Config, tr *i18n.Translator, lang string, log *slog.Logger, opts ...form.Option) *loginForm {
	lf := &loginForm{}
	lf.form = form.New(func(valid bool) { lf.valid = valid }, append([]form.Option{
		form.WithIDGenerator(cfg.idGenerator()),
		form.WithLogger(log),
		form.WithAutoComplete("on"),
	}, opts...)...)

	fieldOpts := []form.FieldOption{
		form.WithLazyError(cfg.LazyErrors),
		form.WithMessageFunc(func(verr validator.ValidationError) string {
			return tr.Td(lang, verr.TranslationKey, verr.Message, verr.Args()...)
		}),
	}
	lf.email = form.NewField(lf.form, "", emailRules, fieldOpts...)
	lf.password = form.NewField(lf.form, "", passwordRules, fieldOpts...)
	return lf
}

// fill applies the input. With touchAll every field counts as blurred, as
// on a submit attempt.
func (lf *loginForm) fill(in Credentials, touchAll bool) {
	if in.Changed[fieldEmail] {
		lf.email.MarkChanged()
	}
	if in.Changed[fieldPassword] {
		lf.password.MarkChanged()
	}
	lf.email.SetValue(in.Email)
	lf.password.SetValue(in.Password)
	if touchAll || in.Touched[fieldEmail] {
		lf.email.Blur()
	}
	if touchAll || in.Touched[fieldPassword] {
		lf.password.Blur()
	}
}

func (lf *loginForm) result() Result {
	return Result{
		Errors: map[string]string{
			fieldEmail:    lf.email.DisplayError(),
			fieldPassword: lf.password.DisplayError(),
		},
		Changed: map[string]bool{
			fieldEmail:    lf.email.Changed(),
			fieldPassword: lf.password.Changed(),
		},
		Valid: lf.valid,
	}
}

// validationErrors reports every failing field regardless of display state.
func (lf *loginForm) validationErrors() error {
	var errs validator.ValidationErrors
	fields := []struct {
		name  string
		state form.State
	}{
		{fieldEmail, lf.email.State()},
		{fieldPassword, lf.password.State()},
	}
	for _, f := range fields {
		name, st := f.name, f.state
		if !st.Valid {
			verr := *st.Error
			verr.Field = name
			verr.Message = st.Message
			errs.Add(verr)
		}
	}
	if errs.IsEmpty() {
		return nil
	}
	return errs
}

func (lf *loginForm) close() {
	lf.email.Unmount()
	lf.password.Unmount()
	lf.form.Close()
}
