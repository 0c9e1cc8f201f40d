package login

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// ViewParams is everything the login views render.
type ViewParams struct {
	Lang         string
	Email        string
	Result       Result
	FormError    string
	AutoComplete string
	ValidateURL  string
	SubmitURL    string
	// T translates a key in Lang.
	T func(key string) string
}

// Views lets the application supply its own markup.
type Views struct {
	// Page is the full document served to plain requests.
	Page func(ViewParams) templ.Component
	// Form is the #login-form fragment patched into DataStar clients.
	Form func(ViewParams) templ.Component
}

// DefaultViews renders a minimal page wired to the DataStar client.
func DefaultViews() *Views {
	return &Views{Page: defaultPage, Form: defaultForm}
}

func defaultPage(p ViewParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<!DOCTYPE html><html lang="%s"><head><meta charset="utf-8"><title>%s</title>`+
				`<script type="module" src="https://cdn.jsdelivr.net/gh/starfederation/datastar@main/bundles/datastar.js"></script>`+
				`</head><body><main><h1>%s</h1>`,
			templ.EscapeString(p.Lang), templ.EscapeString(p.T("login.title")), templ.EscapeString(p.T("login.title")),
		); err != nil {
			return err
		}
		if err := defaultForm(p).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main></body></html>`)
		return err
	})
}

func defaultForm(p ViewParams) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		signals, err := json.Marshal(map[string]any{
			"email":    p.Email,
			"password": "",
			"touched":  map[string]bool{},
			"changed":  p.Result.Changed,
			"errors":   p.Result.Errors,
			"valid":    p.Result.Valid,
			"error":    p.FormError,
		})
		if err != nil {
			return err
		}

		validate := fmt.Sprintf("@post('%s')", p.ValidateURL)
		_, err = fmt.Fprintf(w,
			`<form id="login-form" method="post" action="%[1]s" autocomplete="%[2]s" novalidate `+
				`data-signals="%[3]s" data-on-submit="@post('%[1]s')">`+
				`<p class="form-error" data-text="$error">%[4]s</p>`+
				`%[5]s%[6]s`+
				`<button type="submit" data-attr-disabled="!$valid"%[7]s>%[8]s</button>`+
				`</form>`,
			templ.EscapeString(p.SubmitURL),
			templ.EscapeString(p.AutoComplete),
			templ.EscapeString(string(signals)),
			templ.EscapeString(p.FormError),
			field(fieldEmail, "email", "email", p.T("login.email"), p.Email, p.Result.Errors[fieldEmail], validate),
			field(fieldPassword, "password", "current-password", p.T("login.password"), "", p.Result.Errors[fieldPassword], validate),
			disabledAttr(!p.Result.Valid),
			templ.EscapeString(p.T("login.submit")),
		)
		return err
	})
}

func field(name, typ, autoComplete, label, value, errMsg, validate string) string {
	return fmt.Sprintf(
		`<div class="input-area"><label for="%[1]s">%[2]s</label>`+
			`<input id="%[1]s" name="%[1]s" type="%[3]s" autocomplete="%[4]s" placeholder="%[1]s" value="%[5]s" `+
			`data-bind-%[1]s data-on-input__debounce.300ms="%[6]s" data-on-blur="$touched.%[1]s = true; %[6]s">`+
			`<p class="field-error" data-text="$errors.%[1]s">%[7]s</p></div>`,
		name,
		templ.EscapeString(label),
		typ,
		autoComplete,
		templ.EscapeString(value),
		templ.EscapeString(validate),
		templ.EscapeString(errMsg),
	)
}

func disabledAttr(disabled bool) string {
	if disabled {
		return " disabled"
	}
	return ""
}
