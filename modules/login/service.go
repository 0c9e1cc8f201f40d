package login

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/T-Tommy0909/ray-system/handler"
	"github.com/T-Tommy0909/ray-system/pkg/binder"
	"github.com/T-Tommy0909/ray-system/pkg/form"
	"github.com/T-Tommy0909/ray-system/pkg/i18n"
	"github.com/T-Tommy0909/ray-system/pkg/logger"
)

const (
	PathLogin    = "/login"
	PathValidate = "/login/validate"
)

// Service serves the login page, its live validation endpoint and the
// credential check.
type Service struct {
	cfg          Config
	auth         Authenticator
	translator   *i18n.Translator
	views        *Views
	logger       *slog.Logger
	errorHandler handler.ErrorHandler[handler.Context]
}

type Option func(*Service)

func WithViews(v *Views) Option {
	return func(s *Service) {
		if v != nil && v.Page != nil && v.Form != nil {
			s.views = v
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

func WithErrorHandler(h handler.ErrorHandler[handler.Context]) Option {
	return func(s *Service) {
		if h != nil {
			s.errorHandler = h
		}
	}
}

func NewService(cfg Config, auth Authenticator, tr *i18n.Translator, opts ...Option) (*Service, error) {
	if auth == nil {
		return nil, ErrNilAuthenticator
	}
	if tr == nil {
		return nil, ErrNilTranslator
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	s := &Service{
		cfg:        cfg,
		auth:       auth,
		translator: tr,
		views:      DefaultViews(),
		logger:     logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(logger.Component("login"))
	if s.errorHandler == nil {
		s.errorHandler = handler.NewErrorHandler(s.logger, handler.ErrorHandlerConfig{
			Translate: func(ctx context.Context, key string) string { return tr.Tc(ctx, key) },
		})
	}
	return s, nil
}

// Handle returns the module router. Locale negotiation runs first so that
// every message is rendered in the client's language.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()
	r.Use(i18n.Middleware(s.translator, i18n.DefaultLangExtractor()))

	r.Get(PathLogin, handler.Wrap(s.page,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))
	r.Post(PathValidate, handler.Wrap(s.validate,
		handler.WithBinders[handler.Context, Credentials](binder.Signals(), binder.JSON(), binder.Form()),
		handler.WithErrorHandler[handler.Context, Credentials](s.errorHandler),
	))
	r.Post(PathLogin, handler.Wrap(s.submit,
		handler.WithBinders[handler.Context, Credentials](binder.Signals(), binder.JSON(), binder.Form()),
		handler.WithErrorHandler[handler.Context, Credentials](s.errorHandler),
	))
	return r
}

// Ready fails when the default language lacks the login messages.
func (s *Service) Ready(context.Context) error {
	if !s.translator.HasTranslation(s.translator.DefaultLanguage(), "login.failed") {
		return ErrMissingLocale
	}
	return nil
}

func (s *Service) page(ctx handler.Context, _ struct{}) handler.Response {
	lang := i18n.GetLocale(ctx)
	lf := newLoginForm(s.cfg, s.translator, lang, s.logger)
	defer lf.close()

	params := s.params(lang, "", lf)
	return handler.TemplPartial(s.views.Form(params), s.views.Page(params), handler.WithTarget("#login-form"))
}

func (s *Service) validate(ctx handler.Context, in Credentials) handler.Response {
	lf := newLoginForm(s.cfg, s.translator, i18n.GetLocale(ctx), s.logger)
	defer lf.close()

	lf.fill(in, false)
	return handler.Signals(lf.result(), http.StatusOK)
}

func (s *Service) submit(ctx handler.Context, in Credentials) handler.Response {
	lang := i18n.GetLocale(ctx)

	var (
		lf   *loginForm
		resp handler.Response
	)
	lf = newLoginForm(s.cfg, s.translator, lang, s.logger, form.WithSubmit(func() {
		resp = s.authenticate(ctx, lang, lf, in)
	}))
	defer lf.close()

	lf.fill(in, true)
	lf.form.Submit()
	return resp
}

// authenticate runs on Submit and gates on the latest reported validity.
func (s *Service) authenticate(ctx handler.Context, lang string, lf *loginForm, in Credentials) handler.Response {
	r := ctx.Request()

	if !lf.valid {
		result := lf.result()
		switch {
		case handler.IsDataStar(r):
			return handler.Signals(result, http.StatusUnprocessableEntity)
		case handler.WantsJSON(r):
			return handler.JSONError(lf.validationErrors())
		default:
			return handler.TemplStatus(http.StatusUnprocessableEntity, s.views.Page(s.params(lang, in.Email, lf)))
		}
	}

	err := s.auth.Authenticate(ctx, in.Email, in.Password)
	switch {
	case err == nil:
		s.logger.InfoContext(ctx, "login succeeded", logger.Email(in.Email))
		return handler.Redirect(s.cfg.RedirectURL)

	case errors.Is(err, ErrInvalidCredentials):
		s.logger.InfoContext(ctx, "login rejected", logger.Email(in.Email))
		msg := s.translator.T(lang, "login.failed")
		switch {
		case handler.IsDataStar(r):
			return handler.Signals(map[string]any{"error": msg}, http.StatusUnauthorized)
		case handler.WantsJSON(r):
			return handler.JSONError(handler.NewHTTPError(http.StatusUnauthorized, "login.failed"), handler.WithErrorMessage(msg))
		default:
			params := s.params(lang, in.Email, lf)
			params.FormError = msg
			return handler.TemplStatus(http.StatusUnauthorized, s.views.Page(params))
		}

	default:
		return errorResponse{err: err, handle: s.errorHandler, ctx: ctx}
	}
}

func (s *Service) params(lang, email string, lf *loginForm) ViewParams {
	return ViewParams{
		Lang:         lang,
		Email:        email,
		Result:       lf.result(),
		AutoComplete: lf.form.AutoComplete(),
		ValidateURL:  PathValidate,
		SubmitURL:    PathLogin,
		T:            func(key string) string { return s.translator.T(lang, key) },
	}
}

// errorResponse defers an unexpected error to the error handler.
type errorResponse struct {
	err    error
	handle handler.ErrorHandler[handler.Context]
	ctx    handler.Context
}

func (e errorResponse) Render(http.ResponseWriter, *http.Request) error {
	e.handle(e.ctx, e.err)
	return nil
}
