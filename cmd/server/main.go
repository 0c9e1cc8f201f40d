package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/T-Tommy0909/ray-system/modules/login"
	"github.com/T-Tommy0909/ray-system/pkg/config"
	"github.com/T-Tommy0909/ray-system/pkg/httpserver"
	"github.com/T-Tommy0909/ray-system/pkg/i18n"
	"github.com/T-Tommy0909/ray-system/pkg/logger"
	"github.com/T-Tommy0909/ray-system/pkg/requestid"
)

func main() {
	// .env is optional; real environment variables win.
	if err := config.LoadEnv(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env", logger.Error(err))
	}

	var (
		app      appConfig
		httpCfg  httpserver.Config
		loginCfg login.Config
	)
	config.MustLoad(&app)
	config.MustLoad(&httpCfg)
	config.MustLoad(&loginCfg)

	log := logger.New(
		logger.WithEnvironment(app.Env, app.ServiceName),
		logger.WithLevelName(app.LogLevel),
		logger.WithContextExtractors(requestid.LoggerExtractor(), i18n.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	if err := run(context.Background(), log, app, httpCfg, loginCfg); err != nil {
		log.Error("server stopped with error", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, log *slog.Logger, app appConfig, httpCfg httpserver.Config, loginCfg login.Config) error {
	tr, err := login.NewTranslator(ctx,
		i18n.WithDefaultLanguage(loginCfg.DefaultLanguage),
		i18n.WithLogger(log),
		i18n.WithMissingTranslationsLogging(app.Env != logger.Production),
	)
	if err != nil {
		return err
	}

	dir := login.NewMemoryDirectory(app.BcryptCost)
	if err := dir.Seed(ctx, app.SeedUsers, app.SeedPass); err != nil {
		return err
	}
	log.Info("user directory seeded", slog.Int("users", dir.Len()))

	svc, err := login.NewService(loginCfg, dir, tr, login.WithLogger(log))
	if err != nil {
		return err
	}

	srv := httpserver.NewFromConfig(httpCfg, httpserver.WithLogger(log))
	return srv.Run(ctx, newRouter(log, svc))
}

func newRouter(log *slog.Logger, svc *login.Service) http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware())
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)

	r.Get("/health/live", httpserver.HealthCheckHandler(log))
	r.Get("/health/ready", httpserver.HealthCheckHandler(log, svc.Ready))
	r.Mount("/", svc.Handle())
	return r
}
