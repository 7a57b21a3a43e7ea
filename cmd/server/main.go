package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/taskboardhq/taskboard/internal/config"
	"github.com/taskboardhq/taskboard/internal/handlers"
	"github.com/taskboardhq/taskboard/internal/server"
	"github.com/taskboardhq/taskboard/internal/session"
	"github.com/taskboardhq/taskboard/internal/store"
	"github.com/taskboardhq/taskboard/internal/view"
	"github.com/taskboardhq/taskboard/middlewares"
	"github.com/taskboardhq/taskboard/pkg/cookie"
	"github.com/taskboardhq/taskboard/pkg/db"
	"github.com/taskboardhq/taskboard/pkg/health"
	"github.com/taskboardhq/taskboard/pkg/logger"
)

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("server exited", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.NewWithSentry(logger.SentryConfig{
		DSN:         cfg.Sentry.DSN,
		Environment: cfg.Server.Environment,
		Level:       logger.ParseLevel(cfg.Server.LogLevel),
	}, middlewares.RequestIDExtractor())

	rendererOpts := []view.RendererOption{
		view.WithGlobals(map[string]any{"appName": "taskboard"}),
	}
	if cfg.Templates.Cache {
		rendererOpts = append(rendererOpts, view.WithCache())
	}
	renderer, err := view.NewRenderer(cfg.Templates.Dir, rendererOpts...)
	if err != nil {
		return err
	}

	cookies := cookie.New(
		cookie.WithSecret(cfg.Session.Secret),
		cookie.WithSecure(cfg.Session.CookieSecure),
	)
	sessions := session.NewProvider(cookies, cfg.Session.CookieName)

	var (
		taskStore store.TaskStore
		checks    = health.Checks{}
		hooks     []func(context.Context) error
	)
	if cfg.Database.URL != "" {
		pool, err := db.Connect(ctx, db.DefaultConfig(cfg.Database.URL))
		if err != nil {
			return err
		}
		if err := db.Migrate(ctx, pool, store.Migrations, log); err != nil {
			return err
		}

		taskStore = store.NewPostgresStore(pool)
		checks["database"] = db.Healthcheck(pool)
		hooks = append(hooks, db.Shutdown(pool))
		log.Info("using postgres task store")
	} else {
		taskStore = store.NewMemoryStore()
		log.Info("using in-memory task store")
	}

	errs := handlers.NewErrorRenderer(renderer, log)
	tasks := handlers.NewTaskHandler(taskStore, renderer, sessions, cookies, errs, log)

	router := server.NewRouter(server.RouterConfig{
		Tasks:     tasks,
		Errors:    errs,
		Logger:    log,
		StaticDir: cfg.Server.StaticDir,
		Checks:    checks,
	})

	return server.Run(ctx, cfg.Server.Addr(), router, log, hooks...)
}
