package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taskboardhq/taskboard/internal/handlers"
	"github.com/taskboardhq/taskboard/middlewares"
	"github.com/taskboardhq/taskboard/pkg/health"
)

// RouterConfig gathers everything the router composes.
type RouterConfig struct {
	Tasks     *handlers.TaskHandler
	Errors    *handlers.ErrorRenderer
	Logger    *slog.Logger
	StaticDir string
	Checks    health.Checks
}

// NewRouter builds the chi router: middleware stack, health endpoints,
// static assets, and the task routes.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middlewares.RequestID())
	r.Use(middlewares.AccessLog(cfg.Logger))
	r.Use(middlewares.Recover(cfg.Logger, func(w http.ResponseWriter, req *http.Request) {
		cfg.Errors.Internal(w, req, nil)
	}))

	r.Get("/healthz", health.LivenessHandler())
	r.Get("/readyz", health.ReadinessHandler(cfg.Checks, health.WithLogger(cfg.Logger)))

	// Static assets are immutable files outside the rendering core.
	fileServer := http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir)))
	r.Get("/static/*", fileServer.ServeHTTP)

	cfg.Tasks.Routes(r)

	r.NotFound(cfg.Errors.NotFound)

	return r
}
