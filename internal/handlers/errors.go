package handlers

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/taskboardhq/taskboard/internal/view"
	"github.com/taskboardhq/taskboard/pkg/htmx"
)

// ErrorRenderer renders user-visible failures through the same template
// pipeline as regular pages, so both enhanced and non-enhanced clients
// get a styled error instead of a raw status text. If even the error
// template cannot be rendered it falls back to http.Error.
type ErrorRenderer struct {
	renderer *view.Renderer
	log      *slog.Logger
}

// NewErrorRenderer creates an ErrorRenderer.
func NewErrorRenderer(renderer *view.Renderer, log *slog.Logger) *ErrorRenderer {
	return &ErrorRenderer{renderer: renderer, log: log}
}

// Internal renders the generic 500 page and logs the cause.
func (e *ErrorRenderer) Internal(w http.ResponseWriter, r *http.Request, err error) {
	if err != nil {
		e.log.ErrorContext(r.Context(), "request failed", slog.Any("error", err))
	}
	e.renderStatus(w, r, http.StatusInternalServerError, "Something went wrong on our side.")
}

// NotFound renders the 404 page.
func (e *ErrorRenderer) NotFound(w http.ResponseWriter, r *http.Request) {
	e.renderStatus(w, r, http.StatusNotFound, "That page does not exist.")
}

func (e *ErrorRenderer) renderStatus(w http.ResponseWriter, r *http.Request, status int, message string) {
	ctx := view.Enrich(view.Context{
		"status":  status,
		"message": message,
	}, "", htmx.IsRequest(r))

	html, err := e.renderer.Render("error", ctx)
	if err != nil {
		// Last resort: the error template itself is broken or missing.
		e.log.ErrorContext(r.Context(), "error page render failed", slog.Any("error", err))
		http.Error(w, http.StatusText(status), status)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, html)
}
