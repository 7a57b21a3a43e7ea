package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/taskboardhq/taskboard/internal/session"
	"github.com/taskboardhq/taskboard/internal/store"
	"github.com/taskboardhq/taskboard/internal/view"
	"github.com/taskboardhq/taskboard/pkg/cookie"
	"github.com/taskboardhq/taskboard/pkg/htmx"
)

// tasksURL is the canonical read URL mutations redirect back to.
const tasksURL = "/tasks"

// createTaskForm carries the create-task form fields.
type createTaskForm struct {
	Title string `validate:"required,max=200"`
	Notes string `validate:"max=4000"`
}

// taskView is the shape tasks take inside template context. Notes are
// pre-rendered to sanitized HTML here so templates only ever mark
// trusted values |safe.
type taskView struct {
	ID        string
	Title     string
	Done      bool
	CreatedAt time.Time
	NotesHTML string
}

func newTaskView(t store.Task) taskView {
	return taskView{
		ID:        t.ID.String(),
		Title:     t.Title,
		Done:      t.Done,
		CreatedAt: t.CreatedAt,
		NotesHTML: view.RenderMarkdown(t.Notes),
	}
}

func taskViews(tasks []store.Task) []taskView {
	out := make([]taskView, len(tasks))
	for i, t := range tasks {
		out[i] = newTaskView(t)
	}
	return out
}

// TaskHandler serves the task pages. All collaborators arrive through
// the constructor; nothing is reached through globals.
type TaskHandler struct {
	store    store.TaskStore
	renderer *view.Renderer
	sessions *session.Provider
	cookies  *cookie.Manager
	errors   *ErrorRenderer
	log      *slog.Logger
	validate *validator.Validate
}

// NewTaskHandler creates a task handler with injected dependencies.
func NewTaskHandler(
	taskStore store.TaskStore,
	renderer *view.Renderer,
	sessions *session.Provider,
	cookies *cookie.Manager,
	errs *ErrorRenderer,
	log *slog.Logger,
) *TaskHandler {
	return &TaskHandler{
		store:    taskStore,
		renderer: renderer,
		sessions: sessions,
		cookies:  cookies,
		errors:   errs,
		log:      log,
		validate: validator.New(),
	}
}

// Routes declares the task routes.
func (h *TaskHandler) Routes(r chi.Router) {
	r.Get("/", h.home)
	r.Route(tasksURL, func(r chi.Router) {
		r.Get("/", h.list)
		r.Post("/", h.create)
		r.Post("/{id}/toggle", h.toggle)
		r.Post("/{id}/delete", h.delete)
		r.Delete("/{id}", h.delete)
	})
}

// home sends the bare root to the canonical task list.
func (h *TaskHandler) home(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, tasksURL, http.StatusSeeOther)
}

// list renders the task list: the full page for standard navigation,
// only the list fragment for enhanced requests.
func (h *TaskHandler) list(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.store.List(r.Context())
	if err != nil {
		h.errors.Internal(w, r, err)
		return
	}

	ctx := view.Context{
		"title": "Tasks",
		"tasks": taskViews(tasks),
	}

	if htmx.IsRequest(r) {
		h.render(w, r, http.StatusOK, "tasks/_list", ctx)
		return
	}

	// Flash notices only make sense on a full page render; fragments
	// replace a region that has no notice slot.
	var notice string
	if err := h.cookies.Flash(w, r, "notice", &notice); err == nil && notice != "" {
		ctx["notice"] = notice
	}
	var formError string
	if err := h.cookies.Flash(w, r, "error", &formError); err == nil && formError != "" {
		ctx["formError"] = formError
	}

	h.render(w, r, http.StatusOK, "tasks/index", ctx)
}

// create adds a task. Enhanced clients get the updated list fragment
// back directly; standard clients get a POST-redirect-GET to the
// canonical read URL, so a reload never re-submits.
func (h *TaskHandler) create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.errors.Internal(w, r, err)
		return
	}

	form := createTaskForm{
		Title: strings.TrimSpace(r.PostFormValue("title")),
		Notes: strings.TrimSpace(r.PostFormValue("notes")),
	}

	if err := h.validate.Struct(form); err != nil {
		h.rejectCreate(w, r, form)
		return
	}

	if _, err := h.store.Create(r.Context(), form.Title, form.Notes); err != nil {
		h.errors.Internal(w, r, err)
		return
	}

	if htmx.IsRequest(r) {
		h.listFragment(w, r)
		return
	}

	_ = h.cookies.SetFlash(w, "notice", "Task created.")
	htmx.Redirect(w, r, tasksURL)
}

// rejectCreate re-presents the form with a validation message, in the
// shape appropriate for the client.
func (h *TaskHandler) rejectCreate(w http.ResponseWriter, r *http.Request, form createTaskForm) {
	const message = "A task needs a title (at most 200 characters)."

	if htmx.IsRequest(r) {
		// Replace the form in place instead of the list region the
		// form normally targets.
		w.Header().Set(htmx.HeaderHXRetarget, "#task-form")
		w.Header().Set(htmx.HeaderHXReswap, "outerHTML")
		h.render(w, r, http.StatusOK, "tasks/_form", view.Context{
			"formError": message,
			"form":      map[string]string{"title": form.Title, "notes": form.Notes},
		})
		return
	}

	_ = h.cookies.SetFlash(w, "error", message)
	htmx.Redirect(w, r, tasksURL)
}

// toggle flips a task's done flag.
func (h *TaskHandler) toggle(w http.ResponseWriter, r *http.Request) {
	id, ok := h.taskID(w, r)
	if !ok {
		return
	}

	if _, err := h.store.Toggle(r.Context(), id); err != nil {
		h.storeError(w, r, err)
		return
	}

	h.mutationResponse(w, r)
}

// delete removes a task.
func (h *TaskHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.taskID(w, r)
	if !ok {
		return
	}

	if err := h.store.Delete(r.Context(), id); err != nil {
		h.storeError(w, r, err)
		return
	}

	if !htmx.IsRequest(r) {
		_ = h.cookies.SetFlash(w, "notice", "Task deleted.")
	}
	h.mutationResponse(w, r)
}

// mutationResponse finishes a successful write: updated fragment for
// enhanced clients, POST-redirect-GET for everyone else. Either way the
// client ends up observing the same rendered list state.
func (h *TaskHandler) mutationResponse(w http.ResponseWriter, r *http.Request) {
	if htmx.IsRequest(r) {
		h.listFragment(w, r)
		return
	}
	htmx.Redirect(w, r, tasksURL)
}

// listFragment renders the current task list as a fragment.
func (h *TaskHandler) listFragment(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.store.List(r.Context())
	if err != nil {
		h.errors.Internal(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, "tasks/_list", view.Context{"tasks": taskViews(tasks)})
}

// render pairs the request with its session identity, enriches the
// context, evaluates the template, and writes the response. Identity
// resolution happens before the first byte so a fresh cookie can still
// make it onto the response.
func (h *TaskHandler) render(w http.ResponseWriter, r *http.Request, status int, name string, ctx view.Context) {
	identity := h.sessions.GetOrCreate(w, r)
	enriched := view.Enrich(ctx, identity.ID, htmx.IsRequest(r))

	html, err := h.renderer.Render(name, enriched)
	if err != nil {
		h.errors.Internal(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, html)
}

// taskID parses the id path parameter, rendering 404 on garbage.
func (h *TaskHandler) taskID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.errors.NotFound(w, r)
		return uuid.Nil, false
	}
	return id, true
}

// storeError maps store failures to the right error page.
func (h *TaskHandler) storeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, store.ErrTaskNotFound) {
		h.errors.NotFound(w, r)
		return
	}
	h.errors.Internal(w, r, err)
}
