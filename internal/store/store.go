// Package store owns task persistence. Handlers consume it through the
// narrow TaskStore interface and never assume a particular backend; the
// in-memory store keeps the app runnable with zero infrastructure,
// while the postgres store is selected when a database URL is
// configured.
package store

import (
	"context"
	"embed"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Errors.
var (
	ErrTaskNotFound = errors.New("store: task not found")
)

// Task is a single task entity.
type Task struct {
	ID        uuid.UUID
	Title     string
	Notes     string // raw markdown as submitted
	Done      bool
	CreatedAt time.Time
}

// TaskStore is the persistence contract the handlers depend on.
type TaskStore interface {
	// List returns all tasks in creation order.
	List(ctx context.Context) ([]Task, error)

	// Create stores a new task and returns it with ID and timestamp set.
	Create(ctx context.Context, title, notes string) (Task, error)

	// Toggle flips the done flag and returns the updated task.
	// Returns ErrTaskNotFound for an unknown ID.
	Toggle(ctx context.Context, id uuid.UUID) (Task, error)

	// Delete removes a task. Returns ErrTaskNotFound for an unknown ID.
	Delete(ctx context.Context, id uuid.UUID) error
}

// Migrations holds the goose migration files for the postgres store.
//
//go:embed migrations/*.sql
var Migrations embed.FS
