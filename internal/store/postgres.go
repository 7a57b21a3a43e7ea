package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore is a pgx-backed TaskStore.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a store over an established connection pool.
// The caller owns the pool's lifecycle.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) List(ctx context.Context) ([]Task, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, title, notes, done, created_at
		   FROM tasks
		  ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("store: list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []Task
	for rows.Next() {
		var t Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Notes, &t.Done, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("store: scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: list tasks: %w", err)
	}

	return tasks, nil
}

func (s *PostgresStore) Create(ctx context.Context, title, notes string) (Task, error) {
	var t Task
	err := s.pool.QueryRow(ctx,
		`INSERT INTO tasks (id, title, notes)
		 VALUES ($1, $2, $3)
		 RETURNING id, title, notes, done, created_at`,
		uuid.New(), title, notes,
	).Scan(&t.ID, &t.Title, &t.Notes, &t.Done, &t.CreatedAt)
	if err != nil {
		return Task{}, fmt.Errorf("store: create task: %w", err)
	}

	return t, nil
}

func (s *PostgresStore) Toggle(ctx context.Context, id uuid.UUID) (Task, error) {
	var t Task
	err := s.pool.QueryRow(ctx,
		`UPDATE tasks
		    SET done = NOT done
		  WHERE id = $1
		 RETURNING id, title, notes, done, created_at`,
		id,
	).Scan(&t.ID, &t.Title, &t.Notes, &t.Done, &t.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Task{}, ErrTaskNotFound
	}
	if err != nil {
		return Task{}, fmt.Errorf("store: toggle task: %w", err)
	}

	return t, nil
}

func (s *PostgresStore) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("store: delete task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrTaskNotFound
	}

	return nil
}
