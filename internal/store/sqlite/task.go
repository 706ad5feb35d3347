package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"github.com/todoapi/todoapi/internal/domain"
)

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// TaskRepository handles task persistence operations.
type TaskRepository struct {
	q querier
}

// NewTaskRepository creates a new TaskRepository.
func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{q: db}
}

// List returns every task ordered by numeric id, then by id text. It never
// returns a nil slice.
func (r *TaskRepository) List(ctx context.Context) ([]domain.Task, error) {
	query := `
		SELECT id, user_id, title, is_finished
		FROM tasks
		ORDER BY CAST(id AS INTEGER) ASC, id ASC
	`
	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []domain.Task{}
	for rows.Next() {
		var task domain.Task
		if err := rows.Scan(&task.ID, &task.UserID, &task.Title, &task.IsFinished); err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	return tasks, rows.Err()
}

// GetByID retrieves a task by its ID.
func (r *TaskRepository) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	query := `SELECT id, user_id, title, is_finished FROM tasks WHERE id = ?`

	var task domain.Task
	err := r.q.QueryRowContext(ctx, query, id).
		Scan(&task.ID, &task.UserID, &task.Title, &task.IsFinished)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewTaskNotFoundError(id)
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// Create inserts task. When task.ID is empty the next numeric id is assigned
// and written back into task.
func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) error {
	if task.ID != "" {
		_, err := r.q.ExecContext(ctx,
			`INSERT INTO tasks (id, user_id, title, is_finished) VALUES (?, ?, ?, ?)`,
			task.ID, task.UserID, task.Title, task.IsFinished,
		)
		if isPrimaryKeyViolation(err) {
			return domain.NewTaskExistsError(task.ID)
		}
		return err
	}

	query := `
		INSERT INTO tasks (id, user_id, title, is_finished)
		SELECT CAST(COALESCE(MAX(CAST(id AS INTEGER)), 0) + 1 AS TEXT), ?, ?, ?
		FROM tasks
		RETURNING id
	`
	var id string
	if err := r.q.QueryRowContext(ctx, query, task.UserID, task.Title, task.IsFinished).Scan(&id); err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	task.ID = id
	return nil
}

// Update replaces the stored task with the same ID.
func (r *TaskRepository) Update(ctx context.Context, task *domain.Task) error {
	result, err := r.q.ExecContext(ctx,
		`UPDATE tasks SET user_id = ?, title = ?, is_finished = ? WHERE id = ?`,
		task.UserID, task.Title, task.IsFinished, task.ID,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.NewTaskNotFoundError(task.ID)
	}
	return nil
}

// Seed inserts tasks in order, replacing any stored task with the same ID.
// Tasks without an ID get the next numeric id.
func (r *TaskRepository) Seed(ctx context.Context, tasks []domain.Task) error {
	for i := range tasks {
		task := tasks[i]
		if task.ID == "" {
			if err := r.Create(ctx, &task); err != nil {
				return err
			}
			continue
		}
		_, err := r.q.ExecContext(ctx,
			`INSERT OR REPLACE INTO tasks (id, user_id, title, is_finished) VALUES (?, ?, ?, ?)`,
			task.ID, task.UserID, task.Title, task.IsFinished,
		)
		if err != nil {
			return fmt.Errorf("seed task %s: %w", task.ID, err)
		}
	}
	return nil
}

func isPrimaryKeyViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}
