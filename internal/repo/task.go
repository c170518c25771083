package repo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/crucial707/taskdeck/internal/models"
)

// ErrTaskNotFound covers both a missing task id and a task owned by another
// user. Every ownership check lives in the SQL predicate, so the two cases
// are indistinguishable by construction.
var ErrTaskNotFound = errors.New("task not found")

// ==========================
// TaskRepo
// ==========================
type TaskRepo struct {
	DB *sql.DB
}

func NewTaskRepo(db *sql.DB) *TaskRepo {
	return &TaskRepo{DB: db}
}

// ==========================
// Create Task
// ==========================
func (r *TaskRepo) Create(ctx context.Context, ownerID int, title, description, status string) (models.Task, error) {
	query := `
		INSERT INTO tasks (title, description, status, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, title, description, status, user_id, created_at
	`

	var task models.Task

	err := r.DB.QueryRowContext(ctx, query, title, description, status, ownerID).
		Scan(&task.ID, &task.Title, &task.Description, &task.Status, &task.UserID, &task.CreatedAt)

	if err != nil {
		return models.Task{}, err
	}

	return task, nil
}

// ==========================
// Get Task By ID (owner-scoped)
// ==========================
func (r *TaskRepo) GetByID(ctx context.Context, id, ownerID int) (models.Task, error) {
	query := `
		SELECT id, title, description, status, user_id, created_at
		FROM tasks
		WHERE id = $1 AND user_id = $2
	`

	var task models.Task

	err := r.DB.QueryRowContext(ctx, query, id, ownerID).
		Scan(&task.ID, &task.Title, &task.Description, &task.Status, &task.UserID, &task.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return models.Task{}, ErrTaskNotFound
	}
	if err != nil {
		return models.Task{}, err
	}

	return task, nil
}

// ==========================
// List Tasks For Owner
// ==========================
func (r *TaskRepo) ListForOwner(ctx context.Context, ownerID int) ([]models.Task, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, title, description, status, user_id, created_at
		FROM tasks
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Status, &t.UserID, &t.CreatedAt); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}

// ==========================
// Update Task (owner-scoped)
// ==========================
func (r *TaskRepo) Update(ctx context.Context, id, ownerID int, title, description, status string) (models.Task, error) {
	query := `
		UPDATE tasks
		SET title = $1, description = $2, status = $3
		WHERE id = $4 AND user_id = $5
		RETURNING id, title, description, status, user_id, created_at
	`

	var task models.Task

	err := r.DB.QueryRowContext(ctx, query, title, description, status, id, ownerID).
		Scan(&task.ID, &task.Title, &task.Description, &task.Status, &task.UserID, &task.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return models.Task{}, ErrTaskNotFound
	}
	if err != nil {
		return models.Task{}, err
	}

	return task, nil
}

// ==========================
// Delete Task (owner-scoped)
// ==========================
func (r *TaskRepo) Delete(ctx context.Context, id, ownerID int) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1 AND user_id = $2`, id, ownerID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrTaskNotFound
	}

	return nil
}

// ==========================
// Purge Completed (retention)
// ==========================

// PurgeCompletedBefore deletes completed tasks created more than the given
// number of days ago, across all users. Used by the retention sweep only.
func (r *TaskRepo) PurgeCompletedBefore(ctx context.Context, days int) (int64, error) {
	result, err := r.DB.ExecContext(ctx, `
		DELETE FROM tasks
		WHERE status = 'completed' AND created_at < now() - ($1 * interval '1 day')
	`, days)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
