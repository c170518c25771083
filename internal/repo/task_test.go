package repo

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestTaskRepo_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO tasks \(title, description, status, user_id\)`).
		WithArgs("Buy milk", "", "pending", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "description", "status", "user_id", "created_at"}).
			AddRow(10, "Buy milk", "", "pending", 1, now))

	repo := NewTaskRepo(db)
	task, err := repo.Create(context.Background(), 1, "Buy milk", "", "pending")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if task.ID != 10 || task.Title != "Buy milk" || task.Status != "pending" || task.UserID != 1 {
		t.Errorf("unexpected task: %+v", task)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestTaskRepo_GetByID_OwnedByOtherUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	// The WHERE clause carries both id and user_id, so a task owned by
	// someone else comes back as no rows, same as a missing id.
	mock.ExpectQuery(`SELECT id, title, description, status, user_id, created_at`).
		WithArgs(10, 2).
		WillReturnError(sql.ErrNoRows)

	repo := NewTaskRepo(db)
	_, err = repo.GetByID(context.Background(), 10, 2)
	if err != ErrTaskNotFound {
		t.Errorf("expected ErrTaskNotFound, got: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestTaskRepo_ListForOwner(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`SELECT id, title, description, status, user_id, created_at`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "description", "status", "user_id", "created_at"}).
			AddRow(2, "newer", "", "pending", 1, now).
			AddRow(1, "older", "", "completed", 1, now.Add(-time.Hour)))

	repo := NewTaskRepo(db)
	tasks, err := repo.ListForOwner(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListForOwner: %v", err)
	}
	if len(tasks) != 2 || tasks[0].Title != "newer" {
		t.Errorf("unexpected tasks: %+v", tasks)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestTaskRepo_ListForOwner_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT id, title, description, status, user_id, created_at`).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "description", "status", "user_id", "created_at"}))

	repo := NewTaskRepo(db)
	tasks, err := repo.ListForOwner(context.Background(), 7)
	if err != nil {
		t.Fatalf("ListForOwner: %v", err)
	}
	if tasks == nil || len(tasks) != 0 {
		t.Errorf("expected empty non-nil slice, got: %#v", tasks)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestTaskRepo_Update_NotOwned(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`UPDATE tasks`).
		WithArgs("new title", "", "completed", 10, 2).
		WillReturnError(sql.ErrNoRows)

	repo := NewTaskRepo(db)
	_, err = repo.Update(context.Background(), 10, 2, "new title", "", "completed")
	if err != ErrTaskNotFound {
		t.Errorf("expected ErrTaskNotFound, got: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestTaskRepo_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(`DELETE FROM tasks WHERE id = \$1 AND user_id = \$2`).
		WithArgs(10, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewTaskRepo(db)
	if err := repo.Delete(context.Background(), 10, 1); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestTaskRepo_Delete_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(`DELETE FROM tasks WHERE id = \$1 AND user_id = \$2`).
		WithArgs(99, 1).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewTaskRepo(db)
	if err := repo.Delete(context.Background(), 99, 1); err != ErrTaskNotFound {
		t.Errorf("expected ErrTaskNotFound, got: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestTaskRepo_PurgeCompletedBefore(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(`DELETE FROM tasks`).
		WithArgs(30).
		WillReturnResult(sqlmock.NewResult(0, 4))

	repo := NewTaskRepo(db)
	n, err := repo.PurgeCompletedBefore(context.Background(), 30)
	if err != nil {
		t.Fatalf("PurgeCompletedBefore: %v", err)
	}
	if n != 4 {
		t.Errorf("purged: got %d, want 4", n)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}
