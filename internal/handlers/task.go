package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/crucial707/taskdeck/internal/metrics"
	"github.com/crucial707/taskdeck/internal/middleware"
	"github.com/crucial707/taskdeck/internal/models"
	"github.com/crucial707/taskdeck/internal/repo"
	"github.com/go-chi/chi/v5"
)

// ==========================
// Task Handler
// ==========================
type TaskHandler struct {
	Repo *repo.TaskRepo
}

// ==========================
// Create Task
// ==========================
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		JSONError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var input struct {
		Title       string `json:"title" validate:"required,min=1,max=200"`
		Description string `json:"description" validate:"max=1000"`
		Status      string `json:"status"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		JSONError(w, "invalid json", http.StatusBadRequest)
		return
	}

	if input.Status == "" {
		input.Status = models.StatusPending
	}
	if !models.ValidStatus(input.Status) {
		JSONValidationError(w, "validation failed",
			map[string]string{"status": "must be pending or completed"}, http.StatusBadRequest)
		return
	}

	if err := validate.Struct(input); err != nil {
		JSONValidationError(w, "validation failed", validationFields(err), http.StatusBadRequest)
		return
	}

	task, err := h.Repo.Create(r.Context(), user.ID, input.Title, input.Description, input.Status)
	if err != nil {
		slog.Error("create task", "error", err, "user_id", user.ID)
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	metrics.IncTasksCreated()
	JSON(w, http.StatusCreated, task)
}

// ==========================
// List Tasks
// ==========================
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		JSONError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	tasks, err := h.Repo.ListForOwner(r.Context(), user.ID)
	if err != nil {
		slog.Error("list tasks", "error", err, "user_id", user.ID)
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	JSON(w, http.StatusOK, tasks)
}

// ==========================
// Get Task
// ==========================
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		JSONError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := taskID(r)
	if err != nil {
		JSONError(w, "invalid task id", http.StatusBadRequest)
		return
	}

	task, err := h.Repo.GetByID(r.Context(), id, user.ID)
	if err != nil {
		if err == repo.ErrTaskNotFound {
			JSONError(w, "task not found", http.StatusNotFound)
			return
		}
		slog.Error("get task", "error", err, "task_id", id, "user_id", user.ID)
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	JSON(w, http.StatusOK, task)
}

// ==========================
// Update Task
// ==========================

// UpdateTask applies a partial patch: only fields present in the body change.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		JSONError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := taskID(r)
	if err != nil {
		JSONError(w, "invalid task id", http.StatusBadRequest)
		return
	}

	var input struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Status      *string `json:"status"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		JSONError(w, "invalid json", http.StatusBadRequest)
		return
	}

	task, err := h.Repo.GetByID(r.Context(), id, user.ID)
	if err != nil {
		if err == repo.ErrTaskNotFound {
			JSONError(w, "task not found", http.StatusNotFound)
			return
		}
		slog.Error("update task: load", "error", err, "task_id", id, "user_id", user.ID)
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Status != nil {
		task.Status = *input.Status
	}

	if !models.ValidStatus(task.Status) {
		JSONValidationError(w, "validation failed",
			map[string]string{"status": "must be pending or completed"}, http.StatusBadRequest)
		return
	}
	if len(task.Title) < 1 || len(task.Title) > 200 {
		JSONValidationError(w, "validation failed",
			map[string]string{"title": "must be 1-200 characters"}, http.StatusBadRequest)
		return
	}
	if len(task.Description) > 1000 {
		JSONValidationError(w, "validation failed",
			map[string]string{"description": "must be at most 1000 characters"}, http.StatusBadRequest)
		return
	}

	updated, err := h.Repo.Update(r.Context(), id, user.ID, task.Title, task.Description, task.Status)
	if err != nil {
		if err == repo.ErrTaskNotFound {
			JSONError(w, "task not found", http.StatusNotFound)
			return
		}
		slog.Error("update task", "error", err, "task_id", id, "user_id", user.ID)
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	JSON(w, http.StatusOK, updated)
}

// ==========================
// Delete Task
// ==========================
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		JSONError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := taskID(r)
	if err != nil {
		JSONError(w, "invalid task id", http.StatusBadRequest)
		return
	}

	if err := h.Repo.Delete(r.Context(), id, user.ID); err != nil {
		if err == repo.ErrTaskNotFound {
			JSONError(w, "task not found", http.StatusNotFound)
			return
		}
		slog.Error("delete task", "error", err, "task_id", id, "user_id", user.ID)
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	JSON(w, http.StatusOK, map[string]string{"message": "task deleted"})
}

func taskID(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "id"))
}
