package models

import "time"

// Task status values accepted at the API boundary.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

// ValidStatus reports whether s is one of the accepted task statuses.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusCompleted
}

type Task struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	UserID      int       `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
}
