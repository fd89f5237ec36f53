package models

import "time"

// Priority levels a task can carry.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Status values a task can carry.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

// Task represents a single task
type Task struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Stats summarizes the task collection
type Stats struct {
	Total      int            `json:"total"`
	Pending    int            `json:"pending"`
	Completed  int            `json:"completed"`
	ByPriority map[string]int `json:"by_priority"`
}

// ValidPriority reports whether p is a recognized priority level.
// The store itself does not validate; callers check before writing.
func ValidPriority(p string) bool {
	return p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}

// ValidStatus reports whether s is a recognized status value.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusCompleted
}
