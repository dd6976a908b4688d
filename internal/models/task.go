package models

import (
	"time"
)

// Task statuses
const (
	StatusActive    = "active"
	StatusCompleted = "completed"
)

// Task represents a unit of trackable work
type Task struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Owner       string     `gorm:"index" json:"-"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `json:"description"`
	Status      string     `gorm:"default:active" json:"status"` // active, completed
	CompletedAt *time.Time `json:"completed_at"`

	// Relationships
	Sessions []Session `gorm:"foreignKey:TaskID" json:"sessions,omitempty"`
}

// IsCompleted reports whether the task has been marked completed.
func (t *Task) IsCompleted() bool {
	return t.Status == StatusCompleted
}
