package models

import (
	"time"
)

// RunningTask marks a task currently being timed for an owner.
// The unique index on Owner is what guarantees the at-most-one-running-task
// invariant even across multiple stateless server instances.
type RunningTask struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	TaskID    uint      `gorm:"not null" json:"task_id"`
	Owner     string    `gorm:"uniqueIndex" json:"-"`
	StartTime time.Time `gorm:"not null" json:"start_time"`

	// Relationships
	Task Task `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
