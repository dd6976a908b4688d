package models

import (
	"time"
)

// Session represents one contiguous timed interval of work on a task
type Session struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	TaskID    uint      `gorm:"not null;index" json:"task_id"`
	Owner     string    `gorm:"index" json:"-"`
	StartTime time.Time `gorm:"not null" json:"start_time"`
	EndTime   time.Time `gorm:"not null" json:"end_time"`
	// Duration is always recomputed from StartTime/EndTime, never taken
	// from client input.
	Duration   int    `json:"duration"` // seconds
	Keterangan string `json:"keterangan"`

	// Relationships
	Task Task `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
