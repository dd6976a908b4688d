package db

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mfaridn/lacak/internal/models"
	"github.com/mfaridn/lacak/internal/timeutil"
)

// SessionService owns session create/update/delete. Durations are always
// recomputed from the submitted timestamps.
type SessionService struct {
	db *gorm.DB
}

// NewSessionService creates a session service on top of an open database handle.
func NewSessionService(gdb *gorm.DB) *SessionService {
	return &SessionService{db: gdb}
}

// CreateSessionRequest carries ISO-8601 timestamp strings.
type CreateSessionRequest struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// UpdateSessionRequest carries optional new timestamps (both or neither)
// and an optional annotation. A nil Keterangan leaves the stored value
// untouched; an empty string clears it.
type UpdateSessionRequest struct {
	StartTime  string  `json:"start_time"`
	EndTime    string  `json:"end_time"`
	Keterangan *string `json:"keterangan"`
}

// CreateSession records a completed work interval against owner's task.
func (s *SessionService) CreateSession(taskID uint, owner string, req CreateSessionRequest) (*models.Session, error) {
	if req.StartTime == "" || req.EndTime == "" {
		return nil, validationf("start_time and end_time required (ISO string)")
	}

	start, err := timeutil.ParseTimestamp(req.StartTime)
	if err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}
	end, err := timeutil.ParseTimestamp(req.EndTime)
	if err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}

	// Task must exist and belong to the caller.
	var task models.Task
	err = s.db.Where("owner = ?", owner).First(&task, taskID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	session := models.Session{
		TaskID:    taskID,
		Owner:     owner,
		StartTime: start,
		EndTime:   end,
		Duration:  timeutil.DurationSeconds(start, end),
	}

	if err := s.db.Create(&session).Error; err != nil {
		return nil, err
	}

	return &session, nil
}

// UpdateSession edits a session's times and/or annotation. Timestamps must
// come as a pair so the stored duration can be recomputed.
func (s *SessionService) UpdateSession(taskID, sessionID uint, owner string, req UpdateSessionRequest) (*models.Session, error) {
	var session models.Session
	err := s.db.Where("task_id = ? AND owner = ?", taskID, owner).First(&session, sessionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	changed := false

	switch {
	case req.StartTime != "" && req.EndTime != "":
		start, err := timeutil.ParseTimestamp(req.StartTime)
		if err != nil {
			return nil, &ValidationError{Message: err.Error()}
		}
		end, err := timeutil.ParseTimestamp(req.EndTime)
		if err != nil {
			return nil, &ValidationError{Message: err.Error()}
		}
		session.StartTime = start
		session.EndTime = end
		session.Duration = timeutil.DurationSeconds(start, end)
		changed = true
	case req.StartTime != "" || req.EndTime != "":
		return nil, validationf("both start_time and end_time required when updating time")
	}

	if req.Keterangan != nil {
		session.Keterangan = *req.Keterangan
		changed = true
	}

	if !changed {
		return nil, validationf("no fields to update")
	}

	err = s.db.Model(&session).
		Select("StartTime", "EndTime", "Duration", "Keterangan").
		Updates(&session).Error
	if err != nil {
		return nil, err
	}

	return &session, nil
}

// DeleteSession removes owner's session from a task.
func (s *SessionService) DeleteSession(taskID, sessionID uint, owner string) error {
	res := s.db.Where("task_id = ? AND owner = ?", taskID, owner).Delete(&models.Session{}, sessionID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
