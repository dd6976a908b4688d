package db

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/mfaridn/lacak/internal/models"
)

// RunningTaskService enforces the at-most-one running task per owner rule.
// Starting a task supersedes any marker the owner already holds: the old
// marker is removed and the new one inserted in a single transaction.
type RunningTaskService struct {
	db *gorm.DB
}

// NewRunningTaskService creates a running-task service on top of an open
// database handle.
func NewRunningTaskService(gdb *gorm.DB) *RunningTaskService {
	return &RunningTaskService{db: gdb}
}

// RunningTaskInfo is a marker enriched with its task's title and
// description for display.
type RunningTaskInfo struct {
	models.RunningTask
	TaskTitle       string `json:"task_title"`
	TaskDescription string `json:"task_description"`
}

// Start places a running marker on owner's task, superseding any marker the
// owner currently holds. A concurrent duplicate insert surfaces as a
// ConflictError thanks to the unique index on owner.
func (s *RunningTaskService) Start(taskID uint, owner string) (*models.RunningTask, error) {
	// Task must exist and belong to the caller.
	var task models.Task
	err := s.db.Where("owner = ?", owner).First(&task, taskID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	marker := models.RunningTask{
		TaskID:    taskID,
		Owner:     owner,
		StartTime: time.Now(),
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("owner = ?", owner).Delete(&models.RunningTask{}).Error; err != nil {
			return err
		}
		return tx.Create(&marker).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, conflictf("task is already running")
		}
		return nil, err
	}

	return &marker, nil
}

// Stop removes the marker for (taskID, owner) and returns it so the caller
// can build a session from its start time. Stopping a task that is not
// running is not an error; the returned marker is nil.
func (s *RunningTaskService) Stop(taskID uint, owner string) (*models.RunningTask, error) {
	var marker models.RunningTask
	err := s.db.Where("task_id = ? AND owner = ?", taskID, owner).First(&marker).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := s.db.Delete(&models.RunningTask{}, marker.ID).Error; err != nil {
		return nil, err
	}

	return &marker, nil
}

// List returns owner's running marker (zero or one row by construction),
// enriched with task details. A marker whose task row has vanished still
// lists, with a placeholder title.
func (s *RunningTaskService) List(owner string) ([]RunningTaskInfo, error) {
	var markers []models.RunningTask
	err := s.db.Where("owner = ?", owner).
		Order("created_at DESC").
		Find(&markers).Error
	if err != nil {
		return nil, err
	}

	result := make([]RunningTaskInfo, 0, len(markers))
	for _, marker := range markers {
		info := RunningTaskInfo{
			RunningTask: marker,
			TaskTitle:   "Unknown Task",
		}

		var task models.Task
		err := s.db.Where("owner = ?", owner).First(&task, marker.TaskID).Error
		if err == nil {
			info.TaskTitle = task.Title
			info.TaskDescription = task.Description
		}

		result = append(result, info)
	}

	return result, nil
}

// Count returns how many markers owner holds: 0 or 1.
func (s *RunningTaskService) Count(owner string) (int64, error) {
	var count int64
	err := s.db.Model(&models.RunningTask{}).Where("owner = ?", owner).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
