package db

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/mfaridn/lacak/internal/models"
	"github.com/mfaridn/lacak/internal/timeutil"
)

// TaskService owns task CRUD and per-task session aggregates.
type TaskService struct {
	db *gorm.DB
}

// NewTaskService creates a task service on top of an open database handle.
func NewTaskService(gdb *gorm.DB) *TaskService {
	return &TaskService{db: gdb}
}

// CreateTaskRequest holds the data needed to create a new task
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// UpdateTaskRequest holds the data for a task update. Title is required;
// Status, when present, must be "active" or "completed".
type UpdateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// TaskWithAggregates is a task augmented with its session rollup.
type TaskWithAggregates struct {
	models.Task
	TotalDuration         int        `json:"total_duration"`
	TotalDurationReadable string     `json:"total_duration_readable"`
	FirstStart            *time.Time `json:"first_start"`
	LastEnd               *time.Time `json:"last_end"`
	SessionsCount         int        `json:"sessions_count"`
}

// CreateTask creates a new active task for owner.
func (s *TaskService) CreateTask(owner string, req CreateTaskRequest) (*models.Task, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, validationf("title required")
	}

	task := models.Task{
		Owner:       owner,
		Title:       req.Title,
		Description: req.Description,
		Status:      models.StatusActive,
	}

	if err := s.db.Create(&task).Error; err != nil {
		return nil, err
	}

	return &task, nil
}

// ListTasks returns all of owner's tasks, active before completed, newest
// first within each status, each augmented with its session aggregates.
// A failed aggregate lookup degrades that task to zero aggregates instead
// of failing the whole list.
func (s *TaskService) ListTasks(owner string) ([]TaskWithAggregates, error) {
	var tasks []models.Task
	err := s.db.Where("owner = ?", owner).
		Order("status ASC").
		Order("created_at DESC").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}

	result := make([]TaskWithAggregates, 0, len(tasks))
	for _, task := range tasks {
		agg := TaskWithAggregates{
			Task:                  task,
			TotalDurationReadable: timeutil.SecondsToString(0),
		}

		var sessions []models.Session
		if err := s.db.Where("task_id = ? AND owner = ?", task.ID, owner).Find(&sessions).Error; err != nil {
			result = append(result, agg)
			continue
		}

		for _, sess := range sessions {
			agg.TotalDuration += sess.Duration
			if agg.FirstStart == nil || sess.StartTime.Before(*agg.FirstStart) {
				start := sess.StartTime
				agg.FirstStart = &start
			}
			if agg.LastEnd == nil || sess.EndTime.After(*agg.LastEnd) {
				end := sess.EndTime
				agg.LastEnd = &end
			}
		}
		agg.SessionsCount = len(sessions)
		agg.TotalDurationReadable = timeutil.SecondsToString(agg.TotalDuration)

		result = append(result, agg)
	}

	return result, nil
}

// GetTask returns owner's task with its sessions ordered by start time.
func (s *TaskService) GetTask(id uint, owner string) (*models.Task, []models.Session, error) {
	task, err := s.findTask(id, owner)
	if err != nil {
		return nil, nil, err
	}

	var sessions []models.Session
	err = s.db.Where("task_id = ? AND owner = ?", id, owner).
		Order("start_time ASC").
		Find(&sessions).Error
	if err != nil {
		return nil, nil, err
	}

	return task, sessions, nil
}

// UpdateTask updates title/description and optionally transitions status.
// Completing a task stamps CompletedAt; reverting to active clears it.
func (s *TaskService) UpdateTask(id uint, owner string, req UpdateTaskRequest) (*models.Task, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, validationf("title required")
	}

	task, err := s.findTask(id, owner)
	if err != nil {
		return nil, err
	}

	task.Title = req.Title
	task.Description = req.Description

	if req.Status != "" {
		if req.Status != models.StatusActive && req.Status != models.StatusCompleted {
			return nil, validationf("invalid status %q", req.Status)
		}
		task.Status = req.Status
		if req.Status == models.StatusCompleted {
			now := time.Now()
			task.CompletedAt = &now
		} else {
			task.CompletedAt = nil
		}
	}

	// Save via Select so a cleared CompletedAt is written as NULL.
	err = s.db.Model(task).
		Select("Title", "Description", "Status", "CompletedAt").
		Updates(task).Error
	if err != nil {
		return nil, err
	}

	return task, nil
}

// DeleteTask deletes owner's task along with its sessions and any running
// marker, so no orphaned rows remain.
func (s *TaskService) DeleteTask(id uint, owner string) error {
	if _, err := s.findTask(id, owner); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ? AND owner = ?", id, owner).Delete(&models.Session{}).Error; err != nil {
			return err
		}
		if err := tx.Where("task_id = ? AND owner = ?", id, owner).Delete(&models.RunningTask{}).Error; err != nil {
			return err
		}
		return tx.Where("owner = ?", owner).Delete(&models.Task{}, id).Error
	})
}

func (s *TaskService) findTask(id uint, owner string) (*models.Task, error) {
	var task models.Task
	err := s.db.Where("owner = ?", owner).First(&task, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}
