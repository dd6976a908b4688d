package db

import (
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/mfaridn/lacak/internal/models"
	"github.com/mfaridn/lacak/internal/timeutil"
)

// StatsService computes the dashboard aggregates and the date-grouped
// history view. Each aggregate is derived independently from session rows.
type StatsService struct {
	db *gorm.DB
}

// NewStatsService creates a stats service on top of an open database handle.
func NewStatsService(gdb *gorm.DB) *StatsService {
	return &StatsService{db: gdb}
}

// TodayStats covers sessions started in the local-midnight window, plus the
// owner's all-time accumulated duration for the combined-total display.
type TodayStats struct {
	Count                    int    `json:"count"`
	Duration                 int    `json:"duration"`
	DurationReadable         string `json:"duration_readable"`
	TotalAccumulated         int    `json:"total_accumulated"`
	TotalAccumulatedReadable string `json:"total_accumulated_readable"`
}

// WeekStats counts distinct tasks worked on since the most recent Sunday.
type WeekStats struct {
	Count int `json:"count"`
}

// Stats is the dashboard aggregate payload.
type Stats struct {
	Today TodayStats `json:"today"`
	Week  WeekStats  `json:"week"`
}

// HistoryTask is a completed task with its summed session duration.
type HistoryTask struct {
	models.Task
	TotalDuration int `json:"total_duration"`
}

// HistoryEntry groups one creation date's completed tasks.
type HistoryEntry struct {
	Date      string        `json:"date"`
	DateLabel string        `json:"dateLabel"`
	Progress  string        `json:"progress"`
	Tasks     []HistoryTask `json:"tasks"`
}

// GetStats returns today's session count and duration, the all-time
// accumulated duration, and the distinct-task count for the current week.
func (s *StatsService) GetStats(owner string) (*Stats, error) {
	now := time.Now()
	dayStart, dayEnd := timeutil.DayWindow(now)

	var todaySessions []models.Session
	err := s.db.Where("owner = ? AND start_time >= ? AND start_time < ?", owner, dayStart, dayEnd).
		Find(&todaySessions).Error
	if err != nil {
		return nil, err
	}

	todayDuration := 0
	for _, sess := range todaySessions {
		todayDuration += sess.Duration
	}

	var totalAccumulated int
	err = s.db.Model(&models.Session{}).
		Where("owner = ?", owner).
		Select("COALESCE(SUM(duration), 0)").
		Scan(&totalAccumulated).Error
	if err != nil {
		return nil, err
	}

	// Week counts distinct tasks with at least one session in the window,
	// not the number of sessions.
	var weekCount int64
	err = s.db.Model(&models.Session{}).
		Where("owner = ? AND start_time >= ?", owner, timeutil.WeekStart(now)).
		Distinct("task_id").
		Count(&weekCount).Error
	if err != nil {
		return nil, err
	}

	return &Stats{
		Today: TodayStats{
			Count:                    len(todaySessions),
			Duration:                 todayDuration,
			DurationReadable:         timeutil.SecondsToString(todayDuration),
			TotalAccumulated:         totalAccumulated,
			TotalAccumulatedReadable: timeutil.SecondsToString(totalAccumulated),
		},
		Week: WeekStats{Count: int(weekCount)},
	}, nil
}

// GetHistory groups owner's completed tasks by the UTC calendar date they
// were created. Dates with no completed task are omitted; the progress
// denominator counts every task created that date, active or completed.
func (s *StatsService) GetHistory(owner string) ([]HistoryEntry, error) {
	var tasks []models.Task
	err := s.db.Where("owner = ?", owner).
		Order("created_at DESC").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}

	var sessions []models.Session
	if err := s.db.Where("owner = ?", owner).Find(&sessions).Error; err != nil {
		return nil, err
	}

	durationByTask := make(map[uint]int)
	for _, sess := range sessions {
		durationByTask[sess.TaskID] += sess.Duration
	}

	createdByDate := make(map[string]int)
	completedByDate := make(map[string][]HistoryTask)
	for _, task := range tasks {
		key := timeutil.DateKey(task.CreatedAt)
		createdByDate[key]++
		if task.IsCompleted() && task.CompletedAt != nil {
			completedByDate[key] = append(completedByDate[key], HistoryTask{
				Task:          task,
				TotalDuration: durationByTask[task.ID],
			})
		}
	}

	now := time.Now()
	history := make([]HistoryEntry, 0, len(completedByDate))
	for key, completed := range completedByDate {
		history = append(history, HistoryEntry{
			Date:      key,
			DateLabel: timeutil.DateLabel(key, now),
			Progress:  progressString(len(completed), createdByDate[key]),
			Tasks:     completed,
		})
	}

	// Most recent first; keys are YYYY-MM-DD so a string sort is a date sort.
	sort.Slice(history, func(i, j int) bool {
		return history[i].Date > history[j].Date
	})

	return history, nil
}

func progressString(completed, total int) string {
	return fmt.Sprintf("%d/%d", completed, total)
}
