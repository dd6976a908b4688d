package db

import (
	"strings"
	"testing"
	"time"

	"github.com/mfaridn/lacak/internal/models"
	"github.com/mfaridn/lacak/internal/timeutil"
)

func TestGetStatsTodayWindow(t *testing.T) {
	gdb := newTestDB(t)
	svc := NewStatsService(gdb)

	task := mustCreateTask(t, gdb, "alice", "t")

	dayStart, _ := timeutil.DayWindow(time.Now())
	mustCreateSession(t, gdb, "alice", task.ID, dayStart.Add(time.Hour), 120)
	mustCreateSession(t, gdb, "alice", task.ID, dayStart.Add(2*time.Hour), 60)
	// Yesterday's session counts toward the all-time total only.
	mustCreateSession(t, gdb, "alice", task.ID, dayStart.Add(-3*time.Hour), 600)

	stats, err := svc.GetStats("alice")
	if err != nil {
		t.Fatal(err)
	}

	if stats.Today.Count != 2 {
		t.Fatalf("expected 2 sessions today, got %d", stats.Today.Count)
	}
	if stats.Today.Duration != 180 {
		t.Fatalf("expected today duration 180, got %d", stats.Today.Duration)
	}
	if stats.Today.DurationReadable != "0h 3m 0s" {
		t.Fatalf("unexpected readable %q", stats.Today.DurationReadable)
	}
	if stats.Today.TotalAccumulated != 780 {
		t.Fatalf("expected all-time total 780, got %d", stats.Today.TotalAccumulated)
	}
}

func TestGetStatsWeekCountsDistinctTasks(t *testing.T) {
	gdb := newTestDB(t)
	svc := NewStatsService(gdb)

	first := mustCreateTask(t, gdb, "alice", "a")
	second := mustCreateTask(t, gdb, "alice", "b")

	weekStart := timeutil.WeekStart(time.Now())
	// Three sessions across two tasks inside the window.
	mustCreateSession(t, gdb, "alice", first.ID, weekStart.Add(time.Hour), 60)
	mustCreateSession(t, gdb, "alice", first.ID, weekStart.Add(2*time.Hour), 60)
	mustCreateSession(t, gdb, "alice", second.ID, weekStart.Add(3*time.Hour), 60)
	// Before the window: ignored.
	mustCreateSession(t, gdb, "alice", second.ID, weekStart.Add(-time.Hour), 60)

	stats, err := svc.GetStats("alice")
	if err != nil {
		t.Fatal(err)
	}
	if stats.Week.Count != 2 {
		t.Fatalf("expected 2 distinct tasks this week, got %d", stats.Week.Count)
	}
}

func TestGetStatsScopedToOwner(t *testing.T) {
	gdb := newTestDB(t)
	svc := NewStatsService(gdb)

	task := mustCreateTask(t, gdb, "bob", "b")
	mustCreateSession(t, gdb, "bob", task.ID, time.Now(), 60)

	stats, err := svc.GetStats("alice")
	if err != nil {
		t.Fatal(err)
	}
	if stats.Today.Count != 0 || stats.Today.TotalAccumulated != 0 || stats.Week.Count != 0 {
		t.Fatalf("expected empty stats for alice, got %+v", stats)
	}
}

func TestGetHistoryGroupsByCreationDate(t *testing.T) {
	gdb := newTestDB(t)
	tasks := NewTaskService(gdb)
	svc := NewStatsService(gdb)

	now := time.Now().UTC()
	yesterday := now.AddDate(0, 0, -1)

	// Today: one completed, one active.
	doneToday, _ := tasks.CreateTask("alice", CreateTaskRequest{Title: "done today"})
	if _, err := tasks.UpdateTask(doneToday.ID, "alice", UpdateTaskRequest{Title: "done today", Status: models.StatusCompleted}); err != nil {
		t.Fatal(err)
	}
	activeToday, _ := tasks.CreateTask("alice", CreateTaskRequest{Title: "active today"})
	_ = activeToday

	// Yesterday: one completed.
	doneYesterday, _ := tasks.CreateTask("alice", CreateTaskRequest{Title: "done yesterday"})
	if _, err := tasks.UpdateTask(doneYesterday.ID, "alice", UpdateTaskRequest{Title: "done yesterday", Status: models.StatusCompleted}); err != nil {
		t.Fatal(err)
	}
	gdb.Model(&models.Task{}).Where("id = ?", doneYesterday.ID).Update("created_at", yesterday)

	// Two days ago: only an active task — must not appear at all.
	activeOld, _ := tasks.CreateTask("alice", CreateTaskRequest{Title: "old active"})
	gdb.Model(&models.Task{}).Where("id = ?", activeOld.ID).Update("created_at", now.AddDate(0, 0, -2))

	mustCreateSession(t, gdb, "alice", doneToday.ID, now.Add(-time.Hour), 300)

	history, err := svc.GetHistory("alice")
	if err != nil {
		t.Fatal(err)
	}

	if len(history) != 2 {
		t.Fatalf("expected 2 history entries, got %d", len(history))
	}

	// Sorted most recent first.
	if history[0].Date != timeutil.DateKey(now) {
		t.Fatalf("expected today first, got %q", history[0].Date)
	}
	if history[1].Date != timeutil.DateKey(yesterday) {
		t.Fatalf("expected yesterday second, got %q", history[1].Date)
	}

	today := history[0]
	if today.DateLabel != "Hari Ini" {
		t.Fatalf("expected label Hari Ini, got %q", today.DateLabel)
	}
	// Denominator counts active + completed created that date.
	if today.Progress != "1/2" {
		t.Fatalf("expected progress 1/2, got %q", today.Progress)
	}
	if len(today.Tasks) != 1 || today.Tasks[0].ID != doneToday.ID {
		t.Fatalf("expected only the completed task, got %+v", today.Tasks)
	}
	if today.Tasks[0].TotalDuration != 300 {
		t.Fatalf("expected total duration 300, got %d", today.Tasks[0].TotalDuration)
	}

	if history[1].Progress != "1/1" {
		t.Fatalf("expected progress 1/1, got %q", history[1].Progress)
	}
	if strings.Contains(history[1].DateLabel, "Hari Ini") {
		t.Fatalf("yesterday must not be labelled Hari Ini: %q", history[1].DateLabel)
	}
}

func TestGetHistoryEmpty(t *testing.T) {
	gdb := newTestDB(t)
	svc := NewStatsService(gdb)

	history, err := svc.GetHistory("alice")
	if err != nil {
		t.Fatal(err)
	}
	if len(history) != 0 {
		t.Fatalf("expected empty history, got %d entries", len(history))
	}
}
