package db

import (
	"errors"
	"testing"
	"time"

	"github.com/mfaridn/lacak/internal/models"
)

func TestCreateTaskDefaultsToActive(t *testing.T) {
	gdb := newTestDB(t)
	svc := NewTaskService(gdb)

	task, err := svc.CreateTask("alice", CreateTaskRequest{Title: "write report"})
	if err != nil {
		t.Fatal(err)
	}

	fetched, _, err := svc.GetTask(task.ID, "alice")
	if err != nil {
		t.Fatal(err)
	}
	if fetched.Status != models.StatusActive {
		t.Fatalf("expected status active, got %q", fetched.Status)
	}
	if fetched.CompletedAt != nil {
		t.Fatalf("expected nil completed_at, got %v", fetched.CompletedAt)
	}
}

func TestCreateTaskRequiresTitle(t *testing.T) {
	gdb := newTestDB(t)
	svc := NewTaskService(gdb)

	_, err := svc.CreateTask("alice", CreateTaskRequest{Title: "  "})
	var validation *ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestUpdateTaskStatusTransitions(t *testing.T) {
	gdb := newTestDB(t)
	svc := NewTaskService(gdb)

	task, err := svc.CreateTask("alice", CreateTaskRequest{Title: "t"})
	if err != nil {
		t.Fatal(err)
	}

	// Completing stamps completed_at.
	updated, err := svc.UpdateTask(task.ID, "alice", UpdateTaskRequest{Title: "t", Status: models.StatusCompleted})
	if err != nil {
		t.Fatal(err)
	}
	if updated.CompletedAt == nil {
		t.Fatal("expected completed_at to be set")
	}

	// Reverting to active clears it, including the stored row.
	if _, err := svc.UpdateTask(task.ID, "alice", UpdateTaskRequest{Title: "t", Status: models.StatusActive}); err != nil {
		t.Fatal(err)
	}
	fetched, _, err := svc.GetTask(task.ID, "alice")
	if err != nil {
		t.Fatal(err)
	}
	if fetched.Status != models.StatusActive {
		t.Fatalf("expected active, got %q", fetched.Status)
	}
	if fetched.CompletedAt != nil {
		t.Fatalf("expected completed_at cleared, got %v", fetched.CompletedAt)
	}
}

func TestUpdateTaskRejectsUnknownStatus(t *testing.T) {
	gdb := newTestDB(t)
	svc := NewTaskService(gdb)

	task, _ := svc.CreateTask("alice", CreateTaskRequest{Title: "t"})
	_, err := svc.UpdateTask(task.ID, "alice", UpdateTaskRequest{Title: "t", Status: "archived"})
	var validation *ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestGetTaskScopedToOwner(t *testing.T) {
	gdb := newTestDB(t)
	svc := NewTaskService(gdb)

	task, _ := svc.CreateTask("alice", CreateTaskRequest{Title: "t"})

	if _, _, err := svc.GetTask(task.ID, "bob"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign owner, got %v", err)
	}
	if _, _, err := svc.GetTask(9999, "alice"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing id, got %v", err)
	}
}

func TestListTasksAggregatesAndOrdering(t *testing.T) {
	gdb := newTestDB(t)
	svc := NewTaskService(gdb)

	older := mustCreateTask(t, gdb, "alice", "older active")
	newer := mustCreateTask(t, gdb, "alice", "newer active")
	done := mustCreateTask(t, gdb, "alice", "completed")
	gdb.Model(done).Updates(map[string]any{"status": models.StatusCompleted})

	// Force distinct creation times so the secondary ordering is observable.
	base := time.Now().Add(-time.Hour)
	gdb.Model(older).Update("created_at", base)
	gdb.Model(newer).Update("created_at", base.Add(time.Minute))

	first := time.Now().Add(-30 * time.Minute)
	second := first.Add(10 * time.Minute)
	mustCreateSession(t, gdb, "alice", older.ID, first, 120)
	mustCreateSession(t, gdb, "alice", older.ID, second, 60)

	tasks, err := svc.ListTasks("alice")
	if err != nil {
		t.Fatal(err)
	}
	if len(tasks) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(tasks))
	}

	// active before completed, newest first within status
	if tasks[0].ID != newer.ID || tasks[1].ID != older.ID || tasks[2].ID != done.ID {
		t.Fatalf("unexpected order: %d, %d, %d", tasks[0].ID, tasks[1].ID, tasks[2].ID)
	}

	agg := tasks[1]
	if agg.TotalDuration != 180 {
		t.Fatalf("expected total 180, got %d", agg.TotalDuration)
	}
	if agg.SessionsCount != 2 {
		t.Fatalf("expected 2 sessions, got %d", agg.SessionsCount)
	}
	if agg.TotalDurationReadable != "0h 3m 0s" {
		t.Fatalf("unexpected readable duration %q", agg.TotalDurationReadable)
	}
	if agg.FirstStart == nil || !agg.FirstStart.Equal(first) {
		t.Fatalf("unexpected first_start %v", agg.FirstStart)
	}
	wantLastEnd := second.Add(60 * time.Second)
	if agg.LastEnd == nil || !agg.LastEnd.Equal(wantLastEnd) {
		t.Fatalf("unexpected last_end %v", agg.LastEnd)
	}

	// Tasks without sessions report zero aggregates, not errors.
	if tasks[0].TotalDuration != 0 || tasks[0].SessionsCount != 0 {
		t.Fatalf("expected zero aggregates, got %+v", tasks[0])
	}
	if tasks[0].TotalDurationReadable != "0s" {
		t.Fatalf("unexpected readable %q", tasks[0].TotalDurationReadable)
	}
}

func TestDeleteTaskCascades(t *testing.T) {
	gdb := newTestDB(t)
	svc := NewTaskService(gdb)
	running := NewRunningTaskService(gdb)

	task := mustCreateTask(t, gdb, "alice", "t")
	mustCreateSession(t, gdb, "alice", task.ID, time.Now().Add(-time.Hour), 60)
	if _, err := running.Start(task.ID, "alice"); err != nil {
		t.Fatal(err)
	}

	if err := svc.DeleteTask(task.ID, "alice"); err != nil {
		t.Fatal(err)
	}

	var sessionCount, markerCount int64
	gdb.Model(&models.Session{}).Where("task_id = ?", task.ID).Count(&sessionCount)
	gdb.Model(&models.RunningTask{}).Where("task_id = ?", task.ID).Count(&markerCount)
	if sessionCount != 0 {
		t.Fatalf("expected no orphaned sessions, got %d", sessionCount)
	}
	if markerCount != 0 {
		t.Fatalf("expected no orphaned markers, got %d", markerCount)
	}
}

func TestDeleteTaskNotFound(t *testing.T) {
	gdb := newTestDB(t)
	svc := NewTaskService(gdb)

	if err := svc.DeleteTask(42, "alice"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
