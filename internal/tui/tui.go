package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mfaridn/lacak/internal/db"
	"github.com/mfaridn/lacak/internal/timeutil"
)

// RunTimerTUI shows the live timer for owner's running task. When the user
// stops the timer, the marker is removed and a session is recorded from the
// marker's start time to now.
func RunTimerTUI(running *db.RunningTaskService, sessions *db.SessionService, owner string) error {
	markers, err := running.List(owner)
	if err != nil {
		return err
	}
	if len(markers) == 0 {
		fmt.Println("No task is currently running.")
		return nil
	}
	marker := markers[0]

	p := tea.NewProgram(NewTimerModel(marker), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	timerModel := finalModel.(TimerModel)
	switch {
	case timerModel.stopping:
		stopped, err := running.Stop(marker.TaskID, owner)
		if err != nil {
			return fmt.Errorf("failed to stop task: %w", err)
		}
		if stopped == nil {
			// Someone else stopped it while the timer was open.
			fmt.Printf("Task #%d was already stopped.\n", marker.TaskID)
			return nil
		}

		session, err := sessions.CreateSession(marker.TaskID, owner, db.CreateSessionRequest{
			StartTime: stopped.StartTime.Format(time.RFC3339Nano),
			EndTime:   time.Now().Format(time.RFC3339Nano),
		})
		if err != nil {
			return fmt.Errorf("failed to record session: %w", err)
		}

		fmt.Printf("⏹️  Stopped tracking time for task #%d: %s\n", marker.TaskID, marker.TaskTitle)
		fmt.Printf("📊 Session duration: %s\n", timeutil.SecondsToString(session.Duration))

	case timerModel.exiting:
		fmt.Printf("\n💡 Timer is still running for task #%d: %s\n", marker.TaskID, marker.TaskTitle)
	}

	return nil
}
