package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mfaridn/lacak/internal/db"
	"github.com/mfaridn/lacak/internal/tui"
)

var timerCmd = &cobra.Command{
	Use:   "timer",
	Short: "Show the currently running task live in the terminal",
	Long: `Show a live timer for the currently running task, reading the same
database the API serves. Press S to stop the task and record a session,
ESC/Q to leave it running.`,
	RunE: runTimer,
}

func runTimer(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	gdb, err := db.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close(gdb)

	if cfg.AuthRequired {
		return fmt.Errorf("the timer command works against a single-tenant database")
	}

	running := db.NewRunningTaskService(gdb)
	sessions := db.NewSessionService(gdb)

	return tui.RunTimerTUI(running, sessions, "")
}
