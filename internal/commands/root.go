package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mfaridn/lacak/internal/config"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "lacak",
	Short: "A task and time tracking web service",
	Long: `lacak is a personal task/time-tracking service. Create tasks, run timed
work sessions against them, and review daily history and aggregate stats
over a JSON REST API. The 'timer' command shows the currently running task
live in the terminal.`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("lacak %s (commit %s, built %s)\n", version, commit, date)
	},
}

// loadConfig reads the config file selected by --config (or the default
// location) with LACAK_* environment overrides applied.
func loadConfig() (*config.Config, error) {
	path := cfgPath
	if path == "" {
		path = config.DefaultConfigPath()
	}
	return config.Load(path)
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default ~/.config/lacak/config.yaml)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(timerCmd)
	rootCmd.AddCommand(versionCmd)
}
