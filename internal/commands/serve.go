package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mfaridn/lacak/internal/db"
	"github.com/mfaridn/lacak/internal/server"
)

var (
	serveAddr string
	serveDB   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start the lacak REST API.

Examples:
  lacak serve
  lacak serve --addr :9090 --db ./lacak.db
  LACAK_AUTH_REQUIRED=true lacak serve`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config)")
	serveCmd.Flags().StringVar(&serveDB, "db", "", "sqlite database path (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.Addr = serveAddr
	}
	if serveDB != "" {
		cfg.DBPath = serveDB
	}

	gdb, err := db.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close(gdb)

	mode := "single-tenant"
	if cfg.AuthRequired {
		mode = "multi-tenant"
	}
	fmt.Printf("Starting lacak API at http://localhost%s (%s)\n", cfg.Addr, mode)

	srv := server.NewServer(cfg, gdb)
	return srv.Run(cfg.Addr)
}
