package db

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mfaridn/lacak/internal/models"
)

// Open opens the SQLite database at path and runs migrations.
// The special path ":memory:" opens a throwaway in-memory database.
func Open(path string) (*gorm.DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Quiet by default
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := runMigrations(gdb); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return gdb, nil
}

// DefaultPath returns the path to the SQLite database file
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".lacak", "lacak.db"), nil
}

// runMigrations creates/updates the database schema
func runMigrations(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&models.Task{},
		&models.Session{},
		&models.RunningTask{},
		&models.User{},
		&models.AuthToken{},
	)
}

// Close closes the underlying database connection.
func Close(gdb *gorm.DB) error {
	if gdb == nil {
		return nil
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
