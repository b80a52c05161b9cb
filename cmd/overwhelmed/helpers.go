package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/moondogdev/overwhelmed/internal/config"
	"github.com/moondogdev/overwhelmed/internal/storage"
)

// openStorage opens and migrates the task database.
func openStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	path := config.ExpandPath(viper.GetString("database.path"))
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(home, ".local", "share", "overwhelmed", "overwhelmed.db")
	}

	store, err := storage.NewSQLiteStorage(path)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, err
	}
	return store, nil
}

// openBackups opens the backup manager rooted next to the database.
func openBackups() (*storage.BackupManager, error) {
	dir := config.ExpandPath(viper.GetString("backups.dir"))
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dir = filepath.Join(home, ".local", "share", "overwhelmed", "backups")
	}
	return storage.NewBackupManager(dir)
}

// parseDateFlag parses a YYYY-MM-DD flag value in the local zone.
func parseDateFlag(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", value, err)
	}
	return &t, nil
}
