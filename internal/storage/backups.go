package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/moondogdev/overwhelmed/internal/common"
)

// BackupManager manages snapshot backup files in a single directory.
type BackupManager struct {
	dir string
}

// BackupInfo describes one backup file.
type BackupInfo struct {
	ModTime time.Time
	Name    string
	Path    string
	Size    int64
}

// NewBackupManager creates a backup manager rooted at dir, creating the
// directory if needed.
func NewBackupManager(dir string) (*BackupManager, error) {
	if err := validateString(dir, "dir"); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create backups directory: %w", err)
	}
	return &BackupManager{dir: dir}, nil
}

// Dir returns the backups directory path.
func (m *BackupManager) Dir() string {
	return m.dir
}

// List returns all backups, newest first.
func (m *BackupManager) List(ctx context.Context) ([]BackupInfo, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(m.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read backups directory: %w", err)
	}

	var backups []BackupInfo
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, BackupInfo{
			Name:    entry.Name(),
			Path:    filepath.Join(m.dir, entry.Name()),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].ModTime.After(backups[j].ModTime)
	})
	return backups, nil
}

// CreateManual writes a timestamped manual backup of the snapshot.
func (m *BackupManager) CreateManual(ctx context.Context, snapshot Snapshot) (BackupInfo, error) {
	if err := validateContext(ctx); err != nil {
		return BackupInfo{}, err
	}

	data, err := snapshot.Marshal()
	if err != nil {
		return BackupInfo{}, fmt.Errorf("failed to encode snapshot: %w", err)
	}

	name := fmt.Sprintf("backup-manual-%s.json", time.Now().Format("20060102-150405"))
	path := filepath.Join(m.dir, name)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return BackupInfo{}, fmt.Errorf("failed to write backup: %w", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return BackupInfo{}, fmt.Errorf("failed to stat backup: %w", err)
	}

	return BackupInfo{Name: name, Path: path, Size: info.Size(), ModTime: info.ModTime()}, nil
}

// Restore reads and parses a backup by name. A malformed backup surfaces
// as a user error; it never crashes the session.
func (m *BackupManager) Restore(ctx context.Context, name string) (Snapshot, error) {
	if err := validateContext(ctx); err != nil {
		return Snapshot{}, err
	}

	data, err := os.ReadFile(m.resolve(name))
	if os.IsNotExist(err) {
		return Snapshot{}, fmt.Errorf("%w: %s", common.ErrBackupNotFound, name)
	}
	if err != nil {
		return Snapshot{}, common.NewUserError("Could not read backup file.", err)
	}

	return ParseSnapshot(data)
}

// Delete removes a backup by name.
func (m *BackupManager) Delete(ctx context.Context, name string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := os.Remove(m.resolve(name)); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", common.ErrBackupNotFound, name)
		}
		return fmt.Errorf("failed to delete backup: %w", err)
	}
	return nil
}

// Export copies a backup to an external destination path.
func (m *BackupManager) Export(ctx context.Context, name, destPath string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(destPath, "destPath"); err != nil {
		return err
	}

	src, err := os.Open(m.resolve(name))
	if os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", common.ErrBackupNotFound, name)
	}
	if err != nil {
		return fmt.Errorf("failed to open backup: %w", err)
	}
	defer func() { _ = src.Close() }()

	dest, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create destination: %w", err)
	}
	defer func() { _ = dest.Close() }()

	if _, err := io.Copy(dest, src); err != nil {
		return fmt.Errorf("failed to copy backup: %w", err)
	}
	return nil
}

// resolve joins a backup name to the directory, stripping any path
// components so names cannot escape the backups directory.
func (m *BackupManager) resolve(name string) string {
	return filepath.Join(m.dir, filepath.Base(name))
}
