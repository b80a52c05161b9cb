package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/moondogdev/overwhelmed/internal/common"
	"github.com/moondogdev/overwhelmed/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) *BackupManager {
	t.Helper()
	manager, err := NewBackupManager(filepath.Join(t.TempDir(), "backups"))
	require.NoError(t, err)
	return manager
}

func TestBackupCreateAndRestore(t *testing.T) {
	ctx := context.Background()
	manager := newTestManager(t)

	snapshot := DefaultSnapshot()
	snapshot.Words = []model.Task{
		{ID: "1", Text: "invoice", TransactionAmount: 100, OpenDate: 1700000000000, CreatedAt: 1700000000000},
	}

	info, err := manager.CreateManual(ctx, snapshot)
	require.NoError(t, err)
	assert.Contains(t, info.Name, "backup-manual-")

	restored, err := manager.Restore(ctx, info.Name)
	require.NoError(t, err)
	assert.Equal(t, snapshot.Words, restored.Words)
}

func TestBackupListNewestFirst(t *testing.T) {
	ctx := context.Background()
	manager := newTestManager(t)

	older := filepath.Join(manager.Dir(), "backup-old.json")
	newer := filepath.Join(manager.Dir(), "backup-new.json")
	require.NoError(t, os.WriteFile(older, []byte(`{}`), 0600))
	require.NoError(t, os.WriteFile(newer, []byte(`{}`), 0600))
	past := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(older, past, past))

	// Non-JSON files are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(manager.Dir(), "notes.txt"), []byte("x"), 0600))

	backups, err := manager.List(ctx)
	require.NoError(t, err)
	require.Len(t, backups, 2)
	assert.Equal(t, "backup-new.json", backups[0].Name)
	assert.Equal(t, "backup-old.json", backups[1].Name)
}

func TestBackupRestoreMalformed(t *testing.T) {
	ctx := context.Background()
	manager := newTestManager(t)

	path := filepath.Join(manager.Dir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0600))

	_, err := manager.Restore(ctx, "bad.json")
	require.Error(t, err)

	var userErr *common.UserError
	require.ErrorAs(t, err, &userErr)
	assert.Equal(t, "Could not read backup file.", userErr.UserMessage)
}

func TestBackupRestoreMissing(t *testing.T) {
	ctx := context.Background()
	manager := newTestManager(t)

	_, err := manager.Restore(ctx, "nope.json")
	assert.ErrorIs(t, err, common.ErrBackupNotFound)
}

func TestBackupDeleteAndExport(t *testing.T) {
	ctx := context.Background()
	manager := newTestManager(t)

	info, err := manager.CreateManual(ctx, DefaultSnapshot())
	require.NoError(t, err)

	dest := filepath.Join(t.TempDir(), "exported.json")
	require.NoError(t, manager.Export(ctx, info.Name, dest))
	exported, err := os.ReadFile(dest)
	require.NoError(t, err)
	original, err := os.ReadFile(info.Path)
	require.NoError(t, err)
	assert.Equal(t, original, exported)

	require.NoError(t, manager.Delete(ctx, info.Name))
	assert.ErrorIs(t, manager.Delete(ctx, info.Name), common.ErrBackupNotFound)
}

func TestBackupNameCannotEscapeDirectory(t *testing.T) {
	ctx := context.Background()
	manager := newTestManager(t)

	outside := filepath.Join(filepath.Dir(manager.Dir()), "secret.json")
	require.NoError(t, os.WriteFile(outside, []byte(`{}`), 0600))

	_, err := manager.Restore(ctx, "../secret.json")
	assert.ErrorIs(t, err, common.ErrBackupNotFound)
}
