package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/moondogdev/overwhelmed/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()

	store, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "overwhelmed.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func TestTasksRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	open := []model.Task{
		{ID: "1", Text: "Client invoice", TransactionAmount: 250, IncomeType: model.IncomeBusiness, TransactionType: model.TransactionIncome, OpenDate: 1700000000000, CreatedAt: 1700000000000},
	}
	completed := []model.Task{
		{ID: "2", Text: "Printer paper", TransactionAmount: -40, TaxCategoryID: "supplies", OpenDate: 1700000100000, CreatedAt: 1700000100000, CompletedDuration: 5000, ManualTime: 3600000, PayRate: 20},
	}

	require.NoError(t, store.ReplaceTasks(ctx, open, completed))

	gotOpen, gotCompleted, err := store.LoadTasks(ctx)
	require.NoError(t, err)
	assert.Equal(t, open, gotOpen)
	assert.Equal(t, completed, gotCompleted)
}

func TestReplaceTasksOverwrites(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	require.NoError(t, store.ReplaceTasks(ctx, []model.Task{{ID: "1", Text: "a", OpenDate: 1, CreatedAt: 1}}, nil))
	require.NoError(t, store.ReplaceTasks(ctx, []model.Task{{ID: "2", Text: "b", OpenDate: 2, CreatedAt: 2}}, nil))

	open, completed, err := store.LoadTasks(ctx)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, "2", open[0].ID)
	assert.Empty(t, completed)
}

func TestSettingsRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	// Nothing saved yet: defaults come back.
	settings, err := store.LoadSettings(ctx)
	require.NoError(t, err)
	assert.NotNil(t, settings.Categories)

	settings.TaxCategories = []model.TaxCategory{
		{ID: "supplies", Name: "Office Supplies", Keywords: []string{"staples", "paper"}},
	}
	settings.BusinessMiles = 1200
	require.NoError(t, store.SaveSettings(ctx, settings))

	loaded, err := store.LoadSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, settings.TaxCategories, loaded.TaxCategories)
	assert.InDelta(t, 1200.0, loaded.BusinessMiles, 0.0001)
}

func TestMigrateIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)
	require.NoError(t, store.Migrate(ctx))
}
