package finance

import (
	"testing"
	"time"

	"github.com/moondogdev/overwhelmed/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ms(t time.Time) int64 {
	return t.UnixMilli()
}

func TestAccumulate(t *testing.T) {
	tasks := []model.Task{
		{ID: "1", TransactionAmount: 500, IncomeType: model.IncomeW2},
		{ID: "2", TransactionAmount: -200, TaxCategoryID: "7"},
		{ID: "3", TransactionAmount: 0},
	}

	summary := Accumulate(tasks)
	assert.Equal(t, "500", summary.TotalIncome.String())
	assert.Equal(t, "200", summary.TotalExpenses.String())
	assert.Equal(t, "300", summary.NetProfit.String())
}

func TestAccumulateNetIdentity(t *testing.T) {
	tasks := []model.Task{
		{ID: "1", TransactionAmount: 0.1},
		{ID: "2", TransactionAmount: 0.2},
		{ID: "3", TransactionAmount: -0.3},
		{ID: "4", TransactionAmount: 19.99},
		{ID: "5", TransactionAmount: -7.77},
	}

	summary := Accumulate(tasks)
	assert.True(t, summary.NetProfit.Equal(summary.TotalIncome.Sub(summary.TotalExpenses)))
	assert.Equal(t, "20.29", summary.TotalIncome.String())
	assert.Equal(t, "8.07", summary.TotalExpenses.String())
	assert.Equal(t, "12.22", summary.NetProfit.String())
}

func TestFilterDateRange(t *testing.T) {
	jan1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
	jan15 := time.Date(2024, 1, 15, 14, 30, 0, 0, time.Local)
	jan31 := time.Date(2024, 1, 31, 0, 0, 0, 0, time.Local)
	feb1 := time.Date(2024, 2, 1, 0, 30, 0, 0, time.Local)
	jan31Evening := time.Date(2024, 1, 31, 22, 0, 0, 0, time.Local)

	tasks := []model.Task{
		{ID: "in", OpenDate: ms(jan15), TransactionAmount: 100},
		{ID: "edge", OpenDate: ms(jan31Evening), TransactionAmount: 50},
		{ID: "out", OpenDate: ms(feb1), TransactionAmount: 25},
	}

	filter := Filter{Start: &jan1, End: &jan31, DateField: DateFieldOpen}
	filtered := filter.Apply(tasks, nil)

	require.Len(t, filtered, 2)
	assert.Equal(t, "in", filtered[0].ID)
	// End of range is inclusive through 23:59:59.999 on the final day.
	assert.Equal(t, "edge", filtered[1].ID)
}

func TestFilterCompletionDate(t *testing.T) {
	created := time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local)

	tasks := []model.Task{
		{ID: "done", CreatedAt: ms(created), CompletedDuration: int64(48 * time.Hour / time.Millisecond), TransactionAmount: 10},
		{ID: "open", CreatedAt: ms(created), TransactionAmount: 20},
	}

	filter := Filter{DateField: DateFieldCompletion}
	filtered := filter.Apply(tasks, nil)

	// Tasks without a completion are excluded from completion-dated views.
	require.Len(t, filtered, 1)
	assert.Equal(t, "done", filtered[0].ID)
}

func TestFilterCategoryResolution(t *testing.T) {
	categories := []model.Category{
		{ID: "work", Name: "Work"},
		{ID: "invoices", Name: "Invoices", ParentID: "work"},
		{ID: "expenses", Name: "Expenses", ParentID: "work"},
		{ID: "home", Name: "Home"},
	}

	now := time.Now()
	tasks := []model.Task{
		{ID: "1", CategoryID: "work", OpenDate: ms(now), TransactionAmount: 1},
		{ID: "2", CategoryID: "invoices", OpenDate: ms(now), TransactionAmount: 2},
		{ID: "3", CategoryID: "expenses", OpenDate: ms(now), TransactionAmount: 3},
		{ID: "4", CategoryID: "home", OpenDate: ms(now), TransactionAmount: 4},
		{ID: "5", CategoryID: "ghost-id", OpenDate: ms(now), TransactionAmount: 5},
	}

	tests := []struct {
		name    string
		filter  Filter
		wantIDs []string
	}{
		{
			name:    "parent includes its direct sub-categories",
			filter:  Filter{CategoryID: "work"},
			wantIDs: []string{"1", "2", "3"},
		},
		{
			name:    "explicit sub-category restricts to exactly that id",
			filter:  Filter{CategoryID: "work", SubcategoryID: "invoices"},
			wantIDs: []string{"2"},
		},
		{
			name:    "all bypasses category filtering, dangling ids included",
			filter:  Filter{CategoryID: FilterAll},
			wantIDs: []string{"1", "2", "3", "4", "5"},
		},
		{
			name:    "dangling reference excluded from category-specific totals",
			filter:  Filter{CategoryID: "home"},
			wantIDs: []string{"4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.filter.Apply(tasks, categories)
			ids := make([]string, 0, len(got))
			for _, task := range got {
				ids = append(ids, task.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestFilterAccountAndType(t *testing.T) {
	now := time.Now()
	tasks := []model.Task{
		{ID: "1", AccountID: "chk", TransactionType: model.TransactionExpense, OpenDate: ms(now), TransactionAmount: -5},
		{ID: "2", AccountID: "sav", TransactionType: model.TransactionIncome, OpenDate: ms(now), TransactionAmount: 5},
	}

	filtered := Filter{AccountID: "chk"}.Apply(tasks, nil)
	require.Len(t, filtered, 1)
	assert.Equal(t, "1", filtered[0].ID)

	filtered = Filter{TransactionType: model.TransactionIncome}.Apply(tasks, nil)
	require.Len(t, filtered, 1)
	assert.Equal(t, "2", filtered[0].ID)
}

func TestLifetimeSummaryIgnoresFilters(t *testing.T) {
	open := []model.Task{
		{ID: "1", TransactionAmount: 100, CategoryID: "anything"},
	}
	completed := []model.Task{
		{ID: "2", TransactionAmount: -30, CompletedDuration: 1000},
		{ID: "3", TransactionAmount: 0},
	}

	summary := LifetimeSummary(open, completed)
	assert.Equal(t, "100", summary.TotalIncome.String())
	assert.Equal(t, "30", summary.TotalExpenses.String())
	assert.Equal(t, "70", summary.NetProfit.String())
}
