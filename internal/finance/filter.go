// Package finance filters and aggregates task records into financial
// summaries, cash-flow series, and lifetime totals.
package finance

import (
	"time"

	"github.com/moondogdev/overwhelmed/internal/model"
)

// DateField selects which task date a filter applies to.
type DateField string

// Date field constants. Finance and tax views filter by the task's open
// date; all other report views filter by completion date and exclude tasks
// that were never completed.
const (
	DateFieldOpen       DateField = "open"
	DateFieldCompletion DateField = "completion"
)

// FilterAll bypasses category, account, or type filtering when used as the
// corresponding filter value.
const FilterAll = "all"

// Filter describes the interactive filter state applied to a task
// collection before aggregation.
type Filter struct {
	Start           *time.Time
	End             *time.Time
	CategoryID      string
	SubcategoryID   string
	AccountID       string
	TransactionType model.TransactionType
	DateField       DateField
}

// NormalizeEnd pins an end-of-range date to 23:59:59.999 local so the
// range is inclusive of the final day.
func NormalizeEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999000000, t.Location())
}

// Apply returns the tasks passing every active filter clause. Categories
// are needed to expand a selected parent category into its direct
// sub-categories. The input slice is never mutated.
func (f Filter) Apply(tasks []model.Task, categories []model.Category) []model.Task {
	categoryIDs := f.resolveCategoryIDs(categories)

	var result []model.Task
	for _, task := range tasks {
		if !f.matchesDate(task) {
			continue
		}
		if categoryIDs != nil && !categoryIDs[task.CategoryID] {
			continue
		}
		if f.AccountID != "" && f.AccountID != FilterAll && task.AccountID != f.AccountID {
			continue
		}
		if f.TransactionType != "" && f.TransactionType != FilterAll && task.TransactionType != f.TransactionType {
			continue
		}
		result = append(result, task)
	}
	return result
}

// resolveCategoryIDs expands the category selection into the exact set of
// matching category IDs. A sub-category selection restricts to exactly
// that id; a parent selection includes the parent plus all of its direct
// sub-categories; "all" (or no selection) returns nil, bypassing category
// filtering entirely.
func (f Filter) resolveCategoryIDs(categories []model.Category) map[string]bool {
	if f.SubcategoryID != "" && f.SubcategoryID != FilterAll {
		return map[string]bool{f.SubcategoryID: true}
	}
	if f.CategoryID == "" || f.CategoryID == FilterAll {
		return nil
	}

	ids := map[string]bool{f.CategoryID: true}
	for _, c := range categories {
		if c.ParentID == f.CategoryID {
			ids[c.ID] = true
		}
	}
	return ids
}

// TaskDate returns the date the filter's DateField selects for a task. The
// second return is false when the task has no such date, which excludes it
// from the view.
func (f Filter) TaskDate(task model.Task) (time.Time, bool) {
	if f.DateField == DateFieldCompletion {
		return task.CompletionTime()
	}
	return task.OpenTime(), true
}

func (f Filter) matchesDate(task model.Task) bool {
	date, ok := f.TaskDate(task)
	if !ok {
		return false
	}
	if f.Start != nil && date.Before(*f.Start) {
		return false
	}
	if f.End != nil && date.After(NormalizeEnd(*f.End)) {
		return false
	}
	return true
}
