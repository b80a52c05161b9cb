// Package testutil provides fluent builders for test task and settings
// fixtures, keeping test setup terse and isolated per test.
package testutil

import (
	"fmt"
	"time"

	"github.com/moondogdev/overwhelmed/internal/model"
)

// TaskBuilder constructs task fixtures with sensible defaults. Every
// Build call produces an independent value, so tests never share state.
type TaskBuilder struct {
	task model.Task
}

// NewTask starts a task fixture with the given description, opened now.
func NewTask(text string) *TaskBuilder {
	now := time.Now()
	return &TaskBuilder{task: model.Task{
		ID:        fmt.Sprintf("test-%d", now.UnixNano()),
		Text:      text,
		OpenDate:  now.UnixMilli(),
		CreatedAt: now.UnixMilli(),
	}}
}

// WithID overrides the generated fixture ID.
func (b *TaskBuilder) WithID(id string) *TaskBuilder {
	b.task.ID = id
	return b
}

// WithAmount sets the transaction amount and the matching transaction
// type by sign.
func (b *TaskBuilder) WithAmount(amount float64) *TaskBuilder {
	b.task.TransactionAmount = amount
	if amount >= 0 {
		b.task.TransactionType = model.TransactionIncome
	} else {
		b.task.TransactionType = model.TransactionExpense
	}
	return b
}

// WithCategory files the task under an organizational category.
func (b *TaskBuilder) WithCategory(id string) *TaskBuilder {
	b.task.CategoryID = id
	return b
}

// WithTaxCategory files the task under a tax category.
func (b *TaskBuilder) WithTaxCategory(id string) *TaskBuilder {
	b.task.TaxCategoryID = id
	return b
}

// WithIncomeType tags the task with an income type.
func (b *TaskBuilder) WithIncomeType(t model.IncomeType) *TaskBuilder {
	b.task.IncomeType = t
	return b
}

// OpenedOn sets the open date from a calendar date in the local zone.
func (b *TaskBuilder) OpenedOn(year int, month time.Month, day int) *TaskBuilder {
	b.task.OpenDate = time.Date(year, month, day, 12, 0, 0, 0, time.Local).UnixMilli()
	return b
}

// Completed marks the task completed after the given duration. A zero
// duration is bumped to one millisecond, since a zero CompletedDuration
// means never completed.
func (b *TaskBuilder) Completed(duration time.Duration) *TaskBuilder {
	ms := duration.Milliseconds()
	if ms == 0 {
		ms = 1
	}
	b.task.CompletedDuration = ms
	return b
}

// Build returns the task fixture.
func (b *TaskBuilder) Build() model.Task {
	return b.task
}

// SettingsBuilder constructs settings fixtures on top of the defaults.
type SettingsBuilder struct {
	settings model.Settings
}

// NewSettings starts a settings fixture from the application defaults.
func NewSettings() *SettingsBuilder {
	return &SettingsBuilder{settings: model.DefaultSettings()}
}

// WithCategory adds an organizational category with optional
// auto-categorization keywords.
func (b *SettingsBuilder) WithCategory(id, name string, keywords ...string) *SettingsBuilder {
	b.settings.Categories = append(b.settings.Categories, model.Category{
		ID:                         id,
		Name:                       name,
		AutoCategorizationKeywords: keywords,
	})
	return b
}

// WithTaxCategory adds a fully deductible tax category with keywords.
func (b *SettingsBuilder) WithTaxCategory(id, name string, keywords ...string) *SettingsBuilder {
	b.settings.TaxCategories = append(b.settings.TaxCategories, model.TaxCategory{
		ID:                   id,
		Name:                 name,
		Keywords:             keywords,
		DeductiblePercentage: 100,
	})
	return b
}

// WithIncomeKeywords sets the income-type keyword dictionaries.
func (b *SettingsBuilder) WithIncomeKeywords(kw model.IncomeTypeKeywords) *SettingsBuilder {
	b.settings.IncomeTypeKeywords = kw
	return b
}

// Build returns the settings fixture.
func (b *SettingsBuilder) Build() model.Settings {
	return b.settings
}
