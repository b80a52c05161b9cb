// Package model defines the core domain models used throughout the application.
package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TransactionType indicates the financial nature of a task record.
type TransactionType string

// Transaction type constants.
const (
	TransactionIncome   TransactionType = "income"
	TransactionExpense  TransactionType = "expense"
	TransactionTransfer TransactionType = "transfer"
	TransactionNone     TransactionType = "none"
)

// IncomeType tags the source of income for tax-report grouping.
type IncomeType string

// Income type constants, in auto-tag precedence order.
const (
	IncomeW2            IncomeType = "w2"
	IncomeBusiness      IncomeType = "business"
	IncomeReimbursement IncomeType = "reimbursement"
)

// Task is a single task record. A task carrying a non-zero
// TransactionAmount is a transaction; the sign of the amount determines
// income (>0) versus expense (<0).
type Task struct {
	ID                string          `json:"id"`
	Text              string          `json:"text"`
	CategoryID        string          `json:"categoryId,omitempty"`
	TaxCategoryID     string          `json:"taxCategoryId,omitempty"`
	AccountID         string          `json:"accountId,omitempty"`
	TransactionType   TransactionType `json:"transactionType,omitempty"`
	IncomeType        IncomeType      `json:"incomeType,omitempty"`
	TransactionAmount float64         `json:"transactionAmount,omitempty"`
	PayRate           float64         `json:"payRate,omitempty"`
	OpenDate          int64           `json:"openDate"`
	CreatedAt         int64           `json:"createdAt"`
	CompletedDuration int64           `json:"completedDuration,omitempty"`
	ManualTime        int64           `json:"manualTime,omitempty"`
}

// NewID generates a unique identifier for tasks, categories, accounts, and
// assets. IDs are timestamp-prefixed with a random suffix so they sort
// roughly by creation time and are never reused within a session.
func NewID() string {
	suffix := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), suffix)
}

// IsTransaction reports whether the task carries a financial amount.
func (t *Task) IsTransaction() bool {
	return t.TransactionAmount != 0
}

// OpenTime returns the task's open date as a time.Time in the local zone.
func (t *Task) OpenTime() time.Time {
	return time.UnixMilli(t.OpenDate)
}

// CompletionTime returns the task's completion date, derived from
// CreatedAt plus CompletedDuration. The second return is false for tasks
// that have never been completed; such tasks are excluded from
// completion-dated views.
func (t *Task) CompletionTime() (time.Time, bool) {
	if t.CompletedDuration == 0 {
		return time.Time{}, false
	}
	return time.UnixMilli(t.CreatedAt + t.CompletedDuration), true
}

// TimeTrackedHours returns ManualTime converted from milliseconds to hours.
func (t *Task) TimeTrackedHours() float64 {
	return float64(t.ManualTime) / 3600000.0
}
