package finance

import (
	"github.com/shopspring/decimal"

	"github.com/moondogdev/overwhelmed/internal/model"
)

// Summary holds income and expense totals for a set of transactions.
// TotalExpenses is a positive magnitude; NetProfit is always exactly
// TotalIncome minus TotalExpenses.
type Summary struct {
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	NetProfit     decimal.Decimal
}

// Summarize filters the tasks and sums their transaction amounts. Tasks
// with a zero or absent amount contribute nothing.
func Summarize(tasks []model.Task, filter Filter, categories []model.Category) Summary {
	return Accumulate(filter.Apply(tasks, categories))
}

// Accumulate sums transaction amounts over an already-filtered task set.
func Accumulate(tasks []model.Task) Summary {
	income := decimal.Zero
	expenses := decimal.Zero

	for _, task := range tasks {
		if !task.IsTransaction() {
			continue
		}
		amount := decimal.NewFromFloat(task.TransactionAmount)
		if amount.IsPositive() {
			income = income.Add(amount)
		} else {
			expenses = expenses.Add(amount.Abs())
		}
	}

	return Summary{
		TotalIncome:   income,
		TotalExpenses: expenses,
		NetProfit:     income.Sub(expenses),
	}
}

// LifetimeSummary aggregates over the full union of open and completed
// tasks, independent of any interactive filter state.
func LifetimeSummary(open, completed []model.Task) Summary {
	union := make([]model.Task, 0, len(open)+len(completed))
	union = append(union, open...)
	union = append(union, completed...)
	return Accumulate(union)
}
