package finance

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/moondogdev/overwhelmed/internal/model"
)

// flowDateLayout pins cash-flow date keys to a fixed short form so output
// is deterministic regardless of host locale.
const flowDateLayout = "1/2/2006"

// DailyFlow is one day of signed cash movement.
type DailyFlow struct {
	Date     string
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Net      decimal.Decimal
}

// CashFlow groups the filtered transactions by calendar date, summing
// signed amounts per day, sorted ascending by date.
func CashFlow(tasks []model.Task, filter Filter, categories []model.Category) []DailyFlow {
	filtered := filter.Apply(tasks, categories)

	byDate := make(map[string]*DailyFlow)
	for _, task := range filtered {
		if !task.IsTransaction() {
			continue
		}
		date, ok := filter.TaskDate(task)
		if !ok {
			continue
		}
		key := date.Format(flowDateLayout)

		flow, exists := byDate[key]
		if !exists {
			flow = &DailyFlow{Date: key}
			byDate[key] = flow
		}

		amount := decimal.NewFromFloat(task.TransactionAmount)
		if amount.IsPositive() {
			flow.Income = flow.Income.Add(amount)
		} else {
			flow.Expenses = flow.Expenses.Add(amount.Abs())
		}
		flow.Net = flow.Income.Sub(flow.Expenses)
	}

	result := make([]DailyFlow, 0, len(byDate))
	for _, flow := range byDate {
		result = append(result, *flow)
	}

	sort.Slice(result, func(i, j int) bool {
		a, _ := time.Parse(flowDateLayout, result[i].Date)
		b, _ := time.Parse(flowDateLayout, result[j].Date)
		return a.Before(b)
	})

	return result
}
