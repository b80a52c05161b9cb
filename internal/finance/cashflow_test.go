package finance

import (
	"testing"
	"time"

	"github.com/moondogdev/overwhelmed/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCashFlow(t *testing.T) {
	day1 := time.Date(2024, 2, 3, 10, 0, 0, 0, time.Local)
	day1Later := time.Date(2024, 2, 3, 18, 0, 0, 0, time.Local)
	day2 := time.Date(2024, 2, 10, 9, 0, 0, 0, time.Local)

	tasks := []model.Task{
		{ID: "1", OpenDate: ms(day2), TransactionAmount: 75},
		{ID: "2", OpenDate: ms(day1), TransactionAmount: 100},
		{ID: "3", OpenDate: ms(day1Later), TransactionAmount: -40},
		{ID: "4", OpenDate: ms(day1), TransactionAmount: 0},
	}

	flows := CashFlow(tasks, Filter{DateField: DateFieldOpen}, nil)
	require.Len(t, flows, 2)

	// Sorted ascending by parsed date, same-day amounts merged.
	assert.Equal(t, "2/3/2024", flows[0].Date)
	assert.Equal(t, "100", flows[0].Income.String())
	assert.Equal(t, "40", flows[0].Expenses.String())
	assert.Equal(t, "60", flows[0].Net.String())

	assert.Equal(t, "2/10/2024", flows[1].Date)
	assert.Equal(t, "75", flows[1].Income.String())
	assert.Equal(t, "0", flows[1].Expenses.String())
	assert.Equal(t, "75", flows[1].Net.String())
}

func TestCashFlowEmpty(t *testing.T) {
	flows := CashFlow(nil, Filter{}, nil)
	assert.Empty(t, flows)
}
