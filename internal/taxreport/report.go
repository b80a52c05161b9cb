// Package taxreport assembles per-year and summary tax reports from task
// records and settings, and serializes them for clipboard export.
package taxreport

import (
	"github.com/shopspring/decimal"

	"github.com/moondogdev/overwhelmed/internal/depreciation"
	"github.com/moondogdev/overwhelmed/internal/model"
	"github.com/moondogdev/overwhelmed/internal/settings"
)

// StandardMileageRate is the fixed per-mile vehicle deduction rate.
const StandardMileageRate = 0.67

// Income group display names, in report order.
const (
	GroupBusinessIncome = "Business Income (1099)"
	GroupW2Wages        = "W-2 Wages"
	GroupReimbursements = "Reimbursements"
)

// IncomeLine is one task's contribution to an income group.
type IncomeLine struct {
	Task   model.Task
	Income decimal.Decimal
}

// IncomeGroup collects the tasks of one income type.
type IncomeGroup struct {
	Name       string
	IncomeType model.IncomeType
	Lines      []IncomeLine
	Total      decimal.Decimal
}

// ExpenseLine is one expense transaction within a tax-category group.
// Amount is the gross absolute expense; Deductible applies the category's
// deductible percentage and appears only in per-line detail.
type ExpenseLine struct {
	Task       model.Task
	Amount     decimal.Decimal
	Deductible decimal.Decimal
}

// ExpenseGroup collects expense transactions by tax category. Total is the
// gross sum of absolute amounts: the deductible percentage is applied per
// line, never to the group total. Group totals therefore read as gross
// spend while lines read as net deductible.
type ExpenseGroup struct {
	TaxCategoryID        string
	Name                 string
	DeductiblePercentage int
	Lines                []ExpenseLine
	Total                decimal.Decimal
}

// AssetLine is one depreciable asset's deduction for the report year.
type AssetLine struct {
	Asset     model.DepreciableAsset
	Deduction decimal.Decimal
}

// VehicleDeduction breaks down the vehicle section of a year report.
type VehicleDeduction struct {
	BusinessMiles   float64
	StandardMileage decimal.Decimal
	ParkingFees     decimal.Decimal
	Tolls           decimal.Decimal
	PropertyTax     decimal.Decimal
	Total           decimal.Decimal
}

// Report is a compiled tax report. Year is zero in summary mode, where
// only the income and expense groupings are populated.
type Report struct {
	Year                    int
	Income                  []IncomeGroup
	Expenses                []ExpenseGroup
	TotalTaxableIncome      decimal.Decimal
	TotalDeductibleExpenses decimal.Decimal
	EstimatedNet            decimal.Decimal
	W2                      model.W2Data
	W2WithholdingTotal      decimal.Decimal
	Vehicle                 VehicleDeduction
	Assets                  []AssetLine
	AssetTotal              decimal.Decimal
}

// TaskIncome computes a task's total income contribution: the positive
// transaction amount plus time-tracked earnings when the task is completed
// with tracked time and a pay rate. The two components are summed, not
// exclusive; a task can contribute both.
func TaskIncome(task model.Task) decimal.Decimal {
	income := decimal.Zero
	if task.TransactionAmount > 0 {
		income = decimal.NewFromFloat(task.TransactionAmount)
	}
	if task.CompletedDuration != 0 && task.ManualTime > 0 && task.PayRate > 0 {
		earned := decimal.NewFromInt(task.ManualTime).
			Div(decimal.NewFromInt(3600000)).
			Mul(decimal.NewFromFloat(task.PayRate))
		income = income.Add(earned)
	}
	return income
}

// Compile builds the report for a single tax year. Tasks are restricted to
// those whose open date falls in that calendar year, independent of any
// interactive date filter.
func Compile(year int, tasks []model.Task, s model.Settings) Report {
	var yearTasks []model.Task
	for _, task := range tasks {
		if task.OpenTime().Year() == year {
			yearTasks = append(yearTasks, task)
		}
	}

	report := compileGroups(yearTasks, s)
	report.Year = year

	report.W2 = s.W2ForYear(year)
	report.W2WithholdingTotal = decimal.NewFromFloat(report.W2.TotalWithholding())

	report.Vehicle = compileVehicle(s)

	for _, asset := range s.DepreciableAssets {
		deduction := depreciation.Deduction(asset, year)
		report.Assets = append(report.Assets, AssetLine{Asset: asset, Deduction: deduction})
		report.AssetTotal = report.AssetTotal.Add(deduction)
	}

	return report
}

// CompileSummary builds the no-year summary report over the currently
// visible (already filtered) tasks. Only the income and expense groupings
// apply; withholding, vehicle, and asset sections stay empty.
func CompileSummary(tasks []model.Task, s model.Settings) Report {
	return compileGroups(tasks, s)
}

func compileGroups(tasks []model.Task, s model.Settings) Report {
	report := Report{
		Income: []IncomeGroup{
			{Name: GroupBusinessIncome, IncomeType: model.IncomeBusiness},
			{Name: GroupW2Wages, IncomeType: model.IncomeW2},
			{Name: GroupReimbursements, IncomeType: model.IncomeReimbursement},
		},
		TotalTaxableIncome:      decimal.Zero,
		TotalDeductibleExpenses: decimal.Zero,
		EstimatedNet:            decimal.Zero,
	}
	for i := range report.Income {
		report.Income[i].Total = decimal.Zero
	}

	for _, task := range tasks {
		income := TaskIncome(task)
		if !income.IsPositive() {
			continue
		}
		for i := range report.Income {
			if report.Income[i].IncomeType == task.IncomeType {
				report.Income[i].Lines = append(report.Income[i].Lines, IncomeLine{Task: task, Income: income})
				report.Income[i].Total = report.Income[i].Total.Add(income)
			}
		}
	}

	report.Expenses = compileExpenseGroups(tasks, s)

	for _, group := range report.Income {
		if group.IncomeType == model.IncomeReimbursement {
			continue
		}
		report.TotalTaxableIncome = report.TotalTaxableIncome.Add(group.Total)
	}
	for _, group := range report.Expenses {
		report.TotalDeductibleExpenses = report.TotalDeductibleExpenses.Add(group.Total)
	}
	report.EstimatedNet = report.TotalTaxableIncome.Sub(report.TotalDeductibleExpenses)

	return report
}

// compileExpenseGroups buckets expense transactions by tax category.
// Known categories appear in settings order; unassigned and dangling
// references follow in first-appearance order under the fallback labels.
func compileExpenseGroups(tasks []model.Task, s model.Settings) []ExpenseGroup {
	byID := make(map[string]*ExpenseGroup)
	var order []string

	for _, tc := range s.TaxCategories {
		byID[tc.ID] = &ExpenseGroup{
			TaxCategoryID:        tc.ID,
			Name:                 tc.Name,
			DeductiblePercentage: tc.DeductiblePercentage,
			Total:                decimal.Zero,
		}
		order = append(order, tc.ID)
	}

	for _, task := range tasks {
		if task.TransactionAmount >= 0 {
			continue
		}

		group, ok := byID[task.TaxCategoryID]
		if !ok {
			group = &ExpenseGroup{
				TaxCategoryID: task.TaxCategoryID,
				Name:          settings.TaxCategoryName(s, task.TaxCategoryID),
				Total:         decimal.Zero,
			}
			byID[task.TaxCategoryID] = group
			order = append(order, task.TaxCategoryID)
		}

		amount := decimal.NewFromFloat(task.TransactionAmount).Abs()
		group.Lines = append(group.Lines, ExpenseLine{
			Task:       task,
			Amount:     amount,
			Deductible: applyDeductible(amount, group.DeductiblePercentage),
		})
		group.Total = group.Total.Add(amount)
	}

	var groups []ExpenseGroup
	for _, id := range order {
		if len(byID[id].Lines) == 0 {
			continue
		}
		groups = append(groups, *byID[id])
	}
	return groups
}

// applyDeductible scales an amount by the category's deductible
// percentage. A zero (unset) percentage counts as fully deductible.
func applyDeductible(amount decimal.Decimal, percentage int) decimal.Decimal {
	if percentage <= 0 || percentage >= 100 {
		return amount
	}
	return amount.Mul(decimal.NewFromInt(int64(percentage))).Div(decimal.NewFromInt(100))
}

func compileVehicle(s model.Settings) VehicleDeduction {
	mileage := decimal.NewFromFloat(s.BusinessMiles).Mul(decimal.NewFromFloat(StandardMileageRate))
	parking := decimal.NewFromFloat(s.VehicleParkingFees)
	tolls := decimal.NewFromFloat(s.VehicleTolls)
	propertyTax := decimal.NewFromFloat(s.VehiclePropertyTax)

	return VehicleDeduction{
		BusinessMiles:   s.BusinessMiles,
		StandardMileage: mileage,
		ParkingFees:     parking,
		Tolls:           tolls,
		PropertyTax:     propertyTax,
		Total:           mileage.Add(parking).Add(tolls).Add(propertyTax),
	}
}
