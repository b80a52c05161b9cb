package export

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/moondogdev/overwhelmed/internal/taxreport"
)

// decimalCell converts an exact amount to the float64 cell value excelize
// expects. Reports round at display, so the conversion is safe here.
func decimalCell(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

// BuildWorkbook renders the report as an xlsx workbook with Summary,
// Income, Expenses, and Assets sheets. The caller saves or streams the
// returned file.
func BuildWorkbook(report taxreport.Report) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", "Summary"); err != nil {
		return nil, fmt.Errorf("failed to rename summary sheet: %w", err)
	}

	if err := writeSummarySheet(f, report); err != nil {
		return nil, err
	}
	if err := writeIncomeSheet(f, report); err != nil {
		return nil, err
	}
	if err := writeExpensesSheet(f, report); err != nil {
		return nil, err
	}
	if report.Year > 0 {
		if err := writeAssetsSheet(f, report); err != nil {
			return nil, err
		}
	}

	return f, nil
}

func writeSummarySheet(f *excelize.File, report taxreport.Report) error {
	rows := [][]any{
		{"Tax Year", report.Year},
		{"Total Taxable Income", decimalCell(report.TotalTaxableIncome)},
		{"Total Deductible Expenses", decimalCell(report.TotalDeductibleExpenses)},
		{"Estimated Net", decimalCell(report.EstimatedNet)},
	}
	if report.Year > 0 {
		rows = append(rows,
			[]any{"W-2 Withholding", decimalCell(report.W2WithholdingTotal)},
			[]any{"Vehicle Deduction", decimalCell(report.Vehicle.Total)},
			[]any{"Depreciation", decimalCell(report.AssetTotal)},
		)
	}
	return writeRows(f, "Summary", nil, rows)
}

func writeIncomeSheet(f *excelize.File, report taxreport.Report) error {
	var rows [][]any
	for _, group := range report.Income {
		for _, line := range group.Lines {
			rows = append(rows, []any{
				group.Name,
				line.Task.OpenTime().Format(lineDateLayout),
				line.Task.Text,
				decimalCell(line.Income),
			})
		}
	}
	return writeSheet(f, "Income", []any{"Group", "Date", "Description", "Amount"}, rows)
}

func writeExpensesSheet(f *excelize.File, report taxreport.Report) error {
	var rows [][]any
	for _, group := range report.Expenses {
		for _, line := range group.Lines {
			rows = append(rows, []any{
				group.Name,
				line.Task.OpenTime().Format(lineDateLayout),
				line.Task.Text,
				decimalCell(line.Amount),
				decimalCell(line.Deductible),
			})
		}
	}
	return writeSheet(f, "Expenses", []any{"Tax Category", "Date", "Description", "Amount", "Deductible"}, rows)
}

func writeAssetsSheet(f *excelize.File, report taxreport.Report) error {
	var rows [][]any
	for _, line := range report.Assets {
		rows = append(rows, []any{
			line.Asset.Description,
			line.Asset.DateAcquired,
			line.Asset.Cost,
			line.Asset.BusinessUsePercentage,
			decimalCell(line.Deduction),
		})
	}
	return writeSheet(f, "Assets", []any{"Description", "Date Acquired", "Cost", "Business Use %", "Deduction"}, rows)
}

func writeSheet(f *excelize.File, name string, header []any, rows [][]any) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", name, err)
	}
	return writeRows(f, name, header, rows)
}

func writeRows(f *excelize.File, sheet string, header []any, rows [][]any) error {
	row := 1
	if header != nil {
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", row), &header); err != nil {
			return fmt.Errorf("failed to write header on %s: %w", sheet, err)
		}
		row++
	}
	for i := range rows {
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", row), &rows[i]); err != nil {
			return fmt.Errorf("failed to write row on %s: %w", sheet, err)
		}
		row++
	}
	return nil
}
