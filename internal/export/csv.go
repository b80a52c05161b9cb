// Package export writes compiled tax reports to CSV and XLSX files.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/moondogdev/overwhelmed/internal/taxreport"
)

const lineDateLayout = "1/2/2006"

// WriteCSV writes the report as CSV. A UTF-8 BOM is prepended so Excel
// opens the file correctly. Row order matches the text serialization.
func WriteCSV(w io.Writer, report taxreport.Report) error {
	if _, err := io.WriteString(w, "\xEF\xBB\xBF"); err != nil {
		return fmt.Errorf("failed to write BOM: %w", err)
	}

	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"Section", "Date", "Description", "Amount"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	write := func(record []string) error {
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
		return nil
	}

	for _, group := range report.Income {
		for _, line := range group.Lines {
			if err := write([]string{
				group.Name,
				line.Task.OpenTime().Format(lineDateLayout),
				line.Task.Text,
				line.Income.StringFixed(2),
			}); err != nil {
				return err
			}
		}
		if err := write([]string{group.Name, "", "Total", group.Total.StringFixed(2)}); err != nil {
			return err
		}
	}

	for _, group := range report.Expenses {
		for _, line := range group.Lines {
			if err := write([]string{
				group.Name,
				line.Task.OpenTime().Format(lineDateLayout),
				line.Task.Text,
				line.Deductible.StringFixed(2),
			}); err != nil {
				return err
			}
		}
		if err := write([]string{group.Name, "", "Total", group.Total.StringFixed(2)}); err != nil {
			return err
		}
	}

	totals := []struct {
		label  string
		amount decimal.Decimal
	}{
		{"Total Taxable Income", report.TotalTaxableIncome},
		{"Total Deductible Expenses", report.TotalDeductibleExpenses},
		{"Estimated Net", report.EstimatedNet},
	}
	for _, total := range totals {
		if err := write([]string{"Totals", "", total.label, total.amount.StringFixed(2)}); err != nil {
			return err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}
