package taxreport

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Format selects the text serialization variant.
type Format string

// Serialization formats.
const (
	FormatSimplified Format = "simplified"
	FormatFull       Format = "full"
)

const lineDateLayout = "1/2/2006"

// Serialize renders a compiled report as plain text for clipboard export.
// The field order and the $X.XX two-decimal formatting are part of the
// contract: the output is a user-facing, copy-pasted artifact and must be
// byte-stable for a given report.
func Serialize(report Report, format Format) string {
	var b strings.Builder

	if report.Year > 0 {
		fmt.Fprintf(&b, "TAX REPORT %d\n", report.Year)
	} else {
		b.WriteString("TAX SUMMARY\n")
	}
	b.WriteString("\n")

	b.WriteString("INCOME\n")
	for _, group := range report.Income {
		fmt.Fprintf(&b, "%s: %s\n", group.Name, money(group.Total))
		if format == FormatFull {
			for _, line := range group.Lines {
				fmt.Fprintf(&b, "  %s  %s  %s\n",
					line.Task.OpenTime().Format(lineDateLayout),
					line.Task.Text,
					money(line.Income))
			}
		}
	}
	fmt.Fprintf(&b, "Total Taxable Income: %s\n", money(report.TotalTaxableIncome))
	b.WriteString("\n")

	b.WriteString("DEDUCTIBLE EXPENSES\n")
	for _, group := range report.Expenses {
		fmt.Fprintf(&b, "%s: %s\n", group.Name, money(group.Total))
		if format == FormatFull {
			for _, line := range group.Lines {
				fmt.Fprintf(&b, "  %s  %s  %s\n",
					line.Task.OpenTime().Format(lineDateLayout),
					line.Task.Text,
					money(line.Deductible))
			}
		}
	}
	fmt.Fprintf(&b, "Total Deductible Expenses: %s\n", money(report.TotalDeductibleExpenses))
	b.WriteString("\n")

	fmt.Fprintf(&b, "Estimated Net: %s\n", money(report.EstimatedNet))

	if report.Year > 0 {
		b.WriteString("\n")
		b.WriteString("W-2 WITHHOLDING\n")
		fmt.Fprintf(&b, "Federal: %s\n", money(decimal.NewFromFloat(report.W2.FederalWithholding)))
		fmt.Fprintf(&b, "Social Security: %s\n", money(decimal.NewFromFloat(report.W2.SocialSecurityWithholding)))
		fmt.Fprintf(&b, "Medicare: %s\n", money(decimal.NewFromFloat(report.W2.MedicareWithholding)))
		fmt.Fprintf(&b, "Total Withholding: %s\n", money(report.W2WithholdingTotal))
		b.WriteString("\n")

		b.WriteString("VEHICLE DEDUCTION\n")
		fmt.Fprintf(&b, "Standard Mileage (%.0f miles @ $%.2f/mile): %s\n",
			report.Vehicle.BusinessMiles, StandardMileageRate, money(report.Vehicle.StandardMileage))
		fmt.Fprintf(&b, "Parking Fees: %s\n", money(report.Vehicle.ParkingFees))
		fmt.Fprintf(&b, "Tolls: %s\n", money(report.Vehicle.Tolls))
		fmt.Fprintf(&b, "Property Tax: %s\n", money(report.Vehicle.PropertyTax))
		fmt.Fprintf(&b, "Total Vehicle Deduction: %s\n", money(report.Vehicle.Total))
		b.WriteString("\n")

		b.WriteString("DEPRECIABLE ASSETS\n")
		for _, line := range report.Assets {
			fmt.Fprintf(&b, "%s: %s\n", line.Asset.Description, money(line.Deduction))
		}
		fmt.Fprintf(&b, "Total Depreciation: %s\n", money(report.AssetTotal))
	}

	return b.String()
}

// money formats an amount as $X.XX with exactly two decimals.
func money(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}
