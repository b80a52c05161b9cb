package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/moondogdev/overwhelmed/internal/cli"
	"github.com/moondogdev/overwhelmed/internal/finance"
	"github.com/moondogdev/overwhelmed/internal/model"
)

func summaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show income, expenses, and net profit",
		Long: `Summarize transaction amounts over a filtered window.

Filters combine: a date range (inclusive of the end day), an
organizational category or sub-category, an account, and a transaction
type. With --lifetime the filters are ignored and every transaction ever
recorded is summed.`,
		RunE: runSummary,
	}

	cmd.Flags().String("start", "", "start date (YYYY-MM-DD)")
	cmd.Flags().String("end", "", "end date (YYYY-MM-DD, inclusive)")
	cmd.Flags().String("category", "", "category ID, or 'all'")
	cmd.Flags().String("subcategory", "", "sub-category ID")
	cmd.Flags().String("account", "", "account ID, or 'all'")
	cmd.Flags().String("type", "", "transaction type (income, expense)")
	cmd.Flags().String("date-field", string(finance.DateFieldOpen), "date field to filter on (open, completion)")
	cmd.Flags().Bool("cash-flow", false, "show the per-day cash flow table")
	cmd.Flags().Bool("lifetime", false, "ignore filters and sum every transaction")

	return cmd
}

func runSummary(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	open, completed, err := store.LoadTasks(ctx)
	if err != nil {
		return err
	}
	settings, err := store.LoadSettings(ctx)
	if err != nil {
		return err
	}

	if lifetime, _ := cmd.Flags().GetBool("lifetime"); lifetime {
		s := finance.LifetimeSummary(open, completed)
		slog.Info(cli.RenderBox("Lifetime Summary", summaryContent(s)))
		return nil
	}

	filter, err := summaryFilter(cmd)
	if err != nil {
		return err
	}

	tasks := append(append([]model.Task{}, open...), completed...)
	s := finance.Summarize(tasks, filter, settings.Categories)
	slog.Info(cli.RenderBox("Financial Summary", summaryContent(s)))

	if cashFlow, _ := cmd.Flags().GetBool("cash-flow"); cashFlow {
		printCashFlow(finance.CashFlow(tasks, filter, settings.Categories))
	}

	return nil
}

func summaryFilter(cmd *cobra.Command) (finance.Filter, error) {
	startStr, _ := cmd.Flags().GetString("start")
	endStr, _ := cmd.Flags().GetString("end")
	category, _ := cmd.Flags().GetString("category")
	subcategory, _ := cmd.Flags().GetString("subcategory")
	account, _ := cmd.Flags().GetString("account")
	txType, _ := cmd.Flags().GetString("type")
	dateField, _ := cmd.Flags().GetString("date-field")

	start, err := parseDateFlag(startStr)
	if err != nil {
		return finance.Filter{}, err
	}
	end, err := parseDateFlag(endStr)
	if err != nil {
		return finance.Filter{}, err
	}
	if end != nil {
		normalized := finance.NormalizeEnd(*end)
		end = &normalized
	}

	return finance.Filter{
		Start:           start,
		End:             end,
		CategoryID:      category,
		SubcategoryID:   subcategory,
		AccountID:       account,
		TransactionType: model.TransactionType(txType),
		DateField:       finance.DateField(dateField),
	}, nil
}

func summaryContent(s finance.Summary) string {
	return fmt.Sprintf("Total income:   $%s\nTotal expenses: $%s\nNet profit:     $%s",
		s.TotalIncome.StringFixed(2),
		s.TotalExpenses.StringFixed(2),
		s.NetProfit.StringFixed(2))
}

func printCashFlow(flows []finance.DailyFlow) {
	if len(flows) == 0 {
		slog.Info(cli.FormatWarning("No transactions in range"))
		return
	}

	var b strings.Builder
	b.WriteString(cli.TableHeaderStyle.Render(fmt.Sprintf("%-12s %12s %12s %12s", "Date", "Income", "Expenses", "Net")))
	b.WriteString("\n")
	for _, flow := range flows {
		row := fmt.Sprintf("%-12s %12s %12s %12s",
			flow.Date,
			flow.Income.StringFixed(2),
			flow.Expenses.StringFixed(2),
			flow.Net.StringFixed(2))
		b.WriteString(cli.TableCellStyle.Render(row))
		b.WriteString("\n")
	}
	fmt.Print(b.String())
}
