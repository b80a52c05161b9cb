package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/moondogdev/overwhelmed/internal/classify"
	"github.com/moondogdev/overwhelmed/internal/cli"
	"github.com/moondogdev/overwhelmed/internal/model"
)

func classifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Auto-tag tasks by keyword",
		Long: `Bulk auto-tag tasks using the keyword dictionaries in settings.

Income types are assigned to untagged income transactions (w2, then
business, then reimbursement); tax categories and organizational
categories are assigned by each category's keyword list. Already-tagged
tasks are always skipped, so runs are safe to repeat.`,
		RunE: runClassify,
	}

	cmd.Flags().String("income-type", "", "restrict income tagging to one type (w2, business, reimbursement)")
	cmd.Flags().Bool("tax", true, "assign tax categories by keyword")
	cmd.Flags().Bool("categories", false, "assign organizational categories by keyword")
	cmd.Flags().Bool("dry-run", false, "preview without saving")

	return cmd
}

func runClassify(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	incomeType, _ := cmd.Flags().GetString("income-type")
	tagTax, _ := cmd.Flags().GetBool("tax")
	tagCategories, _ := cmd.Flags().GetBool("categories")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

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

	tagged := 0
	open, completed, tagged = classifyAll(open, completed, settings, model.IncomeType(incomeType), tagTax, tagCategories)

	if tagged == 0 {
		slog.Info(cli.FormatWarning("Nothing to tag; all eligible tasks are already classified"))
		return nil
	}

	if dryRun {
		slog.Info(cli.FormatWarning(fmt.Sprintf("Dry run: %d task(s) would be tagged", tagged)))
		return nil
	}

	if err := store.ReplaceTasks(ctx, open, completed); err != nil {
		return err
	}

	slog.Info(cli.FormatSuccess(fmt.Sprintf("Tagged %d task(s)", tagged)))
	return nil
}

// classifyAll runs the selected auto-tag passes over both task lists,
// returning the updated lists and the total number of assignments.
func classifyAll(open, completed []model.Task, settings model.Settings, incomeType model.IncomeType, tagTax, tagCategories bool) ([]model.Task, []model.Task, int) {
	total := 0

	var n int
	open, n = classify.AutoTagIncomeTypes(open, nil, incomeType, settings.IncomeTypeKeywords)
	total += n
	completed, n = classify.AutoTagIncomeTypes(completed, nil, incomeType, settings.IncomeTypeKeywords)
	total += n

	if tagTax {
		open, n = classify.AutoTaxCategorize(open, nil, settings.TaxCategories)
		total += n
		completed, n = classify.AutoTaxCategorize(completed, nil, settings.TaxCategories)
		total += n
	}

	if tagCategories {
		open, n = classify.AutoCategorize(open, nil, settings.Categories)
		total += n
		completed, n = classify.AutoCategorize(completed, nil, settings.Categories)
		total += n
	}

	return open, completed, total
}
