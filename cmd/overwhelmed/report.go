package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/moondogdev/overwhelmed/internal/model"
	"github.com/moondogdev/overwhelmed/internal/taxreport"
)

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Compile a tax report",
		Long: `Compile a tax report over all recorded tasks and print it.

A year report restricts income and expenses to tasks opened in that
year and adds W-2 withholding, the vehicle deduction, and depreciable
asset sections. With --summary the report spans every task and carries
only the income and expense groupings.`,
		RunE: runReport,
	}

	cmd.Flags().IntP("year", "y", time.Now().Year(), "report year")
	cmd.Flags().String("format", string(taxreport.FormatSimplified), "output format (simplified, full)")
	cmd.Flags().Bool("summary", false, "compile an all-time summary instead of a year report")

	return cmd
}

func runReport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	year, _ := cmd.Flags().GetInt("year")
	format, _ := cmd.Flags().GetString("format")
	summary, _ := cmd.Flags().GetBool("summary")

	switch taxreport.Format(format) {
	case taxreport.FormatSimplified, taxreport.FormatFull:
	default:
		return fmt.Errorf("unknown format %q, expected simplified or full", format)
	}

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

	tasks := append(append([]model.Task{}, open...), completed...)

	var report taxreport.Report
	if summary {
		report = taxreport.CompileSummary(tasks, settings)
	} else {
		report = taxreport.Compile(year, tasks, settings)
	}

	fmt.Println(taxreport.Serialize(report, taxreport.Format(format)))
	return nil
}
