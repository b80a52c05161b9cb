package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/moondogdev/overwhelmed/internal/cli"
	"github.com/moondogdev/overwhelmed/internal/export"
	"github.com/moondogdev/overwhelmed/internal/model"
	"github.com/moondogdev/overwhelmed/internal/taxreport"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a tax report to CSV or XLSX",
		Long: `Compile a tax report and write it to a spreadsheet file.

CSV output is a single flat sheet with section, date, description, and
amount columns. XLSX output splits the report across Summary, Income,
Expenses, and (for year reports) Assets sheets.`,
		RunE: runExport,
	}

	cmd.Flags().IntP("year", "y", time.Now().Year(), "report year")
	cmd.Flags().String("format", "csv", "output format (csv, xlsx)")
	cmd.Flags().StringP("output", "o", "", "output file path (default: tax-report-<year>.<format>)")
	cmd.Flags().Bool("summary", false, "export an all-time summary instead of a year report")

	return cmd
}

func runExport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	year, _ := cmd.Flags().GetInt("year")
	format, _ := cmd.Flags().GetString("format")
	output, _ := cmd.Flags().GetString("output")
	summary, _ := cmd.Flags().GetBool("summary")

	if format != "csv" && format != "xlsx" {
		return fmt.Errorf("unknown format %q, expected csv or xlsx", format)
	}
	if output == "" {
		if summary {
			output = fmt.Sprintf("tax-summary.%s", format)
		} else {
			output = fmt.Sprintf("tax-report-%d.%s", year, format)
		}
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

	switch format {
	case "csv":
		err = writeCSVFile(output, report)
	case "xlsx":
		err = writeXLSXFile(output, report)
	}
	if err != nil {
		return err
	}

	slog.Info(cli.FormatSuccess(fmt.Sprintf("Exported report to %s", output)))
	return nil
}

func writeCSVFile(path string, report taxreport.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := export.WriteCSV(f, report); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func writeXLSXFile(path string, report taxreport.Report) error {
	workbook, err := export.BuildWorkbook(report)
	if err != nil {
		return err
	}
	defer func() { _ = workbook.Close() }()

	return workbook.SaveAs(path)
}
