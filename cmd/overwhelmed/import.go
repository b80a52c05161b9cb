package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/moondogdev/overwhelmed/internal/cli"
	"github.com/moondogdev/overwhelmed/internal/model"
	"github.com/moondogdev/overwhelmed/internal/ofx"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import [files...]",
		Short: "Import transactions from OFX/QFX files",
		Long: `Import bank transactions from OFX or QFX files as task records.

Each transaction becomes an open task dated by its posted date, with
the signed amount and a transaction type inferred from its sign.
Auto-classification runs on the imported tasks using the keyword
dictionaries in settings.

Examples:
  overwhelmed import ~/Downloads/chase_jan.qfx
  overwhelmed import ~/Downloads/*.qfx`,
		Args: cobra.MinimumNArgs(1),
		RunE: runImport,
	}

	cmd.Flags().BoolP("dry-run", "d", false, "preview import without saving")
	cmd.Flags().Bool("classify", true, "run keyword auto-classification on imported tasks")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	autoTag, _ := cmd.Flags().GetBool("classify")

	var files []string
	for _, pattern := range args {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return fmt.Errorf("invalid pattern %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			if _, err := os.Stat(pattern); err == nil {
				files = append(files, pattern)
			} else {
				slog.Warn("No files found matching pattern", "pattern", pattern)
			}
			continue
		}
		files = append(files, matches...)
	}

	if len(files) == 0 {
		return fmt.Errorf("no files found to import")
	}

	slog.Info(cli.FormatTitle("Importing OFX files..."), "file_count", len(files), "dry_run", dryRun)

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Parsing files..."),
		progressbar.OptionClearOnFinish(),
	)

	parser := ofx.NewParser()
	var imported []model.Task

	for _, path := range files {
		tasks, err := importOneFile(ctx, parser, path)
		_ = bar.Add(1)
		if err != nil {
			slog.Error("Failed to import file", "file", path, "error", err)
			continue
		}
		if len(tasks) == 0 {
			slog.Warn("No transactions found in file", "file", filepath.Base(path))
			continue
		}
		imported = append(imported, tasks...)
	}
	_ = bar.Finish()

	if len(imported) == 0 {
		slog.Warn(cli.FormatWarning("No transactions found in any file"))
		return nil
	}

	if dryRun {
		slog.Info(cli.FormatWarning(fmt.Sprintf("Dry run: %d transaction(s) would be imported", len(imported))))
		return nil
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

	open = append(open, imported...)

	tagged := 0
	if autoTag {
		open, completed, tagged = classifyAll(open, completed, settings, "", true, true)
	}

	if err := store.ReplaceTasks(ctx, open, completed); err != nil {
		return err
	}

	slog.Info(cli.FormatSuccess(fmt.Sprintf("Imported %d transaction(s), tagged %d", len(imported), tagged)))
	return nil
}

func importOneFile(ctx context.Context, parser *ofx.Parser, path string) ([]model.Task, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	return parser.ParseFile(ctx, f)
}
