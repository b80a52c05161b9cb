package main

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/moondogdev/overwhelmed/internal/cli"
	"github.com/moondogdev/overwhelmed/internal/depreciation"
)

func assetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assets",
		Short: "List depreciable assets and their deductions",
		Long: `List depreciable assets with the MACRS deduction each would earn for
the selected tax year.

The displayed deduction is always computed fresh from the asset's cost,
business-use percentage, and acquisition date; with --save the computed
values are also written back to settings as the cached current-year
depreciation.`,
		RunE: runAssets,
	}

	cmd.Flags().IntP("year", "y", time.Now().Year(), "tax year to compute deductions for")
	cmd.Flags().Bool("save", false, "persist the recomputed deductions to settings")

	return cmd
}

func runAssets(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	year, _ := cmd.Flags().GetInt("year")
	save, _ := cmd.Flags().GetBool("save")

	store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	settings, err := store.LoadSettings(ctx)
	if err != nil {
		return err
	}

	if len(settings.DepreciableAssets) == 0 {
		slog.Info(cli.FormatWarning("No depreciable assets recorded"))
		return nil
	}

	recomputed := depreciation.RecomputeAll(settings.DepreciableAssets, year)

	var b strings.Builder
	b.WriteString(cli.TableHeaderStyle.Render(fmt.Sprintf("%-28s %-12s %10s %6s %12s", "Description", "Acquired", "Cost", "Use%", "Deduction")))
	b.WriteString("\n")
	for _, asset := range recomputed {
		deduction := depreciation.Deduction(asset, year)
		row := fmt.Sprintf("%-28s %-12s %10.2f %5.0f%% %12s",
			asset.Description,
			asset.DateAcquired,
			asset.Cost,
			asset.BusinessUsePercentage,
			deduction.StringFixed(2))
		if asset.IsFullyDepreciated {
			row += "  (fully depreciated)"
		}
		b.WriteString(cli.TableCellStyle.Render(row))
		b.WriteString("\n")
	}
	fmt.Print(b.String())

	if !save {
		return nil
	}

	settings.DepreciableAssets = recomputed
	if err := store.SaveSettings(ctx, settings); err != nil {
		return err
	}

	slog.Info(cli.FormatSuccess(fmt.Sprintf("Saved deductions for %d asset(s)", len(recomputed))))
	return nil
}
