package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/moondogdev/overwhelmed/internal/cli"
	"github.com/moondogdev/overwhelmed/internal/storage"
)

func backupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Manage database backups",
		Long: `Create, list, restore, delete, and export JSON backups of the full
database state: tasks, completed tasks, and settings.

Backups use the same JSON layout the desktop app saves, so files
exported from either side restore cleanly on the other.`,
	}

	cmd.AddCommand(backupListCmd())
	cmd.AddCommand(backupCreateCmd())
	cmd.AddCommand(backupRestoreCmd())
	cmd.AddCommand(backupDeleteCmd())
	cmd.AddCommand(backupExportCmd())

	return cmd
}

func backupListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List backups, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			backups, err := openBackups()
			if err != nil {
				return err
			}

			infos, err := backups.List(ctx)
			if err != nil {
				return err
			}
			if len(infos) == 0 {
				slog.Info(cli.FormatWarning(fmt.Sprintf("No backups in %s", backups.Dir())))
				return nil
			}

			var b strings.Builder
			b.WriteString(cli.TableHeaderStyle.Render(fmt.Sprintf("%-40s %-20s %10s", "Name", "Created", "Size")))
			b.WriteString("\n")
			for _, info := range infos {
				row := fmt.Sprintf("%-40s %-20s %9dB", info.Name, info.ModTime.Format("2006-01-02 15:04:05"), info.Size)
				b.WriteString(cli.TableCellStyle.Render(row))
				b.WriteString("\n")
			}
			fmt.Print(b.String())
			return nil
		},
	}
}

func backupCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Create a manual backup of the current database",
		RunE: func(cmd *cobra.Command, _ []string) error {
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

			backups, err := openBackups()
			if err != nil {
				return err
			}

			snapshot := storage.DefaultSnapshot()
			snapshot.Words = open
			snapshot.CompletedWords = completed
			snapshot.Settings = settings

			info, err := backups.CreateManual(ctx, snapshot)
			if err != nil {
				return err
			}

			slog.Info(cli.FormatSuccess(fmt.Sprintf("Created backup %s", info.Name)))
			return nil
		},
	}
}

func backupRestoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore <name>",
		Short: "Restore the database from a backup",
		Long: `Replace all tasks and settings with the contents of the named backup.
The current state is overwritten; create a backup first if it matters.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			backups, err := openBackups()
			if err != nil {
				return err
			}

			snapshot, err := backups.Restore(ctx, args[0])
			if err != nil {
				return err
			}

			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.ReplaceTasks(ctx, snapshot.Words, snapshot.CompletedWords); err != nil {
				return err
			}
			if err := store.SaveSettings(ctx, snapshot.Settings); err != nil {
				return err
			}

			slog.Info(cli.FormatSuccess(fmt.Sprintf("Restored %d task(s) and settings from %s",
				len(snapshot.Words)+len(snapshot.CompletedWords), args[0])))
			return nil
		},
	}
}

func backupDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			backups, err := openBackups()
			if err != nil {
				return err
			}

			if err := backups.Delete(ctx, args[0]); err != nil {
				return err
			}

			slog.Info(cli.FormatSuccess(fmt.Sprintf("Deleted backup %s", args[0])))
			return nil
		},
	}
}

func backupExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <name> <dest>",
		Short: "Copy a backup to a destination path",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			backups, err := openBackups()
			if err != nil {
				return err
			}

			if err := backups.Export(ctx, args[0], args[1]); err != nil {
				return err
			}

			slog.Info(cli.FormatSuccess(fmt.Sprintf("Exported %s to %s", args[0], args[1])))
			return nil
		},
	}
}
