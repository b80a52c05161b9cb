package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/moondogdev/overwhelmed/internal/cli"
	"github.com/moondogdev/overwhelmed/internal/settings"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage organizational categories",
		Long: `List, add, rename, and delete the categories tasks are filed under.

Deleting a parent category also deletes its sub-categories; tasks filed
under any removed category become uncategorized unless --reparent names
a surviving category to move them to.`,
	}

	cmd.AddCommand(categoriesListCmd())
	cmd.AddCommand(categoriesAddCmd())
	cmd.AddCommand(categoriesRenameCmd())
	cmd.AddCommand(categoriesDeleteCmd())

	return cmd
}

func categoriesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			s, err := store.LoadSettings(ctx)
			if err != nil {
				return err
			}

			if len(s.Categories) == 0 {
				slog.Info(cli.FormatWarning("No categories defined"))
				return nil
			}

			var b strings.Builder
			for _, c := range s.Categories {
				if c.IsSub() {
					continue
				}
				b.WriteString(fmt.Sprintf("%s  (%s)\n", c.Name, c.ID))
				for _, sub := range s.Categories {
					if sub.ParentID == c.ID {
						b.WriteString(fmt.Sprintf("  └ %s  (%s)\n", sub.Name, sub.ID))
					}
				}
			}
			fmt.Print(b.String())
			return nil
		},
	}
}

func categoriesAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			parentID, _ := cmd.Flags().GetString("parent")

			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			s, err := store.LoadSettings(ctx)
			if err != nil {
				return err
			}

			s, created := settings.AddCategory(s, args[0], parentID)
			if err := store.SaveSettings(ctx, s); err != nil {
				return err
			}

			slog.Info(cli.FormatSuccess(fmt.Sprintf("Added category %q (%s)", created.Name, created.ID)))
			return nil
		},
	}

	cmd.Flags().String("parent", "", "parent category ID (creates a sub-category)")
	return cmd
}

func categoriesRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <id> <name>",
		Short: "Rename a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			s, err := store.LoadSettings(ctx)
			if err != nil {
				return err
			}

			if _, ok := settings.CategoryByID(s, args[0]); !ok {
				return fmt.Errorf("no category with ID %q", args[0])
			}

			s = settings.RenameCategory(s, args[0], args[1])
			if err := store.SaveSettings(ctx, s); err != nil {
				return err
			}

			slog.Info(cli.FormatSuccess(fmt.Sprintf("Renamed category %s to %q", args[0], args[1])))
			return nil
		},
	}
}

func categoriesDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a category and its sub-categories",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			reparent, _ := cmd.Flags().GetString("reparent")

			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			s, err := store.LoadSettings(ctx)
			if err != nil {
				return err
			}

			if _, ok := settings.CategoryByID(s, args[0]); !ok {
				return fmt.Errorf("no category with ID %q", args[0])
			}
			if reparent != "" {
				if _, ok := settings.CategoryByID(s, reparent); !ok {
					return fmt.Errorf("no category with ID %q to reparent into", reparent)
				}
			}

			s, removedIDs := settings.DeleteCategory(s, args[0])

			open, completed, err := store.LoadTasks(ctx)
			if err != nil {
				return err
			}
			if reparent != "" {
				open = settings.ReparentTasks(open, removedIDs, reparent)
				completed = settings.ReparentTasks(completed, removedIDs, reparent)
			} else {
				open = settings.UncategorizeTasks(open, removedIDs)
				completed = settings.UncategorizeTasks(completed, removedIDs)
			}

			if err := store.ReplaceTasks(ctx, open, completed); err != nil {
				return err
			}
			if err := store.SaveSettings(ctx, s); err != nil {
				return err
			}

			slog.Info(cli.FormatSuccess(fmt.Sprintf("Deleted %d categor(ies)", len(removedIDs))))
			return nil
		},
	}

	cmd.Flags().String("reparent", "", "move affected tasks to this category instead of uncategorizing")
	return cmd
}
