package journal

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"hartlog/internal/app/client"
	"hartlog/internal/domain/journal"
)

// JournalCmd is the parent command for goals and memories.
var JournalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Manage personal goals and memories",
	Long: `Goals and memories are free-form notes the AI coach reads on every
submit. Keep them short and current.`,
}

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Manage goals",
}

var memoryCmd = &cobra.Command{
	Use:   "memory",
	Short: "Manage memories",
}

func init() {
	goalCmd.AddCommand(itemListCmd("goal"))
	goalCmd.AddCommand(itemAddCmd("goal"))
	goalCmd.AddCommand(itemRmCmd("goal"))
	memoryCmd.AddCommand(itemListCmd("memory"))
	memoryCmd.AddCommand(itemAddCmd("memory"))
	memoryCmd.AddCommand(itemRmCmd("memory"))

	JournalCmd.AddCommand(goalCmd)
	JournalCmd.AddCommand(memoryCmd)
}

func itemListCmd(kind string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List " + kind + " items",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := client.FromContext(cmd.Context())
			if err != nil {
				return err
			}

			data := app.Journal(cmd.Context())
			items := journal.Normalize(pickItems(data, kind))
			if len(items) == 0 {
				fmt.Printf("No %s items yet. Add one with 'hartlog journal %s add <text>'.\n", kind, kind)
				return nil
			}

			for i, it := range items {
				fmt.Printf("%s %s\n", color.CyanString("%d.", i+1), it)
			}
			return nil
		},
	}
}

func itemAddCmd(kind string) *cobra.Command {
	return &cobra.Command{
		Use:   "add <text>",
		Short: "Add a " + kind,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := client.FromContext(cmd.Context())
			if err != nil {
				return err
			}

			text := strings.TrimSpace(strings.Join(args, " "))
			if text == "" {
				return fmt.Errorf("%s text is empty", kind)
			}

			data := app.Journal(cmd.Context())
			data = put(data, kind, append(pickItems(data, kind), journal.Item(text)))
			if err := save(cmd.Context(), app, data); err != nil {
				return err
			}

			fmt.Printf("Added %s: %s\n", kind, text)
			return nil
		},
	}
}

func itemRmCmd(kind string) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <index>",
		Short: "Remove a " + kind + " by its 1-based index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := client.FromContext(cmd.Context())
			if err != nil {
				return err
			}

			index, err := strconv.Atoi(args[0])
			if err != nil || index < 1 {
				return fmt.Errorf("invalid index %q", args[0])
			}

			data := app.Journal(cmd.Context())
			items := pickItems(data, kind)
			if index > len(items) {
				return fmt.Errorf("no %s at index %d, have %d", kind, index, len(items))
			}

			removed := items[index-1]
			items = append(items[:index-1], items[index:]...)
			data = put(data, kind, items)
			if err := save(cmd.Context(), app, data); err != nil {
				return err
			}

			fmt.Printf("Removed %s: %s\n", kind, string(removed))
			return nil
		},
	}
}

func pickItems(data journal.Data, kind string) []journal.Item {
	if kind == "goal" {
		return data.Goals
	}
	return data.Memories
}

func put(data journal.Data, kind string, items []journal.Item) journal.Data {
	if kind == "goal" {
		data.Goals = items
	} else {
		data.Memories = items
	}
	return data
}

func save(ctx context.Context, app *client.App, data journal.Data) error {
	if err := app.SaveJournal(ctx, data); err != nil {
		if errors.Is(err, client.ErrLoginRequired) {
			return fmt.Errorf("sign in first: journal changes need an account")
		}
		return fmt.Errorf("failed to save journal: %w", err)
	}
	return nil
}
