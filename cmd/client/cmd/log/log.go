package log

import (
	"context"

	"github.com/spf13/cobra"

	"hartlog/internal/app/client"
	"hartlog/internal/domain/fitlog"
)

var category string

// LogCmd is the parent command for all record operations.
var LogCmd = &cobra.Command{
	Use:   "log",
	Short: "Manage workout and meal logs",
	Long: `View and edit daily log records. Every command operates on one
category, selected with --category (workout or eating).`,
}

func init() {
	LogCmd.PersistentFlags().StringVarP(&category, "category", "c", "workout", "log category: workout or eating")

	LogCmd.AddCommand(ListCmd)
	LogCmd.AddCommand(AddCmd)
	LogCmd.AddCommand(RemoveCmd)
	LogCmd.AddCommand(DateCmd)
	LogCmd.AddCommand(CollapseCmd)
	LogCmd.AddCommand(EntryCmd)
	LogCmd.AddCommand(SubmitCmd)
}

// book resolves the selected category's log book and loads its records.
func book(ctx context.Context) (*client.LogBook, error) {
	app, err := client.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	cat := fitlog.Category(category)
	if err := cat.Validate(); err != nil {
		return nil, err
	}

	b, err := app.Book(cat)
	if err != nil {
		return nil, err
	}
	b.Refresh(ctx)
	return b, nil
}
