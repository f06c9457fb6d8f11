package log

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"hartlog/internal/domain/fitlog"
)

var RemoveCmd = &cobra.Command{
	Use:   "rm <record-id>",
	Short: "Delete a record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := book(cmd.Context())
		if err != nil {
			return err
		}

		if err := b.Remove(cmd.Context(), args[0]); err != nil {
			if errors.Is(err, fitlog.ErrNotFound) {
				return fmt.Errorf("no record with id %q", args[0])
			}
			return fmt.Errorf("failed to delete record: %w", err)
		}

		fmt.Printf("Deleted record %s\n", args[0])
		return nil
	},
}
