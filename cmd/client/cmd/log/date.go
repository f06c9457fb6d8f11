package log

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"hartlog/internal/domain/fitlog"
)

var DateCmd = &cobra.Command{
	Use:   "date <record-id> <YYYY-MM-DD>",
	Short: "Change a record's date",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := book(cmd.Context())
		if err != nil {
			return err
		}

		date, err := time.ParseInLocation("2006-01-02", args[1], time.Local)
		if err != nil {
			return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", args[1])
		}

		if err := b.SetDate(cmd.Context(), args[0], date); err != nil {
			if errors.Is(err, fitlog.ErrNotFound) {
				return fmt.Errorf("no record with id %q", args[0])
			}
			return fmt.Errorf("failed to set date: %w", err)
		}

		fmt.Printf("Record %s dated %s\n", args[0], date.Format("2006-01-02"))
		return nil
	},
}

var CollapseCmd = &cobra.Command{
	Use:   "collapse <record-id>",
	Short: "Toggle a record's collapsed state",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := book(cmd.Context())
		if err != nil {
			return err
		}

		if err := b.ToggleCollapse(cmd.Context(), args[0]); err != nil {
			if errors.Is(err, fitlog.ErrNotFound) {
				return fmt.Errorf("no record with id %q", args[0])
			}
			return fmt.Errorf("failed to toggle collapse: %w", err)
		}

		rec, err := b.Record(args[0])
		if err != nil {
			return err
		}
		state := "expanded"
		if rec.Collapsed {
			state = "collapsed"
		}
		fmt.Printf("Record %s is now %s\n", args[0], state)
		return nil
	},
}
