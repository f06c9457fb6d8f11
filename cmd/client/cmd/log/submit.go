package log

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"hartlog/internal/app/client"
	"hartlog/internal/domain/fitlog"
)

var SubmitCmd = &cobra.Command{
	Use:   "submit <record-id>",
	Short: "Send a record to the AI coach and store the feedback",
	Long: `Submit a record for coaching feedback. Requires a signed-in session
with an active subscription. The feedback is saved on the record and shown
in 'hartlog log list'.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := book(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Println("Requesting coaching feedback...")

		feedback, err := b.Submit(cmd.Context(), args[0])
		if err != nil {
			switch {
			case errors.Is(err, client.ErrLoginRequired):
				return fmt.Errorf("sign in first: set HARTLOG_USER_ID and HARTLOG_TOKEN or pass --user and --token")
			case errors.Is(err, client.ErrSubscriptionRequired):
				return fmt.Errorf("coaching feedback needs a Pro subscription")
			case errors.Is(err, fitlog.ErrNotFound):
				return fmt.Errorf("no record with id %q", args[0])
			case errors.Is(err, fitlog.ErrNoEntries):
				return fmt.Errorf("record %s has no entries to review", args[0])
			case errors.Is(err, client.ErrSubmitPending):
				return fmt.Errorf("a coaching request for this record is already running")
			}
			return fmt.Errorf("coaching request failed: %w", err)
		}

		fmt.Println()
		fmt.Println(color.GreenString("Coach feedback:"))
		fmt.Println(feedback)
		return nil
	},
}
