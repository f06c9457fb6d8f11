package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"hartlog/internal/domain/fitlog"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show session, subscription and sync status",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		sess := app.Session()
		if sess.Authenticated() {
			fmt.Printf("Signed in as: %s\n", color.CyanString(sess.UserID))
		} else {
			fmt.Println("Signed out. Logs stay on this machine only.")
		}

		ent, err := app.Entitlement(ctx)
		if err != nil {
			fmt.Println(color.YellowString("Subscription: unknown (server unreachable)"))
		} else if ent.Subscribed {
			fmt.Println("Subscription: " + color.GreenString("Pro"))
		} else if ent.Authenticated {
			fmt.Println("Subscription: free (sync and coaching disabled)")
		}

		if err := app.HealthCheck(ctx); err != nil {
			fmt.Printf("Server %s: %s\n", cfg.ServerAddress, color.RedString("unreachable"))
		} else {
			fmt.Printf("Server %s: %s\n", cfg.ServerAddress, color.GreenString("ok"))
		}

		fmt.Printf("Local cache: %s\n", cfg.DataPath)

		for _, cat := range []fitlog.Category{fitlog.CategoryWorkout, fitlog.CategoryEating} {
			book, err := app.Book(cat)
			if err != nil {
				continue
			}
			book.Refresh(ctx)
			fmt.Printf("%s records: %d\n", cat, len(book.Records()))
		}

		return nil
	},
}
