package log

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var AddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new empty record dated today",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := book(cmd.Context())
		if err != nil {
			return err
		}

		rec, err := b.Add(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to add record: %w", err)
		}

		fmt.Printf("Added record %s dated %s\n", color.CyanString(rec.ID), rec.Date.Format("2006-01-02"))
		return nil
	},
}
