package log

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"hartlog/internal/domain/fitlog"
)

var listFormat string

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "List log records",
	Long: `Show all records in the selected category, newest first. Collapsed
records print as a single summary line.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := book(cmd.Context())
		if err != nil {
			return err
		}

		records := b.Records()

		switch listFormat {
		case "json":
			return printRecordsJSON(records)
		case "table":
			return printRecordsTable(b.Category(), records)
		default:
			return printRecordsSimple(b.Category(), records)
		}
	},
}

func printRecordsSimple(cat fitlog.Category, records []fitlog.Record) error {
	if len(records) == 0 {
		fmt.Println("No records yet. Add one with 'hartlog log add'.")
		return nil
	}

	for _, rec := range records {
		date := rec.Date.Format("Mon 02 Jan 2006")
		if rec.Collapsed {
			fmt.Printf("%s  %s  %s\n", color.CyanString(rec.ID), date, oneLine(fitlog.EntrySummary(cat, rec)))
			continue
		}

		fmt.Printf("%s  %s\n", color.CyanString(rec.ID), date)
		if len(rec.Entries) == 0 {
			fmt.Println("   (no entries)")
		}
		for i, e := range rec.Entries {
			fmt.Printf("   %d. %s\n", i+1, entryLine(e))
		}
		if rec.Feedback != "" {
			fmt.Printf("   %s %s\n", color.GreenString("coach:"), truncate(rec.Feedback, 100))
		}
		fmt.Println()
	}

	return nil
}

func printRecordsTable(cat fitlog.Category, records []fitlog.Record) error {
	if len(records) == 0 {
		fmt.Println("No records yet.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tDate\tEntries\tFeedback\tSummary\t\n")
	fmt.Fprintf(w, "---\t---\t---\t---\t---\t\n")

	for _, rec := range records {
		feedback := "-"
		if rec.Feedback != "" {
			feedback = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t\n",
			rec.ID,
			rec.Date.Format("2006-01-02"),
			len(rec.Entries),
			feedback,
			truncate(oneLine(fitlog.EntrySummary(cat, rec)), 50),
		)
	}

	w.Flush()
	fmt.Printf("\nTotal records: %d\n", len(records))
	return nil
}

func printRecordsJSON(records []fitlog.Record) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(records)
}

func entryLine(e fitlog.Entry) string {
	parts := []string{e.Kind}
	if e.Name != "" {
		parts = append(parts, e.Name)
	}
	for _, p := range []struct{ label, v string }{
		{"sets", e.Sets},
		{"reps", e.Reps},
		{"weight", e.Weight},
		{"duration", e.Duration},
		{"distance", e.Distance},
		{"pace", e.Pace},
		{"calories", e.Calories},
	} {
		if p.v != "" {
			parts = append(parts, p.label+"="+p.v)
		}
	}
	line := parts[0]
	for _, p := range parts[1:] {
		line += " " + p
	}
	if e.Notes != "" {
		line += " (" + e.Notes + ")"
	}
	return line
}

func oneLine(s string) string {
	return strings.ReplaceAll(s, "\n", " | ")
}

func truncate(s string, length int) string {
	if len(s) <= length {
		return s
	}
	return s[:length-3] + "..."
}

func init() {
	ListCmd.Flags().StringVarP(&listFormat, "format", "f", "simple", "output format (simple, table, json)")
}
