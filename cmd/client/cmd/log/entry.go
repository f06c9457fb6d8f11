package log

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"hartlog/internal/domain/fitlog"
)

var (
	entryKind     string
	entryName     string
	entrySets     string
	entryReps     string
	entryWeight   string
	entryDuration string
	entryDistance string
	entryPace     string
	entryCalories string
	entryNotes    string
)

var EntryCmd = &cobra.Command{
	Use:   "entry",
	Short: "Manage entries inside a record",
}

var entryAddCmd = &cobra.Command{
	Use:   "add <record-id>",
	Short: "Append an entry to a record",
	Long: `Append one entry to a record. The entry kind must belong to the
selected category: Strength, Cardio or Fitness for workouts; Breakfast,
Lunch, Dinner or Snack for eating logs.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := book(cmd.Context())
		if err != nil {
			return err
		}

		entry := fitlog.Entry{
			Kind:     entryKind,
			Name:     entryName,
			Sets:     entrySets,
			Reps:     entryReps,
			Weight:   entryWeight,
			Duration: entryDuration,
			Distance: entryDistance,
			Pace:     entryPace,
			Calories: entryCalories,
			Notes:    entryNotes,
		}

		if err := b.AddEntry(cmd.Context(), args[0], entry); err != nil {
			switch {
			case errors.Is(err, fitlog.ErrNotFound):
				return fmt.Errorf("no record with id %q", args[0])
			case errors.Is(err, fitlog.ErrInvalidKind):
				return fmt.Errorf("kind %q is not valid here, use one of: %s",
					entryKind, strings.Join(b.Category().EntryKinds(), ", "))
			}
			return fmt.Errorf("failed to add entry: %w", err)
		}

		fmt.Printf("Added %s entry to record %s\n", entryKind, args[0])
		return nil
	},
}

var entryRmCmd = &cobra.Command{
	Use:   "rm <record-id> <index>",
	Short: "Remove an entry from a record by its 1-based index",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := book(cmd.Context())
		if err != nil {
			return err
		}

		index, err := strconv.Atoi(args[1])
		if err != nil || index < 1 {
			return fmt.Errorf("invalid entry index %q", args[1])
		}

		if err := b.RemoveEntry(cmd.Context(), args[0], index-1); err != nil {
			if errors.Is(err, fitlog.ErrNotFound) {
				return fmt.Errorf("no record with id %q", args[0])
			}
			return fmt.Errorf("failed to remove entry: %w", err)
		}

		fmt.Printf("Removed entry %d from record %s\n", index, args[0])
		return nil
	},
}

func init() {
	entryAddCmd.Flags().StringVarP(&entryKind, "kind", "k", "", "entry kind (required)")
	entryAddCmd.Flags().StringVarP(&entryName, "name", "n", "", "exercise or meal name")
	entryAddCmd.Flags().StringVar(&entrySets, "sets", "", "number of sets")
	entryAddCmd.Flags().StringVar(&entryReps, "reps", "", "reps per set")
	entryAddCmd.Flags().StringVar(&entryWeight, "weight", "", "working weight")
	entryAddCmd.Flags().StringVar(&entryDuration, "duration", "", "duration")
	entryAddCmd.Flags().StringVar(&entryDistance, "distance", "", "distance")
	entryAddCmd.Flags().StringVar(&entryPace, "pace", "", "pace")
	entryAddCmd.Flags().StringVar(&entryCalories, "calories", "", "calories")
	entryAddCmd.Flags().StringVar(&entryNotes, "notes", "", "free-form notes")
	_ = entryAddCmd.MarkFlagRequired("kind")

	EntryCmd.AddCommand(entryAddCmd)
	EntryCmd.AddCommand(entryRmCmd)
}
