package dietplan

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samuhlo/diet-planner-cli/internal/service"
)

var weightCmd = &cobra.Command{
	Use:   "weight",
	Short: "Track body weight over time",
}

var (
	weightValue float64
	weightDate  string
	weightNotes string
	weightLimit int
)

var weightAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Append a weight log entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		measured, err := parseDateOrNow(weightDate)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			id, err := service.AddWeightEntry(sqldb, service.WeightEntryInput{
				WeightKG:   weightValue,
				MeasuredAt: measured,
				Notes:      weightNotes,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added weight entry %d (%.1f kg)\n", id, weightValue)
			return nil
		})
	},
}

var weightListCmd = &cobra.Command{
	Use:   "list",
	Short: "List weight log entries, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			entries, err := service.ListWeightEntries(sqldb, weightLimit)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "DATE\tKG\tNOTES")
			for _, e := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%.1f\t%s\n", e.MeasuredAt.Format("2006-01-02"), e.WeightKG, e.Notes)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(weightCmd)
	weightCmd.AddCommand(weightAddCmd, weightListCmd)

	weightAddCmd.Flags().Float64Var(&weightValue, "kg", 0, "Weight in kg")
	weightAddCmd.Flags().StringVar(&weightDate, "date", "", "Measurement date YYYY-MM-DD (default today)")
	weightAddCmd.Flags().StringVar(&weightNotes, "notes", "", "Optional notes")
	_ = weightAddCmd.MarkFlagRequired("kg")

	weightListCmd.Flags().IntVar(&weightLimit, "limit", 50, "Maximum entries to list")
}
