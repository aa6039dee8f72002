package dietplan

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"
)

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "Show daily nutrition targets derived from profile and goal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			t, err := currentTargets(sqldb)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if t.BMR > 0 {
				fmt.Fprintf(out, "BMR: %d kcal\nTDEE: %d kcal\n", t.BMR, t.TDEE)
			}
			fmt.Fprintf(out, "Calories: %d kcal\nProtein: %d g\nCarbs: %d g\nFat: %d g\n", t.Calories, t.ProteinG, t.CarbsG, t.FatG)
			if t.Status != "" {
				fmt.Fprintf(out, "Status: %s\n", t.Status)
			}
			for _, note := range t.Notes {
				fmt.Fprintf(out, "Note: %s\n", note)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(targetsCmd)
}
