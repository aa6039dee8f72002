package dietplan

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samuhlo/diet-planner-cli/internal/service"
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Manage the weight-loss goal",
}

var (
	goalStart  string
	goalEnd    string
	goalTarget float64
)

var goalSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set a weight goal over a date window",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			if _, err := service.SetGoal(sqldb, service.GoalInput{
				StartDate:      goalStart,
				EndDate:        goalEnd,
				TargetWeightKG: goalTarget,
			}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set goal: %.1f kg by %s\n", goalTarget, goalEnd)
			return nil
		})
	},
}

var goalShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current goal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			g, err := service.CurrentGoal(sqldb)
			if err != nil {
				return err
			}
			if g == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No goal configured")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Window: %s to %s\nTarget: %.1f kg\n", g.StartDate, g.EndDate, g.TargetWeightKG)
			return nil
		})
	},
}

var goalHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show goal history",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			goals, err := service.GoalHistory(sqldb)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "START\tEND\tTARGET_KG")
			for _, g := range goals {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%.1f\n", g.StartDate, g.EndDate, g.TargetWeightKG)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(goalCmd)
	goalCmd.AddCommand(goalSetCmd, goalShowCmd, goalHistoryCmd)

	goalSetCmd.Flags().StringVar(&goalStart, "start", "", "Start date YYYY-MM-DD")
	goalSetCmd.Flags().StringVar(&goalEnd, "end", "", "End date YYYY-MM-DD")
	goalSetCmd.Flags().Float64Var(&goalTarget, "target", 0, "Target weight in kg")
	_ = goalSetCmd.MarkFlagRequired("start")
	_ = goalSetCmd.MarkFlagRequired("end")
	_ = goalSetCmd.MarkFlagRequired("target")
}
