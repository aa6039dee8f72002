package dietplan

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samuhlo/diet-planner-cli/internal/service"
)

var nutritionCmd = &cobra.Command{
	Use:   "nutrition",
	Short: "Nutrition rollups for the weekly plan",
}

var nutritionDay string

var nutritionDayCmd = &cobra.Command{
	Use:   "day",
	Short: "Show one day's nutrition totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := parseDay(nutritionDay)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			agg, _, err := loadAggregator(sqldb, newLogger())
			if err != nil {
				return err
			}
			plan, err := service.LoadPlan(sqldb)
			if err != nil {
				return err
			}
			targets, err := currentTargets(sqldb)
			if err != nil {
				return err
			}
			totals := agg.DailyNutrition(plan[day])
			cmp := service.CompareToTargets(totals, targets)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n", day)
			fmt.Fprintf(out, "Calories: %d / %d kcal (%s)\n", totals.Calories, targets.Calories, cmp.Calories)
			fmt.Fprintf(out, "Protein: %.1f / %d g (%s)\n", totals.ProteinG, targets.ProteinG, cmp.Protein)
			fmt.Fprintf(out, "Carbs: %.1f / %d g (%s)\n", totals.CarbsG, targets.CarbsG, cmp.Carbs)
			fmt.Fprintf(out, "Fat: %.1f / %d g (%s)\n", totals.FatG, targets.FatG, cmp.Fat)
			return nil
		})
	},
}

var nutritionWeekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show the weekly nutrition rollup",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			agg, _, err := loadAggregator(sqldb, newLogger())
			if err != nil {
				return err
			}
			plan, err := service.LoadPlan(sqldb)
			if err != nil {
				return err
			}
			report := agg.WeeklyNutrition(plan)
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "DAY\tKCAL\tP\tC\tF")
			for _, d := range report.Days {
				if !d.HasData {
					fmt.Fprintf(out, "%s\t-\t-\t-\t-\n", d.Day)
					continue
				}
				fmt.Fprintf(out, "%s\t%d\t%.1f\t%.1f\t%.1f\n", d.Day, d.Calories, d.ProteinG, d.CarbsG, d.FatG)
			}
			fmt.Fprintf(out, "Totals: %d kcal, %.1fg protein, %.1fg carbs, %.1fg fat\n",
				report.Totals.Calories, report.Totals.ProteinG, report.Totals.CarbsG, report.Totals.FatG)
			if report.DaysWithData > 0 {
				fmt.Fprintf(out, "Averages over %d planned day(s): %.0f kcal, %.1fg protein, %.1fg carbs, %.1fg fat\n",
					report.DaysWithData, report.AvgCalories, report.AvgProteinG, report.AvgCarbsG, report.AvgFatG)
			} else {
				fmt.Fprintln(out, "No planned days yet")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(nutritionCmd)
	nutritionCmd.AddCommand(nutritionDayCmd, nutritionWeekCmd)

	nutritionDayCmd.Flags().StringVar(&nutritionDay, "day", "", "Day of week (monday..sunday)")
	_ = nutritionDayCmd.MarkFlagRequired("day")
}
