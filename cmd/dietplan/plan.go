package dietplan

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samuhlo/diet-planner-cli/internal/model"
	"github.com/samuhlo/diet-planner-cli/internal/service"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Build the weekly plan",
}

var (
	planDay     string
	planMeal    string
	planRecipe  string
	planDiners  int
	planEnabled bool
	planItems   string
)

// mutateStore loads the persisted plan into a store, applies the
// mutation, and saves the resulting snapshot back.
func mutateStore(sqldb *sql.DB, mutate func(*service.PlanStore) error) error {
	store, err := loadStore(sqldb)
	if err != nil {
		return err
	}
	if err := mutate(store); err != nil {
		return err
	}
	return service.SavePlan(sqldb, store.Snapshot())
}

var planSetMealCmd = &cobra.Command{
	Use:   "set-meal",
	Short: "Assign a recipe to a meal slot",
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := parseDay(planDay)
		if err != nil {
			return err
		}
		meal, err := parseMeal(planMeal)
		if err != nil {
			return err
		}
		patch := service.MealPatch{}
		if cmd.Flags().Changed("recipe") {
			patch.RecipeName = &planRecipe
		}
		if cmd.Flags().Changed("diners") {
			if planDiners < 1 {
				return fmt.Errorf("diners must be >= 1")
			}
			patch.Diners = &planDiners
		}
		return withDB(func(sqldb *sql.DB) error {
			if err := mutateStore(sqldb, func(store *service.PlanStore) error {
				store.SetMeal(day, meal, patch)
				return nil
			}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s %s\n", day, meal)
			return nil
		})
	},
}

func setItemPlanCmd(use, short, kind string, apply func(*service.PlanStore, model.Weekday, model.ItemPlan)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDay(planDay)
			if err != nil {
				return err
			}
			items, err := parseSelections(planItems)
			if err != nil {
				return err
			}
			plan := model.ItemPlan{Enabled: planEnabled, Items: items}
			return withDB(func(sqldb *sql.DB) error {
				if err := mutateStore(sqldb, func(store *service.PlanStore) error {
					apply(store, day, plan)
					return nil
				}); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Updated %s %s\n", day, kind)
				return nil
			})
		},
	}
}

var planShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the weekly plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			plan, err := service.LoadPlan(sqldb)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, day := range model.WeekDays {
				dp := plan[day]
				if dp == nil {
					continue
				}
				fmt.Fprintf(out, "%s:\n", day)
				for _, mt := range model.MealTypes {
					slot := dp.Meals[mt]
					if slot == nil || slot.RecipeName == "" {
						continue
					}
					diners := slot.Diners
					if diners < 1 {
						diners = 1
					}
					fmt.Fprintf(out, "  %s: %s (x%d diners)\n", mt, slot.RecipeName, diners)
				}
				printItemPlan(cmd, "supplements", dp.Supplements)
				printItemPlan(cmd, "snacks", dp.Snacks)
				printItemPlan(cmd, "desserts", dp.Desserts)
			}
			return nil
		})
	},
}

func printItemPlan(cmd *cobra.Command, label string, p *model.ItemPlan) {
	if p == nil || !p.Enabled || len(p.Items) == 0 {
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  %s:", label)
	for _, sel := range p.Items {
		fmt.Fprintf(cmd.OutOrStdout(), " %s x%.3g", sel.ID, sel.Quantity)
	}
	fmt.Fprintln(cmd.OutOrStdout())
}

var planClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Reset the weekly plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			if err := service.ClearPlan(sqldb); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Cleared weekly plan")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(planCmd)

	planSetSupplementsCmd := setItemPlanCmd("set-supplements", "Replace a day's supplement plan", "supplements",
		func(s *service.PlanStore, day model.Weekday, plan model.ItemPlan) { s.SetSupplementPlan(day, plan) })
	planSetSnacksCmd := setItemPlanCmd("set-snacks", "Replace a day's snack plan", "snacks",
		func(s *service.PlanStore, day model.Weekday, plan model.ItemPlan) { s.SetSnackPlan(day, plan) })
	planSetDessertsCmd := setItemPlanCmd("set-desserts", "Replace a day's dessert plan", "desserts",
		func(s *service.PlanStore, day model.Weekday, plan model.ItemPlan) { s.SetDessertPlan(day, plan) })

	planCmd.AddCommand(planSetMealCmd, planSetSupplementsCmd, planSetSnacksCmd, planSetDessertsCmd, planShowCmd, planClearCmd)

	planCmd.PersistentFlags().StringVar(&planDay, "day", "", "Day of week (monday..sunday)")

	planSetMealCmd.Flags().StringVar(&planMeal, "meal", "", "Meal: breakfast, lunch or dinner")
	planSetMealCmd.Flags().StringVar(&planRecipe, "recipe", "", "Recipe name from the catalog")
	planSetMealCmd.Flags().IntVar(&planDiners, "diners", 1, "Diners for shopping quantities")
	_ = planSetMealCmd.MarkFlagRequired("meal")

	for _, c := range []*cobra.Command{planSetSupplementsCmd, planSetSnacksCmd, planSetDessertsCmd} {
		c.Flags().BoolVar(&planEnabled, "enabled", true, "Whether the sub-plan contributes")
		c.Flags().StringVar(&planItems, "items", "", "Comma-separated id:qty selections")
	}
}
