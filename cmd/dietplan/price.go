package dietplan

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/samuhlo/diet-planner-cli/internal/service"
)

var priceCmd = &cobra.Command{
	Use:   "price",
	Short: "Estimate the weekly plan's grocery cost",
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
			total := agg.PlanPrice(plan)
			fmt.Fprintf(cmd.OutOrStdout(), "Estimated weekly cost: %s\n", total.StringFixed(2))
			return nil
		})
	},
}

var priceRecipeCmd = &cobra.Command{
	Use:   "recipe <name>",
	Short: "Price one recipe's ingredient list",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.Join(args, " ")
		return withDB(func(sqldb *sql.DB) error {
			agg, ix, err := loadAggregator(sqldb, newLogger())
			if err != nil {
				return err
			}
			r, ok := ix.Recipe(name)
			if !ok {
				return fmt.Errorf("recipe %q not found", name)
			}
			result := agg.RecipePrice(r)
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "INGREDIENT\tQTY\tUNIT\tPRICE")
			for _, line := range result.Lines {
				price := line.Price.StringFixed(2)
				if !line.Priced {
					price = "-"
				}
				fmt.Fprintf(out, "%s\t%.5g\t%s\t%s\n", line.Name, line.Quantity, line.Unit, price)
			}
			fmt.Fprintf(out, "Total: %s\n", result.Total.StringFixed(2))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(priceCmd)
	priceCmd.AddCommand(priceRecipeCmd)
}
