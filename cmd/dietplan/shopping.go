package dietplan

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samuhlo/diet-planner-cli/internal/service"
)

var shoppingCmd = &cobra.Command{
	Use:   "shopping",
	Short: "Aggregate the weekly plan into a shopping list",
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
			items := agg.ShoppingList(plan)
			out := cmd.OutOrStdout()
			if len(items) == 0 {
				fmt.Fprintln(out, "Nothing to buy yet")
				return nil
			}
			fmt.Fprintln(out, "ITEM\tQTY\tUNIT")
			for _, it := range items {
				fmt.Fprintf(out, "%s\t%.5g\t%s\n", it.Name, it.Quantity, it.Unit)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(shoppingCmd)
}
