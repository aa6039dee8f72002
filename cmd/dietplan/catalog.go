package dietplan

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samuhlo/diet-planner-cli/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the read-only reference catalogs",
}

var catalogCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Report catalog data-quality issues",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			dir, err := resolveDataDir(sqldb)
			if err != nil {
				return err
			}
			log := newLogger()
			set, err := catalog.LoadDir(dir, log)
			if err != nil {
				return err
			}
			ix := catalog.BuildIndex(set, log)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Catalog dir: %s\n", dir)
			fmt.Fprintf(out, "Recipes: %d\nSupplements: %d\nSnacks: %d\nIngredients: %d\n",
				len(set.Recipes), len(set.Supplements), len(set.Snacks), len(set.Ingredients))
			issues := 0
			collisions := ix.Collisions()
			if len(collisions) > 0 {
				issues += len(collisions)
				fmt.Fprintf(out, "%d name collision(s):\n", len(collisions))
				for _, c := range collisions {
					fmt.Fprintf(out, "  %s\n", c)
				}
			}
			for _, ing := range set.Ingredients {
				if ing.PricePerBaseUnit.IsZero() {
					issues++
					fmt.Fprintf(out, "  ingredient %q has no usable purchase price\n", ing.Name)
				}
				for unit, factor := range ing.Equivalencies {
					if factor <= 0 {
						issues++
						fmt.Fprintf(out, "  ingredient %q: equivalency %q is not positive\n", ing.Name, unit)
					}
				}
			}
			if issues == 0 {
				fmt.Fprintln(out, "No issues found")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogCheckCmd)
}
