package dietplan

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	dbPath  string
	dataDir string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "dietplan",
	Short: "dietplan plans weekly meals, targets and shopping from your terminal",
	Long:  "dietplan is a local-first diet planning CLI: profile and weight goals, a weekly plan of meals, supplements, snacks and desserts, nutrition rollups and a priced shopping list.",
}

func Execute() {
	// .env is optional; real env vars win either way.
	_ = godotenv.Load()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "Path to catalog data directory")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable verbose diagnostics")
}
