package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	verbose    bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "osrs-gph",
		Short: "Rank OSRS production recipes by profit and GP/h",
		Long: `osrs-gph prices every recipe in the recipe book against the latest
Grand Exchange snapshot, works out how many times each can be made with the
configured capital, and ranks them.

Examples:
  osrs-gph prices refresh
  osrs-gph overview --sort-by gph --membership f2p
  osrs-gph lookup "Humidify Clay"
  osrs-gph prices show "Cannonball" "Steel bar"
  osrs-gph recipes list`,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"Path to config file (default: ./config.yaml, ./configs/config.yaml, /etc/osrs-gph/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable debug logging")

	rootCmd.AddCommand(NewOverviewCommand())
	rootCmd.AddCommand(NewLookupCommand())
	rootCmd.AddCommand(NewPricesCommand())
	rootCmd.AddCommand(NewRecipesCommand())
	rootCmd.AddCommand(NewConfigCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
