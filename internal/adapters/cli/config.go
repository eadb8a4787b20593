package cli

import (
	"fmt"
	"net/url"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dstapl/osrs-gph/internal/infrastructure/config"
)

// NewConfigCommand creates the config command with subcommands
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration settings",
		Long: `Configuration is loaded from multiple sources with priority:
1. Environment variables (OSRS_* prefix, e.g. OSRS_PROFIT_COINS)
2. Config file (config.yaml)
3. Default values

Example:
  osrs-gph config show`,
	}

	cmd.AddCommand(newConfigShowCommand())

	return cmd
}

// newConfigShowCommand creates the config show subcommand
func newConfigShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				fmt.Fprintf(out, "Warning: Failed to load config: %v\n", err)
				fmt.Fprintln(out, "Using default configuration.")
				cfg = config.DefaultConfig()
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			section := func(name string) { fmt.Fprintf(w, "\n%s:\n", name) }
			field := func(name string, value interface{}) { fmt.Fprintf(w, "  %s\t%v\n", name, value) }

			fmt.Fprintln(w, "osrs-gph Configuration")
			fmt.Fprintln(w, "======================")

			section("Profit")
			field("Coins:", cfg.Profit.Coins)
			field("Percent margin:", cfg.Profit.PercentMargin)
			field("Time mode:", cfg.Profit.TimeMode)
			field("Weights:", fmt.Sprintf("margin=%g time=%g gph=%g",
				cfg.Profit.Weights.Margin, cfg.Profit.Weights.Time, cfg.Profit.Weights.GPH))
			field("Ignored items:", listOrNone(cfg.Profit.IgnoreItems))
			field("Ignored recipes:", listOrNone(cfg.Profit.IgnoreRecipes))

			section("Display")
			field("Rows:", cfg.Display.Number)
			field("Sort by:", cfg.Display.SortBy)
			field("Reverse:", cfg.Display.Reverse)
			field("Membership:", cfg.Display.Membership)
			field("Must profit:", cfg.Display.MustProfit)
			field("Show hidden:", cfg.Display.ShowHidden)
			field("Lookup top:", cfg.Display.Lookup.Top)
			field("Lookup specific:", listOrNone(cfg.Display.Lookup.Specific))

			section("Economy")
			field("Tax:", fmt.Sprintf("%g%% above %d, capped at %d",
				cfg.Economy.TaxPercent, cfg.Economy.TaxThreshold, cfg.Economy.FeeCap))
			field("Session cap:", fmt.Sprintf("%gh", cfg.Economy.SessionCapHours))
			field("Buy limit divisor:", cfg.Economy.BuyLimitDivisor)
			field("Seconds per tick:", cfg.Economy.SecondsPerTick)

			section("Price API")
			field("Base URL:", cfg.API.BaseURL)
			field("Timespan:", cfg.API.Timespan)
			field("User agent:", cfg.API.UserAgent)
			field("Timeout:", cfg.API.Timeout)
			field("Rate limit:", fmt.Sprintf("%d req/s (burst: %d)", cfg.API.RateLimit.Requests, cfg.API.RateLimit.Burst))
			field("Max retries:", cfg.API.Retry.MaxAttempts)
			field("Circuit breaker:", fmt.Sprintf("%d failures, %s cooldown",
				cfg.API.CircuitBreaker.MaxFailures, cfg.API.CircuitBreaker.Timeout))

			section("Database")
			field("Type:", cfg.Database.Type)
			if cfg.Database.Type == "sqlite" {
				field("Path:", cfg.Database.Path)
			} else if cfg.Database.URL != "" {
				field("URL:", maskPassword(cfg.Database.URL))
			} else {
				field("Host:", fmt.Sprintf("%s:%d", cfg.Database.Host, cfg.Database.Port))
				field("Database:", cfg.Database.Name)
				field("User:", cfg.Database.User)
			}

			section("Files")
			field("Recipes:", cfg.Filepaths.Recipes)
			field("Overview:", cfg.Filepaths.Results.Overview)
			field("Lookup:", cfg.Filepaths.Results.Lookup)

			section("Logging")
			field("Level:", cfg.Logging.Level)
			field("Format:", cfg.Logging.Format)
			field("Output:", cfg.Logging.Output)
			if cfg.Logging.Output == "file" {
				field("File:", cfg.Logging.FilePath)
			}

			section("Metrics")
			field("Enabled:", cfg.Metrics.Enabled)
			if cfg.Metrics.Enabled {
				field("Textfile:", cfg.Metrics.Textfile)
			}

			return w.Flush()
		},
	}

	return cmd
}

// maskPassword hides the password of a connection URL
func maskPassword(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.User == nil {
		return raw
	}
	if _, ok := u.User.Password(); ok {
		u.User = url.UserPassword(u.User.Username(), "xxxxx")
	}
	return u.String()
}

func listOrNone(values []string) string {
	if len(values) == 0 {
		return "(none)"
	}
	return strings.Join(values, ", ")
}
