package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dstapl/osrs-gph/internal/adapters/report"
	profitQueries "github.com/dstapl/osrs-gph/internal/application/profit/queries"
	"github.com/dstapl/osrs-gph/internal/infrastructure/config"
)

// displayFlags are the filter and sort overrides shared by overview and lookup
type displayFlags struct {
	coins      int64
	sortBy     string
	membership string
	timeMode   string
	showHidden bool
	mustProfit bool
	reverse    bool
}

func (f *displayFlags) register(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&f.coins, "coins", 0, "Capital to spend (overrides profit.coins)")
	cmd.Flags().StringVar(&f.sortBy, "sort-by", "", "Sort by name, profit, time, gph or custom")
	cmd.Flags().StringVar(&f.membership, "membership", "", "Recipes to include: f2p, p2p or both")
	cmd.Flags().StringVar(&f.timeMode, "time-mode", "", "single_hour or max_hours")
	cmd.Flags().BoolVar(&f.showHidden, "show-hidden", false, "Keep unaffordable and unprofitable recipes, marked with #")
	cmd.Flags().BoolVar(&f.mustProfit, "must-profit", true, "Hide recipes that make no profit")
	cmd.Flags().BoolVar(&f.reverse, "reverse", true, "Reverse the natural sort direction")
}

// apply copies the flags the user actually set onto the config
func (f *displayFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("coins") {
		cfg.Profit.Coins = f.coins
	}
	if flags.Changed("sort-by") {
		cfg.Display.SortBy = f.sortBy
	}
	if flags.Changed("membership") {
		cfg.Display.Membership = f.membership
	}
	if flags.Changed("time-mode") {
		cfg.Profit.TimeMode = f.timeMode
	}
	if flags.Changed("show-hidden") {
		cfg.Display.ShowHidden = f.showHidden
	}
	if flags.Changed("must-profit") {
		cfg.Display.MustProfit = f.mustProfit
	}
	if flags.Changed("reverse") {
		cfg.Display.Reverse = f.reverse
	}
}

// NewOverviewCommand creates the overview command
func NewOverviewCommand() *cobra.Command {
	var (
		display displayFlags
		number  int
		output  string
	)

	cmd := &cobra.Command{
		Use:   "overview",
		Short: "Rank every recipe by the configured sort",
		Long: `Compute the overview row of every recipe against the stored prices,
filter by membership, affordability and profit, and write the ranking as a
markdown table.

Examples:
  osrs-gph overview
  osrs-gph overview --sort-by gph --number 10 --output -
  osrs-gph overview --coins 10_000_000 --show-hidden`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, ctx, err := newApp(cmd.CommandPath(), func(cfg *config.Config) {
				display.apply(cmd, cfg)
				if cmd.Flags().Changed("number") {
					cfg.Display.Number = number
				}
				if cmd.Flags().Changed("output") {
					cfg.Filepaths.Results.Overview = output
				}
			})
			if err != nil {
				return err
			}
			defer a.Close()

			result, err := a.computeOverviews(ctx)
			if err != nil {
				return err
			}

			out, closeOut, err := outputTarget(cmd, a.cfg.Filepaths.Results.Overview)
			if err != nil {
				return err
			}
			defer closeOut()

			if err := report.NewOverviewWriter(nil).Write(out, result.Rows, a.cfg.Display.Number); err != nil {
				return fmt.Errorf("failed to write overview: %w", err)
			}

			a.logger.Info("overview written",
				"path", a.cfg.Filepaths.Results.Overview,
				"shown", min(len(result.Rows), a.cfg.Display.Number),
				"ranked", result.Total,
				"skipped", len(result.Skipped),
			)
			return nil
		},
	}

	display.register(cmd)
	cmd.Flags().IntVarP(&number, "number", "n", 0, "Rows to show (overrides display.number)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to this file, - for stdout (overrides filepaths.results.overview)")

	return cmd
}

// computeOverviews runs the overview query against the stored prices and recipe book
func (a *app) computeOverviews(ctx context.Context) (*profitQueries.ComputeOverviewsResponse, error) {
	settings, err := a.cfg.ProfitSettings()
	if err != nil {
		return nil, err
	}
	book, err := a.loadBook(ctx)
	if err != nil {
		return nil, err
	}
	items, err := a.loadCatalogue(ctx)
	if err != nil {
		return nil, err
	}

	response, err := a.mediator.Send(ctx, &profitQueries.ComputeOverviewsQuery{
		Recipes:  book,
		Items:    items,
		Settings: settings,
	})
	if err != nil {
		return nil, err
	}

	result, ok := response.(*profitQueries.ComputeOverviewsResponse)
	if !ok {
		return nil, fmt.Errorf("unexpected response type")
	}
	return result, nil
}
