package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dstapl/osrs-gph/internal/adapters/report"
	profitQueries "github.com/dstapl/osrs-gph/internal/application/profit/queries"
	"github.com/dstapl/osrs-gph/internal/domain/market"
	"github.com/dstapl/osrs-gph/internal/domain/profit"
	"github.com/dstapl/osrs-gph/internal/domain/recipe"
	"github.com/dstapl/osrs-gph/internal/infrastructure/config"
)

// NewLookupCommand creates the lookup command
func NewLookupCommand() *cobra.Command {
	var (
		display displayFlags
		top     int
		output  string
	)

	cmd := &cobra.Command{
		Use:   "lookup [recipe...]",
		Short: "Itemized breakdown of recipes at market and margin prices",
		Long: `Show each recipe's inputs, outputs and profit twice: at quoted prices and
with the configured margin applied. Cells read "base (margin)".

Without arguments the best recipes of the current ranking (display.lookup.top)
and every recipe in display.lookup.specific are looked up.

Examples:
  osrs-gph lookup "Humidify Clay"
  osrs-gph lookup --top 5 --output -`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, ctx, err := newApp(cmd.CommandPath(), func(cfg *config.Config) {
				display.apply(cmd, cfg)
				if cmd.Flags().Changed("top") {
					cfg.Display.Lookup.Top = top
				}
				if cmd.Flags().Changed("output") {
					cfg.Filepaths.Results.Lookup = output
				}
			})
			if err != nil {
				return err
			}
			defer a.Close()

			settings, err := a.cfg.ProfitSettings()
			if err != nil {
				return err
			}
			book, err := a.loadBook(ctx)
			if err != nil {
				return err
			}
			items, err := a.loadCatalogue(ctx)
			if err != nil {
				return err
			}

			names := args
			if len(names) == 0 {
				names, err = a.lookupTargets(ctx, book, items, settings)
				if err != nil {
					return err
				}
			}
			if len(names) == 0 {
				return fmt.Errorf("nothing to look up: pass recipe names or set display.lookup")
			}

			response, err := a.mediator.Send(ctx, &profitQueries.ComputeBreakdownQuery{
				RecipeNames: names,
				Recipes:     book,
				Items:       items,
				Settings:    settings,
			})
			if err != nil {
				return err
			}
			result, ok := response.(*profitQueries.ComputeBreakdownResponse)
			if !ok {
				return fmt.Errorf("unexpected response type")
			}

			entries := make([]report.LookupEntry, len(result.Breakdowns))
			for i, b := range result.Breakdowns {
				entries[i] = report.LookupEntry{Recipe: b.Recipe, Table: b.Table, Reason: b.Reason}
			}

			out, closeOut, err := outputTarget(cmd, a.cfg.Filepaths.Results.Lookup)
			if err != nil {
				return err
			}
			defer closeOut()

			if err := report.NewLookupWriter(nil).Write(out, entries); err != nil {
				return fmt.Errorf("failed to write lookup: %w", err)
			}

			a.logger.Info("lookup written", "path", a.cfg.Filepaths.Results.Lookup, "recipes", len(entries))
			return nil
		},
	}

	display.register(cmd)
	cmd.Flags().IntVar(&top, "top", 0, "Look up the best N ranked recipes (overrides display.lookup.top)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to this file, - for stdout (overrides filepaths.results.lookup)")

	return cmd
}

// lookupTargets picks the top of the ranking followed by the configured specific recipes
func (a *app) lookupTargets(
	ctx context.Context,
	book *recipe.Book,
	items *market.Catalogue,
	settings profit.Settings,
) ([]string, error) {
	var names []string

	if a.cfg.Display.Lookup.Top > 0 {
		response, err := a.mediator.Send(ctx, &profitQueries.ComputeOverviewsQuery{
			Recipes:  book,
			Items:    items,
			Settings: settings,
			Limit:    a.cfg.Display.Lookup.Top,
		})
		if err != nil {
			return nil, err
		}
		result, ok := response.(*profitQueries.ComputeOverviewsResponse)
		if !ok {
			return nil, fmt.Errorf("unexpected response type")
		}
		for _, row := range result.Rows {
			names = append(names, row.Name())
		}
	}

	return append(names, a.cfg.Display.Lookup.Specific...), nil
}
