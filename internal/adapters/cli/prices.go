package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dstapl/osrs-gph/internal/adapters/report"
	priceCommands "github.com/dstapl/osrs-gph/internal/application/prices/commands"
	priceQueries "github.com/dstapl/osrs-gph/internal/application/prices/queries"
	"github.com/dstapl/osrs-gph/internal/infrastructure/config"
)

// NewPricesCommand creates the prices command with subcommands
func NewPricesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prices",
		Short: "Fetch and inspect Grand Exchange prices",
		Long: `Prices come from the OSRS wiki real-time prices API. Only the latest
snapshot is stored; refreshing replaces it.

Examples:
  osrs-gph prices refresh
  osrs-gph prices refresh --timespan 1h
  osrs-gph prices show "Soft clay" "Clay"`,
	}

	cmd.AddCommand(newPricesRefreshCommand())
	cmd.AddCommand(newPricesShowCommand())

	return cmd
}

func newPricesRefreshCommand() *cobra.Command {
	var timespan string

	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Download a fresh price snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, ctx, err := newApp(cmd.CommandPath(), func(cfg *config.Config) {
				if cmd.Flags().Changed("timespan") {
					cfg.API.Timespan = timespan
				}
			})
			if err != nil {
				return err
			}
			defer a.Close()

			span, err := a.cfg.Timespan()
			if err != nil {
				return err
			}

			response, err := a.mediator.Send(ctx, &priceCommands.RefreshPricesCommand{Timespan: span})
			if err != nil {
				return err
			}
			result, ok := response.(*priceCommands.RefreshPricesResponse)
			if !ok {
				return fmt.Errorf("unexpected response type")
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Stored %d items (%d with both prices) from the %s prices at %s\n",
				result.Items, result.Priced, result.Timespan, result.FetchedAt)
			return nil
		},
	}

	cmd.Flags().StringVar(&timespan, "timespan", "", "latest, 5m or 1h (overrides api.timespan)")
	return cmd
}

func newPricesShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <item>...",
		Short: "Show stored prices for items",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, ctx, err := newApp(cmd.CommandPath(), nil)
			if err != nil {
				return err
			}
			defer a.Close()

			response, err := a.mediator.Send(ctx, &priceQueries.GetItemPricesQuery{
				Names:  args,
				Ignore: a.cfg.Profit.IgnoreItems,
			})
			if err != nil {
				return err
			}
			result, ok := response.(*priceQueries.GetItemPricesResponse)
			if !ok {
				return fmt.Errorf("unexpected response type")
			}

			format := report.NewFormatter()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ITEM\tID\tMEMBERS\tBUY\tSELL\tBUY LIMIT")
			fmt.Fprintln(w, "----\t--\t-------\t---\t----\t---------")

			for _, p := range result.Prices {
				if p.Item == nil {
					fmt.Fprintf(w, "%s\t-\t-\tnot found\t\t\n", p.Name)
					continue
				}
				fmt.Fprintf(w, "%s\t%d\t%t\t%s\t%s\t%s\n",
					p.Item.Name(),
					p.Item.ID(),
					p.Item.Members(),
					priceCell(format, p.Item.BuyPrice),
					priceCell(format, p.Item.SellPrice),
					priceCell(format, p.Item.PurchaseLimit),
				)
			}
			return w.Flush()
		},
	}
}

func priceCell(format *report.Formatter, get func() (int32, bool)) string {
	v, ok := get()
	if !ok {
		return "N/A"
	}
	return format.Number(int64(v))
}
