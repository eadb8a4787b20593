package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dstapl/osrs-gph/internal/domain/recipe"
)

// NewRecipesCommand creates the recipes command with subcommands
func NewRecipesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recipes",
		Short: "Inspect the recipe book",
	}
	cmd.AddCommand(newRecipesListCommand())
	return cmd
}

func newRecipesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every recipe in the book",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, ctx, err := newApp(cmd.CommandPath(), nil)
			if err != nil {
				return err
			}
			defer a.Close()

			book, err := a.loadBook(ctx)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tMEMBERS\tTIME\tPER HOUR\tINPUTS\tOUTPUTS")
			fmt.Fprintln(w, "----\t-------\t----\t--------\t------\t-------")

			for _, r := range book.Sorted() {
				perHour := "-"
				if n, ok := r.NumberPerHour(); ok {
					perHour = fmt.Sprintf("%v", n)
				}
				fmt.Fprintf(w, "%s\t%t\t%s\t%s\t%s\t%s\n",
					r.Name(),
					r.RequiresMembership(),
					r.Time(),
					perHour,
					ingredientList(r.Inputs()),
					ingredientList(r.Outputs()),
				)
			}
			return w.Flush()
		},
	}
}

func ingredientList(ingredients []recipe.Ingredient) string {
	parts := make([]string, len(ingredients))
	for i, ing := range ingredients {
		parts[i] = fmt.Sprintf("%v %s", ing.Quantity, ing.Name)
	}
	return strings.Join(parts, ", ")
}
