package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/trackwise-dev/trackwise/internal/aggregate"
)

func newChartCommand(opts *rootOptions) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Show the per-transaction chart series",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.app()
			if err != nil {
				return err
			}
			if err := a.requireAuth(); err != nil {
				return err
			}

			txns, localMonth, err := flags.fetch(cmd.Context(), a)
			if err != nil {
				return translateErr(err)
			}

			points := aggregate.Series(aggregate.Filter(txns, flags.query, localMonth))

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "LABEL\tAMOUNT\tEXPENSE\tINCOME\tCONVERSION")
			for _, p := range points {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					p.Label, p.Amount.String(), p.Expense.String(), p.Income.String(), p.Conversion.String())
			}
			return w.Flush()
		},
	}

	flags.register(cmd, false)

	return cmd
}
