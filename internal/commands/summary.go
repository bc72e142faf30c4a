package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/trackwise-dev/trackwise/internal/aggregate"
)

func newSummaryCommand(opts *rootOptions) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show financial totals and balances",
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

			filtered := aggregate.Filter(txns, flags.query, localMonth)
			totals := aggregate.Summarize(filtered)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "Total movement:\t%s\n", totals.Total.String())
			fmt.Fprintf(w, "Income:\t%s\n", totals.Income.String())
			fmt.Fprintf(w, "Expense:\t%s\n", totals.Expense.String())
			fmt.Fprintf(w, "Conversions:\t%s\n", totals.Conversions.String())
			fmt.Fprintf(w, "Credit card payments:\t%s\n", totals.CreditCardPayments.String())
			fmt.Fprintf(w, "\t\n")
			fmt.Fprintf(w, "Net balance:\t%s\n", totals.Net().String())

			// The card balance is shown as its magnitude; direction is
			// spelled out instead of a sign.
			balance := totals.CreditCardBalance()
			suffix := ""
			if balance.IsNegative() {
				suffix = " (payments exceed card expenses)"
			}
			fmt.Fprintf(w, "Credit card balance:\t%s%s\n", balance.Abs().String(), suffix)

			return w.Flush()
		},
	}

	flags.register(cmd, false)

	return cmd
}
