package commands

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/trackwise-dev/trackwise/internal/aggregate"
	"github.com/trackwise-dev/trackwise/internal/model"
)

type listFlags struct {
	query       string
	month       string
	page        int
	pageSize    int
	serverMonth bool
}

func (f *listFlags) register(cmd *cobra.Command, withPaging bool) {
	cmd.Flags().StringVarP(&f.query, "query", "q", "", "case-insensitive search on description or category")
	cmd.Flags().StringVarP(&f.month, "month", "m", "", "month filter (YYYY-MM)")
	cmd.Flags().BoolVar(&f.serverMonth, "server-month", false, "apply the month filter server-side")
	if withPaging {
		cmd.Flags().IntVar(&f.page, "page", 1, "page number")
		cmd.Flags().IntVar(&f.pageSize, "page-size", 10, "items per page")
	}
}

// fetch pulls transactions, either the full list or a server-side month
// slice. With the server-side fetch the month prefix is already applied,
// so the local filter only sees the query.
func (f *listFlags) fetch(ctx context.Context, a *app) ([]model.Transaction, string, error) {
	if f.serverMonth && f.month != "" {
		txns, err := a.repo.ListByMonth(ctx, f.month)
		return txns, "", err
	}
	txns, err := a.repo.List(ctx)
	return txns, f.month, err
}

func newListCommand(opts *rootOptions) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions",
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

			view := aggregate.NewView(flags.pageSize)
			view.SetQuery(flags.query)
			view.SetMonth(localMonth)
			view.SetPage(flags.page)
			res := view.Apply(txns)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tDATE\tDESCRIPTION\tCATEGORY\tMETHOD\tAMOUNT")
			for _, t := range res.Items {
				id := "-"
				if t.ID != nil {
					id = fmt.Sprintf("%d", *t.ID)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					id, t.Date, t.DisplayName(), t.Category, t.PaymentMethod, t.AmountValue().String())
			}
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "\npage %d of %d (%d matching)\n",
				res.Page, res.TotalPages, len(res.Filtered))
			return nil
		},
	}

	flags.register(cmd, true)

	return cmd
}
