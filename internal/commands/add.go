package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/trackwise-dev/trackwise/internal/audit"
	"github.com/trackwise-dev/trackwise/internal/model"
)

func newAddCommand(opts *rootOptions) *cobra.Command {
	txn := model.Transaction{}

	cmd := &cobra.Command{
		Use:   "add <description>",
		Short: "Add a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.app()
			if err != nil {
				return err
			}
			if err := a.requireAuth(); err != nil {
				return err
			}

			txn.Description = args[0]
			if txn.Date == "" {
				txn.Date = time.Now().Format("2006-01-02")
			}

			created, err := a.repo.Create(cmd.Context(), txn)
			if err != nil {
				return translateErr(err)
			}

			a.recordActivity(cmd, "add", created)
			fmt.Fprintf(cmd.OutOrStdout(), "Added transaction %s (%s %s)\n",
				idString(created), created.Category, created.AmountValue().String())
			return nil
		},
	}

	cmd.Flags().StringVar(&txn.Category, "category", "Expense", "category (Expense, Income, Conversion, Credit Card Payment, ...)")
	cmd.Flags().StringVar(&txn.Amount, "amount", "", "amount (required)")
	cmd.Flags().StringVar(&txn.PaymentMethod, "method", "Cash", "payment method")
	cmd.Flags().StringVar(&txn.Date, "date", "", "date (YYYY-MM-DD, default today)")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func idString(t model.Transaction) string {
	if t.ID == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *t.ID)
}

// recordActivity appends to the local audit log. Failures are reported
// but never fail the command; the server already applied the change.
func (a *app) recordActivity(cmd *cobra.Command, action string, t model.Transaction) {
	id := ""
	if t.ID != nil {
		id = fmt.Sprintf("%d", *t.ID)
	}
	entry := audit.Entry{
		Timestamp:     time.Now(),
		Action:        action,
		TransactionID: id,
		Description:   t.Description,
		Amount:        t.Amount,
	}
	if err := audit.Append(a.cfg.ActivityLogPath, []audit.Entry{entry}); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: could not record activity: %v\n", err)
	}
}
