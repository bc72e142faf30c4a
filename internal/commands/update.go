package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/trackwise-dev/trackwise/internal/model"
)

func newUpdateCommand(opts *rootOptions) *cobra.Command {
	var (
		description string
		category    string
		amount      string
		method      string
		date        string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a transaction",
		Long:  "Update a transaction. Only the provided flags change; other fields keep their current values.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid transaction ID %q", args[0])
			}

			a, err := opts.app()
			if err != nil {
				return err
			}
			if err := a.requireAuth(); err != nil {
				return err
			}

			current, err := findByID(cmd, a, id)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("description") {
				current.Description = description
			}
			if cmd.Flags().Changed("category") {
				current.Category = category
			}
			if cmd.Flags().Changed("amount") {
				current.Amount = amount
			}
			if cmd.Flags().Changed("method") {
				current.PaymentMethod = method
			}
			if cmd.Flags().Changed("date") {
				current.Date = date
			}

			updated, err := a.repo.Update(cmd.Context(), current)
			if err != nil {
				return translateErr(err)
			}

			a.recordActivity(cmd, "update", updated)
			fmt.Fprintf(cmd.OutOrStdout(), "Updated transaction %s\n", idString(updated))
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "new description")
	cmd.Flags().StringVar(&category, "category", "", "new category")
	cmd.Flags().StringVar(&amount, "amount", "", "new amount")
	cmd.Flags().StringVar(&method, "method", "", "new payment method")
	cmd.Flags().StringVar(&date, "date", "", "new date (YYYY-MM-DD)")

	return cmd
}

func findByID(cmd *cobra.Command, a *app, id int) (model.Transaction, error) {
	txns, err := a.repo.List(cmd.Context())
	if err != nil {
		return model.Transaction{}, translateErr(err)
	}
	for _, t := range txns {
		if t.ID != nil && *t.ID == id {
			return t, nil
		}
	}
	return model.Transaction{}, fmt.Errorf("transaction %d not found", id)
}
