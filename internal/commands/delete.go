package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/trackwise-dev/trackwise/internal/audit"
)

func newDeleteCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
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

			confirmation, err := a.repo.Delete(cmd.Context(), id)
			if err != nil {
				return translateErr(err)
			}

			entry := audit.Entry{
				Timestamp:     time.Now(),
				Action:        "delete",
				TransactionID: args[0],
			}
			if err := audit.Append(a.cfg.ActivityLogPath, []audit.Entry{entry}); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: could not record activity: %v\n", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), confirmation)
			return nil
		},
	}
}
