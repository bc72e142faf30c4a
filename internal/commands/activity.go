package commands

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/trackwise-dev/trackwise/internal/audit"
)

func newActivityCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "activity",
		Short: "Show the local log of changes made by this client",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.app()
			if err != nil {
				return err
			}

			entries, err := audit.Read(a.cfg.ActivityLogPath)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No recorded activity")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "WHEN\tACTION\tID\tDESCRIPTION\tAMOUNT")
			for _, e := range entries {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					e.Timestamp.Local().Format(time.DateTime), e.Action, e.TransactionID, e.Description, e.Amount)
			}
			return w.Flush()
		},
	}
}
