package commands

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/trackwise-dev/trackwise/internal/importer"
)

func newImportCommand(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Bulk-add transactions from a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := importer.DefaultRegistry()
			parser := registry.Get(format)
			if parser == nil {
				formats := registry.Formats()
				sort.Strings(formats)
				return fmt.Errorf("unknown format %q (available: %s)", format, strings.Join(formats, ", "))
			}

			a, err := opts.app()
			if err != nil {
				return err
			}
			if err := a.requireAuth(); err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening import file: %w", err)
			}
			defer f.Close()

			txns, err := parser.Parse(f)
			if err != nil {
				return fmt.Errorf("parsing %s: %w", args[0], err)
			}

			// Each row uploads independently; one bad row must not
			// abandon the rest of the file.
			created, failed := 0, 0
			for i, txn := range txns {
				result, err := a.repo.Create(cmd.Context(), txn)
				if err != nil {
					failed++
					fmt.Fprintf(cmd.ErrOrStderr(), "row %d (%s): %v\n", i+2, txn.DisplayName(), translateErr(err))
					continue
				}
				created++
				a.recordActivity(cmd, "import", result)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d of %d transactions", created, len(txns))
			if failed > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), " (%d failed)", failed)
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "generic", "CSV format (generic, chase)")

	return cmd
}
