package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trackwise-dev/trackwise/internal/transport"
)

const minPasswordLength = 4

func newRegisterCommand(opts *rootOptions) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "register <username>",
		Short: "Create a new account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.app()
			if err != nil {
				return err
			}

			if password == "" {
				password, err = readLine(cmd, "Password: ")
				if err != nil {
					return err
				}
				confirm, err := readLine(cmd, "Confirm password: ")
				if err != nil {
					return err
				}
				if password != confirm {
					return fmt.Errorf("passwords do not match")
				}
			}

			if len(password) < minPasswordLength {
				return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
			}

			if _, err := a.repo.RegisterUser(cmd.Context(), args[0], password); err != nil {
				if transport.IsConflictError(err) {
					return fmt.Errorf("username already exists")
				}
				return translateErr(err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Registered %s. You can now log in.\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "password (prompted when omitted)")

	return cmd
}
