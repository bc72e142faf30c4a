package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/trackwise-dev/trackwise/internal/transport"
)

func newLoginCommand(opts *rootOptions) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "login <username>",
		Short: "Log in to the expense API",
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
			}

			if err := a.sess.Login(args[0], password); err != nil {
				return err
			}

			// Verify the credential with a probe request; a 401 has
			// already cleared the session by the time we see it.
			if _, err := a.repo.List(cmd.Context()); err != nil {
				if transport.IsAuthError(err) {
					return fmt.Errorf("invalid username or password")
				}
				_ = a.sess.Logout()
				return translateErr(err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "password (prompted when omitted)")

	return cmd
}

func newLogoutCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and clear the stored credential",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.app()
			if err != nil {
				return err
			}
			if err := a.sess.Logout(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func newWhoamiCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.app()
			if err != nil {
				return err
			}
			if name, ok := a.sess.Username(); ok {
				fmt.Fprintln(cmd.OutOrStdout(), name)
				return nil
			}
			return fmt.Errorf("not logged in")
		},
	}
}

func readLine(cmd *cobra.Command, prompt string) (string, error) {
	fmt.Fprint(cmd.OutOrStdout(), prompt)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
