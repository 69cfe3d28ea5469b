package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"
)

func newLoginCmd(opts *options) *cobra.Command {
	var passwordStdin bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the API token",
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := readPassword(cmd, passwordStdin)
			if err != nil {
				return err
			}
			if password == "" {
				return errors.New("password must not be empty")
			}

			d, err := opts.dashboard()
			if err != nil {
				return err
			}
			if err := d.Login(cmd.Context(), password); err != nil {
				return fmt.Errorf("login failed: %w", err)
			}

			successf(cmd.OutOrStdout(), "Login successful. %d project(s) on the server.\n", len(d.Snapshot().Projects))
			return nil
		},
	}
	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "read the password from stdin")
	return cmd
}

func newLogoutCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored API token",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := opts.dashboard()
			if err != nil {
				return err
			}
			if err := d.Logout(); err != nil {
				return err
			}
			successf(cmd.OutOrStdout(), "Logged out.\n")
			return nil
		},
	}
}

// readPassword prompts without echo on a terminal and reads one line otherwise.
func readPassword(cmd *cobra.Command, fromStdin bool) (string, error) {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && !fromStdin && term.IsTerminal(f.Fd()) {
		fmt.Fprint(cmd.OutOrStdout(), "Admin password: ")
		b, err := term.ReadPassword(f.Fd())
		fmt.Fprintln(cmd.OutOrStdout())
		if err != nil {
			return "", fmt.Errorf("reading password: %w", err)
		}
		return string(b), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
