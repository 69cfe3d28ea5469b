// Package cli is the portfolio-admin command line: login, project
// maintenance and the interactive dashboard and gallery.
package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/gavinjunior/portfolio-backend/internal/admin/client"
	"github.com/gavinjunior/portfolio-backend/internal/admin/dashboard"
	"github.com/gavinjunior/portfolio-backend/internal/admin/tokenstore"
)

const defaultServer = "http://localhost:8080"

type options struct {
	server    string
	configDir string
}

func (o *options) client() *client.Client {
	return client.New(o.server)
}

func (o *options) tokens() (*tokenstore.Store, error) {
	dir := o.configDir
	if dir == "" {
		var err error
		if dir, err = tokenstore.DefaultDir(); err != nil {
			return nil, err
		}
	}
	return tokenstore.New(dir), nil
}

func (o *options) dashboard() (*dashboard.Dashboard, error) {
	tokens, err := o.tokens()
	if err != nil {
		return nil, err
	}
	return dashboard.New(o.client(), tokens, nil, nil), nil
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "portfolio-admin",
		Short:         "Manage the portfolio project catalogue",
		Long:          "portfolio-admin logs in to the portfolio API and maintains its projects from the terminal.",
		Version:       "1.0.0",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	server := os.Getenv("PORTFOLIO_API_URL")
	if server == "" {
		server = defaultServer
	}
	root.PersistentFlags().StringVar(&opts.server, "server", server, "portfolio API base URL (env PORTFOLIO_API_URL)")
	root.PersistentFlags().StringVar(&opts.configDir, "config-dir", "", "directory holding the saved token (default ~/.portfolio-admin)")

	root.AddCommand(
		newLoginCmd(opts),
		newLogoutCmd(opts),
		newProjectsCmd(opts),
		newDashboardCmd(opts),
		newBrowseCmd(opts),
	)
	return root
}

// ExecuteContext runs the command line and reports errors on stderr.
func ExecuteContext(ctx context.Context) error {
	root := NewRootCmd()
	err := root.ExecuteContext(ctx)
	if err != nil {
		errorf(root.ErrOrStderr(), "Error: %v\n", err)
	}
	return err
}
