package cli

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/gavinjunior/portfolio-backend/internal/gallery"
	"github.com/gavinjunior/portfolio-backend/internal/tui"
)

func newDashboardCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive admin dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := opts.dashboard()
			if err != nil {
				return err
			}
			model := tui.NewDashboardModel(cmd.Context(), d)
			_, err = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}
}

func newBrowseCmd(opts *options) *cobra.Command {
	var downloadDir string

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the public project gallery",
		RunE: func(cmd *cobra.Command, args []string) error {
			if downloadDir == "" {
				wd, err := os.Getwd()
				if err != nil {
					return err
				}
				downloadDir = wd
			}
			c := opts.client()
			model := tui.NewBrowseModel(cmd.Context(), gallery.New(c), c.HTTPClient(), downloadDir)
			_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}
	cmd.Flags().StringVar(&downloadDir, "download-dir", "", "where downloaded documents are saved (default current directory)")
	return cmd
}
