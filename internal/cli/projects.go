package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gavinjunior/portfolio-backend/internal/admin/dashboard"
	"github.com/gavinjunior/portfolio-backend/internal/admin/upload"
	"github.com/gavinjunior/portfolio-backend/internal/projects/domain"
)

var errLoginRequired = errors.New("not logged in, run `portfolio-admin login` first")

func newProjectsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "projects",
		Aliases: []string{"project", "p"},
		Short:   "List and edit projects",
	}
	cmd.AddCommand(
		newProjectsListCmd(opts),
		newProjectsCreateCmd(opts),
		newProjectsUpdateCmd(opts),
		newProjectsDeleteCmd(opts),
	)
	return cmd
}

func newProjectsListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the public projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := opts.client().ListProjects(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to fetch projects: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(items) == 0 {
				warnf(out, "No projects found.\n")
				return nil
			}
			for _, p := range domain.NormalizeAll(items) {
				_, _ = titleColor.Fprint(out, p.Title)
				_, _ = dimColor.Fprintf(out, "  %s\n", p.ID)
				fmt.Fprintf(out, "  %s\n", p.ShortDescription)
				if len(p.ImageURLs) > 0 {
					_, _ = dimColor.Fprintf(out, "  %d image(s)\n", len(p.ImageURLs))
				}
			}
			return nil
		},
	}
}

// projectFlags collects the editable fields shared by create and update.
type projectFlags struct {
	title, short, long string
	live, github, pdf  string
	images             []string
	clearImages        bool
}

var fieldFlags = []struct{ flag, field string }{
	{"title", dashboard.FieldTitle},
	{"short", dashboard.FieldShortDescription},
	{"long", dashboard.FieldLongDescription},
	{"live", dashboard.FieldLiveLink},
	{"github", dashboard.FieldGithubLink},
}

func (f *projectFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "", "project title")
	cmd.Flags().StringVar(&f.short, "short", "", "short description shown on the card")
	cmd.Flags().StringVar(&f.long, "long", "", "long description shown in the detail view")
	cmd.Flags().StringVar(&f.live, "live", "", "live demo URL")
	cmd.Flags().StringVar(&f.github, "github", "", "source repository URL")
	cmd.Flags().StringVar(&f.pdf, "pdf", "", "PDF file to attach, or a document URL")
	cmd.Flags().StringArrayVar(&f.images, "image", nil, "image file or URL (repeatable)")
}

func (f *projectFlags) value(flag string) string {
	switch flag {
	case "title":
		return f.title
	case "short":
		return f.short
	case "long":
		return f.long
	case "live":
		return f.live
	case "github":
		return f.github
	}
	return ""
}

func (f *projectFlags) changed(cmd *cobra.Command) bool {
	for _, name := range []string{"title", "short", "long", "live", "github", "pdf", "image", "clear-images"} {
		if fl := cmd.Flags().Lookup(name); fl != nil && fl.Changed {
			return true
		}
	}
	return false
}

// apply pushes the changed flags into the dashboard form.
func (f *projectFlags) apply(cmd *cobra.Command, d *dashboard.Dashboard) error {
	ctx := cmd.Context()
	for _, ff := range fieldFlags {
		if !cmd.Flags().Changed(ff.flag) {
			continue
		}
		if err := d.SetField(ff.field, f.value(ff.flag)); err != nil {
			return err
		}
	}

	if f.clearImages {
		if err := d.ClearImages(); err != nil {
			return err
		}
	}

	// Keep the given order: URLs are added directly, runs of local files
	// are encoded together.
	var files []string
	flush := func() error {
		if len(files) == 0 {
			return nil
		}
		err := d.AttachImages(ctx, files)
		files = nil
		return err
	}
	for _, img := range f.images {
		if isRemote(img) {
			if err := flush(); err != nil {
				return err
			}
			if err := d.AddImageURLs(img); err != nil {
				return err
			}
			continue
		}
		files = append(files, img)
	}
	if err := flush(); err != nil {
		return err
	}

	if cmd.Flags().Changed("pdf") {
		if f.pdf == "" || isRemote(f.pdf) {
			return d.SetField(dashboard.FieldPdfURL, f.pdf)
		}
		return d.AttachPDF(ctx, f.pdf)
	}
	return nil
}

func isRemote(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") || upload.IsDataURL(s)
}

// mount restores the saved session; every write command needs one.
func mount(cmd *cobra.Command, opts *options) (*dashboard.Dashboard, error) {
	d, err := opts.dashboard()
	if err != nil {
		return nil, err
	}
	if err := d.Mount(cmd.Context()); err != nil {
		if errors.Is(err, dashboard.ErrNotAuthenticated) {
			return nil, errLoginRequired
		}
		return nil, err
	}
	return d, nil
}

func submit(cmd *cobra.Command, d *dashboard.Dashboard) error {
	if err := d.Submit(cmd.Context()); err != nil {
		return err
	}
	successf(cmd.OutOrStdout(), "%s\n", d.Snapshot().Status)
	return nil
}

func newProjectsCreateCmd(opts *options) *cobra.Command {
	var flags projectFlags

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a project",
		Example: `  portfolio-admin projects create --title "Site" --short "Personal site" \
    --image shot1.png --image shot2.png --pdf report.pdf`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(flags.title) == "" || strings.TrimSpace(flags.short) == "" {
				return errors.New("--title and --short are required")
			}
			d, err := mount(cmd, opts)
			if err != nil {
				return err
			}
			if err := flags.apply(cmd, d); err != nil {
				return err
			}
			return submit(cmd, d)
		},
	}
	flags.bind(cmd)
	return cmd
}

func newProjectsUpdateCmd(opts *options) *cobra.Command {
	var flags projectFlags

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change fields of an existing project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !flags.changed(cmd) {
				warnf(cmd.OutOrStdout(), "Nothing to update.\n")
				return nil
			}
			d, err := mount(cmd, opts)
			if err != nil {
				return err
			}
			if err := d.Edit(args[0]); err != nil {
				return fmt.Errorf("project %s: %w", args[0], err)
			}
			if err := flags.apply(cmd, d); err != nil {
				return err
			}
			return submit(cmd, d)
		},
	}
	flags.bind(cmd)
	cmd.Flags().BoolVar(&flags.clearImages, "clear-images", false, "drop the current images before adding new ones")
	return cmd
}

func newProjectsDeleteCmd(opts *options) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a project",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := mount(cmd, opts)
			if err != nil {
				return err
			}

			confirmed := false
			confirm := func(p domain.Project) bool {
				if yes {
					confirmed = true
					return true
				}
				warnf(cmd.OutOrStdout(), "Delete %q? This cannot be undone. [y/N] ", p.Title)
				answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				answer = strings.ToLower(strings.TrimSpace(answer))
				confirmed = answer == "y" || answer == "yes"
				return confirmed
			}

			if err := d.Delete(cmd.Context(), args[0], confirm); err != nil {
				return fmt.Errorf("project %s: %w", args[0], err)
			}
			if !confirmed {
				warnf(cmd.OutOrStdout(), "Aborted.\n")
				return nil
			}
			successf(cmd.OutOrStdout(), "%s\n", d.Snapshot().Status)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}
