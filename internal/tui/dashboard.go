package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gavinjunior/portfolio-backend/internal/admin/dashboard"
	"github.com/gavinjunior/portfolio-backend/internal/projects/domain"
)

type formField struct {
	name  string
	label string
}

var formFields = []formField{
	{dashboard.FieldTitle, "Title"},
	{dashboard.FieldShortDescription, "Short description"},
	{dashboard.FieldLongDescription, "Long description"},
	{dashboard.FieldLiveLink, "Live link"},
	{dashboard.FieldGithubLink, "Source link"},
	{dashboard.FieldPdfURL, "PDF URL"},
}

// Extra inputs after the text fields.
var (
	imagePathsInput = len(formFields)
	pdfPathInput    = len(formFields) + 1
)

type dashMode int

const (
	modeList dashMode = iota
	modeForm
	modeConfirm
)

type dashOpMsg struct{ err error }

// DashboardModel renders a dashboard.Dashboard and forwards key presses to it.
type DashboardModel struct {
	ctx  context.Context
	dash *dashboard.Dashboard
	snap dashboard.Snapshot

	spinner  spinner.Model
	password textinput.Model
	inputs   []textinput.Model

	mode      dashMode
	focus     int
	cursor    int
	busy      bool
	busyLabel string
	opErr     string
	width     int
}

func NewDashboardModel(ctx context.Context, d *dashboard.Dashboard) DashboardModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	pw := textinput.New()
	pw.Placeholder = "admin password"
	pw.EchoMode = textinput.EchoPassword
	pw.EchoCharacter = '•'

	inputs := make([]textinput.Model, len(formFields)+2)
	for i, f := range formFields {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = f.label
		inputs[i].CharLimit = 0
	}
	inputs[imagePathsInput] = textinput.New()
	inputs[imagePathsInput].Placeholder = "image files to attach, comma separated"
	inputs[pdfPathInput] = textinput.New()
	inputs[pdfPathInput].Placeholder = "PDF file to attach"

	return DashboardModel{
		ctx:       ctx,
		dash:      d,
		spinner:   s,
		password:  pw,
		inputs:    inputs,
		busy:      true,
		busyLabel: "Loading dashboard...",
	}
}

func (m DashboardModel) Init() tea.Cmd {
	d, ctx := m.dash, m.ctx
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		err := d.Mount(ctx)
		if errors.Is(err, dashboard.ErrNotAuthenticated) {
			err = nil
		}
		return dashOpMsg{err: err}
	})
}

func (m *DashboardModel) start(label string, op func() error) tea.Cmd {
	m.busy = true
	m.busyLabel = label
	m.opErr = ""
	return func() tea.Msg { return dashOpMsg{err: op()} }
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case dashOpMsg:
		m.busy = false
		m.snap = m.dash.Snapshot()
		if msg.err != nil && m.snap.Error == "" {
			m.opErr = msg.err.Error()
		}
		switch {
		case !m.snap.State.Authenticated():
			m.mode = modeList
			cmd := m.password.Focus()
			return m, cmd
		case m.snap.State == dashboard.StateIdle && m.mode != modeList:
			m.mode = modeList
		}
		m.clampCursor()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.busy {
			return m, nil
		}
		if !m.snap.State.Authenticated() {
			return m.updateLogin(msg)
		}
		switch m.mode {
		case modeForm:
			return m.updateForm(msg)
		case modeConfirm:
			return m.updateConfirm(msg)
		default:
			return m.updateList(msg)
		}
	}
	return m, nil
}

func (m DashboardModel) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, tea.Quit
	case "enter":
		pw := m.password.Value()
		m.password.SetValue("")
		d, ctx := m.dash, m.ctx
		cmd := m.start("Logging in...", func() error { return d.Login(ctx, pw) })
		return m, cmd
	}
	var cmd tea.Cmd
	m.password, cmd = m.password.Update(msg)
	return m, cmd
}

func (m DashboardModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	d, ctx := m.dash, m.ctx
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		m.cursor--
		m.clampCursor()
	case "down", "j":
		m.cursor++
		m.clampCursor()
	case "r":
		cmd := m.start("Refreshing...", func() error { return d.Refresh(ctx) })
		return m, cmd
	case "n":
		m.loadForm(dashboard.Form{})
		m.mode = modeForm
		cmd := m.focusInput(0)
		return m, cmd
	case "e", "enter":
		p, ok := m.selected()
		if !ok {
			return m, nil
		}
		if err := d.Edit(p.ID); err != nil {
			m.opErr = err.Error()
			return m, nil
		}
		m.snap = d.Snapshot()
		m.loadForm(m.snap.Form)
		m.mode = modeForm
		cmd := m.focusInput(0)
		return m, cmd
	case "d", "x":
		if _, ok := m.selected(); ok {
			m.mode = modeConfirm
		}
	case "L":
		if err := d.Logout(); err != nil {
			m.opErr = err.Error()
		}
		m.snap = d.Snapshot()
		cmd := m.password.Focus()
		return m, cmd
	}
	return m, nil
}

func (m DashboardModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	d, ctx := m.dash, m.ctx
	switch msg.String() {
	case "esc":
		if err := d.Cancel(); err != nil {
			m.opErr = err.Error()
		}
		m.snap = d.Snapshot()
		m.mode = modeList
		return m, nil
	case "tab", "down":
		cmd := m.focusInput((m.focus + 1) % len(m.inputs))
		return m, cmd
	case "shift+tab", "up":
		cmd := m.focusInput((m.focus - 1 + len(m.inputs)) % len(m.inputs))
		return m, cmd
	case "ctrl+x":
		if err := d.ClearImages(); err != nil {
			m.opErr = err.Error()
		}
		m.snap = d.Snapshot()
		return m, nil
	case "ctrl+s":
		values := make(map[string]string, len(formFields))
		for i, f := range formFields {
			values[f.name] = m.inputs[i].Value()
		}
		images := splitPaths(m.inputs[imagePathsInput].Value())
		pdf := strings.TrimSpace(m.inputs[pdfPathInput].Value())
		m.inputs[imagePathsInput].SetValue("")
		m.inputs[pdfPathInput].SetValue("")

		cmd := m.start("Submitting...", func() error {
			for _, f := range formFields {
				if err := d.SetField(f.name, values[f.name]); err != nil {
					return err
				}
			}
			if len(images) > 0 {
				if err := d.AttachImages(ctx, images); err != nil {
					return err
				}
			}
			if pdf != "" {
				if err := d.AttachPDF(ctx, pdf); err != nil {
					return err
				}
			}
			return d.Submit(ctx)
		})
		return m, cmd
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m DashboardModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		p, ok := m.selected()
		m.mode = modeList
		if !ok {
			return m, nil
		}
		d, ctx := m.dash, m.ctx
		cmd := m.start("Deleting...", func() error {
			return d.Delete(ctx, p.ID, func(domain.Project) bool { return true })
		})
		return m, cmd
	case "n", "N", "esc":
		m.mode = modeList
	}
	return m, nil
}

func (m *DashboardModel) loadForm(f dashboard.Form) {
	values := map[string]string{
		dashboard.FieldTitle:            f.Title,
		dashboard.FieldShortDescription: f.ShortDescription,
		dashboard.FieldLongDescription:  f.LongDescription,
		dashboard.FieldLiveLink:         f.LiveLink,
		dashboard.FieldGithubLink:       f.GithubLink,
		dashboard.FieldPdfURL:           f.PdfURL,
	}
	for i, field := range formFields {
		m.inputs[i].SetValue(values[field.name])
	}
	m.inputs[imagePathsInput].SetValue("")
	m.inputs[pdfPathInput].SetValue("")
}

func (m *DashboardModel) focusInput(i int) tea.Cmd {
	for j := range m.inputs {
		m.inputs[j].Blur()
	}
	m.focus = i
	return m.inputs[i].Focus()
}

func (m DashboardModel) selected() (domain.Project, bool) {
	if m.cursor < 0 || m.cursor >= len(m.snap.Projects) {
		return domain.Project{}, false
	}
	return m.snap.Projects[m.cursor], true
}

func (m *DashboardModel) clampCursor() {
	if m.cursor >= len(m.snap.Projects) {
		m.cursor = len(m.snap.Projects) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func splitPaths(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (m DashboardModel) View() string {
	title := titleStyle.Render(fmt.Sprintf("Portfolio Admin · %s", m.snap.State))

	var body string
	switch {
	case !m.snap.State.Authenticated():
		body = "Password: " + m.password.View()
	case m.mode == modeForm:
		body = m.viewForm()
	case m.mode == modeConfirm:
		p, _ := m.selected()
		body = fmt.Sprintf("Delete %q? This cannot be undone. [y/N]", p.Title)
	default:
		body = m.viewList()
	}

	status := m.snap.Status
	if m.busy {
		status = fmt.Sprintf("%s %s", m.spinner.View(), m.busyLabel)
	}

	errMsg := m.snap.Error
	if errMsg == "" {
		errMsg = m.opErr
	}
	errorView := ""
	if errMsg != "" {
		errorView = errorStyle.Render(errMsg)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		statusStyle.Render(status),
		body,
		errorView,
		helpStyle.Render(m.help()),
	)
}

func (m DashboardModel) viewList() string {
	if len(m.snap.Projects) == 0 {
		return dimStyle.Render("No projects yet. Press n to add one.")
	}
	var b strings.Builder
	for i, p := range m.snap.Projects {
		line := fmt.Sprintf("%s  %s", p.Title, dimStyle.Render(p.ShortDescription))
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + p.Title))
			b.WriteString("  " + dimStyle.Render(p.ShortDescription))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m DashboardModel) viewForm() string {
	var b strings.Builder
	heading := "Add New Project"
	if !m.snap.Form.IsNew() {
		heading = "Edit Project"
	}
	b.WriteString(selectedStyle.Render(heading) + "\n\n")

	for i, f := range formFields {
		b.WriteString(labelStyle.Render(f.label) + m.inputs[i].View() + "\n")
	}

	b.WriteString("\n" + labelStyle.Render("Images") + fmt.Sprintf("%d attached\n", len(m.snap.Form.ImageURLs)))
	for i, img := range m.snap.Form.ImageURLs {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  %d. %s", i+1, displayURL(img))) + "\n")
	}
	b.WriteString(labelStyle.Render("Attach images") + m.inputs[imagePathsInput].View() + "\n")
	if m.snap.Form.PdfData != "" {
		b.WriteString(labelStyle.Render("PDF") + displayURL(m.snap.Form.PdfData) + "\n")
	}
	b.WriteString(labelStyle.Render("Attach PDF") + m.inputs[pdfPathInput].View() + "\n")
	return b.String()
}

func (m DashboardModel) help() string {
	switch {
	case !m.snap.State.Authenticated():
		return "enter to log in, esc to quit"
	case m.mode == modeForm:
		return "tab/shift+tab move, ctrl+s save, ctrl+x clear images, esc cancel"
	case m.mode == modeConfirm:
		return "y to delete, n to keep"
	default:
		return "j/k move, e edit, n new, d delete, r refresh, L logout, q quit"
	}
}
