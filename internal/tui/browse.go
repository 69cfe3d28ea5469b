package tui

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gavinjunior/portfolio-backend/internal/gallery"
)

// cardItem adapts a gallery card to the bubbles list.
type cardItem struct{ card gallery.Card }

func (c cardItem) FilterValue() string { return c.card.Title }
func (c cardItem) Title() string       { return c.card.Title }
func (c cardItem) Description() string { return c.card.Summary }

type galleryLoadedMsg struct{ err error }
type transitionTickMsg struct{}
type pdfDownloadedMsg struct {
	path string
	err  error
}

// BrowseModel is the read-only gallery: a card list and the project modal.
type BrowseModel struct {
	ctx         context.Context
	gallery     *gallery.Gallery
	httpClient  *http.Client
	downloadDir string

	list    list.Model
	spinner spinner.Model
	loading bool
	status  string
	err     string
	width   int
}

func NewBrowseModel(ctx context.Context, g *gallery.Gallery, httpClient *http.Client, downloadDir string) BrowseModel {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Projects"
	l.SetShowHelp(true)

	s := spinner.New()
	s.Spinner = spinner.Dot

	return BrowseModel{
		ctx:         ctx,
		gallery:     g,
		httpClient:  httpClient,
		downloadDir: downloadDir,
		list:        l,
		spinner:     s,
		loading:     true,
	}
}

func (m BrowseModel) Init() tea.Cmd {
	g, ctx := m.gallery, m.ctx
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		return galleryLoadedMsg{err: g.Load(ctx)}
	})
}

func transitionTick() tea.Cmd {
	return tea.Tick(gallery.DefaultDuration, func(time.Time) tea.Msg { return transitionTickMsg{} })
}

func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.list.SetSize(msg.Width, msg.Height-2)
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case galleryLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = fmt.Sprintf("Failed to load projects: %v", msg.err)
			return m, nil
		}
		cards := m.gallery.Cards()
		items := make([]list.Item, len(cards))
		for i, c := range cards {
			items[i] = cardItem{card: c}
		}
		cmd := m.list.SetItems(items)
		return m, cmd

	case transitionTickMsg:
		switch m.gallery.Tick() {
		case gallery.PhaseOpening, gallery.PhaseClosing:
			return m, transitionTick()
		}
		return m, nil

	case pdfDownloadedMsg:
		if msg.err != nil {
			m.err = fmt.Sprintf("Download failed: %v", msg.err)
		} else {
			m.err = ""
			m.status = "Saved " + msg.path
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.gallery.ScrollLocked() {
			return m.updateModal(msg)
		}
		if m.list.FilterState() != list.Filtering {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "r":
				m.loading = true
				g, ctx := m.gallery, m.ctx
				return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
					return galleryLoadedMsg{err: g.Load(ctx)}
				})
			case "enter":
				item, ok := m.list.SelectedItem().(cardItem)
				if !ok {
					return m, nil
				}
				if _, err := m.gallery.Open(item.card.ID); err != nil {
					m.err = err.Error()
					return m, nil
				}
				m.status = ""
				return m, transitionTick()
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m BrowseModel) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	modal := m.gallery.Modal()
	if modal == nil || m.gallery.Phase() == gallery.PhaseClosing {
		return m, nil
	}

	switch key := msg.String(); key {
	case "esc", "q", "backspace":
		m.gallery.Close()
		return m, transitionTick()
	case "right", "l":
		modal.Carousel.Next()
	case "left", "h":
		modal.Carousel.Prev()
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		if err := modal.Carousel.Select(int(key[0] - '1')); err != nil {
			m.err = err.Error()
		}
	case "p":
		if modal.Project.PdfURL == "" {
			return m, nil
		}
		m.status = "Downloading " + modal.PDFFileName() + "..."
		ctx, client, dir := m.ctx, m.httpClient, m.downloadDir
		return m, func() tea.Msg {
			path, err := modal.DownloadPDF(ctx, client, dir)
			return pdfDownloadedMsg{path: path, err: err}
		}
	}
	return m, nil
}

func (m BrowseModel) View() string {
	var body string
	switch {
	case m.loading:
		body = fmt.Sprintf("%s Loading projects...", m.spinner.View())
	case m.gallery.Modal() != nil:
		body = m.viewModal(m.gallery.Modal())
	default:
		body = m.list.View()
	}

	errorView := ""
	if m.err != "" {
		errorView = errorStyle.Render(m.err)
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, statusStyle.Render(m.status), errorView)
}

func (m BrowseModel) viewModal(modal *gallery.Modal) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(modal.Project.Title) + "\n\n")

	if c := modal.Carousel; c.Len() > 0 {
		b.WriteString(fmt.Sprintf("Image %d/%d  %s\n", c.Index()+1, c.Len(), displayURL(c.Current())))
		if c.Len() > 1 {
			dots := make([]string, c.Len())
			for i := range dots {
				dots[i] = "○"
				if i == c.Index() {
					dots[i] = selectedStyle.Render("●")
				}
			}
			b.WriteString(strings.Join(dots, " ") + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(modal.Project.ShortDescription + "\n\n")
	b.WriteString(modal.Narrative() + "\n\n")

	for _, a := range modal.Actions() {
		label := a.Label
		if a.Primary {
			label = selectedStyle.Render(label)
		}
		if a.Kind == gallery.ActionPDF {
			b.WriteString(fmt.Sprintf("[p] %s\n", label))
			continue
		}
		b.WriteString(fmt.Sprintf("%s  %s\n", label, dimStyle.Render(a.URL)))
	}
	b.WriteString("\n" + helpStyle.Render("←/→ images, 1-9 jump, p download PDF, esc close"))

	panel := panelStyle
	if m.gallery.Phase() != gallery.PhaseOpen {
		panel = panel.Faint(true)
	}
	if m.width > 0 {
		panel = panel.Width(m.width - 4)
	}
	return panel.Render(b.String())
}
