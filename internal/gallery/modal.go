package gallery

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gavinjunior/portfolio-backend/internal/admin/upload"
	"github.com/gavinjunior/portfolio-backend/internal/projects/domain"
)

const NoNarrative = "No detailed narrative provided for this project."

// ActionKind distinguishes outbound links from the document download.
type ActionKind int

const (
	ActionLink ActionKind = iota
	ActionPDF
)

type Action struct {
	Kind    ActionKind
	Label   string
	URL     string
	Primary bool
}

// Modal is the detail view of one project.
type Modal struct {
	Project  domain.Project
	Carousel *Carousel
}

func NewModal(p domain.Project) *Modal {
	p = domain.Normalize(p)
	return &Modal{Project: p, Carousel: NewCarousel(p.ImageURLs)}
}

// Narrative is the long description or a placeholder.
func (m *Modal) Narrative() string {
	if strings.TrimSpace(m.Project.LongDescription) == "" {
		return NoNarrative
	}
	return m.Project.LongDescription
}

// Actions lists the buttons to render, in display order: live link,
// source link, then the PDF download.
func (m *Modal) Actions() []Action {
	var out []Action
	if a, ok := linkAction(m.Project.LiveLink, true); ok {
		out = append(out, a)
	}
	if a, ok := linkAction(m.Project.GithubLink, false); ok {
		out = append(out, a)
	}
	if m.Project.PdfURL != "" {
		out = append(out, Action{Kind: ActionPDF, Label: "Download Documentation (PDF)", URL: m.Project.PdfURL})
	}
	return out
}

func linkAction(url string, primary bool) (Action, bool) {
	if url == "" {
		return Action{}, false
	}
	a := Action{Kind: ActionLink, URL: url, Primary: primary, Label: "View Project"}
	switch {
	case strings.Contains(url, "github"):
		a.Label = "View Code on GitHub"
	case strings.Contains(url, "youtube"), strings.Contains(url, "vimeo"):
		a.Label = "Watch Demonstration"
	case primary:
		a.Label = "Visit Live Project"
	}
	return a, true
}

// PDFFileName is the suggested name for the downloaded document.
func (m *Modal) PDFFileName() string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '-'
		}
		return r
	}, m.Project.Title)
	return name + "-Documentation.pdf"
}

// DownloadPDF saves the project's document into dir and returns the path.
// Inline data URLs are decoded locally; anything else is fetched with client.
func (m *Modal) DownloadPDF(ctx context.Context, client *http.Client, dir string) (string, error) {
	src := m.Project.PdfURL
	if src == "" {
		return "", fmt.Errorf("project %q has no document", m.Project.Title)
	}

	dest := filepath.Join(dir, m.PDFFileName())
	if upload.IsDataURL(src) {
		_, data, err := upload.DecodeDataURL(src)
		if err != nil {
			return "", fmt.Errorf("decoding document: %w", err)
		}
		if err := os.WriteFile(dest, data, 0o644); err != nil {
			return "", err
		}
		return dest, nil
	}

	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return "", err
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching document: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetching document: status %d", resp.StatusCode)
	}

	f, err := os.Create(dest)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		_ = f.Close()
		return "", err
	}
	return dest, f.Close()
}
