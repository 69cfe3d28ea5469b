package gallery

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gavinjunior/portfolio-backend/internal/admin/upload"
	"github.com/gavinjunior/portfolio-backend/internal/projects/domain"
	"github.com/gavinjunior/portfolio-backend/internal/projects/repository"
)

type failingSource struct{}

func (failingSource) ListProjects(context.Context) ([]domain.Project, error) {
	return nil, errors.New("offline")
}

// repoSource adapts a MemoryRepository to Source.
type repoSource struct{ *repository.MemoryRepository }

func (r repoSource) ListProjects(ctx context.Context) ([]domain.Project, error) {
	return r.FindAll(ctx)
}

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryRepository()
	id, err := repo.Insert(ctx, domain.CreateInput{
		Title: "Site", ShortDescription: "s", ImageURLs: []string{"a.png", "b.png"},
	}.Project())
	require.NoError(t, err)

	g := New(repoSource{repo})
	require.NoError(t, g.Load(ctx))

	cards := g.Cards()
	require.Len(t, cards, 1)
	assert.Equal(t, "a.png", cards[0].Image)

	m, err := g.Open(id)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.png", "b.png"}, m.Carousel.Images())

	m.Carousel.Next()
	assert.Equal(t, 1, m.Carousel.Index())
	m.Carousel.Next()
	assert.Equal(t, 0, m.Carousel.Index())
}

func TestLegacyDocument(t *testing.T) {
	repo := repository.NewMemoryRepository(domain.Project{ID: "old", Title: "Old", Description: "legacy blurb", ImageURL: "legacy.png"})
	g := New(repoSource{repo})
	require.NoError(t, g.Load(context.Background()))

	cards := g.Cards()
	require.Len(t, cards, 1)
	assert.Equal(t, "legacy blurb", cards[0].Summary)
	assert.Equal(t, "legacy.png", cards[0].Image)

	m, err := g.Open("old")
	require.NoError(t, err)
	assert.Equal(t, 1, m.Carousel.Len())
	assert.Equal(t, NoNarrative, m.Narrative())
}

func TestLoadError(t *testing.T) {
	g := New(failingSource{})
	assert.Error(t, g.Load(context.Background()))
	assert.Empty(t, g.Cards())

	_, err := g.Open("x")
	assert.ErrorIs(t, err, ErrNoSuchProject)
}

func TestCarousel(t *testing.T) {
	c := NewCarousel([]string{"a", "b", "c"})
	c.Prev()
	assert.Equal(t, "c", c.Current())
	c.Next()
	assert.Equal(t, "a", c.Current())
	require.NoError(t, c.Select(1))
	assert.Equal(t, "b", c.Current())
	assert.Error(t, c.Select(3))
	assert.Error(t, c.Select(-1))

	empty := NewCarousel(nil)
	empty.Next()
	empty.Prev()
	assert.Equal(t, "", empty.Current())
	assert.Equal(t, 0, empty.Index())
}

func TestTransition(t *testing.T) {
	t0 := time.Unix(1000, 0)
	tr := NewTransition()
	assert.Equal(t, PhaseClosed, tr.Phase())
	assert.False(t, tr.ScrollLocked())

	tr.Open(t0)
	assert.Equal(t, PhaseOpening, tr.Phase())
	assert.True(t, tr.ScrollLocked())

	assert.False(t, tr.Advance(t0.Add(100*time.Millisecond)))
	assert.True(t, tr.Advance(t0.Add(300*time.Millisecond)))
	assert.Equal(t, PhaseOpen, tr.Phase())
	assert.True(t, tr.Visible())

	assert.False(t, tr.Advance(t0.Add(time.Hour)), "open is stable")

	t1 := t0.Add(2 * time.Second)
	tr.Close(t1)
	assert.Equal(t, PhaseClosing, tr.Phase())
	assert.True(t, tr.ScrollLocked())

	tr.Open(t1.Add(50 * time.Millisecond))
	assert.Equal(t, PhaseOpening, tr.Phase(), "reopening while closing")

	tr.Close(t1.Add(60 * time.Millisecond))
	assert.True(t, tr.Advance(t1.Add(400*time.Millisecond)))
	assert.Equal(t, PhaseClosed, tr.Phase())
	assert.False(t, tr.ScrollLocked())

	tr.Close(t1)
	assert.Equal(t, PhaseClosed, tr.Phase())
}

func TestGalleryTick(t *testing.T) {
	now := time.Unix(0, 0)
	g := New(repoSource{repository.NewMemoryRepository(domain.Project{ID: "p", Title: "P", ShortDescription: "s"})})
	g.now = func() time.Time { return now }
	require.NoError(t, g.Load(context.Background()))

	_, err := g.Open("p")
	require.NoError(t, err)
	now = now.Add(DefaultDuration)
	assert.Equal(t, PhaseOpen, g.Tick())

	g.Close()
	assert.NotNil(t, g.Modal())
	now = now.Add(DefaultDuration)
	assert.Equal(t, PhaseClosed, g.Tick())
	assert.Nil(t, g.Modal())
	assert.False(t, g.ScrollLocked())
}

func TestActions(t *testing.T) {
	cases := []struct {
		name string
		p    domain.Project
		want []Action
	}{
		{
			name: "none",
			p:    domain.Project{},
			want: nil,
		},
		{
			name: "live and github",
			p:    domain.Project{LiveLink: "https://site.dev", GithubLink: "https://github.com/me/site"},
			want: []Action{
				{Kind: ActionLink, Label: "Visit Live Project", URL: "https://site.dev", Primary: true},
				{Kind: ActionLink, Label: "View Code on GitHub", URL: "https://github.com/me/site"},
			},
		},
		{
			name: "video primary and plain secondary",
			p:    domain.Project{LiveLink: "https://youtube.com/watch?v=1", GithubLink: "https://gitlab.com/me/site"},
			want: []Action{
				{Kind: ActionLink, Label: "Watch Demonstration", URL: "https://youtube.com/watch?v=1", Primary: true},
				{Kind: ActionLink, Label: "View Project", URL: "https://gitlab.com/me/site"},
			},
		},
		{
			name: "github as live link",
			p:    domain.Project{LiveLink: "https://me.github.io/demo", PdfURL: "doc.pdf"},
			want: []Action{
				{Kind: ActionLink, Label: "View Code on GitHub", URL: "https://me.github.io/demo", Primary: true},
				{Kind: ActionPDF, Label: "Download Documentation (PDF)", URL: "doc.pdf"},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NewModal(tc.p).Actions())
		})
	}
}

func TestNarrative(t *testing.T) {
	assert.Equal(t, "Deep dive", NewModal(domain.Project{LongDescription: "Deep dive"}).Narrative())
	assert.Equal(t, NoNarrative, NewModal(domain.Project{LongDescription: "  "}).Narrative())
}

func TestDownloadPDF(t *testing.T) {
	ctx := context.Background()

	t.Run("inline document", func(t *testing.T) {
		dir := t.TempDir()
		m := NewModal(domain.Project{Title: "My/App", PdfURL: upload.EncodeDataURL("application/pdf", []byte("%PDF-1.4"))})

		path, err := m.DownloadPDF(ctx, nil, dir)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "My-App-Documentation.pdf"), path)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "%PDF-1.4", string(data))
	})

	t.Run("remote document", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/doc.pdf" {
				http.NotFound(w, r)
				return
			}
			_, _ = w.Write([]byte("%PDF-remote"))
		}))
		defer srv.Close()

		dir := t.TempDir()
		path, err := NewModal(domain.Project{Title: "Site", PdfURL: srv.URL + "/doc.pdf"}).DownloadPDF(ctx, srv.Client(), dir)
		require.NoError(t, err)
		data, _ := os.ReadFile(path)
		assert.Equal(t, "%PDF-remote", string(data))

		_, err = NewModal(domain.Project{Title: "Site", PdfURL: srv.URL + "/missing.pdf"}).DownloadPDF(ctx, srv.Client(), dir)
		assert.Error(t, err)
	})

	t.Run("no document", func(t *testing.T) {
		_, err := NewModal(domain.Project{Title: "Site"}).DownloadPDF(ctx, nil, t.TempDir())
		assert.Error(t, err)
	})
}
