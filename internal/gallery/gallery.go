// Package gallery is the public project browser: cards, the detail modal
// and its carousel, independent of how they are drawn.
package gallery

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gavinjunior/portfolio-backend/internal/projects/domain"
)

var ErrNoSuchProject = errors.New("no such project")

// Source supplies the public project list.
type Source interface {
	ListProjects(ctx context.Context) ([]domain.Project, error)
}

// Card is the summary tile for one project.
type Card struct {
	ID      string
	Title   string
	Summary string
	Image   string
}

type Gallery struct {
	src Source
	now func() time.Time

	mu         sync.Mutex
	projects   []domain.Project
	modal      *Modal
	transition *Transition
}

func New(src Source) *Gallery {
	return &Gallery{src: src, now: time.Now, transition: NewTransition()}
}

// Load fetches the list once; call again for a full refetch.
func (g *Gallery) Load(ctx context.Context) error {
	items, err := g.src.ListProjects(ctx)
	if err != nil {
		return err
	}

	g.mu.Lock()
	g.projects = domain.NormalizeAll(items)
	g.mu.Unlock()
	return nil
}

func (g *Gallery) Cards() []Card {
	g.mu.Lock()
	defer g.mu.Unlock()

	cards := make([]Card, 0, len(g.projects))
	for _, p := range g.projects {
		cards = append(cards, Card{
			ID:      p.ID,
			Title:   p.Title,
			Summary: p.ShortDescription,
			Image:   p.SummaryImage(),
		})
	}
	return cards
}

// Open shows the modal for a project and starts the opening animation.
func (g *Gallery) Open(id string) (*Modal, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, p := range g.projects {
		if p.ID == id {
			g.modal = NewModal(p)
			g.transition.Open(g.now())
			return g.modal, nil
		}
	}
	return nil, ErrNoSuchProject
}

// Close starts the closing animation. The modal stays available until
// the transition reaches closed.
func (g *Gallery) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.transition.Close(g.now())
}

// Tick advances the animation and drops the modal once fully closed.
func (g *Gallery) Tick() Phase {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.transition.Advance(g.now())
	if g.transition.Phase() == PhaseClosed {
		g.modal = nil
	}
	return g.transition.Phase()
}

func (g *Gallery) Modal() *Modal {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.modal
}

func (g *Gallery) Phase() Phase {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.transition.Phase()
}

func (g *Gallery) ScrollLocked() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.transition.ScrollLocked()
}
