package repository

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gavinjunior/portfolio-backend/internal/projects/domain"
)

// MemoryRepository is an in-process store with the same semantics as
// ProjectRepository. Ids are generated ObjectID hex strings.
type MemoryRepository struct {
	mu    sync.Mutex
	order []string
	items map[string]domain.Project
}

func NewMemoryRepository(seed ...domain.Project) *MemoryRepository {
	r := &MemoryRepository{items: make(map[string]domain.Project)}
	for _, p := range seed {
		if p.ID == "" {
			p.ID = primitive.NewObjectID().Hex()
		}
		r.order = append(r.order, p.ID)
		r.items[p.ID] = p
	}
	return r
}

func (r *MemoryRepository) FindAll(ctx context.Context) ([]domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Project, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, clone(r.items[id]))
	}
	return out, nil
}

func (r *MemoryRepository) Insert(ctx context.Context, p domain.Project) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.ID = primitive.NewObjectID().Hex()
	if p.ImageURLs == nil {
		p.ImageURLs = []string{}
	}
	r.order = append(r.order, p.ID)
	r.items[p.ID] = clone(p)
	return p.ID, nil
}

func (r *MemoryRepository) Update(ctx context.Context, id string, f domain.Fields) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	if f.Empty() {
		return nil
	}
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	set(&p.Title, f.Title)
	set(&p.ShortDescription, f.ShortDescription)
	set(&p.LongDescription, f.LongDescription)
	set(&p.LiveLink, f.LiveLink)
	set(&p.GithubLink, f.GithubLink)
	set(&p.PdfURL, f.PdfURL)
	if f.ImageURLs != nil {
		p.ImageURLs = append([]string{}, (*f.ImageURLs)...)
	}
	r.items[id] = p
	return nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// Get returns a stored project by id, for assertions.
func (r *MemoryRepository) Get(id string) (domain.Project, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.items[id]
	return clone(p), ok
}

func (r *MemoryRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

func clone(p domain.Project) domain.Project {
	if p.ImageURLs != nil {
		p.ImageURLs = append([]string{}, p.ImageURLs...)
	}
	return p
}
