// Package dashboard drives the admin editing session independently of any
// renderer: login, the project list, the edit form and its uploads.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/gavinjunior/portfolio-backend/internal/admin/upload"
	"github.com/gavinjunior/portfolio-backend/internal/projects/domain"
)

var (
	ErrNotAuthenticated = errors.New("not logged in")
	ErrInvalidState     = errors.New("action not allowed in the current state")
	ErrUnknownProject   = errors.New("project not found in the list")
	ErrIncompleteForm   = errors.New("title and short description are required")
	ErrFormReplaced     = errors.New("form was reset or replaced before the upload finished")
)

// API is the slice of the portfolio API the dashboard needs.
type API interface {
	Login(ctx context.Context, password string) (string, error)
	ListProjects(ctx context.Context) ([]domain.Project, error)
	CreateProject(ctx context.Context, token string, in domain.CreateInput) (string, error)
	UpdateProject(ctx context.Context, token string, in domain.UpdateInput) error
	DeleteProject(ctx context.Context, token, id string) error
}

// TokenStore persists the bearer token across sessions.
type TokenStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// Snapshot is a consistent copy of the dashboard for rendering.
type Snapshot struct {
	State    State
	Projects []domain.Project
	Form     Form
	Status   string
	Error    string
}

type Dashboard struct {
	api    API
	tokens TokenStore
	images upload.Encoder
	pdfs   upload.Encoder

	mu       sync.Mutex
	state    State
	token    string
	projects []domain.Project
	form     Form
	formGen  uint64
	status   string
	errMsg   string
}

func New(api API, tokens TokenStore, images, pdfs upload.Encoder) *Dashboard {
	if images == nil {
		images = upload.NewImageEncoder()
	}
	if pdfs == nil {
		pdfs = upload.NewPDFEncoder()
	}
	return &Dashboard{api: api, tokens: tokens, images: images, pdfs: pdfs}
}

func (d *Dashboard) Snapshot() Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()

	form := d.form
	form.ImageURLs = append([]string(nil), d.form.ImageURLs...)
	return Snapshot{
		State:    d.state,
		Projects: append([]domain.Project(nil), d.projects...),
		Form:     form,
		Status:   d.status,
		Error:    d.errMsg,
	}
}

// Mount restores a stored token. Without one the session stays
// unauthenticated and ErrNotAuthenticated tells the caller to show login.
func (d *Dashboard) Mount(ctx context.Context) error {
	token, err := d.tokens.Load()
	if err != nil {
		return fmt.Errorf("reading stored token: %w", err)
	}

	d.mu.Lock()
	if token == "" {
		d.state = StateUnauthenticated
		d.token = ""
		d.mu.Unlock()
		return ErrNotAuthenticated
	}
	d.token = token
	d.state = StateIdle
	d.resetFormLocked()
	d.mu.Unlock()

	return d.Refresh(ctx)
}

func (d *Dashboard) Login(ctx context.Context, password string) error {
	d.mu.Lock()
	if d.state != StateUnauthenticated {
		d.mu.Unlock()
		return ErrInvalidState
	}
	d.state = StateAuthenticating
	d.errMsg = ""
	d.mu.Unlock()

	token, err := d.api.Login(ctx, password)
	if err == nil {
		err = d.tokens.Save(token)
	}

	d.mu.Lock()
	if err != nil {
		d.state = StateUnauthenticated
		d.errMsg = err.Error()
		d.mu.Unlock()
		return err
	}
	d.token = token
	d.state = StateIdle
	d.resetFormLocked()
	d.status = "Logged in."
	d.mu.Unlock()

	return d.Refresh(ctx)
}

// Refresh refetches the project list. A failure keeps the previous list.
func (d *Dashboard) Refresh(ctx context.Context) error {
	items, err := d.api.ListProjects(ctx)

	d.mu.Lock()
	defer d.mu.Unlock()
	if err != nil {
		d.errMsg = "Failed to fetch projects: " + err.Error()
		return err
	}
	d.projects = domain.NormalizeAll(items)
	return nil
}

// Edit loads a listed project into the form.
func (d *Dashboard) Edit(id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state != StateIdle && d.state != StateEditing {
		return ErrInvalidState
	}
	for _, p := range d.projects {
		if p.ID == id {
			d.form = FormFromProject(p)
			d.state = StateEditing
			d.status, d.errMsg = "", ""
			return nil
		}
	}
	return ErrUnknownProject
}

// SetField changes one text field. Typing into the empty form starts a new project.
func (d *Dashboard) SetField(field, value string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.beginEditLocked(); err != nil {
		return err
	}
	return d.form.set(field, value)
}

// AttachImages encodes files and appends them to the form's image list in
// selection order. Oversized or unreadable files are reported in the error
// message; accepted files are kept either way.
func (d *Dashboard) AttachImages(ctx context.Context, paths []string) error {
	d.mu.Lock()
	if err := d.beginEditLocked(); err != nil {
		d.mu.Unlock()
		return err
	}
	gen := d.formGen
	d.mu.Unlock()

	accepted, rejected := upload.EncodeAll(ctx, d.images, paths)

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.formGen != gen {
		return ErrFormReplaced
	}
	if len(accepted) > 0 {
		d.form.ImageURLs = append(d.form.ImageURLs, accepted...)
		d.form.ImagesChanged = true
	}
	if len(rejected) == 0 {
		d.errMsg = ""
		return nil
	}
	msgs := make([]string, 0, len(rejected))
	errs := make([]error, 0, len(rejected))
	for _, r := range rejected {
		msgs = append(msgs, r.Err.Error())
		errs = append(errs, r.Err)
	}
	d.errMsg = "Error: " + strings.Join(msgs, "; ")
	return errors.Join(errs...)
}

// RemoveImage drops one image from the form by index.
func (d *Dashboard) RemoveImage(i int) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.beginEditLocked(); err != nil {
		return err
	}
	if i < 0 || i >= len(d.form.ImageURLs) {
		return fmt.Errorf("image index %d out of range", i)
	}
	d.form.ImageURLs = append(d.form.ImageURLs[:i:i], d.form.ImageURLs[i+1:]...)
	d.form.ImagesChanged = true
	return nil
}

// AddImageURLs appends already-hosted images to the form.
func (d *Dashboard) AddImageURLs(urls ...string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.beginEditLocked(); err != nil {
		return err
	}
	d.form.ImageURLs = append(d.form.ImageURLs, urls...)
	d.form.ImagesChanged = true
	return nil
}

// ClearImages empties the form's image list.
func (d *Dashboard) ClearImages() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.beginEditLocked(); err != nil {
		return err
	}
	d.form.ImageURLs = []string{}
	d.form.ImagesChanged = true
	return nil
}

// AttachPDF encodes a document, replacing any earlier attachment.
func (d *Dashboard) AttachPDF(ctx context.Context, path string) error {
	d.mu.Lock()
	if err := d.beginEditLocked(); err != nil {
		d.mu.Unlock()
		return err
	}
	gen := d.formGen
	d.mu.Unlock()

	data, err := d.pdfs.Encode(ctx, path)

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.formGen != gen {
		return ErrFormReplaced
	}
	if err != nil {
		d.errMsg = "Error: " + err.Error()
		return err
	}
	d.form.PdfData = data
	d.errMsg = ""
	return nil
}

// Submit saves the form: create when new, partial update otherwise.
// On failure the form is kept for another attempt.
func (d *Dashboard) Submit(ctx context.Context) error {
	d.mu.Lock()
	if d.state != StateEditing {
		d.mu.Unlock()
		return ErrInvalidState
	}
	if d.token == "" {
		d.errMsg = "Error: Authorization token missing."
		d.mu.Unlock()
		return ErrNotAuthenticated
	}
	if strings.TrimSpace(d.form.Title) == "" || strings.TrimSpace(d.form.ShortDescription) == "" {
		d.errMsg = "Error: Title and short description are required."
		d.mu.Unlock()
		return ErrIncompleteForm
	}
	form, token := d.form, d.token
	d.state = StateSubmitting
	d.status, d.errMsg = "Submitting...", ""
	d.mu.Unlock()

	var err error
	if form.IsNew() {
		_, err = d.api.CreateProject(ctx, token, form.createInput())
	} else {
		err = d.api.UpdateProject(ctx, token, form.updateInput())
	}

	d.mu.Lock()
	if err != nil {
		d.state = StateEditing
		d.status = ""
		d.errMsg = "Error: " + err.Error()
		d.mu.Unlock()
		return err
	}
	d.state = StateIdle
	d.resetFormLocked()
	if form.IsNew() {
		d.status = "Project added successfully! Form reset."
	} else {
		d.status = "Project updated successfully! Form reset."
	}
	d.mu.Unlock()

	return d.Refresh(ctx)
}

// Cancel discards in-progress edits.
func (d *Dashboard) Cancel() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state != StateIdle && d.state != StateEditing {
		return ErrInvalidState
	}
	d.state = StateIdle
	d.resetFormLocked()
	d.status, d.errMsg = "", ""
	return nil
}

// Delete removes a project once confirm approves it. A declined
// confirmation is not an error.
func (d *Dashboard) Delete(ctx context.Context, id string, confirm func(domain.Project) bool) error {
	d.mu.Lock()
	if d.state != StateIdle && d.state != StateEditing {
		d.mu.Unlock()
		return ErrInvalidState
	}
	var target *domain.Project
	for i := range d.projects {
		if d.projects[i].ID == id {
			p := d.projects[i]
			target = &p
			break
		}
	}
	token := d.token
	d.mu.Unlock()

	if target == nil {
		return ErrUnknownProject
	}
	if confirm != nil && !confirm(*target) {
		return nil
	}

	if err := d.api.DeleteProject(ctx, token, id); err != nil {
		d.mu.Lock()
		d.errMsg = "Error: " + err.Error()
		d.mu.Unlock()
		return err
	}

	d.mu.Lock()
	if d.form.ID == id {
		d.resetFormLocked()
		d.state = StateIdle
	}
	d.status, d.errMsg = "Project deleted.", ""
	d.mu.Unlock()

	return d.Refresh(ctx)
}

// Logout forgets the token locally and in the store.
func (d *Dashboard) Logout() error {
	err := d.tokens.Clear()

	d.mu.Lock()
	defer d.mu.Unlock()
	d.state = StateUnauthenticated
	d.token = ""
	d.projects = nil
	d.resetFormLocked()
	d.status, d.errMsg = "", ""
	return err
}

// resetFormLocked clears the form. Uploads started against the old form
// are discarded when they complete.
func (d *Dashboard) resetFormLocked() {
	d.form = Form{}
	d.formGen++
}

func (d *Dashboard) beginEditLocked() error {
	switch d.state {
	case StateEditing:
		return nil
	case StateIdle:
		d.state = StateEditing
		d.status = ""
		return nil
	default:
		return ErrInvalidState
	}
}
