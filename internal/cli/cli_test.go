package cli

import (
	"bytes"
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gavinjunior/portfolio-backend/config"
	"github.com/gavinjunior/portfolio-backend/internal/admin/tokenstore"
	authhttp "github.com/gavinjunior/portfolio-backend/internal/auth/http"
	authmw "github.com/gavinjunior/portfolio-backend/internal/auth/middleware"
	authsvc "github.com/gavinjunior/portfolio-backend/internal/auth/service"
	"github.com/gavinjunior/portfolio-backend/internal/projects/domain"
	projectshttp "github.com/gavinjunior/portfolio-backend/internal/projects/http"
	"github.com/gavinjunior/portfolio-backend/internal/projects/repository"
	"github.com/gavinjunior/portfolio-backend/internal/projects/service"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

type harness struct {
	server    string
	configDir string
	repo      *repository.MemoryRepository
}

func newHarness(t *testing.T, seed ...domain.Project) *harness {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepository(seed...)
	auth := config.AuthConfig{AdminPassword: "pw", SecretToken: "tok"}
	r := gin.New()
	api := r.Group("/api")
	authhttp.New(authsvc.NewIssuer(auth), nil).Register(api)
	projectshttp.New(service.NewProjectService(repo, nil, nil), nil).Register(api, authmw.RequireBearer(auth.SecretToken))

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return &harness{server: srv.URL, configDir: t.TempDir(), repo: repo}
}

func (h *harness) run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--server", h.server, "--config-dir", h.configDir}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func (h *harness) login(t *testing.T) {
	t.Helper()
	_, err := h.run(t, "pw\n", "login", "--password-stdin")
	require.NoError(t, err)
}

func TestLoginAndLogout(t *testing.T) {
	h := newHarness(t)
	store := tokenstore.New(h.configDir)

	_, err := h.run(t, "nope\n", "login")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid password.")

	out, err := h.run(t, "pw\n", "login")
	require.NoError(t, err)
	assert.Contains(t, out, "Login successful")
	token, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok", token)

	out, err = h.run(t, "", "logout")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged out.")
	token, err = store.Load()
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestProjects_RequireLogin(t *testing.T) {
	h := newHarness(t)

	_, err := h.run(t, "", "projects", "create", "--title", "Site", "--short", "s")
	assert.ErrorIs(t, err, errLoginRequired)
	assert.Equal(t, 0, h.repo.Len())
}

func TestProjects_CreateListUpdateDelete(t *testing.T) {
	h := newHarness(t)
	h.login(t)

	img := filepath.Join(t.TempDir(), "shot.png")
	require.NoError(t, os.WriteFile(img, []byte("\x89PNG\r\n\x1a\nfake"), 0o644))

	out, err := h.run(t, "", "projects", "create",
		"--title", "Site", "--short", "Personal site",
		"--image", "https://cdn.example.com/a.png", "--image", img)
	require.NoError(t, err)
	assert.Contains(t, out, "Project added successfully!")

	items, err := h.repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	id := items[0].ID
	require.Len(t, items[0].ImageURLs, 2)
	assert.Equal(t, "https://cdn.example.com/a.png", items[0].ImageURLs[0])
	assert.True(t, strings.HasPrefix(items[0].ImageURLs[1], "data:image/png;base64,"))

	out, err = h.run(t, "", "projects", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Site")
	assert.Contains(t, out, id)
	assert.Contains(t, out, "2 image(s)")

	out, err = h.run(t, "", "projects", "update", id, "--title", "Renamed", "--clear-images")
	require.NoError(t, err)
	assert.Contains(t, out, "Project updated successfully!")
	p, ok := h.repo.Get(id)
	require.True(t, ok)
	assert.Equal(t, "Renamed", p.Title)
	assert.Equal(t, "Personal site", p.ShortDescription)
	assert.Empty(t, p.ImageURLs)

	out, err = h.run(t, "n\n", "projects", "delete", id)
	require.NoError(t, err)
	assert.Contains(t, out, "Aborted.")
	assert.Equal(t, 1, h.repo.Len())

	out, err = h.run(t, "", "projects", "delete", id, "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Project deleted.")
	assert.Equal(t, 0, h.repo.Len())
}

func TestProjects_Validation(t *testing.T) {
	h := newHarness(t, domain.Project{ID: "p1", Title: "Old", ShortDescription: "s"})
	h.login(t)

	_, err := h.run(t, "", "projects", "create", "--title", "Only title")
	assert.EqualError(t, err, "--title and --short are required")

	out, err := h.run(t, "", "projects", "update", "p1")
	require.NoError(t, err)
	assert.Contains(t, out, "Nothing to update.")

	_, err = h.run(t, "", "projects", "update", "missing", "--title", "x")
	require.Error(t, err)

	_, err = h.run(t, "", "projects", "create", "--title", "T", "--short", "s", "--pdf", filepath.Join(t.TempDir(), "none.pdf"))
	require.Error(t, err)
	assert.Equal(t, 1, h.repo.Len())
}

func TestProjectsList_Empty(t *testing.T) {
	h := newHarness(t)

	out, err := h.run(t, "", "projects", "ls")
	require.NoError(t, err)
	assert.Contains(t, out, "No projects found.")
}
