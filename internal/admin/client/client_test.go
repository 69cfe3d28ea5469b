package client

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gavinjunior/portfolio-backend/config"
	authhttp "github.com/gavinjunior/portfolio-backend/internal/auth/http"
	authmw "github.com/gavinjunior/portfolio-backend/internal/auth/middleware"
	authsvc "github.com/gavinjunior/portfolio-backend/internal/auth/service"
	"github.com/gavinjunior/portfolio-backend/internal/projects/domain"
	projectshttp "github.com/gavinjunior/portfolio-backend/internal/projects/http"
	"github.com/gavinjunior/portfolio-backend/internal/projects/repository"
	"github.com/gavinjunior/portfolio-backend/internal/projects/service"
)

func newServer(t *testing.T, repo *repository.MemoryRepository) *Client {
	t.Helper()
	gin.SetMode(gin.TestMode)

	auth := config.AuthConfig{AdminPassword: "pw", SecretToken: "tok"}
	r := gin.New()
	api := r.Group("/api")
	authhttp.New(authsvc.NewIssuer(auth), nil).Register(api)
	projectshttp.New(service.NewProjectService(repo, nil, nil), nil).Register(api, authmw.RequireBearer(auth.SecretToken))

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return New(srv.URL + "/")
}

func strPtr(s string) *string { return &s }

func TestClient_LoginAndCRUD(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryRepository()
	c := newServer(t, repo)

	_, err := c.Login(ctx, "wrong")
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
	assert.Equal(t, "Invalid password.", err.Error())

	token, err := c.Login(ctx, "pw")
	require.NoError(t, err)
	assert.Equal(t, "tok", token)

	id, err := c.CreateProject(ctx, token, domain.CreateInput{
		Title: "Site", ShortDescription: "Personal site", ImageURLs: []string{"a.png", "b.png"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	items, err := c.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "a.png", items[0].SummaryImage())

	require.NoError(t, c.UpdateProject(ctx, token, domain.UpdateInput{ID: id, Title: strPtr("Site v2")}))
	p, _ := repo.Get(id)
	assert.Equal(t, "Site v2", p.Title)

	err = c.UpdateProject(ctx, token, domain.UpdateInput{ID: "missing", Title: strPtr("x")})
	assert.True(t, IsNotFound(err))

	err = c.DeleteProject(ctx, "bad-token", id)
	assert.True(t, IsUnauthorized(err))

	require.NoError(t, c.DeleteProject(ctx, token, id))
	assert.Zero(t, repo.Len())
}

func TestClient_ValidationMessage(t *testing.T) {
	c := newServer(t, repository.NewMemoryRepository())

	_, err := c.CreateProject(context.Background(), "tok", domain.CreateInput{Title: "only title"})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.StatusCode)
	assert.Equal(t, "Missing required fields (title or short description).", apiErr.Message)
}
