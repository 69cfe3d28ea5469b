package bootstrap

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gavinjunior/portfolio-backend/config"
	"github.com/gavinjunior/portfolio-backend/internal/mail"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: "0", AllowedOrigins: []string{"https://portfolio.example"}},
		Cache:  config.CacheConfig{TTL: time.Minute},
		Auth:   config.AuthConfig{AdminPassword: "pw", SecretToken: "tok"},
		Mail:   config.MailConfig{Transport: config.MailTransportConsole},
		App:    config.AppConfig{Environment: "test", Version: "9.9.9"},
	}
}

func TestBuildRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	sender := mail.NewConsoleSender(zap.NewNop())
	r := BuildRouter(RouterDeps{
		ServiceName: "portfolio-api",
		Config:      testConfig(),
		Logger:      zap.NewNop(),
		Redis:       rdb,
		Mail:        sender,
	})

	serve := func(req *http.Request) *httptest.ResponseRecorder {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		return rr
	}

	t.Run("health reports dependencies", func(t *testing.T) {
		rr := serve(httptest.NewRequest(http.MethodGet, "/health", nil))
		require.Equal(t, http.StatusOK, rr.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		deps := body["dependencies"].(map[string]any)
		assert.Equal(t, "disabled", deps["mongo"])
		assert.Equal(t, "up", deps["redis"])
		assert.NotEmpty(t, rr.Header().Get("X-Request-Id"))
	})

	t.Run("login", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{"password":"pw"}`))
		req.Header.Set("Content-Type", "application/json")
		rr := serve(req)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"token":"tok"`)
	})

	t.Run("projects without a database", func(t *testing.T) {
		rr := serve(httptest.NewRequest(http.MethodGet, "/api/projects", nil))
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})

	t.Run("writes still require the token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/api/projects", strings.NewReader(`{"id":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		assert.Equal(t, http.StatusUnauthorized, serve(req).Code)
	})

	t.Run("contact over console transport", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/send-message",
			strings.NewReader(`{"name":"Ada","email":"ada@example.com","message":"hi"}`))
		req.Header.Set("Content-Type", "application/json")
		rr := serve(req)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Len(t, sender.Sent(), 1)
	})

	t.Run("cors preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/projects", nil)
		req.Header.Set("Origin", "https://portfolio.example")
		req.Header.Set("Access-Control-Request-Method", "PATCH")
		rr := serve(req)
		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Equal(t, "https://portfolio.example", rr.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestBuildRouter_ContactLimitUsesPeerAddress(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := testConfig()
	cfg.Contact = config.ContactConfig{RatePerMinute: 1, Burst: 1}
	sender := mail.NewConsoleSender(zap.NewNop())
	r := BuildRouter(RouterDeps{ServiceName: "portfolio-api", Config: cfg, Mail: sender})

	codes := make([]int, 0, 5)
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/send-message",
			strings.NewReader(`{"name":"Ada","email":"ada@example.com","message":"hi"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("198.51.100.%d", i))
		req.RemoteAddr = "192.0.2.10:40000"
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		codes = append(codes, rr.Code)
	}

	assert.Equal(t, []int{200, 429, 429, 429, 429}, codes)
	assert.Len(t, sender.Sent(), 1)
}

func TestNewMailSender(t *testing.T) {
	logger := zap.NewNop()

	assert.IsType(t, &mail.ConsoleSender{}, NewMailSender(config.MailConfig{Transport: config.MailTransportConsole}, logger))
	assert.IsType(t, &mail.SendgridSender{}, NewMailSender(config.MailConfig{Transport: config.MailTransportSendgrid, SendgridAPIKey: "k"}, logger))
	assert.IsType(t, mail.Unconfigured{}, NewMailSender(config.MailConfig{Transport: config.MailTransportSendgrid}, logger))
	assert.IsType(t, &mail.SMTPSender{}, NewMailSender(config.MailConfig{Transport: config.MailTransportSMTP, User: "u", Password: "p"}, logger))
	assert.IsType(t, mail.Unconfigured{}, NewMailSender(config.MailConfig{Transport: config.MailTransportSMTP}, logger))
}

func TestNewLogger(t *testing.T) {
	_, err := NewLogger(config.AppConfig{Environment: "production", LogLevel: "warn"})
	assert.NoError(t, err)

	_, err = NewLogger(config.AppConfig{LogLevel: "loud"})
	assert.Error(t, err)
}

func TestOpenRedis_Disabled(t *testing.T) {
	client, err := OpenRedis(t.Context(), config.CacheConfig{})
	assert.NoError(t, err)
	assert.Nil(t, client)
}

func TestSetGinMode(t *testing.T) {
	t.Cleanup(func() { gin.SetMode(gin.TestMode) })

	SetGinMode(config.AppConfig{Environment: "production"})
	assert.Equal(t, gin.ReleaseMode, gin.Mode())

	SetGinMode(config.AppConfig{Environment: "test"})
	assert.Equal(t, gin.TestMode, gin.Mode())
}
