package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gavinjunior/portfolio-backend/internal/contact/service"
	"github.com/gavinjunior/portfolio-backend/internal/mail"
)

type stubSender struct {
	err  error
	sent []mail.Message
}

func (s *stubSender) Send(_ context.Context, msg mail.Message) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, msg)
	return nil
}

func setupRouter(sender mail.Sender, recipient string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	relay := service.NewRelay(sender, "portfolio@example.com", recipient, nil)
	New(relay, nil).Register(r.Group("/api"))
	return r
}

func post(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/send-message", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestSend(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		sender := &stubSender{}
		rr := post(setupRouter(sender, "owner@example.com"), `{"name":"Ada","email":"ada@example.com","message":"Hi"}`)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"success":true,"message":"Email sent successfully!"}`, rr.Body.String())
		require.Len(t, sender.sent, 1)
		assert.Equal(t, "Portfolio Contact Form - Message from Ada (ada@example.com)", sender.sent[0].Subject)
	})

	t.Run("empty fields are still relayed", func(t *testing.T) {
		sender := &stubSender{}
		rr := post(setupRouter(sender, "owner@example.com"), `{}`)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Len(t, sender.sent, 1)
	})

	t.Run("transport error", func(t *testing.T) {
		rr := post(setupRouter(&stubSender{err: errors.New("dial tcp: timeout")}, "owner@example.com"), `{"name":"Ada"}`)
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"success":false,"message":"Failed to send email.","error":"dial tcp: timeout"}`, rr.Body.String())
	})

	t.Run("missing configuration", func(t *testing.T) {
		rr := post(setupRouter(&stubSender{}, ""), `{"name":"Ada"}`)
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Contains(t, rr.Body.String(), `"success":false`)
	})

	t.Run("malformed body", func(t *testing.T) {
		rr := post(setupRouter(&stubSender{}, "owner@example.com"), `not json`)
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Contains(t, rr.Body.String(), "Failed to send email.")
	})
}
