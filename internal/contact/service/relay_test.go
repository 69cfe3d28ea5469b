package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gavinjunior/portfolio-backend/internal/contact/domain"
	"github.com/gavinjunior/portfolio-backend/internal/mail"
)

type failingSender struct{ err error }

func (f failingSender) Send(context.Context, mail.Message) error { return f.err }

func TestCompose(t *testing.T) {
	out := Compose(domain.Message{Name: "Ada", Email: "ada@example.com", Message: "<b>hi</b> & bye"},
		"portfolio@example.com", "owner@example.com")

	assert.Equal(t, "Portfolio Contact Form - Message from Ada (ada@example.com)", out.Subject)
	assert.Equal(t, "portfolio@example.com", out.From.Address)
	require.Len(t, out.To, 1)
	assert.Equal(t, "owner@example.com", out.To[0].Address)
	require.NotNil(t, out.ReplyTo)
	assert.Equal(t, "ada@example.com", out.ReplyTo.Address)
	assert.Equal(t, "Ada", out.ReplyTo.Name)
	assert.Contains(t, out.HTML, "&lt;b&gt;hi&lt;/b&gt; &amp; bye")
	assert.Contains(t, out.Text, "<b>hi</b> & bye")
}

func TestCompose_UnparseableEmail(t *testing.T) {
	out := Compose(domain.Message{Name: "", Email: "not an address"}, "f@example.com", "t@example.com")
	assert.Nil(t, out.ReplyTo)
	assert.Equal(t, "Portfolio Contact Form - Message from  (not an address)", out.Subject)
}

func TestRelay_Send(t *testing.T) {
	t.Run("delivers", func(t *testing.T) {
		sender := mail.NewConsoleSender(nil)
		r := NewRelay(sender, "portfolio@example.com", "owner@example.com", nil)

		require.NoError(t, r.Send(context.Background(), domain.Message{Name: "Ada", Email: "ada@example.com", Message: "hi"}))
		require.Len(t, sender.Sent(), 1)
	})

	t.Run("transport failure", func(t *testing.T) {
		r := NewRelay(failingSender{err: errors.New("connection refused")}, "f@example.com", "t@example.com", nil)
		err := r.Send(context.Background(), domain.Message{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("missing recipient", func(t *testing.T) {
		r := NewRelay(mail.NewConsoleSender(nil), "f@example.com", "", nil)
		assert.ErrorIs(t, r.Send(context.Background(), domain.Message{}), mail.ErrNotConfigured)
	})
}
