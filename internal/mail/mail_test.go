package mail

import (
	"bytes"
	"context"
	"testing"

	"hospital-booking/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithoutHostLogsOnly(t *testing.T) {
	m := New(config.MailConfig{})
	_, ok := m.(LogMailer)
	require.True(t, ok)
	assert.NoError(t, m.Send(context.Background(), Message{To: "a@b.c", Subject: "hi", Body: "x"}))
}

func TestNewWithHost(t *testing.T) {
	m := New(config.MailConfig{Host: "smtp.example.com", Port: 587, From: "no-reply@example.com"})
	_, ok := m.(*SMTPMailer)
	assert.True(t, ok)
}

func TestCompose(t *testing.T) {
	msg := compose("no-reply@example.com", Message{
		To:          "patient@example.com",
		Subject:     "Receipt",
		Body:        "Thanks",
		Attachments: []Attachment{{Name: "receipt.pdf", Data: []byte("%PDF-1.3")}},
	})
	assert.Equal(t, []string{"no-reply@example.com"}, msg.GetHeader("From"))
	assert.Equal(t, []string{"patient@example.com"}, msg.GetHeader("To"))
	assert.Equal(t, []string{"Receipt"}, msg.GetHeader("Subject"))

	var buf bytes.Buffer
	_, err := msg.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "receipt.pdf")
}

func TestSMTPMailerHonoursCancelledContext(t *testing.T) {
	m := New(config.MailConfig{Host: "smtp.example.com", Port: 587})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, m.Send(ctx, Message{To: "a@b.c"}), context.Canceled)
}
