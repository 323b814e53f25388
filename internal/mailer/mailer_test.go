package mailer

import (
	"context"
	"errors"
	"log"
	"net/textproto"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *log.Logger {
	return log.New(os.Stdout, "", log.LstdFlags)
}

func TestSend_MissingCredentials(t *testing.T) {
	s := New(Config{Host: "smtp.gmail.com", Port: 587, Recipient: "admin@example.com"}, testLogger())

	_, err := s.Send(context.Background(), Message{Subject: "x", Text: "y"})
	require.Error(t, err)

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "SMTP_USER", cfgErr.Variable)
	assert.Equal(t, "Email configuration error: SMTP_USER is not set.", err.Error())
}

func TestSend_MissingPassword(t *testing.T) {
	s := New(Config{Host: "smtp.gmail.com", Port: 587, User: "a@b.com", Recipient: "admin@example.com"}, testLogger())

	_, err := s.Send(context.Background(), Message{Subject: "x", Text: "y"})
	require.Error(t, err)

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "SMTP_PASS", cfgErr.Variable)
}

func TestIsConfigured(t *testing.T) {
	assert.False(t, New(Config{}, testLogger()).IsConfigured())
	assert.False(t, New(Config{User: "a@b.com"}, testLogger()).IsConfigured())
	assert.True(t, New(Config{User: "a@b.com", Pass: "secret"}, testLogger()).IsConfigured())
}

func TestIsAuthError(t *testing.T) {
	assert.True(t, IsAuthError(&textproto.Error{Code: 535, Msg: "5.7.8 Username and Password not accepted"}))
	assert.True(t, IsAuthError(&textproto.Error{Code: 530, Msg: "5.7.0 Authentication Required"}))
	assert.True(t, IsAuthError(errors.New("smtp: authentication failed")))
	assert.True(t, IsAuthError(&AuthError{Err: errors.New("rejected")}))

	assert.False(t, IsAuthError(nil))
	assert.False(t, IsAuthError(errors.New("connection refused")))
	assert.False(t, IsAuthError(&textproto.Error{Code: 550, Msg: "mailbox unavailable"}))
}

func TestGenerateMessageID(t *testing.T) {
	id := generateMessageID("enquiries@rockridgeglobal.com", "smtp.gmail.com")
	assert.Regexp(t, `^<[0-9a-f-]+@rockridgeglobal\.com>$`, id)

	id = generateMessageID("", "smtp.gmail.com")
	assert.Regexp(t, `^<[0-9a-f-]+@smtp\.gmail\.com>$`, id)
}

func TestNew_DefaultTimeout(t *testing.T) {
	s := New(Config{}, testLogger())
	assert.Equal(t, DefaultTimeout, s.cfg.Timeout)
}
