// Package mailer sends enquiry emails over SMTP. One message per request,
// no retry and no queue; a slow send loses a race against a fixed timeout
// and is abandoned.
package mailer

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"
)

// DefaultTimeout bounds the SMTP dial and send.
const DefaultTimeout = 30 * time.Second

// Config holds the SMTP transport settings.
type Config struct {
	Host      string
	Port      int
	Secure    bool // SSL on connect (465) instead of STARTTLS (587)
	User      string
	Pass      string
	FromName  string
	ReplyTo   string
	Recipient string
	Timeout   time.Duration
}

// Message is one outbound email.
type Message struct {
	Subject string
	Text    string
	HTML    string
}

// Sender delivers enquiry emails.
type Sender interface {
	Send(ctx context.Context, msg Message) (messageID string, err error)
}

// SMTPSender is the gomail-backed Sender.
type SMTPSender struct {
	cfg    Config
	logger *log.Logger
}

// New creates an SMTP sender.
func New(cfg Config, logger *log.Logger) *SMTPSender {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &SMTPSender{cfg: cfg, logger: logger}
}

// IsConfigured reports whether the transport credentials are present.
func (s *SMTPSender) IsConfigured() bool {
	return s.cfg.User != "" && s.cfg.Pass != ""
}

// Send delivers the message to the configured recipient. The send races the
// timeout; the loser is abandoned without cancelling the underlying dial.
func (s *SMTPSender) Send(ctx context.Context, msg Message) (string, error) {
	if s.cfg.User == "" {
		return "", &ConfigError{Variable: "SMTP_USER"}
	}
	if s.cfg.Pass == "" {
		return "", &ConfigError{Variable: "SMTP_PASS"}
	}
	if s.cfg.Recipient == "" {
		return "", &ConfigError{Variable: "EMAIL_ADMIN"}
	}

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.User, s.cfg.FromName))
	m.SetHeader("To", s.cfg.Recipient)
	replyTo := s.cfg.ReplyTo
	if replyTo == "" {
		replyTo = s.cfg.User
	}
	m.SetHeader("Reply-To", replyTo)
	m.SetHeader("Subject", msg.Subject)

	messageID := generateMessageID(s.cfg.User, s.cfg.Host)
	m.SetHeader("Message-ID", messageID)

	m.SetBody("text/plain", msg.Text)
	if msg.HTML != "" {
		m.AddAlternative("text/html", msg.HTML)
	}

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.User, s.cfg.Pass)
	d.SSL = s.cfg.Secure

	s.logger.Printf("Attempting to send email via %s:%d", s.cfg.Host, s.cfg.Port)

	errCh := make(chan error, 1)
	go func() {
		errCh <- d.DialAndSend(m)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			if IsAuthError(err) {
				return "", &AuthError{Err: err}
			}
			return "", fmt.Errorf("failed to send email: %w", err)
		}
		s.logger.Printf("Email sent successfully: %s", messageID)
		return messageID, nil
	case <-time.After(s.cfg.Timeout):
		return "", ErrSendTimeout
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// generateMessageID builds an RFC 5322 style Message-ID using the sender's
// mail domain when one is available.
func generateMessageID(user, host string) string {
	domain := host
	if at := strings.LastIndex(user, "@"); at >= 0 && at < len(user)-1 {
		domain = user[at+1:]
	}
	return fmt.Sprintf("<%s@%s>", uuid.NewString(), domain)
}
