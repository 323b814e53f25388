package mailer

import (
	"errors"
	"fmt"
	"net/textproto"
	"strings"
)

// ErrSendTimeout is returned when the SMTP send loses the timeout race.
var ErrSendTimeout = errors.New("Email sending timeout")

// ConfigError indicates a required transport setting is missing.
type ConfigError struct {
	Variable string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("Email configuration error: %s is not set.", e.Variable)
}

// AuthError indicates the SMTP server rejected the credentials.
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("SMTP authentication failed: %v", e.Err)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// IsAuthError classifies an SMTP failure as an authentication rejection:
// a 530-535 reply code or auth-flavored response text.
func IsAuthError(err error) bool {
	if err == nil {
		return false
	}
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return true
	}
	var protoErr *textproto.Error
	if errors.As(err, &protoErr) {
		if protoErr.Code >= 530 && protoErr.Code <= 535 {
			return true
		}
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "auth") ||
		strings.Contains(msg, "username and password not accepted")
}
