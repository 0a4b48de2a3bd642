// Package validate holds the field-level validation contracts shared by
// all request handlers. Every check runs before any store access and the
// error text is surfaced verbatim as the envelope message.
package validate

import (
	"errors"
	"net/mail"
	"strings"
	"time"
)

const deadlineLayout = "2006-01-02"

var (
	ErrUsernameLength = errors.New("Username must be between 3 and 50 characters")
	ErrEmailFormat    = errors.New("Please enter a valid email address")
	ErrPasswordLength = errors.New("Password must be at least 6 characters long")
	ErrPasswordMatch  = errors.New("Passwords do not match")
	ErrDeadlineFormat = errors.New("Invalid deadline format. Use YYYY-MM-DD")
	ErrStatus         = errors.New("Invalid status")
)

func Username(username string) error {
	if len(username) < 3 || len(username) > 50 {
		return ErrUsernameLength
	}
	return nil
}

func Email(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrEmailFormat
	}
	return nil
}

func Password(password string) error {
	if len(password) < 6 {
		return ErrPasswordLength
	}
	return nil
}

func PasswordConfirmation(password, confirm string) error {
	if password != confirm {
		return ErrPasswordMatch
	}
	return nil
}

// Deadline parses an optional ISO calendar date. The parsed value must
// format back to the identical string, so inputs like "2024-02-30" are
// rejected instead of silently normalizing. An empty input is no deadline.
func Deadline(deadline string) (*time.Time, error) {
	if deadline == "" {
		return nil, nil
	}
	t, err := time.Parse(deadlineLayout, deadline)
	if err != nil || t.Format(deadlineLayout) != deadline {
		return nil, ErrDeadlineFormat
	}
	return &t, nil
}

// Trim collapses surrounding whitespace the way form inputs arrive.
func Trim(s string) string { return strings.TrimSpace(s) }
