package validate

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalid is wrapped by every validation failure so handlers can map the
// whole family to one status code.
var ErrInvalid = errors.New("invalid input")

const (
	CommentMinLen = 1
	CommentMaxLen = 1000
)

var usernameRe = regexp.MustCompile(`^[A-Za-z0-9._]+$`)

func Username(username string) error {
	if username == "" || !usernameRe.MatchString(username) {
		return fmt.Errorf("%w: username may contain only letters, digits, '.' and '_'", ErrInvalid)
	}
	return nil
}

// Email requires exactly one '@' and at least one '.' in the domain part.
func Email(email string) error {
	at := strings.Index(email, "@")
	if at <= 0 || at != strings.LastIndex(email, "@") {
		return fmt.Errorf("%w: email must contain a single '@'", ErrInvalid)
	}
	domain := email[at+1:]
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return fmt.Errorf("%w: email domain is malformed", ErrInvalid)
	}
	return nil
}

// CommentContent checks the trimmed length only; the stored content keeps
// its surrounding whitespace.
func CommentContent(content string) error {
	n := len([]rune(strings.TrimSpace(content)))
	if n < CommentMinLen || n > CommentMaxLen {
		return fmt.Errorf("%w: comment content must be between %d and %d characters", ErrInvalid, CommentMinLen, CommentMaxLen)
	}
	return nil
}

func Required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalid, field)
	}
	return nil
}

func Price(price float64) error {
	if price <= 0 {
		return fmt.Errorf("%w: price must be positive", ErrInvalid)
	}
	return nil
}

func Password(password string) error {
	if len(password) < 6 {
		return fmt.Errorf("%w: password must be at least 6 characters", ErrInvalid)
	}
	return nil
}
