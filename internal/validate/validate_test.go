package validate_test

import (
	"errors"
	"strings"
	"testing"

	"estatehub/internal/validate"
)

func TestCommentContentBounds(t *testing.T) {
	cases := []struct {
		name    string
		content string
		wantErr bool
	}{
		{"empty", "", true},
		{"whitespace only", "   \t  ", true},
		{"one char", "a", false},
		{"500 chars", strings.Repeat("x", 500), false},
		{"1000 chars", strings.Repeat("x", 1000), false},
		{"1001 chars", strings.Repeat("x", 1001), true},
		{"padding does not count", "  " + strings.Repeat("x", 1000) + "  ", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validate.CommentContent(tc.content)
			if (err != nil) != tc.wantErr {
				t.Fatalf("CommentContent(%q): err=%v, wantErr=%v", tc.content, err, tc.wantErr)
			}
			if err != nil && !errors.Is(err, validate.ErrInvalid) {
				t.Fatalf("error %v does not wrap ErrInvalid", err)
			}
		})
	}
}

func TestUsername(t *testing.T) {
	cases := []struct {
		username string
		wantErr  bool
	}{
		{"marko.p", false},
		{"user_123", false},
		{"A.B_c.9", false},
		{"", true},
		{"has space", true},
		{"dash-user", true},
		{"émile", true},
		{"semi;colon", true},
	}
	for _, tc := range cases {
		if err := validate.Username(tc.username); (err != nil) != tc.wantErr {
			t.Errorf("Username(%q): err=%v, wantErr=%v", tc.username, err, tc.wantErr)
		}
	}
}

func TestEmail(t *testing.T) {
	cases := []struct {
		email   string
		wantErr bool
	}{
		{"marko@example.com", false},
		{"a@b.co", false},
		{"no-at-sign", true},
		{"two@@example.com", true},
		{"a@b@c.com", true},
		{"nodot@domain", true},
		{"@example.com", true},
		{"dot@.com", true},
		{"trailing@domain.", true},
	}
	for _, tc := range cases {
		if err := validate.Email(tc.email); (err != nil) != tc.wantErr {
			t.Errorf("Email(%q): err=%v, wantErr=%v", tc.email, err, tc.wantErr)
		}
	}
}
