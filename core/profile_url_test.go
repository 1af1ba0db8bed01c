package core

import (
	"errors"
	"testing"
)

func TestParseProfileURL(t *testing.T) {
	valid := []struct {
		raw      string
		username string
	}{
		{"https://www.reddit.com/user/kojied", "kojied"},
		{"https://reddit.com/user/kojied", "kojied"},
		{"http://www.reddit.com/user/kojied/", "kojied"},
		{"https://www.reddit.com/user/Hungry-Move-6603", "Hungry-Move-6603"},
		{"https://www.reddit.com/user/some_user_42/", "some_user_42"},
		{"kojied", "kojied"},
	}
	for _, tc := range valid {
		username, err := ParseProfileURL(tc.raw)
		if err != nil {
			t.Errorf("ParseProfileURL(%q) returned error: %v", tc.raw, err)
			continue
		}
		if username != tc.username {
			t.Errorf("ParseProfileURL(%q) = %q, want %q", tc.raw, username, tc.username)
		}
	}

	invalid := []string{
		"",
		"https://www.reddit.com/r/golang",
		"https://www.reddit.com/user/",
		"https://twitter.com/user/kojied",
		"ftp://reddit.com/user/kojied",
		"https://www.reddit.com/user/bad name",
		"not a url at all",
	}
	for _, raw := range invalid {
		if _, err := ParseProfileURL(raw); !errors.Is(err, ErrInvalidProfileURL) {
			t.Errorf("ParseProfileURL(%q) = %v, want ErrInvalidProfileURL", raw, err)
		}
	}
}

func TestProfileURL(t *testing.T) {
	got := ProfileURL("kojied")
	want := "https://www.reddit.com/user/kojied"
	if got != want {
		t.Errorf("ProfileURL = %q, want %q", got, want)
	}

	// Canonical URLs must parse back to the same username.
	username, err := ParseProfileURL(got)
	if err != nil || username != "kojied" {
		t.Errorf("round trip failed: %q, %v", username, err)
	}
}
