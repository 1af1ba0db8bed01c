package core

import "regexp"

var (
	profileURLPattern = regexp.MustCompile(`^https?://(www\.)?reddit\.com/user/([a-zA-Z0-9_-]+)/?$`)
	usernamePattern   = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
)

// ParseProfileURL extracts the username from a Reddit profile URL of the form
// http(s)://[www.]reddit.com/user/<name>[/]. A bare username is accepted too,
// so callers can pass either form. Returns ErrInvalidProfileURL otherwise.
func ParseProfileURL(raw string) (string, error) {
	if m := profileURLPattern.FindStringSubmatch(raw); m != nil {
		return m[2], nil
	}
	if usernamePattern.MatchString(raw) {
		return raw, nil
	}
	return "", ErrInvalidProfileURL
}

// ProfileURL builds the canonical profile URL for a username.
func ProfileURL(username string) string {
	return "https://www.reddit.com/user/" + username
}
