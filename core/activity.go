package core

import "strings"

// Post is one submission authored by the profile under analysis.
// Never mutated after the provider returns it.
type Post struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Subreddit string `json:"subreddit"`
	Score     int    `json:"score"`
	Created   string `json:"created"`
	URL       string `json:"url"`
}

// Comment is one reply authored by the profile under analysis.
type Comment struct {
	Content   string `json:"content"`
	Subreddit string `json:"subreddit"`
	Score     int    `json:"score"`
	Created   string `json:"created"`
	Context   string `json:"context"`
}

// ActivityRecord is the provider-independent shape of a profile's activity.
// Providers own its construction; the analyzer treats it as read-only.
type ActivityRecord struct {
	Username   string    `json:"username"`
	Posts      []Post    `json:"posts"`
	Comments   []Comment `json:"comments"`
	Subreddits []string  `json:"subreddits"`
	AccountAge string    `json:"accountAge,omitempty"`
	Karma      int       `json:"karma,omitempty"`
}

// Validate reports whether the record carries every field extraction needs.
func (r *ActivityRecord) Validate() error {
	if r == nil {
		return ErrMalformedRecord
	}
	if r.Username == "" || r.Posts == nil || r.Comments == nil || r.Subreddits == nil {
		return ErrMalformedRecord
	}
	return nil
}

// HasSubreddit reports membership of name in the record's subreddit set.
func (r *ActivityRecord) HasSubreddit(name string) bool {
	for _, sub := range r.Subreddits {
		if sub == name {
			return true
		}
	}
	return false
}

// HasAnySubreddit reports whether any of the given names is in the subreddit set.
func (r *ActivityRecord) HasAnySubreddit(names ...string) bool {
	for _, name := range names {
		if r.HasSubreddit(name) {
			return true
		}
	}
	return false
}

// AllText concatenates every post title, post body and comment body,
// space-separated, in record order. Extractor keyword rules run over this.
func (r *ActivityRecord) AllText() string {
	var b strings.Builder
	for _, p := range r.Posts {
		b.WriteString(p.Title)
		b.WriteString(" ")
		b.WriteString(p.Content)
		b.WriteString(" ")
	}
	for _, c := range r.Comments {
		b.WriteString(c.Content)
		b.WriteString(" ")
	}
	return b.String()
}
