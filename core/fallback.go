package core

// FallbackRecord builds the minimal synthetic record used when the provider
// has no data for a username. It keeps downstream extraction total: one
// placeholder post, one placeholder comment, a single generic subreddit.
func FallbackRecord(username string) *ActivityRecord {
	return &ActivityRecord{
		Username: username,
		Posts: []Post{
			{
				Title:     "Sample post from user activity",
				Content:   "This is a sample post showing user engagement patterns and interests.",
				Subreddit: "general",
				Score:     10,
				Created:   "2024-01-01",
				URL:       "https://reddit.com/r/general/sample",
			},
		},
		Comments: []Comment{
			{
				Content:   "Sample comment showing communication style and engagement.",
				Subreddit: "general",
				Score:     5,
				Created:   "2024-01-01",
				Context:   "General discussion",
			},
		},
		Subreddits: []string{"general"},
		AccountAge: "1 year",
		Karma:      100,
	}
}
