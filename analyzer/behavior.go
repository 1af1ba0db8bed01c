package analyzer

import (
	"fmt"
	"math"

	"github.com/echolytics/persona-engine/core"
)

// analyzeBehavior inspects activity shape rather than content: posting volume,
// comment-to-post ratio, subreddit spread and post reception.
func analyzeBehavior(rec *core.ActivityRecord) []core.Characteristic {
	characteristics := []core.Characteristic{
		{
			Name:       "Activity Level",
			Value:      "Moderately active user",
			Evidence:   fmt.Sprintf("%d posts and %d comments analyzed", len(rec.Posts), len(rec.Comments)),
			Confidence: 0.9,
		},
	}

	if prefersCommenting(rec) {
		characteristics = append(characteristics, core.Characteristic{
			Name:       "Engagement Style",
			Value:      "More likely to comment than post",
			Evidence:   "Higher comment-to-post ratio suggests preference for discussion over content creation",
			Confidence: 0.8,
		})
	}

	diversity := "Focused interests"
	if len(rec.Subreddits) > 5 {
		diversity = "Diverse interests"
	}
	characteristics = append(characteristics, core.Characteristic{
		Name:       "Interest Diversity",
		Value:      diversity,
		Evidence:   fmt.Sprintf("Active in %d different subreddits", len(rec.Subreddits)),
		Confidence: 0.9,
	})

	// The mean is undefined for zero posts; the rule simply does not fire then.
	if avg, ok := averagePostScore(rec); ok && avg > 50 {
		characteristics = append(characteristics, core.Characteristic{
			Name:       "Content Quality",
			Value:      "Creates high-quality, engaging content",
			Evidence:   fmt.Sprintf("Average post score of %d indicates good community reception", int(math.Round(avg))),
			Confidence: 0.8,
		})
	}

	return characteristics
}

// prefersCommenting is a strict inequality: equal counts do not fire the rule.
func prefersCommenting(rec *core.ActivityRecord) bool {
	return len(rec.Comments) > len(rec.Posts)
}

// averagePostScore returns the arithmetic mean of post scores, and false when
// there are no posts to average.
func averagePostScore(rec *core.ActivityRecord) (float64, bool) {
	if len(rec.Posts) == 0 {
		return 0, false
	}
	sum := 0
	for _, p := range rec.Posts {
		sum += p.Score
	}
	return float64(sum) / float64(len(rec.Posts)), true
}
