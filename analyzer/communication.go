package analyzer

import (
	"strings"

	"github.com/echolytics/persona-engine/core"
)

const storytellingPostLength = 200

// analyzeCommunication looks at how the user writes: tone, jargon use,
// post length and conversational responses.
func analyzeCommunication(rec *core.ActivityRecord) []core.Characteristic {
	text := rec.AllText()

	var characteristics []core.Characteristic

	if hasEnthusiasticTone(text) {
		characteristics = append(characteristics, core.Characteristic{
			Name:       "Tone",
			Value:      "Enthusiastic and positive",
			Evidence:   "Uses exclamation points and positive language frequently",
			Confidence: 0.8,
		})
	}

	if usesTechnicalTerms(text) {
		characteristics = append(characteristics, core.Characteristic{
			Name:       "Technical Communication",
			Value:      "Comfortable with technical terminology",
			Evidence:   "Uses technical terms and discusses complex topics clearly",
			Confidence: 0.9,
		})
	}

	if writesLongPosts(rec) {
		characteristics = append(characteristics, core.Characteristic{
			Name:       "Communication Style",
			Value:      "Detailed storyteller",
			Evidence:   "Writes comprehensive posts with context and background information",
			Confidence: 0.8,
		})
	}

	if buildsOnConversations(rec) {
		characteristics = append(characteristics, core.Characteristic{
			Name:       "Social Interaction",
			Value:      "Relates well to others and builds on conversations",
			Evidence:   "Shows empathy and connection in responses to other users",
			Confidence: 0.7,
		})
	}

	return characteristics
}

// hasEnthusiasticTone requires an exclamation mark together with one of the
// positive keywords. The grouping is exclamation AND (incredible OR amazing).
func hasEnthusiasticTone(text string) bool {
	hasExclamation := strings.Contains(text, "!")
	hasPositiveWord := strings.Contains(text, "incredible") || strings.Contains(text, "amazing")
	return hasExclamation && hasPositiveWord
}

func usesTechnicalTerms(text string) bool {
	return strings.Contains(text, "GPU") ||
		strings.Contains(text, "library") ||
		strings.Contains(text, "algorithm")
}

// writesLongPosts fires when any single post body exceeds the storytelling
// length threshold. Titles do not count.
func writesLongPosts(rec *core.ActivityRecord) bool {
	for _, p := range rec.Posts {
		if len(p.Content) > storytellingPostLength {
			return true
		}
	}
	return false
}

func buildsOnConversations(rec *core.ActivityRecord) bool {
	for _, c := range rec.Comments {
		if strings.Contains(c.Content, "same") || strings.Contains(c.Content, "agree") {
			return true
		}
	}
	return false
}
