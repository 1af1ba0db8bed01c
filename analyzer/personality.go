package analyzer

import (
	"strings"

	"github.com/echolytics/persona-engine/core"
)

// personalityRule ties a keyword set to the trait it evidences. Keywords are
// matched case-insensitively against the concatenated post and comment text.
type personalityRule struct {
	keywords []string
	result   core.Characteristic
}

var personalityRules = []personalityRule{
	{
		keywords: []string{"help", "tip", "advice"},
		result: core.Characteristic{
			Name:       "Helpfulness",
			Value:      "Highly helpful and supportive",
			Evidence:   "Frequently offers advice and tips to other users",
			Confidence: 0.8,
		},
	},
	{
		keywords: []string{"training", "practice", "months"},
		result: core.Characteristic{
			Name:       "Persistence",
			Value:      "Goal-oriented and persistent",
			Evidence:   "Long-term commitment to training and skill development",
			Confidence: 0.8,
		},
	},
	{
		keywords: []string{"wondering", "question", "best"},
		result: core.Characteristic{
			Name:       "Curiosity",
			Value:      "Inquisitive and eager to learn",
			Evidence:   "Frequently asks questions and seeks recommendations",
			Confidence: 0.7,
		},
	},
	{
		keywords: []string{"recipe", "setup", "process"},
		result: core.Characteristic{
			Name:       "Attention to Detail",
			Value:      "Methodical and detail-oriented",
			Evidence:   "Detailed descriptions of processes and methodical approach to hobbies",
			Confidence: 0.8,
		},
	},
}

// analyzePersonality runs one keyword rule per trait; zero or more fire.
func analyzePersonality(rec *core.ActivityRecord) []core.Characteristic {
	text := strings.ToLower(rec.AllText())

	var characteristics []core.Characteristic
	for _, rule := range personalityRules {
		if containsAny(text, rule.keywords) {
			characteristics = append(characteristics, rule.result)
		}
	}
	return characteristics
}

// containsAny reports whether text contains at least one of the keywords.
func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
