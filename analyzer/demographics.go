package analyzer

import (
	"strings"

	"github.com/echolytics/persona-engine/core"
)

// analyzeDemographics emits exactly one age-range characteristic (first-matching
// tier wins) plus independent education-level and professional-background
// characteristics when their rules fire.
func analyzeDemographics(rec *core.ActivityRecord) []core.Characteristic {
	var characteristics []core.Characteristic

	characteristics = append(characteristics, ageRange(rec))

	text := strings.ToLower(rec.AllText())
	if mentionsAcademia(text) {
		characteristics = append(characteristics, core.Characteristic{
			Name:       "Education Level",
			Value:      "College/University level",
			Evidence:   "References to academic institutions and technical discussions",
			Confidence: 0.7,
		})
	}

	if hasTechBackground(rec) {
		characteristics = append(characteristics, core.Characteristic{
			Name:       "Professional Background",
			Value:      "Technology/Engineering field",
			Evidence:   "Active participation in technical subreddits and programming discussions",
			Confidence: 0.9,
		})
	}

	return characteristics
}

// ageRange picks one age tier in fixed priority order: education communities,
// then career communities, then the working-age default. The tiers are
// mutually exclusive by construction; exactly one fires for any record.
func ageRange(rec *core.ActivityRecord) core.Characteristic {
	switch {
	case rec.HasAnySubreddit("college", "university"):
		return core.Characteristic{
			Name:       "Age Range",
			Value:      "18-25 years old",
			Evidence:   "Active in college/university related subreddits",
			Confidence: 0.7,
		}
	case rec.HasAnySubreddit("cscareerquestions", "datascience"):
		return core.Characteristic{
			Name:       "Age Range",
			Value:      "25-35 years old",
			Evidence:   "Professional career-focused discussions and job searching activity",
			Confidence: 0.8,
		}
	default:
		return core.Characteristic{
			Name:       "Age Range",
			Value:      "25-40 years old",
			Evidence:   "General activity patterns and interests suggest working-age adult",
			Confidence: 0.6,
		}
	}
}

func mentionsAcademia(loweredText string) bool {
	return strings.Contains(loweredText, "college") || strings.Contains(loweredText, "university")
}

func hasTechBackground(rec *core.ActivityRecord) bool {
	return rec.HasAnySubreddit("programming", "Python", "datascience", "MachineLearning", "buildapc")
}
