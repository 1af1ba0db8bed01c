package analyzer

import "github.com/echolytics/persona-engine/core"

// interestRule ties a subreddit membership test to the characteristic it emits.
type interestRule struct {
	subreddits []string
	result     core.Characteristic
}

// Rules are independent: zero or more fire, one per interest domain.
var interestRules = []interestRule{
	{
		subreddits: []string{"gaming", "buildapc"},
		result: core.Characteristic{
			Name:       "Gaming",
			Value:      "PC Gaming enthusiast",
			Evidence:   "Posts about gaming setups and hardware discussions",
			Confidence: 0.8,
		},
	},
	{
		subreddits: []string{"running", "fitness"},
		result: core.Characteristic{
			Name:       "Fitness & Health",
			Value:      "Running and endurance sports",
			Evidence:   "Marathon completion posts and fitness-related discussions",
			Confidence: 0.9,
		},
	},
	{
		subreddits: []string{"Pizza", "cooking"},
		result: core.Characteristic{
			Name:       "Culinary Interests",
			Value:      "Home cooking and baking enthusiast",
			Evidence:   "Detailed posts about pizza making and recipe experimentation",
			Confidence: 0.8,
		},
	},
	{
		subreddits: []string{"cats", "dogs"},
		result: core.Characteristic{
			Name:       "Pet Ownership",
			Value:      "Cat owner and animal lover",
			Evidence:   "Posts about pet behavior and care",
			Confidence: 0.9,
		},
	},
	{
		subreddits: []string{"Python", "datascience"},
		result: core.Characteristic{
			Name:       "Technology",
			Value:      "Data science and programming",
			Evidence:   "Technical discussions about Python libraries and data analysis",
			Confidence: 0.9,
		},
	},
}

// analyzeInterests runs one membership rule per interest domain.
func analyzeInterests(rec *core.ActivityRecord) []core.Characteristic {
	var characteristics []core.Characteristic
	for _, rule := range interestRules {
		if rec.HasAnySubreddit(rule.subreddits...) {
			characteristics = append(characteristics, rule.result)
		}
	}
	return characteristics
}
