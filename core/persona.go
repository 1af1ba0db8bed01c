package core

import "time"

// Category identifies one of the five characteristic groups that make up a persona.
type Category string

const (
	CategoryDemographics  Category = "demographics"
	CategoryInterests     Category = "interests"
	CategoryPersonality   Category = "personality"
	CategoryBehavior      Category = "behavior"
	CategoryCommunication Category = "communication"
)

// Categories lists all characteristic categories in presentation order.
func Categories() []Category {
	return []Category{
		CategoryDemographics,
		CategoryInterests,
		CategoryPersonality,
		CategoryBehavior,
		CategoryCommunication,
	}
}

// Characteristic is a single labeled inference about a user, with optional
// free-text evidence and a fixed rule confidence in [0,1].
type Characteristic struct {
	Name       string  `json:"characteristic"`
	Value      string  `json:"value"`
	Evidence   string  `json:"evidence,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`
}

// Metadata summarizes the activity that was analyzed.
type Metadata struct {
	TotalPosts    int       `json:"totalPosts"`
	TotalComments int       `json:"totalComments"`
	Subreddits    []string  `json:"subreddits"`
	AnalysisDate  time.Time `json:"analysisDate"`
}

// Persona is the aggregated analysis result for one profile. It is assembled
// once per request and never mutated afterwards.
type Persona struct {
	ID            string           `json:"id"`
	Username      string           `json:"username"`
	ProfileURL    string           `json:"profileUrl"`
	Demographics  []Characteristic `json:"demographics"`
	Interests     []Characteristic `json:"interests"`
	Personality   []Characteristic `json:"personality"`
	Behavior      []Characteristic `json:"behavior"`
	Communication []Characteristic `json:"communication"`
	Narrative     string           `json:"narrative,omitempty"`
	Metadata      Metadata         `json:"metadata"`
}

// CharacteristicsFor returns the characteristic slice for a category.
func (p *Persona) CharacteristicsFor(cat Category) []Characteristic {
	switch cat {
	case CategoryDemographics:
		return p.Demographics
	case CategoryInterests:
		return p.Interests
	case CategoryPersonality:
		return p.Personality
	case CategoryBehavior:
		return p.Behavior
	case CategoryCommunication:
		return p.Communication
	}
	return nil
}

// SetCharacteristics stores a characteristic slice under a category.
func (p *Persona) SetCharacteristics(cat Category, cs []Characteristic) {
	switch cat {
	case CategoryDemographics:
		p.Demographics = cs
	case CategoryInterests:
		p.Interests = cs
	case CategoryPersonality:
		p.Personality = cs
	case CategoryBehavior:
		p.Behavior = cs
	case CategoryCommunication:
		p.Communication = cs
	}
}
