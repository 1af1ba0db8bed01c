// Package analyzer turns a profile's activity record into a structured persona
// by running a fixed set of rule-based characteristic extractors over it.
package analyzer

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/echolytics/persona-engine/core"
	"github.com/echolytics/persona-engine/registry"
)

func init() {
	registry.Register(core.CategoryDemographics, analyzeDemographics)
	registry.Register(core.CategoryInterests, analyzeInterests)
	registry.Register(core.CategoryPersonality, analyzePersonality)
	registry.Register(core.CategoryBehavior, analyzeBehavior)
	registry.Register(core.CategoryCommunication, analyzeCommunication)
}

// Assemble runs every registered extractor over the record and aggregates the
// results into one Persona. Extractors are pure functions with no dependency
// on each other, so they run concurrently; ordering of the output categories
// is fixed regardless.
func Assemble(rec *core.ActivityRecord) (*core.Persona, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}

	persona := &core.Persona{
		ID:         uuid.New().String(),
		Username:   rec.Username,
		ProfileURL: core.ProfileURL(rec.Username),
		Metadata: core.Metadata{
			TotalPosts:    len(rec.Posts),
			TotalComments: len(rec.Comments),
			Subreddits:    rec.Subreddits,
			AnalysisDate:  time.Now(),
		},
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	for _, cat := range registry.Registered() {
		fn, ok := registry.ExtractorFor(cat)
		if !ok {
			continue
		}
		wg.Add(1)
		go func(cat core.Category, fn registry.Extractor) {
			defer wg.Done()
			cs := fn(rec)
			mu.Lock()
			persona.SetCharacteristics(cat, cs)
			mu.Unlock()
		}(cat, fn)
	}
	wg.Wait()

	return persona, nil
}
