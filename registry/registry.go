package registry

import (
	"sync"

	"github.com/echolytics/persona-engine/core"
)

// Extractor maps an activity record to one category's characteristic sequence.
// Extractors must be pure: same record in, same characteristics out.
type Extractor func(*core.ActivityRecord) []core.Characteristic

var (
	extractors    = make(map[core.Category]Extractor)
	extractorLock sync.RWMutex
)

// Register installs the extractor for a category, replacing any previous one.
func Register(cat core.Category, fn Extractor) {
	extractorLock.Lock()
	defer extractorLock.Unlock()
	extractors[cat] = fn
}

// ExtractorFor returns the extractor registered for a category, if any.
func ExtractorFor(cat core.Category) (Extractor, bool) {
	extractorLock.RLock()
	defer extractorLock.RUnlock()
	fn, ok := extractors[cat]
	return fn, ok
}

// Registered returns the categories that currently have an extractor,
// in presentation order.
func Registered() []core.Category {
	extractorLock.RLock()
	defer extractorLock.RUnlock()
	var cats []core.Category
	for _, cat := range core.Categories() {
		if _, ok := extractors[cat]; ok {
			cats = append(cats, cat)
		}
	}
	return cats
}
