// Package provider implements activity-record sources for the analyzer.
// The only shipping implementation is fixture-backed; a live Reddit crawler
// would slot in behind the same Fetch contract.
package provider

import (
	"context"
	"time"

	"github.com/echolytics/persona-engine/core"
)

// FixtureProvider serves a fixed in-memory dataset keyed by username, with a
// configurable artificial delay standing in for network latency.
type FixtureProvider struct {
	records map[string]*core.ActivityRecord
	delay   time.Duration
}

// NewFixtureProvider returns a provider seeded with the demo dataset.
func NewFixtureProvider(delay time.Duration) *FixtureProvider {
	return &FixtureProvider{
		records: fixtureRecords(),
		delay:   delay,
	}
}

// Fetch looks up the username in the fixture set. The simulated latency is
// context-cancellable; unknown usernames return core.ErrNotFound.
func (p *FixtureProvider) Fetch(ctx context.Context, username string) (*core.ActivityRecord, error) {
	if p.delay > 0 {
		timer := time.NewTimer(p.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	rec, ok := p.records[username]
	if !ok {
		return nil, core.ErrNotFound
	}
	return rec, nil
}

// Add seeds an extra record, mainly for tests.
func (p *FixtureProvider) Add(rec *core.ActivityRecord) {
	p.records[rec.Username] = rec
}
