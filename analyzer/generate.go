package analyzer

import (
	"context"
	"errors"
	"log"

	"github.com/echolytics/persona-engine/core"
)

// ActivityProvider supplies the normalized activity record for a username.
// Implementations must honor context cancellation during the fetch.
type ActivityProvider interface {
	Fetch(ctx context.Context, username string) (*core.ActivityRecord, error)
}

// Generate is the end-to-end analysis entry point: parse the profile URL,
// fetch the activity record, and assemble the persona. When the provider has
// no record for the user, analysis proceeds on a minimal fallback record
// instead of failing.
func Generate(ctx context.Context, p ActivityProvider, rawURL string) (*core.Persona, error) {
	username, err := core.ParseProfileURL(rawURL)
	if err != nil {
		return nil, err
	}

	rec, err := p.Fetch(ctx, username)
	if errors.Is(err, core.ErrNotFound) {
		log.Printf("No activity record for %q, analyzing fallback record", username)
		rec = core.FallbackRecord(username)
	} else if err != nil {
		return nil, err
	}

	return Assemble(rec)
}
