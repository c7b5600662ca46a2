package verify

import (
	"time"

	"tripdraft/pkg/search"
)

// maxFutureDrift rejects publish timestamps that claim to be further in
// the future than clock skew can explain; those come from corrupt
// provider metadata.
const maxFutureDrift = 24 * time.Hour

// DeriveReferenceTimestamp picks the instant verifiers should treat as
// "now": the freshest usable publish time among the sources. Returns the
// wall clock and derived=false when no source carries a usable timestamp.
func DeriveReferenceTimestamp(sources []search.Result, now time.Time) (string, bool) {
	var best time.Time
	for _, s := range sources {
		t := s.PublishedAt
		if t.IsZero() || t.After(now.Add(maxFutureDrift)) {
			continue
		}
		if t.After(best) {
			best = t
		}
	}

	if best.IsZero() {
		return now.UTC().Format(time.RFC3339), false
	}
	return best.UTC().Format(time.RFC3339), true
}
