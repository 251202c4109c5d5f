// Package scrapers defines the contract every flight source implements,
// one per travel site plus a synthetic generator.
package scrapers

import (
	"context"
	"time"

	"farescan/lib/flight"

	"github.com/mazen160/go-random"
)

// Source produces normalized flight records for a query.
//
// A source recovers from its own scraping failures: it returns whatever
// records it managed to collect along with the error it ran into. Callers
// treat an errored source exactly like an empty one, so a failure never
// aborts a fallback chain. Results are capped at the source's configured
// maximum.
type Source interface {
	Name() string
	Search(ctx context.Context, q flight.Query) ([]flight.Record, error)
}

// Settings every site scraper receives from search_settings.
type Settings struct {
	MaxResults    int
	Timeout       time.Duration
	RetryAttempts int
}

// Backoff returns how long to wait before retry `attempt` (zero-based),
// a linear ramp with jitter so repeated scrapes don't hit a site in
// lockstep.
func Backoff(attempt int) time.Duration {
	jitter, err := random.IntRange(0, 750)
	if err != nil {
		jitter = 375
	}
	return time.Duration(attempt+1)*time.Second + time.Duration(jitter)*time.Millisecond
}
