package offline

import (
	"context"
	"time"

	"github.com/LinguaLabs/golingo"
)

// PackFetcher acquires the phrase table for a language pack. A real
// implementation downloads model and phrase data; the simulated one stands
// in for it during development and tests.
type PackFetcher interface {
	Fetch(ctx context.Context, code string, quality golingo.QualityTier) ([]golingo.Phrase, error)
}

// SimulatedFetcher produces a built-in phrase table after an optional
// fixed delay. The delay honors ctx, so a download in flight can be
// cancelled.
type SimulatedFetcher struct {
	Delay time.Duration
}

// Fetch implements PackFetcher.
func (f SimulatedFetcher) Fetch(ctx context.Context, code string, quality golingo.QualityTier) ([]golingo.Phrase, error) {
	if f.Delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(f.Delay):
		}
	}

	return BuiltinPhrases(code), nil
}

// Verify SimulatedFetcher implements PackFetcher
var _ PackFetcher = SimulatedFetcher{}
