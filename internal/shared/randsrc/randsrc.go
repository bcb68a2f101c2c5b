// Package randsrc hands out independent random sources so that concurrent
// requests never share generator state.
package randsrc

import "math/rand/v2"

// Factory returns a new source for every request.
type Factory func() rand.Source

// NewFactory returns a Factory for the given stream. With seed 0 every
// source is freshly seeded; otherwise every source replays the same
// sequence, which makes responses reproducible.
func NewFactory(seed, stream uint64) Factory {
	if seed == 0 {
		return func() rand.Source {
			return rand.NewPCG(rand.Uint64(), rand.Uint64())
		}
	}
	return func() rand.Source {
		return rand.NewPCG(seed, stream)
	}
}

// Streams keep the series and the prediction generators uncorrelated under
// a shared seed.
const (
	SeriesStream     uint64 = 1
	PredictionStream uint64 = 2
)
