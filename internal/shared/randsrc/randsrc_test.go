package randsrc

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func draw(src rand.Source, n int) []uint64 {
	out := make([]uint64, n)
	for i := range n {
		out[i] = src.Uint64()
	}
	return out
}

func TestNewFactory_Seeded(t *testing.T) {
	t.Parallel()

	f := NewFactory(42, SeriesStream)
	assert.Equal(t, draw(f(), 8), draw(f(), 8), "seeded sources must replay")

	other := NewFactory(42, PredictionStream)
	assert.NotEqual(t, draw(f(), 8), draw(other(), 8), "streams must differ")
}

func TestNewFactory_Unseeded(t *testing.T) {
	t.Parallel()

	f := NewFactory(0, SeriesStream)
	assert.NotEqual(t, draw(f(), 8), draw(f(), 8))
}
