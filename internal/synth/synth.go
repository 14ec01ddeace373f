// Package synth produces the deterministic sample datasets behind the
// documentation charts: fake vital-sign time series, a demographics table,
// and a correlation matrix over clinical variables.
package synth

import "math/rand"

// DefaultSeed reproduces the published sample output.
const DefaultSeed = 42

// Synthesizer draws every sample value from a single seeded random stream.
// For a fixed seed and call order the output is byte-identical across runs,
// which keeps the documentation screenshots and the generated files in sync.
type Synthesizer struct {
	rng *rand.Rand
}

// New creates a synthesizer with its own random stream seeded once
func New(seed int64) *Synthesizer {
	return &Synthesizer{rng: rand.New(rand.NewSource(seed))}
}
