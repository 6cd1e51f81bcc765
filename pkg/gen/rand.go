package gen

import "math/rand"

// Rand is the seedable random source owned by a generator. Every stochastic
// decision made during generation draws from it in a fixed order, which is
// what makes runs reproducible for a fixed seed.
//
// It wraps math/rand rather than math/rand/v2 because reproducibility
// requires an explicitly reseedable stream with a stable algorithm.
type Rand struct {
	src *rand.Rand
}

// NewRand creates a random source with the given seed.
func NewRand(seed int64) *Rand {
	return &Rand{src: rand.New(rand.NewSource(seed))}
}

// Seed reseeds the source, discarding all prior draw state.
// Reseeding mid-generation moves the determinism boundary: events produced
// afterwards depend only on the new seed and subsequent calls.
func (r *Rand) Seed(seed int64) {
	r.src.Seed(seed)
}

// Float64 returns one uniform draw from [0, 1).
func (r *Rand) Float64() float64 {
	return r.src.Float64()
}

// Intn returns one uniform draw from [0, n). It panics if n <= 0,
// matching math/rand.
func (r *Rand) Intn(n int) int {
	return r.src.Intn(n)
}

// Bool returns one uniform boolean draw.
func (r *Rand) Bool() bool {
	return r.src.Float64() > 0.5
}
