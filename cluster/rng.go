package cluster

import "math/rand"

// defaultRNGSeed is used when callers pass Seed == 0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// NewRand exposes the package seed policy so callers can drive a SeedFunc
// directly with the same stream Lloyd would use.
func NewRand(seed int64) *rand.Rand {
	return rngFromSeed(seed)
}

// permRange returns a Fisher–Yates permutation of 0..n-1 drawn from rng.
// A nil rng uses the default stream.
func permRange(n int, rng *rand.Rand) []int {
	if rng == nil {
		rng = rngFromSeed(0)
	}
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}

	return p
}
