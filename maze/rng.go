package maze

import (
	"fmt"
	"math"
	"math/rand"
)

// defaultRNGSeed is used when callers pass seed==0, so the zero Options
// still produce a stable layout.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed is used verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// resolveRNG picks the explicit source if any, else seeds a new one.
func resolveRNG(o Options) *rand.Rand {
	if o.Rand != nil {
		return o.Rand
	}
	return rngFromSeed(o.Seed)
}

// validateProbability enforces p ∈ [0,1]; NaN is rejected.
func validateProbability(name string, p float64) error {
	if math.IsNaN(p) || p < minProbability || p > maxProbability {
		return fmt.Errorf("%w: %s must be in [%.1f,%.1f], got %g", ErrInvalidProbability, name, minProbability, maxProbability, p)
	}
	return nil
}
