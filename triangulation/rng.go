package triangulation

import (
	"math/rand"

	"github.com/katalvlaran/simplicia/kernel"
)

// defaultRNGSeed is used when callers pass seed==0, keeping default runs
// reproducible.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed is used verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// shufflePoints performs an in-place Fisher–Yates shuffle of pts using rng.
//
// Complexity: O(n) time, O(1) extra space.
func shufflePoints(pts []kernel.Point, rng *rand.Rand) {
	for i := len(pts) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		pts[i], pts[j] = pts[j], pts[i]
	}
}
