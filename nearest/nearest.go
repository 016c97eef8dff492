package nearest

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/somtsp/geometry"
)

// TieTolerance is the distance gap under which two candidates count as tied.
const TieTolerance = 1e-6

// Closest returns the index of the candidate nearest to target.
// See ClosestWithDistance for the tie policy.
func Closest(candidates []geometry.Point, target geometry.Point, rng *rand.Rand) (int, error) {
	idx, _, err := ClosestWithDistance(candidates, target, rng)
	return idx, err
}

// ClosestWithDistance scans candidates in order and returns the chosen index
// together with its distance to target.
//
// A candidate replaces the current best when it is strictly closer, or when
// its distance differs from the best by less than TieTolerance and a coin
// drawn from rng comes up heads. Each comparison draws its own coin.
//
// rng==nil ⇒ a new DefaultSeed stream is allocated for this call, and every
// nil call replays the same coins. Pass a stream from RandFromSeed in loops.
//
// Errors: ErrEmptyCandidates.
//
// Complexity: O(n).
func ClosestWithDistance(candidates []geometry.Point, target geometry.Point, rng *rand.Rand) (int, float64, error) {
	if len(candidates) == 0 {
		return -1, 0, ErrEmptyCandidates
	}
	rng = orDefault(rng)

	var (
		best    = -1
		bestD   = math.Inf(1)
		d       float64
		i       int
		replace bool
	)
	for i = range candidates {
		d = geometry.Distance(target, candidates[i])
		replace = d < bestD
		if !replace && math.Abs(bestD-d) < TieTolerance {
			replace = rng.Intn(2) == 0
		}
		if replace {
			bestD = d
			best = i
		}
	}
	// Only reachable when every distance is NaN; the NaN flows to the caller.
	if best < 0 {
		return 0, math.NaN(), nil
	}
	return best, bestD, nil
}
