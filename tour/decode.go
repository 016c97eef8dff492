package tour

import (
	"math"
	"math/rand"
	"slices"
	"sort"

	"github.com/katalvlaran/somtsp/geometry"
	"github.com/katalvlaran/somtsp/nearest"
)

// Threshold schedule of the relaxation search.
const (
	InitialThreshold = 2.5e-4
	ThresholdStep    = 1e-5
)

// claim is a neuron's nearest city and its distance to it.
type claim struct {
	city int
	dist float64
}

// Decode converts a trained ring (neuron positions in ring order) into a Path.
//
// Each neuron's nearest city is resolved once, with near-ties broken by rng
// (nil ⇒ nearest.DefaultSeed stream). A pass at threshold
// d_k = InitialThreshold + k·ThresholdStep is a pure function of those claims
// and only changes when d_k passes some claim distance, so the search jumps
// straight from one such crossing to the next instead of replaying identical
// passes. The sequence of distinct passes is the same as stepping by
// ThresholdStep.
//
// Once the next crossing is too far away to be expressed as a step count,
// the last pass is taken with every finite claim qualifying.
//
// A ring trained too briefly (well under the default epoch count on larger
// instances) often still has several neurons sharing a city out of order and
// then ends in ErrUnresolved; train longer rather than retrying.
//
// Errors:
//   - ErrNoCities      - cities is empty.
//   - ErrRingTooSmall  - len(neurons) < len(cities).
//   - ErrUnresolved    - all neurons qualify and the pass is still not a tour.
//
// Complexity: O(N·n) for the claims plus O(N) per distinct pass, N = len(neurons).
func Decode(cities, neurons []geometry.Point, rng *rand.Rand) (Path, error) {
	var n = len(cities)
	if n == 0 {
		return nil, ErrNoCities
	}
	if len(neurons) < n {
		return nil, ErrRingTooSmall
	}
	if rng == nil {
		rng = nearest.RandFromSeed(0)
	}

	claims, levels, err := resolveClaims(cities, neurons, rng)
	if err != nil {
		return nil, err
	}

	var (
		path = make(Path, 0, n)
		k    int
		next int
		ok   bool
		d    = threshold(0)
		j    int
	)
	for {
		path = pass(claims, d, path[:0], n)
		if len(path) == n && ValidatePermutation(path, n) == nil {
			return slices.Clone(path), nil
		}

		// First claim distance not yet under d; none left ⇒ fixed point.
		j = sort.SearchFloat64s(levels, d)
		if j == len(levels) {
			return nil, ErrUnresolved
		}
		if next, ok = stepAbove(levels[j]); !ok {
			d = math.Inf(1)
			continue
		}
		k = max(k+1, next)
		d = threshold(k)
	}
}

// resolveClaims computes every neuron's nearest city and the sorted finite
// claim distances.
func resolveClaims(cities, neurons []geometry.Point, rng *rand.Rand) ([]claim, []float64, error) {
	var (
		claims = make([]claim, len(neurons))
		levels = make([]float64, 0, len(neurons))
		i      int
		c      int
		d      float64
		err    error
	)
	for i = range neurons {
		if c, d, err = nearest.ClosestWithDistance(cities, neurons[i], rng); err != nil {
			return nil, nil, err
		}
		claims[i] = claim{city: c, dist: d}
		if !math.IsNaN(d) && !math.IsInf(d, 0) {
			levels = append(levels, d)
		}
	}
	slices.Sort(levels)
	return claims, levels, nil
}

// Coverage returns how many distinct cities are the nearest city of at least
// one neuron. A ring with Coverage < len(cities) can never decode.
//
// Errors: ErrNoCities.
func Coverage(cities, neurons []geometry.Point, rng *rand.Rand) (int, error) {
	if len(cities) == 0 {
		return 0, ErrNoCities
	}
	if rng == nil {
		rng = nearest.RandFromSeed(0)
	}
	claims, _, err := resolveClaims(cities, neurons, rng)
	if err != nil {
		return 0, err
	}
	seen := make([]bool, len(cities))
	count := 0
	for _, c := range claims {
		if !seen[c.city] {
			seen[c.city] = true
			count++
		}
	}
	return count, nil
}

// pass performs one ring walk at threshold d, appending into buf.
// It stops as soon as n entries are collected.
func pass(claims []claim, d float64, buf Path, n int) Path {
	for _, c := range claims {
		if len(buf) == n {
			break
		}
		if c.dist < d && (len(buf) == 0 || buf[len(buf)-1] != c.city) {
			buf = append(buf, c.city)
		}
	}
	return buf
}

// threshold returns d_k.
func threshold(k int) float64 {
	return InitialThreshold + float64(k)*ThresholdStep
}

// maxStep bounds the step count; float64(k) stays exact below it.
const maxStep = 1 << 52

// stepAbove returns the smallest k with d_k > dist, or false when that k
// would reach maxStep.
func stepAbove(dist float64) (int, bool) {
	q := math.Floor((dist-InitialThreshold)/ThresholdStep) + 1
	if !(q < maxStep) {
		return 0, false
	}
	k := int(q)
	if k < 0 {
		k = 0
	}
	for k > 0 && threshold(k-1) > dist {
		k--
	}
	for threshold(k) <= dist {
		k++
	}
	return k, true
}
