package tour

import "github.com/katalvlaran/somtsp/geometry"

// ImproveEps is the minimum gain for a 2-opt move to be applied.
const ImproveEps = 1e-9

// TwoOpt polishes a decoded path with first-improvement 2-opt on Euclidean
// distances. Segment [i..k] of the closed loop is reversed whenever
//
//	Δ = d(a,c) + d(b,d) − d(a,b) − d(c,d) < −ImproveEps,  a=T[i−1] b=T[i] c=T[k] d=T[k+1]
//
// and the scan restarts. maxMoves caps the number of applied moves
// (0 ⇒ until a local optimum). The first city is kept in place and the
// input is not modified.
//
// Errors: ErrNotPermutation when p is not a permutation of the cities.
//
// Complexity: O(n²) per scan, O(n) per applied move.
func TwoOpt(p Path, cities []geometry.Point, maxMoves int) (Path, error) {
	n := len(cities)
	if err := ValidatePermutation(p, n); err != nil {
		return nil, err
	}
	cur := make(Path, n+1)
	copy(cur, p)
	cur[n] = p[0]
	if n < 4 {
		return cur[:n], nil
	}

	at := func(u, v int) float64 { return geometry.Distance(cities[u], cities[v]) }

	accepted := 0
	for {
		improved := false
		var (
			a, b, c, d int
			i, k       int
			delta      float64
		)
	scan:
		for i = 1; i <= n-2; i++ {
			for k = i + 1; k <= n-1; k++ {
				a, b, c, d = cur[i-1], cur[i], cur[k], cur[k+1]
				delta = at(a, c) + at(b, d) - at(a, b) - at(c, d)
				if delta >= -ImproveEps {
					continue
				}
				reverseSegment(cur, i, k)
				accepted++
				improved = true
				break scan
			}
		}
		if !improved || (maxMoves > 0 && accepted >= maxMoves) {
			break
		}
	}
	return cur[:n], nil
}

// reverseSegment reverses t[i..k] in place.
func reverseSegment(t Path, i, k int) {
	for i < k {
		t[i], t[k] = t[k], t[i]
		i++
		k--
	}
}
