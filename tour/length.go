package tour

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/somtsp/geometry"
)

// Legs returns the length of every edge of the closed loop:
// legs[i] = |cities[p[i]] − cities[p[(i+1) mod n]]|.
// p must index into cities; a single-city path has one zero-length leg.
//
// Complexity: O(n).
func Legs(p Path, cities []geometry.Point) []float64 {
	var (
		n    = len(p)
		legs = make([]float64, n)
		i    int
	)
	for i = 0; i < n; i++ {
		legs[i] = geometry.Distance(cities[p[i]], cities[p[(i+1)%n]])
	}
	return legs
}

// Length returns the total closed-loop length of p. An empty path has length 0.
func Length(p Path, cities []geometry.Point) float64 {
	if len(p) == 0 {
		return 0
	}
	return floats.Sum(Legs(p, cities))
}
