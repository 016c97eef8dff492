package ring

import (
	"math/rand"

	"github.com/katalvlaran/somtsp/geometry"
	"github.com/katalvlaran/somtsp/nearest"
)

// Ring is a closed loop of neurons.
type Ring struct {
	neurons []geometry.Point
}

// New returns a ring of n neurons, all at the origin.
//
// Errors: ErrInvalidSize when n <= 0.
func New(n int) (*Ring, error) {
	if n <= 0 {
		return nil, ErrInvalidSize
	}
	return &Ring{neurons: make([]geometry.Point, n)}, nil
}

// NewFrom returns a ring whose neurons start at a copy of points.
//
// Errors: ErrInvalidSize when points is empty.
func NewFrom(points []geometry.Point) (*Ring, error) {
	if len(points) == 0 {
		return nil, ErrInvalidSize
	}
	return &Ring{neurons: append([]geometry.Point(nil), points...)}, nil
}

// Len returns the number of neurons N.
func (r *Ring) Len() int { return len(r.neurons) }

// At returns the neuron at index i. It panics when i is out of range, like a
// slice index; use Get for a checked read.
func (r *Ring) At(i int) geometry.Point { return r.neurons[i] }

// Set overwrites the neuron at index i. It panics when i is out of range.
func (r *Ring) Set(i int, p geometry.Point) { r.neurons[i] = p }

// Get is the checked variant of At.
func (r *Ring) Get(i int) (geometry.Point, error) {
	if i < 0 || i >= len(r.neurons) {
		return geometry.Point{}, ErrOutOfRange
	}
	return r.neurons[i], nil
}

// Right returns the index of the right neighbor of i: (i+1) mod N.
func (r *Ring) Right(i int) int { return (i + 1) % len(r.neurons) }

// Left returns the index of the left neighbor of i: (i−1+N) mod N.
func (r *Ring) Left(i int) int {
	n := len(r.neurons)
	return (i - 1 + n) % n
}

// Offset returns the index k steps away from i (k may be negative or exceed
// N); the result is always in [0, N).
func (r *Ring) Offset(i, k int) int {
	n := len(r.neurons)
	j := (i + k) % n
	if j < 0 {
		j += n
	}
	return j
}

// Snapshot returns an independent copy of the neuron positions in ring order.
func (r *Ring) Snapshot() []geometry.Point {
	return append([]geometry.Point(nil), r.neurons...)
}

// Perimeter returns the length of the closed polyline through all neurons.
//
// Complexity: O(N).
func (r *Ring) Perimeter() float64 {
	var (
		sum float64
		i   int
	)
	for i = range r.neurons {
		sum += geometry.Distance(r.neurons[i], r.neurons[r.Right(i)])
	}
	return sum
}

// Nearest returns the index of the neuron closest to target, breaking
// near-ties with rng (see nearest.ClosestWithDistance).
func (r *Ring) Nearest(target geometry.Point, rng *rand.Rand) (int, error) {
	return nearest.Closest(r.neurons, target, rng)
}
