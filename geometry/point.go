package geometry

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Point is a pair of real coordinates. It is used both for cities and for
// neurons; treat it as a value, never share a *Point.
type Point struct {
	X float64
	Y float64
}

// Origin is the zero point.
var Origin = Point{}

// Distance returns the Euclidean distance between a and b.
//
// Complexity: O(1).
func Distance(a, b Point) float64 {
	var (
		s = [2]float64{a.X, a.Y}
		t = [2]float64{b.X, b.Y}
	)
	return floats.Distance(s[:], t[:], 2)
}

// Add returns p+q.
func Add(p, q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns p-q.
func Sub(p, q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Scale returns k·p.
func Scale(p Point, k float64) Point { return Point{X: k * p.X, Y: k * p.Y} }

// Toward moves p by the fraction t of the way to q: p + t·(q−p).
// Both coordinates are shifted independently.
func Toward(p, q Point, t float64) Point {
	return Point{
		X: p.X + t*(q.X-p.X),
		Y: p.Y + t*(q.Y-p.Y),
	}
}

// Centroid returns the arithmetic mean of points, or Origin for an empty slice.
//
// Complexity: O(n) time, O(n) space.
func Centroid(points []Point) Point {
	if len(points) == 0 {
		return Origin
	}
	var (
		xs = make([]float64, len(points))
		ys = make([]float64, len(points))
		i  int
	)
	for i = range points {
		xs[i] = points[i].X
		ys[i] = points[i].Y
	}
	n := float64(len(points))
	return Point{X: floats.Sum(xs) / n, Y: floats.Sum(ys) / n}
}

// Bounds returns the lower-left and upper-right corners of the axis-aligned
// box enclosing points. For an empty slice both corners are Origin.
func Bounds(points []Point) (lo, hi Point) {
	if len(points) == 0 {
		return Origin, Origin
	}
	lo = Point{X: math.Inf(1), Y: math.Inf(1)}
	hi = Point{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, p := range points {
		lo.X = math.Min(lo.X, p.X)
		lo.Y = math.Min(lo.Y, p.Y)
		hi.X = math.Max(hi.X, p.X)
		hi.Y = math.Max(hi.Y, p.Y)
	}
	return lo, hi
}
