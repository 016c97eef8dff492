package som

import (
	"math"

	"github.com/katalvlaran/somtsp/geometry"
	"github.com/katalvlaran/somtsp/ring"
)

// layout allocates the ring for cities according to init.
func layout(init Init, cities []geometry.Point) (*ring.Ring, error) {
	n := NeuronsPerCity * len(cities)
	r, err := ring.New(n)
	if err != nil {
		return nil, err
	}

	switch init {
	case InitCentroid:
		c := geometry.Centroid(cities)
		for i := 0; i < n; i++ {
			r.Set(i, c)
		}
	case InitCircle:
		var (
			c      = geometry.Centroid(cities)
			lo, hi = geometry.Bounds(cities)
			rad    = geometry.Distance(lo, hi) / 2
			step   = 2 * math.Pi / float64(n)
			th     float64
		)
		for i := 0; i < n; i++ {
			th = step * float64(i)
			r.Set(i, geometry.Point{X: c.X + rad*math.Cos(th), Y: c.Y + rad*math.Sin(th)})
		}
	}
	return r, nil
}
