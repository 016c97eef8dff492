package som_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/somtsp/geometry"
	"github.com/katalvlaran/somtsp/som"
	"github.com/katalvlaran/somtsp/tour"
)

// ExampleTrainer_Train trains a ring over a square and scores the decoded tour.
func ExampleTrainer_Train() {
	cities := []geometry.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}}

	opts := som.DefaultOptions()
	opts.Seed = 7
	tr, err := som.New(opts)
	if err != nil {
		panic(err)
	}
	r, err := tr.Train(cities)
	if err != nil {
		panic(err)
	}
	p, err := tour.Decode(cities, r.Snapshot(), nil)
	if err != nil {
		panic(err)
	}

	fmt.Println("neurons:", r.Len())
	fmt.Printf("length: %.0f\n", math.Round(tour.Length(p, cities)))
	// Output:
	// neurons: 20
	// length: 16
}
