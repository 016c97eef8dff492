package som_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/somtsp/geometry"
	"github.com/katalvlaran/somtsp/som"
)

func TestAdjustedSigmoid_MatchesLogisticForm(t *testing.T) {
	for _, x := range []float64{0, 0.1, 0.5, 1, 2, 5, 10, 30} {
		logistic := math.Exp(x) / (math.Exp(x) + 1)
		assert.InDelta(t, 2*(logistic-0.5), som.AdjustedSigmoid(x), 1e-12, "x=%v", x)
	}
	assert.Equal(t, 0.0, som.AdjustedSigmoid(0))
	assert.Equal(t, 1.0, som.AdjustedSigmoid(1000), "finite where exp overflows")
}

func TestAdjustedSigmoid_Increasing(t *testing.T) {
	prev := som.AdjustedSigmoid(0)
	for x := 0.25; x < 20; x += 0.25 {
		cur := som.AdjustedSigmoid(x)
		assert.Greater(t, cur, prev, "x=%v", x)
		prev = cur
	}
}

func TestNeighborFactor_Blend(t *testing.T) {
	var (
		city   = geometry.Point{X: 0, Y: 0}
		winner = geometry.Point{X: 0, Y: 0}
		nb     = geometry.Point{X: 3, Y: 4}
	)
	s := som.AdjustedSigmoid(5)
	assert.InDelta(t, 0.75*s+0.25*(1-s), som.NeighborFactor(nb, winner, city), 1e-12)

	// A neighbor on top of both winner and city gets only the 0.25 city term.
	assert.InDelta(t, 0.25, som.NeighborFactor(city, winner, city), 1e-12)

	// Far neighbors approach the 0.75 weight: the kernel does not decay.
	far := geometry.Point{X: 1e6, Y: 0}
	assert.InDelta(t, 0.75, som.NeighborFactor(far, winner, city), 1e-9)
}
