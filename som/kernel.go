package som

import (
	"math"

	"github.com/katalvlaran/somtsp/geometry"
)

// Kernel blend weights.
const (
	winnerWeight = 0.75
	cityWeight   = 0.25
)

// AdjustedSigmoid returns 2·(sigmoid(x) − 0.5) = (eˣ−1)/(eˣ+1), which maps
// [0,∞) onto [0,1) and is increasing.
//
// It is evaluated as tanh(x/2), an identical function that stays finite for
// large x where eˣ overflows.
func AdjustedSigmoid(x float64) float64 {
	return math.Tanh(x / 2)
}

// NeighborFactor is the blended pull applied to a neighbor:
// 0.75·σ̃(|nb−winner|) + 0.25·(1 − σ̃(|nb−city|)).
func NeighborFactor(neighbor, winner, city geometry.Point) float64 {
	f1 := AdjustedSigmoid(geometry.Distance(neighbor, winner))
	f2 := 1 - AdjustedSigmoid(geometry.Distance(neighbor, city))
	return winnerWeight*f1 + cityWeight*f2
}
