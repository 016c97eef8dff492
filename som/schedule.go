package som

import "math"

// Schedule is the annealing state of one training run.
type Schedule struct {
	Epoch        int
	LearningRate float64
	Radius       int
}

// newSchedule returns the schedule before the first epoch.
func newSchedule(lr float64, radius int) Schedule {
	return Schedule{LearningRate: lr, Radius: radius}
}

// Advance applies the per-epoch decay for epoch:
//
//	lr     = max(lr·0.99, 0.05)
//	radius = max(0, radius−1)   when epoch % 50 == 0
//
// Both values are non-increasing as long as the starting rate is at least
// MinLearningRate, which Options.Validate enforces.
func (s *Schedule) Advance(epoch int) {
	s.Epoch = epoch
	s.LearningRate = math.Max(s.LearningRate*LearningRateDecay, MinLearningRate)
	if epoch%RadiusDecayEvery == 0 && s.Radius > 0 {
		s.Radius--
	}
}
