package som

import "math"

// Validate checks Options in isolation. The learning rate must lie in
// [MinLearningRate, +Inf) so the floor in Schedule.Advance never raises it.
//
// Errors: ErrBadOptions.
func (o Options) Validate() error {
	if o.Epochs < 0 || o.Radius < 0 || o.Pause < 0 || o.ObserveEvery < 1 {
		return ErrBadOptions
	}
	if !(o.LearningRate >= MinLearningRate) || math.IsInf(o.LearningRate, 0) {
		return ErrBadOptions
	}
	switch o.Init {
	case InitZero, InitCentroid, InitCircle:
	default:
		return ErrBadOptions
	}
	return nil
}
