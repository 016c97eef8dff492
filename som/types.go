package som

import (
	"math/rand"
	"time"

	"github.com/katalvlaran/somtsp/geometry"
)

// NeuronsPerCity fixes the ring size: N = NeuronsPerCity · |cities|.
const NeuronsPerCity = 5

// Defaults used by DefaultOptions.
const (
	DefaultEpochs       = 2000
	DefaultLearningRate = 0.75
	DefaultRadius       = 25
	DefaultObserveEvery = 25
)

// Annealing constants.
const (
	// LearningRateDecay multiplies the learning rate once per epoch.
	LearningRateDecay = 0.99
	// MinLearningRate is the learning-rate floor.
	MinLearningRate = 0.05
	// RadiusDecayEvery is the epoch period of the radius decrement.
	RadiusDecayEvery = 50
)

// Init selects the initial neuron layout.
type Init int

const (
	// InitZero places every neuron at the origin.
	InitZero Init = iota
	// InitCentroid places every neuron at the centroid of the cities.
	InitCentroid
	// InitCircle spreads the neurons evenly on a circle around the centroid
	// whose radius is half the diagonal of the cities' bounding box.
	InitCircle
)

// String returns the config spelling of the layout.
func (i Init) String() string {
	switch i {
	case InitZero:
		return "zero"
	case InitCentroid:
		return "centroid"
	case InitCircle:
		return "circle"
	default:
		return "unknown"
	}
}

// ParseInit is the inverse of Init.String.
func ParseInit(s string) (Init, error) {
	switch s {
	case "", "zero":
		return InitZero, nil
	case "centroid":
		return InitCentroid, nil
	case "circle":
		return InitCircle, nil
	default:
		return 0, ErrBadOptions
	}
}

// CheckpointKind tells when a checkpoint was taken.
type CheckpointKind int

const (
	// Initial is emitted once, right after the ring is laid out.
	Initial CheckpointKind = iota
	// Periodic is emitted after every epoch divisible by Options.ObserveEvery.
	Periodic
	// Final is emitted once, after the last epoch.
	Final
)

func (k CheckpointKind) String() string {
	switch k {
	case Initial:
		return "initial"
	case Periodic:
		return "periodic"
	case Final:
		return "final"
	default:
		return "unknown"
	}
}

// Checkpoint is the read-only view handed to an Observer.
// Epoch is the epoch just completed (0 for Initial, Options.Epochs for Final).
type Checkpoint struct {
	Kind         CheckpointKind
	Epoch        int
	LearningRate float64
	Radius       int
	Neurons      []geometry.Point // independent copy, ring order
}

// Observer receives checkpoints. It is a pure side channel: it cannot alter
// training and its duration only delays the run.
type Observer func(Checkpoint)

// Options configures a Trainer.
//
// Fields:
//   - Epochs       - number of epochs; 0 returns the initial layout untouched.
//   - LearningRate - initial learning rate, finite and >= MinLearningRate.
//   - Radius       - initial neighborhood radius, must be >= 0.
//   - Seed         - seed of the default random stream (0 ⇒ nearest.DefaultSeed).
//   - Rand         - explicit random stream; overrides Seed when non-nil.
//   - Init         - initial layout.
//   - Observer     - optional checkpoint callback.
//   - ObserveEvery - periodic checkpoint interval in epochs, must be >= 1.
//   - Pause        - sleep after each periodic checkpoint (only with an Observer).
type Options struct {
	Epochs       int
	LearningRate float64
	Radius       int
	Seed         int64
	Rand         *rand.Rand
	Init         Init
	Observer     Observer
	ObserveEvery int
	Pause        time.Duration
}

// DefaultOptions returns the classic settings: 2000 epochs, learning rate
// 0.75, radius 25, zero layout, checkpoints every 25 epochs, no pause.
func DefaultOptions() Options {
	return Options{
		Epochs:       DefaultEpochs,
		LearningRate: DefaultLearningRate,
		Radius:       DefaultRadius,
		Init:         InitZero,
		ObserveEvery: DefaultObserveEvery,
	}
}
