package som

import (
	"math/rand"
	"time"

	"github.com/katalvlaran/somtsp/geometry"
	"github.com/katalvlaran/somtsp/nearest"
	"github.com/katalvlaran/somtsp/ring"
)

// Trainer owns the random stream and the annealing schedule of a run.
type Trainer struct {
	opts  Options
	rng   *rand.Rand
	sched Schedule
}

// New validates opts and returns a Trainer. The random stream is opts.Rand
// when set, otherwise a fresh stream seeded with opts.Seed.
//
// Errors: ErrBadOptions.
func New(opts Options) (*Trainer, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	rng := opts.Rand
	if rng == nil {
		rng = nearest.RandFromSeed(opts.Seed)
	}
	return &Trainer{
		opts:  opts,
		rng:   rng,
		sched: newSchedule(opts.LearningRate, opts.Radius),
	}, nil
}

// Schedule returns the schedule as left by the last Train call (the initial
// values before any run, or after a run with zero epochs).
func (t *Trainer) Schedule() Schedule { return t.sched }

// Train evolves a fresh ring over cities and returns it.
//
// The schedule is reset at the start of every call. Checkpoints go to
// opts.Observer after the layout, after every epoch divisible by
// opts.ObserveEvery, and after the last epoch.
//
// Errors: ErrNoCities (nothing is allocated).
//
// Complexity: O(epochs · |cities| · (N + radius)).
func (t *Trainer) Train(cities []geometry.Point) (*ring.Ring, error) {
	if len(cities) == 0 {
		return nil, ErrNoCities
	}

	r, err := layout(t.opts.Init, cities)
	if err != nil {
		return nil, err
	}
	t.sched = newSchedule(t.opts.LearningRate, t.opts.Radius)
	t.observe(Initial, 0, r)

	var epoch int
	for epoch = 0; epoch < t.opts.Epochs; epoch++ {
		t.sched.Advance(epoch)
		if err = t.epoch(r, cities, epoch); err != nil {
			return nil, err
		}
		if epoch%t.opts.ObserveEvery == 0 && t.opts.Observer != nil {
			t.observe(Periodic, epoch, r)
			if t.opts.Pause > 0 {
				time.Sleep(t.opts.Pause)
			}
		}
	}
	t.observe(Final, t.opts.Epochs, r)

	return r, nil
}

// epoch runs |cities| sample–win–update iterations.
func (t *Trainer) epoch(r *ring.Ring, cities []geometry.Point, epoch int) error {
	var (
		n      = len(cities)
		jitter = 1 / float64(epoch+1)
		lr     = t.sched.LearningRate
		radius = t.sched.Radius
		city   geometry.Point
		target geometry.Point
		w      int
		i      int
		it     int
		err    error
	)
	for it = 0; it < n; it++ {
		city = cities[t.rng.Intn(n)]
		target.X = city.X + t.rng.NormFloat64()*jitter
		target.Y = city.Y + t.rng.NormFloat64()*jitter

		if w, err = r.Nearest(target, t.rng); err != nil {
			return err
		}
		r.Set(w, geometry.Toward(r.At(w), city, lr))

		for i = 1; i <= radius; i++ {
			pull(r, r.Offset(w, i), w, city, lr)
			pull(r, r.Offset(w, -i), w, city, lr)
		}
	}
	return nil
}

// pull moves neuron j towards city by NeighborFactor·lr. The winner is read
// from the ring each time, since j may wrap onto it for large radii.
func pull(r *ring.Ring, j, w int, city geometry.Point, lr float64) {
	nb := r.At(j)
	r.Set(j, geometry.Toward(nb, city, NeighborFactor(nb, r.At(w), city)*lr))
}

// observe hands a snapshot of r to the observer, if any.
func (t *Trainer) observe(kind CheckpointKind, epoch int, r *ring.Ring) {
	if t.opts.Observer == nil {
		return
	}
	t.opts.Observer(Checkpoint{
		Kind:         kind,
		Epoch:        epoch,
		LearningRate: t.sched.LearningRate,
		Radius:       t.sched.Radius,
		Neurons:      r.Snapshot(),
	})
}
