package som_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/somtsp"
	"github.com/katalvlaran/somtsp/geometry"
	"github.com/katalvlaran/somtsp/nearest"
	"github.com/katalvlaran/somtsp/som"
	"github.com/katalvlaran/somtsp/tour"
)

var triangle = []geometry.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 10}}

// circle returns n cities evenly spaced on a circle of radius r.
func circle(n int, r float64) []geometry.Point {
	pts := make([]geometry.Point, n)
	for i := range pts {
		th := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = geometry.Point{X: r * math.Cos(th), Y: r * math.Sin(th)}
	}
	return pts
}

// recorder collects every checkpoint.
type recorder struct{ cps []som.Checkpoint }

func (r *recorder) observe(cp som.Checkpoint) { r.cps = append(r.cps, cp) }

func TestOptions_Validate(t *testing.T) {
	assert.NoError(t, som.DefaultOptions().Validate())

	mutate := []func(*som.Options){
		func(o *som.Options) { o.Epochs = -1 },
		func(o *som.Options) { o.Radius = -1 },
		func(o *som.Options) { o.LearningRate = 0 },
		func(o *som.Options) { o.LearningRate = 0.01 },
		func(o *som.Options) { o.LearningRate = som.MinLearningRate - 1e-9 },
		func(o *som.Options) { o.LearningRate = math.NaN() },
		func(o *som.Options) { o.LearningRate = math.Inf(1) },
		func(o *som.Options) { o.ObserveEvery = 0 },
		func(o *som.Options) { o.Pause = -time.Second },
		func(o *som.Options) { o.Init = som.Init(42) },
	}
	for i, m := range mutate {
		o := som.DefaultOptions()
		m(&o)
		_, err := som.New(o)
		assert.ErrorIs(t, err, som.ErrBadOptions, "case %d", i)
		assert.ErrorIs(t, err, somtsp.ErrInvalidInput, "case %d", i)
	}
}

func TestParseInit(t *testing.T) {
	for _, in := range []som.Init{som.InitZero, som.InitCentroid, som.InitCircle} {
		got, err := som.ParseInit(in.String())
		require.NoError(t, err)
		assert.Equal(t, in, got)
	}
	got, err := som.ParseInit("")
	require.NoError(t, err)
	assert.Equal(t, som.InitZero, got)
	_, err = som.ParseInit("spiral")
	assert.ErrorIs(t, err, som.ErrBadOptions)
}

func TestTrain_EmptyCitiesFailsBeforeAllocation(t *testing.T) {
	rec := &recorder{}
	opts := som.DefaultOptions()
	opts.Observer = rec.observe
	tr, err := som.New(opts)
	require.NoError(t, err)

	r, err := tr.Train(nil)
	assert.Nil(t, r)
	assert.ErrorIs(t, err, som.ErrNoCities)
	assert.ErrorIs(t, err, somtsp.ErrInvalidInput)
	assert.Empty(t, rec.cps, "no ring was laid out, so nothing was observed")
}

func TestTrain_ZeroEpochsLeavesInitialState(t *testing.T) {
	rec := &recorder{}
	opts := som.DefaultOptions()
	opts.Epochs = 0
	opts.Observer = rec.observe
	tr, err := som.New(opts)
	require.NoError(t, err)

	r, err := tr.Train(triangle)
	require.NoError(t, err)
	require.Equal(t, 15, r.Len())
	for _, p := range r.Snapshot() {
		assert.Equal(t, geometry.Origin, p)
	}

	s := tr.Schedule()
	assert.Equal(t, som.DefaultLearningRate, s.LearningRate)
	assert.Equal(t, som.DefaultRadius, s.Radius)

	require.Len(t, rec.cps, 2)
	assert.Equal(t, som.Initial, rec.cps[0].Kind)
	assert.Equal(t, som.Final, rec.cps[1].Kind)
	assert.Equal(t, 0, rec.cps[1].Epoch)
}

func TestTrain_InitialLayouts(t *testing.T) {
	for _, init := range []som.Init{som.InitCentroid, som.InitCircle} {
		opts := som.DefaultOptions()
		opts.Epochs = 0
		opts.Init = init
		tr, err := som.New(opts)
		require.NoError(t, err)
		r, err := tr.Train(triangle)
		require.NoError(t, err)

		c := geometry.Centroid(triangle)
		for _, p := range r.Snapshot() {
			if init == som.InitCentroid {
				assert.Equal(t, c, p)
			} else {
				assert.InDelta(t, 5*math.Sqrt2, geometry.Distance(c, p), 1e-9, "on the circle")
			}
		}
	}
}

// TestTrain_Invariants checks ring size and schedule monotonicity at every epoch.
func TestTrain_Invariants(t *testing.T) {
	rec := &recorder{}
	opts := som.DefaultOptions()
	opts.Epochs = 260
	opts.ObserveEvery = 1
	opts.Observer = rec.observe
	opts.Seed = 5
	tr, err := som.New(opts)
	require.NoError(t, err)

	cities := circle(6, 10)
	r, err := tr.Train(cities)
	require.NoError(t, err)
	assert.Equal(t, som.NeuronsPerCity*len(cities), r.Len())

	// Initial + one per epoch + Final.
	require.Len(t, rec.cps, opts.Epochs+2)

	var prev som.Checkpoint
	for i, cp := range rec.cps {
		assert.Len(t, cp.Neurons, 30, "ring size is fixed")
		assert.GreaterOrEqual(t, cp.LearningRate, som.MinLearningRate)
		assert.GreaterOrEqual(t, cp.Radius, 0)
		if i == 0 {
			prev = cp
			continue
		}
		assert.LessOrEqual(t, cp.LearningRate, prev.LearningRate, "learning rate never grows")
		assert.LessOrEqual(t, cp.Radius, prev.Radius, "radius never grows")
		if cp.Kind == som.Periodic && cp.Radius != prev.Radius {
			assert.Zero(t, cp.Epoch%som.RadiusDecayEvery, "radius changes only on 50-epoch boundaries")
		}
		prev = cp
	}

	// 25 → 24 at epoch 0, then 50, 100, 150, 200, 250.
	assert.Equal(t, 19, tr.Schedule().Radius)
}

// TestTrain_RateAtFloorNeverGrows starts at the smallest accepted rate.
func TestTrain_RateAtFloorNeverGrows(t *testing.T) {
	rec := &recorder{}
	opts := som.DefaultOptions()
	opts.LearningRate = som.MinLearningRate
	opts.Epochs = 10
	opts.ObserveEvery = 1
	opts.Observer = rec.observe
	tr, err := som.New(opts)
	require.NoError(t, err)

	_, err = tr.Train(circle(4, 10))
	require.NoError(t, err)
	require.Len(t, rec.cps, opts.Epochs+2)
	for _, cp := range rec.cps {
		assert.Equal(t, som.MinLearningRate, cp.LearningRate, "epoch %d", cp.Epoch)
	}
}

func TestTrain_PeriodicCheckpoints(t *testing.T) {
	rec := &recorder{}
	opts := som.DefaultOptions()
	opts.Epochs = 60
	opts.Observer = rec.observe
	opts.Pause = time.Millisecond
	tr, err := som.New(opts)
	require.NoError(t, err)

	_, err = tr.Train(triangle)
	require.NoError(t, err)

	var epochs []int
	for _, cp := range rec.cps {
		epochs = append(epochs, cp.Epoch)
	}
	assert.Equal(t, []int{0, 0, 25, 50, 60}, epochs)
	assert.Equal(t, som.Initial, rec.cps[0].Kind)
	assert.Equal(t, som.Periodic, rec.cps[1].Kind)
	assert.Equal(t, som.Final, rec.cps[4].Kind)
}

func TestTrain_ObserverSnapshotIsDetached(t *testing.T) {
	opts := som.DefaultOptions()
	opts.Epochs = 10
	opts.Observer = func(cp som.Checkpoint) {
		for i := range cp.Neurons {
			cp.Neurons[i] = geometry.Point{X: math.NaN(), Y: math.NaN()}
		}
	}
	tr, err := som.New(opts)
	require.NoError(t, err)
	r, err := tr.Train(triangle)
	require.NoError(t, err)
	for _, p := range r.Snapshot() {
		assert.False(t, math.IsNaN(p.X), "observer writes never reach the ring")
	}
}

func TestTrain_SeedDeterminism(t *testing.T) {
	run := func() []geometry.Point {
		opts := som.DefaultOptions()
		opts.Epochs = 200
		opts.Seed = 77
		tr, err := som.New(opts)
		require.NoError(t, err)
		r, err := tr.Train(circle(7, 5))
		require.NoError(t, err)
		return r.Snapshot()
	}
	assert.Equal(t, run(), run())

	// An injected stream overrides the seed.
	opts := som.DefaultOptions()
	opts.Epochs = 200
	opts.Seed = 77
	opts.Rand = nearest.RandFromSeed(78)
	tr, err := som.New(opts)
	require.NoError(t, err)
	r, err := tr.Train(circle(7, 5))
	require.NoError(t, err)
	assert.NotEqual(t, run(), r.Snapshot())
}

func TestTrain_SingleCityCollapsesOntoIt(t *testing.T) {
	opts := som.DefaultOptions()
	opts.Epochs = 300
	tr, err := som.New(opts)
	require.NoError(t, err)

	cities := []geometry.Point{{X: 0, Y: 0}}
	r, err := tr.Train(cities)
	require.NoError(t, err)
	assert.Equal(t, 5, r.Len())

	p, err := tour.Decode(cities, r.Snapshot(), nil)
	require.NoError(t, err)
	assert.Equal(t, tour.Path{0}, p)
	assert.Equal(t, 0.0, tour.Length(p, cities))
}

// TestTrainDecode_Triangle: every ordering of three cities is the same tour,
// so a decoded triangle always scores its perimeter.
func TestTrainDecode_Triangle(t *testing.T) {
	var seed int64
	for seed = 1; seed <= 3; seed++ {
		opts := som.DefaultOptions()
		opts.Seed = seed
		tr, err := som.New(opts)
		require.NoError(t, err)
		r, err := tr.Train(triangle)
		require.NoError(t, err)

		p, err := tour.Decode(triangle, r.Snapshot(), nearest.RandFromSeed(seed))
		require.NoError(t, err)
		require.NoError(t, tour.ValidatePermutation(p, 3))
		assert.InDelta(t, 10+2*math.Sqrt(125), tour.Length(p, triangle), 1e-9)
	}
}

// TestTrainDecode_CircleIsSolvedOptimally: on a convex polygon the ring
// settles on the hull order.
func TestTrainDecode_CircleIsSolvedOptimally(t *testing.T) {
	cities := circle(8, 10)
	optimal := 8 * 2 * 10 * math.Sin(math.Pi/8)

	opts := som.DefaultOptions()
	opts.Seed = 2024
	tr, err := som.New(opts)
	require.NoError(t, err)
	r, err := tr.Train(cities)
	require.NoError(t, err)

	p, err := tour.Decode(cities, r.Snapshot(), nil)
	require.NoError(t, err)
	require.NoError(t, tour.ValidatePermutation(p, len(cities)))
	assert.InDelta(t, optimal, tour.Length(p, cities), 1e-6)
}

func TestTrainDecode_RandomInstanceIsPermutation(t *testing.T) {
	rng := nearest.RandFromSeed(31337)
	cities := make([]geometry.Point, 20)
	for i := range cities {
		cities[i] = geometry.Point{X: rng.Float64() * 100, Y: rng.Float64() * 100}
	}
	opts := som.DefaultOptions()
	opts.Rand = rng
	tr, err := som.New(opts)
	require.NoError(t, err)
	r, err := tr.Train(cities)
	require.NoError(t, err)

	p, err := tour.Decode(cities, r.Snapshot(), rng)
	require.NoError(t, err)
	assert.NoError(t, tour.ValidatePermutation(p, len(cities)))
	assert.Greater(t, tour.Length(p, cities), 0.0)
}
