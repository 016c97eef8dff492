package nearest

import "math/rand"

// DefaultSeed is the fixed seed used when callers pass seed==0.
const DefaultSeed int64 = 1

// RandFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
//
// math/rand.Rand is NOT goroutine-safe; give every run its own stream.
func RandFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new seed
// with the SplitMix64 finalizer, the same mix as lvlath's tsp deriveSeed.
// Used to give the trainer and the decoder independent, reproducible streams
// from one user-facing seed.
func DeriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// orDefault returns rng, or a fresh DefaultSeed stream when rng is nil.
func orDefault(rng *rand.Rand) *rand.Rand {
	if rng == nil {
		return RandFromSeed(0)
	}
	return rng
}
