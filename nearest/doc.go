// Package nearest finds the candidate point closest to a target.
//
// The scan is linear and keeps a running minimum. Near-ties (distances within
// TieTolerance of the current best) are resolved by an independent fair coin
// per comparison, so the index returned for genuinely tied candidates is
// deliberately unspecified. Only the distance is guaranteed: it is within
// TieTolerance of the true minimum for every near-tie taken.
//
// Randomness comes from an explicit *rand.Rand (see RandFromSeed); there is no
// package-level generator.
//
// Complexity: O(n) per query. No allocations when the caller supplies the
// stream; a nil *rand.Rand builds a fresh DefaultSeed source (several KB) on
// every call, so repeated queries should hoist one stream, as tour.Decode does.
package nearest
