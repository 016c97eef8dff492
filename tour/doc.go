// Package tour reads a visiting order off a trained neuron ring and scores it.
//
// Decoding:
//
//	Walk the neurons in ring order; each neuron claims its nearest city when
//	the neuron lies within a threshold d of it and the city differs from the
//	last one appended. One walk is a pass, the path is reset every pass. The
//	threshold starts at InitialThreshold and grows by ThresholdStep until a
//	pass yields |cities| entries forming a permutation.
//
// The relaxation has no pass cap. It ends either with a tour or, once every
// neuron already qualifies and no further growth of d can change a pass,
// with ErrUnresolved.
//
// Polishing:
//
//	TwoOpt optionally removes crossings from a decoded path with
//	first-improvement 2-opt. Decode itself never calls it.
//
// Scoring:
//
//	Length(path) = Σ |cities[path[i]] − cities[path[(i+1) mod n]]|
//
// The sum is over the closed loop, so it is invariant under rotation and
// reversal of path.
//
// Paths are open permutations (len == n); Close produces the closed form
// (len == n+1, first == last).
package tour
