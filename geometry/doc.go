// Package geometry provides the 2D primitives shared by the ring trainer and
// the decoder: an immutable Point value, Euclidean distance and a handful of
// vector helpers.
//
// All functions are pure. Non-finite inputs are not detected; NaN and ±Inf
// simply propagate through the arithmetic.
package geometry
