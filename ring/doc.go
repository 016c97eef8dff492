// Package ring holds the neurons of a self-organizing ring.
//
// A Ring is an ordered, fixed-size sequence of points with circular
// adjacency: Right(i) = (i+1) mod N and Left(i) = (i−1+N) mod N. Neurons are
// identified only by their index. After construction the ring can be read and
// written positionally but never resized.
//
// A Ring is not safe for concurrent use; training is strictly sequential.
package ring
