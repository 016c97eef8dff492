// Package somtsp approximates Euclidean Travelling Salesman tours with a
// self-organizing neural ring (a Kohonen-style elastic net).
//
// 🚀 What is it?
//
//	A closed loop of movable "neurons" is pulled, epoch after epoch, towards
//	randomly sampled cities. Once the loop has settled on the cities it is
//	read back as a visiting order.
//
// Under the hood, everything is organized under small subpackages:
//
//	geometry/   - 2D points, Euclidean distance, vector helpers
//	nearest/    - closest-point search with randomized near-tie breaking
//	ring/       - fixed-size circular neuron container
//	som/        - the trainer: annealing schedule, sampling, update rule
//	tour/       - decoding a trained ring into a tour, 2-opt polish, tour length
//	dataset/    - "x,y" instance files
//	config/     - YAML run configuration
//	cmd/somtsp/ - command-line solver
//
// Quick example:
//
//	cities := []geometry.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 10}}
//	tr, _ := som.New(som.DefaultOptions())
//	r, _ := tr.Train(cities)
//	path, _ := tour.Decode(cities, r.Snapshot(), nil)
//	fmt.Println(path, tour.Length(path, cities))
//
// The result is a heuristic: neither optimality nor a convergence bound is
// promised.
package somtsp
