// Package som trains a self-organizing neural ring (Kohonen-style elastic net)
// over a set of cities.
//
// 🚀 How it works
//
//	The ring holds NeuronsPerCity·|cities| neurons. Every epoch the learning
//	rate and neighborhood radius are annealed, then |cities| iterations run:
//	  1. sample a city uniformly (with replacement),
//	  2. jitter it by N(0,1)/(epoch+1) per coordinate,
//	  3. pick the neuron closest to the jittered point (the winner),
//	  4. move the winner towards the unjittered city by lr·(city−winner),
//	  5. move the neighbors 1..radius steps away on both sides by
//	     factor·lr·(city−neighbor), factor = 0.75·f1 + 0.25·f2 with
//	     f1 = σ̃(|neighbor−winner|), f2 = 1 − σ̃(|neighbor−city|),
//	     σ̃(x) = 2·(sigmoid(x) − 0.5).
//
// Note that σ̃ is increasing in x, so the neighborhood factor does not decay
// with distance. The kernel is kept exactly as stated.
//
// ⚙️ Usage:
//
//	opts := som.DefaultOptions()
//	opts.Seed = 42
//	opts.Observer = func(cp som.Checkpoint) { fmt.Println(cp.Epoch, cp.LearningRate) }
//	tr, err := som.New(opts)
//	r, err := tr.Train(cities)
//
// Training is sequential by nature: each iteration reads positions written by
// the previous one. A Trainer must not be shared across goroutines.
//
// Complexity: O(epochs · |cities| · (N + radius)) time, O(N) memory.
package som
