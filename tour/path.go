package tour

// Path is an ordered sequence of city indices visiting every city once; the
// last city connects back to the first.
type Path []int

// ValidatePermutation checks that p is a permutation of {0..n-1}.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(p []int, n int) error {
	if n <= 0 || len(p) != n {
		return ErrNotPermutation
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = p[i]
		if v < 0 || v >= n || seen[v] {
			return ErrNotPermutation
		}
		seen[v] = true
	}
	return nil
}

// Rotate returns a copy of p shifted so that it starts at city start.
//
// Errors: ErrNotPermutation when start is absent.
func Rotate(p Path, start int) (Path, error) {
	var (
		n     = len(p)
		pivot = -1
		i     int
	)
	for i = 0; i < n; i++ {
		if p[i] == start {
			pivot = i
			break
		}
	}
	if pivot < 0 {
		return nil, ErrNotPermutation
	}
	out := make(Path, n)
	for i = 0; i < n; i++ {
		out[i] = p[(pivot+i)%n]
	}
	return out, nil
}

// Reverse returns p in the opposite direction, keeping p[0] first.
func Reverse(p Path) Path {
	out := make(Path, len(p))
	if len(p) == 0 {
		return out
	}
	out[0] = p[0]
	var i int
	for i = 1; i < len(p); i++ {
		out[i] = p[len(p)-i]
	}
	return out
}

// Canonical returns the unique representative of p's cycle: rotated to start
// at its smallest city and oriented so that out[1] <= out[n-1].
// Two paths describe the same closed tour iff their canonical forms are equal.
//
// Errors: ErrNotPermutation.
func Canonical(p Path) (Path, error) {
	if err := ValidatePermutation(p, len(p)); err != nil {
		return nil, err
	}
	out, err := Rotate(p, 0)
	if err != nil {
		return nil, err
	}
	if n := len(out); n > 2 && out[1] > out[n-1] {
		out = Reverse(out)
	}
	return out, nil
}

// Close returns the closed form of p: len(p)+1 entries, the first city repeated
// at the end. An empty path stays empty.
func Close(p Path) []int {
	if len(p) == 0 {
		return []int{}
	}
	out := make([]int, len(p)+1)
	copy(out, p)
	out[len(p)] = p[0]
	return out
}
