package maybe

// Pair groups the two values produced by a successful zip.
type Pair[A, B any] struct {
	First  A
	Second B
}

func (p Pair[A, B]) Values() (A, B) {
	return p.First, p.Second
}
