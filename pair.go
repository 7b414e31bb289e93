package fpds

import "fmt"

// --- Pair ------------------------------------------------------------------

// Pair is a tuple of two values of arbitrary types.
type Pair[A, B any] struct {
	Left  A
	Right B
}

// P creates a pair.
func P[A, B any](x A, y B) Pair[A, B] {
	return Pair[A, B]{x, y}
}

// Decompose returns the pair's components.
func (p Pair[A, B]) Decompose() (A, B) {
	return p.Left, p.Right
}

// Swap returns (Right, Left).
func (p Pair[A, B]) Swap() Pair[B, A] {
	return Pair[B, A]{p.Right, p.Left}
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.Left, p.Right)
}
