// Package tensor provides the fixed-rank tensor container, its allocators and
// its versioned iterators.
package tensor

import "golang.org/x/exp/constraints"

// Number is the element constraint for the arithmetic range algorithms
// (Iota, Accumulate). The container itself accepts any element type.
type Number interface {
	constraints.Integer | constraints.Float
}
