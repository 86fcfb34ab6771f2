package tensor

// RandomAccess is the iterator shape Reverse adapts.
// Iterator, ConstIterator and Reverse itself satisfy it.
type RandomAccess[I any, T any] interface {
	Next() I
	Prev() I
	Add(n int) I
	Distance(other I) int
	Compare(other I) int
	Value() (T, error)
}

// Reverse walks a random-access iterator backwards.
// A Reverse built on base dereferences the element just before base, so
// MakeReverse(End) is the last element and MakeReverse(Begin) is the reverse end.
type Reverse[I RandomAccess[I, T], T any] struct {
	base I
}

// MakeReverse wraps base.
func MakeReverse[I RandomAccess[I, T], T any](base I) Reverse[I, T] {
	return Reverse[I, T]{base: base}
}

// Base returns the underlying forward iterator.
func (r Reverse[I, T]) Base() I { return r.base }

// Value returns the element under the iterator.
func (r Reverse[I, T]) Value() (T, error) { return r.base.Prev().Value() }

// At returns the element n positions further along the reverse direction.
func (r Reverse[I, T]) At(n int) (T, error) { return r.Add(n).Value() }

// Next steps toward the front of the tensor.
func (r Reverse[I, T]) Next() Reverse[I, T] { return Reverse[I, T]{r.base.Prev()} }

// Prev steps toward the back of the tensor.
func (r Reverse[I, T]) Prev() Reverse[I, T] { return Reverse[I, T]{r.base.Next()} }

// Add moves n positions in the reverse direction.
func (r Reverse[I, T]) Add(n int) Reverse[I, T] { return Reverse[I, T]{r.base.Add(-n)} }

// Sub moves n positions against the reverse direction.
func (r Reverse[I, T]) Sub(n int) Reverse[I, T] { return Reverse[I, T]{r.base.Add(n)} }

// Distance returns r - other along the reverse direction.
func (r Reverse[I, T]) Distance(other Reverse[I, T]) int { return other.base.Distance(r.base) }

// Compare orders reverse iterators along the reverse direction.
func (r Reverse[I, T]) Compare(other Reverse[I, T]) int { return other.base.Compare(r.base) }

// Equal reports whether both iterators are at the same position.
func (r Reverse[I, T]) Equal(other Reverse[I, T]) bool { return r.Compare(other) == 0 }

// Less reports whether r comes before other along the reverse direction.
func (r Reverse[I, T]) Less(other Reverse[I, T]) bool { return r.Compare(other) < 0 }
