package tensor

import (
	"iter"
	"slices"
)

// Iota assigns start, start+1, ... to the elements in [first, last).
//
// Example:
//
//	err := tensor.Iota(t.Begin(), t.End(), 0)
func Iota[T Number, D Dims, A Allocator[T]](first, last Iterator[T, D, A], start T) error {
	if _, err := span(first.c, last.c); err != nil {
		return err
	}
	v := start
	for it := first; it.Less(last); it = it.Next() {
		if err := it.Set(v); err != nil {
			return err
		}
		v++
	}
	return nil
}

// Accumulate returns init plus the sum of the elements in [first, last).
// The range may be any sub-slice of a tensor, e.g. t.CBegin().Add(s), t.CBegin().Add(e).
func Accumulate[T Number, D Dims, A Allocator[T]](first, last ConstIterator[T, D, A], init T) (T, error) {
	if _, err := span(first.c, last.c); err != nil {
		return init, err
	}
	sum := init
	for it := first; it.Less(last); it = it.Next() {
		v, err := it.Value()
		if err != nil {
			return sum, err
		}
		sum += v
	}
	return sum, nil
}

// Sort orders the elements in [first, last) by cmp (as in slices.SortFunc).
func Sort[T any, D Dims, A Allocator[T]](first, last Iterator[T, D, A], cmp func(a, b T) int) error {
	n, err := span(first.c, last.c)
	if err != nil {
		return err
	}

	buf := make([]T, 0, n)
	for it := first; it.Less(last); it = it.Next() {
		v, err := it.Value()
		if err != nil {
			return err
		}
		buf = append(buf, v)
	}
	slices.SortFunc(buf, cmp)

	it := first
	for _, v := range buf {
		if err := it.Set(v); err != nil {
			return err
		}
		it = it.Next()
	}
	return nil
}

// Values yields the elements in [first, last) for use with range.
// On a dereference failure it yields the zero value with the error and stops.
//
// Example:
//
//	for v, err := range tensor.Values(t.CBegin(), t.CEnd()) {
//		if err != nil {
//			return err
//		}
//		fmt.Println(v)
//	}
func Values[T any, D Dims, A Allocator[T]](first, last ConstIterator[T, D, A]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		if _, err := span(first.c, last.c); err != nil {
			var zero T
			yield(zero, err)
			return
		}
		for it := first; it.Less(last); it = it.Next() {
			v, err := it.Value()
			if !yield(v, err) || err != nil {
				return
			}
		}
	}
}
