package tensor

import (
	"cmp"
	"fmt"
	"weak"
)

// cursor is the state shared by Iterator and ConstIterator: a weak handle to
// the issuing tensor, a linear position and the version seen at issuance.
//
// Stepping never touches the tensor. Every dereference goes through
// tensor(), which fails unless the owner is alive and still at the same version.
type cursor[T any, D Dims, A Allocator[T]] struct {
	owner   weak.Pointer[Tensor[T, D, A]]
	index   int
	version uint64
}

func (c cursor[T, D, A]) tensor() (*Tensor[T, D, A], error) {
	t := c.owner.Value()
	if t == nil || t.released.Load() {
		return nil, ErrSourceDestroyed
	}
	if v := t.version.Load(); v != c.version {
		return nil, fmt.Errorf("%w: issued at version %d, tensor is at version %d",
			ErrIteratorInvalidated, c.version, v)
	}
	return t, nil
}

func (c cursor[T, D, A]) ref(offset int) (*T, error) {
	t, err := c.tensor()
	if err != nil {
		return nil, err
	}
	return t.Ref(c.index + offset)
}

func (c cursor[T, D, A]) value(offset int) (T, error) {
	p, err := c.ref(offset)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

func (c cursor[T, D, A]) add(n int) cursor[T, D, A] {
	c.index += n
	return c
}

// span returns last.index - first.index after checking that both cursors
// belong to the same live tensor at its current version.
func span[T any, D Dims, A Allocator[T]](first, last cursor[T, D, A]) (int, error) {
	if first.owner != last.owner {
		return 0, fmt.Errorf("%w: iterators belong to different tensors", ErrRangeMismatch)
	}
	if last.index < first.index {
		return 0, fmt.Errorf("%w: last (%d) is before first (%d)", ErrRangeMismatch, last.index, first.index)
	}
	if _, err := first.tensor(); err != nil {
		return 0, err
	}
	if _, err := last.tensor(); err != nil {
		return 0, err
	}
	return last.index - first.index, nil
}

// Iterator is a random-access iterator that can read and write elements.
//
// Iterators are small values; stepping returns a new iterator:
//
//	for it := t.Begin(); it.Less(t.End()); it = it.Next() {
//		if err := it.Set(0); err != nil {
//			return err
//		}
//	}
//
// Dereferencing fails with ErrIteratorInvalidated once the tensor version
// moves past the one the iterator was issued at, and with ErrSourceDestroyed
// once the tensor is released or garbage collected. Iterators do not keep
// their tensor alive.
type Iterator[T any, D Dims, A Allocator[T]] struct {
	c cursor[T, D, A]
}

// Index returns the linear position.
func (it Iterator[T, D, A]) Index() int { return it.c.index }

// Check reports why the iterator cannot be dereferenced, or nil.
func (it Iterator[T, D, A]) Check() error {
	_, err := it.c.tensor()
	return err
}

// Value returns the element under the iterator.
func (it Iterator[T, D, A]) Value() (T, error) { return it.c.value(0) }

// Ptr returns a pointer to the element under the iterator.
func (it Iterator[T, D, A]) Ptr() (*T, error) { return it.c.ref(0) }

// Set stores v under the iterator.
func (it Iterator[T, D, A]) Set(v T) error {
	p, err := it.c.ref(0)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// At returns the element n positions away.
func (it Iterator[T, D, A]) At(n int) (T, error) { return it.c.value(n) }

// PtrAt returns a pointer to the element n positions away.
func (it Iterator[T, D, A]) PtrAt(n int) (*T, error) { return it.c.ref(n) }

// Next returns the iterator one position forward.
func (it Iterator[T, D, A]) Next() Iterator[T, D, A] { return Iterator[T, D, A]{it.c.add(1)} }

// Prev returns the iterator one position back.
func (it Iterator[T, D, A]) Prev() Iterator[T, D, A] { return Iterator[T, D, A]{it.c.add(-1)} }

// Add returns the iterator n positions forward.
func (it Iterator[T, D, A]) Add(n int) Iterator[T, D, A] { return Iterator[T, D, A]{it.c.add(n)} }

// Sub returns the iterator n positions back.
func (it Iterator[T, D, A]) Sub(n int) Iterator[T, D, A] { return Iterator[T, D, A]{it.c.add(-n)} }

// Distance returns it - other in positions.
func (it Iterator[T, D, A]) Distance(other Iterator[T, D, A]) int { return it.c.index - other.c.index }

// Equal reports whether both iterators are at the same position.
func (it Iterator[T, D, A]) Equal(other Iterator[T, D, A]) bool { return it.c.index == other.c.index }

// Less reports whether it is before other.
func (it Iterator[T, D, A]) Less(other Iterator[T, D, A]) bool { return it.c.index < other.c.index }

// Compare orders iterators by position like cmp.Compare.
func (it Iterator[T, D, A]) Compare(other Iterator[T, D, A]) int {
	return cmp.Compare(it.c.index, other.c.index)
}

// Const returns a read-only iterator at the same position and version.
func (it Iterator[T, D, A]) Const() ConstIterator[T, D, A] { return ConstIterator[T, D, A]{it.c} }

// ConstIterator is the read-only counterpart of Iterator.
type ConstIterator[T any, D Dims, A Allocator[T]] struct {
	c cursor[T, D, A]
}

// Index returns the linear position.
func (it ConstIterator[T, D, A]) Index() int { return it.c.index }

// Check reports why the iterator cannot be dereferenced, or nil.
func (it ConstIterator[T, D, A]) Check() error {
	_, err := it.c.tensor()
	return err
}

// Value returns the element under the iterator.
func (it ConstIterator[T, D, A]) Value() (T, error) { return it.c.value(0) }

// At returns the element n positions away.
func (it ConstIterator[T, D, A]) At(n int) (T, error) { return it.c.value(n) }

// Next returns the iterator one position forward.
func (it ConstIterator[T, D, A]) Next() ConstIterator[T, D, A] {
	return ConstIterator[T, D, A]{it.c.add(1)}
}

// Prev returns the iterator one position back.
func (it ConstIterator[T, D, A]) Prev() ConstIterator[T, D, A] {
	return ConstIterator[T, D, A]{it.c.add(-1)}
}

// Add returns the iterator n positions forward.
func (it ConstIterator[T, D, A]) Add(n int) ConstIterator[T, D, A] {
	return ConstIterator[T, D, A]{it.c.add(n)}
}

// Sub returns the iterator n positions back.
func (it ConstIterator[T, D, A]) Sub(n int) ConstIterator[T, D, A] {
	return ConstIterator[T, D, A]{it.c.add(-n)}
}

// Distance returns it - other in positions.
func (it ConstIterator[T, D, A]) Distance(other ConstIterator[T, D, A]) int {
	return it.c.index - other.c.index
}

// Equal reports whether both iterators are at the same position.
func (it ConstIterator[T, D, A]) Equal(other ConstIterator[T, D, A]) bool {
	return it.c.index == other.c.index
}

// Less reports whether it is before other.
func (it ConstIterator[T, D, A]) Less(other ConstIterator[T, D, A]) bool {
	return it.c.index < other.c.index
}

// Compare orders iterators by position like cmp.Compare.
func (it ConstIterator[T, D, A]) Compare(other ConstIterator[T, D, A]) int {
	return cmp.Compare(it.c.index, other.c.index)
}
