package tensor

import (
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
	"weak"
)

// Tensor is a fixed-rank multi-dimensional array.
//
// Type Parameters:
//   - T: element type
//   - D: extents array; its length is the rank (see Dims)
//   - A: element allocator (see Allocator)
//
// Elements are stored contiguously with axis 0 varying fastest.
// The zero value is an empty tensor (all extents 0) that allocates with the
// zero value of A once something is copied or moved into it.
//
// Locking: Clone, Move, CopyFrom, MoveFrom, coordinate access (At, SetAt,
// RefAt, Linear, Coords) and every shape change are serialized by the
// tensor's RWMutex. Linear access (Get, Set, Ref) and iterator stepping are
// lock-free and must be synchronized by the caller against shape changes.
//
// Example:
//
//	t, _ := tensor.New[int]([2]int{3, 4})
//	_ = t.SetAt([2]int{1, 2}, 7)
//	v, _ := t.Get(7) // 1*1 + 2*3 = 7
type Tensor[T any, D Dims, A Allocator[T]] struct {
	mu       sync.RWMutex
	dims     D
	size     int
	data     []T
	alloc    A
	version  atomic.Uint64
	released atomic.Bool
}

// New creates a tensor with the given extents backed by HeapAllocator.
// All elements start at the zero value of T.
//
// Example:
//
//	m, err := tensor.New[int]([2]int{10, 10})
func New[T any, D Dims](dims D) (*Tensor[T, D, HeapAllocator[T]], error) {
	return NewWithAllocator[T](dims, HeapAllocator[T]{})
}

// MustNew is like New but panics if the extents are invalid.
func MustNew[T any, D Dims](dims D) *Tensor[T, D, HeapAllocator[T]] {
	t, err := New[T](dims)
	if err != nil {
		panic(err)
	}
	return t
}

// NewWithAllocator creates a tensor whose storage comes from alloc.
func NewWithAllocator[T any, D Dims, A Allocator[T]](dims D, alloc A) (*Tensor[T, D, A], error) {
	if _, err := numElements(dims); err != nil {
		return nil, err
	}

	t := &Tensor[T, D, A]{
		dims:  dims,
		alloc: alloc,
	}
	t.forceSize()
	t.data = alloc.Allocate(t.size)
	return t, nil
}

// Clone returns a deep copy of the tensor.
// The source is locked exclusively for the duration of the copy.
func (t *Tensor[T, D, A]) Clone() *Tensor[T, D, A] {
	t.mu.Lock()
	defer t.mu.Unlock()

	c := &Tensor[T, D, A]{
		dims:  t.dims,
		alloc: t.alloc,
	}
	c.forceSize()
	c.data = c.alloc.Allocate(c.size)
	copy(c.data, t.data)
	return c
}

// Move transfers the storage of t into a new tensor.
// t is left empty: all extents 0, Size() == 0, outstanding iterators invalidated.
func (t *Tensor[T, D, A]) Move() *Tensor[T, D, A] {
	t.mu.Lock()
	defer t.mu.Unlock()

	m := &Tensor[T, D, A]{
		dims:  t.dims,
		data:  t.data,
		alloc: t.alloc,
	}
	m.forceSize()
	t.empty()
	return m
}

// CopyFrom replaces the contents of t with a deep copy of src.
//
// src is read under its shared lock; t is then updated under its exclusive
// lock. The two locks are never held together, so concurrent
// a.CopyFrom(b) and b.CopyFrom(a) cannot deadlock. t adopts the allocator of src.
func (t *Tensor[T, D, A]) CopyFrom(src *Tensor[T, D, A]) {
	if t == src {
		return
	}

	src.mu.RLock()
	dims, alloc := src.dims, src.alloc
	data := alloc.Allocate(len(src.data))
	copy(data, src.data)
	src.mu.RUnlock()

	t.mu.Lock()
	defer t.mu.Unlock()
	t.install(dims, data, alloc)
}

// MoveFrom replaces the contents of t with the storage of src and leaves
// src empty. src is locked exclusively since it is written.
func (t *Tensor[T, D, A]) MoveFrom(src *Tensor[T, D, A]) {
	if t == src {
		return
	}

	src.mu.Lock()
	dims, data, alloc := src.dims, src.data, src.alloc
	src.empty()
	src.mu.Unlock()

	t.mu.Lock()
	defer t.mu.Unlock()
	t.install(dims, data, alloc)
}

// Release returns the storage to the allocator and marks the tensor destroyed.
// Iterators issued by t fail with ErrSourceDestroyed afterwards.
// A released tensor is empty and may be revived by CopyFrom or MoveFrom.
func (t *Tensor[T, D, A]) Release() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.released.Load() {
		return
	}
	t.alloc.Deallocate(t.data)
	t.empty()
	t.released.Store(true)
	t.version.Add(1)
}

// install swaps in new storage. Caller holds the exclusive lock.
func (t *Tensor[T, D, A]) install(dims D, data []T, alloc A) {
	t.alloc.Deallocate(t.data)
	t.dims = dims
	t.data = data
	t.alloc = alloc
	t.released.Store(false)
	t.forceSize()
}

// empty drops storage without deallocating it. Caller holds the exclusive lock.
func (t *Tensor[T, D, A]) empty() {
	var zero D
	t.dims = zero
	t.data = nil
	t.forceSize()
}

// Size returns the cached element count.
func (t *Tensor[T, D, A]) Size() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.size
}

// Rank returns the number of axes.
func (t *Tensor[T, D, A]) Rank() int {
	var d D
	return len(d)
}

// Dimensions returns a copy of the extents.
func (t *Tensor[T, D, A]) Dimensions() D {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.dims
}

// Version returns the current iterator version.
func (t *Tensor[T, D, A]) Version() uint64 {
	return t.version.Load()
}

// Data returns a copy of the elements in linear order.
func (t *Tensor[T, D, A]) Data() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Clone(t.data)
}

// ForceSize recomputes the element count from the extents.
// If the count changed, every outstanding iterator is invalidated.
func (t *Tensor[T, D, A]) ForceSize() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.forceSize()
}

func (t *Tensor[T, D, A]) forceSize() int {
	n := product(t.dims)
	if n != t.size {
		t.version.Add(1)
	}
	t.size = n
	return n
}

// InvalidateIterators revokes every outstanding iterator without touching
// shape or data. Use it before an in-place rewrite iterators cannot detect.
func (t *Tensor[T, D, A]) InvalidateIterators() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.version.Add(1)
}

// Reshape changes the extents while keeping the element count and the data.
// Iterators stay valid since no linear position moves.
func (t *Tensor[T, D, A]) Reshape(dims D) error {
	n, err := numElements(dims)
	if err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if n != t.size {
		return fmt.Errorf("%w: cannot reshape %v (%d elements) to %v (%d elements)",
			ErrBadShape, t.dims, t.size, dims, n)
	}
	t.dims = dims
	t.forceSize()
	return nil
}

// Resize reallocates the tensor to new extents. Elements whose coordinate
// exists in both shapes keep their value; new elements are zero.
// Iterators are invalidated when the element count changes.
func (t *Tensor[T, D, A]) Resize(dims D) error {
	n, err := numElements(dims)
	if err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	data := t.alloc.Allocate(n)
	for i := 0; i < n; i++ {
		c := coordsOf(dims, i)
		if !contains(t.dims, c) {
			continue
		}
		j, _ := linearIndex(t.dims, c)
		data[i] = t.data[j]
	}
	t.alloc.Deallocate(t.data)
	t.dims = dims
	t.data = data
	t.forceSize()
	return nil
}

// Get returns the element at linear index i.
// Lock-free: the caller synchronizes against concurrent shape changes.
func (t *Tensor[T, D, A]) Get(i int) (T, error) {
	p, err := t.Ref(i)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// Set stores v at linear index i. Lock-free like Get.
func (t *Tensor[T, D, A]) Set(i int, v T) error {
	p, err := t.Ref(i)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Ref returns a pointer to the element at linear index i. Lock-free like Get.
// The pointer is only meaningful until the next shape change.
func (t *Tensor[T, D, A]) Ref(i int) (*T, error) {
	if i < 0 || i >= t.size {
		return nil, fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, i, t.size)
	}
	return &t.data[i], nil
}

// Linear returns the linear index of a coordinate.
func (t *Tensor[T, D, A]) Linear(coords D) (int, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return linearIndex(t.dims, coords)
}

// Coords returns the coordinate of linear index i.
func (t *Tensor[T, D, A]) Coords(i int) (D, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if i < 0 || i >= t.size {
		var zero D
		return zero, fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, i, t.size)
	}
	return coordsOf(t.dims, i), nil
}

// At returns the element at the given coordinate.
//
// Example:
//
//	v, err := m.At([2]int{1, 2})
func (t *Tensor[T, D, A]) At(coords D) (T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	i, err := linearIndex(t.dims, coords)
	if err != nil {
		var zero T
		return zero, err
	}
	return t.data[i], nil
}

// SetAt stores v at the given coordinate.
// It takes the shared lock like At: the lock guards the index computation
// against shape changes, not concurrent writers of the same element.
func (t *Tensor[T, D, A]) SetAt(coords D, v T) error {
	t.mu.RLock()
	defer t.mu.RUnlock()

	i, err := linearIndex(t.dims, coords)
	if err != nil {
		return err
	}
	t.data[i] = v
	return nil
}

// RefAt returns a pointer to the element at the given coordinate.
func (t *Tensor[T, D, A]) RefAt(coords D) (*T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	i, err := linearIndex(t.dims, coords)
	if err != nil {
		return nil, err
	}
	return &t.data[i], nil
}

// Begin returns a mutable iterator at the first element.
func (t *Tensor[T, D, A]) Begin() Iterator[T, D, A] {
	return Iterator[T, D, A]{c: t.issue(false)}
}

// End returns a mutable iterator one past the last element.
func (t *Tensor[T, D, A]) End() Iterator[T, D, A] {
	return Iterator[T, D, A]{c: t.issue(true)}
}

// CBegin returns a read-only iterator at the first element.
func (t *Tensor[T, D, A]) CBegin() ConstIterator[T, D, A] {
	return ConstIterator[T, D, A]{c: t.issue(false)}
}

// CEnd returns a read-only iterator one past the last element.
func (t *Tensor[T, D, A]) CEnd() ConstIterator[T, D, A] {
	return ConstIterator[T, D, A]{c: t.issue(true)}
}

// RBegin returns a reverse iterator at the last element.
func (t *Tensor[T, D, A]) RBegin() Reverse[Iterator[T, D, A], T] {
	return MakeReverse[Iterator[T, D, A], T](t.End())
}

// REnd returns a reverse iterator one before the first element.
func (t *Tensor[T, D, A]) REnd() Reverse[Iterator[T, D, A], T] {
	return MakeReverse[Iterator[T, D, A], T](t.Begin())
}

// CRBegin returns a read-only reverse iterator at the last element.
func (t *Tensor[T, D, A]) CRBegin() Reverse[ConstIterator[T, D, A], T] {
	return MakeReverse[ConstIterator[T, D, A], T](t.CEnd())
}

// CREnd returns a read-only reverse iterator one before the first element.
func (t *Tensor[T, D, A]) CREnd() Reverse[ConstIterator[T, D, A], T] {
	return MakeReverse[ConstIterator[T, D, A], T](t.CBegin())
}

// issue stamps a cursor with the current version. Size and version are read
// under the shared lock so End never pairs a stale size with a fresh version.
func (t *Tensor[T, D, A]) issue(atEnd bool) cursor[T, D, A] {
	t.mu.RLock()
	defer t.mu.RUnlock()

	c := cursor[T, D, A]{
		owner:   weak.Make(t),
		version: t.version.Load(),
	}
	if atEnd {
		c.index = t.size
	}
	return c
}

// String returns a short description of the tensor.
func (t *Tensor[T, D, A]) String() string {
	var zero T
	t.mu.RLock()
	defer t.mu.RUnlock()
	return fmt.Sprintf("Tensor[%T]%v (version %d)", zero, t.dims, t.version.Load())
}
