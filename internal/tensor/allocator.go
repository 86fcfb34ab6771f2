package tensor

import "sync"

// Allocator is the storage contract for tensor elements.
//
// It is only ever used as a type-parameter constraint, so the allocator is
// chosen at instantiation and checked by the compiler. Implementations must:
//   - be usable as their zero value (a zero Tensor holds one)
//   - return exactly n zero-valued elements from Allocate
//   - accept back in Deallocate any buffer they returned from Allocate
//
// A copy of an allocator value must be able to release buffers allocated by
// the value it was copied from. Clone and Move hand allocators around by value.
type Allocator[T any] interface {
	Allocate(n int) []T
	Deallocate(buf []T)
}

// HeapAllocator allocates with make and leaves reclamation to the GC.
// It is the default allocator of New.
type HeapAllocator[T any] struct{}

// Allocate returns a fresh zeroed slice of length n.
func (HeapAllocator[T]) Allocate(n int) []T {
	return make([]T, n)
}

// Deallocate is a no-op; the GC reclaims the buffer.
func (HeapAllocator[T]) Deallocate([]T) {}

// PoolAllocator recycles buffers by length through sync.Pool.
// It suits workloads that repeatedly clone or resize tensors of the same shape.
//
// A nil *PoolAllocator is valid and behaves like HeapAllocator, which keeps
// the zero value usable as the allocator of New.
type PoolAllocator[T any] struct {
	mu    sync.Mutex
	pools map[int]*sync.Pool
}

// NewPoolAllocator creates an empty pool allocator.
func NewPoolAllocator[T any]() *PoolAllocator[T] {
	return &PoolAllocator[T]{pools: make(map[int]*sync.Pool)}
}

// Allocate returns a zeroed slice of length n, reusing a released one if possible.
func (p *PoolAllocator[T]) Allocate(n int) []T {
	if p == nil || n == 0 {
		return make([]T, n)
	}
	if buf, ok := p.pool(n).Get().(*[]T); ok {
		return *buf
	}
	return make([]T, n)
}

// Deallocate clears buf and keeps it for the next Allocate of the same length.
func (p *PoolAllocator[T]) Deallocate(buf []T) {
	if p == nil || len(buf) == 0 {
		return
	}
	clear(buf)
	p.pool(len(buf)).Put(&buf)
}

func (p *PoolAllocator[T]) pool(n int) *sync.Pool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.pools == nil {
		p.pools = make(map[int]*sync.Pool)
	}
	pl, ok := p.pools[n]
	if !ok {
		pl = &sync.Pool{}
		p.pools[n] = pl
	}
	return pl
}
