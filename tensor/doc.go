// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides a fixed-rank, generic multi-dimensional array.
//
// # Overview
//
// A Tensor[T, D, A] stores elements of type T in one contiguous buffer
// obtained from allocator A. D is a fixed-length int array whose length is
// the rank, so the rank is checked by the compiler:
//
//	m, err := tensor.New[int]([2]int{10, 10})   // rank 2
//	_, _ = m.At([2]int{3, 4})                    // ok
//	_, _ = m.At([3]int{3, 4, 5})                 // does not compile
//
// # Layout
//
// Axis 0 varies fastest. For extents (d0, d1, ..., dn) the element at
// coordinate (c0, c1, ..., cn) lives at c0 + c1*d0 + c2*d0*d1 + ...
//
// # Access
//
// Linear access (Get, Set, Ref) is bounds-checked and lock-free; the caller
// synchronizes it against concurrent shape changes. Coordinate access (At,
// SetAt, RefAt) takes the tensor's shared lock per call. Clone, Move,
// CopyFrom and MoveFrom observe a consistent snapshot of their source.
//
// # Iterators
//
// Begin/End, CBegin/CEnd and the reverse variants return small iterator
// values stamped with the tensor version. The version advances whenever the
// element count changes or InvalidateIterators is called; a stale iterator
// then fails with ErrIteratorInvalidated instead of reading stale data:
//
//	it := m.Begin()
//	_ = m.Resize([2]int{20, 20})
//	_, err := it.Value() // errors.Is(err, tensor.ErrIteratorInvalidated)
//
// Iterators hold a weak reference to their tensor. Once the tensor is
// released or collected they fail with ErrSourceDestroyed.
//
// # Allocators
//
// HeapAllocator is the default. PoolAllocator recycles buffers of equal
// length, which pays off when tensors of one shape are cloned repeatedly:
//
//	pool := tensor.NewPoolAllocator[float64]()
//	t, _ := tensor.NewWithAllocator[float64]([3]int{64, 64, 64}, pool)
package tensor
