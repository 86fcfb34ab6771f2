// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/tensore/internal/tensor"

// Allocator is the element storage contract, used as a type-parameter
// constraint only. Implementations must be usable as their zero value,
// return n zero-valued elements from Allocate, and accept those buffers
// back in Deallocate.
//
// Example:
//
//	type arena[T any] struct{ ... }
//
//	func (a *arena[T]) Allocate(n int) []T  { ... }
//	func (a *arena[T]) Deallocate(buf []T) { ... }
//
//	t, _ := tensor.NewWithAllocator[float32]([2]int{8, 8}, &arena[float32]{})
type Allocator[T any] = tensor.Allocator[T]

// HeapAllocator allocates with make. It is the allocator of New.
type HeapAllocator[T any] = tensor.HeapAllocator[T]

// PoolAllocator recycles buffers by length. A nil *PoolAllocator behaves
// like HeapAllocator.
type PoolAllocator[T any] = tensor.PoolAllocator[T]

// NewPoolAllocator creates an empty pool allocator.
func NewPoolAllocator[T any]() *PoolAllocator[T] {
	return tensor.NewPoolAllocator[T]()
}
