// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"iter"

	"github.com/born-ml/tensore/internal/tensor"
)

// Dims is the constraint for extents arrays: [1]int through [8]int
// (or named types over them). The array length is the rank.
type Dims = tensor.Dims

// Number is the element constraint of the arithmetic range algorithms.
type Number = tensor.Number

// Tensor is a fixed-rank multi-dimensional array.
//
// Example:
//
//	t, _ := tensor.New[float32]([3]int{2, 3, 4})
//	_ = t.SetAt([3]int{1, 2, 3}, 1.5)
type Tensor[T any, D Dims, A Allocator[T]] = tensor.Tensor[T, D, A]

// Errors returned by tensors and iterators. Match them with errors.Is.
var (
	ErrBadShape             = tensor.ErrBadShape
	ErrIndexOutOfRange      = tensor.ErrIndexOutOfRange
	ErrCoordinateOutOfRange = tensor.ErrCoordinateOutOfRange
	ErrIteratorInvalidated  = tensor.ErrIteratorInvalidated
	ErrSourceDestroyed      = tensor.ErrSourceDestroyed
	ErrRangeMismatch        = tensor.ErrRangeMismatch
)

// Creation functions

// New creates a zero-filled tensor backed by HeapAllocator.
//
// Example:
//
//	m, err := tensor.New[int]([2]int{10, 10})
func New[T any, D Dims](dims D) (*Tensor[T, D, HeapAllocator[T]], error) {
	return tensor.New[T](dims)
}

// MustNew is like New but panics on invalid extents.
func MustNew[T any, D Dims](dims D) *Tensor[T, D, HeapAllocator[T]] {
	return tensor.MustNew[T](dims)
}

// NewWithAllocator creates a zero-filled tensor whose storage comes from alloc.
//
// Example:
//
//	pool := tensor.NewPoolAllocator[float64]()
//	t, err := tensor.NewWithAllocator[float64]([2]int{64, 64}, pool)
func NewWithAllocator[T any, D Dims, A Allocator[T]](dims D, alloc A) (*Tensor[T, D, A], error) {
	return tensor.NewWithAllocator[T](dims, alloc)
}

// Strides returns the linear stride of every axis (axis 0 has stride 1).
func Strides[D Dims](dims D) D {
	return tensor.Strides(dims)
}

// Range algorithms

// Iota assigns start, start+1, ... to the elements in [first, last).
func Iota[T Number, D Dims, A Allocator[T]](first, last Iterator[T, D, A], start T) error {
	return tensor.Iota(first, last, start)
}

// Accumulate returns init plus the sum of the elements in [first, last).
//
// Example:
//
//	sum, err := tensor.Accumulate(t.CBegin().Add(s), t.CBegin().Add(e), 0.0)
func Accumulate[T Number, D Dims, A Allocator[T]](first, last ConstIterator[T, D, A], init T) (T, error) {
	return tensor.Accumulate(first, last, init)
}

// Sort orders the elements in [first, last) by cmp.
func Sort[T any, D Dims, A Allocator[T]](first, last Iterator[T, D, A], cmp func(a, b T) int) error {
	return tensor.Sort(first, last, cmp)
}

// Values yields the elements in [first, last); iteration stops after the
// first dereference error, which is yielded with the zero value.
func Values[T any, D Dims, A Allocator[T]](first, last ConstIterator[T, D, A]) iter.Seq2[T, error] {
	return tensor.Values(first, last)
}
