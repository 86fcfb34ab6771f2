// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/tensore/internal/tensor"

// Iterator is a random-access iterator that reads and writes elements.
// See Tensor.Begin and Tensor.End.
type Iterator[T any, D Dims, A Allocator[T]] = tensor.Iterator[T, D, A]

// ConstIterator is the read-only counterpart of Iterator.
// See Tensor.CBegin and Tensor.CEnd.
type ConstIterator[T any, D Dims, A Allocator[T]] = tensor.ConstIterator[T, D, A]

// RandomAccess is the iterator shape Reverse adapts.
type RandomAccess[I any, T any] = tensor.RandomAccess[I, T]

// Reverse walks a random-access iterator backwards.
// See Tensor.RBegin and Tensor.REnd.
type Reverse[I RandomAccess[I, T], T any] = tensor.Reverse[I, T]

// MakeReverse wraps a forward iterator so that it walks backwards.
// MakeReverse(t.End()) dereferences the last element.
func MakeReverse[I RandomAccess[I, T], T any](base I) Reverse[I, T] {
	return tensor.MakeReverse[I, T](base)
}
