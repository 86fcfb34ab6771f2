// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/tensore/tensor"
)

// TestAllocatorContract verifies the exported allocators satisfy tensor.Allocator.
func TestAllocatorContract(_ *testing.T) {
	var _ tensor.Allocator[float64] = tensor.HeapAllocator[float64]{}
	var _ tensor.Allocator[float64] = tensor.NewPoolAllocator[float64]()
}

func TestPublicAPI(t *testing.T) {
	m, err := tensor.New[int]([2]int{2, 3})
	require.NoError(t, err)

	require.NoError(t, tensor.Iota(m.Begin(), m.End(), 0))
	assert.Equal(t, [2]int{1, 2}, tensor.Strides(m.Dimensions()))

	v, err := m.At([2]int{1, 2})
	require.NoError(t, err)
	assert.Equal(t, 5, v)

	sum, err := tensor.Accumulate(m.CBegin(), m.CEnd(), 0)
	require.NoError(t, err)
	assert.Equal(t, 15, sum)

	require.NoError(t, tensor.Sort(m.Begin(), m.End(), func(a, b int) int { return cmp.Compare(b, a) }))
	assert.Equal(t, []int{5, 4, 3, 2, 1, 0}, m.Data())

	var got []int
	for v, err := range tensor.Values(m.CBegin(), m.CEnd()) {
		require.NoError(t, err)
		got = append(got, v)
	}
	assert.Equal(t, m.Data(), got)

	r := tensor.MakeReverse[tensor.ConstIterator[int, [2]int, tensor.HeapAllocator[int]], int](m.CEnd())
	v, err = r.Value()
	require.NoError(t, err)
	assert.Equal(t, 0, v)
}

func TestPublicErrors(t *testing.T) {
	_, err := tensor.New[int]([1]int{-1})
	require.ErrorIs(t, err, tensor.ErrBadShape)

	m := tensor.MustNew[int]([1]int{3})
	_, err = m.Get(3)
	require.ErrorIs(t, err, tensor.ErrIndexOutOfRange)
	_, err = m.At([1]int{3})
	require.ErrorIs(t, err, tensor.ErrCoordinateOutOfRange)

	it := m.Begin()
	m.InvalidateIterators()
	_, err = it.Value()
	require.ErrorIs(t, err, tensor.ErrIteratorInvalidated)

	it = m.Begin()
	m.Release()
	_, err = it.Value()
	require.ErrorIs(t, err, tensor.ErrSourceDestroyed)

	a, b := tensor.MustNew[int]([1]int{2}), tensor.MustNew[int]([1]int{2})
	require.ErrorIs(t, tensor.Iota(a.Begin(), b.End(), 0), tensor.ErrRangeMismatch)
}

func TestPublicPoolAllocator(t *testing.T) {
	pool := tensor.NewPoolAllocator[float32]()
	x, err := tensor.NewWithAllocator[float32]([3]int{4, 4, 4}, pool)
	require.NoError(t, err)
	assert.Equal(t, 64, x.Size())

	y := x.Move()
	assert.Equal(t, 0, x.Size())
	assert.Equal(t, 64, y.Size())
	y.Release()
}
