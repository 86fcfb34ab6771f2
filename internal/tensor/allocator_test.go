package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Compile-time checks that the supplied allocators satisfy the contract.
var (
	_ Allocator[float32] = HeapAllocator[float32]{}
	_ Allocator[string]  = (*PoolAllocator[string])(nil)
)

func TestHeapAllocator(t *testing.T) {
	var a HeapAllocator[int]
	buf := a.Allocate(5)
	assert.Len(t, buf, 5)
	assert.Equal(t, []int{0, 0, 0, 0, 0}, buf)
	a.Deallocate(buf)
}

func TestPoolAllocator_ReturnsZeroedBuffers(t *testing.T) {
	p := NewPoolAllocator[int]()

	buf := p.Allocate(4)
	require.Len(t, buf, 4)
	for i := range buf {
		buf[i] = i + 1
	}
	p.Deallocate(buf)

	// Reused or fresh, the buffer must come back zeroed.
	again := p.Allocate(4)
	assert.Equal(t, []int{0, 0, 0, 0}, again)

	assert.Len(t, p.Allocate(0), 0)
	p.Deallocate(nil)
}

func TestPoolAllocator_NilIsUsable(t *testing.T) {
	var p *PoolAllocator[int]
	buf := p.Allocate(3)
	assert.Len(t, buf, 3)
	p.Deallocate(buf)

	var zero PoolAllocator[int]
	assert.Len(t, zero.Allocate(2), 2)
}

func TestPoolAllocator_WithTensor(t *testing.T) {
	p := NewPoolAllocator[float64]()

	x, err := NewWithAllocator[float64]([2]int{8, 8}, p)
	require.NoError(t, err)
	require.NoError(t, Iota(x.Begin(), x.End(), 0))

	y := x.Clone()
	x.Release()

	z, err := NewWithAllocator[float64]([2]int{8, 8}, p)
	require.NoError(t, err)
	for _, v := range z.Data() {
		require.Zero(t, v)
	}

	v, err := y.At([2]int{7, 7})
	require.NoError(t, err)
	assert.InDelta(t, 63.0, v, 1e-9)
}
