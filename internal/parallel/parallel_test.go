package parallel

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestFor(t *testing.T) {
	cfg := DefaultConfig()

	var counter int64
	n := 1000

	For(n, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	assert.Equal(t, int64(n), counter)
}

func TestFor_Sequential(t *testing.T) {
	cfg := Config{Enabled: false}

	var counter int64
	For(100, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	assert.Equal(t, int64(100), counter)
}

func TestFor_SmallChunk(t *testing.T) {
	// Test that small work units fall back to sequential.
	cfg := DefaultConfig()

	var counter int64
	n := cfg.MinChunkSize - 1

	For(n, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	assert.Equal(t, int64(n), counter)
}

func TestPartition(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		parts int
		want  []Range
	}{
		{"even", 8, 4, []Range{{0, 2}, {2, 4}, {4, 6}, {6, 8}}},
		{"remainder to last", 10, 3, []Range{{0, 3}, {3, 6}, {6, 10}}},
		{"more parts than items", 2, 5, []Range{{0, 1}, {1, 2}}},
		{"zero parts", 5, 0, []Range{{0, 5}}},
		{"empty", 0, 4, []Range{{0, 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Partition(tt.n, tt.parts)
			assert.Equal(t, tt.want, got)

			total := 0
			for _, r := range got {
				total += r.Len()
			}
			assert.Equal(t, tt.n, total)
		})
	}
}

func TestForRanges(t *testing.T) {
	for _, enabled := range []bool{false, true} {
		cfg := Config{Enabled: enabled, NumWorkers: 4}
		ranges := Partition(1000, 8)
		sums := make([]int, len(ranges))

		err := ForRanges(context.Background(), ranges, func(_ context.Context, i int, r Range) error {
			for k := r.Start; k < r.End; k++ {
				sums[i] += k
			}
			return nil
		}, cfg)
		require.NoError(t, err)

		total := 0
		for _, s := range sums {
			total += s
		}
		assert.Equal(t, 999*1000/2, total, "enabled=%v", enabled)
	}
}

func TestForRanges_FirstError(t *testing.T) {
	boom := errors.New("boom")

	for _, enabled := range []bool{false, true} {
		cfg := Config{Enabled: enabled, NumWorkers: 2}
		var calls atomic.Int32

		err := ForRanges(context.Background(), Partition(100, 10), func(ctx context.Context, i int, _ Range) error {
			calls.Add(1)
			if i == 0 {
				return boom
			}
			<-ctx.Done()
			return ctx.Err()
		}, cfg)

		require.ErrorIs(t, err, boom, "enabled=%v", enabled)
		if !enabled {
			assert.Equal(t, int32(1), calls.Load(), "sequential mode stops at the first error")
		}
	}
}

func TestForRanges_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := ForRanges(ctx, Partition(10, 2), func(context.Context, int, Range) error {
		return nil
	}, Config{Enabled: false})
	require.ErrorIs(t, err, context.Canceled)
}

func BenchmarkFor(b *testing.B) {
	cfg := DefaultConfig()
	n := 10000

	b.Run("parallel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var sum int64
			For(n, func(i int) {
				atomic.AddInt64(&sum, int64(i))
			}, cfg)
		}
	})

	b.Run("sequential", func(b *testing.B) {
		cfgSeq := cfg
		cfgSeq.Enabled = false
		for i := 0; i < b.N; i++ {
			var sum int64
			For(n, func(i int) {
				atomic.AddInt64(&sum, int64(i))
			}, cfgSeq)
		}
	})
}
