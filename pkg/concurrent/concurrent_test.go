package concurrent

import (
	"context"
	"errors"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForEach(t *testing.T) {
	in := make([]int, 100)
	for i := range in {
		in[i] = i
	}

	var sum, inFlight, peak atomic.Int64
	err := ForEach(context.Background(), in, 4, func(_ context.Context, v int) error {
		n := inFlight.Add(1)
		defer inFlight.Add(-1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		sum.Add(int64(v))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4950), sum.Load())
	assert.LessOrEqual(t, peak.Load(), int64(4))
}

func TestForEachReturnsFirstError(t *testing.T) {
	boom := errors.New("boom")
	err := ForEach(context.Background(), []int{1, 2, 3}, 1, func(_ context.Context, v int) error {
		if v == 2 {
			return boom
		}
		return nil
	})
	assert.ErrorIs(t, err, boom)
}

func TestForEachCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int32
	err := ForEach(ctx, []int{1, 2, 3}, 0, func(context.Context, int) error {
		calls.Add(1)
		return nil
	})
	assert.NoError(t, err)
	assert.Zero(t, calls.Load())
}

func TestParallelMap(t *testing.T) {
	out := ParallelMap([]string{"1", "x", "3"}, 2, strconv.Atoi)
	require.Len(t, out, 3)
	assert.Equal(t, 1, out[0].Value)
	assert.Error(t, out[1].Err)
	assert.Equal(t, 3, out[2].Value)
	assert.NoError(t, out[2].Err)
}
