package calculation

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParallelMap_PreservesOrder(t *testing.T) {
	jobs := make([]int, 50)
	for i := range jobs {
		jobs[i] = i
	}

	var inFlight, peak atomic.Int32
	results, err := parallelMap(context.Background(), 3, jobs, func(_ int, j int) (int, error) {
		n := inFlight.Add(1)
		defer inFlight.Add(-1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		return j * j, nil
	})
	require.NoError(t, err)
	require.Len(t, results, 50)
	for i, r := range results {
		assert.Equal(t, i*i, r)
	}
	assert.LessOrEqual(t, peak.Load(), int32(3))
}

func TestParallelMap_FirstErrorByIndex(t *testing.T) {
	errOdd := errors.New("odd job")
	_, err := parallelMap(context.Background(), 4, []int{0, 1, 2, 3}, func(i int, _ int) (int, error) {
		if i%2 == 1 {
			return 0, errOdd
		}
		return i, nil
	})
	assert.ErrorIs(t, err, errOdd)
}

func TestParallelMap_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	_, err := parallelMap(ctx, 2, []int{1, 2}, func(int, int) (int, error) {
		called = true
		return 0, nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}
