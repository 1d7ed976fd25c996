package workpool_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/arcweld/slicecore/workpool"
	"github.com/stretchr/testify/require"
)

func TestMapPreservesOrder(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8}
	results, err := workpool.Map(context.Background(), 3, items, func(_ context.Context, n int) (int, error) {
		return n * n, nil
	})
	require.NoError(t, err)
	require.Equal(t, []int{1, 4, 9, 16, 25, 36, 49, 64}, results)
}

func TestMapPropagatesError(t *testing.T) {
	boom := errors.New("boom")
	items := []int{1, 2, 3}
	_, err := workpool.Map(context.Background(), 2, items, func(_ context.Context, n int) (int, error) {
		if n == 2 {
			return 0, boom
		}
		return n, nil
	})
	require.ErrorIs(t, err, boom)
}

func TestEachRunsOverAllItems(t *testing.T) {
	items := []int{0, 1, 2, 3, 4}
	seen := make([]bool, len(items))
	var mu sync.Mutex
	err := workpool.Each(context.Background(), 4, items, func(_ context.Context, i int) error {
		mu.Lock()
		seen[i] = true
		mu.Unlock()
		return nil
	})
	require.NoError(t, err)
	for _, s := range seen {
		require.True(t, s)
	}
}
