package gc_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tangzhangming/tracegc/gc"
)

// TestBlockCollectDefersCollect verifies that a Collect call started while
// the gate is held does not proceed until UnlockCollect runs.
func TestBlockCollectDefersCollect(t *testing.T) {
	c := gc.New()
	root, err := c.AllocRoot(8)
	require.NoError(t, err)
	c.DeleteRoot(root)

	c.BlockCollect()

	done := make(chan struct{})
	go func() {
		require.NoError(t, c.Collect())
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("Collect must not proceed while the gate is held")
	case <-time.After(50 * time.Millisecond):
	}

	c.UnlockCollect()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Collect did not proceed after UnlockCollect")
	}
	require.Equal(t, 0, c.Count())
}

func TestConcurrentAllocAndEdgesAreRaceFree(t *testing.T) {
	c := gc.New()
	root, err := c.AllocRoot(8)
	require.NoError(t, err)

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			addr, err := c.Alloc(8)
			require.NoError(t, err)
			require.NoError(t, c.AddEdge(root, addr))
		}()
	}
	wg.Wait()

	require.NoError(t, c.Collect())
	require.Equal(t, workers+1, c.Count())
}
