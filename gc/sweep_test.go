package gc_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tangzhangming/tracegc/gc"
)

func TestCollectSurfacesFinalizerPanicAndRetriesNextCycle(t *testing.T) {
	c := gc.New()
	attempts := 0
	addr, err := c.AllocManage(8, func(gc.Addr, uintptr) {
		attempts++
		if attempts == 1 {
			panic("boom")
		}
	})
	require.NoError(t, err)

	err = c.Collect()
	require.ErrorIs(t, err, gc.ErrFinalizerPanic)
	require.Equal(t, 1, c.Count(), "the panicking object stays registered for a retry")

	require.NoError(t, c.Collect())
	require.Equal(t, 0, c.Count())
	require.Equal(t, 2, attempts)
	_ = addr
}
