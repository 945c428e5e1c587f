package gc_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tangzhangming/tracegc/gc"
)

// TestPackageLevelAPIMatchesDefault exercises the package-level wrappers
// against the process-wide Default() instance, rather than re-testing
// collector behavior already covered against isolated *Collector values.
func TestPackageLevelAPIMatchesDefault(t *testing.T) {
	before := gc.Count()

	addr, err := gc.AllocRoot(8)
	require.NoError(t, err)
	require.Equal(t, before+1, gc.Count())

	child, err := gc.Alloc(8)
	require.NoError(t, err)
	require.NoError(t, gc.AddEdge(addr, child))

	ok, err := gc.Default().IsRoot(addr)
	require.NoError(t, err)
	require.True(t, ok)

	gc.DeleteRoot(addr)
	require.NoError(t, gc.Collect())
	require.Equal(t, before, gc.Count())
}

func TestDefaultIsASingleton(t *testing.T) {
	require.Same(t, gc.Default(), gc.Default())
}
