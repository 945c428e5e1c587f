package gc_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tangzhangming/tracegc/gc"
)

func TestWithMarkStepBudgetIgnoresNonPositive(t *testing.T) {
	c := gc.New(gc.WithMarkStepBudget(0))
	// WithMarkStepBudget ignores n <= 0, so the default budget stays in
	// place and one StepMark over a single root drains the frontier and
	// finishes the cycle.
	_, err := c.AllocRoot(8)
	require.NoError(t, err)
	c.StartIncrementalMark()
	require.NoError(t, c.StepMark())
	require.False(t, c.IsMarking())
	require.Equal(t, 1, c.Count())
}

func TestWithAllocatorIsUsed(t *testing.T) {
	var called uintptr
	alloc := gc.AllocatorFunc(func(size uintptr) ([]byte, error) {
		called = size
		return make([]byte, size), nil
	})
	c := gc.New(gc.WithAllocator(alloc))
	_, err := c.Alloc(64)
	require.NoError(t, err)
	require.EqualValues(t, 64, called)
}

func TestWithBackgroundCadenceOverridesDefaults(t *testing.T) {
	c := gc.New(gc.WithBackgroundCadence(5, 2*time.Millisecond))
	c.StartBackground(0, 0) // zero values here mean "use configured cadence"
	defer func() { require.NoError(t, c.StopBackground()) }()
	require.True(t, c.IsBackgroundRunning())
}
