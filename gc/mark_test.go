package gc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// colorOf is a white-box accessor used only by this package's own tests to
// check the tri-color invariant directly, since Color is unexported outside
// the package.
func (c *Collector) colorOf(addr Addr) Color {
	obj := c.lookup(addr)
	if obj == nil {
		return White
	}
	obj.mu.Lock()
	defer obj.mu.Unlock()
	return obj.color
}

// TestNoBlackToWhiteEdgeDuringIncrementalMark is property P3: at any point
// between StartIncrementalMark and the transition to sweep, no Black object
// may have a White out-edge target.
func TestNoBlackToWhiteEdgeDuringIncrementalMark(t *testing.T) {
	c := New(WithMarkStepBudget(1))
	a, err := c.AllocRoot(8)
	require.NoError(t, err)
	b, err := c.Alloc(8)
	require.NoError(t, err)
	require.NoError(t, c.AddEdge(a, b))

	c.StartIncrementalMark()
	for c.IsMarking() {
		require.NoError(t, c.StepMark())
		c.assertNoBlackToWhite(t)
	}
}

func (c *Collector) assertNoBlackToWhite(t *testing.T) {
	t.Helper()
	c.regMu.RLock()
	defer c.regMu.RUnlock()
	for _, obj := range c.objects {
		obj.mu.Lock()
		if obj.color != Black {
			obj.mu.Unlock()
			continue
		}
		for e := range obj.edges {
			child, ok := c.objects[e]
			if !ok {
				continue
			}
			child.mu.Lock()
			childColor := child.color
			child.mu.Unlock()
			require.NotEqual(t, White, childColor, "black object %v has a white edge to %v", obj.addr, e)
		}
		obj.mu.Unlock()
	}
}

// TestIncrementalBarrierRegraysNewEdgeFromBlack is scenario 4: a new,
// White object linked from an already-Black parent mid-cycle must survive
// to the end of that cycle, because the write barrier re-grays it.
func TestIncrementalBarrierRegraysNewEdgeFromBlack(t *testing.T) {
	c := New(WithMarkStepBudget(1))
	a, err := c.AllocRoot(8)
	require.NoError(t, err)
	_, err = c.AllocRoot(8) // B
	require.NoError(t, err)

	c.StartIncrementalMark()
	// Drive A to Black: with a budget of 1 each StepMark scans one root, and
	// the frontier order of A and B follows root-set iteration order, so
	// this takes one or two steps. Each step stops at its budget before
	// checking for an empty frontier, so the cycle is still active after.
	for c.colorOf(a) != Black {
		require.NoError(t, c.StepMark())
	}
	require.Equal(t, Black, c.colorOf(a))

	newObj, err := c.Alloc(8)
	require.NoError(t, err)
	require.Equal(t, White, c.colorOf(newObj))
	require.NoError(t, c.AddEdge(a, newObj))
	require.Equal(t, Gray, c.colorOf(newObj), "write barrier must re-gray the new edge's target")

	require.NoError(t, c.FinishIncrementalMark())
	require.False(t, c.IsMarking())
	require.Equal(t, 3, c.Count(), "A, B, and the barrier-saved newObj must all survive")
}
