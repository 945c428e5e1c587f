package gc_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tangzhangming/tracegc/gc"
)

func TestAddRootIsIdempotent(t *testing.T) {
	c := gc.New()
	addr, err := c.Alloc(8)
	require.NoError(t, err)

	c.AddRoot(addr)
	c.AddRoot(addr) // second call must not error or double-register

	ok, err := c.IsRoot(addr)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestDeleteRootOnAbsentAddressIsNoop(t *testing.T) {
	c := gc.New()
	require.NotPanics(t, func() {
		c.DeleteRoot(gc.Addr(0x1234))
	})
}

func TestIsRootOnUnregisteredAddressErrors(t *testing.T) {
	c := gc.New()
	_, err := c.IsRoot(gc.Addr(0x1234))
	require.ErrorIs(t, err, gc.ErrNotRegistered)
}

func TestDeleteRootDropsLiveness(t *testing.T) {
	c := gc.New()
	addr, err := c.AllocRoot(8)
	require.NoError(t, err)

	c.DeleteRoot(addr)
	require.NoError(t, c.Collect())

	require.Equal(t, 0, c.Count(), "object with no remaining roots must be reclaimed")
}
