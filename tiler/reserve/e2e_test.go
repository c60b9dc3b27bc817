package reserve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tilekit/tilekit/tiler"
	"github.com/tilekit/tilekit/tiler/reserve"
	"github.com/tilekit/tilekit/tiler/sim"
)

// TestEndToEnd_NV12Together drives a QCIF NV12 request through a real
// container: nine pairs co-pack into a single 64x3 slot area.
func TestEndToEnd_NV12Together(t *testing.T) {
	c := sim.New(0, 0)
	r := reserve.New(c)

	r.ReserveNV12(9, 176, 144, 256, 128, 1, "e2e", true)

	areas := c.ReservedAreas("e2e", 1)
	require.Len(t, areas, 1)
	a := areas[0]
	assert.True(t, a.NV12)
	assert.Equal(t, 64, a.W)
	assert.Equal(t, 3, a.H)
	assert.Equal(t, 9, a.Blocks)

	st := c.Stats()
	assert.Equal(t, 192, st.SlotsUsed)
	assert.Equal(t, 1, st.Groups)
}

// TestEndToEnd_NV12WidePairs: 63-slot blocks only co-pack one pair per
// doubled area, so three buffers cost three 128x2 areas laid left to right
// and then onto the next free rows.
func TestEndToEnd_NV12WidePairs(t *testing.T) {
	c := sim.New(0, 0)
	r := reserve.New(c)

	r.ReserveNV12(3, 4032, 100, 256, 128, 1, "e2e", true)

	areas := c.ReservedAreas("e2e", 1)
	require.Len(t, areas, 3)
	for _, a := range areas {
		assert.True(t, a.NV12)
		assert.Equal(t, 128, a.W)
		assert.Equal(t, 2, a.H)
		assert.Equal(t, 1, a.Blocks)
	}
	assert.Equal(t, 0, areas[0].X)
	assert.Equal(t, 128, areas[1].X)
	assert.Equal(t, 0, areas[2].X)
	assert.Equal(t, 2, areas[2].Y)

	assert.Equal(t, 768, c.Stats().SlotsUsed)
}

// TestEndToEnd_NV12SeparatePlanes: with co-packing off the same QCIF request
// reserves one full-resolution 8-bit area and one half-resolution 16-bit
// area, committed together.
func TestEndToEnd_NV12SeparatePlanes(t *testing.T) {
	c := sim.New(0, 0)
	r := reserve.New(c)

	r.ReserveNV12(9, 176, 144, 256, 128, 1, "e2e", false)

	areas := c.ReservedAreas("e2e", 1)
	require.Len(t, areas, 2)

	luma, chroma := areas[0], areas[1]
	assert.Equal(t, tiler.Fmt8Bit, luma.Format)
	assert.Equal(t, 64, luma.W)
	assert.Equal(t, 3, luma.H)
	assert.Equal(t, 9, luma.Blocks)

	assert.Equal(t, tiler.Fmt16Bit, chroma.Format)
	assert.Equal(t, 32, chroma.W)
	assert.Equal(t, 3, chroma.H)
	assert.Equal(t, 9, chroma.Blocks)

	assert.Equal(t, 288, c.Stats().SlotsUsed)
}

// TestEndToEnd_BlocksAndUnreserve: ten 65-slot blocks pack three per
// 256-slot area; the trailing single block is never worth an area of its
// own, so nine land. Unreserving frees every slot and drops the group.
func TestEndToEnd_BlocksAndUnreserve(t *testing.T) {
	c := sim.New(0, 0)
	r := reserve.New(c)

	r.ReserveBlocks(10, tiler.Fmt8Bit, 4160, 64, 64, 0, 7, "e2e")

	areas := c.ReservedAreas("e2e", 7)
	require.Len(t, areas, 3)
	total := 0
	for _, a := range areas {
		assert.Equal(t, 256, a.W)
		assert.Equal(t, 1, a.H)
		total += a.Blocks
	}
	assert.Equal(t, 9, total)
	assert.Equal(t, 768, c.Stats().SlotsUsed)

	r.UnreserveBlocks(7, "e2e")
	st := c.Stats()
	assert.Zero(t, st.SlotsUsed)
	assert.Zero(t, st.Groups)

	// unreserving again is a no-op
	r.UnreserveBlocks(7, "e2e")
	assert.Zero(t, c.Stats().SlotsUsed)
}
