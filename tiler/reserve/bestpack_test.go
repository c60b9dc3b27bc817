package reserve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tilekit/tilekit/internal/geom"
)

func newTestReserver() *Reserver {
	return New(newFakeOps())
}

// TestBestPack_UniformStrideRun packs nine narrow blocks inside one band:
// every block shares the single-block stride, so the whole run fits in one
// band-wide area.
func TestBestPack_UniformStrideRun(t *testing.T) {
	r := newTestReserver()

	n, area, eff := r.bestPack(2, 3, 4, 64, 9)
	require.Equal(t, 9, n)
	assert.Equal(t, 64, area)
	assert.Equal(t, uint32(9*3*1024/64), eff)

	// uniform-stride invariant: the area the run needs is the aligned
	// extent of its last block
	assert.Equal(t, geom.AlignUp(2+8*4+3, 64), area)
}

// TestBestPack_DensityBeatsCount verifies that scanning keeps the densest
// run, not the longest: blocks one slot wider than a band amortize the
// initial stride overshoot, so three blocks beat one or two.
func TestBestPack_DensityBeatsCount(t *testing.T) {
	r := newTestReserver()

	n, area, eff := r.bestPack(0, 65, 65, 64, 10)
	assert.Equal(t, 3, n)
	assert.Equal(t, 256, area)
	assert.Equal(t, uint32(3*65*1024/256), eff)
}

// TestBestPack_TieKeepsFirst verifies that equal densities keep the earlier
// (smaller) run: band-aligned blocks tie at every count.
func TestBestPack_TieKeepsFirst(t *testing.T) {
	r := newTestReserver()

	n, area, _ := r.bestPack(0, 64, 64, 64, 4)
	assert.Equal(t, 1, n)
	assert.Equal(t, 64, area)
}

// TestBestPack_RespectsBound never exceeds the requested count.
func TestBestPack_RespectsBound(t *testing.T) {
	r := newTestReserver()

	n, area, _ := r.bestPack(2, 3, 4, 64, 2)
	assert.Equal(t, 2, n)
	assert.Equal(t, 64, area)
}

// TestBestPack_NothingFits returns zeros when even a single block exceeds
// the container width: no packing is possible at this offset.
func TestBestPack_NothingFits(t *testing.T) {
	r := newTestReserver()

	n, area, eff := r.bestPack(0, 300, 300, 64, 4)
	assert.Zero(t, n)
	assert.Zero(t, area)
	assert.Zero(t, eff)
}

// TestBestPack_StrideJumpEndsRun verifies the run stops where the row
// stride would change: a second block at pitch 40 would extend into the
// next band and no longer trim back to the single-block stride.
func TestBestPack_StrideJumpEndsRun(t *testing.T) {
	r := newTestReserver()

	n, area, _ := r.bestPack(0, 33, 40, 64, 5)
	assert.Equal(t, 1, n)
	assert.Equal(t, 64, area)
}
