package reserve

import (
	"github.com/tilekit/tilekit/tiler"
)

// Reserver drives block-reservation packing against a tiler allocator.
// Construct one with New after the allocator's geometry is known; the
// container dimensions and per-format bands are fixed from then on.
//
// Reserver itself holds no mutable state, so independent requests may run
// concurrently as long as the caller serializes per group id.
type Reserver struct {
	ops tiler.Ops

	width  int // container width in slots
	height int // container height in slots
	band8  int // 8-bit band in slots
	band16 int // 16-bit band in slots
}

// New returns a Reserver bound to ops. Bands derive from the allocator's
// 8-bit and 16-bit geometry.
func New(ops tiler.Ops) *Reserver {
	g8 := ops.Geometry(tiler.Fmt8Bit)
	g16 := ops.Geometry(tiler.Fmt16Bit)
	w, h := ops.Container()
	return &Reserver{
		ops:    ops,
		width:  w,
		height: h,
		band8:  tiler.PageSize / g8.SlotW,
		band16: tiler.PageSize / g16.SlotW / g16.BPP,
	}
}
