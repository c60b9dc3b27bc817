package reserve

import (
	"github.com/tilekit/tilekit/internal/geom"
)

// separate plans independent areas for the two NV12 planes: the 8-bit plane
// at the request's native offset, width, and band, then the 16-bit plane at
// half of each (the chroma plane is always half resolution), bounded by what
// the 8-bit plane achieved so both planes commit the same count.
//
// The returned area is three times the 16-bit plane's scan area — one 8-bit
// area plus the quarter-size 16-bit area, expressed against the half-width
// scan. Returns (0, 0) when either plane fits nothing.
func (r *Reserver) separate(o, w, a, n int) (count, area int) {
	e := geom.AlignUp(w, a)

	n8, _, _ := r.bestPack(o, w, e, r.band8, n)
	if n8 == 0 {
		return 0, 0
	}
	n16, ar16, _ := r.bestPack(o/2, (w+1)/2, e/2, r.band16, n8)
	if n16 == 0 {
		return 0, 0
	}
	return n16, ar16 * 3
}
