package reserve

import (
	"github.com/tilekit/tilekit/internal/geom"
)

// bestPack finds the largest run of identical blocks that can be laid next to
// each other at one uniform row stride. Blocks sit at offsets o, o+e, o+2e, …
// where e is the effective pitch (block width rounded up to alignment); the
// run is valid while every block fits in the container and the row stride,
// defined as AlignUp(o+w, b), stays the same for all of them:
//
//	AlignUp(o+w, b) == AlignUp(o + (m-1)*e + w, b) - AlignDown(o + (m-1)*e, b)
//
// Among valid run lengths it keeps the one with the best density m*w/area —
// a shorter run can win when a stride jump would waste area.
//
// Returns the chosen count, the area width it needs, and the density score.
// If not even one block fits, count and area are zero: no packing is
// possible at this offset.
func (r *Reserver) bestPack(o, w, e, b, maxN int) (n, area int, eff uint32) {
	stride := geom.AlignUp(o+w, b)
	ar := stride
	for m := 0; m < maxN &&
		o+m*e+w <= r.width &&
		stride == geom.AlignUp(ar-o-m*e, b); {
		m++
		cur := uint32(m*w) * 1024 / uint32(ar)
		if cur > eff {
			eff = cur
			n = m
			area = ar
		}
		ar = geom.AlignUp(o+m*e+w, b)
	}
	return n, area, eff
}
