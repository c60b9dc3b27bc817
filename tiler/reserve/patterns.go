package reserve

import (
	"github.com/tilekit/tilekit/internal/geom"
	"github.com/tilekit/tilekit/tiler"
)

// Pattern generators for NV12 co-packing. Each lays up to n (luma, chroma)
// pairs inside one band-aligned area sized to the 8-bit geometry and returns
// how many pairs it placed plus the area width. All blocks within one band
// share the page stride, so the generators never have to reason about stride
// jumps. Pairs are written to p[:count] only; nothing past the returned
// count is touched.
//
// Layouts are sketched with capital letters for 8-bit blocks and lower-case
// letters for the matching 16-bit blocks.

// Per-generator output capacities.
const (
	maxProgressive = 21
	maxSimple      = 8
	maxButterfly   = 20
	maxWide        = 1

	// maxPairs is the largest capacity any generator needs.
	maxPairs = maxProgressive
)

// packProgressive lays pairs greedily left to right: AAAAaaaaBBbbCc. Each
// 8-bit block's 16-bit companion goes into the upper half of the area to its
// right, and the chroma high-water mark becomes the next band's lower bound,
// halving the working span every band.
func (r *Reserver) packProgressive(o, w, a, n int, p []tiler.Pair) (count, area int) {
	area = r.band8
	x := o
	m := 0
	for x+w < area && m < n && m < len(p) {
		// current 8-bit upper bound is the next band's lower bound
		u := (area + x) >> 1
		l := u
		for x+w <= u && m < n && m < len(p) {
			p[m] = tiler.Pair{Luma: x, Chroma: l}
			l = (area + x + w + 1) >> 1
			x = geom.AlignUp(x+w-o, a) + o
			m++
		}
		x = geom.AlignUp(l-o, a) + o // new lower bound
	}
	return m, area
}

// packReverse computes the progressive layout from the mirrored offset and
// reflects every placement through the area midpoint: cCbbBBaaaaAAAA. Useful
// when the residual offset starves the forward variant.
func (r *Reserver) packReverse(o, w, a, n int, p []tiler.Pair) (count, area int) {
	count, area = r.packProgressive((a-(o+w)%a)%a, w, a, n, p)
	for i := 0; i < count; i++ {
		p[i].Luma = area - p[i].Luma - w
		p[i].Chroma = area - p[i].Chroma - (w+1)>>1
	}
	return count, area
}

// packSimple lays pairs at a fixed stride of one alignment step with every
// 16-bit block at half its 8-bit offset: aAbcBdeCfgDhEFGH. Only valid when
// the half-resolution copies can never overlap an 8-bit block, which reduces
// to four offset comparisons; otherwise places nothing.
func (r *Reserver) packSimple(o, w, a, n int, p []tiler.Pair) (count, area int) {
	area = r.band8
	e := (o + w) % a             // end offset
	o1 := (o >> 1) % a           // half offset
	e1 := ((o + w + 1) >> 1) % a // half end offset
	o2 := o1 + a>>2              // 2nd half offset
	e2 := e1 + a>>2              // 2nd half end offset
	m := 0

	// width cannot wrap around the alignment, the half block must land
	// before the block, the 2nd half before or after
	if w < a && o < e && e1 <= o && (e2 <= o || o2 >= e) {
		for x := o; x+w <= area && m < n && m < len(p); x += a {
			p[m] = tiler.Pair{Luma: x, Chroma: x >> 1}
			m++
		}
	}
	return m, area
}

// packButterfly lays alternating pairs growing inward from both ends of the
// area: AAbbaaBB. The feasible pair count comes from the area span and pitch
// in closed form; a negative span means no placement is possible. Placements
// are still bounds-checked so no block ever leaves the area.
func (r *Reserver) packButterfly(o, w, a, n int, p []tiler.Pair) (count, area int) {
	area = r.band8
	e := geom.AlignUp(w, a)
	o2 := area - (a-(o+w)%a)%a // end of the last possible block

	span := min(o2-2*o, 2*o2-o-area)/3 - w
	if span < 0 {
		return 0, area
	}
	m := span/e + 1

	j := 0
	for i := 0; i < m && j < n && j < len(p); i++ {
		lo := o + i*e
		hi := o2 - i*e - w
		if lo+w > area || hi < 0 {
			break
		}
		p[j] = tiler.Pair{Luma: lo, Chroma: (lo + area) >> 1}
		j++
		if j < n && j < len(p) {
			p[j] = tiler.Pair{Luma: hi, Chroma: hi >> 1}
			j++
		}
	}
	return j, area
}

// packWide handles pairs too large to share an area with anything else: aA
// or Aa, at most one pair. It sweeps the 8-bit offset across its
// alignment-allowed positions, trying the 16-bit block immediately before
// the 8-bit block, then immediately after it.
func (r *Reserver) packWide(o, w, a, n int, p []tiler.Pair) (count, area int) {
	w1 := (w + 1) >> 1
	area = geom.AlignUp(o+w, r.band8)

	for d := 0; n > 0 && d+o+w <= area; d += a {
		// fit 16-bit before 8-bit
		o1 := ((o + d) % r.band8) >> 1
		if o1+w1 <= o+d {
			p[0] = tiler.Pair{Luma: o + d, Chroma: o1}
			return 1, area
		}

		// fit 16-bit after 8-bit
		o1 += geom.AlignUp(d+o+w-o1, r.band16)
		if o1+w1 <= area {
			p[0] = tiler.Pair{Luma: o, Chroma: o1}
			return 1, area
		}
	}
	return 0, area
}
