package reserve

import (
	"github.com/tilekit/tilekit/internal/geom"
	"github.com/tilekit/tilekit/tiler"
)

// ReserveNV12 reserves room for n NV12 buffer pairs of width × height pixels
// (8-bit plane dimensions) for the given group. align and offs are in bytes,
// with offs < align and align below the page size; canTogether permits
// co-packing both planes into shared areas.
//
// Each iteration plans the remaining count both ways, commits whichever
// ranks better, and keeps going until the request is satisfied or no further
// progress is possible. Blocks committed in earlier iterations stay reserved
// even if later iterations under-deliver. Invalid or unsupported requests
// are silent no-ops.
func (r *Reserver) ReserveNV12(n, width, height, align, offs int, gid uint32, pid tiler.Process, canTogether bool) {
	// alignment floor: the widest slot row (128 bytes)
	a := max(tiler.PageSize/min(r.band8, r.band16), align)

	if width <= 0 || height <= 0 || n <= 0 ||
		offs >= align || offs&1 != 0 ||
		align >= tiler.PageSize ||
		n > r.width*r.height/2 {
		return
	}

	norm, err := r.ops.Normalize(tiler.Fmt8Bit, width, height, a, offs)
	if err != nil {
		return
	}
	w, h, band, na, o := norm.W, norm.H, norm.Band, norm.Align, norm.Offs

	g := r.ops.GetGroup(pid, gid)
	if g == nil {
		return
	}
	defer r.ops.PutGroup(g)

	for i := 0; i < n; {
		left := n - i

		nS, areaS := r.separate(o, w, na, left)
		nT, areaT := 0, 0
		var packing []tiler.Pair
		if canTogether {
			nT, areaT, packing = r.together(o, w, na, left)
		}

		res := -1
		if !canTogether || rank(nS, w, areaS, left) > rank(nT, w, areaT, left) {
			res = r.laySeparate(g, nS, w, h, band, na, o)
		}

		// if separate packing failed, still try to pack together
		if res < 0 && canTogether && nT > 0 {
			got, err := r.ops.LayNV12(nT, areaT, w, h, g, packing)
			if err != nil {
				res = -1
			} else {
				res = got
			}
		}

		if res <= 0 {
			break
		}
		i += res
	}
}

// laySeparate commits n blocks on the 8-bit plane and, only if that
// succeeded, the matching half-resolution run on the 16-bit plane. The
// 16-bit areas are matched to the already reserved 8-bit areas, so laying
// them first would pin offsets no 8-bit area may satisfy. Both runs stage
// into a temporary list: if either fails, or the two commit different
// counts, everything staged is released and -1 is returned; otherwise the
// list moves into the group's permanent reservations in one step.
func (r *Reserver) laySeparate(g tiler.Group, n, w, h, band, a, o int) int {
	var staged tiler.List

	res, err := r.ops.Lay2D(tiler.Fmt8Bit, n, w, h, band, a, o, g, &staged)
	if err == nil {
		res2, err2 := r.ops.Lay2D(tiler.Fmt16Bit, n, (w+1)/2, h, band/2, a/2, o/2, g, &staged)
		if err2 == nil && res2 == res {
			r.ops.AddReserved(&staged, g)
			return res
		}
	}
	r.ops.Release(&staged)
	return -1
}

// ReserveBlocks reserves n same-format width × height pixel blocks for the
// given group, packing as many as possible into each uniform-stride area.
// Requests the default allocator already handles well — blocks smaller than
// half the mapping window — are left to it. On a commit failure the
// attempted count shrinks by one and the same area is retried; once an area
// makes no progress the loop stops, keeping whatever earlier iterations
// reserved. Invalid or unsupported requests are silent no-ops.
func (r *Reserver) ReserveBlocks(n int, f tiler.Format, width, height, align, offs int, gid uint32, pid tiler.Process) {
	if width <= 0 || height <= 0 || n <= 0 ||
		align > tiler.PageSize || offs >= align ||
		f < tiler.Fmt8Bit || f > tiler.Fmt32Bit {
		return
	}

	geo := r.ops.Geometry(f)
	if width*geo.BPP*2 <= tiler.PageSize {
		return
	}

	norm, err := r.ops.Normalize(f, width, height, align, offs)
	if err != nil {
		return
	}

	g := r.ops.GetGroup(pid, gid)
	if g == nil {
		return
	}
	defer r.ops.PutGroup(g)

	// effective width of a buffer
	e := geom.AlignUp(norm.W, norm.Align)

	for i := 0; i < n; {
		// blocks to attempt in one area
		nTry := min(n-i, r.width)
		nTry, _, _ = r.bestPack(offs, norm.W, e, norm.Band, nTry)
		if nTry == 0 {
			break
		}

		res := -1
		for nTry > 1 {
			got, err := r.ops.Lay2D(f, nTry, norm.W, norm.H, norm.Band,
				norm.Align, norm.Offs, g, g.Reserved())
			if err == nil {
				res = got
				break
			}
			// reduce the count if the area failed to place
			nTry--
		}

		if res <= 0 {
			break
		}
		i += res
	}
	// blocks reserved so far stay reserved even when the full count failed
}

// UnreserveBlocks releases every area previously reserved for the group.
// Releasing a group with nothing reserved is a no-op.
func (r *Reserver) UnreserveBlocks(gid uint32, pid tiler.Process) {
	g := r.ops.GetGroup(pid, gid)
	if g == nil {
		return
	}
	r.ops.Release(g.Reserved())
	r.ops.PutGroup(g)
}
