package reserve

import (
	"github.com/tilekit/tilekit/internal/geom"
	"github.com/tilekit/tilekit/tiler"
)

// copackEntry is one precomputed special-case layout: a fixed (o, w, a)
// parameter class whose hand-derived packing beats the generators.
type copackEntry struct {
	n       int // pairs in the layout
	o, w, a int // offset, width, alignment the layout was derived for
	area    int // area width in slots
	pairs   []tiler.Pair
}

// copackTable lists the special-case layouts, sorted by increasing area and
// then by decreasing pair count. An entry is usable when its alignment is at
// least as strict as the request's and the request's padded extent stays
// inside the entry's first block.
var copackTable = []copackEntry{
	{
		n: 9, o: 2, w: 4, a: 4, area: 64,
		pairs: []tiler.Pair{
			{Luma: 2, Chroma: 33}, {Luma: 6, Chroma: 35}, {Luma: 10, Chroma: 37}, {Luma: 14, Chroma: 39}, {Luma: 18, Chroma: 41},
			{Luma: 46, Chroma: 23}, {Luma: 50, Chroma: 25}, {Luma: 54, Chroma: 27}, {Luma: 58, Chroma: 29},
		},
	},
	{
		n: 3, o: 0, w: 12, a: 4, area: 64,
		pairs: []tiler.Pair{
			{Luma: 0, Chroma: 32}, {Luma: 12, Chroma: 38}, {Luma: 48, Chroma: 24},
		},
	},
}

// together plans co-packed NV12 pairs in shared areas. Generators run in
// increasing order of area footprint and stop once one satisfies the full
// request; the special-case table may then still override with an equal or
// better count. If nothing places a single pair, the wide-pair generator is
// the last resort. More placed pairs always wins; ties keep the earlier
// candidate.
//
// Returns the winning pair count, area width, and packing (nil when nothing
// fits).
func (r *Reserver) together(o, w, a, n int) (count, area int, packing []tiler.Pair) {
	type generator func(o, w, a, n int, p []tiler.Pair) (int, int)

	gens := []struct {
		max  int
		pack generator
	}{
		{maxProgressive, r.packProgressive},
		{maxProgressive, r.packReverse},
		{maxSimple, r.packSimple},
		{maxButterfly, r.packButterfly},
	}

	for i, g := range gens {
		if i > 0 && count >= n {
			break
		}
		p := make([]tiler.Pair, g.max)
		m, ar := g.pack(o, w, a, n, p)
		if m > count || i == 0 {
			count, area, packing = m, ar, p[:m]
		}
	}

	for _, ent := range copackTable {
		// stop once the table can no longer improve on the generators
		if ent.n < count {
			break
		}
		if ent.a >= a && o+w+geom.AlignUp(ent.o-o, a) <= ent.o+ent.w {
			count = min(ent.n, n)
			area = ent.area
			packing = ent.pairs[:count]
			break
		}
	}

	if count == 0 {
		p := make([]tiler.Pair, maxWide)
		m, ar := r.packWide(o, w, a, n, p)
		count, area, packing = m, ar, p[:m]
	}

	if count == 0 {
		return 0, area, nil
	}
	return count, area, packing
}
