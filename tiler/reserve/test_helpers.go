package reserve

import (
	"github.com/tilekit/tilekit/internal/geom"
	"github.com/tilekit/tilekit/tiler"
)

// fakeOps is a scriptable tiler.Ops for orchestrator tests. Every call is
// recorded, and individual Lay2D/LayNV12 invocations can be made to fail by
// zero-based call index.
type fakeOps struct {
	width, height int

	fail2D   map[int]bool // Lay2D call index -> fail
	failNV12 map[int]bool // LayNV12 call index -> fail
	normErr  error
	noGroup  bool

	lay2D    []lay2DCall
	layNV12  []layNV12Call
	released [][]tiler.Area
	gets     int
	puts     int
	adds     int

	group *fakeGroup
}

type lay2DCall struct {
	f       tiler.Format
	n, w, h int
	band    int
	align   int
	offs    int
}

type layNV12Call struct {
	n, area, w, h int
	packing       []tiler.Pair
}

// fakeArea is the opaque handle the fake hands out, tagged with the call
// that produced it.
type fakeArea struct {
	id int
	f  tiler.Format
	n  int
}

type fakeGroup struct {
	reserved tiler.List
}

func (g *fakeGroup) Reserved() *tiler.List { return &g.reserved }

func newFakeOps() *fakeOps {
	return &fakeOps{
		width:    256,
		height:   128,
		fail2D:   make(map[int]bool),
		failNV12: make(map[int]bool),
		group:    &fakeGroup{},
	}
}

func (f *fakeOps) Container() (int, int) { return f.width, f.height }

func (f *fakeOps) Geometry(ft tiler.Format) tiler.Geometry {
	switch ft {
	case tiler.Fmt8Bit:
		return tiler.Geometry{SlotW: 64, SlotH: 64, BPP: 1}
	case tiler.Fmt16Bit:
		return tiler.Geometry{SlotW: 32, SlotH: 32, BPP: 2}
	case tiler.Fmt32Bit:
		return tiler.Geometry{SlotW: 32, SlotH: 32, BPP: 4}
	}
	return tiler.Geometry{}
}

func (f *fakeOps) Normalize(ft tiler.Format, width, height, align, offs int) (tiler.Normalized, error) {
	if f.normErr != nil {
		return tiler.Normalized{}, f.normErr
	}
	g := f.Geometry(ft)
	row := g.SlotRowBytes()
	a := align / row
	if a == 0 {
		a = 1
	}
	return tiler.Normalized{
		W:     geom.CeilDiv(width, g.SlotW),
		H:     geom.CeilDiv(height, g.SlotH),
		Band:  tiler.PageSize / row,
		Align: a,
		Offs:  (offs / row) % a,
	}, nil
}

func (f *fakeOps) Lay2D(ft tiler.Format, n, w, h, band, align, offs int, g tiler.Group, out *tiler.List) (int, error) {
	idx := len(f.lay2D)
	f.lay2D = append(f.lay2D, lay2DCall{f: ft, n: n, w: w, h: h, band: band, align: align, offs: offs})
	if n <= 0 {
		return 0, tiler.ErrUnsupported
	}
	if f.fail2D[idx] {
		return 0, tiler.ErrNoRoom
	}
	out.Add(&fakeArea{id: idx, f: ft, n: n})
	return n, nil
}

func (f *fakeOps) LayNV12(n, area, w, h int, g tiler.Group, packing []tiler.Pair) (int, error) {
	idx := len(f.layNV12)
	f.layNV12 = append(f.layNV12, layNV12Call{n: n, area: area, w: w, h: h, packing: packing})
	if f.failNV12[idx] {
		return 0, tiler.ErrNoRoom
	}
	g.Reserved().Add(&fakeArea{id: idx, n: n})
	return n, nil
}

func (f *fakeOps) Release(list *tiler.List) {
	if list.Empty() {
		return
	}
	f.released = append(f.released, list.Take())
}

func (f *fakeOps) GetGroup(pid tiler.Process, gid uint32) tiler.Group {
	if f.noGroup {
		return nil
	}
	f.gets++
	return f.group
}

func (f *fakeOps) PutGroup(g tiler.Group) { f.puts++ }

func (f *fakeOps) AddReserved(list *tiler.List, g tiler.Group) {
	f.adds++
	g.Reserved().Append(list)
}

// committedPairs sums the pair counts behind every handle in the group's
// permanent list. Chroma-plane handles are skipped: a separate-path commit
// adds one 8-bit and one 16-bit handle for the same pairs.
func (f *fakeOps) committedPairs() int {
	total := 0
	for _, h := range f.group.reserved.Areas() {
		if a, ok := h.(*fakeArea); ok && a.f != tiler.Fmt16Bit {
			total += a.n
		}
	}
	return total
}
