package sim

import (
	"sync"

	"github.com/tilekit/tilekit/internal/geom"
	"github.com/tilekit/tilekit/tiler"
)

// Default container dimensions in slots.
const (
	DefaultWidth  = 256
	DefaultHeight = 128
)

// defaultGeometry mirrors common tiler hardware: an 8-bit slot row is 64
// bytes wide for every format, and each slot covers one 4KB page.
var defaultGeometry = map[tiler.Format]tiler.Geometry{
	tiler.Fmt8Bit:  {SlotW: 64, SlotH: 64, BPP: 1},
	tiler.Fmt16Bit: {SlotW: 32, SlotH: 32, BPP: 2},
	tiler.Fmt32Bit: {SlotW: 32, SlotH: 32, BPP: 4},
}

// Area is one placed rectangular region of the container. Handles of this
// type flow through tiler.List as opaque tiler.Area values.
type Area struct {
	Format tiler.Format // FmtInvalid for co-packed NV12 areas
	X, Y   int          // top-left corner in slots
	W, H   int          // extent in slots
	Blocks int          // blocks (or NV12 pairs) the area holds
	NV12   bool
}

// Container is an in-memory tiled-memory allocator. All methods are safe for
// concurrent use; one mutex serializes placement and group bookkeeping.
type Container struct {
	width  int
	height int
	geo    map[tiler.Format]tiler.Geometry
	band8  int

	mu     sync.Mutex
	used   []bool // occupancy grid, width*height slots, row-major
	groups map[groupKey]*group
}

// New returns a container of the given dimensions in slots with the default
// format geometry. Zero or negative dimensions fall back to the defaults.
func New(width, height int) *Container {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	g8 := defaultGeometry[tiler.Fmt8Bit]
	return &Container{
		width:  width,
		height: height,
		geo:    defaultGeometry,
		band8:  tiler.PageSize / g8.SlotRowBytes(),
		used:   make([]bool, width*height),
		groups: make(map[groupKey]*group),
	}
}

// Container returns the surface dimensions in slots.
func (c *Container) Container() (width, height int) {
	return c.width, c.height
}

// Geometry reports the slot geometry for a format. Unknown formats return
// the zero Geometry.
func (c *Container) Geometry(f tiler.Format) tiler.Geometry {
	return c.geo[f]
}

// Normalize converts a pixel-unit request into slot units for f. align and
// offs are in bytes; align must be a power of two and the resulting block
// must fit the container.
func (c *Container) Normalize(f tiler.Format, width, height, align, offs int) (tiler.Normalized, error) {
	g, ok := c.geo[f]
	if !ok || width <= 0 || height <= 0 {
		return tiler.Normalized{}, tiler.ErrUnsupported
	}
	if align <= 0 || !geom.IsPow2(align) || offs < 0 || offs >= align {
		return tiler.Normalized{}, tiler.ErrUnsupported
	}

	row := g.SlotRowBytes()
	w := geom.CeilDiv(width, g.SlotW)
	h := geom.CeilDiv(height, g.SlotH)
	if w > c.width || h > c.height {
		return tiler.Normalized{}, tiler.ErrUnsupported
	}

	a := align / row
	if a == 0 {
		a = 1
	}
	return tiler.Normalized{
		W:     w,
		H:     h,
		Band:  tiler.PageSize / row,
		Align: a,
		Offs:  (offs / row) % a,
	}, nil
}

// Lay2D places one area holding n w×h blocks at uniform stride, the first
// block at offset offs within the band-aligned area. The area handle is
// appended to out on success.
func (c *Container) Lay2D(f tiler.Format, n, w, h, band, align, offs int, g tiler.Group, out *tiler.List) (int, error) {
	if n <= 0 || w <= 0 || h <= 0 || band <= 0 || align <= 0 {
		return 0, tiler.ErrUnsupported
	}

	e := geom.AlignUp(w, align)
	areaW := geom.AlignUp(offs+(n-1)*e+w, band)

	c.mu.Lock()
	defer c.mu.Unlock()

	x, y, ok := c.findFree(areaW, h, band)
	if !ok {
		return 0, tiler.ErrNoRoom
	}
	c.markRect(x, y, areaW, h, true)
	out.Add(&Area{Format: f, X: x, Y: y, W: areaW, H: h, Blocks: n})
	return n, nil
}

// LayNV12 places one shared area of the given slot width holding n co-packed
// NV12 pairs and commits it directly to the group's reservations.
func (c *Container) LayNV12(n, area, w, h int, g tiler.Group, packing []tiler.Pair) (int, error) {
	if n <= 0 || area <= 0 || w <= 0 || h <= 0 || len(packing) < n {
		return 0, tiler.ErrUnsupported
	}
	w1 := (w + 1) >> 1
	for _, p := range packing[:n] {
		if p.Luma < 0 || p.Luma+w > area || p.Chroma < 0 || p.Chroma+w1 > area {
			return 0, tiler.ErrBadPacking
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	x, y, ok := c.findFree(area, h, c.band8)
	if !ok {
		return 0, tiler.ErrNoRoom
	}
	c.markRect(x, y, area, h, true)
	grp, ok := g.(*group)
	if !ok {
		c.markRect(x, y, area, h, false)
		return 0, tiler.ErrUnsupported
	}
	grp.reserved.Add(&Area{X: x, Y: y, W: area, H: h, Blocks: n, NV12: true})
	return n, nil
}

// Release frees every area in list and empties it.
func (c *Container) Release(list *tiler.List) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, h := range list.Take() {
		if a, ok := h.(*Area); ok {
			c.markRect(a.X, a.Y, a.W, a.H, false)
		}
	}
}

// AddReserved moves every staged area in list into g's permanent list.
func (c *Container) AddReserved(list *tiler.List, g tiler.Group) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if grp, ok := g.(*group); ok {
		grp.reserved.Append(list)
	}
}

// Stats summarizes container occupancy for reporting.
type Stats struct {
	SlotsUsed  int
	SlotsTotal int
	Groups     int
}

// Stats returns a point-in-time occupancy summary.
func (c *Container) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := Stats{SlotsTotal: len(c.used), Groups: len(c.groups)}
	for _, u := range c.used {
		if u {
			s.SlotsUsed++
		}
	}
	return s
}

// ReservedAreas returns the areas currently reserved for (pid, gid), in
// reservation order. Returns nil when the group does not exist.
func (c *Container) ReservedAreas(pid tiler.Process, gid uint32) []*Area {
	c.mu.Lock()
	defer c.mu.Unlock()
	grp, ok := c.groups[groupKey{pid: pid, gid: gid}]
	if !ok {
		return nil
	}
	out := make([]*Area, 0, grp.reserved.Len())
	for _, h := range grp.reserved.Areas() {
		if a, ok := h.(*Area); ok {
			out = append(out, a)
		}
	}
	return out
}

// findFree scans top-left first-fit for a free w×h rectangle whose left edge
// is band-aligned. Callers hold c.mu.
func (c *Container) findFree(w, h, band int) (int, int, bool) {
	if w > c.width || h > c.height {
		return 0, 0, false
	}
	for y := 0; y+h <= c.height; y++ {
		for x := 0; x+w <= c.width; x += band {
			if c.rectFree(x, y, w, h) {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}

func (c *Container) rectFree(x, y, w, h int) bool {
	for r := y; r < y+h; r++ {
		row := r * c.width
		for col := x; col < x+w; col++ {
			if c.used[row+col] {
				return false
			}
		}
	}
	return true
}

func (c *Container) markRect(x, y, w, h int, v bool) {
	for r := y; r < y+h; r++ {
		row := r * c.width
		for col := x; col < x+w; col++ {
			c.used[row+col] = v
		}
	}
}
