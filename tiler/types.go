package tiler

// PageSize is the tiler page size in bytes. One band of slots spans one page
// row, and request alignments may not exceed it.
const PageSize = 4096

// Format identifies a tiler container pixel format.
type Format int

const (
	// FmtInvalid is the zero Format and never valid in a request.
	FmtInvalid Format = iota
	// Fmt8Bit is the 8-bit-per-pixel 2D format (NV12 luma plane).
	Fmt8Bit
	// Fmt16Bit is the 16-bit-per-pixel 2D format (NV12 chroma plane).
	Fmt16Bit
	// Fmt32Bit is the 32-bit-per-pixel 2D format.
	Fmt32Bit
)

var formatNames = map[Format]string{
	FmtInvalid: "invalid",
	Fmt8Bit:    "8bit",
	Fmt16Bit:   "16bit",
	Fmt32Bit:   "32bit",
}

func (f Format) String() string {
	if s, ok := formatNames[f]; ok {
		return s
	}
	return "unknown"
}

// Geometry describes one format's slot layout. It is supplied by the
// allocator and immutable for the container's lifetime.
type Geometry struct {
	SlotW int // slot width in pixels
	SlotH int // slot height in pixels
	BPP   int // bytes per pixel
}

// SlotRowBytes returns the byte width of one slot row, the unit used to
// convert byte alignments and offsets into slots.
func (g Geometry) SlotRowBytes() int {
	return g.SlotW * g.BPP
}

// Normalized is a block request converted to slot units by Ops.Normalize.
type Normalized struct {
	W     int // block width in slots
	H     int // block height in slots
	Band  int // slots per page row for this format
	Align int // alignment in slots
	Offs  int // offset in slots, always < Align
}

// Pair gives the start offsets, in slots within one shared area, of an NV12
// block pair: the 8-bit block and its half-resolution 16-bit companion.
type Pair struct {
	Luma   int // 8-bit block offset
	Chroma int // 16-bit block offset
}

// Process identifies the owning process context for group lookups. It is
// opaque to the reservation core and interpreted only by the Ops
// implementation; values must be comparable.
type Process any

// Area is an opaque handle for one reserved container area. The reservation
// core never inspects areas; it only moves them between lists.
type Area any
