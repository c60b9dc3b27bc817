package tiler

// Group is the per-(process, group) reservation context. It is owned by the
// Ops implementation; the reservation core only appends to and reads the
// permanent reservation list it exposes.
type Group interface {
	// Reserved returns the group's permanent reservation list.
	Reserved() *List
}

// Ops is the allocator the reservation core drives. Implementations carve
// areas out of a fixed-size tiled container and own all group bookkeeping.
// Implementations must serialize mutations per group; the core does no
// locking of its own.
type Ops interface {
	// Container returns the tiling surface dimensions in slots.
	Container() (width, height int)

	// Geometry reports the slot geometry for a format.
	Geometry(f Format) Geometry

	// Normalize converts a pixel-unit request to slot units. align and offs
	// are in bytes and may be adjusted (the returned Normalized holds the
	// final values, with Offs < Align). Unsupported combinations return an
	// error.
	Normalize(f Format, width, height, align, offs int) (Normalized, error)

	// Lay2D reserves n w×h blocks at uniform stride in one area, with the
	// first block at offset offs (slots) within the band-aligned area.
	// Resulting area handles are appended to out. Returns the number of
	// blocks reserved, or an error if the area cannot be placed.
	Lay2D(f Format, n, w, h, band, align, offs int, g Group, out *List) (int, error)

	// LayNV12 reserves n NV12 block pairs co-packed in shared areas of the
	// given slot width, committing directly to the group. packing holds one
	// Pair per block. Returns the number of pairs reserved.
	LayNV12(n, area, w, h int, g Group, packing []Pair) (int, error)

	// Release frees every area in list and empties it. Releasing an empty
	// list is a no-op.
	Release(list *List)

	// GetGroup returns the reservation context for (pid, gid), creating it
	// if needed, or nil if no context can be provided. Each successful
	// GetGroup must be balanced by one PutGroup.
	GetGroup(pid Process, gid uint32) Group

	// PutGroup releases a context obtained from GetGroup. It does not
	// release the group's reservations.
	PutGroup(g Group)

	// AddReserved moves every area in list into g's permanent reservation
	// list.
	AddReserved(list *List, g Group)
}
