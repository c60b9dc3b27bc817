package tiler

import "errors"

var (
	// ErrNoRoom indicates the container has no free region that fits the
	// requested area.
	ErrNoRoom = errors.New("tiler: no room in container")

	// ErrUnsupported indicates a format or geometry the allocator cannot
	// normalize (unknown format, non-power-of-two alignment, block larger
	// than the container).
	ErrUnsupported = errors.New("tiler: unsupported format or geometry")

	// ErrBadPacking indicates an NV12 packing that does not fit its
	// declared area.
	ErrBadPacking = errors.New("tiler: packing exceeds area bounds")
)
