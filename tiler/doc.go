// Package tiler defines the shared data model for tiled-memory block
// reservation: pixel formats and their slot geometry, normalized requests,
// NV12 pair offsets, area handles and reservation lists, group contexts, and
// the Ops interface through which the reservation core drives an allocator.
//
// # Model
//
// The tiling surface is a fixed width × height grid of slots. A block request
// arrives in pixels and is converted to slot units by Ops.Normalize; all
// packing arithmetic after that point is in slots. An NV12 request pairs a
// full-resolution 8-bit plane with a half-resolution 16-bit plane, and the
// two may be "co-packed" into one shared area using precomputed offset pairs.
//
// # Collaborators
//
// The core in tilekit/tiler/reserve never touches container memory itself.
// It plans layouts and asks an Ops implementation to commit them. A complete
// in-memory implementation lives in tilekit/tiler/sim.
package tiler
