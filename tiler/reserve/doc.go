// Package reserve implements block-reservation packing for tiled memory:
// given a batch of fixed-size rectangular blocks, it chooses among competing
// layout algorithms to reserve container area with minimal waste, and drives
// a tiler.Ops allocator to commit the chosen layout.
//
// # NV12 packing
//
// A (w × h) 8-bit area is twice as wide as the matching (w/2 × h/2) 16-bit
// area, so pairs of such blocks — the NV12 luma/chroma scheme — are a common
// case worth packing tightly. Two families of plans compete for each request:
//
//   - separate: the 8-bit and 16-bit planes each get their own uniform-stride
//     run of blocks, planned by the stride scanner.
//   - together: both sub-blocks of every pair share one band-aligned area,
//     laid out by one of five closed-form pattern generators (progressive,
//     reverse-progressive, simple, butterfly, single wide pair) or by a small
//     table of precomputed special-case layouts.
//
// Each outer iteration ranks the two candidates — fewer areas to satisfy the
// remaining count first, pixel density second — and commits the winner,
// rolling back on partial failure so that either both planes of a pair land
// or neither does.
//
// # Purity
//
// All planning is pure integer arithmetic; only Reserver.ReserveNV12,
// Reserver.ReserveBlocks, and Reserver.UnreserveBlocks touch the allocator.
package reserve
