// Package sim provides an in-memory tiled-container allocator implementing
// tiler.Ops. It models the container as an occupancy grid of slots, places
// band-aligned rectangular areas first-fit top-left, and owns group contexts
// with their permanent reservation lists.
//
// The simulator backs the package tests and the tilerctl CLI; it performs
// real geometric placement and release, but no hardware programming.
package sim
