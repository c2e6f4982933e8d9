// Package tessella is your in-memory engine for enumerating canonical
// edge-matching mosaics — from single tiles to exponentially large
// assemblies, one doubling at a time.
//
// 🚀 What is tessella?
//
//	A pure, thread-aware combinatorics library that brings together:
//		• Tiling primitives: tiles, rotations, colored sides, boundary edges
//		• Mosaic views: dense grids, quad-packed storage, zero-copy rotations
//		• Canonical sets: boundary-indexed, symmetry-deduplicated collections
//		• Doubling joins: squares → rectangles → squares, in parallel
//		• Builder strategies: materialize, count, or count-with-sample
//
// ✨ Why choose tessella?
//
//   - Canonical by construction – every set holds exactly one
//     representative per rotation orbit, verified by self-checks
//   - Zero-copy composition – rotated views remap coordinates instead of
//     moving cells
//   - Scales past memory – swap the in-memory builder for a counting one
//     and the same pipeline tallies populations it could never hold
//   - Pure Go – no cgo, no hidden deps
//
// Under the hood, everything is organized under five subpackages:
//
//	tiling/    — tiles, colors, sides, rotations & boundary edges
//	mosaic/    — the Mosaic interface, grid & packed storage, rotated views
//	mosaicset/ — canonical square & rectangular sets with boundary indexes
//	builder/   — pluggable shard-based accumulation strategies
//	compose/   — seeding, the doubling joins & the six class pipelines
//
// Quick ASCII example:
//
//	┌────┬────┐    ┌─────────┐    two 1×1 squares glue side by side
//	│ ▴  │  ▴ │ => │ ▴     ▴ │    into one 2×1 rectangle; two 2×1
//	└────┴────┘    └─────────┘    rectangles stack into one 2×2 square
//
// Dive into the package docs for the canonical-orientation rules, the
// lowest-tile tie-breaks, and the builder contract.
//
//	go get github.com/katalvlaran/tessella
package tessella
