// Package tilemap partitions a raster grid into fixed-size tiles and
// tracks, per tile, how many of its cells are filled and the shallowest
// depth among them. A tile whose every cell is filled is "full"; a
// candidate element whose projected footprint lies entirely within full
// tiles that are all nearer than the element can be skipped without
// touching a single cell — the early-out that makes front-to-back
// rendering cheap once a view is mostly occluded.
//
// The design mirrors the fixed-size tile grid gogpu/gg's parallel
// package uses for pixel tiles, but tracks per-tile occupancy aggregates
// instead of owning pixel buffers: there is nothing here to render in
// parallel, only counters to keep consistent as the single write funnel
// mutates cells.
package tilemap
