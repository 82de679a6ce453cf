// Package vop converts an orthographic architectural view (floor plan,
// section, elevation, detail) into a per-cell occupancy grid recording
// opaque-geometry coverage, depth, element identity, and classification
// telemetry.
//
// # Overview
//
// A Driver runs one view at a time: it builds a ViewRaster sized to the
// view's crop box, runs the front-to-back Renderer over the view's
// elements (classifying each as TINY/LINEAR/AREAL and rasterizing it
// through the one write funnel, try_write_cell), finalizes the annotation-
// over-model derived layer, and serializes the result.
//
//	cfg := vop.DefaultConfig()
//	driver := vop.NewDriver(cfg)
//	result, err := driver.Run(view, elements, annotations)
//
// Multiple views can be processed concurrently via MultiViewPool, which
// gives every view its own raster, diagnostics tracker, and geometry
// cache — there is no shared mutable state between views.
//
// # Architecture
//
//   - Public API: Config/Option, Driver, Renderer, ViewRaster,
//     MultiViewPool
//   - internal/model: the Element/View capability contracts
//   - internal/geom2d, internal/geom3d: 2D/3D math primitives
//   - internal/classify: TINY/LINEAR/AREAL classification
//   - internal/silhouette: per-element loop extraction strategies
//   - internal/arealextract: the AREAL tiered extraction orchestrator
//   - internal/rasterfill: polygon/edge scan-conversion into cells
//   - internal/tilemap: tile aggregates for the occlusion early-out
//   - internal/cache: the bounded LRU geometry cache
//   - internal/diagnostics: strategy/outcome telemetry and CSV export
//
// # Coordinate System
//
// Cells are addressed row-major, (0,0) at the raster's UV origin. Depth
// (W) increases away from the viewer; a strict less-than test decides
// which element owns a cell.
package vop
