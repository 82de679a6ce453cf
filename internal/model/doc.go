// Package model defines the geometry-host contract the rest of the raster
// pipeline is built against: the element capability set (bounding box,
// geometry iteration, optional link/import transform), the view basis that
// projects world space into view UVW, and source identity. These are kept
// in their own package, separate from the public vop package, so that the
// extraction and classification packages (which need the contract) do not
// import the orchestration package (which needs them) — only the leaf
// package is shared.
package model
