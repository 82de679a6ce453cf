// Package geom2d provides the 2D math primitives the raster pipeline builds
// on: vectors and points in view UV space, a 2D affine matrix, cell-grid
// bounds, and the PCA-based oriented-extent computation used to classify and
// orient elements that only have an approximate projected footprint.
package geom2d
