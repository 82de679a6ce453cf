// Package geom3d provides world-space 3D points, vectors, affine
// transforms, and the curve primitives a geometry host exposes for CAD
// import elements (lines, arcs, polylines, cubic splines), tessellated to
// a configurable point budget.
package geom3d
