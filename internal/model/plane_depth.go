package model

import (
	"math"

	"github.com/archvop/vopraster/internal/geom3d"
)

// PlaneDepth is a linear function w(u,v) = A*u + B*v + C giving the view
// depth of a planar face at any UV coordinate, used to interpolate a
// cell's depth across a face rather than flattening the whole face to a
// single conservative depth.
type PlaneDepth struct {
	A, B, C float64
}

// At evaluates the plane's depth at (u, v).
func (p PlaneDepth) At(u, v float64) float64 {
	return p.A*u + p.B*v + p.C
}

// planeDepthEpsilon is the smallest tolerated |normal·forward| before a
// face is treated as edge-on to the view and unsuitable for depth
// interpolation (the plane equation would divide by ~0).
const planeDepthEpsilon = 1e-9

// NewPlaneDepth derives the plane depth function for a face with the
// given world-space normal passing through the given world-space point,
// under this view basis. Returns ok=false when the face is edge-on to
// the view (normal nearly perpendicular to Forward), in which case the
// caller should fall back to a conservative constant depth instead.
func (b ViewBasis) NewPlaneDepth(normal geom3d.Vec3, point geom3d.Point3) (PlaneDepth, bool) {
	nf := normal.Dot(b.Forward)
	if math.Abs(nf) < planeDepthEpsilon {
		return PlaneDepth{}, false
	}
	nr := normal.Dot(b.Right)
	nu := normal.Dot(b.Up)
	c0 := normal.Dot(point.Sub(b.Origin))

	return PlaneDepth{
		A: -nr / nf,
		B: -nu / nf,
		C: c0 / nf,
	}, true
}
