package model

import (
	"math"

	"github.com/archvop/vopraster/internal/geom2d"
	"github.com/archvop/vopraster/internal/geom3d"
)

// ViewBasis is the orthonormal (right, up, forward) triple and origin that
// project world space into view UVW. Depth increases away from the
// viewer: NewViewBasis detects a ViewDirection reported backwards (its
// symptom is a near plane that reads farther than the far plane under the
// naive convention) and flips forward before deriving right and up from
// it.
type ViewBasis struct {
	Origin  geom3d.Point3
	Right   geom3d.Vec3
	Up      geom3d.Vec3
	Forward geom3d.Vec3
}

// NewViewBasis derives an orthonormal basis from a view's reported
// direction and up vector, re-orthogonalizing Up against Forward via
// Gram-Schmidt to tolerate a host-supplied Up that isn't already
// perpendicular. NearW > FarW signals a reversed ViewDirection and
// flips forward before the rest of the basis is derived from it.
func NewViewBasis(v View) ViewBasis {
	forward := v.ViewDirection.Normalize()
	if v.NearW > v.FarW {
		forward = forward.Mul(-1)
	}
	up := v.Up.Sub(forward.Mul(v.Up.Dot(forward))).Normalize()
	right := forward.Cross(up).Normalize()

	return ViewBasis{
		Origin:  v.Origin,
		Right:   right,
		Up:      up,
		Forward: forward,
	}
}

// WorldToView projects a world-space point into view UVW: U along Right,
// V along Up, W along Forward (depth; larger W is farther from the
// viewer).
func (b ViewBasis) WorldToView(p geom3d.Point3) (u, v, w float64) {
	d := p.Sub(b.Origin)
	return d.Dot(b.Right), d.Dot(b.Up), d.Dot(b.Forward)
}

// WorldToUV projects a world-space point to its 2D UV footprint, dropping
// depth.
func (b ViewBasis) WorldToUV(p geom3d.Point3) geom2d.Point {
	u, v, _ := b.WorldToView(p)
	return geom2d.Pt(u, v)
}

// BBox3Corners returns the 8 corners of an axis-aligned world-space box,
// honoring an optional bbox-local-to-world transform.
func BBox3Corners(min, max geom3d.Point3, xf geom3d.Transform, hasTransform bool) [8]geom3d.Point3 {
	corners := [8]geom3d.Point3{
		{X: min.X, Y: min.Y, Z: min.Z},
		{X: max.X, Y: min.Y, Z: min.Z},
		{X: max.X, Y: max.Y, Z: min.Z},
		{X: min.X, Y: max.Y, Z: min.Z},
		{X: min.X, Y: min.Y, Z: max.Z},
		{X: max.X, Y: min.Y, Z: max.Z},
		{X: max.X, Y: max.Y, Z: max.Z},
		{X: min.X, Y: max.Y, Z: max.Z},
	}
	if !hasTransform {
		return corners
	}
	for i, c := range corners {
		corners[i] = xf.OfPoint(c)
	}
	return corners
}

// UVWFootprint projects 8 world-space corners into view UV and returns
// their 2D bounds plus the nearest (minimum) depth.
func (b ViewBasis) UVWFootprint(corners [8]geom3d.Point3) (uvBounds geom2d.Bounds2D, wMin float64) {
	uvBounds = geom2d.Bounds2D{XMin: math.Inf(1), YMin: math.Inf(1), XMax: math.Inf(-1), YMax: math.Inf(-1)}
	wMin = math.Inf(1)
	for _, c := range corners {
		u, v, w := b.WorldToView(c)
		uvBounds.XMin = math.Min(uvBounds.XMin, u)
		uvBounds.YMin = math.Min(uvBounds.YMin, v)
		uvBounds.XMax = math.Max(uvBounds.XMax, u)
		uvBounds.YMax = math.Max(uvBounds.YMax, v)
		wMin = math.Min(wMin, w)
	}
	return uvBounds, wMin
}
