package model

import "github.com/archvop/vopraster/internal/geom3d"

// BBox is a host-reported axis-aligned bounding box, plus an optional
// bbox-local-to-world transform (used by linked/imported elements whose
// native geometry lives in a different coordinate frame than their
// reported box).
type BBox struct {
	Min, Max     geom3d.Point3
	HasTransform bool
	Transform    geom3d.Transform
}

// Corners returns the box's 8 world-space corners, applying Transform
// when present.
func (b BBox) Corners() [8]geom3d.Point3 {
	return BBox3Corners(b.Min, b.Max, b.Transform, b.HasTransform)
}

// GeometryOptions configures a Geometry() call. View is the view to
// extract geometry relative to; it MUST be left nil when querying a
// linked or imported element, matching the host contract's "never pass
// the host view into the geometry options for linked elements" rule —
// doing so yields empty geometry on links.
type GeometryOptions struct {
	View *View
}

// Face is one face of a Solid: an outer boundary loop, zero or more inner
// (hole) loops, and the face's outward normal.
type Face struct {
	Outer  []geom3d.Point3
	Inner  [][]geom3d.Point3
	Normal geom3d.Vec3
}

// FrontFacing reports whether the face's outward normal faces the viewer
// under the given view-forward direction: normal·forward < 0 means the
// normal points back toward the viewer.
func (f Face) FrontFacing(forward geom3d.Vec3) bool {
	return f.Normal.Dot(forward) < 0
}

// Edge is one edge of a Solid, carrying its curve and the outward normals
// of the faces on either side (nil when the edge only borders one face,
// i.e. a true boundary edge).
type Edge struct {
	Curve                        geom3d.Curve
	FrontNormal, BackNormal       *geom3d.Vec3
	HasFrontNormal, HasBackNormal bool
}

// IsSilhouette reports whether this edge is a silhouette edge: either a
// boundary edge (only one adjoining face) or one that separates a
// front-facing face from a back-facing one.
func (e Edge) IsSilhouette(forward geom3d.Vec3) bool {
	if !e.HasFrontNormal || !e.HasBackNormal {
		return true
	}
	frontFacing := e.FrontNormal.Dot(forward) < 0
	backFacing := e.BackNormal.Dot(forward) < 0
	return frontFacing != backFacing
}

// Solid is a closed (or open-shell) 3D geometry primitive made of faces
// and edges.
type Solid struct {
	Faces []Face
	Edges []Edge
}

// Mesh is a triangulated fallback geometry primitive for hosts that
// expose raw meshes rather than B-rep solids.
type Mesh struct {
	Triangles [][3]geom3d.Point3
}

// GeometryPrimitive is one item returned by Element.Geometry: exactly one
// of Solid, Mesh, or Curve is set.
type GeometryPrimitive struct {
	Solid *Solid
	Mesh  *Mesh
	Curve geom3d.Curve
}

// Element is the capability set the extractor needs from any host or
// wrapper element: bounding box, geometry iteration, source identity, and
// an optional location curve (for thin diagonal elements like beams or
// pipes whose silhouette is best approximated as a band around their
// centerline).
type Element interface {
	ID() int
	Category() string
	Source() SourceIdentity
	BoundingBox(view *View) (BBox, bool)
	Geometry(opts GeometryOptions) ([]GeometryPrimitive, error)
	LocationCurve() (geom3d.Curve, bool)
}

// LinkedElement is the capability set added by linked or imported document
// wrappers: a link-to-host transform and the originating document's key.
// The extractor pre-transforms point samples into host space before
// projecting, and must not pass the host view into GeometryOptions when
// querying a LinkedElement.
type LinkedElement interface {
	Element
	LinkTransform() geom3d.Transform
	DocKey() string
}
