package model

import "github.com/archvop/vopraster/internal/geom3d"

// ViewKind classifies the orthographic view kinds this pipeline supports.
// Non-orthographic views (3D perspective, schedules, sheets) are an
// unsupported-input condition the driver rejects before building a raster.
type ViewKind int

const (
	ViewKindUnsupported ViewKind = iota
	ViewKindFloorPlan
	ViewKindCeilingPlan
	ViewKindSection
	ViewKindElevation
	ViewKindDetail
)

// Orthographic reports whether the view kind is one this pipeline can
// raster; ViewKindUnsupported and any future non-plan/section/elevation
// kind are not.
func (k ViewKind) Orthographic() bool {
	switch k {
	case ViewKindFloorPlan, ViewKindCeilingPlan, ViewKindSection, ViewKindElevation, ViewKindDetail:
		return true
	default:
		return false
	}
}

// View is the geometry host's description of the orthographic view being
// rastered.
type View struct {
	ID   string
	Name string
	Kind ViewKind

	// Scale is the view's drawing scale (e.g. 96 for 1/8"=1'-0"), used to
	// convert a paper-inch cell size into a world-feet cell size.
	Scale float64

	// CropMin/CropMax describe the view's crop box in world space, when
	// the view has one; HasCropBox is false for views relying on a
	// synthetic extent instead.
	HasCropBox      bool
	CropMin, CropMax geom3d.Point3

	// ViewDirection is the direction the camera looks, in world space.
	// ViewBasis derives its forward vector from this and corrects a
	// reversed convention at construction.
	ViewDirection geom3d.Vec3

	// Up is the view's up direction in world space, used together with
	// ViewDirection to derive the right/up/forward triple.
	Up geom3d.Vec3

	// Origin is the view's world-space origin (typically the crop box's
	// near-plane center, or the view origin the host reports).
	Origin geom3d.Point3

	// NearW, FarW bound the view's depth range (W0, Wmax in view-space
	// depth units); used by the skip-outside-view-volume predicate.
	NearW, FarW float64
}
