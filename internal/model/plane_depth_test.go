package model

import (
	"testing"

	"github.com/archvop/vopraster/internal/geom3d"
)

func TestNewPlaneDepthFlatFacingView(t *testing.T) {
	v := View{
		ViewDirection: geom3d.V3(0, 0, -1),
		Up:            geom3d.V3(0, 1, 0),
		Origin:        geom3d.Pt3(0, 0, 0),
	}
	b := NewViewBasis(v)

	// A horizontal-to-the-view plane at world Z=5, normal pointing at the
	// viewer (+Z), should report constant depth -5 everywhere (forward is
	// -Z, so w = (point - origin)·forward = -5).
	pd, ok := b.NewPlaneDepth(geom3d.V3(0, 0, 1), geom3d.Pt3(0, 0, 5))
	if !ok {
		t.Fatal("expected a usable plane depth for a view-facing face")
	}
	if got := pd.At(3, -2); !approxEq(got, -5, 1e-9) {
		t.Errorf("At(3,-2) = %v, want -5 (flat plane has constant depth)", got)
	}
}

func TestNewPlaneDepthEdgeOnFails(t *testing.T) {
	v := View{
		ViewDirection: geom3d.V3(0, 0, -1),
		Up:            geom3d.V3(0, 1, 0),
		Origin:        geom3d.Pt3(0, 0, 0),
	}
	b := NewViewBasis(v)

	// A plane whose normal is perpendicular to the view direction is
	// edge-on and cannot be linearly interpolated for depth.
	_, ok := b.NewPlaneDepth(geom3d.V3(1, 0, 0), geom3d.Pt3(0, 0, 5))
	if ok {
		t.Error("expected edge-on face to be rejected")
	}
}
