package model

import (
	"testing"

	"github.com/archvop/vopraster/internal/geom3d"
)

func TestFaceFrontFacing(t *testing.T) {
	forward := geom3d.V3(0, 0, -1)

	facingViewer := Face{Normal: geom3d.V3(0, 0, 1)}
	if !facingViewer.FrontFacing(forward) {
		t.Error("face with normal opposing view direction should be front-facing")
	}

	facingAway := Face{Normal: geom3d.V3(0, 0, -1)}
	if facingAway.FrontFacing(forward) {
		t.Error("face with normal aligned with view direction should not be front-facing")
	}
}

func TestEdgeIsSilhouette(t *testing.T) {
	forward := geom3d.V3(0, 0, -1)
	towardViewer := geom3d.V3(0, 0, 1)
	awayFromViewer := geom3d.V3(0, 0, -1)

	boundary := Edge{}
	if !boundary.IsSilhouette(forward) {
		t.Error("edge with no adjoining face normals should count as a silhouette edge")
	}

	bothFront := Edge{
		FrontNormal: &towardViewer, HasFrontNormal: true,
		BackNormal: &towardViewer, HasBackNormal: true,
	}
	if bothFront.IsSilhouette(forward) {
		t.Error("edge between two front-facing faces should not be a silhouette edge")
	}

	frontAndBack := Edge{
		FrontNormal: &towardViewer, HasFrontNormal: true,
		BackNormal: &awayFromViewer, HasBackNormal: true,
	}
	if !frontAndBack.IsSilhouette(forward) {
		t.Error("edge between a front-facing and back-facing face should be a silhouette edge")
	}
}
