package silhouette

import "github.com/archvop/vopraster/internal/model"

// UVW is a view-space point: U/V are the 2D footprint, W is depth
// (increasing away from the viewer).
type UVW struct {
	U, V, W float64
}

// Loop is an ordered list of UVW points describing one silhouette
// contour, tagged with the strategy that produced it.
//
// Open loops (Open == true) carry no fill — they come from CAD curve
// extraction and are stamped as edges only. Closed loops may be holes
// (IsHole == true), in which case a scan-converter must subtract their
// interior from the enclosing outer loop's fill.
//
// Plane carries the face-plane depth function for loops extracted from
// an actual planar face, letting the renderer interpolate per-cell depth
// instead of using a single conservative value; HasPlane is false for
// every proxy-derived loop (bbox/obb/uv_obb_rect/silhouette_edges), which
// must fall back to the loop's minimum W.
type Loop struct {
	Points   []UVW
	IsHole   bool
	Open     bool
	Strategy Strategy
	Plane    model.PlaneDepth
	HasPlane bool
}

// MinDepth returns the minimum W among the loop's points, the
// conservative depth a scan-converter uses for any loop without a
// usable Plane.
func (l Loop) MinDepth() float64 {
	if len(l.Points) == 0 {
		return 0
	}
	min := l.Points[0].W
	for _, p := range l.Points[1:] {
		if p.W < min {
			min = p.W
		}
	}
	return min
}

// DepthAt returns the interpolated depth at (u, v): the face plane's
// depth when HasPlane is set, otherwise the loop's conservative minimum
// depth.
func (l Loop) DepthAt(u, v float64) float64 {
	if l.HasPlane {
		return l.Plane.At(u, v)
	}
	return l.MinDepth()
}
