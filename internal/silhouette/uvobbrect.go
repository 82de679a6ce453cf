package silhouette

import (
	"math"

	"github.com/archvop/vopraster/internal/geom2d"
	"github.com/archvop/vopraster/internal/model"
)

// UVObbRect projects the element's 8 bounding-box corners into view UV
// and fits a PCA-oriented rectangle to them, returning its 4 corners as
// a single loop at the box's nearest depth. This is the LINEAR-tier
// primary strategy: a diagonal thin element's bbox corners trace a
// narrow rectangle whose PCA fit hugs the element instead of ballooning
// out to the enclosing axis-aligned box.
func UVObbRect(elem model.Element, view *model.View, basis model.ViewBasis) []Loop {
	bbox, ok := elem.BoundingBox(view)
	if !ok {
		return nil
	}
	corners := bbox.Corners()

	pts := make([]geom2d.Point, 0, 8)
	wMin := math.Inf(1)
	for _, c := range corners {
		u, v, w := basis.WorldToView(c)
		pts = append(pts, geom2d.Pt(u, v))
		wMin = math.Min(wMin, w)
	}

	result := geom2d.PCAOrientedExtentsUV(pts)
	rectCorners, ok := result.Rect()
	if !ok {
		return nil
	}

	points := make([]UVW, len(rectCorners))
	for i, p := range rectCorners {
		points[i] = UVW{U: p.X, V: p.Y, W: wMin}
	}
	return []Loop{{Points: points, Strategy: StrategyUVObbRect}}
}
