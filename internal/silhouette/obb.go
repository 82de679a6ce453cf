package silhouette

import (
	"math"

	"github.com/archvop/vopraster/internal/geom2d"
	"github.com/archvop/vopraster/internal/model"
)

// Obb projects the element's 8 bounding-box corners into view UV and
// returns the convex hull of those points as a single loop at the box's
// nearest depth. Unlike Bbox this preserves the box's projected shape
// when the box (or its link transform) is rotated relative to the view,
// rather than re-expanding it to an axis-aligned rectangle.
func Obb(elem model.Element, view *model.View, basis model.ViewBasis) []Loop {
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

	hull := geom2d.ConvexHull(pts)
	if len(hull) < 3 {
		return nil
	}

	points := make([]UVW, len(hull))
	for i, p := range hull {
		points[i] = UVW{U: p.X, V: p.Y, W: wMin}
	}
	return []Loop{{Points: points, Strategy: StrategyObb}}
}
