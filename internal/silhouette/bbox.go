package silhouette

import (
	"math"

	"github.com/archvop/vopraster/internal/model"
)

// Bbox projects the element's 8 bounding-box corners (honoring any
// bbox-local-to-world transform) into view UV and returns the single
// axis-aligned rectangle loop at the box's nearest depth. This is the
// ultimate fallback: it only fails when the element reports no bounding
// box at all.
func Bbox(elem model.Element, view *model.View, basis model.ViewBasis) []Loop {
	bbox, ok := elem.BoundingBox(view)
	if !ok {
		return nil
	}
	corners := bbox.Corners()

	uMin, vMin := math.Inf(1), math.Inf(1)
	uMax, vMax := math.Inf(-1), math.Inf(-1)
	wMin := math.Inf(1)
	for _, c := range corners {
		u, v, w := basis.WorldToView(c)
		uMin = math.Min(uMin, u)
		vMin = math.Min(vMin, v)
		uMax = math.Max(uMax, u)
		vMax = math.Max(vMax, v)
		wMin = math.Min(wMin, w)
	}
	if uMin >= uMax || vMin >= vMax {
		return nil
	}

	return []Loop{{
		Points: []UVW{
			{U: uMin, V: vMin, W: wMin},
			{U: uMax, V: vMin, W: wMin},
			{U: uMax, V: vMax, W: wMin},
			{U: uMin, V: vMax, W: wMin},
		},
		Strategy: StrategyBbox,
	}}
}
