package silhouette

import (
	"math"

	"github.com/archvop/vopraster/internal/model"
)

// LocationCurveObb builds a thin oriented quad around the element's
// projected location curve, with half of thinMax thickness on each side
// of the curve's endpoint-to-endpoint line. This is the preferred
// LINEAR-tier proxy for diagonal thin members (beams, braces, pipe runs)
// whose placement curve is a much better silhouette than their
// axis-aligned or PCA-fit bounding box. Returns nil when the element has
// no location curve, or when its projected endpoints coincide (a
// degenerate, zero-length curve).
func LocationCurveObb(elem model.Element, view *model.View, basis model.ViewBasis, thinMax float64) []Loop {
	curve, ok := elem.LocationCurve()
	if !ok || curve == nil {
		return nil
	}
	samples := curve.Tessellate(2)
	if len(samples) < 2 {
		return nil
	}
	p0 := toHostPoint(elem, samples[0])
	p1 := toHostPoint(elem, samples[len(samples)-1])

	u0, v0, w0 := basis.WorldToView(p0)
	u1, v1, w1 := basis.WorldToView(p1)

	du, dv := u1-u0, v1-v0
	length := math.Sqrt(du*du + dv*dv)
	if length <= 1e-9 {
		return nil
	}

	nx, ny := -dv/length, du/length
	half := thinMax * 0.5
	wMin := math.Min(w0, w1)

	points := []UVW{
		{U: u0 + nx*half, V: v0 + ny*half, W: wMin},
		{U: u1 + nx*half, V: v1 + ny*half, W: wMin},
		{U: u1 - nx*half, V: v1 - ny*half, W: wMin},
		{U: u0 - nx*half, V: v0 - ny*half, W: wMin},
	}
	return []Loop{{Points: points, Strategy: StrategyLocationCurveObb}}
}
