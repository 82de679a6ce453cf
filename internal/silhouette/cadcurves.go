package silhouette

import "github.com/archvop/vopraster/internal/model"

// CadCurves extracts curve/polyline geometry primitives (the kind an
// imported CAD instance reports instead of solids) and returns each as an
// OPEN polyline loop — edges only, no interior fill. Extraction stops
// after maxPaths loops or maxPtsPerPath points per loop, whichever comes
// first, to bound a CAD import's point count.
func CadCurves(elem model.Element, view *model.View, basis model.ViewBasis, maxPaths, maxPtsPerPath int) []Loop {
	prims, err := elem.Geometry(geometryOptions(elem, view))
	if err != nil || len(prims) == 0 {
		return nil
	}

	var loops []Loop
	for _, prim := range prims {
		if len(loops) >= maxPaths {
			break
		}
		if prim.Curve == nil {
			continue
		}
		samples := prim.Curve.Tessellate(maxPtsPerPath)
		if len(samples) < 2 {
			continue
		}
		points := make([]UVW, 0, len(samples))
		for _, p := range samples {
			hp := toHostPoint(elem, p)
			u, v, w := basis.WorldToView(hp)
			points = append(points, UVW{U: u, V: v, W: w})
		}
		loops = append(loops, Loop{Points: points, Open: true, Strategy: StrategyCadCurves})
	}
	return loops
}
