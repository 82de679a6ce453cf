package silhouette

import (
	"github.com/archvop/vopraster/internal/geom3d"
	"github.com/archvop/vopraster/internal/model"
)

// PlanarFaceLoops enumerates every solid face in the element's geometry,
// keeps the ones facing the viewer, and projects each kept face's outer
// and inner (hole) loops into view UV. This is the AREAL-tier primary
// strategy: it preserves holes exactly and, when the face isn't edge-on
// to the view, lets the renderer interpolate true per-cell depth across
// the face instead of flattening it to one conservative value.
func PlanarFaceLoops(elem model.Element, view *model.View, basis model.ViewBasis) []Loop {
	prims, err := elem.Geometry(geometryOptions(elem, view))
	if err != nil || len(prims) == 0 {
		return nil
	}

	var loops []Loop
	for _, prim := range prims {
		if prim.Solid == nil {
			continue
		}
		for _, face := range prim.Solid.Faces {
			if !face.FrontFacing(basis.Forward) {
				continue
			}
			if len(face.Outer) < 3 {
				continue
			}

			plane, hasPlane := basis.NewPlaneDepth(face.Normal, toHostPoint(elem, face.Outer[0]))

			outer := projectRing(elem, basis, face.Outer)
			loops = append(loops, Loop{
				Points:   outer,
				Strategy: StrategyPlanarFaceLoops,
				Plane:    plane,
				HasPlane: hasPlane,
			})
			for _, inner := range face.Inner {
				if len(inner) < 3 {
					continue
				}
				loops = append(loops, Loop{
					Points:   projectRing(elem, basis, inner),
					IsHole:   true,
					Strategy: StrategyPlanarFaceLoops,
					Plane:    plane,
					HasPlane: hasPlane,
				})
			}
		}
	}
	return loops
}

func projectRing(elem model.Element, basis model.ViewBasis, ring []geom3d.Point3) []UVW {
	points := make([]UVW, len(ring))
	for i, p := range ring {
		hp := toHostPoint(elem, p)
		u, v, w := basis.WorldToView(hp)
		points[i] = UVW{U: u, V: v, W: w}
	}
	return points
}
