package arealextract

import (
	"math"

	"github.com/archvop/vopraster/internal/geom2d"
	"github.com/archvop/vopraster/internal/geom3d"
	"github.com/archvop/vopraster/internal/model"
	"github.com/archvop/vopraster/internal/silhouette"
)

// collectGeometryUV gathers every vertex the element's geometry exposes —
// mesh triangle corners and solid face ring points alike, front-facing or
// not — and projects them into UV, along with the minimum depth seen. It
// makes no attempt to find a clean silhouette; it exists only to give the
// oriented-bbox tier something sturdier than bounding-box corners to fit
// when real geometry is available.
// CollectGeometryUV exports collectGeometryUV for other packages in this
// module (the renderer's tier-B PCA reclassification needs the same
// actual-geometry point gathering rather than re-deriving it from
// bounding-box corners alone).
func CollectGeometryUV(elem model.Element, view *model.View, basis model.ViewBasis) ([]geom2d.Point, float64, bool) {
	return collectGeometryUV(elem, view, basis)
}

func collectGeometryUV(elem model.Element, view *model.View, basis model.ViewBasis) ([]geom2d.Point, float64, bool) {
	prims, err := elem.Geometry(silhouette.GeometryOptions(elem, view))
	if err != nil || len(prims) == 0 {
		return nil, 0, false
	}

	var points []geom2d.Point
	wMin := math.Inf(1)
	addWorldPoint := func(p geom3d.Point3) {
		hp := silhouette.ToHostPoint(elem, p)
		u, v, w := basis.WorldToView(hp)
		points = append(points, geom2d.Point{X: u, Y: v})
		if w < wMin {
			wMin = w
		}
	}

	for _, prim := range prims {
		if prim.Mesh != nil {
			for _, tri := range prim.Mesh.Triangles {
				for _, p := range tri {
					addWorldPoint(p)
				}
			}
		}
		if prim.Solid != nil {
			for _, face := range prim.Solid.Faces {
				for _, p := range face.Outer {
					addWorldPoint(p)
				}
				for _, ring := range face.Inner {
					for _, p := range ring {
						addWorldPoint(p)
					}
				}
			}
		}
	}

	if len(points) < 3 {
		return nil, 0, false
	}
	return points, wMin, true
}

// obbLoopFromGeometry fits an oriented rectangle to the element's actual
// geometry vertices, falling back to their plain convex hull when the fit
// degenerates. Returns ok=false when fewer than 3 usable points exist.
func obbLoopFromGeometry(elem model.Element, view *model.View, basis model.ViewBasis) (silhouette.Loop, bool) {
	points, wMin, ok := collectGeometryUV(elem, view, basis)
	if !ok {
		return silhouette.Loop{}, false
	}

	result := geom2d.PCAOrientedExtentsUV(points)
	if corners, ok := result.Rect(); ok {
		return loopFromPoints(corners[:], wMin, silhouette.StrategyObb), true
	}

	hull := geom2d.ConvexHull(points)
	if len(hull) < 3 {
		return silhouette.Loop{}, false
	}
	return loopFromPoints(hull, wMin, silhouette.StrategyObb), true
}

func loopFromPoints(points []geom2d.Point, w float64, strat silhouette.Strategy) silhouette.Loop {
	uvw := make([]silhouette.UVW, len(points))
	for i, p := range points {
		uvw[i] = silhouette.UVW{U: p.X, V: p.Y, W: w}
	}
	return silhouette.Loop{Points: uvw, Strategy: strat}
}
