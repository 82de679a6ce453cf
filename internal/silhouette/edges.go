package silhouette

import (
	"math"

	"github.com/archvop/vopraster/internal/model"
)

// edgeTessellationPoints bounds how finely each silhouette edge's curve
// is sampled before the points are threaded into a loop.
const edgeTessellationPoints = 32

// SilhouetteEdges enumerates every solid face and edge in the element's
// geometry, keeps edges that are either a true boundary (only one
// adjoining face) or that separate a front-facing face from a
// back-facing one, tessellates them, and threads the resulting point
// cloud into a single loop by repeatedly connecting to the nearest
// unvisited point. This is the AREAL-tier secondary strategy: slower than
// PlanarFaceLoops but able to trace a silhouette from geometry that
// doesn't expose clean face loops.
func SilhouetteEdges(elem model.Element, view *model.View, basis model.ViewBasis) []Loop {
	prims, err := elem.Geometry(geometryOptions(elem, view))
	if err != nil || len(prims) == 0 {
		return nil
	}

	var points []UVW
	for _, prim := range prims {
		if prim.Solid == nil {
			continue
		}
		for _, edge := range prim.Solid.Edges {
			if edge.Curve == nil || !edge.IsSilhouette(basis.Forward) {
				continue
			}
			for _, p := range edge.Curve.Tessellate(edgeTessellationPoints) {
				hp := toHostPoint(elem, p)
				u, v, w := basis.WorldToView(hp)
				points = append(points, UVW{U: u, V: v, W: w})
			}
		}
	}
	if len(points) < 3 {
		return nil
	}

	return []Loop{{Points: greedyNearestNeighborOrder(points), Strategy: StrategySilhouetteEdges}}
}

// greedyNearestNeighborOrder reorders points into a path by starting at
// the first point and repeatedly walking to the nearest unvisited one,
// approximating the polygon that connects a disordered edge-tessellation
// point cloud into a single loop.
func greedyNearestNeighborOrder(points []UVW) []UVW {
	remaining := make([]UVW, len(points))
	copy(remaining, points)

	ordered := make([]UVW, 0, len(remaining))
	current := remaining[0]
	ordered = append(ordered, current)
	remaining = remaining[1:]

	for len(remaining) > 0 {
		bestIdx := 0
		bestDist := math.Inf(1)
		for i, p := range remaining {
			d := (p.U-current.U)*(p.U-current.U) + (p.V-current.V)*(p.V-current.V)
			if d < bestDist {
				bestDist = d
				bestIdx = i
			}
		}
		current = remaining[bestIdx]
		ordered = append(ordered, current)
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}
	return ordered
}
