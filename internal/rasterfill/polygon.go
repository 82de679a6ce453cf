package rasterfill

import (
	"math"
	"sort"

	"github.com/archvop/vopraster/internal/silhouette"
)

// edge is a cell-space line segment for scanline fill, adapted from the
// teacher's pixel-space rasterizer: y0 < y1 after construction, dx is the
// slope dx/dy, and dir carries the ring's winding contribution (+1 for an
// outer loop, -1 for a hole) rather than the raw before-swap direction,
// so a hole always subtracts regardless of how its points happen to be
// wound.
type edge struct {
	y0, y1, x0, dx float64
	dir            int
}

func newEdge(x0, y0, x1, y1 float64, winding int) edge {
	dir := winding
	if y0 > y1 {
		dir = -winding
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}
	dy := y1 - y0
	var dx float64
	if dy != 0 {
		dx = (x1 - x0) / dy
	}
	return edge{y0: y0, y1: y1, x0: x0, dx: dx, dir: dir}
}

func (e edge) xAtY(y float64) float64 {
	if e.y1 == e.y0 {
		return e.x0
	}
	return e.x0 + e.dx*(y-e.y0)
}

// ringEdges builds the closed-polygon edge list for one loop's points, in
// cell space, skipping edges that don't cross any scanline.
func ringEdges(points []silhouette.UVW, grid Grid, winding int) []edge {
	n := len(points)
	if n < 2 {
		return nil
	}
	// A clockwise ring (negative signed area) flips its contribution so
	// that only winding (outer vs hole) decides the sign, not point order.
	area := 0.0
	for i := 0; i < n; i++ {
		a, b := points[i], points[(i+1)%n]
		area += a.U*b.V - b.U*a.V
	}
	if area < 0 {
		winding = -winding
	}
	edges := make([]edge, 0, n)
	for i := 0; i < n; i++ {
		a := points[i]
		b := points[(i+1)%n]
		ax, ay := grid.ToCell(a.U, a.V)
		bx, by := grid.ToCell(b.U, b.V)
		if ay == by {
			continue
		}
		edges = append(edges, newEdge(ax, ay, bx, by, winding))
	}
	return edges
}

// Fill scan-converts one element's closed loops (outer plus any holes)
// into the grid cells they cover. Open loops are ignored — use
// StampEdges for those. For every covered cell it calls write with the
// cell indices and the depth interpolated at the cell's center, using
// the first non-hole loop's plane (or its minimum depth, for silhouette
// polygons without a plane).
func Fill(loops []silhouette.Loop, grid Grid, write func(i, j int, depth float64)) {
	var edges []edge
	var depthSource *silhouette.Loop
	for i := range loops {
		l := &loops[i]
		if l.Open {
			continue
		}
		if depthSource == nil || (depthSource.IsHole && !l.IsHole) {
			depthSource = l
		}
		winding := 1
		if l.IsHole {
			winding = -1
		}
		edges = append(edges, ringEdges(l.Points, grid, winding)...)
	}
	if len(edges) == 0 || depthSource == nil {
		return
	}

	yMin, yMax := math.Inf(1), math.Inf(-1)
	for _, e := range edges {
		yMin = math.Min(yMin, e.y0)
		yMax = math.Max(yMax, e.y1)
	}
	jMin := int(math.Floor(yMin))
	jMax := int(math.Ceil(yMax))

	for j := jMin; j < jMax; j++ {
		scanRow(edges, j, grid, depthSource, write)
	}
}

type activeEdge struct {
	x   float64
	dir int
}

func scanRow(edges []edge, j int, grid Grid, depthSource *silhouette.Loop, write func(i, j int, depth float64)) {
	y := float64(j) + 0.5

	var active []activeEdge
	for _, e := range edges {
		if e.y0 <= y && y < e.y1 {
			active = append(active, activeEdge{x: e.xAtY(y), dir: e.dir})
		}
	}
	if len(active) == 0 {
		return
	}
	sort.Slice(active, func(a, b int) bool { return active[a].x < active[b].x })

	winding := 0
	var spanStart float64
	for _, ae := range active {
		wasZero := winding == 0
		winding += ae.dir
		if wasZero && winding != 0 {
			spanStart = ae.x
		} else if !wasZero && winding == 0 {
			fillSpan(spanStart, ae.x, j, grid, depthSource, write)
		}
	}
}

func fillSpan(x0, x1 float64, j int, grid Grid, depthSource *silhouette.Loop, write func(i, j int, depth float64)) {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	iStart := int(math.Floor(x0))
	iEnd := int(math.Ceil(x1))
	for i := iStart; i < iEnd; i++ {
		u, v := grid.CellCenter(i, j)
		write(i, j, depthSource.DepthAt(u, v))
	}
}
