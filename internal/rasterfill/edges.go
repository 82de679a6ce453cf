package rasterfill

import (
	"math"

	"github.com/archvop/vopraster/internal/silhouette"
)

// stampSamplesPerCell sets how finely a proxy edge or open CAD curve is
// sampled before being converted to cells: this many samples per cell of
// segment length. A cell the line only clips across a corner can fall
// between two samples and be missed.
const stampSamplesPerCell = 2

// StampEdges walks every segment of loop (treating it as a path, not a
// fill — used for TINY/LINEAR proxy edges and for Open loops from CAD
// curve extraction) and calls write for the cell under each sample point
// along the segment's line, at the loop's single conservative depth.
func StampEdges(loop silhouette.Loop, grid Grid, write func(i, j int, depth float64)) {
	if len(loop.Points) < 2 {
		return
	}
	depth := loop.MinDepth()

	n := len(loop.Points)
	last := n - 1
	if !loop.Open {
		// Closed proxy loops stamp all n edges, wrapping back to the
		// start; open loops stamp only the n-1 segments between samples.
		last = n
	}
	for i := 0; i < last; i++ {
		a := loop.Points[i]
		b := loop.Points[(i+1)%n]
		stampSegment(a, b, grid, depth, write)
	}
}

func stampSegment(a, b silhouette.UVW, grid Grid, depth float64, write func(i, j int, depth float64)) {
	ax, ay := grid.ToCell(a.U, a.V)
	bx, by := grid.ToCell(b.U, b.V)

	length := math.Hypot(bx-ax, by-ay)
	steps := int(math.Ceil(length * stampSamplesPerCell))
	if steps < 1 {
		steps = 1
	}

	for s := 0; s <= steps; s++ {
		t := float64(s) / float64(steps)
		x := ax + (bx-ax)*t
		y := ay + (by-ay)*t
		write(int(math.Floor(x)), int(math.Floor(y)), depth)
	}
}
