package geom2d

import "testing"

func TestConvexHullSquareWithInteriorPoint(t *testing.T) {
	pts := []Point{
		{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4},
		{X: 2, Y: 2}, // interior, must be dropped
	}
	hull := ConvexHull(pts)
	if len(hull) != 4 {
		t.Fatalf("len(hull) = %d, want 4", len(hull))
	}
	for _, p := range hull {
		if p == (Point{X: 2, Y: 2}) {
			t.Error("interior point should not appear in the hull")
		}
	}
}

func TestConvexHullFewerThanThreePoints(t *testing.T) {
	pts := []Point{{X: 0, Y: 0}, {X: 1, Y: 1}}
	if got := ConvexHull(pts); len(got) != 2 {
		t.Errorf("len(hull) = %d, want 2 (input returned unchanged)", len(got))
	}
}
