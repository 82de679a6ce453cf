package geom2d

import "math"

// PCAResult is the oriented extent of a 2D point set: the principal angle
// of its covariance matrix, its centroid, and the extents (full ranges,
// not half-widths) along the major and minor axes.
type PCAResult struct {
	Center      Point
	Theta       float64 // principal angle, radians
	MajorExtent float64
	MinorExtent float64
}

// PCAOrientedExtentsUV computes the oriented bounding extents of a 2D point
// set by eigen-decomposition of its covariance. It centers the points,
// computes the principal angle in closed form (the covariance matrix is
// 2x2, so no iterative eigensolver is needed):
//
//	theta = 0.5 * atan2(2*Sxy, Sxx-Syy)
//
// then projects every point onto the rotated basis and returns the range
// along each axis. Returns the zero value for an empty input.
func PCAOrientedExtentsUV(points []Point) PCAResult {
	n := len(points)
	if n == 0 {
		return PCAResult{}
	}

	var mx, my float64
	for _, p := range points {
		mx += p.X
		my += p.Y
	}
	mx /= float64(n)
	my /= float64(n)

	var sxx, syy, sxy float64
	for _, p := range points {
		x := p.X - mx
		y := p.Y - my
		sxx += x * x
		syy += y * y
		sxy += x * y
	}
	sxx /= float64(n)
	syy /= float64(n)
	sxy /= float64(n)

	theta := 0.5 * math.Atan2(2*sxy, sxx-syy)
	c := math.Cos(theta)
	s := math.Sin(theta)

	minA, maxA := math.Inf(1), math.Inf(-1)
	minB, maxB := math.Inf(1), math.Inf(-1)
	for _, p := range points {
		x := p.X - mx
		y := p.Y - my
		a := c*x + s*y
		b := -s*x + c*y
		minA, maxA = math.Min(minA, a), math.Max(maxA, a)
		minB, maxB = math.Min(minB, b), math.Max(maxB, b)
	}

	return PCAResult{
		Center:      Point{X: mx, Y: my},
		Theta:       theta,
		MajorExtent: maxA - minA,
		MinorExtent: maxB - minB,
	}
}

// degenerateExtent is the threshold below which an oriented rectangle
// collapses to its axis-aligned fallback, avoiding division by a
// near-zero edge length downstream.
const degenerateExtent = 1e-3

// Rect reconstructs the 4 oriented corners of the rectangle this PCA result
// describes, in closed-loop order. ok is false when either extent is too
// close to zero to orient reliably; callers should fall back to an
// axis-aligned rectangle in that case.
func (r PCAResult) Rect() (corners [4]Point, ok bool) {
	if r.MajorExtent < degenerateExtent || r.MinorExtent < degenerateExtent {
		return corners, false
	}

	majorAxis := Vec2{X: math.Cos(r.Theta), Y: math.Sin(r.Theta)}
	minorAxis := majorAxis.Perp()

	ha := r.MajorExtent / 2
	hb := r.MinorExtent / 2

	c := r.Center
	corners[0] = c.Add(Pt(majorAxis.X*ha+minorAxis.X*hb, majorAxis.Y*ha+minorAxis.Y*hb))
	corners[1] = c.Add(Pt(-majorAxis.X*ha+minorAxis.X*hb, -majorAxis.Y*ha+minorAxis.Y*hb))
	corners[2] = c.Add(Pt(-majorAxis.X*ha-minorAxis.X*hb, -majorAxis.Y*ha-minorAxis.Y*hb))
	corners[3] = c.Add(Pt(majorAxis.X*ha-minorAxis.X*hb, majorAxis.Y*ha-minorAxis.Y*hb))
	return corners, true
}
