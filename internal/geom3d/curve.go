package geom3d

import "math"

// Curve is a parametric 3D curve primitive a geometry host can hand back
// from a CAD import instance: a line, an arc, a raw polyline, or a cubic
// spline segment. It is tessellated into a point chain before projection
// to view UV.
type Curve interface {
	// Tessellate samples the curve into at most maxPts points, including
	// both endpoints. maxPts < 2 is treated as 2.
	Tessellate(maxPts int) []Point3
}

// Line is a straight curve primitive between two endpoints.
type Line struct {
	P0, P1 Point3
}

// Tessellate returns the two endpoints; a line needs no subdivision.
func (l Line) Tessellate(maxPts int) []Point3 {
	return []Point3{l.P0, l.P1}
}

// Polyline is a pre-tessellated chain of points, handed back as-is by
// hosts whose native primitive is already linear (e.g. PolyLine).
type Polyline struct {
	Points []Point3
}

// Tessellate returns up to maxPts of the underlying points, evenly
// subsampled if the source has more points than the budget allows.
func (pl Polyline) Tessellate(maxPts int) []Point3 {
	if maxPts < 2 {
		maxPts = 2
	}
	if len(pl.Points) <= maxPts {
		return pl.Points
	}
	out := make([]Point3, 0, maxPts)
	step := float64(len(pl.Points)-1) / float64(maxPts-1)
	for i := 0; i < maxPts; i++ {
		idx := int(math.Round(float64(i) * step))
		if idx >= len(pl.Points) {
			idx = len(pl.Points) - 1
		}
		out = append(out, pl.Points[idx])
	}
	return out
}

// Arc is a circular arc curve primitive, described by its center, the
// plane it lies in (via two orthonormal in-plane axes), its radius, and
// its start/end angles (radians, measured from XAxis toward YAxis).
type Arc struct {
	Center       Point3
	XAxis, YAxis Vec3 // unit, orthogonal, spanning the arc's plane
	Radius       float64
	StartA, EndA float64
}

// Tessellate approximates the arc with cubic Bezier segments (the same
// "≤90°-per-segment, alpha-scaled control points" construction used to
// draw circular arcs as Beziers), then samples each segment evenly across
// the point budget. Every segment contributes at least its end point, so
// a budget smaller than one more than the segment count (at most 4) is
// exceeded.
func (a Arc) Tessellate(maxPts int) []Point3 {
	if maxPts < 2 {
		maxPts = 2
	}

	sweep := a.EndA - a.StartA
	for sweep < 0 {
		sweep += 2 * math.Pi
	}
	if sweep == 0 {
		sweep = 2 * math.Pi
	}

	const maxSegAngle = math.Pi / 2
	numSegs := int(math.Ceil(sweep / maxSegAngle))
	if numSegs < 1 {
		numSegs = 1
	}
	segAngle := sweep / float64(numSegs)

	beziers := make([]cubic3, 0, numSegs)
	for i := 0; i < numSegs; i++ {
		a1 := a.StartA + float64(i)*segAngle
		a2 := a1 + segAngle
		beziers = append(beziers, a.segmentBezier(a1, a2))
	}

	out := make([]Point3, 0, maxPts)
	ptsPerSeg := maxPts / len(beziers)
	if ptsPerSeg < 2 {
		ptsPerSeg = 2
	}
	for segIdx, bez := range beziers {
		start := 0
		if segIdx > 0 {
			start = 1 // avoid duplicating the shared endpoint
		}
		for i := start; i < ptsPerSeg; i++ {
			t := float64(i) / float64(ptsPerSeg-1)
			out = append(out, bez.eval(t))
		}
	}
	return out
}

// pointOnArc returns the 3D point at angle theta (radians) on the arc.
func (a Arc) pointOnArc(theta float64) Point3 {
	c, s := math.Cos(theta), math.Sin(theta)
	offset := a.XAxis.Mul(a.Radius * c).Add(a.YAxis.Mul(a.Radius * s))
	return a.Center.Add(offset)
}

// tangentOnArc returns the unit tangent direction at angle theta.
func (a Arc) tangentOnArc(theta float64) Vec3 {
	c, s := math.Cos(theta), math.Sin(theta)
	return a.XAxis.Mul(-s).Add(a.YAxis.Mul(c)).Normalize()
}

// segmentBezier converts a ≤90° arc segment [a1,a2] into a cubic Bezier
// using the standard circular-arc-to-Bezier control-point formula.
func (a Arc) segmentBezier(a1, a2 float64) cubic3 {
	sweep := a2 - a1
	alpha := math.Sin(sweep) * (math.Sqrt(4+3*math.Pow(math.Tan(sweep/2), 2)) - 1) / 3

	p0 := a.pointOnArc(a1)
	p3 := a.pointOnArc(a2)
	t0 := a.tangentOnArc(a1)
	t3 := a.tangentOnArc(a2)

	p1 := p0.Add(t0.Mul(alpha * a.Radius))
	p2 := p3.Add(t3.Mul(-alpha * a.Radius))

	return cubic3{p0, p1, p2, p3}
}

// cubic3 is a 3D cubic Bezier, evaluated with the same De Casteljau-style
// direct-polynomial form used for 2D beziers.
type cubic3 struct {
	P0, P1, P2, P3 Point3
}

func (c cubic3) eval(t float64) Point3 {
	mt := 1 - t
	mt2, mt3 := mt*mt, mt*mt*mt
	t2, t3 := t*t, t*t*t
	return Point3{
		X: mt3*c.P0.X + 3*mt2*t*c.P1.X + 3*mt*t2*c.P2.X + t3*c.P3.X,
		Y: mt3*c.P0.Y + 3*mt2*t*c.P1.Y + 3*mt*t2*c.P2.Y + t3*c.P3.Y,
		Z: mt3*c.P0.Z + 3*mt2*t*c.P1.Z + 3*mt*t2*c.P2.Z + t3*c.P3.Z,
	}
}

// CubicSpline is a cubic Bezier curve primitive (the common tessellated
// form of a NURBS/spline segment a geometry host hands back).
type CubicSpline struct {
	P0, P1, P2, P3 Point3
}

// Tessellate samples the cubic evenly across the point budget.
func (c CubicSpline) Tessellate(maxPts int) []Point3 {
	if maxPts < 2 {
		maxPts = 2
	}
	b := cubic3{c.P0, c.P1, c.P2, c.P3}
	out := make([]Point3, maxPts)
	for i := 0; i < maxPts; i++ {
		t := float64(i) / float64(maxPts-1)
		out[i] = b.eval(t)
	}
	return out
}
