package geom2d

// UVAABB is a continuous axis-aligned bound in UV feet, derived from a
// CellRect's inclusive cell indices. Cell indices are exclusive-upper at
// the continuous boundary: a rect spanning cells [i_min, i_max] covers the
// continuous interval [i_min*cellSize, (i_max+1)*cellSize).
type UVAABB struct {
	UMin, VMin, UMax, VMax float64
}

// Width returns the UV-space width.
func (a UVAABB) Width() float64 { return a.UMax - a.UMin }

// Height returns the UV-space height.
func (a UVAABB) Height() float64 { return a.VMax - a.VMin }

// Center returns the UV-space center point.
func (a UVAABB) Center() Point {
	return Point{X: (a.UMin + a.UMax) / 2, Y: (a.VMin + a.VMax) / 2}
}

// Corners returns the 4 corners in closed-loop order, suitable for a
// silhouette loop.
func (a UVAABB) Corners() [4]Point {
	return [4]Point{
		{X: a.UMin, Y: a.VMin},
		{X: a.UMax, Y: a.VMin},
		{X: a.UMax, Y: a.VMax},
		{X: a.UMin, Y: a.VMax},
	}
}

// MakeUVAABB converts a CellRect's inclusive cell indices into a
// continuous UV bound, honoring the +1 exclusive-upper-edge adjustment.
func MakeUVAABB(rect CellRect, cellSize, originU, originV float64) UVAABB {
	return UVAABB{
		UMin: originU + float64(rect.IMin)*cellSize,
		VMin: originV + float64(rect.JMin)*cellSize,
		UMax: originU + float64(rect.IMax+1)*cellSize,
		VMax: originV + float64(rect.JMax+1)*cellSize,
	}
}

// OBB is an oriented-rectangle proxy: a center, two unit axes, and half
// extents along each axis.
type OBB struct {
	Center    Point
	AxisMajor Vec2 // unit vector along the long axis
	AxisMinor Vec2 // unit vector along the short axis
	HalfMajor float64
	HalfMinor float64
}

// LongAxisLength returns the full length along the major axis.
func (o OBB) LongAxisLength() float64 { return 2 * o.HalfMajor }

// ShortAxisLength returns the full length along the minor axis.
func (o OBB) ShortAxisLength() float64 { return 2 * o.HalfMinor }

// Corners returns the 4 corners in closed-loop order.
func (o OBB) Corners() [4]Point {
	ma, mi := o.AxisMajor, o.AxisMinor
	c := o.Center
	ha, hb := o.HalfMajor, o.HalfMinor
	return [4]Point{
		c.Add(Pt(ma.X*ha+mi.X*hb, ma.Y*ha+mi.Y*hb)),
		c.Add(Pt(-ma.X*ha+mi.X*hb, -ma.Y*ha+mi.Y*hb)),
		c.Add(Pt(-ma.X*ha-mi.X*hb, -ma.Y*ha-mi.Y*hb)),
		c.Add(Pt(ma.X*ha-mi.X*hb, ma.Y*ha-mi.Y*hb)),
	}
}

// MakeOBBOrSkinnyAABB reconstructs an OBB from precomputed 4-corner data
// attached to a CellRect (rect.OBB). It returns ok=false when rect carries
// no OBB data or a reconstructed edge length falls below the
// degenerate-extent threshold, leaving the axis-aligned fallback (e.g.
// MakeUVAABB) to the caller. cellSize, originU and originV are not used.
func MakeOBBOrSkinnyAABB(rect CellRect, cellSize, originU, originV float64) (OBB, bool) {
	if !rect.HasOBB {
		return OBB{}, false
	}
	corners := rect.OBB.Corners

	edge01 := corners[1].Sub(corners[0])
	edge12 := corners[2].Sub(corners[1])
	len01 := edge01.ToVec2().Length()
	len12 := edge12.ToVec2().Length()
	if len01 < degenerateExtent || len12 < degenerateExtent {
		return OBB{}, false
	}

	center := Point{
		X: (corners[0].X + corners[2].X) / 2,
		Y: (corners[0].Y + corners[2].Y) / 2,
	}

	var majorEdge, minorEdge Vec2
	var halfMajor, halfMinor float64
	if len01 >= len12 {
		majorEdge, minorEdge = edge01.ToVec2(), edge12.ToVec2()
		halfMajor, halfMinor = len01/2, len12/2
	} else {
		majorEdge, minorEdge = edge12.ToVec2(), edge01.ToVec2()
		halfMajor, halfMinor = len12/2, len01/2
	}

	return OBB{
		Center:    center,
		AxisMajor: majorEdge.Normalize(),
		AxisMinor: minorEdge.Normalize(),
		HalfMajor: halfMajor,
		HalfMinor: halfMinor,
	}, true
}
