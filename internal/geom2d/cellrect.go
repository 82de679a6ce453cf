package geom2d

// OBBData is the 4-corner oriented rectangle (in UV feet) attached to a
// CellRect when the element's footprint was classified with the PCA escape
// rather than the plain axis-aligned projection. Corners are stored in
// closed-loop order (0→1→2→3→0 traces the rectangle boundary).
type OBBData struct {
	Corners [4]Point
}

// CellRect is an inclusive integer AABB over the raster's cell grid:
// every (i,j) with IMin<=i<=IMax and JMin<=j<=JMax is inside the rect.
type CellRect struct {
	IMin, JMin, IMax, JMax int

	// HasOBB and OBB carry the oriented rectangle reconstructed from PCA
	// over the element's projected points, when available. A CellRect
	// without OBB data falls back to its own axis-aligned corners when an
	// oriented proxy is requested.
	HasOBB bool
	OBB    OBBData
}

// Empty reports whether the rect covers no cells (e.g. the element's AABB
// projected outside the raster bounds, or failed to construct).
func (r CellRect) Empty() bool {
	return r.IMax < r.IMin || r.JMax < r.JMin
}

// WidthCells returns the number of cell columns spanned, inclusive.
func (r CellRect) WidthCells() int {
	if r.Empty() {
		return 0
	}
	return r.IMax - r.IMin + 1
}

// HeightCells returns the number of cell rows spanned, inclusive.
func (r CellRect) HeightCells() int {
	if r.Empty() {
		return 0
	}
	return r.JMax - r.JMin + 1
}

// AreaCells returns the number of cells covered by the rect.
func (r CellRect) AreaCells() int {
	return r.WidthCells() * r.HeightCells()
}

// CenterCell returns the cell nearest the rect's center, rounding down.
func (r CellRect) CenterCell() (i, j int) {
	return (r.IMin + r.IMax) / 2, (r.JMin + r.JMax) / 2
}

// Clamp returns r intersected with the grid [0,w) x [0,h). The result may
// be Empty.
func (r CellRect) Clamp(w, h int) CellRect {
	out := r
	if out.IMin < 0 {
		out.IMin = 0
	}
	if out.JMin < 0 {
		out.JMin = 0
	}
	if out.IMax > w-1 {
		out.IMax = w - 1
	}
	if out.JMax > h-1 {
		out.JMax = h - 1
	}
	return out
}

// Cells invokes fn for every (i,j) in the inclusive rectangle, in
// row-major order. Iteration stops early if fn returns false.
func (r CellRect) Cells(fn func(i, j int) bool) {
	if r.Empty() {
		return
	}
	for j := r.JMin; j <= r.JMax; j++ {
		for i := r.IMin; i <= r.IMax; i++ {
			if !fn(i, j) {
				return
			}
		}
	}
}
