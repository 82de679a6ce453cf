package rasterfill

// Grid converts between world UV coordinates and the cell-index space a
// raster is addressed in.
type Grid struct {
	CellSize         float64
	OriginU, OriginV float64
}

// ToCell converts a world UV coordinate into continuous cell-space
// coordinates, where cell (i, j) occupies [i, i+1) x [j, j+1).
func (g Grid) ToCell(u, v float64) (x, y float64) {
	return (u - g.OriginU) / g.CellSize, (v - g.OriginV) / g.CellSize
}

// CellCenter returns the world UV coordinate at the center of cell (i, j).
func (g Grid) CellCenter(i, j int) (u, v float64) {
	return g.OriginU + (float64(i)+0.5)*g.CellSize, g.OriginV + (float64(j)+0.5)*g.CellSize
}
