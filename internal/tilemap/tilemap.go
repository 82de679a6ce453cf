package tilemap

import (
	"math"

	"github.com/archvop/vopraster/internal/geom2d"
)

const (
	minTileSize = 8
	maxTileSize = 64
)

// AdaptiveTileSize picks a power-of-two tile edge in [8, 64] such that the
// grid contains roughly 2000 tiles.
func AdaptiveTileSize(width, height int) int {
	if width <= 0 || height <= 0 {
		return minTileSize
	}
	raw := math.Sqrt(float64(width*height) / 2000.0)
	return nearestPow2(int(math.Round(raw)), minTileSize, maxTileSize)
}

func nearestPow2(n, lo, hi int) int {
	best := lo
	bestDiff := absInt(n - lo)
	for p := lo; p <= hi; p *= 2 {
		if d := absInt(n - p); d < bestDiff {
			best = p
			bestDiff = d
		}
	}
	return best
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

type tileAgg struct {
	filledCount int
	zMinTile    float64
}

// TileMap partitions a width x height cell grid into tileSize x tileSize
// tiles (the last row/column may be partial) and tracks, per tile, how
// many of its cells are filled and the minimum z_min among them.
type TileMap struct {
	width, height int
	tileSize      int
	tilesX, tilesY int
	tiles         []tileAgg
}

// New creates a TileMap for a width x height cell grid. tileSize <= 0
// selects AdaptiveTileSize.
func New(width, height, tileSize int) *TileMap {
	if tileSize <= 0 {
		tileSize = AdaptiveTileSize(width, height)
	}
	tilesX := ceilDiv(width, tileSize)
	tilesY := ceilDiv(height, tileSize)
	tiles := make([]tileAgg, tilesX*tilesY)
	for i := range tiles {
		tiles[i].zMinTile = math.Inf(1)
	}
	return &TileMap{
		width: width, height: height,
		tileSize: tileSize,
		tilesX:   tilesX, tilesY: tilesY,
		tiles: tiles,
	}
}

func ceilDiv(a, b int) int {
	if a <= 0 || b <= 0 {
		return 0
	}
	return (a + b - 1) / b
}

// TileSize returns the tile edge length in cells.
func (m *TileMap) TileSize() int { return m.tileSize }

// TilesX returns the number of tile columns.
func (m *TileMap) TilesX() int { return m.tilesX }

// TilesY returns the number of tile rows.
func (m *TileMap) TilesY() int { return m.tilesY }

// tileCellCount returns the number of grid cells actually covered by the
// tile at tile coordinates (tx, ty), accounting for a partial edge tile.
func (m *TileMap) tileCellCount(tx, ty int) int {
	w := m.tileSize
	if (tx+1)*m.tileSize > m.width {
		w = m.width - tx*m.tileSize
	}
	h := m.tileSize
	if (ty+1)*m.tileSize > m.height {
		h = m.height - ty*m.tileSize
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return w * h
}

// TileCoord returns the tile coordinates containing cell (i, j).
func (m *TileMap) TileCoord(i, j int) (tx, ty int) {
	return i / m.tileSize, j / m.tileSize
}

// MarkWrite updates the aggregates for the tile covering cell (i, j)
// after a successful write at depth z. wasAlreadyFilled must report
// whether model_mask was already true for this cell before the write —
// the filled-cell counter only increments on a cell's first fill, while
// z_min_tile tracks the minimum over every write since it can only ever
// decrease.
func (m *TileMap) MarkWrite(i, j int, z float64, wasAlreadyFilled bool) {
	tx, ty := m.TileCoord(i, j)
	idx := ty*m.tilesX + tx
	t := &m.tiles[idx]
	if !wasAlreadyFilled {
		t.filledCount++
	}
	if z < t.zMinTile {
		t.zMinTile = z
	}
}

// IsFull reports whether every cell in the tile at (tx, ty) is filled.
func (m *TileMap) IsFull(tx, ty int) bool {
	idx := ty*m.tilesX + tx
	return m.tiles[idx].filledCount == m.tileCellCount(tx, ty)
}

// ZMinTile returns the minimum z_min over the tile at (tx, ty), or +Inf
// if the tile has no filled cells.
func (m *TileMap) ZMinTile(tx, ty int) float64 {
	return m.tiles[ty*m.tilesX+tx].zMinTile
}

// FilledCount returns the number of filled cells in the tile at (tx, ty).
func (m *TileMap) FilledCount(tx, ty int) int {
	return m.tiles[ty*m.tilesX+tx].filledCount
}

// FullyOccludes reports whether rect is guaranteed occluded at zNear:
// every tile it overlaps must be full, and every one of those tiles'
// z_min_tile must be strictly less than zNear. An empty rect, or one that
// reaches outside the grid, never early-outs.
func (m *TileMap) FullyOccludes(rect geom2d.CellRect, zNear float64) bool {
	if rect.Empty() {
		return false
	}
	if rect.IMin < 0 || rect.JMin < 0 || rect.IMax >= m.width || rect.JMax >= m.height {
		return false
	}
	txMin, tyMin := m.TileCoord(rect.IMin, rect.JMin)
	txMax, tyMax := m.TileCoord(rect.IMax, rect.JMax)

	for ty := tyMin; ty <= tyMax; ty++ {
		for tx := txMin; tx <= txMax; tx++ {
			if tx < 0 || tx >= m.tilesX || ty < 0 || ty >= m.tilesY {
				return false
			}
			idx := ty*m.tilesX + tx
			agg := m.tiles[idx]
			if agg.filledCount != m.tileCellCount(tx, ty) {
				return false
			}
			if !(agg.zMinTile < zNear) {
				return false
			}
		}
	}
	return true
}
