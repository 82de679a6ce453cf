package vop

import (
	"math"

	"github.com/archvop/vopraster/internal/model"
	"github.com/archvop/vopraster/internal/tilemap"
)

// ElementMetaRecord is one entry in a ViewRaster's element metadata
// table, returned (by index) from GetOrCreateElementMetaIndex and
// referenced by model_edge_key/model_proxy_key cell values.
type ElementMetaRecord struct {
	ID       int
	Category string
	Source   model.SourceIdentity
}

// AnnotationMetaRecord is one entry in a ViewRaster's annotation metadata
// table, returned (by index) from GetOrCreateAnnotationMetaIndex and
// referenced by anno_key cell values.
type AnnotationMetaRecord struct {
	Key      string
	AnnoType string
}

// noIndex is the sentinel stored in a cell's key arrays when no element
// or annotation owns that cell.
const noIndex = -1

// ViewRaster is the per-view occupancy grid: model_mask/z_min/edge_key/
// proxy layers plus the independent annotation layer and their derived
// anno_over_model, backed by a TileMap for the front-to-back renderer's
// occlusion early-out. TryWriteCell is the only mutator for the model
// layers; StampProxyEdge and SetCellAnnotation are the narrower funnels
// for proxy decoration and annotations respectively. A ViewRaster is
// owned by exactly one view's pass and is not safe for concurrent use.
type ViewRaster struct {
	Width, Height int
	CellSize      float64
	OriginU, OriginV float64
	Tiles         *tilemap.TileMap

	modelMask      []bool
	zMin           []float64
	modelEdgeKey   []int
	modelProxyMask []bool
	modelProxyKey  []int
	annoKey        []int
	annoType       []string
	annoOverModel  []bool

	elementMeta      []ElementMetaRecord
	elementMetaIndex map[elementMetaKey]int

	annotationMeta      []AnnotationMetaRecord
	annotationMetaIndex map[string]int
}

type elementMetaKey struct {
	id       int
	category string
	source   model.SourceIdentity
}

// NewViewRaster allocates a width x height occupancy grid with cells of
// cellSize world feet, whose (0,0) cell's minimum corner sits at world UV
// (originU, originV). tileSize <= 0 selects TileMap's adaptive sizing.
func NewViewRaster(width, height int, cellSize, originU, originV float64, tileSize int) *ViewRaster {
	n := width * height
	r := &ViewRaster{
		Width: width, Height: height,
		CellSize: cellSize,
		OriginU:  originU, OriginV: originV,
		Tiles: tilemap.New(width, height, tileSize),

		modelMask:      make([]bool, n),
		zMin:           make([]float64, n),
		modelEdgeKey:   make([]int, n),
		modelProxyMask: make([]bool, n),
		modelProxyKey:  make([]int, n),
		annoKey:        make([]int, n),
		annoType:       make([]string, n),
		annoOverModel:  make([]bool, n),

		elementMetaIndex:    map[elementMetaKey]int{},
		annotationMetaIndex: map[string]int{},
	}
	for i := range r.zMin {
		r.zMin[i] = math.Inf(1)
	}
	for i := range r.modelEdgeKey {
		r.modelEdgeKey[i] = noIndex
		r.modelProxyKey[i] = noIndex
		r.annoKey[i] = noIndex
	}
	return r
}

func (r *ViewRaster) inBounds(i, j int) bool {
	return i >= 0 && i < r.Width && j >= 0 && j < r.Height
}

func (r *ViewRaster) index(i, j int) int {
	return j*r.Width + i
}

// TryWriteCell is the sole mutator of model_mask/model_edge_key/z_min and
// their tile aggregates. It writes iff depth < the cell's current z_min,
// or unconditionally when force is true; z_min itself only ever
// decreases regardless of force, preserving the raster's depth-
// monotonicity invariant. edgeKey, when >= 0, is stored as the cell's
// owning element metadata index. Reports whether a write occurred.
func (r *ViewRaster) TryWriteCell(i, j int, depth float64, edgeKey int, force bool) bool {
	if !r.inBounds(i, j) {
		return false
	}
	idx := r.index(i, j)
	if !force && !(depth < r.zMin[idx]) {
		return false
	}

	wasFilled := r.modelMask[idx]
	r.modelMask[idx] = true
	if depth < r.zMin[idx] {
		r.zMin[idx] = depth
	}
	if edgeKey >= 0 {
		r.modelEdgeKey[idx] = edgeKey
	}
	r.Tiles.MarkWrite(i, j, r.zMin[idx], wasFilled)
	return true
}

// StampProxyEdge records a TINY/LINEAR proxy edge into model_proxy_key,
// independent of model_mask and z_min: it never participates in the
// depth-ownership test those layers implement, and never updates them.
// The edge is visible (and thus stamped) only when its depth does not
// sit clearly behind the cell's existing model content, i.e. depth is
// less than z_min plus depthEpsFt. Reports whether the stamp occurred.
func (r *ViewRaster) StampProxyEdge(i, j int, depth, depthEpsFt float64, proxyKey int) bool {
	if !r.inBounds(i, j) {
		return false
	}
	idx := r.index(i, j)
	if !(depth < r.zMin[idx]+depthEpsFt) {
		return false
	}
	r.modelProxyKey[idx] = proxyKey
	return true
}

// MarkProxyMaskCell sets model_proxy_mask for a single cell unconditionally,
// used by ProxyMaskMin to seed a TINY element's center cell or a LINEAR
// element's long-axis band.
func (r *ViewRaster) MarkProxyMaskCell(i, j int) {
	if !r.inBounds(i, j) {
		return
	}
	r.modelProxyMask[r.index(i, j)] = true
}

// GetOrCreateElementMetaIndex returns the stable metadata index for the
// (id, category, source) triple, creating a new entry the first time this
// triple is seen in this view's pass.
func (r *ViewRaster) GetOrCreateElementMetaIndex(id int, category string, source model.SourceIdentity) int {
	k := elementMetaKey{id: id, category: category, source: source}
	if idx, ok := r.elementMetaIndex[k]; ok {
		return idx
	}
	idx := len(r.elementMeta)
	r.elementMeta = append(r.elementMeta, ElementMetaRecord{ID: id, Category: category, Source: source})
	r.elementMetaIndex[k] = idx
	return idx
}

// GetOrCreateAnnotationMetaIndex returns the stable metadata index for an
// annotation keyed by key (its host-reported identity), creating a new
// entry the first time this key is seen.
func (r *ViewRaster) GetOrCreateAnnotationMetaIndex(key, annoType string) int {
	if idx, ok := r.annotationMetaIndex[key]; ok {
		return idx
	}
	idx := len(r.annotationMeta)
	r.annotationMeta = append(r.annotationMeta, AnnotationMetaRecord{Key: key, AnnoType: annoType})
	r.annotationMetaIndex[key] = idx
	return idx
}

// SetCellAnnotation stamps a cell's annotation layer, independent of the
// model layers: last write for a given cell wins, with no depth test and
// no dependency on model_mask.
func (r *ViewRaster) SetCellAnnotation(i, j, metaIndex int, annoType string) {
	if !r.inBounds(i, j) {
		return
	}
	idx := r.index(i, j)
	r.annoKey[idx] = metaIndex
	r.annoType[idx] = annoType
}

// FinalizeAnnoOverModel computes anno_over_model for every cell:
// anno_key != -1 AND (model_mask OR (cfg.OverModelIncludesProxies AND
// model_proxy_mask)). Must run once, after every element and annotation
// has been rastered.
func (r *ViewRaster) FinalizeAnnoOverModel(cfg Config) {
	for idx := range r.annoOverModel {
		hasAnno := r.annoKey[idx] != noIndex
		underModel := r.modelMask[idx] || (cfg.OverModelIncludesProxies && r.modelProxyMask[idx])
		r.annoOverModel[idx] = hasAnno && underModel
	}
}

// RasterCounts is the per-view cell tally satisfying the raster
// invariant TotalCells = Empty + ModelOnly + AnnoOnly + Overlap.
type RasterCounts struct {
	TotalCells int
	Empty      int
	ModelOnly  int
	AnnoOnly   int
	Overlap    int
}

// Counts tallies every cell into exactly one of Empty/ModelOnly/AnnoOnly/
// Overlap, from the current model_mask and anno_key layers.
func (r *ViewRaster) Counts() RasterCounts {
	c := RasterCounts{TotalCells: len(r.modelMask)}
	for idx := range r.modelMask {
		model := r.modelMask[idx]
		anno := r.annoKey[idx] != noIndex
		switch {
		case model && anno:
			c.Overlap++
		case model:
			c.ModelOnly++
		case anno:
			c.AnnoOnly++
		default:
			c.Empty++
		}
	}
	return c
}

// CellSnapshot is a defensive copy of every per-cell layer, suitable for
// serialization without exposing the raster's live backing arrays.
type CellSnapshot struct {
	ModelMask      []bool
	ZMin           []float64
	ModelEdgeKey   []int
	ModelProxyMask []bool
	ModelProxyKey  []int
	AnnoKey        []int
	AnnoType       []string
	AnnoOverModel  []bool
}

// Snapshot returns a defensive copy of every per-cell layer.
func (r *ViewRaster) Snapshot() CellSnapshot {
	return CellSnapshot{
		ModelMask:      append([]bool(nil), r.modelMask...),
		ZMin:           append([]float64(nil), r.zMin...),
		ModelEdgeKey:   append([]int(nil), r.modelEdgeKey...),
		ModelProxyMask: append([]bool(nil), r.modelProxyMask...),
		ModelProxyKey:  append([]int(nil), r.modelProxyKey...),
		AnnoKey:        append([]int(nil), r.annoKey...),
		AnnoType:       append([]string(nil), r.annoType...),
		AnnoOverModel:  append([]bool(nil), r.annoOverModel...),
	}
}

// ElementMeta returns the view's element metadata table in index order.
func (r *ViewRaster) ElementMeta() []ElementMetaRecord {
	return append([]ElementMetaRecord(nil), r.elementMeta...)
}

// AnnotationMeta returns the view's annotation metadata table in index
// order.
func (r *ViewRaster) AnnotationMeta() []AnnotationMetaRecord {
	return append([]AnnotationMetaRecord(nil), r.annotationMeta...)
}
