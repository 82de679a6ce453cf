package vop

import (
	"math"

	"github.com/archvop/vopraster/internal/arealextract"
	"github.com/archvop/vopraster/internal/cache"
	"github.com/archvop/vopraster/internal/classify"
	"github.com/archvop/vopraster/internal/diagnostics"
	"github.com/archvop/vopraster/internal/geom2d"
	"github.com/archvop/vopraster/internal/model"
	"github.com/archvop/vopraster/internal/rasterfill"
	"github.com/archvop/vopraster/internal/silhouette"
)

// Renderer runs the front-to-back pass over one view's elements,
// classifying each and rasterizing it through the raster's write funnel.
// A Renderer is owned by exactly one view's pass, matching the raster and
// diagnostics tracker it writes into.
type Renderer struct {
	cfg    Config
	view   *model.View
	basis  model.ViewBasis
	raster *ViewRaster
	grid   rasterfill.Grid
	diag   *diagnostics.StrategyDiagnostics
	cache  *cache.Bounded[silhouette.CacheKey, []silhouette.Loop]

	geometryVersion int64
}

// NewRenderer builds a Renderer for one view's pass. diag may be nil,
// disabling strategy diagnostics entirely.
func NewRenderer(cfg Config, view *model.View, raster *ViewRaster, diag *diagnostics.StrategyDiagnostics) *Renderer {
	basis := model.NewViewBasis(*view)
	return &Renderer{
		cfg:    cfg,
		view:   view,
		basis:  basis,
		raster: raster,
		grid: rasterfill.Grid{
			CellSize: raster.CellSize,
			OriginU:  raster.OriginU,
			OriginV:  raster.OriginV,
		},
		diag:  diag,
		cache: cache.NewBounded[silhouette.CacheKey, []silhouette.Loop](cfg.GeometryCacheMaxItems),
	}
}

// sink returns r.diag as an arealextract.Sink, or nil when diagnostics
// are disabled — arealextract.report already treats a nil Sink as a
// no-op.
func (r *Renderer) sink() arealextract.Sink {
	if r.diag == nil {
		return nil
	}
	return r.diag
}

// Render runs every element in elements (already front-to-back sorted by
// the caller's collection collaborator) through the per-element pipeline.
// A panic from one element's processing is recovered, recorded as an
// exception outcome, and does not stop the remaining elements.
func (r *Renderer) Render(elements []model.Element) {
	for _, elem := range elements {
		elem := elem
		if err := recoverToError(func() { r.renderElement(elem) }); err != nil {
			r.recordOutcome(elem, outcomeException)
			Logger().Warn("vop: recovered panic rendering element",
				"element_id", elem.ID(), "category", elem.Category(), "error", err)
		}
	}
}

// uvCellRect projects a UV bounds rectangle into the raster's inclusive
// cell-space rectangle, clamped to the grid.
func (r *Renderer) uvCellRect(b geom2d.Bounds2D) geom2d.CellRect {
	uMin, vMin := r.grid.ToCell(b.XMin, b.YMin)
	uMax, vMax := r.grid.ToCell(b.XMax, b.YMax)
	rect := geom2d.CellRect{
		IMin: int(math.Floor(uMin)),
		JMin: int(math.Floor(vMin)),
		IMax: int(math.Ceil(uMax)) - 1,
		JMax: int(math.Ceil(vMax)) - 1,
	}
	return rect.Clamp(r.raster.Width, r.raster.Height)
}

func (r *Renderer) renderElement(elem model.Element) {
	bbox, ok := elem.BoundingBox(r.view)
	if !ok {
		r.recordOutcome(elem, outcomeNoGeometry)
		return
	}
	corners := bbox.Corners()
	uvBounds, wMin := r.basis.UVWFootprint(corners)
	rect := r.uvCellRect(geom2d.Bounds2D{XMin: uvBounds.XMin, YMin: uvBounds.YMin, XMax: uvBounds.XMax, YMax: uvBounds.YMax})
	if rect.Empty() {
		return
	}

	if r.raster.Tiles.FullyOccludes(rect, wMin) {
		Logger().Debug("vop: tile early-out", "element_id", elem.ID(), "view_id", r.view.ID)
		return
	}

	category := elem.Category()
	if category == "" {
		category = "Unknown"
	}

	mode := r.classify(elem, rect)
	Logger().Debug("vop: element classified", "element_id", elem.ID(), "category", category, "mode", mode.String())
	if r.diag != nil {
		r.diag.RecordElementClassification(elem.ID(), mode.String(), category)
	}

	switch mode {
	case classify.Tiny, classify.Linear:
		r.renderProxy(elem, rect, mode, category)
	default:
		r.renderAreal(elem, category)
	}
}

// classify runs the cheap axis-aligned channel first, escalating to the
// precise PCA channel over the element's actual geometry when the
// tier-B ambiguity rule fires.
func (r *Renderer) classify(elem model.Element, rect geom2d.CellRect) classify.Mode {
	uCells, vCells := rect.WidthCells(), rect.HeightCells()
	mode := classify.ByCells(uCells, vCells, r.cfg.TinyMax, r.cfg.ThinMax)

	minorCells := uCells
	if vCells < minorCells {
		minorCells = vCells
	}
	gridArea := r.raster.Width * r.raster.Height
	if !classify.IsAmbiguous(minorCells, rect.AreaCells(), gridArea, r.raster.CellSize, r.cfg.ambiguityConfig()) {
		return mode
	}

	points, _, ok := arealextract.CollectGeometryUV(elem, r.view, r.basis)
	if !ok {
		return mode
	}
	pca := geom2d.PCAOrientedExtentsUV(points)
	majorCells := pca.MajorExtent / r.raster.CellSize
	minorCellsPCA := pca.MinorExtent / r.raster.CellSize
	return classify.ByOrientedExtents(majorCells, minorCellsPCA, r.cfg.TinyMax, r.cfg.ThinMax)
}

func (r *Renderer) cacheKeyFor(elem model.Element) silhouette.CacheKey {
	return silhouette.CacheKey{ElementID: elem.ID(), ViewID: r.view.ID, GeometryVersion: r.geometryVersion}
}

// renderProxy handles the TINY/LINEAR path (§4.H.e/f): it stamps the
// element's proxy silhouette into model_proxy_key (and, under
// ProxyMaskMin, a minimal slice of model_proxy_mask), never touching
// model_mask or z_min.
func (r *Renderer) renderProxy(elem model.Element, rect geom2d.CellRect, mode classify.Mode, category string) {
	opts := silhouette.Options{
		ThinMax:          float64(r.cfg.ThinMax) * r.raster.CellSize,
		CadMaxPaths:      r.cfg.CadMaxPaths,
		CadMaxPtsPerPath: r.cfg.CadMaxPtsPerPath,
	}
	loops := silhouette.Extract(elem, r.view, r.basis, mode, opts, r.cache, r.cacheKeyFor(elem))
	if len(loops) == 0 {
		r.recordOutcome(elem, outcomeNoGeometry)
		return
	}

	proxyKey := r.raster.GetOrCreateElementMetaIndex(elem.ID(), category, elem.Source())
	for _, loop := range loops {
		rasterfill.StampEdges(loop, r.grid, func(i, j int, depth float64) {
			r.raster.StampProxyEdge(i, j, depth, r.cfg.DepthEpsFt, proxyKey)
		})
	}

	if r.cfg.ProxyMaskMode == ProxyMaskMin {
		r.stampProxyMaskMin(rect, mode)
	}

	if r.diag != nil {
		r.diag.RecordConfidence(elem.ID(), arealextract.ConfidenceHigh, category)
		r.diag.RecordGeometryExtraction(elem.ID(), outcomeSuccess, category)
	}
}

// stampProxyMaskMin marks the minimal model_proxy_mask footprint for a
// TINY element (its center cell) or a LINEAR element (a band
// LinearBandThicknessCells wide across its long axis).
func (r *Renderer) stampProxyMaskMin(rect geom2d.CellRect, mode classify.Mode) {
	if mode == classify.Tiny {
		ci, cj := rect.CenterCell()
		r.raster.MarkProxyMaskCell(ci, cj)
		return
	}

	band := r.cfg.LinearBandThicknessCells
	if band < 1 {
		band = 1
	}
	ci, cj := rect.CenterCell()
	if rect.WidthCells() >= rect.HeightCells() {
		lo, hi := cj-band/2, cj-band/2+band-1
		for j := lo; j <= hi; j++ {
			for i := rect.IMin; i <= rect.IMax; i++ {
				r.raster.MarkProxyMaskCell(i, j)
			}
		}
		return
	}
	lo, hi := ci-band/2, ci-band/2+band-1
	for i := lo; i <= hi; i++ {
		for j := rect.JMin; j <= rect.JMax; j++ {
			r.raster.MarkProxyMaskCell(i, j)
		}
	}
}

// renderAreal handles the AREAL path (§4.H.g): the tiered extraction
// orchestrator produces loops, which are scan-converted (closed) and
// edge-stamped (open) through TryWriteCell, the one mutator of the model
// layers.
func (r *Renderer) renderAreal(elem model.Element, category string) {
	result := arealextract.Extract(elem, r.view, r.basis, r.sink())
	if len(result.Loops) == 0 {
		return
	}

	elemKey := r.raster.GetOrCreateElementMetaIndex(elem.ID(), category, elem.Source())
	write := func(i, j int, depth float64) {
		r.raster.TryWriteCell(i, j, depth, elemKey, false)
	}

	rasterfill.Fill(result.Loops, r.grid, write)
	for _, loop := range result.Loops {
		if loop.Open {
			rasterfill.StampEdges(loop, r.grid, write)
		}
	}
}

func (r *Renderer) recordOutcome(elem model.Element, outcome string) {
	if r.diag == nil {
		return
	}
	category := elem.Category()
	r.diag.RecordGeometryExtraction(elem.ID(), outcome, category)
}

// Annotation is the minimal description the collection collaborator
// supplies for an annotation (text, tag, or dimension) layered
// independent of the model: a stable key, its type, and the world-space
// box it occupies in the view.
type Annotation struct {
	Key      string
	AnnoType string
	Box      model.BBox
}

// RenderAnnotations stamps every annotation's footprint into the
// raster's annotation layer. Unlike model/proxy rendering this performs
// no depth test and never touches model_mask, model_proxy_mask, or
// z_min — set_cell_annotation is independent of those layers.
func (r *Renderer) RenderAnnotations(annotations []Annotation) {
	for _, a := range annotations {
		corners := a.Box.Corners()
		uvBounds, _ := r.basis.UVWFootprint(corners)
		rect := r.uvCellRect(geom2d.Bounds2D{XMin: uvBounds.XMin, YMin: uvBounds.YMin, XMax: uvBounds.XMax, YMax: uvBounds.YMax})
		if rect.Empty() {
			continue
		}
		metaIdx := r.raster.GetOrCreateAnnotationMetaIndex(a.Key, a.AnnoType)
		rect.Cells(func(i, j int) bool {
			r.raster.SetCellAnnotation(i, j, metaIdx, a.AnnoType)
			return true
		})
	}
}
