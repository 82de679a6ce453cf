package vop

import (
	"fmt"
	"math"

	"github.com/archvop/vopraster/internal/diagnostics"
	"github.com/archvop/vopraster/internal/geom2d"
	"github.com/archvop/vopraster/internal/geom3d"
	"github.com/archvop/vopraster/internal/model"
)

// Driver runs one view at a time: it rejects unsupported view kinds,
// sizes and allocates a ViewRaster, runs the Renderer over the view's
// elements and annotations, finalizes the derived annotation-over-model
// layer, and assembles the export record.
type Driver struct {
	cfg Config
}

// NewDriver builds a Driver bound to cfg.
func NewDriver(cfg Config) *Driver {
	return &Driver{cfg: cfg}
}

// Result is one view's complete processing outcome.
type Result struct {
	Record                   ExportRecord
	Raster                   *ViewRaster // nil unless cfg.RetainRastersInMemory
	SkippedOutsideViewVolume int
	Errors                   []string
}

// ExportRecord is the per-view export shape: identity, geometry, the
// cell layers (as a snapshot), config, and diagnostics summary.
type ExportRecord struct {
	ViewID        string
	ViewName      string
	Width, Height int
	CellSize      float64
	TileSize      int
	TotalElements int
	FilledCells   int
	Raster        CellSnapshot
	Config        Config
	Diagnostics   *diagnostics.Summary
}

// Run builds and rasters view from elements (pre-sorted front-to-back by
// the caller's collection collaborator) and annotations. Returns
// ErrUnsupportedViewKind for a non-orthographic view — the one failure
// this driver still treats as refusing the view outright, since it never
// allocates anything for it. Every other fatal condition, including a
// degenerate raster extent and any panic escaping view processing, is
// caught and surfaced as an errors[] entry on an otherwise-empty Result
// instead of propagating: per the error taxonomy, nothing below the
// driver may abort the run, and a view with an error still produces a
// row whose uncovered cells are simply Empty.
func (d *Driver) Run(view *model.View, elements []model.Element, annotations []Annotation) (Result, error) {
	if !view.Kind.Orthographic() {
		return Result{}, fmt.Errorf("%w: %v", ErrUnsupportedViewKind, view.Kind)
	}

	var result Result
	if panicErr := recoverToError(func() { result = d.runView(view, elements, annotations) }); panicErr != nil {
		Logger().Warn("vop: recovered panic processing view, continuing with next view",
			"view_id", view.ID, "error", panicErr)
		result = d.failureResult(view, len(elements), panicErr)
	}
	return result, nil
}

// failureResult builds a zero-coverage row for a view that could not be
// rastered, carrying err in Result.Errors so the run gets one row per
// view instead of an aborted batch.
func (d *Driver) failureResult(view *model.View, totalElements int, err error) Result {
	return Result{
		Record: ExportRecord{
			ViewID:        view.ID,
			ViewName:      view.Name,
			TotalElements: totalElements,
			Config:        d.cfg,
		},
		Errors: []string{err.Error()},
	}
}

// runView is Run's guarded body: a panic anywhere in here is caught by
// Run's recoverToError wrapper, never by this function itself.
func (d *Driver) runView(view *model.View, elements []model.Element, annotations []Annotation) Result {
	basis := model.NewViewBasis(*view)
	bounds := d.viewBounds(view, basis, elements)

	cellSize := d.cellSizeWorld(view)
	width, height := bounds.GridSize(cellSize)
	width, height = d.clampToSheet(width, height)
	if width <= 0 || height <= 0 {
		err := fmt.Errorf("%w: degenerate extent for view %q", ErrRasterAllocation, view.ID)
		Logger().Warn("vop: raster allocation failed for view", "view_id", view.ID, "error", err)
		return d.failureResult(view, len(elements), err)
	}

	tileSize := d.cfg.TileSize
	if d.cfg.AdaptiveTileSize {
		tileSize = 0 // the TileMap picks an adaptive size for tileSize <= 0
	}
	raster := NewViewRaster(width, height, cellSize, bounds.XMin, bounds.YMin, tileSize)

	var diag *diagnostics.StrategyDiagnostics
	if d.cfg.ExportStrategyDiagnostics {
		diag = diagnostics.New()
	}

	renderer := NewRenderer(d.cfg, view, raster, diag)

	skipped := 0
	kept := make([]model.Element, 0, len(elements))
	for _, elem := range elements {
		// A panic in the view-volume check keeps the element; the
		// renderer's per-element recovery then records it.
		outside := false
		_ = recoverToError(func() { outside = d.outsideViewVolume(elem, view, basis) })
		if outside {
			skipped++
			continue
		}
		kept = append(kept, elem)
	}
	renderer.Render(kept)
	renderer.RenderAnnotations(annotations)

	raster.FinalizeAnnoOverModel(d.cfg)

	counts := raster.Counts()
	record := ExportRecord{
		ViewID:        view.ID,
		ViewName:      view.Name,
		Width:         width,
		Height:        height,
		CellSize:      cellSize,
		TileSize:      raster.Tiles.TileSize(),
		TotalElements: len(kept),
		FilledCells:   counts.ModelOnly + counts.Overlap,
		Raster:        raster.Snapshot(),
		Config:        d.cfg,
	}
	if diag != nil {
		summary := diag.GetSummary()
		record.Diagnostics = &summary
	}

	Logger().Info("vop: view processed",
		"view_id", view.ID, "elements", len(kept), "filled_cells", record.FilledCells, "skipped", skipped)

	result := Result{Record: record, SkippedOutsideViewVolume: skipped}
	if d.cfg.RetainRastersInMemory {
		result.Raster = raster
	}
	return result
}

// cellSizeWorld converts the configured paper cell size (inches) to world
// feet via the view's drawing scale.
func (d *Driver) cellSizeWorld(view *model.View) float64 {
	return (d.cfg.CellSizePaperIn / 12.0) * view.Scale
}

// clampToSheet caps width/height at the configured maximum sheet size in
// cells, converted the same way as the cell size itself.
func (d *Driver) clampToSheet(width, height int) (int, int) {
	maxW := int(d.cfg.MaxSheetWidthIn / d.cfg.CellSizePaperIn)
	maxH := int(d.cfg.MaxSheetHeightIn / d.cfg.CellSizePaperIn)
	if maxW > 0 && width > maxW {
		width = maxW
	}
	if maxH > 0 && height > maxH {
		height = maxH
	}
	return width, height
}

// viewBounds returns the view's UV footprint: the projected crop box when
// the view has one, otherwise a synthetic extent built from the elements'
// bounding boxes (bounded by ExtentsScanMaxElements), padded by
// BoundsBufferIn.
func (d *Driver) viewBounds(view *model.View, basis model.ViewBasis, elements []model.Element) geom2d.Bounds2D {
	if view.HasCropBox {
		corners := model.BBox3Corners(view.CropMin, view.CropMax, geom3d.Transform{}, false)
		uv, _ := basis.UVWFootprint(corners)
		return uv
	}
	return d.synthesizeBounds(view, basis, elements)
}

func (d *Driver) synthesizeBounds(view *model.View, basis model.ViewBasis, elements []model.Element) geom2d.Bounds2D {
	b := geom2d.Bounds2D{XMin: math.Inf(1), YMin: math.Inf(1), XMax: math.Inf(-1), YMax: math.Inf(-1)}
	maxElems := d.cfg.ExtentsScanMaxElements
	if maxElems <= 0 || maxElems > len(elements) {
		maxElems = len(elements)
	}
	if maxElems < len(elements) {
		Logger().Warn("vop: synthetic-bounds scan truncated",
			"view_id", view.ID, "scanned", maxElems, "elements", len(elements))
	}
	for _, elem := range elements[:maxElems] {
		bbox, ok := elem.BoundingBox(view)
		if !ok {
			continue
		}
		corners := bbox.Corners()
		uv, _ := basis.UVWFootprint(corners)
		b.XMin = math.Min(b.XMin, uv.XMin)
		b.YMin = math.Min(b.YMin, uv.YMin)
		b.XMax = math.Max(b.XMax, uv.XMax)
		b.YMax = math.Max(b.YMax, uv.YMax)
	}
	if math.IsInf(b.XMin, 1) {
		return geom2d.Bounds2D{}
	}
	bufferFt := (d.cfg.BoundsBufferIn / 12.0) * view.Scale
	b.XMin -= bufferFt
	b.YMin -= bufferFt
	b.XMax += bufferFt
	b.YMax += bufferFt
	return b
}

// outsideViewVolume reports whether elem's depth range is disjoint from
// the view's closed [near, far] volume, normalized so NearW/FarW may be given in
// either order.
func (d *Driver) outsideViewVolume(elem model.Element, view *model.View, basis model.ViewBasis) bool {
	bbox, ok := elem.BoundingBox(view)
	if !ok {
		return false
	}
	corners := bbox.Corners()
	wMin, wMax := math.Inf(1), math.Inf(-1)
	for _, c := range corners {
		_, _, w := basis.WorldToView(c)
		wMin = math.Min(wMin, w)
		wMax = math.Max(wMax, w)
	}
	lo, hi := view.NearW, view.FarW
	if lo > hi {
		lo, hi = hi, lo
	}
	return wMax < lo || wMin > hi
}
