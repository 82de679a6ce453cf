package vop

import "github.com/archvop/vopraster/internal/classify"

// ProxyMaskMode controls how much of a TINY/LINEAR element's proxy
// silhouette participates in the model layers. See Config.ProxyMaskMode.
type ProxyMaskMode int

const (
	// ProxyMaskEdges stamps proxy edges into model_proxy_key only.
	ProxyMaskEdges ProxyMaskMode = iota
	// ProxyMaskMin additionally sets model_proxy_mask: the center cell
	// for TINY elements, a one-cell band along the long axis for LINEAR.
	ProxyMaskMin
)

// Config is a flat struct of every row in the configuration table,
// constructed via DefaultConfig and refined with functional Option
// values, the same shape as the teacher's ContextOption/contextOptions
// pair generalized from "configure a Context" to "configure a view pass".
type Config struct {
	// TileSize is the TileMap tile edge in cells; AdaptiveTileSize, when
	// true, ignores TileSize and picks a power-of-two edge targeting
	// ~2000 tiles instead.
	TileSize         int
	AdaptiveTileSize bool

	// OverModelIncludesProxies controls whether proxy_mask participates
	// in anno_over_model alongside model_mask at finalize time.
	OverModelIncludesProxies bool

	// ProxyMaskMode chooses how much of a TINY/LINEAR proxy silhouette
	// reaches the model layers.
	ProxyMaskMode ProxyMaskMode

	// DepthEpsFt is the depth tolerance used when comparing edge
	// visibility to z_min while stamping proxy/edge-only loops.
	DepthEpsFt float64

	// TinyMax, ThinMax are the classifier's cell-unit thresholds.
	TinyMax, ThinMax int

	// CellSizePaperIn is the cell size on paper, in inches, converted to
	// world feet via the view's drawing scale. MaxSheetWidthIn/HeightIn
	// cap the raster's paper-space extent; BoundsBufferIn pads a
	// synthetic extent when the view has no crop box.
	CellSizePaperIn                   float64
	MaxSheetWidthIn, MaxSheetHeightIn float64
	BoundsBufferIn                    float64

	// IncludeLinkedRVT, IncludeDWGImports gate whether the collection
	// collaborator expands linked-document and DWG-import wrappers.
	IncludeLinkedRVT, IncludeDWGImports bool

	// LinearBandThicknessCells is the width, in cells, of the proxy band
	// stamped along a LINEAR element's long axis under ProxyMaskMin.
	LinearBandThicknessCells int

	// GeometryCacheMaxItems sizes the silhouette LRU cache; 0 disables
	// caching outright (every read misses, every write is a no-op).
	GeometryCacheMaxItems int

	// ExtentsScanMaxElements caps how many elements (in the given order)
	// the Driver reads when it synthesizes bounds for a view with no crop
	// box; a truncated scan uses the partial union and logs a Warn.
	// ExtentsScanTimeBudgetS is carried in the config but the Driver's
	// scan does not read it: no time limit is applied.
	ExtentsScanMaxElements int
	ExtentsScanTimeBudgetS float64

	// TierB* configure the classifier's ambiguity escalation to the PCA
	// channel (see internal/classify.AmbiguityConfig).
	TierBMarginCellsMin, TierBMarginCellsMax int
	TierBCellSizeRefFt                       float64
	TierBAreaThreshMin, TierBAreaThreshMax   int
	TierBAreaFraction                        float64

	// CadMaxPaths, CadMaxPtsPerPath bound cad_curves tessellation for
	// DWG-imported elements (grounded on original_source/core/
	// silhouette.py's cad_max_paths/cad_max_pts_per_path).
	CadMaxPaths, CadMaxPtsPerPath int

	// ExportStrategyDiagnostics controls whether the driver constructs a
	// StrategyDiagnostics sink and populates the seven summary columns.
	ExportStrategyDiagnostics bool

	// RetainRastersInMemory controls whether the driver keeps the
	// ViewRaster around after producing the export record, or discards
	// it once serialized.
	RetainRastersInMemory bool
}

// DefaultConfig returns the package's default configuration.
func DefaultConfig() Config {
	return Config{
		TileSize:                  0,
		AdaptiveTileSize:          true,
		OverModelIncludesProxies:  false,
		ProxyMaskMode:             ProxyMaskEdges,
		DepthEpsFt:                0.01,
		TinyMax:                   2,
		ThinMax:                   2,
		CellSizePaperIn:           1.0 / 8.0,
		MaxSheetWidthIn:           48,
		MaxSheetHeightIn:          36,
		BoundsBufferIn:            2,
		IncludeLinkedRVT:          true,
		IncludeDWGImports:         true,
		LinearBandThicknessCells:  1,
		GeometryCacheMaxItems:     2000,
		ExtentsScanMaxElements:    50000,
		ExtentsScanTimeBudgetS:    5.0,
		TierBMarginCellsMin:       1,
		TierBMarginCellsMax:       4,
		TierBCellSizeRefFt:        0.5,
		TierBAreaThreshMin:        100,
		TierBAreaThreshMax:        100000,
		TierBAreaFraction:         0.1,
		CadMaxPaths:               5000,
		CadMaxPtsPerPath:          256,
		ExportStrategyDiagnostics: true,
		RetainRastersInMemory:     false,
	}
}

// Option configures a Config during creation.
//
// Example:
//
//	cfg := vop.DefaultConfig()
//	for _, opt := range []vop.Option{vop.WithClassifierThresholds(3, 2), vop.WithExportStrategyDiagnostics(false)} {
//		opt(&cfg)
//	}
//	driver := vop.NewDriver(cfg)
type Option func(*Config)

// WithTileSize fixes the TileMap tile edge and disables adaptive sizing.
func WithTileSize(cells int) Option {
	return func(c *Config) {
		c.TileSize = cells
		c.AdaptiveTileSize = false
	}
}

// WithAdaptiveTileSize re-enables adaptive tile sizing.
func WithAdaptiveTileSize() Option {
	return func(c *Config) { c.AdaptiveTileSize = true }
}

// WithOverModelIncludesProxies sets whether proxy presence participates
// in anno_over_model.
func WithOverModelIncludesProxies(v bool) Option {
	return func(c *Config) { c.OverModelIncludesProxies = v }
}

// WithProxyMaskMode sets how proxy silhouettes reach the model layers.
func WithProxyMaskMode(mode ProxyMaskMode) Option {
	return func(c *Config) { c.ProxyMaskMode = mode }
}

// WithDepthEpsFt sets the edge-visibility depth tolerance.
func WithDepthEpsFt(eps float64) Option {
	return func(c *Config) { c.DepthEpsFt = eps }
}

// WithClassifierThresholds sets the TINY/LINEAR/AREAL cell-unit cutoffs.
func WithClassifierThresholds(tinyMax, thinMax int) Option {
	return func(c *Config) {
		c.TinyMax = tinyMax
		c.ThinMax = thinMax
	}
}

// WithCellSizePaperIn sets the cell size on paper, in inches.
func WithCellSizePaperIn(in float64) Option {
	return func(c *Config) { c.CellSizePaperIn = in }
}

// WithMaxSheetSizeIn caps the raster's paper-space extent.
func WithMaxSheetSizeIn(widthIn, heightIn float64) Option {
	return func(c *Config) {
		c.MaxSheetWidthIn = widthIn
		c.MaxSheetHeightIn = heightIn
	}
}

// WithBoundsBufferIn sets the padding applied to a synthetic extent when
// a view has no crop box.
func WithBoundsBufferIn(in float64) Option {
	return func(c *Config) { c.BoundsBufferIn = in }
}

// WithIncludeLinkedRVT toggles expansion of linked-document wrappers.
func WithIncludeLinkedRVT(v bool) Option {
	return func(c *Config) { c.IncludeLinkedRVT = v }
}

// WithIncludeDWGImports toggles expansion of DWG-import wrappers.
func WithIncludeDWGImports(v bool) Option {
	return func(c *Config) { c.IncludeDWGImports = v }
}

// WithLinearBandThicknessCells sets the LINEAR proxy band width under
// ProxyMaskMin.
func WithLinearBandThicknessCells(cells int) Option {
	return func(c *Config) { c.LinearBandThicknessCells = cells }
}

// WithGeometryCacheMaxItems sizes the silhouette LRU cache; 0 disables it.
func WithGeometryCacheMaxItems(n int) Option {
	return func(c *Config) { c.GeometryCacheMaxItems = n }
}

// WithExtentsScanBudget sets ExtentsScanMaxElements and
// ExtentsScanTimeBudgetS (see Config for which of the two the Driver
// applies).
func WithExtentsScanBudget(maxElements int, timeBudgetS float64) Option {
	return func(c *Config) {
		c.ExtentsScanMaxElements = maxElements
		c.ExtentsScanTimeBudgetS = timeBudgetS
	}
}

// WithTierBThresholds sets the classifier's PCA-escalation ambiguity
// thresholds.
func WithTierBThresholds(marginMin, marginMax int, cellSizeRefFt float64, areaMin, areaMax int, areaFraction float64) Option {
	return func(c *Config) {
		c.TierBMarginCellsMin = marginMin
		c.TierBMarginCellsMax = marginMax
		c.TierBCellSizeRefFt = cellSizeRefFt
		c.TierBAreaThreshMin = areaMin
		c.TierBAreaThreshMax = areaMax
		c.TierBAreaFraction = areaFraction
	}
}

// WithCadTessellationLimits bounds cad_curves extraction.
func WithCadTessellationLimits(maxPaths, maxPtsPerPath int) Option {
	return func(c *Config) {
		c.CadMaxPaths = maxPaths
		c.CadMaxPtsPerPath = maxPtsPerPath
	}
}

// WithExportStrategyDiagnostics toggles whether the driver builds a
// StrategyDiagnostics sink and populates the seven summary columns.
func WithExportStrategyDiagnostics(v bool) Option {
	return func(c *Config) { c.ExportStrategyDiagnostics = v }
}

// WithRetainRastersInMemory toggles whether the driver keeps the
// ViewRaster around after producing the export record.
func WithRetainRastersInMemory(v bool) Option {
	return func(c *Config) { c.RetainRastersInMemory = v }
}

// apply runs every option against a copy of the default configuration.
func apply(opts []Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// ambiguityConfig projects the classifier's tier-B fields out of Config,
// the shape internal/classify.IsAmbiguous expects.
func (c Config) ambiguityConfig() classify.AmbiguityConfig {
	return classify.AmbiguityConfig{
		ThinMax:        c.ThinMax,
		MarginCellsMin: c.TierBMarginCellsMin,
		MarginCellsMax: c.TierBMarginCellsMax,
		CellSizeRefFt:  c.TierBCellSizeRefFt,
		AreaThreshMin:  c.TierBAreaThreshMin,
		AreaThreshMax:  c.TierBAreaThreshMax,
		AreaFraction:   c.TierBAreaFraction,
	}
}
