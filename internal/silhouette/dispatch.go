package silhouette

import (
	"github.com/archvop/vopraster/internal/cache"
	"github.com/archvop/vopraster/internal/classify"
	"github.com/archvop/vopraster/internal/model"
)

// CacheKey identifies one element's silhouette within one view at one
// geometry version, the key an Extract caller uses to memoize results
// across a pass.
type CacheKey struct {
	ElementID       int
	ViewID          string
	GeometryVersion int64
}

// Options carries the small set of config values a strategy needs beyond
// the element/view/basis triple every strategy shares.
type Options struct {
	ThinMax          float64
	CadMaxPaths      int
	CadMaxPtsPerPath int
}

// Extract runs the strategy order for mode against elem, returning the
// first non-empty result. cad_curves and location_curve_obb sit outside
// the base TINY/LINEAR/AREAL order table (the specification's strategy
// table lists their "intended users" as CAD imports and diagonal thin
// members respectively, not a classification tier) so they are tried
// first whenever they apply: cad_curves for any DWG-sourced element,
// location_curve_obb for any LINEAR element that exposes a location
// curve. If every applicable strategy returns nothing, a final
// bbox_fallback attempt is made before giving up.
//
// cacheKey is only consulted when c is non-nil. A cache hit returns a
// defensive copy so the caller can never mutate the cached slice; a
// cache write also stores a defensive copy so a caller mutating its own
// result can't corrupt the cache.
func Extract(elem model.Element, view *model.View, basis model.ViewBasis, mode classify.Mode, opts Options, c *cache.Bounded[CacheKey, []Loop], cacheKey CacheKey) []Loop {
	if c != nil {
		if cached, ok := c.Get(cacheKey); ok {
			return copyLoops(cached)
		}
	}

	loops := extractUncached(elem, view, basis, mode, opts)

	if c != nil && len(loops) > 0 {
		c.Set(cacheKey, copyLoops(loops))
	}
	return loops
}

func extractUncached(elem model.Element, view *model.View, basis model.ViewBasis, mode classify.Mode, opts Options) []Loop {
	if elem.Source().SourceType == model.SourceDWG {
		if loops := CadCurves(elem, view, basis, opts.CadMaxPaths, opts.CadMaxPtsPerPath); len(loops) > 0 {
			return loops
		}
	}

	if mode == classify.Linear {
		if loops := LocationCurveObb(elem, view, basis, opts.ThinMax); len(loops) > 0 {
			return loops
		}
	}

	for _, strat := range orderFor(mode) {
		if loops := run(strat, elem, view, basis); len(loops) > 0 {
			return loops
		}
	}

	loops := Bbox(elem, view, basis)
	for i := range loops {
		loops[i].Strategy = StrategyBboxFallback
	}
	return loops
}

func orderFor(mode classify.Mode) []Strategy {
	switch mode {
	case classify.Tiny:
		return TinyOrder
	case classify.Linear:
		return LinearOrder
	case classify.Areal:
		return ArealOrder
	default:
		return ArealOrder
	}
}

func run(strat Strategy, elem model.Element, view *model.View, basis model.ViewBasis) []Loop {
	switch strat {
	case StrategyBbox:
		return Bbox(elem, view, basis)
	case StrategyObb:
		return Obb(elem, view, basis)
	case StrategyUVObbRect:
		return UVObbRect(elem, view, basis)
	case StrategyPlanarFaceLoops:
		return PlanarFaceLoops(elem, view, basis)
	case StrategySilhouetteEdges:
		return SilhouetteEdges(elem, view, basis)
	default:
		return nil
	}
}

func copyLoops(loops []Loop) []Loop {
	out := make([]Loop, len(loops))
	for i, l := range loops {
		pts := make([]UVW, len(l.Points))
		copy(pts, l.Points)
		l.Points = pts
		out[i] = l
	}
	return out
}
