package arealextract

import (
	"github.com/archvop/vopraster/internal/model"
	"github.com/archvop/vopraster/internal/silhouette"
)

// Result is what Extract returns: the loops found (nil on total failure),
// the confidence of the result, and the name of the strategy that
// produced it ("failed" on total failure).
type Result struct {
	Loops      []silhouette.Loop
	Confidence Confidence
	Strategy   string
}

const strategyFailed = "failed"

// Extract runs the AREAL tiered fallback hierarchy against elem: HIGH via
// planar_face_loops/silhouette_edges, MEDIUM/LOW via an oriented bound
// fit to actual geometry or the bounding box, LOW via the plain bounding
// box, and failure when none of those produce anything. Every attempt and
// outcome is reported through sink, which may be nil.
func Extract(elem model.Element, view *model.View, basis model.ViewBasis, sink Sink) Result {
	elemID := elem.ID()
	category := elem.Category()
	if category == "" {
		category = "Unknown"
	}

	if result, ok := tryHighConfidence(elem, view, basis, elemID, category, sink); ok {
		return result
	}
	report(sink, func(s Sink) {
		s.RecordArealStrategy(elemID, "planar_face", false, category, "")
		s.RecordArealStrategy(elemID, "silhouette", false, category, "")
	})

	if result, ok := tryOrientedBbox(elem, view, basis, elemID, category, sink); ok {
		return result
	}

	if result, ok := tryAABB(elem, view, basis, elemID, category, sink); ok {
		return result
	}

	report(sink, func(s Sink) {
		s.RecordGeometryExtraction(elemID, "failed_all_strategies", category)
	})
	return Result{Strategy: strategyFailed}
}

func tryHighConfidence(elem model.Element, view *model.View, basis model.ViewBasis, elemID int, category string, sink Sink) (Result, bool) {
	report(sink, func(s Sink) { s.RecordMethodAttempt(elemID, "planar_face") })
	if loops := silhouette.PlanarFaceLoops(elem, view, basis); len(loops) > 0 {
		report(sink, func(s Sink) {
			s.RecordArealStrategy(elemID, "planar_face", true, category, ConfidenceHigh)
			s.RecordGeometryExtraction(elemID, "success", category)
			s.RecordExtractionMethod(elemID, category, "planar_face", true, ConfidenceHigh)
		})
		return Result{Loops: loops, Confidence: ConfidenceHigh, Strategy: silhouette.StrategyPlanarFaceLoops.String()}, true
	}

	report(sink, func(s Sink) { s.RecordMethodAttempt(elemID, "silhouette") })
	if loops := silhouette.SilhouetteEdges(elem, view, basis); len(loops) > 0 {
		report(sink, func(s Sink) {
			s.RecordArealStrategy(elemID, "silhouette", true, category, ConfidenceHigh)
			s.RecordGeometryExtraction(elemID, "success", category)
			s.RecordExtractionMethod(elemID, category, "silhouette", true, ConfidenceHigh)
		})
		return Result{Loops: loops, Confidence: ConfidenceHigh, Strategy: silhouette.StrategySilhouetteEdges.String()}, true
	}

	return Result{}, false
}

func tryOrientedBbox(elem model.Element, view *model.View, basis model.ViewBasis, elemID int, category string, sink Sink) (Result, bool) {
	report(sink, func(s Sink) { s.RecordMethodAttempt(elemID, "geometry_polygon") })
	if loop, ok := obbLoopFromGeometry(elem, view, basis); ok {
		report(sink, func(s Sink) {
			s.RecordExtractionMethod(elemID, category, "geometry_polygon", true, ConfidenceMedium)
			s.RecordConfidence(elemID, ConfidenceMedium, category)
		})
		return Result{Loops: []silhouette.Loop{loop}, Confidence: ConfidenceMedium, Strategy: "geometry_polygon"}, true
	}

	report(sink, func(s Sink) { s.RecordMethodAttempt(elemID, "bbox_obb") })
	if loops := silhouette.Obb(elem, view, basis); len(loops) > 0 {
		report(sink, func(s Sink) {
			s.RecordExtractionMethod(elemID, category, "bbox_obb", true, ConfidenceLow)
			s.RecordConfidence(elemID, ConfidenceLow, category)
		})
		return Result{Loops: loops, Confidence: ConfidenceLow, Strategy: "bbox_obb_used"}, true
	}

	return Result{}, false
}

func tryAABB(elem model.Element, view *model.View, basis model.ViewBasis, elemID int, category string, sink Sink) (Result, bool) {
	report(sink, func(s Sink) { s.RecordMethodAttempt(elemID, "aabb") })
	loops := silhouette.Bbox(elem, view, basis)
	if len(loops) == 0 {
		return Result{}, false
	}
	report(sink, func(s Sink) {
		s.RecordArealStrategy(elemID, "aabb_used", true, category, ConfidenceLow)
		s.RecordGeometryExtraction(elemID, "success", category)
		s.RecordExtractionMethod(elemID, category, "aabb", true, ConfidenceLow)
		s.RecordConfidence(elemID, ConfidenceLow, category)
	})
	return Result{Loops: loops, Confidence: ConfidenceLow, Strategy: "aabb_used"}, true
}
