package silhouette

import (
	"math"
	"testing"

	"github.com/archvop/vopraster/internal/cache"
	"github.com/archvop/vopraster/internal/classify"
	"github.com/archvop/vopraster/internal/geom3d"
	"github.com/archvop/vopraster/internal/model"
)

type fakeElement struct {
	id       int
	category string
	source   model.SourceIdentity
	bbox     model.BBox
	hasBBox  bool
	prims    []model.GeometryPrimitive
	locCurve geom3d.Curve
	hasLoc   bool
}

func (f *fakeElement) ID() int                       { return f.id }
func (f *fakeElement) Category() string               { return f.category }
func (f *fakeElement) Source() model.SourceIdentity   { return f.source }
func (f *fakeElement) BoundingBox(v *model.View) (model.BBox, bool) { return f.bbox, f.hasBBox }
func (f *fakeElement) Geometry(opts model.GeometryOptions) ([]model.GeometryPrimitive, error) {
	return f.prims, nil
}
func (f *fakeElement) LocationCurve() (geom3d.Curve, bool) { return f.locCurve, f.hasLoc }

func planViewBasis() model.ViewBasis {
	v := model.View{
		ViewDirection: geom3d.V3(0, 0, -1),
		Up:            geom3d.V3(0, 1, 0),
		Origin:        geom3d.Pt3(0, 0, 0),
	}
	return model.NewViewBasis(v)
}

func mustSource(t *testing.T, st model.SourceType) model.SourceIdentity {
	t.Helper()
	si, err := model.NewSourceIdentity(st, "elem-1", "")
	if err != nil {
		t.Fatalf("NewSourceIdentity: %v", err)
	}
	return si
}

func boxElement(t *testing.T) *fakeElement {
	return &fakeElement{
		id:       1,
		category: "Walls",
		source:   mustSource(t, model.SourceHost),
		hasBBox:  true,
		bbox: model.BBox{
			Min: geom3d.Pt3(-1, -1, -1),
			Max: geom3d.Pt3(1, 1, 1),
		},
	}
}

func TestBboxStrategy(t *testing.T) {
	elem := boxElement(t)
	basis := planViewBasis()

	loops := Bbox(elem, nil, basis)
	if len(loops) != 1 {
		t.Fatalf("len(loops) = %d, want 1", len(loops))
	}
	l := loops[0]
	if l.Strategy != StrategyBbox {
		t.Errorf("Strategy = %v, want bbox", l.Strategy)
	}
	if len(l.Points) != 4 {
		t.Fatalf("len(points) = %d, want 4", len(l.Points))
	}
	for _, p := range l.Points {
		if math.Abs(math.Abs(p.U)-1) > 1e-9 || math.Abs(math.Abs(p.V)-1) > 1e-9 {
			t.Errorf("unexpected corner (%v,%v), want |u|=|v|=1", p.U, p.V)
		}
	}
	if got := l.MinDepth(); !approxEq(got, -1, 1e-9) {
		t.Errorf("MinDepth = %v, want -1 (nearest Z=1 face under forward -Z)", got)
	}
}

func approxEq(a, b, eps float64) bool { return math.Abs(a-b) <= eps }

func TestBboxStrategyNoBoundingBox(t *testing.T) {
	elem := &fakeElement{hasBBox: false}
	if loops := Bbox(elem, nil, planViewBasis()); loops != nil {
		t.Errorf("expected nil loops for element without a bounding box, got %v", loops)
	}
}

func TestObbStrategyReturnsHull(t *testing.T) {
	elem := boxElement(t)
	loops := Obb(elem, nil, planViewBasis())
	if len(loops) != 1 {
		t.Fatalf("len(loops) = %d, want 1", len(loops))
	}
	if len(loops[0].Points) < 3 {
		t.Errorf("expected a hull of at least 3 points, got %d", len(loops[0].Points))
	}
}

func TestUVObbRectStrategy(t *testing.T) {
	elem := boxElement(t)
	loops := UVObbRect(elem, nil, planViewBasis())
	if len(loops) != 1 {
		t.Fatalf("len(loops) = %d, want 1", len(loops))
	}
	if len(loops[0].Points) != 4 {
		t.Errorf("len(points) = %d, want 4", len(loops[0].Points))
	}
}

func TestPlanarFaceLoopsKeepsOnlyFrontFacing(t *testing.T) {
	basis := planViewBasis()
	towardViewer := geom3d.V3(0, 0, 1)
	awayFromViewer := geom3d.V3(0, 0, -1)

	front := model.Face{
		Outer:  []geom3d.Point3{geom3d.Pt3(-1, -1, 1), geom3d.Pt3(1, -1, 1), geom3d.Pt3(1, 1, 1), geom3d.Pt3(-1, 1, 1)},
		Normal: towardViewer,
	}
	back := model.Face{
		Outer:  []geom3d.Point3{geom3d.Pt3(-1, -1, -1), geom3d.Pt3(1, -1, -1), geom3d.Pt3(1, 1, -1), geom3d.Pt3(-1, 1, -1)},
		Normal: awayFromViewer,
	}
	elem := &fakeElement{
		source: mustSource(t, model.SourceHost),
		prims: []model.GeometryPrimitive{
			{Solid: &model.Solid{Faces: []model.Face{front, back}}},
		},
	}

	loops := PlanarFaceLoops(elem, nil, basis)
	if len(loops) != 1 {
		t.Fatalf("len(loops) = %d, want 1 (only the front-facing face)", len(loops))
	}
	if !loops[0].HasPlane {
		t.Error("expected a usable plane depth for a view-facing face")
	}
	if got := loops[0].DepthAt(0, 0); !approxEq(got, -1, 1e-9) {
		t.Errorf("DepthAt(0,0) = %v, want -1", got)
	}
}

func TestPlanarFaceLoopsPreservesHoles(t *testing.T) {
	basis := planViewBasis()
	face := model.Face{
		Outer: []geom3d.Point3{geom3d.Pt3(-2, -2, 1), geom3d.Pt3(2, -2, 1), geom3d.Pt3(2, 2, 1), geom3d.Pt3(-2, 2, 1)},
		Inner: [][]geom3d.Point3{
			{geom3d.Pt3(-0.5, -0.5, 1), geom3d.Pt3(0.5, -0.5, 1), geom3d.Pt3(0.5, 0.5, 1), geom3d.Pt3(-0.5, 0.5, 1)},
		},
		Normal: geom3d.V3(0, 0, 1),
	}
	elem := &fakeElement{
		source: mustSource(t, model.SourceHost),
		prims:  []model.GeometryPrimitive{{Solid: &model.Solid{Faces: []model.Face{face}}}},
	}

	loops := PlanarFaceLoops(elem, nil, basis)
	if len(loops) != 2 {
		t.Fatalf("len(loops) = %d, want 2 (outer + hole)", len(loops))
	}
	holes := 0
	for _, l := range loops {
		if l.IsHole {
			holes++
		}
	}
	if holes != 1 {
		t.Errorf("holes = %d, want 1", holes)
	}
}

func TestSilhouetteEdgesBoundaryEdge(t *testing.T) {
	basis := planViewBasis()
	edge := model.Edge{Curve: geom3d.Line{P0: geom3d.Pt3(-1, -1, 0), P1: geom3d.Pt3(1, 1, 0)}}
	elem := &fakeElement{
		source: mustSource(t, model.SourceHost),
		prims:  []model.GeometryPrimitive{{Solid: &model.Solid{Edges: []model.Edge{edge, edge}}}},
	}
	loops := SilhouetteEdges(elem, nil, basis)
	if len(loops) != 1 {
		t.Fatalf("len(loops) = %d, want 1", len(loops))
	}
	if len(loops[0].Points) < 3 {
		t.Errorf("expected at least 3 threaded points, got %d", len(loops[0].Points))
	}
}

func TestCadCurvesReturnsOpenPolylines(t *testing.T) {
	basis := planViewBasis()
	curve := geom3d.Line{P0: geom3d.Pt3(-1, 0, 0), P1: geom3d.Pt3(1, 0, 0)}
	elem := &fakeElement{
		source: mustSource(t, model.SourceDWG),
		prims:  []model.GeometryPrimitive{{Curve: curve}},
	}
	loops := CadCurves(elem, nil, basis, 10, 10)
	if len(loops) != 1 {
		t.Fatalf("len(loops) = %d, want 1", len(loops))
	}
	if !loops[0].Open {
		t.Error("expected cad_curves loop to be Open")
	}
}

func TestCadCurvesRespectsMaxPaths(t *testing.T) {
	basis := planViewBasis()
	curve := geom3d.Line{P0: geom3d.Pt3(-1, 0, 0), P1: geom3d.Pt3(1, 0, 0)}
	elem := &fakeElement{
		source: mustSource(t, model.SourceDWG),
		prims: []model.GeometryPrimitive{
			{Curve: curve}, {Curve: curve}, {Curve: curve},
		},
	}
	loops := CadCurves(elem, nil, basis, 2, 10)
	if len(loops) != 2 {
		t.Fatalf("len(loops) = %d, want 2 (capped by maxPaths)", len(loops))
	}
}

func TestLocationCurveObbBuildsThinQuad(t *testing.T) {
	basis := planViewBasis()
	elem := &fakeElement{
		locCurve: geom3d.Line{P0: geom3d.Pt3(-5, 0, 0), P1: geom3d.Pt3(5, 0, 0)},
		hasLoc:   true,
	}
	loops := LocationCurveObb(elem, nil, basis, 2.0)
	if len(loops) != 1 {
		t.Fatalf("len(loops) = %d, want 1", len(loops))
	}
	if len(loops[0].Points) != 4 {
		t.Fatalf("len(points) = %d, want 4", len(loops[0].Points))
	}
	for _, p := range loops[0].Points {
		if math.Abs(p.V) > 1.0+1e-9 {
			t.Errorf("expected quad half-width <= 1.0 (thinMax/2), got V=%v", p.V)
		}
	}
}

func TestLocationCurveObbDegenerateReturnsNil(t *testing.T) {
	basis := planViewBasis()
	elem := &fakeElement{
		locCurve: geom3d.Line{P0: geom3d.Pt3(3, 3, 3), P1: geom3d.Pt3(3, 3, 3)},
		hasLoc:   true,
	}
	if loops := LocationCurveObb(elem, nil, basis, 2.0); loops != nil {
		t.Errorf("expected nil for a zero-length location curve, got %v", loops)
	}
}

func TestExtractPrefersLocationCurveForLinear(t *testing.T) {
	basis := planViewBasis()
	elem := &fakeElement{
		source:   mustSource(t, model.SourceHost),
		hasBBox:  true,
		bbox:     model.BBox{Min: geom3d.Pt3(-5, -0.1, -0.1), Max: geom3d.Pt3(5, 0.1, 0.1)},
		locCurve: geom3d.Line{P0: geom3d.Pt3(-5, 0, 0), P1: geom3d.Pt3(5, 0, 0)},
		hasLoc:   true,
	}
	loops := Extract(elem, nil, basis, classify.Linear, Options{ThinMax: 1.0}, nil, CacheKey{})
	if len(loops) != 1 || loops[0].Strategy != StrategyLocationCurveObb {
		t.Fatalf("expected location_curve_obb to win for a LINEAR element with a location curve, got %+v", loops)
	}
}

func TestExtractCadSourcePrefersCadCurves(t *testing.T) {
	basis := planViewBasis()
	curve := geom3d.Line{P0: geom3d.Pt3(-1, 0, 0), P1: geom3d.Pt3(1, 0, 0)}
	elem := &fakeElement{
		source: mustSource(t, model.SourceDWG),
		hasBBox: true,
		bbox:    model.BBox{Min: geom3d.Pt3(-1, -1, -1), Max: geom3d.Pt3(1, 1, 1)},
		prims:   []model.GeometryPrimitive{{Curve: curve}},
	}
	loops := Extract(elem, nil, basis, classify.Areal, Options{CadMaxPaths: 10, CadMaxPtsPerPath: 10}, nil, CacheKey{})
	if len(loops) != 1 || loops[0].Strategy != StrategyCadCurves {
		t.Fatalf("expected cad_curves to win for a DWG-sourced element, got %+v", loops)
	}
}

func TestExtractArealWithoutGeometryFallsBackToObb(t *testing.T) {
	basis := planViewBasis()
	elem := boxElement(t) // no prims, no location curve: planar/silhouette find nothing, bbox-corner obb answers
	loops := Extract(elem, nil, basis, classify.Areal, Options{}, nil, CacheKey{})
	if len(loops) == 0 {
		t.Fatal("expected an obb result")
	}
	if loops[0].Strategy != StrategyObb {
		t.Errorf("Strategy = %v, want %v", loops[0].Strategy, StrategyObb)
	}
}

func TestExtractUsesCache(t *testing.T) {
	elem := boxElement(t)
	basis := planViewBasis()
	c := cache.NewBounded[CacheKey, []Loop](10)
	key := CacheKey{ElementID: 1, ViewID: "v1"}

	first := Extract(elem, nil, basis, classify.Tiny, Options{}, c, key)
	if len(first) == 0 {
		t.Fatal("expected a result to cache")
	}
	first[0].Points[0].U = 999 // mutate caller's copy

	second := Extract(elem, nil, basis, classify.Tiny, Options{}, c, key)
	if second[0].Points[0].U == 999 {
		t.Error("cache returned a mutable reference instead of a defensive copy")
	}
}
