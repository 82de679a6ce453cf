package vop

import (
	"math"
	"testing"

	"github.com/archvop/vopraster/internal/model"
)

func mustSourceIdentity(t *testing.T) model.SourceIdentity {
	t.Helper()
	src, err := model.NewSourceIdentity(model.SourceHost, "doc-1", "")
	if err != nil {
		t.Fatalf("NewSourceIdentity: %v", err)
	}
	return src
}

func TestTryWriteCellNearerWinsOverFarther(t *testing.T) {
	r := NewViewRaster(4, 4, 1.0, 0, 0, 0)

	if !r.TryWriteCell(1, 1, 5.0, 10, false) {
		t.Fatal("first write at depth 5.0 should succeed")
	}
	if r.TryWriteCell(1, 1, 7.0, 20, false) {
		t.Fatal("farther write at depth 7.0 should be rejected")
	}
	if !r.TryWriteCell(1, 1, 2.0, 30, false) {
		t.Fatal("nearer write at depth 2.0 should succeed")
	}

	idx := r.index(1, 1)
	if r.zMin[idx] != 2.0 {
		t.Errorf("zMin = %v, want 2.0", r.zMin[idx])
	}
	if r.modelEdgeKey[idx] != 30 {
		t.Errorf("modelEdgeKey = %v, want 30", r.modelEdgeKey[idx])
	}
	if !r.modelMask[idx] {
		t.Error("modelMask should be true after a successful write")
	}
}

func TestTryWriteCellOutOfBoundsRejected(t *testing.T) {
	r := NewViewRaster(4, 4, 1.0, 0, 0, 0)
	if r.TryWriteCell(-1, 0, 1.0, 1, false) {
		t.Error("negative index should be rejected")
	}
	if r.TryWriteCell(4, 0, 1.0, 1, true) {
		t.Error("out-of-range index should be rejected even with force")
	}
}

func TestTryWriteCellForceBypassesDepthTestButNotZMinMonotonicity(t *testing.T) {
	r := NewViewRaster(4, 4, 1.0, 0, 0, 0)
	r.TryWriteCell(0, 0, 2.0, 1, false)
	if !r.TryWriteCell(0, 0, 9.0, 2, true) {
		t.Fatal("force should always succeed")
	}
	idx := r.index(0, 0)
	if r.zMin[idx] != 2.0 {
		t.Errorf("zMin should remain at the minimum seen (2.0), got %v", r.zMin[idx])
	}
	if r.modelEdgeKey[idx] != 2 {
		t.Errorf("modelEdgeKey should reflect the forced write, got %v", r.modelEdgeKey[idx])
	}
}

func TestStampProxyEdgeIndependentOfModelLayers(t *testing.T) {
	r := NewViewRaster(4, 4, 1.0, 0, 0, 0)
	r.StampProxyEdge(2, 2, 5.0, 0.01, 7)

	idx := r.index(2, 2)
	if r.modelMask[idx] {
		t.Error("StampProxyEdge must not set model_mask")
	}
	if !math.IsInf(r.zMin[idx], 1) {
		t.Errorf("StampProxyEdge must not touch z_min, got %v", r.zMin[idx])
	}
	if r.modelProxyKey[idx] != 7 {
		t.Errorf("modelProxyKey = %v, want 7", r.modelProxyKey[idx])
	}
}

func TestStampProxyEdgeOccludedByNearerModel(t *testing.T) {
	r := NewViewRaster(4, 4, 1.0, 0, 0, 0)
	r.TryWriteCell(1, 1, 1.0, 9, false)

	if r.StampProxyEdge(1, 1, 5.0, 0.01, 3) {
		t.Error("a proxy edge clearly behind existing model content must not stamp")
	}
	if !r.StampProxyEdge(1, 1, 0.5, 0.01, 3) {
		t.Error("a proxy edge nearer than z_min should be treated as visible")
	}
}

func TestGetOrCreateElementMetaIndexIdempotent(t *testing.T) {
	r := NewViewRaster(4, 4, 1.0, 0, 0, 0)
	src := mustSourceIdentity(t)

	a := r.GetOrCreateElementMetaIndex(1, "Wall", src)
	b := r.GetOrCreateElementMetaIndex(1, "Wall", src)
	if a != b {
		t.Errorf("same triple should return the same index: %d != %d", a, b)
	}

	c := r.GetOrCreateElementMetaIndex(2, "Wall", src)
	if c == a {
		t.Error("a different element id must get a distinct index")
	}
	if len(r.ElementMeta()) != 2 {
		t.Errorf("expected 2 element meta records, got %d", len(r.ElementMeta()))
	}
}

func TestSetCellAnnotationIndependentAndLastWriterWins(t *testing.T) {
	r := NewViewRaster(4, 4, 1.0, 0, 0, 0)
	idxA := r.GetOrCreateAnnotationMetaIndex("tag-1", "TAG")
	idxB := r.GetOrCreateAnnotationMetaIndex("tag-2", "TEXT")

	r.SetCellAnnotation(0, 0, idxA, "TAG")
	r.SetCellAnnotation(0, 0, idxB, "TEXT")

	idx := r.index(0, 0)
	if r.annoKey[idx] != idxB || r.annoType[idx] != "TEXT" {
		t.Error("the last SetCellAnnotation call should win the cell")
	}
	if r.modelMask[idx] {
		t.Error("SetCellAnnotation must never touch model_mask")
	}
}

func TestFinalizeAnnoOverModel(t *testing.T) {
	cfg := DefaultConfig()
	r := NewViewRaster(2, 1, 1.0, 0, 0, 0)

	r.TryWriteCell(0, 0, 1.0, 5, false) // model at (0,0), no annotation
	idx := r.GetOrCreateAnnotationMetaIndex("a", "TEXT")
	r.SetCellAnnotation(0, 0, idx, "TEXT") // anno over model
	r.SetCellAnnotation(1, 0, idx, "TEXT") // anno, no model beneath

	r.FinalizeAnnoOverModel(cfg)

	if !r.annoOverModel[r.index(0, 0)] {
		t.Error("(0,0) should be anno_over_model: has both anno and model")
	}
	if r.annoOverModel[r.index(1, 0)] {
		t.Error("(1,0) should not be anno_over_model: has anno but no model")
	}
}

func TestFinalizeAnnoOverModelIncludesProxiesWhenConfigured(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OverModelIncludesProxies = true
	r := NewViewRaster(1, 1, 1.0, 0, 0, 0)

	r.MarkProxyMaskCell(0, 0)
	idx := r.GetOrCreateAnnotationMetaIndex("a", "TAG")
	r.SetCellAnnotation(0, 0, idx, "TAG")

	r.FinalizeAnnoOverModel(cfg)
	if !r.annoOverModel[r.index(0, 0)] {
		t.Error("proxy-only cell with an annotation should count as anno_over_model when OverModelIncludesProxies")
	}
}

func TestCountsInvariant(t *testing.T) {
	r := NewViewRaster(2, 2, 1.0, 0, 0, 0)
	r.TryWriteCell(0, 0, 1.0, 1, false) // model only
	annoIdx := r.GetOrCreateAnnotationMetaIndex("x", "TEXT")
	r.SetCellAnnotation(1, 0, annoIdx, "TEXT")  // anno only
	r.SetCellAnnotation(0, 0, annoIdx, "TEXT")  // overlap with the model cell above
	// (1,1) stays empty.

	counts := r.Counts()
	if got := counts.Empty + counts.ModelOnly + counts.AnnoOnly + counts.Overlap; got != counts.TotalCells {
		t.Errorf("TotalCells invariant violated: %d != %d", got, counts.TotalCells)
	}
	if counts.TotalCells != 4 {
		t.Fatalf("TotalCells = %d, want 4", counts.TotalCells)
	}
	if counts.Overlap != 1 || counts.ModelOnly != 0 || counts.AnnoOnly != 1 || counts.Empty != 2 {
		t.Errorf("unexpected counts: %+v", counts)
	}
}

func TestSnapshotIsDefensiveCopy(t *testing.T) {
	r := NewViewRaster(2, 2, 1.0, 0, 0, 0)
	r.TryWriteCell(0, 0, 1.0, 1, false)

	snap := r.Snapshot()
	snap.ModelMask[0] = false
	if !r.modelMask[0] {
		t.Error("mutating the snapshot must not affect the live raster")
	}
}
