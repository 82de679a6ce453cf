package diagnostics

import (
	"strconv"

	"github.com/archvop/vopraster/internal/arealextract"
)

// StrategyDiagnostics tracks element classification, AREAL strategy
// attempts, and geometry extraction outcomes, with a per-category
// breakdown and one append-only record per element. It is built and
// owned per-view (see the concurrency model: one ViewRaster, one
// StrategyDiagnostics, one geometry cache per view, no sharing across
// views) so none of its methods take a lock.
type StrategyDiagnostics struct {
	classificationCounts      map[string]int
	categoryClassification    map[string]map[string]int
	arealStrategyCounts       map[string]int
	categoryArealStrategy     map[string]map[string]int
	extractionOutcomeCounts   map[string]int
	categoryExtractionOutcome map[string]map[string]int
	confidenceCounts          map[string]int
	categoryConfidence        map[string]map[string]int

	elementRecords   []*ElementRecord
	recordedElements map[string]*ElementRecord
	methodAttempts   map[string][]string
}

// New returns an empty StrategyDiagnostics tracker.
func New() *StrategyDiagnostics {
	return &StrategyDiagnostics{
		classificationCounts:      map[string]int{},
		categoryClassification:    map[string]map[string]int{},
		arealStrategyCounts:       map[string]int{},
		categoryArealStrategy:     map[string]map[string]int{},
		extractionOutcomeCounts:   map[string]int{},
		categoryExtractionOutcome: map[string]map[string]int{},
		confidenceCounts:          map[string]int{},
		categoryConfidence:        map[string]map[string]int{},
		recordedElements:          map[string]*ElementRecord{},
		methodAttempts:            map[string][]string{},
	}
}

func normalizeCategory(category string) string {
	if category == "" {
		return "Unknown"
	}
	return category
}

func key(elemID int) string { return strconv.Itoa(elemID) }

func bump(counts map[string]int, k string) { counts[k]++ }

func bumpNested(counts map[string]map[string]int, outer, inner string) {
	m, ok := counts[outer]
	if !ok {
		m = map[string]int{}
		counts[outer] = m
	}
	m[inner]++
}

// RecordElementClassification records the TINY/LINEAR/AREAL
// classification of an element and creates its element record if this is
// the element's first appearance.
func (d *StrategyDiagnostics) RecordElementClassification(elemID int, classification, category string) {
	category = normalizeCategory(category)
	bump(d.classificationCounts, classification)
	bumpNested(d.categoryClassification, category, classification)

	k := key(elemID)
	if _, ok := d.recordedElements[k]; ok {
		return
	}
	rec := &ElementRecord{ElementID: k, Category: category, Classification: classification}
	d.recordedElements[k] = rec
	d.elementRecords = append(d.elementRecords, rec)
}

// RecordArealStrategy records one AREAL strategy's attempt outcome. The
// first successful strategy recorded for an element wins its
// strategy_used/confidence fields; later attempts (successful or not)
// never overwrite it — RecordExtractionMethod is the authoritative
// setter for that, called once the orchestrator has the final answer.
func (d *StrategyDiagnostics) RecordArealStrategy(elemID int, strategy string, success bool, category string, confidence arealextract.Confidence) {
	category = normalizeCategory(category)
	suffix := "_failure"
	if success {
		suffix = "_success"
	}
	strategyKey := strategy + suffix
	bump(d.arealStrategyCounts, strategyKey)
	bumpNested(d.categoryArealStrategy, category, strategyKey)

	if !success {
		return
	}
	if rec, ok := d.recordedElements[key(elemID)]; ok && rec.StrategyUsed == "" {
		rec.StrategyUsed = strategy
		rec.Confidence = string(confidence)
	}
}

// RecordGeometryExtraction records the outcome of an extraction attempt
// (success, no_geometry, insufficient_points, failed_all_strategies,
// exception, ...). A non-success outcome also sets the element's
// failure_reason to the outcome name.
func (d *StrategyDiagnostics) RecordGeometryExtraction(elemID int, outcome, category string) {
	category = normalizeCategory(category)
	bump(d.extractionOutcomeCounts, outcome)
	bumpNested(d.categoryExtractionOutcome, category, outcome)

	if rec, ok := d.recordedElements[key(elemID)]; ok {
		rec.ExtractionOutcome = outcome
		if outcome != "success" {
			rec.FailureReason = outcome
		}
	}
}

// RecordConfidence records a standalone confidence observation (called by
// the TINY/LINEAR proxy path and by arealextract's oriented-bbox and AABB
// tiers).
func (d *StrategyDiagnostics) RecordConfidence(elemID int, confidence arealextract.Confidence, category string) {
	category = normalizeCategory(category)
	c := string(confidence)
	if c == "" {
		return
	}
	bump(d.confidenceCounts, c)
	bumpNested(d.categoryConfidence, category, c)

	if rec, ok := d.recordedElements[key(elemID)]; ok {
		rec.Confidence = c
	}
}

// RecordMethodAttempt appends method to the element's attempted-method
// order, regardless of whether it ultimately succeeds.
func (d *StrategyDiagnostics) RecordMethodAttempt(elemID int, method string) {
	k := key(elemID)
	d.methodAttempts[k] = append(d.methodAttempts[k], method)
}

// RecordExtractionMethod is the authoritative setter for an element's
// final strategy_used/confidence once the orchestrator knows which
// method actually produced the result; it overwrites whatever
// RecordArealStrategy set.
func (d *StrategyDiagnostics) RecordExtractionMethod(elemID int, category, method string, success bool, confidence arealextract.Confidence) {
	if !success {
		return
	}
	if rec, ok := d.recordedElements[key(elemID)]; ok {
		rec.StrategyUsed = method
		rec.Confidence = string(confidence)
	}
}
