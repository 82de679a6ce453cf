// Package arealextract implements the AREAL extraction orchestrator: a
// three-tier fallback hierarchy that tries the best available silhouette
// for a floor/ceiling/roof-like element and reports how confident the
// result is.
//
// Tier 1 (HIGH) tries the exact-geometry strategies already provided by
// the silhouette package. Tier 2 (MEDIUM/LOW) tries an oriented bound
// derived from actual mesh/solid vertices when any are available, falling
// back to an oriented bound of the bounding box corners. Tier 3 (LOW)
// falls back to a plain axis-aligned bounding box. Every tier reports its
// attempt and outcome through a Sink; a nil Sink, or a Sink that panics
// (recovered at the call site), must never affect extraction itself.
package arealextract
