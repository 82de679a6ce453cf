// Package classify buckets an element's projected UV footprint into
// TINY, LINEAR, or AREAL, and implements the tier-B ambiguity rule that
// escalates borderline axis-aligned classifications to a PCA-based
// re-check so a thin diagonal element isn't inflated to AREAL just
// because its axis-aligned bounding box is large.
package classify
