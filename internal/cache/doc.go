// Package cache provides Bounded, a generic thread-safe LRU cache used to
// memoize per-element derived results (silhouettes, classification
// decisions) across a raster run.
//
//	c := cache.NewBounded[string, Loop](500)
//	c.Set("elem-123", loop)
//	value, ok := c.Get("elem-123")
//
// A MaxItems of 0 or less disables the cache outright rather than meaning
// unlimited: every Get reports a miss and every Set is a no-op. This
// matches the host pipeline's cache_max_items=0 escape hatch for
// reproducing a run without any memoization.
//
// # Thread Safety
//
// Bounded is safe for concurrent use and must not be copied after
// creation (it holds a mutex).
package cache
