package vop

import (
	"errors"
	"fmt"
)

// ErrUnsupportedViewKind is returned by Driver.Run when the view's kind
// is not one of the orthographic kinds this pipeline rasters (floor
// plan, ceiling plan, section, elevation, detail). The driver rejects
// the view before allocating a raster; this is never fatal to a batch.
var ErrUnsupportedViewKind = errors.New("vop: unsupported view kind")

// ErrRasterAllocation is returned when the raster's requested dimensions
// cannot be allocated (e.g. a degenerate or absurdly large grid size).
// This is the one "fatal pipeline error" kind per the error taxonomy: it
// aborts this view's processing but the driver still surfaces it as an
// errors[] entry in the run's result rather than panicking.
var ErrRasterAllocation = errors.New("vop: unable to allocate raster")

// extractionOutcome names a geometry-extraction result as recorded in
// diagnostics; these mirror the Python source's outcome strings.
const (
	outcomeSuccess             = "success"
	outcomeNoGeometry          = "no_geometry"
	outcomeInsufficientPoints  = "insufficient_points"
	outcomeFailedAllStrategies = "failed_all_strategies"
	outcomeException           = "exception"
)

// recoverToError runs fn and converts any panic it raises into an error.
// A caller-supplied model.Element's BoundingBox/Geometry/LocationCurve,
// or an extraction strategy, is not guaranteed panic-free; this keeps a
// panic from escaping past the per-element or per-view boundary that
// calls it, per the error taxonomy's propagation policy.
func recoverToError(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("recovered panic: %v", r)
		}
	}()
	fn()
	return nil
}
