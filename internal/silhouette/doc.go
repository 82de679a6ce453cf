// Package silhouette turns a model.Element into 2D/3D loops in view
// UV(W) space. It implements the strategy table a renderer dispatches
// on by element classification: cheap proxies (bbox, obb, uv_obb_rect)
// for TINY/LINEAR elements, geometry-accurate extraction
// (planar_face_loops, silhouette_edges) for AREAL elements, and two
// special-purpose strategies (cad_curves, location_curve_obb) for
// imported CAD linework and thin diagonal members.
//
// Every strategy returns a possibly empty slice of Loop rather than an
// error — callers that want "try the next strategy on failure"
// semantics get that for free because an empty result is
// indistinguishable from "nothing to extract here". Strategies do not
// recover panics raised by the element's own methods; those reach the
// caller.
package silhouette
