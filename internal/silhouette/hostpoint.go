package silhouette

import (
	"github.com/archvop/vopraster/internal/geom3d"
	"github.com/archvop/vopraster/internal/model"
)

// geometryOptions builds the GeometryOptions to pass to elem.Geometry.
// Linked/imported elements must never see the host view — passing it
// yields empty geometry on links — so the view is omitted whenever elem
// is a model.LinkedElement.
func geometryOptions(elem model.Element, view *model.View) model.GeometryOptions {
	if _, linked := elem.(model.LinkedElement); linked {
		return model.GeometryOptions{}
	}
	return model.GeometryOptions{View: view}
}

// toHostPoint maps a point sample from an element's native geometry space
// into host space: a no-op for host elements, and elem.LinkTransform()
// applied for linked/imported elements.
func toHostPoint(elem model.Element, p geom3d.Point3) geom3d.Point3 {
	linked, ok := elem.(model.LinkedElement)
	if !ok {
		return p
	}
	return linked.LinkTransform().OfPoint(p)
}

// GeometryOptions exports geometryOptions for other packages in this
// module (arealextract's oriented-bbox tier needs the same
// link-aware-options rule).
func GeometryOptions(elem model.Element, view *model.View) model.GeometryOptions {
	return geometryOptions(elem, view)
}

// ToHostPoint exports toHostPoint for other packages in this module.
func ToHostPoint(elem model.Element, p geom3d.Point3) geom3d.Point3 {
	return toHostPoint(elem, p)
}
