package svgvector

import (
	"strings"

	"github.com/raykov/svgvector/geom"
	"github.com/raykov/svgvector/vector"
)

// boundsMatrix maps the unit square onto b in the space m maps to the
// model. ok is false when b has no area.
func boundsMatrix(m geom.Matrix2D, b geom.Rect, ok bool) (geom.Matrix2D, bool) {
	if !ok || b.W == 0 || b.H == 0 {
		return geom.Identity, false
	}
	return m.Translate(b.X, b.Y).Scale(b.W, b.H), true
}

// groupBounds is the union of the bounds of every path under g, in model
// space.
func groupBounds(g *vector.Group) (geom.Rect, bool) {
	var u geom.Rect
	found := false
	for _, p := range vector.Paths(g) {
		b, ok := nodesToOutline(p.Nodes).Bounds()
		if !ok {
			continue
		}
		if !found {
			u, found = b, true
			continue
		}
		x0, y0 := min(u.X, b.X), min(u.Y, b.Y)
		x1, y1 := max(u.X+u.W, b.X+b.W), max(u.Y+u.H, b.Y+b.H)
		u = geom.Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
	}
	return u, found
}

// clipPathOf resolves the clip-path property of el into outlines in model
// space. ctm maps the user space of el to the model and bbox returns the
// mapping of the unit square onto the bounding box of el, used for
// objectBoundingBox units. data is nil when el is not clipped. ok is false
// when the clip leaves nothing visible.
func (v *visitor) clipPathOf(el *element, ctm geom.Matrix2D, bbox func() (geom.Matrix2D, bool)) (data [][]vector.PathNode, ok bool, err error) {
	value, declared := el.prop("clip-path")
	value = strings.TrimSpace(value)
	if !declared || value == "none" {
		return nil, true, nil
	}
	if !strings.HasPrefix(value, "url(") || !strings.HasSuffix(value, ")") {
		v.log.V(1).Info("ignoring clip-path", "id", el.ID(), "value", value)
		return nil, true, nil
	}
	ref := strings.Trim(strings.TrimSpace(value[4:len(value)-1]), `"'`)
	cp, found := v.doc.lookup(ref)
	if !found || cp.Name.Local != "clipPath" || cp.foreign() {
		v.log.V(1).Info("clip path not found", "id", el.ID(), "ref", ref)
		return nil, true, nil
	}

	base := ctm
	if units, _ := cp.attr("clipPathUnits"); strings.TrimSpace(units) == "objectBoundingBox" {
		if base, ok = bbox(); !ok {
			return nil, false, nil
		}
	}
	cpt, err := localTransform(cp)
	if err != nil {
		return nil, false, wrapElement(cp, err)
	}
	base = base.Mult(cpt)

	for _, c := range cp.Children {
		nodes, err := v.clipChild(c, base)
		if err != nil {
			return nil, false, wrapElement(c, err)
		}
		if len(nodes) > 0 {
			data = append(data, nodes)
		}
	}
	if len(data) == 0 {
		return nil, false, nil
	}
	return data, true, nil
}

// clipChild resolves one child of a clipPath. Shapes and uses of shapes
// contribute; the others are skipped.
func (v *visitor) clipChild(c *element, base geom.Matrix2D) ([]vector.PathNode, error) {
	switch kindOf(c) {
	case kindUnsupported:
		return nil, ErrUnsupportedElement
	case kindShape, kindUse:
	default:
		return nil, nil
	}
	if hidden(c) {
		return nil, nil
	}
	local, err := localTransform(c)
	if err != nil {
		return nil, err
	}
	shape := c
	if kindOf(c) == kindUse {
		vals, err := v.lengthAttrs(c, "x", "y")
		if err != nil {
			return nil, err
		}
		local = local.Translate(vals[0], vals[1])
		href, _ := c.attr("href")
		target, ok := v.doc.lookup(href)
		if !ok || kindOf(target) != kindShape || hidden(target) {
			v.log.V(1).Info("skipping clip use", "href", href)
			return nil, nil
		}
		tl, err := localTransform(target)
		if err != nil {
			return nil, wrapElement(target, err)
		}
		local, shape = local.Mult(tl), target
	}
	if _, ok := c.prop("clip-path"); ok {
		v.log.V(1).Info("ignoring nested clip-path", "tag", c.Name.Local, "id", c.ID())
	}
	nodes, err := v.shapeNodes(shape)
	if err != nil {
		return nil, wrapElement(shape, err)
	}
	if len(nodes) == 0 {
		return nil, nil
	}
	return outlineToNodes(nodesToOutline(nodes).Transform(base.Mult(local))), nil
}
