// Copyright 2017 The oksvg Authors. All rights reserved.
// created: 2/12/2017 by S.R.Wiley

package svgvector

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-logr/logr"
	"github.com/srwiley/rasterx"

	"github.com/raykov/svgvector/geom"
	"github.com/raykov/svgvector/vector"
)

// visitor walks the element tree of one document depth first and builds the
// model. It is used for a single parse.
type visitor struct {
	doc  *document
	opts Options
	log  logr.Logger

	// viewport is the root viewport size, the reference of percentages.
	viewport geom.Rect

	frames    []*frame
	gradients map[*element]*rasterx.Gradient
	nextID    vector.ExtraID
	useStack  []*element
}

func newVisitor(doc *document, opts Options) *visitor {
	return &visitor{
		doc:       doc,
		opts:      opts,
		log:       opts.logger(),
		gradients: map[*element]*rasterx.Gradient{},
	}
}

func (v *visitor) top() *frame {
	return v.frames[len(v.frames)-1]
}

func (v *visitor) newExtraID() vector.ExtraID {
	v.nextID++
	return v.nextID
}

// hidden reports whether el removes itself and its subtree from rendering.
func hidden(el *element) bool {
	if d, ok := el.prop("display"); ok && strings.TrimSpace(d) == "none" {
		return true
	}
	if vis, ok := el.prop("visibility"); ok {
		switch strings.TrimSpace(vis) {
		case "hidden", "collapse":
			return true
		}
	}
	return false
}

var ignoredProps = []string{"filter", "mask", "marker", "marker-start", "marker-mid", "marker-end"}

// visit dispatches one element. Errors are reported against the element
// that caused them.
func (v *visitor) visit(el *element) error {
	kind := kindOf(el)
	switch kind {
	case kindSkip:
		v.log.V(1).Info("skipping element", "tag", el.Name.Local, "id", el.ID())
		return nil
	case kindUnsupported:
		return &ElementError{Tag: el.Name.Local, ID: el.ID(), Err: ErrUnsupportedElement}
	case kindUnknown:
		v.log.V(1).Info("skipping unknown element", "tag", el.Name.Local, "id", el.ID())
		return nil
	}
	if hidden(el) {
		v.log.V(1).Info("skipping hidden element", "tag", el.Name.Local, "id", el.ID())
		return nil
	}
	for _, name := range ignoredProps {
		if p, ok := el.prop(name); ok && p != "none" {
			v.log.V(1).Info("ignoring property", "tag", el.Name.Local, "id", el.ID(), "property", name, "value", p)
		}
	}

	var err error
	switch kind {
	case kindContainer:
		err = v.container(el)
	case kindUse:
		err = v.use(el)
	case kindShape:
		err = v.shape(el)
	}
	return wrapElement(el, err)
}

// localTransform reads the transform attribute of el.
func localTransform(el *element) (geom.Matrix2D, error) {
	s, ok := el.attr("transform")
	if !ok {
		return geom.Identity, nil
	}
	return parseTransform(s)
}

// open pushes a group frame for el whose user space is the parent's
// transformed by local.
func (v *visitor) open(el *element, local geom.Matrix2D) error {
	ds, err := v.declaredStyleOf(el)
	if err != nil {
		return err
	}
	ctm, alpha := local, opaque
	if len(v.frames) > 0 {
		ctm, alpha = v.top().ctm.Mult(local), v.top().alpha
	}
	alpha = alpha.next(&ds)
	alpha.apply(&ds)
	f := &frame{
		el:    el,
		group: &vector.Group{Name: el.ID(), CTM: ctm},
		ctm:   ctm,
		style: ds,
		alpha: alpha,
	}
	if !local.IsIdentity() {
		v.log.V(2).Info("applying matrix", "tag", el.Name.Local, "id", el.ID(), "matrix", local.String())
		if local.IsDiagonal() {
			f.group.Transform = &vector.GroupTransform{
				ScaleX:       local.A,
				ScaleY:       local.D,
				TranslationX: local.E,
				TranslationY: local.F,
			}
		}
	}
	if !ds.Style.IsEmpty() {
		f.extra = &vector.Extra{ID: v.newExtraID(), Style: ds.Style}
		f.group.Extra = f.extra
	}
	v.frames = append(v.frames, f)
	return nil
}

// close pops the top frame and returns its finished group. The group is
// nil when a clip removes it entirely.
func (v *visitor) close() (*vector.Group, error) {
	f := v.top()
	v.frames = v.frames[:len(v.frames)-1]
	g := f.group
	g.ReferencedExtra = f.referencedExtra()
	clip, ok, err := v.clipPathOf(f.el, f.ctm, func() (geom.Matrix2D, bool) {
		b, ok := groupBounds(g)
		return boundsMatrix(geom.Identity, b, ok)
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		v.log.V(1).Info("group clipped away", "tag", f.el.Name.Local, "id", f.el.ID())
		return nil, nil
	}
	g.ClipPathData = clip
	return g, nil
}

// closeInto closes the top frame and attaches its group to the new top.
func (v *visitor) closeInto() error {
	g, err := v.close()
	if err != nil || g == nil {
		return err
	}
	if !splice(v.top(), g) && len(g.Children) > 0 {
		v.log.V(2).Info("group elided", "name", g.Name)
	}
	return nil
}

// container visits g, a, switch and nested svg elements.
func (v *visitor) container(el *element) error {
	local, err := localTransform(el)
	if err != nil {
		return err
	}
	if el.Name.Local == "svg" {
		vals, err := v.lengthAttrs(el, "x", "y")
		if err != nil {
			return err
		}
		local = local.Translate(vals[0], vals[1])
		vb, err := viewportOf(el, v.viewport.W, v.viewport.H)
		if err != nil {
			return err
		}
		local = local.Mult(vb)
	}
	if err := v.open(el, local); err != nil {
		return err
	}
	children := el.Children
	if el.Name.Local == "switch" {
		children = switchChild(el)
	}
	for _, c := range children {
		if err := v.visit(c); err != nil {
			return err
		}
	}
	return v.closeInto()
}

// switchChild picks the first child of a switch that renders. Conditional
// attributes are not evaluated.
func switchChild(el *element) []*element {
	for _, c := range el.Children {
		switch kindOf(c) {
		case kindContainer, kindUse, kindShape, kindUnsupported:
			return []*element{c}
		}
	}
	return nil
}

// viewportOf maps the viewBox of an svg or symbol element onto its width
// and height, which default to the given size. Without a viewBox the
// mapping is the identity.
func viewportOf(el *element, defW, defH float64) (geom.Matrix2D, error) {
	s, ok := el.attr("viewBox")
	if !ok {
		return geom.Identity, nil
	}
	vb, err := parseViewBox(s)
	if err != nil {
		return geom.Identity, err
	}
	w, h := defW, defH
	if s, ok := el.attr("width"); ok && !strings.HasSuffix(s, "%") {
		if w, err = parseLength(s, defW); err != nil {
			return geom.Identity, invalid("width", s)
		}
	}
	if s, ok := el.attr("height"); ok && !strings.HasSuffix(s, "%") {
		if h, err = parseLength(s, defH); err != nil {
			return geom.Identity, invalid("height", s)
		}
	}
	return viewBoxTransform(vb, w, h, el.Attrs["preserveAspectRatio"])
}

func parseViewBox(s string) (geom.Rect, error) {
	vals, err := getPoints(s)
	if err != nil || len(vals) != 4 {
		return geom.Rect{}, invalid("viewBox", s)
	}
	if vals[2] <= 0 || vals[3] <= 0 {
		return geom.Rect{}, invalid("viewBox", s)
	}
	return geom.Rect{X: vals[0], Y: vals[1], W: vals[2], H: vals[3]}, nil
}

// viewBoxTransform maps vb onto a w by h viewport following the
// preserveAspectRatio value par.
func viewBoxTransform(vb geom.Rect, w, h float64, par string) (geom.Matrix2D, error) {
	sx, sy := w/vb.W, h/vb.H
	fields := strings.Fields(par)
	if len(fields) > 0 && fields[0] == "defer" {
		fields = fields[1:]
	}
	align, mode := "xMidYMid", "meet"
	if len(fields) > 0 {
		align = fields[0]
	}
	if len(fields) > 1 {
		mode = fields[1]
	}
	if align == "none" {
		return geom.Identity.Scale(sx, sy).Translate(-vb.X, -vb.Y), nil
	}
	if len(align) != 8 || !strings.HasPrefix(align, "x") || align[4] != 'Y' {
		return geom.Identity, invalid("preserveAspectRatio", par)
	}
	switch mode {
	case "meet":
		sx = math.Min(sx, sy)
	case "slice":
		sx = math.Max(sx, sy)
	default:
		return geom.Identity, invalid("preserveAspectRatio", par)
	}
	sy = sx
	alignOffset := func(a string, size, content float64) (float64, bool) {
		switch a {
		case "Min":
			return 0, true
		case "Mid":
			return (size - content) / 2, true
		case "Max":
			return size - content, true
		}
		return 0, false
	}
	ax, okX := alignOffset(align[1:4], w, vb.W*sx)
	ay, okY := alignOffset(align[5:8], h, vb.H*sy)
	if !okX || !okY {
		return geom.Identity, invalid("preserveAspectRatio", par)
	}
	return geom.Identity.Translate(ax, ay).Scale(sx, sy).Translate(-vb.X, -vb.Y), nil
}

// use instantiates the referenced element in place, inside a group that
// carries the use element's own transform and style.
func (v *visitor) use(el *element) error {
	href, _ := el.attr("href")
	if strings.TrimSpace(href) == "#" {
		return errZeroLengthID
	}
	target, ok := v.doc.lookup(href)
	if !ok {
		v.log.V(1).Info("use target not found", "id", el.ID(), "href", href)
		return nil
	}
	for _, u := range v.useStack {
		if u == el {
			return fmt.Errorf("%w: use cycle through %q", ErrInvalidValue, href)
		}
	}
	if len(v.useStack) >= v.opts.maxUseDepth() {
		return fmt.Errorf("%w: use nesting deeper than %d", ErrInvalidValue, v.opts.maxUseDepth())
	}
	v.useStack = append(v.useStack, el)
	defer func() { v.useStack = v.useStack[:len(v.useStack)-1] }()

	local, err := localTransform(el)
	if err != nil {
		return err
	}
	vals, err := v.lengthAttrs(el, "x", "y")
	if err != nil {
		return err
	}
	if err := v.open(el, local.Translate(vals[0], vals[1])); err != nil {
		return err
	}
	if target.Name.Local == "symbol" && !target.foreign() {
		err = v.symbol(target, el)
	} else {
		err = v.visit(target)
	}
	if err != nil {
		return err
	}
	return v.closeInto()
}

// symbol renders the contents of a symbol for the use element u. The
// symbol viewBox maps onto the width and height of u, or of the symbol.
func (v *visitor) symbol(sym, u *element) error {
	if hidden(sym) {
		return nil
	}
	w, h := v.viewport.W, v.viewport.H
	for _, src := range []*element{sym, u} {
		vals, err := v.lengthAttrs(src, "width", "height")
		if err != nil {
			return wrapElement(src, err)
		}
		if _, ok := src.attr("width"); ok {
			w = vals[0]
		}
		if _, ok := src.attr("height"); ok {
			h = vals[1]
		}
	}
	local := geom.Identity
	if s, ok := sym.attr("viewBox"); ok {
		vb, err := parseViewBox(s)
		if err != nil {
			return wrapElement(sym, err)
		}
		if local, err = viewBoxTransform(vb, w, h, sym.Attrs["preserveAspectRatio"]); err != nil {
			return wrapElement(sym, err)
		}
	}
	if err := v.open(sym, local); err != nil {
		return wrapElement(sym, err)
	}
	for _, c := range sym.Children {
		if err := v.visit(c); err != nil {
			return err
		}
	}
	return wrapElement(sym, v.closeInto())
}

func isFillField(f vector.Field) bool {
	return f == vector.FieldFillType || f == vector.FieldFill || f == vector.FieldFillAlpha
}

func setBrush(s *vector.Style, f vector.Field, b vector.Brush) {
	if f == vector.FieldFill {
		s.Fill = b
	} else {
		s.Stroke = b
	}
}

// shape emits one path. Without a transform in effect the authored path
// commands are kept; otherwise the outline is resolved into root space.
// Fields the shape leaves unset are looked up on the open groups, nearest
// first, and linked through an ExtraReference.
func (v *visitor) shape(el *element) error {
	nodes, err := v.shapeNodes(el)
	if err != nil || len(nodes) == 0 {
		return err
	}
	local, err := localTransform(el)
	if err != nil {
		return err
	}
	ctm := v.top().ctm.Mult(local)
	outline := nodesToOutline(nodes)
	bounds, hasBounds := outline.Bounds()

	path := &vector.Path{Name: el.ID()}
	if ctm.IsIdentity() && !v.opts.ForceResolvedPaths {
		path.Nodes = nodes
	} else {
		path.Nodes = outlineToNodes(outline.Transform(ctm))
	}

	ds, err := v.declaredStyleOf(el)
	if err != nil {
		return err
	}
	alpha := v.top().alpha.next(&ds)
	alpha.apply(&ds)
	paint := func(server *element) (vector.Brush, error) {
		g, err := v.readGradient(server)
		if err != nil {
			return nil, err
		}
		b, ok := bakeGradient(g, ctm, bounds, hasBounds)
		if !ok {
			v.log.V(1).Info("gradient not applicable to shape", "id", el.ID(), "gradient", server.ID())
			return none, nil
		}
		return b, nil
	}
	path.Style = ds.Style
	for _, f := range []vector.Field{vector.FieldFill, vector.FieldStroke} {
		if server := ds.server(f); server != nil {
			b, err := paint(server)
			if err != nil {
				return err
			}
			setBrush(&path.Style, f, b)
		}
	}

	// a line has no interior
	line := el.Name.Local == "line"
	if line {
		path.FillType, path.Fill, path.FillAlpha = vector.FillTypeUnset, nil, nil
	}
	ref := &vector.ExtraReference{}
	for _, f := range vector.AllFields {
		if path.Has(f) || line && isFillField(f) {
			continue
		}
		if f == vector.FieldFillAlpha || f == vector.FieldStrokeAlpha {
			v.inheritAlpha(path, ref, f, alpha.effective(f))
			continue
		}
		for i := len(v.frames) - 1; i >= 0; i-- {
			fr := v.frames[i]
			if server := fr.style.server(f); server != nil {
				b, err := paint(server)
				if err != nil {
					return err
				}
				setBrush(&path.Style, f, b)
				break
			}
			if fr.extra != nil && fr.extra.Has(f) {
				ref.Set(f, fr.extra.ID)
				fr.referenced = fr.referenced.With(f)
				break
			}
		}
	}
	if !line && !v.opts.OmitDefaultFill && path.Fill == nil && ref.Get(vector.FieldFill) == 0 {
		path.Fill = vector.SolidColor{Color: vector.Named(defaultFillPainted)}
	}
	if !ref.IsEmpty() {
		path.ExtraReference = ref
	}

	clip, ok, err := v.clipPathOf(el, ctm, func() (geom.Matrix2D, bool) {
		return boundsMatrix(ctm, bounds, hasBounds)
	})
	if err != nil || !ok {
		return err
	}
	if clip == nil {
		v.top().add(path)
		return nil
	}
	wrapper := &vector.Group{CTM: ctm, ClipPathData: clip, Children: []vector.Node{path}}
	splice(v.top(), wrapper)
	return nil
}

// inheritAlpha links the alpha field f of path to the nearest ancestor Extra
// that declares it, provided that Extra holds the effective value want.
// When an opacity between them changes the value, or no ancestor declares
// it, the effective value is written on the path.
func (v *visitor) inheritAlpha(path *vector.Path, ref *vector.ExtraReference, f vector.Field, want float64) {
	for i := len(v.frames) - 1; i >= 0; i-- {
		fr := v.frames[i]
		if fr.extra == nil || !fr.extra.Has(f) {
			continue
		}
		if *alphaOf(&fr.extra.Style, f) == want {
			ref.Set(f, fr.extra.ID)
			fr.referenced = fr.referenced.With(f)
			return
		}
		break
	}
	setAlpha(&path.Style, f, alphaValue(want))
}
