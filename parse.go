package svgvector

import (
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/raykov/svgvector/geom"
	"github.com/raykov/svgvector/vector"
)

// Default viewport size of an svg element without width, height or viewBox.
const (
	defaultViewportWidth  = 300
	defaultViewportHeight = 150
)

// ParseFile converts the SVG file at path. The model is named after the
// file without its extension.
func ParseFile(path string, autoMirror bool, opts ...Options) (*vector.Model, error) {
	fin, errf := os.Open(path)
	if errf != nil {
		return nil, errf
	}
	defer fin.Close()
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return Parse(fin, name, autoMirror, opts...)
}

// Parse reads one SVG document from r and converts it into a model. Only
// the first Options value is used. Any error aborts the conversion and no
// model is returned.
func Parse(r io.Reader, name string, autoMirror bool, opts ...Options) (*vector.Model, error) {
	o := firstOptions(opts)
	doc, err := readDocument(r, o.logger())
	if err != nil {
		return nil, err
	}
	v := newVisitor(doc, o)
	model, err := v.model(name, autoMirror)
	if err != nil {
		return nil, err
	}
	return model, nil
}

// rootLength reads the width or height of the root element. Percentages
// and auto refer to a container that does not exist here and count as
// absent.
func rootLength(el *element, name string) (float64, bool, error) {
	s, ok := el.attr(name)
	s = strings.TrimSpace(s)
	if !ok || s == "" || s == "auto" || strings.HasSuffix(s, "%") {
		return 0, false, nil
	}
	f, err := parseLength(s, 0)
	if err != nil || f < 0 {
		return 0, false, invalid(name, s)
	}
	return f, true, nil
}

// snap rounds matrix components that differ from 0 or 1 only by float
// error, so a sizing that cancels out yields an exact identity.
func snap(m geom.Matrix2D) geom.Matrix2D {
	const eps = 1e-9
	c := m.Components()
	for i, x := range c {
		switch {
		case math.Abs(x) < eps:
			c[i] = 0
		case math.Abs(x-1) < eps:
			c[i] = 1
		}
	}
	return geom.Matrix2D{A: c[0], B: c[1], C: c[2], D: c[3], E: c[4], F: c[5]}
}

// model sizes the root viewport and visits the document. Geometry is
// expressed in viewBox units: the root transform maps the viewBox onto the
// declared size and then undoes the declared to viewport scale.
func (v *visitor) model(name string, autoMirror bool) (*vector.Model, error) {
	root := v.doc.root
	width, hasW, err := rootLength(root, "width")
	if err != nil {
		return nil, wrapElement(root, err)
	}
	height, hasH, err := rootLength(root, "height")
	if err != nil {
		return nil, wrapElement(root, err)
	}
	var vb geom.Rect
	s, hasVB := root.attr("viewBox")
	if hasVB {
		if vb, err = parseViewBox(s); err != nil {
			return nil, wrapElement(root, err)
		}
	}

	vp := geom.Rect{W: defaultViewportWidth, H: defaultViewportHeight}
	switch {
	case hasVB:
		vp.W, vp.H = vb.W, vb.H
	default:
		if hasW {
			vp.W = width
		}
		if hasH {
			vp.H = height
		}
	}
	defW, defH := vp.W, vp.H
	if hasW {
		defW = width
	}
	if hasH {
		defH = height
	}
	v.viewport = vp

	rootCTM := geom.Identity
	if hasVB && defW > 0 && defH > 0 {
		vbt, err := viewBoxTransform(vb, defW, defH, root.Attrs["preserveAspectRatio"])
		if err != nil {
			return nil, wrapElement(root, err)
		}
		rootCTM = geom.Identity.Scale(defW/vp.W, defH/vp.H).Invert().Mult(vbt)
	}
	native, err := localTransform(root)
	if err != nil {
		return nil, wrapElement(root, err)
	}
	rootCTM = snap(rootCTM).Mult(native)

	model := &vector.Model{
		Name:           name,
		DefaultWidth:   defW,
		DefaultHeight:  defH,
		ViewportWidth:  vp.W,
		ViewportHeight: vp.H,
		AutoMirror:     autoMirror,
	}
	if hidden(root) {
		model.Root = &vector.Group{Name: root.ID(), CTM: rootCTM}
		return model, nil
	}
	if err := v.open(root, rootCTM); err != nil {
		return nil, wrapElement(root, err)
	}
	for _, c := range root.Children {
		if err := v.visit(c); err != nil {
			return nil, err
		}
	}
	g, err := v.close()
	if err != nil {
		return nil, wrapElement(root, err)
	}
	if g == nil {
		g = &vector.Group{Name: root.ID(), CTM: rootCTM}
	}
	model.Root = g
	return model, nil
}
