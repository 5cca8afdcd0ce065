// Copyright 2018 The oksvg Authors. All rights reserved.
//
// created: 5/12/2018 by S.R.Wiley
package svgvector

import (
	"math"
	"strings"

	"github.com/srwiley/rasterx"

	"github.com/raykov/svgvector/geom"
	"github.com/raykov/svgvector/vector"
)

func isGradient(el *element) bool {
	return !el.foreign() && (el.Name.Local == "linearGradient" || el.Name.Local == "radialGradient")
}

// gradientChain returns el followed by the gradients it inherits from
// through href. A reference cycle ends the chain.
func (v *visitor) gradientChain(el *element) []*element {
	chain := []*element{el}
	seen := map[*element]bool{el: true}
	for {
		href, ok := el.attr("href")
		if !ok {
			return chain
		}
		next, ok := v.doc.lookup(href)
		if !ok || !isGradient(next) || seen[next] {
			return chain
		}
		chain = append(chain, next)
		seen[next] = true
		el = next
	}
}

func chainAttr(chain []*element, name string) (string, bool) {
	for _, el := range chain {
		if s, ok := el.attr(name); ok {
			return s, true
		}
	}
	return "", false
}

// readGradient resolves a gradient element and the attributes and stops
// it inherits into a rasterx gradient record. Points holds x1 y1 x2 y2 for
// linear gradients and cx cy fx fy r for radial ones.
func (v *visitor) readGradient(el *element) (*rasterx.Gradient, error) {
	if g, ok := v.gradients[el]; ok {
		return g, nil
	}
	chain := v.gradientChain(el)
	g := &rasterx.Gradient{Matrix: rasterx.Identity, Units: rasterx.ObjectBoundingBox,
		IsRadial: el.Name.Local == "radialGradient"}

	if s, ok := chainAttr(chain, "gradientUnits"); ok {
		switch strings.TrimSpace(s) {
		case "userSpaceOnUse":
			g.Units = rasterx.UserSpaceOnUse
		case "objectBoundingBox":
			g.Units = rasterx.ObjectBoundingBox
		default:
			return nil, wrapElement(el, invalid("gradientUnits", s))
		}
	}
	if s, ok := chainAttr(chain, "spreadMethod"); ok {
		switch strings.TrimSpace(s) {
		case "pad":
			g.Spread = rasterx.PadSpread
		case "reflect":
			g.Spread = rasterx.ReflectSpread
		case "repeat":
			g.Spread = rasterx.RepeatSpread
		default:
			return nil, wrapElement(el, invalid("spreadMethod", s))
		}
	}
	if s, ok := chainAttr(chain, "gradientTransform"); ok {
		m, err := parseTransform(s)
		if err != nil {
			return nil, wrapElement(el, err)
		}
		g.Matrix = rasterx.Matrix2D(m)
	}

	type coord struct {
		name string
		def  string
		ref  float64
	}
	w, h := v.viewport.W, v.viewport.H
	diag := math.Sqrt(w*w+h*h) / math.Sqrt2
	coords := []coord{{"x1", "0%", w}, {"y1", "0%", h}, {"x2", "100%", w}, {"y2", "0%", h}}
	if g.IsRadial {
		coords = []coord{{"cx", "50%", w}, {"cy", "50%", h}, {"fx", "", w}, {"fy", "", h}, {"r", "50%", diag}}
	}
	for i, c := range coords {
		s, ok := chainAttr(chain, c.name)
		if !ok {
			s = c.def
		}
		if s == "" {
			continue
		}
		var err error
		if g.Units == rasterx.ObjectBoundingBox {
			g.Points[i], err = readFraction(s)
		} else {
			g.Points[i], err = parseLength(s, c.ref)
		}
		if err != nil {
			return nil, wrapElement(el, invalid(c.name, s))
		}
	}
	if g.IsRadial {
		// the focus defaults to the center
		if _, ok := chainAttr(chain, "fx"); !ok {
			g.Points[2] = g.Points[0]
		}
		if _, ok := chainAttr(chain, "fy"); !ok {
			g.Points[3] = g.Points[1]
		}
		if g.Points[4] < 0 {
			return nil, wrapElement(el, invalid("r", el.Attrs["r"]))
		}
	}

	for _, c := range chain {
		stops, err := v.readStops(c)
		if err != nil {
			return nil, err
		}
		if len(stops) > 0 {
			g.Stops = stops
			break
		}
	}
	v.gradients[el] = g
	return g, nil
}

// bakeGradient turns a gradient into a brush for a shape whose user space
// maps to the model by ctm and whose outline in user space has the given
// bounds. A gradient without stops paints nothing and one with a single
// stop is a solid color. ok is false when the gradient cannot be applied,
// which happens for bounding box units on a shape without area.
func bakeGradient(g *rasterx.Gradient, ctm geom.Matrix2D, bounds geom.Rect, hasBounds bool) (b vector.Brush, ok bool) {
	switch len(g.Stops) {
	case 0:
		return vector.SolidColor{Color: vector.Named(vector.Transparent)}, true
	case 1:
		return vector.SolidColor{Color: stopColor(g.Stops[0])}, true
	}
	m := ctm
	if g.Units == rasterx.ObjectBoundingBox {
		if !hasBounds || bounds.W == 0 || bounds.H == 0 {
			return nil, false
		}
		m = m.Translate(bounds.X, bounds.Y).Scale(bounds.W, bounds.H)
	}
	m = m.Mult(geom.Matrix2D(g.Matrix))

	stops := make([]vector.ColorStop, len(g.Stops))
	for i, s := range g.Stops {
		stops[i] = vector.ColorStop{Offset: s.Offset, Color: stopColor(s)}
	}
	tile := vector.Clamp
	switch g.Spread {
	case rasterx.ReflectSpread:
		tile = vector.Mirror
	case rasterx.RepeatSpread:
		tile = vector.Repeated
	}
	p := g.Points
	if g.IsRadial {
		return vector.RadialGradient{
			Stops:    stops,
			Center:   m.TransformPoint(geom.Point{X: p[0], Y: p[1]}),
			Radius:   p[4] * math.Sqrt(math.Abs(m.Determinant())),
			TileMode: tile,
		}, true
	}
	return vector.LinearGradient{
		Stops:    stops,
		Start:    m.TransformPoint(geom.Point{X: p[0], Y: p[1]}),
		End:      m.TransformPoint(geom.Point{X: p[2], Y: p[3]}),
		TileMode: tile,
	}, true
}
