package svgvector

import (
	"strings"

	"github.com/raykov/svgvector/vector"
)

// Initial values of the properties that are dropped when declared
// explicitly.
const (
	defaultAlpha       = 1.0
	defaultMiterLimit  = 4.0
	defaultFillPainted = vector.Black
)

// declaredStyle is the style an element sets on itself. Gradient paint
// depends on the geometry of the shape it is applied to, so it is kept as
// the referencing element until a shape uses it.
type declaredStyle struct {
	vector.Style
	fillServer   *element
	strokeServer *element

	// fillOpacity and strokeOpacity are the declared fill-opacity and
	// stroke-opacity before any opacity is applied.
	fillOpacity, strokeOpacity, opacity *float64
}

func (s *declaredStyle) server(f vector.Field) *element {
	switch f {
	case vector.FieldFill:
		return s.fillServer
	case vector.FieldStroke:
		return s.strokeServer
	}
	return nil
}

func isCurrentColor(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "currentColor")
}

var none = vector.SolidColor{Color: vector.Named(vector.Transparent)}

// elementColor resolves the color property for el: its own declaration,
// else the nearest open ancestor's, else the document ancestors', else
// black.
func (v *visitor) elementColor(el *element) vector.Color {
	lookup := func(e *element) (vector.Color, bool) {
		s, ok := e.prop("color")
		if !ok || isCurrentColor(s) {
			return vector.Color{}, false
		}
		c, err := ParseSVGColor(s)
		return c, err == nil
	}
	if c, ok := lookup(el); ok {
		return c
	}
	for i := len(v.frames) - 1; i >= 0; i-- {
		if c, ok := lookup(v.frames[i].el); ok {
			return c
		}
	}
	for p := el.parent; p != nil; p = p.parent {
		if c, ok := lookup(p); ok {
			return c
		}
	}
	return vector.Named(vector.Black)
}

// parsePaint reads a fill or stroke value. A gradient reference returns the
// gradient element. A reference to a missing or unusable paint server falls
// back to the color after it, or to none.
func (v *visitor) parsePaint(el *element, name, value string) (vector.Brush, *element, error) {
	value = strings.TrimSpace(value)
	switch {
	case value == "none":
		return none, nil, nil
	case isCurrentColor(value):
		return vector.SolidColor{Color: v.elementColor(el)}, nil, nil
	case strings.HasPrefix(value, "url("):
		end := strings.IndexByte(value, ')')
		if end < 0 {
			return nil, nil, invalid(name, value)
		}
		ref := strings.Trim(strings.TrimSpace(value[4:end]), `"'`)
		fallback := strings.TrimSpace(value[end+1:])
		if server, ok := v.doc.lookup(ref); ok && isGradient(server) {
			return nil, server, nil
		}
		v.log.V(1).Info("paint server not found", "property", name, "ref", ref, "fallback", fallback)
		if fallback == "" {
			return none, nil, nil
		}
		return v.parsePaint(el, name, fallback)
	}
	c, err := ParseSVGColor(value)
	if err != nil {
		return nil, nil, invalid(name, value)
	}
	return vector.SolidColor{Color: c}, nil, nil
}

func (v *visitor) alphaProp(el *element, name string) (*float64, error) {
	s, ok := el.prop(name)
	if !ok {
		return nil, nil
	}
	f, err := readFraction(s)
	if err != nil {
		return nil, invalid(name, s)
	}
	f = clamp01(f)
	return &f, nil
}

// declaredStyleOf extracts the style el declares itself. Values equal to
// a property's initial value are dropped, except fill-rule. The fill and
// stroke alpha are left unset; they depend on the opacities of the
// ancestors and are filled in by alphaChain.apply.
func (v *visitor) declaredStyleOf(el *element) (declaredStyle, error) {
	var s declaredStyle
	var err error
	if p, ok := el.prop("fill"); ok {
		if s.Fill, s.fillServer, err = v.parsePaint(el, "fill", p); err != nil {
			return s, err
		}
	}
	if p, ok := el.prop("stroke"); ok {
		if s.Stroke, s.strokeServer, err = v.parsePaint(el, "stroke", p); err != nil {
			return s, err
		}
	}
	if p, ok := el.prop("fill-rule"); ok {
		switch p {
		case "nonzero":
			s.FillType = vector.NonZero
		case "evenodd":
			s.FillType = vector.EvenOdd
		default:
			return s, invalid("fill-rule", p)
		}
	}

	if s.fillOpacity, err = v.alphaProp(el, "fill-opacity"); err != nil {
		return s, err
	}
	if s.strokeOpacity, err = v.alphaProp(el, "stroke-opacity"); err != nil {
		return s, err
	}
	if s.opacity, err = v.alphaProp(el, "opacity"); err != nil {
		return s, err
	}

	if p, ok := el.prop("stroke-width"); ok {
		w, err := parseLength(p, v.percentRef("stroke-width"))
		if err != nil || w < 0 {
			return s, invalid("stroke-width", p)
		}
		s.StrokeWidth = &w
	}
	if p, ok := el.prop("stroke-linecap"); ok {
		switch p {
		case "butt":
		case "round":
			s.StrokeCap = vector.RoundCap
		case "square":
			s.StrokeCap = vector.Square
		default:
			return s, invalid("stroke-linecap", p)
		}
	}
	if p, ok := el.prop("stroke-linejoin"); ok {
		switch p {
		case "miter", "miter-clip", "arcs":
		case "round":
			s.StrokeJoin = vector.RoundJoin
		case "bevel":
			s.StrokeJoin = vector.Bevel
		default:
			return s, invalid("stroke-linejoin", p)
		}
	}
	if p, ok := el.prop("stroke-miterlimit"); ok {
		m, err := parseFloat(p)
		if err != nil || m < 1 {
			return s, invalid("stroke-miterlimit", p)
		}
		if m != defaultMiterLimit {
			s.StrokeMiter = &m
		}
	}
	return s, nil
}

// alphaChain is the alpha state in effect at an element: the inherited
// fill-opacity and stroke-opacity, and the product of the opacity of the
// element and all its ancestors.
type alphaChain struct {
	fill, stroke, opacity float64
}

var opaque = alphaChain{fill: defaultAlpha, stroke: defaultAlpha, opacity: defaultAlpha}

// next returns the chain in effect at an element declaring s.
func (c alphaChain) next(s *declaredStyle) alphaChain {
	if s.fillOpacity != nil {
		c.fill = *s.fillOpacity
	}
	if s.strokeOpacity != nil {
		c.stroke = *s.strokeOpacity
	}
	if s.opacity != nil {
		c.opacity *= *s.opacity
	}
	return c
}

// effective returns the alpha a path painted under c draws with for f,
// which is FieldFillAlpha or FieldStrokeAlpha.
func (c alphaChain) effective(f vector.Field) float64 {
	if f == vector.FieldFillAlpha {
		return c.fill * c.opacity
	}
	return c.stroke * c.opacity
}

// apply sets the alpha fields s declares, directly or through opacity, to
// their effective values under c. Effective values of 1 stay unset.
func (c alphaChain) apply(s *declaredStyle) {
	if s.fillOpacity != nil || s.opacity != nil {
		s.FillAlpha = alphaValue(c.effective(vector.FieldFillAlpha))
	}
	if s.strokeOpacity != nil || s.opacity != nil {
		s.StrokeAlpha = alphaValue(c.effective(vector.FieldStrokeAlpha))
	}
}

func alphaValue(f float64) *float64 {
	if f == defaultAlpha {
		return nil
	}
	return &f
}

func alphaOf(s *vector.Style, f vector.Field) *float64 {
	if f == vector.FieldFillAlpha {
		return s.FillAlpha
	}
	return s.StrokeAlpha
}

func setAlpha(s *vector.Style, f vector.Field, a *float64) {
	if f == vector.FieldFillAlpha {
		s.FillAlpha = a
	} else {
		s.StrokeAlpha = a
	}
}
