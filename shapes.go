// Copyright 2017 The oksvg Authors. All rights reserved.
// created: 2/12/2017 by S.R.Wiley

package svgvector

import (
	"errors"
	"math"

	"github.com/raykov/svgvector/geom"
	"github.com/raykov/svgvector/vector"
)

var errOddPoints = errors.New("polygon has odd number of points")

type pt = geom.Point

// lengthAttrs reads the named length attributes of el. Missing attributes
// are zero. Percentages resolve against the viewport size of the matching
// axis.
func (v *visitor) lengthAttrs(el *element, names ...string) ([]float64, error) {
	vals := make([]float64, len(names))
	for i, name := range names {
		s, ok := el.attr(name)
		if !ok {
			continue
		}
		f, err := parseLength(s, v.percentRef(name))
		if err != nil {
			return nil, invalid(name, s)
		}
		vals[i] = f
	}
	return vals, nil
}

// percentRef is the length a percentage of the attribute refers to.
func (v *visitor) percentRef(name string) float64 {
	w, h := v.viewport.W, v.viewport.H
	switch name {
	case "x", "x1", "x2", "cx", "width", "rx":
		return w
	case "y", "y1", "y2", "cy", "height", "ry":
		return h
	}
	return math.Sqrt(w*w+h*h) / math.Sqrt2
}

// rectNodes builds the path of a rect. A zero width or height disables
// rendering and gives no nodes.
func (v *visitor) rectNodes(el *element) ([]vector.PathNode, error) {
	vals, err := v.lengthAttrs(el, "x", "y", "width", "height", "rx", "ry")
	if err != nil {
		return nil, err
	}
	x, y, w, h := vals[0], vals[1], vals[2], vals[3]
	if w < 0 || h < 0 {
		return nil, invalid("size", el.Attrs["width"]+" "+el.Attrs["height"])
	}
	if w == 0 || h == 0 {
		return nil, nil
	}
	_, hasRx := el.attr("rx")
	_, hasRy := el.attr("ry")
	rx, ry := vals[4], vals[5]
	if rx < 0 || ry < 0 {
		return nil, invalid("radius", el.Attrs["rx"]+" "+el.Attrs["ry"])
	}
	switch {
	case hasRx && !hasRy:
		ry = rx
	case hasRy && !hasRx:
		rx = ry
	}
	rx, ry = math.Min(rx, w/2), math.Min(ry, h/2)
	if rx == 0 || ry == 0 {
		return []vector.PathNode{
			vector.MoveTo{Points: []pt{{X: x, Y: y}}},
			vector.HorizontalTo{X: []float64{x + w}},
			vector.VerticalTo{Y: []float64{y + h}},
			vector.HorizontalTo{X: []float64{x}},
			vector.Close{},
		}, nil
	}
	corner := func(end pt) vector.ArcTo {
		return vector.ArcTo{Arcs: []vector.ArcSegment{{RX: rx, RY: ry, Sweep: true, End: end}}}
	}
	return []vector.PathNode{
		vector.MoveTo{Points: []pt{{X: x + rx, Y: y}}},
		vector.HorizontalTo{X: []float64{x + w - rx}},
		corner(pt{X: x + w, Y: y + ry}),
		vector.VerticalTo{Y: []float64{y + h - ry}},
		corner(pt{X: x + w - rx, Y: y + h}),
		vector.HorizontalTo{X: []float64{x + rx}},
		corner(pt{X: x, Y: y + h - ry}),
		vector.VerticalTo{Y: []float64{y + ry}},
		corner(pt{X: x + rx, Y: y}),
		vector.Close{},
	}, nil
}

// ellipseNodes builds a circle or ellipse from two half arcs.
func (v *visitor) ellipseNodes(el *element) ([]vector.PathNode, error) {
	var cx, cy, rx, ry float64
	if el.Name.Local == "circle" {
		vals, err := v.lengthAttrs(el, "cx", "cy", "r")
		if err != nil {
			return nil, err
		}
		cx, cy, rx, ry = vals[0], vals[1], vals[2], vals[2]
	} else {
		vals, err := v.lengthAttrs(el, "cx", "cy", "rx", "ry")
		if err != nil {
			return nil, err
		}
		cx, cy, rx, ry = vals[0], vals[1], vals[2], vals[3]
		_, hasRx := el.attr("rx")
		_, hasRy := el.attr("ry")
		switch {
		case hasRx && !hasRy:
			ry = rx
		case hasRy && !hasRx:
			rx = ry
		}
	}
	if rx < 0 || ry < 0 {
		return nil, invalid("radius", el.Attrs["r"]+el.Attrs["rx"]+" "+el.Attrs["ry"])
	}
	if rx == 0 || ry == 0 { // not drawn, but not an error
		return nil, nil
	}
	half := func(end pt) vector.ArcTo {
		return vector.ArcTo{Arcs: []vector.ArcSegment{{RX: rx, RY: ry, LargeArc: true, Sweep: true, End: end}}}
	}
	return []vector.PathNode{
		vector.MoveTo{Points: []pt{{X: cx + rx, Y: cy}}},
		half(pt{X: cx - rx, Y: cy}),
		half(pt{X: cx + rx, Y: cy}),
		vector.Close{},
	}, nil
}

// lineNodes builds the open two point path of a line.
func (v *visitor) lineNodes(el *element) ([]vector.PathNode, error) {
	vals, err := v.lengthAttrs(el, "x1", "y1", "x2", "y2")
	if err != nil {
		return nil, err
	}
	return []vector.PathNode{
		vector.MoveTo{Points: []pt{{X: vals[0], Y: vals[1]}}},
		vector.LineTo{Points: []pt{{X: vals[2], Y: vals[3]}}},
	}, nil
}

// polyNodes builds a polyline, or a closed polygon. Fewer than two
// vertices draw nothing.
func (v *visitor) polyNodes(el *element) ([]vector.PathNode, error) {
	points, err := getPoints(el.Attrs["points"])
	if err != nil {
		return nil, err
	}
	if len(points)%2 != 0 {
		return nil, invalid("points", errOddPoints.Error())
	}
	if len(points) < 4 {
		return nil, nil
	}
	pts := pointsOf(points)
	nodes := []vector.PathNode{
		vector.MoveTo{Points: pts[:1]},
		vector.LineTo{Points: pts[1:]},
	}
	if el.Name.Local == "polygon" { // polylines stay open
		nodes = append(nodes, vector.Close{})
	}
	return nodes, nil
}

// shapeNodes returns the authored path of any supported shape element.
func (v *visitor) shapeNodes(el *element) ([]vector.PathNode, error) {
	switch el.Name.Local {
	case "path":
		return ParsePathData(el.Attrs["d"])
	case "rect":
		return v.rectNodes(el)
	case "circle", "ellipse":
		return v.ellipseNodes(el)
	case "line":
		return v.lineNodes(el)
	case "polyline", "polygon":
		return v.polyNodes(el)
	}
	return nil, ErrUnsupportedElement
}
