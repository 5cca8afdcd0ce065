package svgvector

import (
	"encoding/xml"

	"github.com/srwiley/rasterx"

	"github.com/raykov/svgvector/vector"
)

//ParseStopAttr stop Attr contain offset, stop-color, stop-opacity
func ParseStopAttr(stop *rasterx.GradStop, attr xml.Attr) (err error) {
	if stop == nil {
		return nil
	}

	switch attr.Name.Local {
	case "offset":
		stop.Offset, err = readFraction(attr.Value)
		stop.Offset = clamp01(stop.Offset)
	case "stop-color":
		stop.StopColor, err = ParseSVGColor(attr.Value)
	case "stop-opacity":
		stop.Opacity, err = parseFloat(attr.Value)
		stop.Opacity = clamp01(stop.Opacity)
	}
	if err != nil {
		return invalid(attr.Name.Local, attr.Value)
	}
	return nil

}

// readStops collects the stops of a gradient element. Offsets never
// decrease; a stop placed before its predecessor moves up to it.
func (v *visitor) readStops(grad *element) ([]rasterx.GradStop, error) {
	var stops []rasterx.GradStop
	last := 0.0
	for _, el := range grad.Children {
		if el.Name.Local != "stop" || el.foreign() {
			continue
		}
		stop := rasterx.GradStop{StopColor: vector.Named(vector.Black), Opacity: 1.0}
		attrs := []xml.Attr{{Name: xml.Name{Local: "offset"}, Value: el.Attrs["offset"]}}
		if _, ok := el.attr("offset"); !ok {
			attrs = attrs[:0]
		}
		if c, ok := el.prop("stop-color"); ok {
			if isCurrentColor(c) {
				stop.StopColor = v.elementColor(el)
			} else {
				attrs = append(attrs, xml.Attr{Name: xml.Name{Local: "stop-color"}, Value: c})
			}
		}
		if o, ok := el.prop("stop-opacity"); ok {
			attrs = append(attrs, xml.Attr{Name: xml.Name{Local: "stop-opacity"}, Value: o})
		}
		for _, attr := range attrs {
			if err := ParseStopAttr(&stop, attr); err != nil {
				return nil, wrapElement(el, err)
			}
		}
		if stop.Offset < last {
			stop.Offset = last
		}
		last = stop.Offset
		stops = append(stops, stop)
	}
	return stops, nil
}

// stopColor returns the color of stop with its stop-opacity applied.
func stopColor(stop rasterx.GradStop) vector.Color {
	c, ok := stop.StopColor.(vector.Color)
	if !ok {
		r, g, b, a := stop.StopColor.RGBA()
		if a == 0 {
			c = vector.Named(vector.Transparent)
		} else {
			c = vector.RGBA(uint8(r*0xffff/a>>8), uint8(g*0xffff/a>>8), uint8(b*0xffff/a>>8), uint8(a>>8))
		}
	}
	return c.WithAlpha(stop.Opacity)
}
