// Copyright 2017 The oksvg Authors. All rights reserved.
// created: 2/12/2017 by S.R.Wiley

package svgvector

import (
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"

	"github.com/raykov/svgvector/vector"
)

// keywordPalette maps the keywords whose value is exactly a palette color.
var keywordPalette = map[string]vector.NamedColor{
	"transparent": vector.Transparent,
	"black":       vector.Black,
	"white":       vector.White,
	"red":         vector.Red,
	"lime":        vector.Green,
	"blue":        vector.Blue,
	"yellow":      vector.Yellow,
	"cyan":        vector.Cyan,
	"aqua":        vector.Cyan,
	"magenta":     vector.Magenta,
	"fuchsia":     vector.Magenta,
}

// ParseSVGColorNum reads the hex digits of a #RGB, #RGBA, #RRGGBB or
// #RRGGBBAA color.
func ParseSVGColorNum(colorStr string) (r, g, b, a uint8, err error) {
	colorStr = strings.TrimPrefix(colorStr, "#")
	switch len(colorStr) {
	case 3, 4:
		// SVG specs say duplicate characters in case of 3 digit hex number
		long := make([]byte, 0, 8)
		for i := 0; i < len(colorStr); i++ {
			long = append(long, colorStr[i], colorStr[i])
		}
		colorStr = string(long)
	case 6, 8:
	default:
		return 0, 0, 0, 0, errParamMismatch
	}
	if len(colorStr) == 6 {
		colorStr += "ff"
	}
	for _, v := range []struct {
		c *uint8
		s string
	}{
		{&r, colorStr[0:2]},
		{&g, colorStr[2:4]},
		{&b, colorStr[4:6]},
		{&a, colorStr[6:8]}} {
		t, perr := strconv.ParseUint(v.s, 16, 8)
		if perr != nil {
			return 0, 0, 0, 0, errParamMismatch
		}
		*v.c = uint8(t)
	}
	return
}

// ParseSVGColor parses an SVG color string in all forms including all SVG1.1
// names, obtained from the colornames package, hex notation with optional
// alpha, and the rgb(), rgba(), hsl(), hsla() and hwb() functions in comma
// or space separated syntax. Keywords that equal a palette color are
// returned as that named color. none and currentColor are not colors and
// are handled by the paint parser.
func ParseSVGColor(colorStr string) (vector.Color, error) {
	v := strings.ToLower(strings.TrimSpace(colorStr))
	if v == "" {
		return vector.Color{}, invalid("color", colorStr)
	}
	if n, ok := keywordPalette[v]; ok {
		return vector.Named(n), nil
	}
	if cn, ok := colornames.Map[v]; ok {
		return vector.RGBA(cn.R, cn.G, cn.B, cn.A), nil
	}
	if v[0] == '#' {
		r, g, b, a, err := ParseSVGColorNum(v)
		if err != nil {
			return vector.Color{}, invalid("color", colorStr)
		}
		return vector.RGBA(r, g, b, a), nil
	}
	name, args, ok := colorFunc(v)
	if !ok {
		return vector.Color{}, invalid("color", colorStr)
	}
	c, err := evalColorFunc(name, args)
	if err != nil {
		return vector.Color{}, invalid("color", colorStr)
	}
	return c, nil
}

// colorFunc splits "name(a, b, c)" or "name(a b c / d)" into the function
// name and its arguments. The alpha after a slash becomes the last argument.
func colorFunc(v string) (name string, args []string, ok bool) {
	open := strings.IndexByte(v, '(')
	if open < 0 || !strings.HasSuffix(v, ")") {
		return "", nil, false
	}
	name = strings.TrimSpace(v[:open])
	body := v[open+1 : len(v)-1]
	if strings.Contains(body, ",") {
		for _, a := range strings.Split(body, ",") {
			args = append(args, strings.TrimSpace(a))
		}
		return name, args, true
	}
	main, alpha, hasAlpha := strings.Cut(body, "/")
	args = strings.Fields(main)
	if hasAlpha {
		args = append(args, strings.TrimSpace(alpha))
	}
	return name, args, true
}

func evalColorFunc(name string, args []string) (vector.Color, error) {
	if len(args) != 3 && len(args) != 4 {
		return vector.Color{}, errParamMismatch
	}
	alpha := uint8(0xff)
	if len(args) == 4 {
		a, err := parseAlpha(args[3])
		if err != nil {
			return vector.Color{}, err
		}
		alpha = a
	}
	switch name {
	case "rgb", "rgba":
		var cvals [3]uint8
		for i := range cvals {
			c, err := parseColorValue(args[i])
			if err != nil {
				return vector.Color{}, err
			}
			cvals[i] = c
		}
		return vector.RGBA(cvals[0], cvals[1], cvals[2], alpha), nil
	case "hsl", "hsla", "hwb":
		h, err := parseHue(args[0])
		if err != nil {
			return vector.Color{}, err
		}
		p1, err := parsePercent(args[1])
		if err != nil {
			return vector.Color{}, err
		}
		p2, err := parsePercent(args[2])
		if err != nil {
			return vector.Color{}, err
		}
		var c colorful.Color
		if name == "hwb" {
			// whiteness and blackness map onto HSV
			if p1+p2 >= 1 {
				gray := p1 / (p1 + p2)
				c = colorful.Color{R: gray, G: gray, B: gray}
			} else {
				val := 1 - p2
				c = colorful.Hsv(h, 1-p1/val, val)
			}
		} else {
			c = colorful.Hsl(h, p1, p2)
		}
		r, g, b := c.Clamped().RGB255()
		return vector.RGBA(r, g, b, alpha), nil
	}
	return vector.Color{}, errParamMismatch
}

func parseColorValue(v string) (uint8, error) {
	if strings.HasSuffix(v, "%") {
		n, err := parseFloat(strings.TrimSuffix(v, "%"))
		if err != nil {
			return 0, err
		}
		return clampByte(n * 0xFF / 100), nil
	}
	n, err := parseFloat(v)
	if err != nil {
		return 0, err
	}
	return clampByte(n), nil
}

func parseAlpha(v string) (uint8, error) {
	if strings.HasSuffix(v, "%") {
		n, err := parseFloat(strings.TrimSuffix(v, "%"))
		if err != nil {
			return 0, err
		}
		return clampByte(n * 0xFF / 100), nil
	}
	n, err := parseFloat(v)
	if err != nil {
		return 0, err
	}
	return clampByte(n * 0xFF), nil
}

func parsePercent(v string) (float64, error) {
	n, err := parseFloat(strings.TrimSuffix(v, "%"))
	if err != nil {
		return 0, err
	}
	return math.Min(math.Max(n/100, 0), 1), nil
}

// parseHue reads an angle in degrees; deg, rad, grad and turn units are
// accepted. The result is in [0, 360).
func parseHue(v string) (float64, error) {
	scale := 1.0
	for _, u := range []struct {
		suffix string
		scale  float64
	}{{"deg", 1}, {"grad", 0.9}, {"rad", 180 / math.Pi}, {"turn", 360}} {
		if strings.HasSuffix(v, u.suffix) {
			v, scale = strings.TrimSuffix(v, u.suffix), u.scale
			break
		}
	}
	h, err := parseFloat(v)
	if err != nil {
		return 0, err
	}
	h = math.Mod(h*scale, 360)
	if h < 0 {
		h += 360
	}
	return h, nil
}

func clampByte(f float64) uint8 {
	if f <= 0 {
		return 0
	}
	if f >= 255 {
		return 255
	}
	return uint8(math.Round(f))
}
