// Copyright 2017 The oksvg Authors. All rights reserved.
// created: 2/12/2017 by S.R.Wiley

package svgvector

import (
	"math"
	"strings"

	"github.com/tdewolff/parse/v2/strconv"

	"github.com/raykov/svgvector/geom"
)

func skipCommaWhitespace(b []byte) int {
	i := 0
	for i < len(b) && (b[i] == ' ' || b[i] == ',' || b[i] == '\n' || b[i] == '\r' || b[i] == '\t') {
		i++
	}
	return i
}

func skipWhitespace(b []byte) int {
	i := 0
	for i < len(b) && (b[i] == ' ' || b[i] == '\n' || b[i] == '\r' || b[i] == '\t') {
		i++
	}
	return i
}

// parseFloat reads a number that must make up all of v, apart from
// surrounding white space.
func parseFloat(v string) (float64, error) {
	b := []byte(strings.TrimSpace(v))
	f, n := strconv.ParseFloat(b)
	if n == 0 || n != len(b) {
		return 0, invalid("number", v)
	}
	return f, nil
}

// getPoints reads a list of numbers separated by white space and or commas.
func getPoints(dataPoints string) ([]float64, error) {
	b := []byte(dataPoints)
	var points []float64
	i := skipCommaWhitespace(b)
	for i < len(b) {
		f, n := strconv.ParseFloat(b[i:])
		if n == 0 {
			return nil, invalid("number list", dataPoints)
		}
		points = append(points, f)
		i += n
		i += skipCommaWhitespace(b[i:])
	}
	return points, nil
}

// parseTransform reads a transform list. The transforms apply in list
// order, so the result maps the coordinates of the last transform's space
// into the space of the element's parent.
func parseTransform(v string) (geom.Matrix2D, error) {
	m1 := geom.Identity
	b := []byte(v)
	i := skipCommaWhitespace(b)
	for i < len(b) {
		start := i
		for i < len(b) && (b[i] >= 'a' && b[i] <= 'z' || b[i] >= 'A' && b[i] <= 'Z') {
			i++
		}
		name := strings.ToLower(string(b[start:i]))
		i += skipWhitespace(b[i:])
		if name == "" || i >= len(b) || b[i] != '(' {
			return geom.Identity, invalid("transform", v)
		}
		end := strings.IndexByte(v[i:], ')')
		if end < 0 {
			return geom.Identity, invalid("transform", v)
		}
		points, err := getPoints(v[i+1 : i+end])
		if err != nil {
			return geom.Identity, invalid("transform", v)
		}
		i += end + 1
		i += skipCommaWhitespace(b[i:])

		ln := len(points)
		switch name {
		case "rotate":
			if ln == 1 {
				m1 = m1.Rotate(points[0] * math.Pi / 180)
			} else if ln == 3 {
				m1 = m1.Translate(points[1], points[2]).
					Rotate(points[0]*math.Pi/180).
					Translate(-points[1], -points[2])
			} else {
				return geom.Identity, invalid("transform", v)
			}
		case "translate":
			if ln == 1 {
				m1 = m1.Translate(points[0], 0)
			} else if ln == 2 {
				m1 = m1.Translate(points[0], points[1])
			} else {
				return geom.Identity, invalid("transform", v)
			}
		case "skewx":
			if ln == 1 {
				m1 = m1.SkewX(points[0] * math.Pi / 180)
			} else {
				return geom.Identity, invalid("transform", v)
			}
		case "skewy":
			if ln == 1 {
				m1 = m1.SkewY(points[0] * math.Pi / 180)
			} else {
				return geom.Identity, invalid("transform", v)
			}
		case "scale":
			if ln == 1 {
				m1 = m1.Scale(points[0], points[0])
			} else if ln == 2 {
				m1 = m1.Scale(points[0], points[1])
			} else {
				return geom.Identity, invalid("transform", v)
			}
		case "matrix":
			if ln == 6 {
				m1 = m1.Mult(geom.Matrix2D{
					A: points[0],
					B: points[1],
					C: points[2],
					D: points[3],
					E: points[4],
					F: points[5]})
			} else {
				return geom.Identity, invalid("transform", v)
			}
		default:
			return geom.Identity, invalid("transform", v)
		}
	}
	return m1, nil
}

// unitScale converts absolute length units to user units at 96 dpi. em is
// taken as the 16px browser default.
var unitScale = map[string]float64{
	"":   1,
	"px": 1,
	"pt": 96.0 / 72,
	"pc": 16,
	"mm": 96 / 25.4,
	"cm": 96 / 2.54,
	"in": 96,
	"em": 16,
}

// parseLength reads a length. Percentages are resolved against ref.
func parseLength(v string, ref float64) (float64, error) {
	v = strings.TrimSpace(v)
	if strings.HasSuffix(v, "%") {
		f, err := parseFloat(strings.TrimSuffix(v, "%"))
		if err != nil {
			return 0, invalid("length", v)
		}
		return f / 100 * ref, nil
	}
	b := []byte(v)
	f, n := strconv.ParseFloat(b)
	if n == 0 {
		return 0, invalid("length", v)
	}
	scale, ok := unitScale[strings.ToLower(strings.TrimSpace(v[n:]))]
	if !ok {
		return 0, invalid("length", v)
	}
	return f * scale, nil
}

// readFraction reads a number or percentage, a percentage being divided by
// 100. The result is not clamped.
func readFraction(v string) (f float64, err error) {
	v = strings.TrimSpace(v)
	d := 1.0
	if strings.HasSuffix(v, "%") {
		d = 100
		v = strings.TrimSuffix(v, "%")
	}
	f, err = parseFloat(v)
	f /= d
	return
}

func clamp01(f float64) float64 {
	return math.Min(math.Max(f, 0), 1)
}
