// Copyright 2017 The oksvg Authors. All rights reserved.
// created: 2/12/2017 by S.R.Wiley

// svgd.go implements translation of SVG path data into path nodes.

package svgvector

import (
	"fmt"

	"github.com/tdewolff/parse/v2/strconv"

	"github.com/raykov/svgvector/geom"
	"github.com/raykov/svgvector/vector"
)

// argCounts is the number of numbers one repetition of a command takes.
var argCounts = map[byte]int{
	'M': 2, 'L': 2, 'H': 1, 'V': 1, 'C': 6, 'S': 4, 'Q': 4, 'T': 2, 'A': 7, 'Z': 0,
}

func upper(k byte) byte {
	if k >= 'a' && k <= 'z' {
		return k - ('a' - 'A')
	}
	return k
}

func isNumberStart(c byte) bool {
	return c >= '0' && c <= '9' || c == '.' || c == '-' || c == '+'
}

// ParsePathData translates SVG path data into path nodes. Every command
// letter in d becomes one node that keeps the letter's case and all of its
// repeated argument sets, so the authored data can be written back
// unchanged. Empty data gives no nodes.
func ParsePathData(d string) ([]vector.PathNode, error) {
	path := []byte(d)
	i := skipCommaWhitespace(path)
	if i >= len(path) {
		return nil, nil
	}
	if upper(path[i]) != 'M' {
		return nil, fmt.Errorf("%w: path data must start with a move, got %q", errCommandUnknown, path[i])
	}

	var nodes []vector.PathNode
	for i < len(path) {
		k := path[i]
		n, ok := argCounts[upper(k)]
		if !ok {
			return nil, fmt.Errorf("%w %q at position %d", errCommandUnknown, k, i+1)
		}
		i++
		i += skipCommaWhitespace(path[i:])

		var args []float64
		for n > 0 && i < len(path) && isNumberStart(path[i]) {
			for j := 0; j < n; j++ {
				if upper(k) == 'A' && (j == 3 || j == 4) {
					// flags may be written without separators, as in a1 1 0 011 1
					if i < len(path) && (path[i] == '0' || path[i] == '1') {
						args = append(args, float64(path[i]-'0'))
						i++
					} else {
						return nil, fmt.Errorf("%w: arc flags must be 0 or 1 at position %d", errParamMismatch, i+1)
					}
				} else {
					f, l := strconv.ParseFloat(path[i:])
					if l == 0 {
						return nil, fmt.Errorf("%w: %c needs sets of %d numbers at position %d", errParamMismatch, k, n, i+1)
					}
					args = append(args, f)
					i += l
				}
				i += skipCommaWhitespace(path[i:])
			}
		}
		if n > 0 && len(args) == 0 {
			return nil, fmt.Errorf("%w: %c without arguments at position %d", errParamMismatch, k, i)
		}
		if n == 0 && i < len(path) && isNumberStart(path[i]) {
			return nil, fmt.Errorf("%w: %c takes no arguments at position %d", errParamMismatch, k, i+1)
		}
		nodes = append(nodes, newPathNode(k, args))
	}
	return nodes, nil
}

func pointsOf(args []float64) []geom.Point {
	pts := make([]geom.Point, 0, len(args)/2)
	for j := 0; j+1 < len(args); j += 2 {
		pts = append(pts, geom.Point{X: args[j], Y: args[j+1]})
	}
	return pts
}

// newPathNode builds the node for command k. args holds whole sets.
func newPathNode(k byte, args []float64) vector.PathNode {
	switch k {
	case 'M':
		return vector.MoveTo{Points: pointsOf(args)}
	case 'm':
		return vector.RelativeMoveTo{Points: pointsOf(args)}
	case 'L':
		return vector.LineTo{Points: pointsOf(args)}
	case 'l':
		return vector.RelativeLineTo{Points: pointsOf(args)}
	case 'H':
		return vector.HorizontalTo{X: args}
	case 'h':
		return vector.RelativeHorizontalTo{DX: args}
	case 'V':
		return vector.VerticalTo{Y: args}
	case 'v':
		return vector.RelativeVerticalTo{DY: args}
	case 'C', 'c':
		pts := pointsOf(args)
		segs := make([]vector.CubicSegment, 0, len(pts)/3)
		for j := 0; j+2 < len(pts); j += 3 {
			segs = append(segs, vector.CubicSegment{C1: pts[j], C2: pts[j+1], End: pts[j+2]})
		}
		if k == 'c' {
			return vector.RelativeCurveTo{Segments: segs}
		}
		return vector.CurveTo{Segments: segs}
	case 'S', 's':
		pts := pointsOf(args)
		segs := make([]vector.SmoothCubicSegment, 0, len(pts)/2)
		for j := 0; j+1 < len(pts); j += 2 {
			segs = append(segs, vector.SmoothCubicSegment{C2: pts[j], End: pts[j+1]})
		}
		if k == 's' {
			return vector.RelativeReflectiveCurveTo{Segments: segs}
		}
		return vector.ReflectiveCurveTo{Segments: segs}
	case 'Q', 'q':
		pts := pointsOf(args)
		segs := make([]vector.QuadSegment, 0, len(pts)/2)
		for j := 0; j+1 < len(pts); j += 2 {
			segs = append(segs, vector.QuadSegment{C: pts[j], End: pts[j+1]})
		}
		if k == 'q' {
			return vector.RelativeQuadTo{Segments: segs}
		}
		return vector.QuadTo{Segments: segs}
	case 'T':
		return vector.ReflectiveQuadTo{Points: pointsOf(args)}
	case 't':
		return vector.RelativeReflectiveQuadTo{Points: pointsOf(args)}
	case 'A', 'a':
		arcs := make([]vector.ArcSegment, 0, len(args)/7)
		for j := 0; j+6 < len(args); j += 7 {
			arcs = append(arcs, vector.ArcSegment{
				RX: args[j], RY: args[j+1], Rotation: args[j+2],
				LargeArc: args[j+3] != 0, Sweep: args[j+4] != 0,
				End: geom.Point{X: args[j+5], Y: args[j+6]},
			})
		}
		if k == 'a' {
			return vector.RelativeArcTo{Arcs: arcs}
		}
		return vector.ArcTo{Arcs: arcs}
	case 'z':
		return vector.RelativeClose{}
	}
	return vector.Close{}
}
