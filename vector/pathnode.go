package vector

import (
	"strconv"
	"strings"

	"github.com/raykov/svgvector/geom"
)

// PathNode is one command of a path. The set of implementations is closed;
// switch on the concrete type to consume it.
type PathNode interface {
	// Command returns the SVG path letter of the node. Relative variants
	// return the lower case letter.
	Command() byte
	isPathNode()
}

type (
	CubicSegment struct {
		C1, C2, End geom.Point
	}

	SmoothCubicSegment struct {
		C2, End geom.Point
	}

	QuadSegment struct {
		C, End geom.Point
	}

	// ArcSegment is an SVG endpoint arc. Rotation is in degrees.
	ArcSegment struct {
		RX, RY   float64
		Rotation float64
		LargeArc bool
		Sweep    bool
		End      geom.Point
	}
)

type (
	MoveTo                    struct{ Points []geom.Point }
	RelativeMoveTo            struct{ Points []geom.Point }
	LineTo                    struct{ Points []geom.Point }
	RelativeLineTo            struct{ Points []geom.Point }
	HorizontalTo              struct{ X []float64 }
	RelativeHorizontalTo      struct{ DX []float64 }
	VerticalTo                struct{ Y []float64 }
	RelativeVerticalTo        struct{ DY []float64 }
	CurveTo                   struct{ Segments []CubicSegment }
	RelativeCurveTo           struct{ Segments []CubicSegment }
	ReflectiveCurveTo         struct{ Segments []SmoothCubicSegment }
	RelativeReflectiveCurveTo struct{ Segments []SmoothCubicSegment }
	QuadTo                    struct{ Segments []QuadSegment }
	RelativeQuadTo            struct{ Segments []QuadSegment }
	ReflectiveQuadTo          struct{ Points []geom.Point }
	RelativeReflectiveQuadTo  struct{ Points []geom.Point }
	ArcTo                     struct{ Arcs []ArcSegment }
	RelativeArcTo             struct{ Arcs []ArcSegment }
	Close                     struct{}
	RelativeClose             struct{}
)

func (MoveTo) Command() byte                    { return 'M' }
func (RelativeMoveTo) Command() byte            { return 'm' }
func (LineTo) Command() byte                    { return 'L' }
func (RelativeLineTo) Command() byte            { return 'l' }
func (HorizontalTo) Command() byte              { return 'H' }
func (RelativeHorizontalTo) Command() byte      { return 'h' }
func (VerticalTo) Command() byte                { return 'V' }
func (RelativeVerticalTo) Command() byte        { return 'v' }
func (CurveTo) Command() byte                   { return 'C' }
func (RelativeCurveTo) Command() byte           { return 'c' }
func (ReflectiveCurveTo) Command() byte         { return 'S' }
func (RelativeReflectiveCurveTo) Command() byte { return 's' }
func (QuadTo) Command() byte                    { return 'Q' }
func (RelativeQuadTo) Command() byte            { return 'q' }
func (ReflectiveQuadTo) Command() byte          { return 'T' }
func (RelativeReflectiveQuadTo) Command() byte  { return 't' }
func (ArcTo) Command() byte                     { return 'A' }
func (RelativeArcTo) Command() byte             { return 'a' }
func (Close) Command() byte                     { return 'Z' }
func (RelativeClose) Command() byte             { return 'z' }

func (MoveTo) isPathNode()                    {}
func (RelativeMoveTo) isPathNode()            {}
func (LineTo) isPathNode()                    {}
func (RelativeLineTo) isPathNode()            {}
func (HorizontalTo) isPathNode()              {}
func (RelativeHorizontalTo) isPathNode()      {}
func (VerticalTo) isPathNode()                {}
func (RelativeVerticalTo) isPathNode()        {}
func (CurveTo) isPathNode()                   {}
func (RelativeCurveTo) isPathNode()           {}
func (ReflectiveCurveTo) isPathNode()         {}
func (RelativeReflectiveCurveTo) isPathNode() {}
func (QuadTo) isPathNode()                    {}
func (RelativeQuadTo) isPathNode()            {}
func (ReflectiveQuadTo) isPathNode()          {}
func (RelativeReflectiveQuadTo) isPathNode()  {}
func (ArcTo) isPathNode()                     {}
func (RelativeArcTo) isPathNode()             {}
func (Close) isPathNode()                     {}
func (RelativeClose) isPathNode()             {}

// Args returns the numeric arguments of n in path data order. Arc flags
// are 0 or 1.
func Args(n PathNode) []float64 {
	var args []float64
	pts := func(ps []geom.Point) {
		for _, p := range ps {
			args = append(args, p.X, p.Y)
		}
	}
	switch n := n.(type) {
	case MoveTo:
		pts(n.Points)
	case RelativeMoveTo:
		pts(n.Points)
	case LineTo:
		pts(n.Points)
	case RelativeLineTo:
		pts(n.Points)
	case HorizontalTo:
		args = append(args, n.X...)
	case RelativeHorizontalTo:
		args = append(args, n.DX...)
	case VerticalTo:
		args = append(args, n.Y...)
	case RelativeVerticalTo:
		args = append(args, n.DY...)
	case CurveTo:
		for _, s := range n.Segments {
			pts([]geom.Point{s.C1, s.C2, s.End})
		}
	case RelativeCurveTo:
		for _, s := range n.Segments {
			pts([]geom.Point{s.C1, s.C2, s.End})
		}
	case ReflectiveCurveTo:
		for _, s := range n.Segments {
			pts([]geom.Point{s.C2, s.End})
		}
	case RelativeReflectiveCurveTo:
		for _, s := range n.Segments {
			pts([]geom.Point{s.C2, s.End})
		}
	case QuadTo:
		for _, s := range n.Segments {
			pts([]geom.Point{s.C, s.End})
		}
	case RelativeQuadTo:
		for _, s := range n.Segments {
			pts([]geom.Point{s.C, s.End})
		}
	case ReflectiveQuadTo:
		pts(n.Points)
	case RelativeReflectiveQuadTo:
		pts(n.Points)
	case ArcTo:
		args = appendArcs(args, n.Arcs)
	case RelativeArcTo:
		args = appendArcs(args, n.Arcs)
	}
	return args
}

func appendArcs(args []float64, arcs []ArcSegment) []float64 {
	for _, a := range arcs {
		args = append(args, a.RX, a.RY, a.Rotation, flag(a.LargeArc), flag(a.Sweep), a.End.X, a.End.Y)
	}
	return args
}

func flag(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// FormatFloat writes v in the shortest form that parses back to v. Negative
// zero is written as 0.
func FormatFloat(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// PathString serializes nodes as SVG path data. Nodes are separated by a
// space and the arguments of one node by commas, so "M0,0 L10,10 Z" is
// reproduced exactly.
func PathString(nodes []PathNode) string {
	var sb strings.Builder
	for i, n := range nodes {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(n.Command())
		for j, a := range Args(n) {
			if j > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(FormatFloat(a))
		}
	}
	return sb.String()
}
