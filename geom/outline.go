package geom

import "math"

type (
	// Point is a position in user space.
	Point struct {
		X, Y float64
	}

	// Rect is an axis aligned box.
	Rect struct {
		X, Y, W, H float64
	}

	// Adder receives the segments of an outline. It mirrors the
	// rasterx Adder but works on float64 coordinates, since outlines here
	// end up as path data rather than on a fixed point scanner.
	Adder interface {
		// Start starts a new curve at the given point.
		Start(a Point)
		// Line adds a line segment to the path
		Line(b Point)
		// QuadBezier adds a quadratic bezier curve to the path
		QuadBezier(b, c Point)
		// CubeBezier adds a cubic bezier curve to the path
		CubeBezier(b, c, d Point)
		// Stop closes the path to the start point if closeLoop is true
		Stop(closeLoop bool)
	}

	// OutlineOp identifies the kind of an outline segment.
	OutlineOp uint8

	// Segment is one outline operation. Pts holds the control points
	// followed by the end point; unused entries are zero.
	Segment struct {
		Op  OutlineOp
		Pts [3]Point
	}

	// Outline is a resolved planar shape made only of absolute moves,
	// lines, quadratic and cubic curves and closes.
	Outline []Segment
)

const (
	OpMoveTo OutlineOp = iota
	OpLineTo
	OpQuadTo
	OpCubeTo
	OpClose
)

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Lerp interpolates between p and q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{p.X + (q.X-p.X)*t, p.Y + (q.Y-p.Y)*t}
}

func (o *Outline) Start(a Point) {
	*o = append(*o, Segment{Op: OpMoveTo, Pts: [3]Point{a}})
}

func (o *Outline) Line(b Point) {
	*o = append(*o, Segment{Op: OpLineTo, Pts: [3]Point{b}})
}

func (o *Outline) QuadBezier(b, c Point) {
	*o = append(*o, Segment{Op: OpQuadTo, Pts: [3]Point{b, c}})
}

func (o *Outline) CubeBezier(b, c, d Point) {
	*o = append(*o, Segment{Op: OpCubeTo, Pts: [3]Point{b, c, d}})
}

func (o *Outline) Stop(closeLoop bool) {
	if closeLoop {
		*o = append(*o, Segment{Op: OpClose})
	}
}

// End returns the end point of the segment.
func (s Segment) End() Point {
	switch s.Op {
	case OpQuadTo:
		return s.Pts[1]
	case OpCubeTo:
		return s.Pts[2]
	}
	return s.Pts[0]
}

// AddTo replays the outline into a.
func (o Outline) AddTo(a Adder) {
	for _, s := range o {
		switch s.Op {
		case OpMoveTo:
			a.Start(s.Pts[0])
		case OpLineTo:
			a.Line(s.Pts[0])
		case OpQuadTo:
			a.QuadBezier(s.Pts[0], s.Pts[1])
		case OpCubeTo:
			a.CubeBezier(s.Pts[0], s.Pts[1], s.Pts[2])
		case OpClose:
			a.Stop(true)
		}
	}
}

// Transform returns a copy of o with m applied to every point.
func (o Outline) Transform(m Matrix2D) Outline {
	out := make(Outline, 0, len(o))
	o.AddTo(&MatrixAdder{Adder: &out, M: m})
	return out
}

// Bounds returns the tight bounding box of the outline. Curve extrema are
// included, control points that lie outside the curve are not. ok is false
// for an empty outline.
func (o Outline) Bounds() (r Rect, ok bool) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	add := func(p Point) {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	var cur, start Point
	for _, s := range o {
		switch s.Op {
		case OpMoveTo:
			start = s.Pts[0]
		case OpQuadTo:
			for _, t := range quadExtrema(cur, s.Pts[0], s.Pts[1]) {
				add(quadAt(cur, s.Pts[0], s.Pts[1], t))
			}
		case OpCubeTo:
			for _, t := range cubeExtrema(cur, s.Pts[0], s.Pts[1], s.Pts[2]) {
				add(cubeAt(cur, s.Pts[0], s.Pts[1], s.Pts[2], t))
			}
		case OpClose:
			cur = start
			continue
		}
		cur = s.End()
		add(cur)
	}
	if math.IsInf(minX, 1) {
		return Rect{}, false
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}, true
}

func quadAt(p0, p1, p2 Point, t float64) Point {
	mt := 1 - t
	return Point{
		mt*mt*p0.X + 2*mt*t*p1.X + t*t*p2.X,
		mt*mt*p0.Y + 2*mt*t*p1.Y + t*t*p2.Y}
}

func cubeAt(p0, p1, p2, p3 Point, t float64) Point {
	mt := 1 - t
	a, b, c, d := mt*mt*mt, 3*mt*mt*t, 3*mt*t*t, t*t*t
	return Point{
		a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y}
}

// quadExtrema returns the parameters in (0,1) where the derivative of a
// quadratic vanishes on either axis.
func quadExtrema(p0, p1, p2 Point) (ts []float64) {
	for _, v := range [2][3]float64{{p0.X, p1.X, p2.X}, {p0.Y, p1.Y, p2.Y}} {
		den := v[0] - 2*v[1] + v[2]
		if den == 0 {
			continue
		}
		if t := (v[0] - v[1]) / den; t > 0 && t < 1 {
			ts = append(ts, t)
		}
	}
	return
}

// cubeExtrema returns the parameters in (0,1) where the derivative of a
// cubic vanishes on either axis.
func cubeExtrema(p0, p1, p2, p3 Point) (ts []float64) {
	for _, v := range [2][4]float64{{p0.X, p1.X, p2.X, p3.X}, {p0.Y, p1.Y, p2.Y, p3.Y}} {
		// derivative / 3 = a t^2 + b t + c
		a := -v[0] + 3*v[1] - 3*v[2] + v[3]
		b := 2 * (v[0] - 2*v[1] + v[2])
		c := v[1] - v[0]
		if math.Abs(a) < 1e-12 {
			if b != 0 {
				if t := -c / b; t > 0 && t < 1 {
					ts = append(ts, t)
				}
			}
			continue
		}
		disc := b*b - 4*a*c
		if disc < 0 {
			continue
		}
		sq := math.Sqrt(disc)
		for _, t := range [2]float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)} {
			if t > 0 && t < 1 {
				ts = append(ts, t)
			}
		}
	}
	return
}
