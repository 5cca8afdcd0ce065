// Copyright 2017 The oksvg Authors. All rights reserved.
// created: 2/12/2017 by S.R.Wiley

package geom

import "math"

// MaxArcSpan is the largest angle in radians a single cubic spline is
// allowed to cover when approximating an elliptical arc.
const MaxArcSpan float64 = math.Pi / 4

// arcRadiusShrink is the divisor used to grow radii that are too small to
// span both end points. It is a hair under 2 so the retried arc always has
// a real center.
const arcRadiusShrink = 1.99999

// ArcSegments returns the number of cubic splines ArcToBezier emits for an
// arc covering sweep radians.
func ArcSegments(sweep float64) int {
	n := int(math.Ceil(math.Abs(sweep) / MaxArcSpan))
	if n < 1 {
		n = 1
	}
	return n
}

// ArcToBezier approximates the elliptical arc centered at cx, cy with radii
// rx, ry and x-axis rotation theta, starting at parametric angle start and
// covering sweep radians, with cubic bezier splines sent to a. The current
// point of a must already be the arc start point. The end point of the arc
// is returned.
//
// The control points follow L. Maisonobe, "Drawing an elliptical arc using
// polylines, quadratic or cubic Bezier curves", 2003.
func ArcToBezier(a Adder, cx, cy, rx, ry, theta, start, sweep float64) Point {
	segs := ArcSegments(sweep)
	dEta := sweep / float64(segs)
	tde := math.Tan(dEta / 2)
	alpha := math.Sin(dEta) * (math.Sqrt(4+3*tde*tde) - 1) / 3
	sinTheta, cosTheta := math.Sincos(theta)

	lx, ly := ellipsePointAt(rx, ry, sinTheta, cosTheta, start, cx, cy)
	ldx, ldy := ellipsePrime(rx, ry, sinTheta, cosTheta, start)
	for i := 1; i <= segs; i++ {
		eta := start + dEta*float64(i)
		px, py := ellipsePointAt(rx, ry, sinTheta, cosTheta, eta, cx, cy)
		dx, dy := ellipsePrime(rx, ry, sinTheta, cosTheta, eta)
		a.CubeBezier(
			Point{lx + alpha*ldx, ly + alpha*ldy},
			Point{px - alpha*dx, py - alpha*dy},
			Point{px, py})
		lx, ly, ldx, ldy = px, py, dx, dy
	}
	return Point{lx, ly}
}

// AddArc adds the SVG endpoint-parameterized arc from p0 to p1 to a. The
// current point of a must be p0. rotation is in degrees. Radii that cannot
// span the two points are grown once, keeping their ratio. An arc whose end
// points coincide adds nothing, and a zero radius degenerates to a line.
func AddArc(a Adder, p0, p1 Point, rx, ry, rotation float64, largeArc, sweep bool) {
	addArc(a, p0, p1, rx, ry, rotation, largeArc, sweep, true)
}

func addArc(a Adder, p0, p1 Point, rx, ry, rotation float64, largeArc, sweep, retry bool) {
	if p0 == p1 {
		return
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 {
		a.Line(p1)
		return
	}
	theta := rotation * math.Pi / 180
	sin, cos := math.Sincos(theta)

	// Move into the space where the ellipse is a unit circle.
	x0p := (p0.X*cos + p0.Y*sin) / rx
	y0p := (-p0.X*sin + p0.Y*cos) / ry
	x1p := (p1.X*cos + p1.Y*sin) / rx
	y1p := (-p1.X*sin + p1.Y*cos) / ry

	dx, dy := x0p-x1p, y0p-y1p
	xm, ym := (x0p+x1p)/2, (y0p+y1p)/2
	dsq := dx*dx + dy*dy
	if dsq == 0 {
		return
	}
	disc := 1/dsq - 0.25
	if disc < 0 {
		if retry {
			adjust := math.Sqrt(dsq) / arcRadiusShrink
			addArc(a, p0, p1, rx*adjust, ry*adjust, rotation, largeArc, sweep, false)
			return
		}
		// The center sits on the chord midpoint.
		disc = 0
	}
	s := math.Sqrt(disc)
	sdx, sdy := s*dx, s*dy
	var cx, cy float64
	if largeArc == sweep {
		cx, cy = xm-sdy, ym+sdx
	} else {
		cx, cy = xm+sdy, ym-sdx
	}
	eta0 := math.Atan2(y0p-cy, x0p-cx)
	eta1 := math.Atan2(y1p-cy, x1p-cx)
	span := eta1 - eta0
	if sweep != (span >= 0) {
		if span > 0 {
			span -= 2 * math.Pi
		} else {
			span += 2 * math.Pi
		}
	}
	// Back to user space.
	cx *= rx
	cy *= ry
	cx, cy = cx*cos-cy*sin, cx*sin+cy*cos

	ArcToBezier(&endSnapper{Adder: a, n: ArcSegments(span), end: p1},
		cx, cy, rx, ry, theta, eta0, span)
}

// endSnapper replaces the end point of the final spline with the exact
// arc end point so round off does not open closed shapes.
type endSnapper struct {
	Adder
	n   int
	end Point
}

func (e *endSnapper) CubeBezier(b, c, d Point) {
	e.n--
	if e.n == 0 {
		d = e.end
	}
	e.Adder.CubeBezier(b, c, d)
}

// ellipsePrime gives tangent vectors for parameterized elipse; a, b, radii, eta parameter
func ellipsePrime(a, b, sinTheta, cosTheta, eta float64) (px, py float64) {
	bCosEta := b * math.Cos(eta)
	aSinEta := a * math.Sin(eta)
	px = -aSinEta*cosTheta - bCosEta*sinTheta
	py = -aSinEta*sinTheta + bCosEta*cosTheta
	return
}

// ellipsePointAt gives points for parameterized elipse; a, b, radii, eta parameter, center cx, cy
func ellipsePointAt(a, b, sinTheta, cosTheta, eta, cx, cy float64) (px, py float64) {
	aCosEta := a * math.Cos(eta)
	bSinEta := b * math.Sin(eta)
	px = cx + aCosEta*cosTheta - bSinEta*sinTheta
	py = cy + aCosEta*sinTheta + bSinEta*cosTheta
	return
}
