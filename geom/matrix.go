// Copyright 2018 The oksvg Authors. All rights reserved.
//
// created: 2018 by S.R.Wiley
//_
// Implements SVG style matrix transformations.
// https://developer.mozilla.org/en-US/docs/Web/SVG/Attribute/transform
package geom

import (
	"fmt"
	"math"
)

// Matrix2D is the affine matrix
//
//	[A C E]
//	[B D F]
//	[0 0 1]
type Matrix2D struct {
	A, B, C, D, E, F float64
}

// Identity is the matrix that leaves every point in place.
var Identity = Matrix2D{1, 0, 0, 1, 0, 0}

// Mult composes a and b; the result applies b first, then a.
func (a Matrix2D) Mult(b Matrix2D) Matrix2D {
	return Matrix2D{
		A: a.A*b.A + a.C*b.B,
		B: a.B*b.A + a.D*b.B,
		C: a.A*b.C + a.C*b.D,
		D: a.B*b.C + a.D*b.D,
		E: a.A*b.E + a.C*b.F + a.E,
		F: a.B*b.E + a.D*b.F + a.F}
}

// Determinant of the linear part.
func (m Matrix2D) Determinant() float64 {
	return m.A*m.D - m.B*m.C
}

// Invert returns the inverse of m. A singular matrix has no inverse and
// Identity is returned instead.
func (m Matrix2D) Invert() Matrix2D {
	det := m.Determinant()
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return Identity
	}
	return Matrix2D{
		A: m.D / det,
		B: -m.B / det,
		C: -m.C / det,
		D: m.A / det,
		E: (m.C*m.F - m.D*m.E) / det,
		F: (m.B*m.E - m.A*m.F) / det}
}

// IsIdentity compares m against the identity constants exactly.
func (m Matrix2D) IsIdentity() bool {
	return m == Identity
}

// IsDiagonal reports whether m only scales and translates.
func (m Matrix2D) IsDiagonal() bool {
	return m.B == 0 && m.C == 0
}

func (m Matrix2D) Transform(x1, y1 float64) (x2, y2 float64) {
	x2 = x1*m.A + y1*m.C + m.E
	y2 = x1*m.B + y1*m.D + m.F
	return
}

// TransformPoint applies m to p.
func (m Matrix2D) TransformPoint(p Point) Point {
	x, y := m.Transform(p.X, p.Y)
	return Point{x, y}
}

func (a Matrix2D) Scale(x, y float64) Matrix2D {
	return a.Mult(Matrix2D{
		A: x,
		B: 0,
		C: 0,
		D: y,
		E: 0,
		F: 0})
}

func (a Matrix2D) SkewY(theta float64) Matrix2D {
	return a.Mult(Matrix2D{
		A: 1,
		B: math.Tan(theta),
		C: 0,
		D: 1,
		E: 0,
		F: 0})
}

func (a Matrix2D) SkewX(theta float64) Matrix2D {
	return a.Mult(Matrix2D{
		A: 1,
		B: 0,
		C: math.Tan(theta),
		D: 1,
		E: 0,
		F: 0})
}

func (a Matrix2D) Translate(x, y float64) Matrix2D {
	return a.Mult(Matrix2D{
		A: 1,
		B: 0,
		C: 0,
		D: 1,
		E: x,
		F: y})
}

// Rotate rotates by theta radians.
func (a Matrix2D) Rotate(theta float64) Matrix2D {
	sin, cos := math.Sincos(theta)
	return a.Mult(Matrix2D{
		A: cos,
		B: sin,
		C: -sin,
		D: cos,
		E: 0,
		F: 0})
}

// Components returns the six values in a, b, c, d, e, f order.
func (m Matrix2D) Components() [6]float64 {
	return [6]float64{m.A, m.B, m.C, m.D, m.E, m.F}
}

func (m Matrix2D) String() string {
	return fmt.Sprintf("matrix(%g %g %g %g %g %g)", m.A, m.B, m.C, m.D, m.E, m.F)
}

// MatrixAdder applies M to every point before handing it to Adder.
type MatrixAdder struct {
	Adder
	M Matrix2D
}

func (t *MatrixAdder) Reset() {
	t.M = Identity
}

func (t *MatrixAdder) Start(a Point) {
	t.Adder.Start(t.M.TransformPoint(a))
}

// Line adds a linear segment to the current curve.
func (t *MatrixAdder) Line(b Point) {
	t.Adder.Line(t.M.TransformPoint(b))
}

// QuadBezier adds a quadratic segment to the current curve.
func (t *MatrixAdder) QuadBezier(b, c Point) {
	t.Adder.QuadBezier(t.M.TransformPoint(b), t.M.TransformPoint(c))
}

// CubeBezier adds a cubic segment to the current curve.
func (t *MatrixAdder) CubeBezier(b, c, d Point) {
	t.Adder.CubeBezier(t.M.TransformPoint(b), t.M.TransformPoint(c), t.M.TransformPoint(d))
}
