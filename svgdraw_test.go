// Copyright 2018 The oksvg Authors. All rights reserved.
// created: 2018 by S.R.Wiley
package svgvector_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-logr/logr/funcr"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/raykov/svgvector"
	"github.com/raykov/svgvector/geom"
	"github.com/raykov/svgvector/vector"
)

const testArco = `M150,350 l 50,-55
           a25,25 -30 0,1 50,-25 l 50,-25
           a25,50 -30 0,1 50,-25 l 50,-25
           a25,75 -30 0,1 50,-25 l 50,-25
           a25,100 -30 0,1 50,-25 l 50,15z`

const testArco2 = `M150,350 l 50,-55
           a35,25 -30 0,0 50,-25 l 50,-25
           a25,50 -30 0,1 50,-25 l 50,-25
           a25,75 -30 0,1 50,-25 l 50,-25
           a25,100 -30 0,1 50,-25, l 50,15z`

const testArcoS = `M150,350 l 50,-55
           a35,25 -30 0,0 50,-25,
           25,50 -30 0,1 50,-25
           a25,75 -30 0,1 50,-25 l 50,-25
           a25,100 -30 0,1 50,-25 l 50,15,0,25,-15,-15  z`

// Explicitly call each command in abs and rel mode and concatenated forms
const testSVG0 = `m20,20,0,400,400,0z`
const testSVG1 = `M20,20 L500,800 L800,200z`
const testSVG2 = `M20,20 Q200,800 800,800z`
const testSVG3 = `M20,50 C200,200 800,200 800,500z`
const testSVG4 = `M20,50 S200,1400 400,500 S700,800 800,400z`
const testSVG5 = `M50,20 Q 800,500 500,800z`
const testSVG6 = `M20,50 c200,200 800,200 400,300z`
const testSVG7 = `M20,20 c0,500 500,0 500,500z`
const testSVG8 = `M20,50 c200,200 800,200 400,300c200,200 800,200 400,300z`
const testSVG9 = `M20,50 c200,200 800,200 400,300,200,200 800,200 400,300z`
const testSVG10 = `M20,50 c200,200 800,200 400,300,200,200 800,200 400,300s500,300 200,200s600,300 200,200z`
const testSVG11 = `M20,50 c200,200 800,200 400,300,200,200 800,200 400,300s500,300 200,200,600,300 200,200z`
const testSVG12 = `M100,100 Q400,100 250,250 T400,400z`
const testSVG13 = `M100,100 Q400,100 250,250 t150,150,150,150z`

var testPaths = []string{testArco, testArco2, testArcoS, testSVG0, testSVG1,
	testSVG2, testSVG3, testSVG4, testSVG5, testSVG6, testSVG7, testSVG8,
	testSVG9, testSVG10, testSVG11, testSVG12, testSVG13}

func parseString(t *testing.T, svg string, opts ...Options) *vector.Model {
	t.Helper()
	m, err := Parse(strings.NewReader(svg), "test", false, opts...)
	require.NoError(t, err)
	require.NotNil(t, m)
	return m
}

func svgDoc(attrs, body string) string {
	return `<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" ` +
		attrs + `>` + body + `</svg>`
}

func TestPathDataRoundTrip(t *testing.T) {
	for _, p := range testPaths {
		nodes, err := ParsePathData(p)
		require.NoError(t, err, p)
		again, err := ParsePathData(vector.PathString(nodes))
		require.NoError(t, err, p)
		assert.Empty(t, cmp.Diff(nodes, again), p)
	}
}

func TestSvgPathsResolved(t *testing.T) {
	for _, p := range testPaths {
		m := parseString(t, svgDoc(`viewBox="0 0 1000 1000"`, `<path d="`+p+`"/>`),
			Options{ForceResolvedPaths: true})
		paths := vector.Paths(m.Root)
		require.Len(t, paths, 1, p)
		for _, n := range paths[0].Nodes {
			assert.Contains(t, "MLCZ", string(n.Command()), p)
		}
	}
}

func TestIdentityPathKeepsAuthoredData(t *testing.T) {
	m := parseString(t, svgDoc(`viewBox="0 0 24 24"`, `<path d="M0,0 L10,10 Z"/>`))
	paths := vector.Paths(m.Root)
	require.Len(t, paths, 1)
	assert.Equal(t, "M0,0 L10,10 Z", vector.PathString(paths[0].Nodes))
	assert.Equal(t, vector.SolidColor{Color: vector.Named(vector.Black)}, paths[0].Fill)
}

func TestViewBoxSizing(t *testing.T) {
	m := parseString(t, svgDoc(`viewBox="0 0 500 500"`, ``))
	assert.Equal(t, 500.0, m.ViewportWidth)
	assert.Equal(t, 500.0, m.ViewportHeight)
	assert.Equal(t, 500.0, m.DefaultWidth)
	assert.Equal(t, 500.0, m.DefaultHeight)
	assert.True(t, m.Root.CTM.IsIdentity())
	assert.Equal(t, "test", m.Name)
}

func TestDeclaredSizeDiffersFromViewBox(t *testing.T) {
	m := parseString(t, svgDoc(`width="24" height="24" viewBox="0 0 48 48"`,
		`<path d="M0,0 L48,48"/>`))
	assert.Equal(t, 24.0, m.DefaultWidth)
	assert.Equal(t, 48.0, m.ViewportWidth)
	// geometry stays in viewBox units
	assert.True(t, m.Root.CTM.IsIdentity())
	assert.Equal(t, "M0,0 L48,48", vector.PathString(vector.Paths(m.Root)[0].Nodes))
}

func TestDefaultViewport(t *testing.T) {
	m := parseString(t, svgDoc(``, ``))
	assert.Equal(t, 300.0, m.ViewportWidth)
	assert.Equal(t, 150.0, m.ViewportHeight)

	m = parseString(t, svgDoc(`width="100%" height="64"`, ``))
	assert.Equal(t, 300.0, m.DefaultWidth)
	assert.Equal(t, 64.0, m.DefaultHeight)
}

func TestViewBoxOrigin(t *testing.T) {
	m := parseString(t, svgDoc(`viewBox="10 20 100 100"`, `<path d="M10,20 L110,120"/>`))
	assert.Equal(t, geom.Identity.Translate(-10, -20), m.Root.CTM)
	assert.Equal(t, "M0,0 L100,100", vector.PathString(vector.Paths(m.Root)[0].Nodes))
}

func TestGroupStrokeHoistedToRoot(t *testing.T) {
	m := parseString(t, svgDoc(`viewBox="0 0 500 500"`,
		`<g stroke="blue"><rect x="0" y="0" width="500" height="500"/></g>`))
	require.Len(t, m.Root.Children, 1)
	path, ok := m.Root.Children[0].(*vector.Path)
	require.True(t, ok, "group should be elided")

	extra := m.Root.ReferencedExtra
	require.NotNil(t, extra)
	assert.Equal(t, vector.SolidColor{Color: vector.Named(vector.Blue)}, extra.Stroke)
	require.NotNil(t, path.ExtraReference)
	assert.Equal(t, extra.ID, path.ExtraReference.Get(vector.FieldStroke))
	assert.Equal(t, vector.ExtraID(0), path.ExtraReference.Get(vector.FieldFill))
	assert.Nil(t, path.Stroke)
	assert.Equal(t, "M0,0 H500 V500 H0 Z", vector.PathString(path.Nodes))
}

func TestTranslatedGroup(t *testing.T) {
	m := parseString(t, svgDoc(`viewBox="0 0 100 100"`,
		`<g transform="translate(40,0)"><path d="M0,0 L10,0"/><path d="M0,10 L10,10"/></g>`))
	require.Len(t, m.Root.Children, 1)
	g, ok := m.Root.Children[0].(*vector.Group)
	require.True(t, ok)
	assert.Equal(t, geom.Identity.Translate(40, 0), g.CTM)
	require.NotNil(t, g.Transform)
	assert.Equal(t, 40.0, g.Transform.TranslationX)
	assert.Equal(t, 1.0, g.Transform.ScaleX)
	require.Len(t, g.Children, 2)
	assert.Equal(t, "M40,0 L50,0", vector.PathString(g.Children[0].(*vector.Path).Nodes))
	assert.Equal(t, "M40,10 L50,10", vector.PathString(g.Children[1].(*vector.Path).Nodes))
}

func TestRotatedGroupHasNoDecomposition(t *testing.T) {
	m := parseString(t, svgDoc(`viewBox="0 0 100 100"`,
		`<g transform="rotate(90)" clip-path="none"><path d="M0,0 L10,0"/></g>`))
	// a rotation alone carries nothing that keeps the group
	require.Len(t, m.Root.Children, 1)
	p := m.Root.Children[0].(*vector.Path)
	lt := p.Nodes[1].(vector.LineTo)
	assert.InDelta(t, 0, lt.Points[0].X, 1e-9)
	assert.InDelta(t, 10, lt.Points[0].Y, 1e-9)
}

func TestUseInlinesGroup(t *testing.T) {
	m := parseString(t, svgDoc(`viewBox="0 0 200 100"`, `
		<defs><g id="shape"><circle cx="10" cy="10" r="5"/><circle cx="30" cy="10" r="5"/></g></defs>
		<use xlink:href="#shape" x="100"/>`))
	paths := vector.Paths(m.Root)
	require.Len(t, paths, 2)
	start := paths[0].Nodes[0].(vector.MoveTo)
	assert.InDelta(t, 115, start.Points[0].X, 1e-9)
	assert.InDelta(t, 10, start.Points[0].Y, 1e-9)
	start = paths[1].Nodes[0].(vector.MoveTo)
	assert.InDelta(t, 135, start.Points[0].X, 1e-9)
	for _, n := range paths[0].Nodes {
		assert.Contains(t, "MLCZ", string(n.Command()))
	}
}

func TestUseCycle(t *testing.T) {
	_, err := Parse(strings.NewReader(svgDoc(``,
		`<g id="a"><use href="#a"/></g>`)), "cycle", false)
	assert.ErrorIs(t, err, ErrInvalidValue)

	_, err = Parse(strings.NewReader(svgDoc(``, `<use href="#"/>`)), "empty", false)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestUseSymbol(t *testing.T) {
	m := parseString(t, svgDoc(`viewBox="0 0 100 100"`, `
		<symbol id="s" viewBox="0 0 10 10"><rect width="10" height="10"/></symbol>
		<use href="#s" width="20" height="20"/>`))
	paths := vector.Paths(m.Root)
	require.Len(t, paths, 1)
	o := paths[0].Nodes
	assert.Equal(t, vector.MoveTo{Points: []geom.Point{{X: 0, Y: 0}}}, o[0])
	assert.Equal(t, vector.LineTo{Points: []geom.Point{{X: 20, Y: 0}}}, o[1])
}

func TestNearestAncestorPerField(t *testing.T) {
	m := parseString(t, svgDoc(`viewBox="0 0 100 100"`, `
		<g id="outer" fill="red" stroke="green" transform="scale(2)">
			<g id="inner" stroke="blue" stroke-width="2">
				<rect width="10" height="10"/>
			</g>
		</g>`))
	outer := m.Root.Children[0].(*vector.Group)
	require.NotNil(t, outer.ReferencedExtra)
	// stroke comes from the inner group, so only fill is referenced on outer
	assert.Nil(t, outer.ReferencedExtra.Stroke)
	assert.NotNil(t, outer.ReferencedExtra.Fill)
	assert.NotNil(t, outer.Extra.Stroke)

	inner := outer.Children[0].(*vector.Group)
	require.NotNil(t, inner.ReferencedExtra)
	path := inner.Children[0].(*vector.Path)
	ref := path.ExtraReference
	assert.Equal(t, outer.ReferencedExtra.ID, ref.Get(vector.FieldFill))
	assert.Equal(t, inner.ReferencedExtra.ID, ref.Get(vector.FieldStroke))
	assert.Equal(t, inner.ReferencedExtra.ID, ref.Get(vector.FieldStrokeWidth))
	assert.Nil(t, path.Fill)
}

func TestLocalStyleDefaultsSuppressed(t *testing.T) {
	m := parseString(t, svgDoc(``, `<rect width="1" height="1" fill-opacity="1"
		stroke-linecap="butt" stroke-linejoin="miter" stroke-miterlimit="4" fill-rule="evenodd"/>`))
	p := vector.Paths(m.Root)[0]
	assert.Nil(t, p.FillAlpha)
	assert.Equal(t, vector.CapUnset, p.StrokeCap)
	assert.Equal(t, vector.JoinUnset, p.StrokeJoin)
	assert.Nil(t, p.StrokeMiter)
	assert.Equal(t, vector.EvenOdd, p.FillType)
}

func TestLineHasNoFill(t *testing.T) {
	m := parseString(t, svgDoc(``, `<g fill="red" stroke="red"><line x1="0" y1="0" x2="5" y2="5"/></g>`))
	p := vector.Paths(m.Root)[0]
	assert.Nil(t, p.Fill)
	assert.Equal(t, vector.ExtraID(0), p.ExtraReference.Get(vector.FieldFill))
	assert.NotEqual(t, vector.ExtraID(0), p.ExtraReference.Get(vector.FieldStroke))
}

func TestInlineStyleLastDeclaration(t *testing.T) {
	m := parseString(t, svgDoc(``, `
		<rect width="1" height="1" style="fill:red"/>
		<g style="display:none"><text>never read</text></g>`))
	ps := vector.Paths(m.Root)
	require.Len(t, ps, 1)
	assert.Equal(t, vector.SolidColor{Color: vector.Named(vector.Red)}, ps[0].Fill)
}

func TestOmitDefaultFill(t *testing.T) {
	m := parseString(t, svgDoc(``, `<rect width="1" height="1"/>`), Options{OmitDefaultFill: true})
	assert.Nil(t, vector.Paths(m.Root)[0].Fill)
}

func TestVisibility(t *testing.T) {
	m := parseString(t, svgDoc(``, `
		<rect width="1" height="1" visibility="hidden"/>
		<g style="display:none"><text>never read</text></g>
		<rect width="2" height="2"/>`))
	paths := vector.Paths(m.Root)
	require.Len(t, paths, 1)
	assert.Equal(t, "M0,0 H2 V2 H0 Z", vector.PathString(paths[0].Nodes))
}

func TestClipPathWrapsShape(t *testing.T) {
	m := parseString(t, svgDoc(`viewBox="0 0 100 100"`, `
		<clipPath id="c"><rect x="0" y="0" width="50" height="50"/></clipPath>
		<circle cx="50" cy="50" r="40" clip-path="url(#c)"/>`))
	require.Len(t, m.Root.Children, 1)
	g, ok := m.Root.Children[0].(*vector.Group)
	require.True(t, ok)
	require.Len(t, g.ClipPathData, 1)
	assert.Equal(t, "M0,0 L50,0 L50,50 L0,50 Z", vector.PathString(g.ClipPathData[0]))
	require.Len(t, g.Children, 1)
}

func TestClipPathBoundingBoxUnits(t *testing.T) {
	m := parseString(t, svgDoc(`viewBox="0 0 100 100"`, `
		<clipPath id="c" clipPathUnits="objectBoundingBox"><rect width="0.5" height="1"/></clipPath>
		<rect x="20" y="20" width="40" height="40" clip-path="url(#c)"/>`))
	g := m.Root.Children[0].(*vector.Group)
	assert.Equal(t, "M20,20 L40,20 L40,60 L20,60 Z", vector.PathString(g.ClipPathData[0]))
}

func TestEmptyClipPathDropsShape(t *testing.T) {
	m := parseString(t, svgDoc(``, `<clipPath id="c"/><rect width="5" height="5" clip-path="url(#c)"/>`))
	assert.Empty(t, m.Root.Children)
}

func TestGradientBakedIntoPath(t *testing.T) {
	m := parseString(t, svgDoc(`viewBox="0 0 100 100"`, `
		<linearGradient id="g" spreadMethod="reflect">
			<stop offset="0" stop-color="red"/><stop offset="1" stop-color="blue"/>
		</linearGradient>
		<g transform="translate(10,0)"><rect x="0" y="0" width="50" height="20" fill="url(#g)"/></g>`))
	p := vector.Paths(m.Root)[0]
	lg, ok := p.Fill.(vector.LinearGradient)
	require.True(t, ok)
	assert.Equal(t, geom.Point{X: 10, Y: 0}, lg.Start)
	assert.Equal(t, geom.Point{X: 60, Y: 0}, lg.End)
	assert.Equal(t, vector.Mirror, lg.TileMode)
	require.Len(t, lg.Stops, 2)
	assert.Equal(t, vector.Named(vector.Blue), lg.Stops[1].Color)
}

func TestGradientFallbacks(t *testing.T) {
	m := parseString(t, svgDoc(``, `
		<linearGradient id="one"><stop offset="0" stop-color="yellow"/></linearGradient>
		<linearGradient id="none"/>
		<rect width="1" height="1" fill="url(#one)"/>
		<rect width="1" height="1" fill="url(#none)"/>
		<rect width="1" height="1" fill="url(#missing) red"/>
		<rect width="1" height="1" fill="url(#missing)"/>`))
	paths := vector.Paths(m.Root)
	require.Len(t, paths, 4)
	assert.Equal(t, vector.SolidColor{Color: vector.Named(vector.Yellow)}, paths[0].Fill)
	assert.Equal(t, vector.SolidColor{Color: vector.Named(vector.Transparent)}, paths[1].Fill)
	assert.Equal(t, vector.SolidColor{Color: vector.Named(vector.Red)}, paths[2].Fill)
	assert.Equal(t, vector.SolidColor{Color: vector.Named(vector.Transparent)}, paths[3].Fill)
}

func TestCurrentColor(t *testing.T) {
	m := parseString(t, svgDoc(``, `<g color="magenta"><rect width="1" height="1" fill="currentColor"/></g>`))
	assert.Equal(t, vector.SolidColor{Color: vector.Named(vector.Magenta)}, vector.Paths(m.Root)[0].Fill)
}

func TestSeaIcon(t *testing.T) {
	m, err := ParseFile("testdata/sea.svg", true)
	require.NoError(t, err)
	assert.Equal(t, "sea", m.Name)
	assert.True(t, m.AutoMirror)
	assert.Equal(t, 240.0, m.DefaultWidth)
	assert.Equal(t, 120.0, m.ViewportWidth)
	assert.True(t, m.Root.CTM.IsIdentity())

	root := m.Root
	require.Len(t, root.Children, 4)
	require.NotNil(t, root.ReferencedExtra)
	assert.Equal(t, vector.ExtraID(1), root.ReferencedExtra.ID)
	require.NotNil(t, root.ReferencedExtra.FillAlpha)
	assert.InDelta(t, 0.8, *root.ReferencedExtra.FillAlpha, 1e-9)

	sky := root.Children[0].(*vector.Path)
	assert.Equal(t, "skyRect", sky.Name)
	lg, ok := sky.Fill.(vector.LinearGradient)
	require.True(t, ok)
	assert.Equal(t, geom.Point{X: 0, Y: 80}, lg.End)
	assert.Equal(t, vector.RGBA(0xff, 0xff, 0xff, 0x80), lg.Stops[1].Color)

	sun := root.Children[1].(*vector.Group)
	assert.Len(t, sun.ClipPathData, 1)
	rg, ok := sun.Children[0].(*vector.Path).Fill.(vector.RadialGradient)
	require.True(t, ok)
	assert.Equal(t, 12.0, rg.Radius)

	wave := root.Children[2].(*vector.Path)
	assert.Equal(t, "M0,60 C40,50,80,70,120,60 L120,80 L0,80 Z", vector.PathString(wave.Nodes))
	assert.Equal(t, vector.ExtraID(1), wave.ExtraReference.Get(vector.FieldStroke))

	shifted := root.Children[3].(*vector.Group)
	require.NotNil(t, shifted.Transform)
	assert.Equal(t, 6.0, shifted.Transform.TranslationY)
	assert.Equal(t, shifted.ReferencedExtra.ID, shifted.Children[0].(*vector.Path).ExtraReference.Get(vector.FieldFillAlpha))
	// the group opacity multiplies into the fill-opacity the use declares
	require.NotNil(t, shifted.ReferencedExtra.FillAlpha)
	assert.InDelta(t, 0.4, *shifted.ReferencedExtra.FillAlpha, 1e-9)
}

func TestGroupOpacity(t *testing.T) {
	m := parseString(t, svgDoc(``, `
		<g fill="red" fill-opacity="0.5" opacity="0.5">
			<rect id="plain" width="1" height="1"/>
			<rect id="own" width="1" height="1" fill-opacity="0.8"/>
			<g opacity="0.5"><rect id="nested" width="1" height="1"/></g>
			<rect id="self" width="1" height="1" opacity="0.5"/>
		</g>`))
	alphas := map[string]float64{}
	refs := map[string]vector.ExtraID{}
	for _, p := range vector.Paths(m.Root) {
		if p.FillAlpha != nil {
			alphas[p.Name] = *p.FillAlpha
		}
		if p.ExtraReference != nil {
			refs[p.Name] = p.ExtraReference.Get(vector.FieldFillAlpha)
		}
	}
	extra := vector.FindExtra(m.Root, refs["plain"])
	require.NotNil(t, extra)
	assert.InDelta(t, 0.25, *extra.FillAlpha, 1e-9)

	assert.InDelta(t, 0.4, alphas["own"], 1e-9)
	assert.Zero(t, refs["own"])
	nested := vector.FindExtra(m.Root, refs["nested"])
	require.NotNil(t, nested)
	assert.NotEqual(t, extra.ID, nested.ID)
	assert.InDelta(t, 0.125, *nested.FillAlpha, 1e-9)
	assert.InDelta(t, 0.125, alphas["self"], 1e-9)
	assert.Zero(t, refs["self"])
}

func TestSimplifyIdempotent(t *testing.T) {
	m, err := ParseFile("testdata/sea.svg", false)
	require.NoError(t, err)
	once := Simplify(m.Root)
	twice := Simplify(once)
	assert.Empty(t, cmp.Diff(m.Root, once, cmpopts.EquateEmpty()))
	assert.Empty(t, cmp.Diff(once, twice, cmpopts.EquateEmpty()))
}

func TestSimplifyElidesPlainGroups(t *testing.T) {
	p := &vector.Path{Nodes: []vector.PathNode{vector.MoveTo{Points: []geom.Point{{}}}}}
	extra := &vector.Extra{ID: 7, Style: vector.Style{Stroke: vector.SolidColor{Color: vector.Named(vector.Red)}}}
	root := &vector.Group{CTM: geom.Identity, Children: []vector.Node{
		&vector.Group{CTM: geom.Identity},
		&vector.Group{CTM: geom.Identity, Children: []vector.Node{
			&vector.Group{CTM: geom.Identity, ReferencedExtra: extra, Children: []vector.Node{p}},
		}},
	}}
	s := Simplify(root)
	require.Len(t, s.Children, 1)
	assert.Same(t, p, s.Children[0])
	assert.Same(t, extra, s.ReferencedExtra)
	assert.Len(t, root.Children, 2, "input is left untouched")
}

func TestText(t *testing.T) {
	_, err := ParseFile("testdata/TestText.svg", false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedElement))
	var ee *ElementError
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, "text", ee.Tag)
	assert.Equal(t, "caption", ee.ID)
}

func TestBadColor(t *testing.T) {
	m, err := ParseFile("testdata/BadColor.svg", false)
	assert.ErrorIs(t, err, ErrInvalidValue)
	assert.Nil(t, m)
}

func TestClassesIcon(t *testing.T) {
	m, err := ParseFile("testdata/TestClasses.svg", false)
	require.NoError(t, err)
	paths := vector.Paths(m.Root)
	require.Len(t, paths, 3)

	rect := paths[0]
	assert.Equal(t, vector.SolidColor{Color: vector.Named(vector.Red)}, rect.Fill)
	assert.Equal(t, vector.SolidColor{Color: vector.Named(vector.Blue)}, rect.Stroke)
	require.NotNil(t, rect.StrokeWidth)
	assert.Equal(t, 3.0, *rect.StrokeWidth)

	assert.Equal(t, vector.SolidColor{Color: vector.RGBA(0, 0, 0xff, 0x80)}, paths[1].Fill)
	assert.Equal(t, vector.SolidColor{Color: vector.Named(vector.Cyan)}, paths[2].Fill)
	assert.Equal(t, vector.SolidColor{Color: vector.RGBA(0, 0xff, 0, 0xff)}, paths[2].Stroke)

	// Test error handling in class definitions and style attributes
	_, err = ParseFile("testdata/TestClasses_bad1.svg", false)
	assert.ErrorIs(t, err, ErrInvalidValue, "failed to catch class defs error")
	_, err = ParseFile("testdata/TestClasses_bad2.svg", false)
	assert.ErrorIs(t, err, ErrInvalidValue, "failed to catch attribute format error")
}

func TestHSL(t *testing.T) {
	c, err := ParseSVGColor("hsl(198, 47%, 65%)")
	require.NoError(t, err)
	assert.Equal(t, vector.RGBA(124, 183, 208, 255), c)
}

func TestMalformedInput(t *testing.T) {
	for name, doc := range map[string]string{
		"xml":       `<svg xmlns="http://www.w3.org/2000/svg"><g></svg>`,
		"root":      `<html/>`,
		"transform": svgDoc(``, `<g transform="spin(3)"><rect width="1" height="1"/></g>`),
		"path":      svgDoc(``, `<path d="L10,10"/>`),
		"fill-rule": svgDoc(``, `<rect width="1" height="1" fill-rule="sideways"/>`),
	} {
		t.Run(name, func(t *testing.T) {
			m, err := Parse(strings.NewReader(doc), name, false)
			assert.Error(t, err)
			assert.Nil(t, m)
		})
	}
}

func TestLoggerReceivesDiagnostics(t *testing.T) {
	var lines []string
	logger := funcr.New(func(prefix, args string) {
		lines = append(lines, args)
	}, funcr.Options{Verbosity: 2})
	parseString(t, svgDoc(`viewBox="0 0 10 10"`, `
		<title>t</title>
		<g transform="scale(2)" filter="url(#f)"><rect width="1" height="1"/></g>`),
		Options{Logger: logger})
	all := strings.Join(lines, "\n")
	assert.Contains(t, all, "skipping element")
	assert.Contains(t, all, "ignoring property")
	assert.Contains(t, all, "applying matrix")
}
