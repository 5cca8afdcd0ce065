package svgvector

import (
	"strings"
	"testing"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/go-logr/logr/testr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cascadeDoc = `<?xml version="1.0"?>
<!DOCTYPE svg [
  <!ENTITY accent "#ff8800">
]>
<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink"
     xmlns:inkscape="http://www.inkscape.org/namespaces/inkscape">
  <style>
    rect { stroke: red; fill: blue }
    .hot { stroke: &accent; }
    #one { stroke-width: 4 !important }
    @media print { rect { fill: black } }
  </style>
  <rect id="one" class="hot" fill="green" stroke-width="2" style="stroke-width: 3; fill: yellow" inkscape:label="x"/>
  <rect id="one" fill="inherit"/>
  <use xlink:href="#one"/>
  <inkscape:grid id="grid"/>
</svg>`

func TestReadDocumentCascade(t *testing.T) {
	doc, err := readDocument(strings.NewReader(cascadeDoc), testr.New(t))
	require.NoError(t, err)

	one, ok := doc.lookup("#one")
	require.True(t, ok)
	assert.Same(t, doc.root.Children[1], one, "first id wins")

	fill, _ := one.prop("fill")
	assert.Equal(t, "yellow", fill)
	stroke, _ := one.prop("stroke")
	assert.Equal(t, "#ff8800", stroke)
	width, _ := one.prop("stroke-width")
	assert.Equal(t, "4", width)
	_, ok = one.Attrs["label"]
	assert.False(t, ok, "foreign attributes are dropped")

	second := doc.root.Children[2]
	_, ok = second.prop("fill")
	assert.False(t, ok, "inherit is not a local value")
	stroke, _ = second.prop("stroke")
	assert.Equal(t, "red", stroke)

	use := doc.root.Children[3]
	assert.Equal(t, "#one", use.Attrs["href"])

	grid := doc.root.Children[4]
	assert.True(t, grid.foreign())
	assert.Equal(t, kindSkip, kindOf(grid))
	_, ok = doc.lookup("#grid")
	assert.False(t, ok)
}

func TestReadDocumentErrors(t *testing.T) {
	for name, in := range map[string]string{
		"empty":  ``,
		"root":   `<g xmlns="http://www.w3.org/2000/svg"/>`,
		"broken": `<svg xmlns="http://www.w3.org/2000/svg"><rect></svg>`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := readDocument(strings.NewReader(in), logr.Discard())
			assert.Error(t, err)
		})
	}
}

func TestElementKinds(t *testing.T) {
	doc, err := readDocument(strings.NewReader(`<svg xmlns="http://www.w3.org/2000/svg">
		<g/><use/><circle/><defs/><feGaussianBlur/><text/><hatch/></svg>`), logr.Discard())
	require.NoError(t, err)
	var kinds []elementKind
	for _, c := range doc.root.Children {
		kinds = append(kinds, kindOf(c))
	}
	assert.Equal(t, []elementKind{kindContainer, kindUse, kindShape, kindSkip, kindSkip, kindUnsupported, kindUnknown}, kinds)
}

func TestInlineStyleWithoutSemicolon(t *testing.T) {
	doc, err := readDocument(strings.NewReader(`<svg xmlns="http://www.w3.org/2000/svg">
		<rect style="fill:red"/><g style=" display : none "/><rect style="stroke:blue; stroke-width:2"/></svg>`), logr.Discard())
	require.NoError(t, err)

	fill, _ := doc.root.Children[0].prop("fill")
	assert.Equal(t, "red", fill)
	display, _ := doc.root.Children[1].prop("display")
	assert.Equal(t, "none", display)
	width, _ := doc.root.Children[2].prop("stroke-width")
	assert.Equal(t, "2", width)
}

func TestSheetTypeSelectors(t *testing.T) {
	var logged []string
	log := funcr.New(func(prefix, args string) { logged = append(logged, args) }, funcr.Options{Verbosity: 1})
	doc, err := readDocument(strings.NewReader(`<svg xmlns="http://www.w3.org/2000/svg">
		<style>
			rect { stroke: red }
			rect.warm { stroke: blue }
			g > rect { fill: green }
			linearGradient { color: black }
			rect:hover-ish { stroke: black }
		</style>
		<rect/><rect class="warm"/><g><rect/></g><linearGradient id="lg"/></svg>`), log)
	require.NoError(t, err)

	kids := doc.root.Children
	var strokes []string
	for _, el := range []*element{kids[1], kids[2], kids[3].Children[0]} {
		s, _ := el.prop("stroke")
		strokes = append(strokes, s)
	}
	assert.Equal(t, []string{"red", "blue", "red"}, strokes)

	_, ok := kids[1].prop("fill")
	assert.False(t, ok)
	fill, _ := kids[3].Children[0].prop("fill")
	assert.Equal(t, "green", fill)
	color, _ := kids[4].prop("color")
	assert.Equal(t, "black", color, "mixed case tag names match")

	require.Len(t, logged, 1)
	assert.Contains(t, logged[0], "rect:hover-ish")
}
