package vector

import (
	"fmt"

	"github.com/raykov/svgvector/geom"
)

// NamedColor is one of the palette colors a code generator can refer to by
// name. NotNamed means the color is only known by its components.
type NamedColor uint8

const (
	NotNamed NamedColor = iota
	Transparent
	Black
	White
	Red
	Green
	Blue
	Yellow
	Cyan
	Magenta
)

var namedColorNames = [...]string{"", "Transparent", "Black", "White", "Red",
	"Green", "Blue", "Yellow", "Cyan", "Magenta"}

func (n NamedColor) String() string {
	if int(n) < len(namedColorNames) {
		return namedColorNames[n]
	}
	return fmt.Sprintf("NamedColor(%d)", n)
}

// Color is a non premultiplied RGBA color. Name is set when the value is
// exactly one of the palette colors.
type Color struct {
	Name       NamedColor
	R, G, B, A uint8
}

var palette = map[NamedColor]Color{
	Transparent: {Name: Transparent},
	Black:       {Name: Black, A: 0xff},
	White:       {Name: White, R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	Red:         {Name: Red, R: 0xff, A: 0xff},
	Green:       {Name: Green, G: 0xff, A: 0xff},
	Blue:        {Name: Blue, B: 0xff, A: 0xff},
	Yellow:      {Name: Yellow, R: 0xff, G: 0xff, A: 0xff},
	Cyan:        {Name: Cyan, G: 0xff, B: 0xff, A: 0xff},
	Magenta:     {Name: Magenta, R: 0xff, B: 0xff, A: 0xff},
}

// Named returns the palette color n.
func Named(n NamedColor) Color {
	return palette[n]
}

// RGBA returns the unnamed color with the given components.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(c.A) * 0x101
	r = uint32(c.R) * 0x101 * a / 0xffff
	g = uint32(c.G) * 0x101 * a / 0xffff
	b = uint32(c.B) * 0x101 * a / 0xffff
	return
}

// WithAlpha returns c with its alpha multiplied by f. The name is kept only
// if the color is unchanged.
func (c Color) WithAlpha(f float64) Color {
	if f >= 1 {
		return c
	}
	if f < 0 {
		f = 0
	}
	a := uint8(float64(c.A)*f + 0.5)
	if a == c.A {
		return c
	}
	return Color{R: c.R, G: c.G, B: c.B, A: a}
}

// Hex formats c as 0xAARRGGBB.
func (c Color) Hex() string {
	return fmt.Sprintf("0x%02X%02X%02X%02X", c.A, c.R, c.G, c.B)
}

func (c Color) String() string {
	if c.Name != NotNamed {
		return c.Name.String()
	}
	return c.Hex()
}

// TileMode says how a gradient continues outside of its stops.
type TileMode uint8

const (
	Clamp TileMode = iota
	Repeated
	Mirror
)

func (t TileMode) String() string {
	switch t {
	case Repeated:
		return "Repeated"
	case Mirror:
		return "Mirror"
	}
	return "Clamp"
}

// ColorStop places a color along a gradient. Offset is in [0,1].
type ColorStop struct {
	Offset float64
	Color  Color
}

// Brush is the paint of a fill or stroke: SolidColor, LinearGradient or
// RadialGradient. Gradient geometry is already in the coordinate space of
// the path that uses it.
type Brush interface {
	isBrush()
}

type (
	SolidColor struct {
		Color Color
	}

	LinearGradient struct {
		Stops      []ColorStop
		Start, End geom.Point
		TileMode   TileMode
	}

	RadialGradient struct {
		Stops    []ColorStop
		Center   geom.Point
		Radius   float64
		TileMode TileMode
	}
)

func (SolidColor) isBrush()     {}
func (LinearGradient) isBrush() {}
func (RadialGradient) isBrush() {}
