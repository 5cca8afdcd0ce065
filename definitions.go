package svgvector

import "strings"

// elementKind is how the traversal treats an element.
type elementKind uint8

const (
	kindUnknown elementKind = iota
	// kindContainer opens a group around its children.
	kindContainer
	// kindUse instantiates the referenced element.
	kindUse
	// kindShape emits one path.
	kindShape
	// kindSkip contributes no output of its own. Definitions inside it are
	// still reachable by id.
	kindSkip
	// kindUnsupported would draw something that has no path equivalent.
	kindUnsupported
)

var elementKinds = map[string]elementKind{
	"svg":    kindContainer,
	"g":      kindContainer,
	"a":      kindContainer,
	"switch": kindContainer,

	"use": kindUse,

	"path":     kindShape,
	"rect":     kindShape,
	"circle":   kindShape,
	"ellipse":  kindShape,
	"line":     kindShape,
	"polyline": kindShape,
	"polygon":  kindShape,

	"title":            kindSkip,
	"desc":             kindSkip,
	"metadata":         kindSkip,
	"script":           kindSkip,
	"style":            kindSkip,
	"defs":             kindSkip,
	"symbol":           kindSkip,
	"clipPath":         kindSkip,
	"linearGradient":   kindSkip,
	"radialGradient":   kindSkip,
	"stop":             kindSkip,
	"pattern":          kindSkip,
	"marker":           kindSkip,
	"mask":             kindSkip,
	"filter":           kindSkip,
	"animate":          kindSkip,
	"animateMotion":    kindSkip,
	"animateTransform": kindSkip,
	"set":              kindSkip,
	"mpath":            kindSkip,
	"view":             kindSkip,
	"cursor":           kindSkip,

	"text":          kindUnsupported,
	"tspan":         kindUnsupported,
	"textPath":      kindUnsupported,
	"image":         kindUnsupported,
	"foreignObject": kindUnsupported,
	"video":         kindUnsupported,
	"audio":         kindUnsupported,
	"canvas":        kindUnsupported,
	"iframe":        kindUnsupported,
}

func kindOf(el *element) elementKind {
	if el.foreign() {
		return kindSkip
	}
	if k, ok := elementKinds[el.Name.Local]; ok {
		return k
	}
	// filter primitives: feBlend, feGaussianBlur and the rest
	if strings.HasPrefix(el.Name.Local, "fe") {
		return kindSkip
	}
	return kindUnknown
}
