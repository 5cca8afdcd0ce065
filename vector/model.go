// Package vector holds the normalized vector graphics tree produced from an
// SVG document. Every value is fully resolved: geometry is in the model's
// viewport coordinates, paint is explicit, and style inheritance is spelled
// out with Extra records and ExtraReference links instead of a cascade.
//
// A Model is built once and must be treated as read only afterwards.
package vector

import "github.com/raykov/svgvector/geom"

// Node is a *Group or a *Path.
type Node interface {
	isNode()
}

// Path is a drawable outline with its own declared style.
type Path struct {
	Name  string
	Nodes []PathNode
	Style

	// Trim values are reserved and always nil.
	TrimPathStart  *float64
	TrimPathEnd    *float64
	TrimPathOffset *float64

	ExtraReference *ExtraReference
}

// GroupTransform is the readable form of a scale and translate matrix.
// Rotation and pivots are carried for completeness and are zero when the
// group comes from a diagonal matrix.
type GroupTransform struct {
	Rotation     float64
	PivotX       float64
	PivotY       float64
	ScaleX       float64
	ScaleY       float64
	TranslationX float64
	TranslationY float64
}

// Group is an ordered container. CTM is the accumulated transform from the
// document root; child geometry is already expressed in root space.
type Group struct {
	Name         string
	Transform    *GroupTransform
	CTM          geom.Matrix2D
	ClipPathData [][]PathNode

	// Extra is the style this element declared. ReferencedExtra keeps only
	// the fields of Extra, or of an Extra hoisted from an elided child,
	// that some descendant path references.
	Extra           *Extra
	ReferencedExtra *Extra

	Children []Node
}

func (*Group) isNode() {}
func (*Path) isNode()  {}

// Model is the root of a converted document.
type Model struct {
	Name           string
	DefaultWidth   float64
	DefaultHeight  float64
	ViewportWidth  float64
	ViewportHeight float64
	AutoMirror     bool
	Root           *Group
}

// Walk calls fn for n and then, depth first, for every descendant. If fn
// returns false the children of that node are not visited.
func Walk(n Node, fn func(n Node) bool) {
	if !fn(n) {
		return
	}
	if g, ok := n.(*Group); ok {
		for _, c := range g.Children {
			Walk(c, fn)
		}
	}
}

// Paths returns every path under g in drawing order.
func Paths(g *Group) (ps []*Path) {
	Walk(g, func(n Node) bool {
		if p, ok := n.(*Path); ok {
			ps = append(ps, p)
		}
		return true
	})
	return
}

// FindExtra returns the Extra with id in the referenced extras of g and its
// descendants.
func FindExtra(g *Group, id ExtraID) *Extra {
	var found *Extra
	Walk(g, func(n Node) bool {
		if found != nil {
			return false
		}
		if gr, ok := n.(*Group); ok && gr.ReferencedExtra != nil && gr.ReferencedExtra.ID == id {
			found = gr.ReferencedExtra
		}
		return found == nil
	})
	return found
}
