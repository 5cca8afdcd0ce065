package svgvector

import (
	"github.com/raykov/svgvector/geom"
	"github.com/raykov/svgvector/vector"
)

// frame is the open state of one group while its children are visited.
// Frames are owned by the traversal and turned into an immutable
// vector.Group when they close.
type frame struct {
	el    *element
	group *vector.Group
	ctm   geom.Matrix2D
	style declaredStyle
	alpha alphaChain

	// extra is the declared style shared with descendants, nil when the
	// element declares nothing shareable.
	extra *vector.Extra
	// referenced collects the fields of extra some path points at.
	referenced vector.Fields
	// hoisted is the referenced Extra of an elided child group, held here
	// because this frame has no Extra of its own.
	hoisted *vector.Extra
}

// referencedExtra returns the part of the frame's Extra that descendants
// use, or the Extra hoisted from an elided child.
func (f *frame) referencedExtra() *vector.Extra {
	if f.extra != nil && f.referenced != 0 {
		return &vector.Extra{ID: f.extra.ID, Style: f.extra.Style.Only(f.referenced)}
	}
	return f.hoisted
}

func (f *frame) add(n vector.Node) {
	f.group.Children = append(f.group.Children, n)
}

func (f *frame) canHoist() bool {
	return f.extra == nil && f.hoisted == nil
}

func (f *frame) hoist(e *vector.Extra) {
	f.hoisted = e
}

// groupSink receives the children of a group being rebuilt.
type groupSink interface {
	add(n vector.Node)
	canHoist() bool
	hoist(e *vector.Extra)
}

// splice attaches a closed group to its parent. The group is dropped when
// empty and kept when it has a transform or a clip. Otherwise its children
// move into the parent: directly when it carries no referenced Extra, or
// with the Extra hoisted onto a parent that has none. A group that cannot
// be elided is kept. Child groups that move are attached by the same rule.
// splice reports whether g was kept as a node.
func splice(p groupSink, g *vector.Group) bool {
	switch {
	case len(g.Children) == 0:
		return false
	case g.Transform != nil || len(g.ClipPathData) > 0:
	case g.ReferencedExtra == nil:
		spliceChildren(p, g)
		return false
	case p.canHoist():
		p.hoist(g.ReferencedExtra)
		spliceChildren(p, g)
		return false
	}
	p.add(g)
	return true
}

func spliceChildren(p groupSink, g *vector.Group) {
	for _, c := range g.Children {
		if cg, ok := c.(*vector.Group); ok {
			splice(p, cg)
			continue
		}
		p.add(c)
	}
}

// rebuild collects the children of a group copy.
type rebuild struct {
	g *vector.Group
}

func (r *rebuild) add(n vector.Node) {
	r.g.Children = append(r.g.Children, n)
}

func (r *rebuild) canHoist() bool {
	return r.g.Extra == nil && r.g.ReferencedExtra == nil
}

func (r *rebuild) hoist(e *vector.Extra) {
	r.g.ReferencedExtra = e
}

// Simplify applies group elision to an already built tree and returns the
// result. g itself is always kept. The input is not modified. A tree
// produced by Parse is already simplified, and simplifying it again gives
// an equal tree.
func Simplify(g *vector.Group) *vector.Group {
	out := *g
	out.Children = make([]vector.Node, 0, len(g.Children))
	r := &rebuild{g: &out}
	for _, c := range g.Children {
		if cg, ok := c.(*vector.Group); ok {
			splice(r, Simplify(cg))
			continue
		}
		r.add(c)
	}
	return &out
}
