package svgvector

import (
	"github.com/raykov/svgvector/geom"
	"github.com/raykov/svgvector/vector"
)

func reflect(p, ctrl geom.Point) geom.Point {
	return geom.Point{X: p.X*2 - ctrl.X, Y: p.Y*2 - ctrl.Y}
}

// nodeCursor walks path nodes and sends the absolute geometry they
// describe to an Adder.
type nodeCursor struct {
	geom.Adder
	cur, start geom.Point
	// ctrl is the last control point of the previous curve, used by the
	// smooth variants. lastKey says whether it was a cubic or a quadratic.
	ctrl    geom.Point
	lastKey byte
}

func (c *nodeCursor) line(p geom.Point) {
	c.Line(p)
	c.cur = p
}

// addNodes resolves nodes into absolute segments sent to a.
func addNodes(a geom.Adder, nodes []vector.PathNode) {
	c := &nodeCursor{Adder: a}
	for _, n := range nodes {
		c.add(n)
	}
}

func (c *nodeCursor) add(n vector.PathNode) {
	key := n.Command()
	switch n := n.(type) {
	case vector.MoveTo:
		c.moveTo(n.Points, false)
	case vector.RelativeMoveTo:
		c.moveTo(n.Points, true)
	case vector.LineTo:
		for _, p := range n.Points {
			c.line(p)
		}
	case vector.RelativeLineTo:
		for _, p := range n.Points {
			c.line(c.cur.Add(p))
		}
	case vector.HorizontalTo:
		for _, x := range n.X {
			c.line(geom.Point{X: x, Y: c.cur.Y})
		}
	case vector.RelativeHorizontalTo:
		for _, dx := range n.DX {
			c.line(geom.Point{X: c.cur.X + dx, Y: c.cur.Y})
		}
	case vector.VerticalTo:
		for _, y := range n.Y {
			c.line(geom.Point{X: c.cur.X, Y: y})
		}
	case vector.RelativeVerticalTo:
		for _, dy := range n.DY {
			c.line(geom.Point{X: c.cur.X, Y: c.cur.Y + dy})
		}
	case vector.CurveTo:
		for _, s := range n.Segments {
			c.cube(s.C1, s.C2, s.End)
		}
	case vector.RelativeCurveTo:
		for _, s := range n.Segments {
			o := c.cur
			c.cube(o.Add(s.C1), o.Add(s.C2), o.Add(s.End))
		}
	case vector.ReflectiveCurveTo:
		for _, s := range n.Segments {
			c.cube(c.smoothCubeCtrl(), s.C2, s.End)
		}
	case vector.RelativeReflectiveCurveTo:
		for _, s := range n.Segments {
			o := c.cur
			c.cube(c.smoothCubeCtrl(), o.Add(s.C2), o.Add(s.End))
		}
	case vector.QuadTo:
		for _, s := range n.Segments {
			c.quad(s.C, s.End)
		}
	case vector.RelativeQuadTo:
		for _, s := range n.Segments {
			o := c.cur
			c.quad(o.Add(s.C), o.Add(s.End))
		}
	case vector.ReflectiveQuadTo:
		for _, p := range n.Points {
			c.quad(c.smoothQuadCtrl(), p)
		}
	case vector.RelativeReflectiveQuadTo:
		for _, p := range n.Points {
			c.quad(c.smoothQuadCtrl(), c.cur.Add(p))
		}
	case vector.ArcTo:
		for _, s := range n.Arcs {
			c.arc(s, s.End)
		}
	case vector.RelativeArcTo:
		for _, s := range n.Arcs {
			c.arc(s, c.cur.Add(s.End))
		}
	case vector.Close, vector.RelativeClose:
		c.Stop(true)
		c.cur = c.start
	}
	c.lastKey = upper(key)
}

// moveTo starts a subpath; further points are implicit line segments.
func (c *nodeCursor) moveTo(pts []geom.Point, relative bool) {
	for i, p := range pts {
		if relative {
			p = c.cur.Add(p)
		}
		if i == 0 {
			c.Start(p)
			c.cur, c.start = p, p
			continue
		}
		c.line(p)
	}
}

func (c *nodeCursor) cube(c1, c2, end geom.Point) {
	c.CubeBezier(c1, c2, end)
	c.ctrl, c.cur = c2, end
	c.lastKey = 'C'
}

func (c *nodeCursor) quad(ctrl, end geom.Point) {
	c.QuadBezier(ctrl, end)
	c.ctrl, c.cur = ctrl, end
	c.lastKey = 'Q'
}

func (c *nodeCursor) smoothCubeCtrl() geom.Point {
	if c.lastKey == 'C' || c.lastKey == 'S' {
		return reflect(c.cur, c.ctrl)
	}
	return c.cur
}

func (c *nodeCursor) smoothQuadCtrl() geom.Point {
	if c.lastKey == 'Q' || c.lastKey == 'T' {
		return reflect(c.cur, c.ctrl)
	}
	return c.cur
}

func (c *nodeCursor) arc(s vector.ArcSegment, end geom.Point) {
	geom.AddArc(c.Adder, c.cur, end, s.RX, s.RY, s.Rotation, s.LargeArc, s.Sweep)
	c.cur = end
}

// nodesToOutline resolves nodes into an absolute outline.
func nodesToOutline(nodes []vector.PathNode) geom.Outline {
	var o geom.Outline
	addNodes(&o, nodes)
	return o
}

// outlineToNodes writes a resolved outline as absolute moves, lines, cubic
// curves and closes. Quadratic curves are raised to cubics.
func outlineToNodes(o geom.Outline) []vector.PathNode {
	nodes := make([]vector.PathNode, 0, len(o))
	var cur, start geom.Point
	for _, s := range o {
		switch s.Op {
		case geom.OpMoveTo:
			start = s.Pts[0]
			nodes = append(nodes, vector.MoveTo{Points: []geom.Point{s.Pts[0]}})
		case geom.OpLineTo:
			nodes = append(nodes, vector.LineTo{Points: []geom.Point{s.Pts[0]}})
		case geom.OpQuadTo:
			q, end := s.Pts[0], s.Pts[1]
			nodes = append(nodes, vector.CurveTo{Segments: []vector.CubicSegment{{
				C1:  cur.Lerp(q, 2.0/3),
				C2:  end.Lerp(q, 2.0/3),
				End: end,
			}}})
		case geom.OpCubeTo:
			nodes = append(nodes, vector.CurveTo{Segments: []vector.CubicSegment{{
				C1: s.Pts[0], C2: s.Pts[1], End: s.Pts[2],
			}}})
		case geom.OpClose:
			nodes = append(nodes, vector.Close{})
			cur = start
			continue
		}
		cur = s.End()
	}
	return nodes
}
