package main

import "github.com/raykov/svgvector/vector"

// The dump types mirror the vector model with plain values so the YAML
// output stays readable.
type (
	modelDump struct {
		Name           string    `yaml:"name"`
		DefaultWidth   float64   `yaml:"defaultWidth"`
		DefaultHeight  float64   `yaml:"defaultHeight"`
		ViewportWidth  float64   `yaml:"viewportWidth"`
		ViewportHeight float64   `yaml:"viewportHeight"`
		AutoMirror     bool      `yaml:"autoMirror,omitempty"`
		Root           groupDump `yaml:"root"`
	}

	groupDump struct {
		Name            string         `yaml:"name,omitempty"`
		CTM             [6]float64     `yaml:"ctm,flow"`
		Transform       *transformDump `yaml:"transform,omitempty"`
		ClipPathData    []string       `yaml:"clipPathData,omitempty"`
		ReferencedExtra *extraDump     `yaml:"referencedExtra,omitempty"`
		Children        []childDump    `yaml:"children,omitempty"`
	}

	childDump struct {
		Group *groupDump `yaml:"group,omitempty"`
		Path  *pathDump  `yaml:"path,omitempty"`
	}

	transformDump struct {
		ScaleX       float64 `yaml:"scaleX"`
		ScaleY       float64 `yaml:"scaleY"`
		TranslationX float64 `yaml:"translationX"`
		TranslationY float64 `yaml:"translationY"`
	}

	pathDump struct {
		Name  string            `yaml:"name,omitempty"`
		Data  string            `yaml:"data"`
		Style styleDump         `yaml:",inline"`
		Refs  map[string]uint32 `yaml:"extraReference,omitempty"`
	}

	extraDump struct {
		ID    uint32    `yaml:"id"`
		Style styleDump `yaml:",inline"`
	}

	styleDump struct {
		FillType    string     `yaml:"fillType,omitempty"`
		Fill        *brushDump `yaml:"fill,omitempty"`
		FillAlpha   *float64   `yaml:"fillAlpha,omitempty"`
		Stroke      *brushDump `yaml:"stroke,omitempty"`
		StrokeAlpha *float64   `yaml:"strokeAlpha,omitempty"`
		StrokeWidth *float64   `yaml:"strokeWidth,omitempty"`
		StrokeCap   string     `yaml:"strokeCap,omitempty"`
		StrokeJoin  string     `yaml:"strokeJoin,omitempty"`
		StrokeMiter *float64   `yaml:"strokeMiter,omitempty"`
	}

	brushDump struct {
		Color  string       `yaml:"color,omitempty"`
		Kind   string       `yaml:"gradient,omitempty"`
		Points [][2]float64 `yaml:"points,flow,omitempty"`
		Radius float64      `yaml:"radius,omitempty"`
		Tile   string       `yaml:"tile,omitempty"`
		Stops  []stopDump   `yaml:"stops,omitempty"`
	}

	stopDump struct {
		Offset float64 `yaml:"offset"`
		Color  string  `yaml:"color"`
	}
)

func dumpModel(m *vector.Model) modelDump {
	return modelDump{
		Name:           m.Name,
		DefaultWidth:   m.DefaultWidth,
		DefaultHeight:  m.DefaultHeight,
		ViewportWidth:  m.ViewportWidth,
		ViewportHeight: m.ViewportHeight,
		AutoMirror:     m.AutoMirror,
		Root:           dumpGroup(m.Root),
	}
}

func dumpGroup(g *vector.Group) groupDump {
	d := groupDump{Name: g.Name, CTM: g.CTM.Components()}
	if t := g.Transform; t != nil {
		d.Transform = &transformDump{
			ScaleX:       t.ScaleX,
			ScaleY:       t.ScaleY,
			TranslationX: t.TranslationX,
			TranslationY: t.TranslationY,
		}
	}
	for _, clip := range g.ClipPathData {
		d.ClipPathData = append(d.ClipPathData, vector.PathString(clip))
	}
	if e := g.ReferencedExtra; e != nil {
		d.ReferencedExtra = &extraDump{ID: uint32(e.ID), Style: dumpStyle(e.Style)}
	}
	for _, c := range g.Children {
		switch c := c.(type) {
		case *vector.Group:
			cg := dumpGroup(c)
			d.Children = append(d.Children, childDump{Group: &cg})
		case *vector.Path:
			d.Children = append(d.Children, childDump{Path: dumpPath(c)})
		}
	}
	return d
}

func dumpPath(p *vector.Path) *pathDump {
	d := &pathDump{
		Name:  p.Name,
		Data:  vector.PathString(p.Nodes),
		Style: dumpStyle(p.Style),
	}
	if r := p.ExtraReference; r != nil {
		d.Refs = make(map[string]uint32)
		for _, f := range vector.AllFields {
			if id := r.Get(f); id != 0 {
				d.Refs[f.String()] = uint32(id)
			}
		}
	}
	return d
}

func dumpStyle(s vector.Style) styleDump {
	return styleDump{
		FillType:    s.FillType.String(),
		Fill:        dumpBrush(s.Fill),
		FillAlpha:   s.FillAlpha,
		Stroke:      dumpBrush(s.Stroke),
		StrokeAlpha: s.StrokeAlpha,
		StrokeWidth: s.StrokeWidth,
		StrokeCap:   s.StrokeCap.String(),
		StrokeJoin:  s.StrokeJoin.String(),
		StrokeMiter: s.StrokeMiter,
	}
}

func dumpBrush(b vector.Brush) *brushDump {
	switch b := b.(type) {
	case vector.SolidColor:
		return &brushDump{Color: b.Color.String()}
	case vector.LinearGradient:
		return &brushDump{
			Kind:   "linear",
			Points: [][2]float64{{b.Start.X, b.Start.Y}, {b.End.X, b.End.Y}},
			Tile:   b.TileMode.String(),
			Stops:  dumpStops(b.Stops),
		}
	case vector.RadialGradient:
		return &brushDump{
			Kind:   "radial",
			Points: [][2]float64{{b.Center.X, b.Center.Y}},
			Radius: b.Radius,
			Tile:   b.TileMode.String(),
			Stops:  dumpStops(b.Stops),
		}
	}
	return nil
}

func dumpStops(stops []vector.ColorStop) []stopDump {
	out := make([]stopDump, len(stops))
	for i, s := range stops {
		out[i] = stopDump{Offset: s.Offset, Color: s.Color.String()}
	}
	return out
}
