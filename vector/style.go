package vector

import "strings"

type (
	FillType uint8
	Cap      uint8
	Join     uint8
)

// The zero value of each enum means the property is not set.
const (
	FillTypeUnset FillType = iota
	NonZero
	EvenOdd
)

const (
	CapUnset Cap = iota
	Butt
	RoundCap
	Square
)

const (
	JoinUnset Join = iota
	Miter
	RoundJoin
	Bevel
)

func (f FillType) String() string {
	switch f {
	case NonZero:
		return "NonZero"
	case EvenOdd:
		return "EvenOdd"
	}
	return ""
}

func (c Cap) String() string {
	switch c {
	case Butt:
		return "Butt"
	case RoundCap:
		return "Round"
	case Square:
		return "Square"
	}
	return ""
}

func (j Join) String() string {
	switch j {
	case Miter:
		return "Miter"
	case RoundJoin:
		return "Round"
	case Bevel:
		return "Bevel"
	}
	return ""
}

// Field names one of the tracked style properties.
type Field uint8

const (
	FieldFillType Field = iota
	FieldFill
	FieldFillAlpha
	FieldStroke
	FieldStrokeAlpha
	FieldStrokeWidth
	FieldStrokeCap
	FieldStrokeJoin
	FieldStrokeMiter
	fieldCount
)

// AllFields lists every tracked property in declaration order.
var AllFields = [fieldCount]Field{FieldFillType, FieldFill, FieldFillAlpha,
	FieldStroke, FieldStrokeAlpha, FieldStrokeWidth, FieldStrokeCap,
	FieldStrokeJoin, FieldStrokeMiter}

var fieldNames = [fieldCount]string{"fillType", "fill", "fillAlpha", "stroke",
	"strokeAlpha", "strokeWidth", "strokeCap", "strokeJoin", "strokeMiter"}

func (f Field) String() string {
	if f < fieldCount {
		return fieldNames[f]
	}
	return "unknown"
}

// Fields is a set of Field values.
type Fields uint16

func (fs Fields) With(f Field) Fields { return fs | 1<<f }

func (fs Fields) Has(f Field) bool { return fs&(1<<f) != 0 }

func (fs Fields) String() string {
	var names []string
	for _, f := range AllFields {
		if fs.Has(f) {
			names = append(names, f.String())
		}
	}
	return strings.Join(names, "|")
}

// Style holds the paint properties a path or an Extra declares. Unset
// pointers, nil brushes and zero enums are absent.
type Style struct {
	FillType    FillType
	Fill        Brush
	FillAlpha   *float64
	Stroke      Brush
	StrokeAlpha *float64
	StrokeWidth *float64
	StrokeCap   Cap
	StrokeJoin  Join
	StrokeMiter *float64
}

// Has reports whether f is set on s.
func (s *Style) Has(f Field) bool {
	switch f {
	case FieldFillType:
		return s.FillType != FillTypeUnset
	case FieldFill:
		return s.Fill != nil
	case FieldFillAlpha:
		return s.FillAlpha != nil
	case FieldStroke:
		return s.Stroke != nil
	case FieldStrokeAlpha:
		return s.StrokeAlpha != nil
	case FieldStrokeWidth:
		return s.StrokeWidth != nil
	case FieldStrokeCap:
		return s.StrokeCap != CapUnset
	case FieldStrokeJoin:
		return s.StrokeJoin != JoinUnset
	case FieldStrokeMiter:
		return s.StrokeMiter != nil
	}
	return false
}

// Mask returns the set of fields present on s.
func (s *Style) Mask() (fs Fields) {
	for _, f := range AllFields {
		if s.Has(f) {
			fs = fs.With(f)
		}
	}
	return
}

// IsEmpty reports whether no field is set.
func (s *Style) IsEmpty() bool {
	return s.Mask() == 0
}

// Only returns a copy of s that keeps the fields in fs.
func (s Style) Only(fs Fields) Style {
	var o Style
	if fs.Has(FieldFillType) {
		o.FillType = s.FillType
	}
	if fs.Has(FieldFill) {
		o.Fill = s.Fill
	}
	if fs.Has(FieldFillAlpha) {
		o.FillAlpha = s.FillAlpha
	}
	if fs.Has(FieldStroke) {
		o.Stroke = s.Stroke
	}
	if fs.Has(FieldStrokeAlpha) {
		o.StrokeAlpha = s.StrokeAlpha
	}
	if fs.Has(FieldStrokeWidth) {
		o.StrokeWidth = s.StrokeWidth
	}
	if fs.Has(FieldStrokeCap) {
		o.StrokeCap = s.StrokeCap
	}
	if fs.Has(FieldStrokeJoin) {
		o.StrokeJoin = s.StrokeJoin
	}
	if fs.Has(FieldStrokeMiter) {
		o.StrokeMiter = s.StrokeMiter
	}
	return o
}

// ExtraID identifies an Extra. Zero means no Extra.
type ExtraID uint32

// Extra is the style an element declared itself, shared with descendants
// through ExtraReference.
type Extra struct {
	ID ExtraID
	Style
}

// ExtraReference points each field a path left unset at the nearest
// ancestor Extra that declares it.
type ExtraReference struct {
	FillTypeID    ExtraID
	FillID        ExtraID
	FillAlphaID   ExtraID
	StrokeID      ExtraID
	StrokeAlphaID ExtraID
	StrokeWidthID ExtraID
	StrokeCapID   ExtraID
	StrokeJoinID  ExtraID
	StrokeMiterID ExtraID
}

func (r *ExtraReference) slot(f Field) *ExtraID {
	switch f {
	case FieldFillType:
		return &r.FillTypeID
	case FieldFill:
		return &r.FillID
	case FieldFillAlpha:
		return &r.FillAlphaID
	case FieldStroke:
		return &r.StrokeID
	case FieldStrokeAlpha:
		return &r.StrokeAlphaID
	case FieldStrokeWidth:
		return &r.StrokeWidthID
	case FieldStrokeCap:
		return &r.StrokeCapID
	case FieldStrokeJoin:
		return &r.StrokeJoinID
	case FieldStrokeMiter:
		return &r.StrokeMiterID
	}
	return nil
}

// Set points f at id.
func (r *ExtraReference) Set(f Field, id ExtraID) {
	if p := r.slot(f); p != nil {
		*p = id
	}
}

// Get returns the id f points at, or zero.
func (r *ExtraReference) Get(f Field) ExtraID {
	if p := r.slot(f); p != nil {
		return *p
	}
	return 0
}

// IsEmpty reports whether no field points anywhere.
func (r *ExtraReference) IsEmpty() bool {
	return *r == ExtraReference{}
}
