// Package style implements the property storage and the cascade resolution
// used to style views: declarations parsed from inline style text are stored
// per element in a [Style] property set, and a [Cascade] resolves a property
// name through an ordered list of property sets and an optional parent
// cascade into a concrete, unit normalized value.
package style

import (
	"fmt"

	"github.com/ravstrix/ClanLib/utils"
)

type Fl = utils.Fl

// ValueType is the variant tag of a style value.
type ValueType uint8

const (
	TypeUndefined  ValueType = iota // value undefined
	TypeKeyword                     // value is a keyword
	TypeLength                      // value is a length
	TypePercentage                  // value is a percentage number
	TypeNumber                      // value is a number
	TypeString                      // value is a text string
	TypeURL                         // value is an url
	TypeColor                       // value is a color
	TypeAngle                       // value is an angle
	TypeTime                        // value is a time
	TypeFrequency                   // value is a frequency
	TypeResolution                  // value is a resolution
)

func (t ValueType) String() string {
	switch t {
	case TypeUndefined:
		return "undefined"
	case TypeKeyword:
		return "keyword"
	case TypeLength:
		return "length"
	case TypePercentage:
		return "percentage"
	case TypeNumber:
		return "number"
	case TypeString:
		return "string"
	case TypeURL:
		return "url"
	case TypeColor:
		return "color"
	case TypeAngle:
		return "angle"
	case TypeTime:
		return "time"
	case TypeFrequency:
		return "frequency"
	case TypeResolution:
		return "resolution"
	default:
		return "<invalid type>"
	}
}

// Dimension is the unit of a style value.
//
// A value's dimension must belong to the unit family implied by its
// [ValueType]: an angle value only carries angle units and so on. Mixing
// families is a programming error on the caller side, not a checked
// condition.
type Dimension uint8

const (
	Px   Dimension = iota // device independent pixel (96 dpi)
	Em                    // relative to the font-size length property
	Pt                    // point, 1/72 inch
	Mm                    // millimeter
	Cm                    // centimeter
	In                    // inch, 1in is equal to 2.54cm
	Pc                    // picas, 1pc is equal to 12pt
	Ex                    // x-height, 1ex is equal to 0.5em
	Ch                    // advance measure of the "0" glyph of the font
	Rem                   // computed value of font-size on the root element
	Vw                    // 1/100 viewport width
	Vh                    // 1/100 viewport height
	Vmin                  // the smaller of vw or vh
	Vmax                  // the larger of vw or vh

	Deg  // degrees (360 in a full circle)
	Grad // gradians (400 in a full circle)
	Rad  // radians (2*pi in a full circle)
	Turn // turns (1 in a full circle)

	S  // seconds
	Ms // milliseconds

	Hz  // hertz
	Khz // kilohertz

	Dpi  // dots per inch
	Dpcm // dots per cm
	Dppx // dots per px unit
)

var dimensionNames = [...]string{
	Px: "px", Em: "em", Pt: "pt", Mm: "mm", Cm: "cm", In: "in", Pc: "pc",
	Ex: "ex", Ch: "ch", Rem: "rem", Vw: "vw", Vh: "vh", Vmin: "vmin", Vmax: "vmax",
	Deg: "deg", Grad: "grad", Rad: "rad", Turn: "turn",
	S: "s", Ms: "ms",
	Hz: "hz", Khz: "khz",
	Dpi: "dpi", Dpcm: "dpcm", Dppx: "dppx",
}

func (d Dimension) String() string {
	if int(d) < len(dimensionNames) {
		return dimensionNames[d]
	}
	return "<invalid unit>"
}

var dimensionsByName = map[string]Dimension{}

func init() {
	for dim, name := range dimensionNames {
		dimensionsByName[name] = Dimension(dim)
	}
}

// valueTypeForUnit returns the value type implied by a unit name
// ("px" -> length, "deg" -> angle, ...).
func valueTypeForUnit(unit string) (Dimension, ValueType, bool) {
	dim, ok := dimensionsByName[utils.AsciiLower(unit)]
	if !ok {
		return 0, TypeUndefined, false
	}
	switch {
	case dim <= Vmax:
		return dim, TypeLength, true
	case dim <= Turn:
		return dim, TypeAngle, true
	case dim <= Ms:
		return dim, TypeTime, true
	case dim <= Khz:
		return dim, TypeFrequency, true
	default:
		return dim, TypeResolution, true
	}
}

// Value is a style value as returned by property sets and cascades.
//
// It is read-only: a Value is built once by one of the From* constructors
// and then only inspected. The typed accessors never fail: asking for a
// field not carried by the active variant returns a neutral default (empty
// string, 0 or a fully transparent color). Cascade resolution runs on a hot
// path and relies on this total, non panicking contract.
type Value struct {
	text      string
	color     Colorf
	number    Fl
	dimension Dimension
	typ       ValueType
}

// Type returns the variant tag.
func (v Value) Type() ValueType { return v.typ }

// Text returns the text payload for keyword, url and string values,
// and "" for every other type.
func (v Value) Text() string {
	switch v.typ {
	case TypeKeyword, TypeURL, TypeString:
		return v.text
	default:
		return ""
	}
}

// Number returns the numeric payload for numeric values, and 0 for every
// other type.
func (v Value) Number() Fl {
	switch v.typ {
	case TypeLength, TypePercentage, TypeNumber, TypeAngle, TypeTime, TypeFrequency, TypeResolution:
		return v.number
	default:
		return 0
	}
}

// Dimension returns the unit of dimensioned values, and Px otherwise.
func (v Value) Dimension() Dimension {
	switch v.typ {
	case TypeLength, TypeAngle, TypeTime, TypeFrequency, TypeResolution:
		return v.dimension
	default:
		return Px
	}
}

// Color returns the color payload, or the zero (fully transparent) color
// for non color values.
func (v Value) Color() Colorf {
	if v.typ == TypeColor {
		return v.color
	}
	return Colorf{}
}

func (v Value) IsUndefined() bool { return v.typ == TypeUndefined }

// IsKeyword returns true if the value is a keyword. When names are given,
// the keyword text must additionally equal one of them.
func (v Value) IsKeyword(names ...string) bool {
	if v.typ != TypeKeyword {
		return false
	}
	if len(names) == 0 {
		return true
	}
	return utils.IsIn(names, v.text)
}

func (v Value) IsLength() bool     { return v.typ == TypeLength }
func (v Value) IsPercentage() bool { return v.typ == TypePercentage }
func (v Value) IsNumber() bool     { return v.typ == TypeNumber }
func (v Value) IsString() bool     { return v.typ == TypeString }
func (v Value) IsURL() bool        { return v.typ == TypeURL }
func (v Value) IsColor() bool      { return v.typ == TypeColor }
func (v Value) IsAngle() bool      { return v.typ == TypeAngle }
func (v Value) IsTime() bool       { return v.typ == TypeTime }
func (v Value) IsFrequency() bool  { return v.typ == TypeFrequency }
func (v Value) IsResolution() bool { return v.typ == TypeResolution }

func (v Value) String() string {
	switch v.typ {
	case TypeUndefined:
		return "<undefined>"
	case TypeKeyword, TypeString:
		return v.text
	case TypeURL:
		return fmt.Sprintf("url(%s)", v.text)
	case TypePercentage:
		return fmt.Sprintf("%g%%", v.number)
	case TypeNumber:
		return fmt.Sprintf("%g", v.number)
	case TypeColor:
		return ToRGBA(v.color)
	default:
		return fmt.Sprintf("%g%s", v.number, v.dimension)
	}
}

// FromKeyword creates a style value from a keyword.
func FromKeyword(keyword string) Value {
	return Value{typ: TypeKeyword, text: keyword}
}

// FromString creates a style value from a text string.
func FromString(text string) Value {
	return Value{typ: TypeString, text: text}
}

// FromURL creates a style value from an url.
func FromURL(url string) Value {
	return Value{typ: TypeURL, text: url}
}

// FromLength creates a style value from a length.
func FromLength(length Fl, dimension Dimension) Value {
	return Value{typ: TypeLength, number: length, dimension: dimension}
}

// FromAngle creates a style value from an angle.
func FromAngle(angle Fl, dimension Dimension) Value {
	return Value{typ: TypeAngle, number: angle, dimension: dimension}
}

// FromTime creates a style value from a time.
func FromTime(t Fl, dimension Dimension) Value {
	return Value{typ: TypeTime, number: t, dimension: dimension}
}

// FromFrequency creates a style value from a frequency.
func FromFrequency(freq Fl, dimension Dimension) Value {
	return Value{typ: TypeFrequency, number: freq, dimension: dimension}
}

// FromResolution creates a style value from a resolution.
func FromResolution(resolution Fl, dimension Dimension) Value {
	return Value{typ: TypeResolution, number: resolution, dimension: dimension}
}

// FromPercentage creates a style value from a percentage.
func FromPercentage(percentage Fl) Value {
	return Value{typ: TypePercentage, number: percentage}
}

// FromNumber creates a style value from a number.
func FromNumber(number Fl) Value {
	return Value{typ: TypeNumber, number: number}
}

// FromColor creates a style value from a color.
func FromColor(color Colorf) Value {
	return Value{typ: TypeColor, color: color}
}

// SetValue is the mutable counterpart of [Value], used when building
// declarations: the zero value is the undefined value, the identity for
// "not yet declared". The same non panicking accessor contract applies.
type SetValue struct {
	Type      ValueType
	Text      string
	Number    Fl
	Dimension Dimension
	Color     Colorf
}

func (v SetValue) IsUndefined() bool { return v.Type == TypeUndefined }

// IsKeyword returns true if the value is a keyword. When names are given,
// the keyword text must additionally equal one of them.
func (v SetValue) IsKeyword(names ...string) bool {
	if v.Type != TypeKeyword {
		return false
	}
	if len(names) == 0 {
		return true
	}
	return utils.IsIn(names, v.Text)
}

func (v SetValue) IsLength() bool     { return v.Type == TypeLength }
func (v SetValue) IsPercentage() bool { return v.Type == TypePercentage }
func (v SetValue) IsNumber() bool     { return v.Type == TypeNumber }
func (v SetValue) IsColor() bool      { return v.Type == TypeColor }
func (v SetValue) IsAngle() bool      { return v.Type == TypeAngle }

// Value freezes the set value into the read-only view.
func (v SetValue) Value() Value {
	return Value{
		typ:       v.Type,
		text:      v.Text,
		number:    v.Number,
		dimension: v.Dimension,
		color:     v.Color,
	}
}

// ToSetValue returns the mutable view of [v].
func (v Value) ToSetValue() SetValue {
	return SetValue{
		Type:      v.typ,
		Text:      v.text,
		Number:    v.number,
		Dimension: v.dimension,
		Color:     v.color,
	}
}
