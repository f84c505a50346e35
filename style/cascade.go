package style

import (
	"math"

	"github.com/ravstrix/ClanLib/utils"
)

// Environment carries the viewport metrics required to resolve the
// vw/vh/vmin/vmax units. The zero value is usable and stands for a
// 1280 by 720 viewport at device pixel ratio 1.
type Environment struct {
	ViewportWidth  Fl
	ViewportHeight Fl
	PixelRatio     Fl
}

func (e *Environment) viewport() (w, h Fl) {
	if e == nil || e.ViewportWidth == 0 || e.ViewportHeight == 0 {
		return 1280, 720
	}
	return e.ViewportWidth, e.ViewportHeight
}

// Cascade resolves the final value of properties for one element, from an
// ordered list of property sets and the resolved values of the parent
// element.
//
// A Cascade borrows the styles and the environment it points to; it stores
// no resolved state of its own.
type Cascade struct {
	// Cascade lists the property sets to resolve against, highest
	// priority first.
	Cascade []*Style

	// Parent is the cascade of the parent element, or nil for the root.
	Parent *Cascade

	// Env provides viewport metrics. May be nil.
	Env *Environment
}

// CascadeValue returns the declared value of [name] from the first property
// set declaring it, or the undefined value.
func (c *Cascade) CascadeValue(name string) Value {
	name = utils.AsciiLower(name)
	for _, s := range c.Cascade {
		if v := s.DeclaredValue(name); !v.IsUndefined() {
			return v
		}
	}
	return Value{}
}

// cascadeImage returns the gradient/image composite declared under [name]
// by the same property set that wins the cascade for it.
func (c *Cascade) cascadeImage(name string) (ImageValue, bool) {
	name = utils.AsciiLower(name)
	for _, s := range c.Cascade {
		if v := s.DeclaredValue(name); !v.IsUndefined() {
			img, ok := s.declaredImage(name)
			return img, ok
		}
	}
	return ImageValue{}, false
}

// SpecifiedValue resolves the cascaded value of [name] against inheritance:
// the "inherit" and "initial" keywords are replaced, and an undeclared
// inherited property takes the computed value of the parent. The result is
// never undefined for a known property.
func (c *Cascade) SpecifiedValue(name string) Value {
	name = utils.AsciiLower(name)
	def := lookupProperty(name)
	v := c.CascadeValue(name)
	switch {
	case v.IsKeyword("initial"):
		return def.Initial
	case v.IsKeyword("inherit"), v.IsUndefined() && def.Inherited:
		if c.Parent == nil {
			return def.Initial
		}
		return c.Parent.ComputedValue(name)
	case v.IsUndefined():
		return def.Initial
	}
	return v
}

// ComputedValue resolves the final value of [name]: the specified value
// with dimensions folded to their canonical unit (px, rad, s, Hz, dppx)
// and the property specific keywords replaced where a numeric equivalent
// exists (font-size, font-weight, line-height, border widths).
func (c *Cascade) ComputedValue(name string) Value {
	name = utils.AsciiLower(name)
	if fn, in := computerFunctions[baseName(name)]; in {
		return fn(c, name)
	}
	return c.normalize(c.SpecifiedValue(name))
}

func (c *Cascade) normalize(v Value) Value {
	switch v.Type() {
	case TypeLength:
		return c.ComputeLength(v)
	case TypeAngle:
		return ComputeAngle(v)
	case TypeTime:
		return ComputeTime(v)
	case TypeFrequency:
		return ComputeFrequency(v)
	case TypeResolution:
		return ComputeResolution(v)
	}
	return v
}

// LengthsToPixels is the scale of each absolute length unit, in px.
var LengthsToPixels = map[Dimension]Fl{
	Px: 1,
	Pt: 96. / 72.,
	Pc: 16,
	In: 96,
	Cm: 96. / 2.54,
	Mm: 96. / 25.4,
}

// ComputeLength folds a length to px. Font relative units resolve against
// the computed font-size of this element (em, ex, ch) or of the root
// element (rem); viewport units resolve against the environment.
func (c *Cascade) ComputeLength(v Value) Value {
	if !v.IsLength() {
		return v
	}
	return FromLength(v.Number()*c.lengthScale(v.Dimension(), c.fontSize), Px)
}

// lengthScale returns the px size of one unit of [dim]. The font size is
// passed as a function so font-size itself can resolve em against the
// parent instead of recursing.
func (c *Cascade) lengthScale(dim Dimension, fontSize func() Fl) Fl {
	if scale, in := LengthsToPixels[dim]; in {
		return scale
	}
	w, h := c.Env.viewport()
	switch dim {
	case Em:
		return fontSize()
	case Ex, Ch:
		// approximated as half an em, as in the absence of font metrics
		return fontSize() / 2
	case Rem:
		return c.rootFontSize()
	case Vw:
		return w / 100
	case Vh:
		return h / 100
	case Vmin:
		return utils.MinF(w, h) / 100
	case Vmax:
		return utils.MaxF(w, h) / 100
	}
	return 1
}

// ComputeAngle folds an angle to radians.
func ComputeAngle(v Value) Value {
	if !v.IsAngle() {
		return v
	}
	n := v.Number()
	switch v.Dimension() {
	case Deg:
		n *= math.Pi / 180
	case Grad:
		n *= math.Pi / 200
	case Turn:
		n *= 2 * math.Pi
	}
	return FromAngle(n, Rad)
}

// ComputeTime folds a duration to seconds.
func ComputeTime(v Value) Value {
	if !v.IsTime() {
		return v
	}
	n := v.Number()
	if v.Dimension() == Ms {
		n /= 1000
	}
	return FromTime(n, S)
}

// ComputeFrequency folds a frequency to hertz.
func ComputeFrequency(v Value) Value {
	if !v.IsFrequency() {
		return v
	}
	n := v.Number()
	if v.Dimension() == Khz {
		n *= 1000
	}
	return FromFrequency(n, Hz)
}

// ComputeResolution folds a resolution to dots per px unit.
func ComputeResolution(v Value) Value {
	if !v.IsResolution() {
		return v
	}
	n := v.Number()
	switch v.Dimension() {
	case Dpi:
		n /= 96
	case Dpcm:
		n *= 2.54 / 96
	}
	return FromResolution(n, Dppx)
}

// ArraySize returns the number of declared elements of the array property
// [name], probing indexed names until the cascade yields nothing. An
// inherited array property declared nowhere in this cascade takes the size
// of the parent's.
func (c *Cascade) ArraySize(name string) int {
	name = utils.AsciiLower(name)
	for i := 0; ; i++ {
		if c.CascadeValue(indexedName(name, i)).IsUndefined() {
			if i == 0 && c.Parent != nil && lookupProperty(name).Inherited {
				return c.Parent.ArraySize(name)
			}
			return i
		}
	}
}

// fontSize returns the computed font-size of this element, in px.
func (c *Cascade) fontSize() Fl {
	return c.ComputedValue("font-size").Number()
}

func (c *Cascade) rootFontSize() Fl {
	root := c
	for root.Parent != nil {
		root = root.Parent
	}
	if root == c {
		// em and rem coincide on the root element
		return defaultFontSize
	}
	return root.fontSize()
}

// computerFunctions maps the properties whose computed value needs more
// than unit normalization. Filled in init to avoid an initialization cycle
// (the computers recurse into ComputedValue).
var computerFunctions = map[string]func(*Cascade, string) Value{}

func init() {
	computerFunctions["font-size"] = computeFontSize
	computerFunctions["font-weight"] = computeFontWeight
	computerFunctions["line-height"] = computeLineHeight
	for _, side := range [4]string{"top", "right", "bottom", "left"} {
		computerFunctions["border-"+side+"-width"] = computeBorderWidth
	}
}

func computeFontSize(c *Cascade, name string) Value {
	parent := func() Fl {
		if c.Parent == nil {
			return defaultFontSize
		}
		return c.Parent.fontSize()
	}
	v := c.SpecifiedValue(name)
	switch v.Type() {
	case TypeKeyword:
		if px, in := fontSizeKeywords[v.Text()]; in {
			return FromLength(px, Px)
		}
		switch v.Text() {
		case "larger":
			p := parent()
			for _, k := range fontSizeKeywordsOrder {
				if px := fontSizeKeywords[k]; px > p {
					return FromLength(px, Px)
				}
			}
			return FromLength(p*1.2, Px)
		case "smaller":
			p := parent()
			for i := len(fontSizeKeywordsOrder) - 1; i >= 0; i-- {
				if px := fontSizeKeywords[fontSizeKeywordsOrder[i]]; px < p {
					return FromLength(px, Px)
				}
			}
			return FromLength(p/1.2, Px)
		}
		return FromLength(defaultFontSize, Px)
	case TypePercentage:
		return FromLength(parent()*v.Number()/100, Px)
	case TypeLength:
		return FromLength(v.Number()*c.lengthScale(v.Dimension(), parent), Px)
	}
	return FromLength(defaultFontSize, Px)
}

func computeFontWeight(c *Cascade, name string) Value {
	parentWeight := func() int {
		if c.Parent == nil {
			return 400
		}
		return int(c.Parent.ComputedValue(name).Number())
	}
	v := c.SpecifiedValue(name)
	switch {
	case v.IsKeyword("normal"):
		return FromNumber(400)
	case v.IsKeyword("bold"):
		return FromNumber(700)
	case v.IsKeyword("bolder"):
		return FromNumber(Fl(fontWeightRelative.bolder[parentWeight()]))
	case v.IsKeyword("lighter"):
		return FromNumber(Fl(fontWeightRelative.lighter[parentWeight()]))
	}
	return v
}

func computeLineHeight(c *Cascade, name string) Value {
	v := c.SpecifiedValue(name)
	switch v.Type() {
	case TypeKeyword, TypeNumber:
		// "normal" and unitless multipliers stay as declared
		return v
	case TypePercentage:
		return FromLength(c.fontSize()*v.Number()/100, Px)
	case TypeLength:
		return c.ComputeLength(v)
	}
	return v
}

// computeBorderWidth maps the width keywords to px and zeroes the width of
// a side whose border-style is none or hidden.
func computeBorderWidth(c *Cascade, name string) Value {
	styleName := name[:len(name)-len("width")] + "style"
	if c.ComputedValue(styleName).IsKeyword("none", "hidden") {
		return FromLength(0, Px)
	}
	v := c.SpecifiedValue(name)
	if v.Type() == TypeKeyword {
		if px, in := borderWidthKeywords[v.Text()]; in {
			return FromLength(px, Px)
		}
	}
	return c.normalize(v)
}
