package style

import (
	"math"
	"testing"

	tu "github.com/ravstrix/ClanLib/utils/testutils"
)

func cascadeOf(declarations ...string) *Cascade {
	c := &Cascade{}
	for _, text := range declarations {
		s := NewStyle()
		s.Set(text)
		c.Cascade = append(c.Cascade, s)
	}
	return c
}

func childOf(parent *Cascade, declarations ...string) *Cascade {
	c := cascadeOf(declarations...)
	c.Parent = parent
	c.Env = parent.Env
	return c
}

func TestCascadeFirstMatchWins(t *testing.T) {
	c := cascadeOf("width: 10px", "width: 20px; height: 30px")
	tu.AssertEqual(t, c.CascadeValue("width"), FromLength(10, Px))
	tu.AssertEqual(t, c.CascadeValue("height"), FromLength(30, Px))
	tu.AssertEqual(t, c.CascadeValue("margin-top").IsUndefined(), true)
}

func TestSpecifiedValueInitial(t *testing.T) {
	c := cascadeOf()
	tu.AssertEqual(t, c.SpecifiedValue("width"), FromKeyword("auto"))
	tu.AssertEqual(t, c.SpecifiedValue("margin-top"), FromLength(0, Px))
	tu.AssertEqual(t, c.SpecifiedValue("opacity"), FromNumber(1))
	// unknown properties resolve as undefined
	tu.AssertEqual(t, c.SpecifiedValue("flux-capacitance").IsUndefined(), true)
}

func TestSpecifiedValueInheritance(t *testing.T) {
	parent := cascadeOf("color: red; width: 50px")
	child := childOf(parent)

	// color inherits, width does not
	tu.AssertEqual(t, child.SpecifiedValue("color").Color(), Colorf{R: 1, A: 1})
	tu.AssertEqual(t, child.SpecifiedValue("width"), FromKeyword("auto"))

	// explicit keywords
	forced := childOf(parent, "color: initial; width: inherit")
	tu.AssertEqual(t, forced.SpecifiedValue("color").Color(), Colorf{A: 1})
	tu.AssertEqual(t, forced.SpecifiedValue("width"), FromLength(50, Px))

	// inherit at the root falls back to the initial value
	root := cascadeOf("width: inherit")
	tu.AssertEqual(t, root.SpecifiedValue("width"), FromKeyword("auto"))
}

func TestInheritedValuesAreComputed(t *testing.T) {
	// relative units resolve in the declaring element's context before
	// inheriting: the child sees the parent's px value, not 1em of its
	// own font-size
	parent := cascadeOf("font-size: 20px; letter-spacing: 1em")
	child := childOf(parent, "font-size: 10px")
	tu.AssertEqual(t, child.ComputedValue("letter-spacing"), FromLength(20, Px))
}

func TestComputedLengthUnits(t *testing.T) {
	for _, test := range []struct {
		declaration string
		px          Fl
	}{
		{"margin-top: 96px", 96},
		{"margin-top: 72pt", 96},
		{"margin-top: 6pc", 96},
		{"margin-top: 1in", 96},
		{"margin-top: 2.54cm", 96},
		{"margin-top: 25.4mm", 96},
	} {
		c := cascadeOf(test.declaration)
		v := c.ComputedValue("margin-top")
		tu.AssertEqual(t, v.Dimension(), Px)
		tu.AssertApprox(t, v.Number(), test.px)
	}
}

func TestComputedFontRelativeUnits(t *testing.T) {
	root := cascadeOf("font-size: 20px")
	c := childOf(root, "font-size: 10px; margin-top: 2em; margin-bottom: 1.5rem")

	tu.AssertApprox(t, c.ComputedValue("margin-top").Number(), 20)
	tu.AssertApprox(t, c.ComputedValue("margin-bottom").Number(), 30)

	// em in font-size resolves against the parent
	em := childOf(root, "font-size: 2em")
	tu.AssertApprox(t, em.ComputedValue("font-size").Number(), 40)
}

func TestComputedViewportUnits(t *testing.T) {
	env := &Environment{ViewportWidth: 1000, ViewportHeight: 500}
	c := cascadeOf("width: 10vw; height: 10vh; min-width: 10vmin; min-height: 10vmax")
	c.Env = env
	tu.AssertApprox(t, c.ComputedValue("width").Number(), 100)
	tu.AssertApprox(t, c.ComputedValue("height").Number(), 50)
	tu.AssertApprox(t, c.ComputedValue("min-width").Number(), 50)
	tu.AssertApprox(t, c.ComputedValue("min-height").Number(), 100)
}

func TestComputedAngles(t *testing.T) {
	for _, test := range []struct {
		declaration string
		rad         Fl
	}{
		{"image-orientation: 180deg", math.Pi},
		{"image-orientation: 200grad", math.Pi},
		{"image-orientation: 1turn", 2 * math.Pi},
		{"image-orientation: 1.5rad", 1.5},
	} {
		c := cascadeOf(test.declaration)
		v := c.ComputedValue("image-orientation")
		tu.AssertEqual(t, v.Dimension(), Rad)
		tu.AssertApprox(t, v.Number(), test.rad)
	}
}

func TestComputedTimeAndResolution(t *testing.T) {
	c := cascadeOf("transition-duration: 300ms; image-resolution: 192dpi")
	d := c.ComputedValue("transition-duration[0]")
	tu.AssertEqual(t, d.Dimension(), S)
	tu.AssertApprox(t, d.Number(), 0.3)

	r := c.ComputedValue("image-resolution")
	tu.AssertEqual(t, r.Dimension(), Dppx)
	tu.AssertApprox(t, r.Number(), 2)
}

func TestComputedPercentagePassesThrough(t *testing.T) {
	c := cascadeOf("width: 25%")
	tu.AssertEqual(t, c.ComputedValue("width"), FromPercentage(25))
}

func TestComputedFontSize(t *testing.T) {
	// keywords
	tu.AssertApprox(t, cascadeOf("font-size: medium").fontSize(), 16)
	tu.AssertApprox(t, cascadeOf("font-size: xx-large").fontSize(), 32)

	// relative to the parent
	parent := cascadeOf("font-size: 20px")
	tu.AssertApprox(t, childOf(parent, "font-size: 200%").fontSize(), 40)
	tu.AssertApprox(t, childOf(parent).fontSize(), 20)

	// larger and smaller step the keyword scale
	medium := cascadeOf("font-size: medium")
	tu.AssertApprox(t, childOf(medium, "font-size: larger").fontSize(), 16*1.2)
	tu.AssertApprox(t, childOf(medium, "font-size: smaller").fontSize(), 16*8/9.)
}

func TestComputedFontWeight(t *testing.T) {
	tu.AssertEqual(t, cascadeOf("font-weight: normal").ComputedValue("font-weight"), FromNumber(400))
	tu.AssertEqual(t, cascadeOf("font-weight: bold").ComputedValue("font-weight"), FromNumber(700))
	tu.AssertEqual(t, cascadeOf("font-weight: 300").ComputedValue("font-weight"), FromNumber(300))

	parent := cascadeOf("font-weight: 300")
	tu.AssertEqual(t, childOf(parent, "font-weight: bolder").ComputedValue("font-weight"), FromNumber(400))
	tu.AssertEqual(t, childOf(parent, "font-weight: lighter").ComputedValue("font-weight"), FromNumber(100))
	// bolder at the root starts from 400
	tu.AssertEqual(t, cascadeOf("font-weight: bolder").ComputedValue("font-weight"), FromNumber(700))
}

func TestComputedLineHeight(t *testing.T) {
	c := cascadeOf("font-size: 10px; line-height: 150%")
	tu.AssertEqual(t, c.ComputedValue("line-height"), FromLength(15, Px))

	// unitless numbers and "normal" stay as declared
	tu.AssertEqual(t, cascadeOf("line-height: 1.4").ComputedValue("line-height"), FromNumber(1.4))
	tu.AssertEqual(t, cascadeOf().ComputedValue("line-height"), FromKeyword("normal"))
}

func TestComputedBorderWidth(t *testing.T) {
	c := cascadeOf("border-top-style: solid; border-top-width: thick")
	tu.AssertEqual(t, c.ComputedValue("border-top-width"), FromLength(5, Px))

	// without a visible style the width computes to zero
	hidden := cascadeOf("border-top-width: 4px")
	tu.AssertEqual(t, hidden.ComputedValue("border-top-width"), FromLength(0, Px))
	tu.AssertEqual(t, cascadeOf("border-top-style: hidden; border-top-width: 4px").
		ComputedValue("border-top-width"), FromLength(0, Px))

	solid := cascadeOf("border-top-style: solid; border-top-width: 0.25cm")
	tu.AssertApprox(t, solid.ComputedValue("border-top-width").Number(), 0.25*96/2.54)
}

func TestComputerFunctionsRegistered(t *testing.T) {
	for _, name := range []string{
		"font-size", "font-weight", "line-height",
		"border-top-width", "border-right-width", "border-bottom-width", "border-left-width",
	} {
		if computerFunctions[name] == nil {
			t.Fatalf("no computer function for %s", name)
		}
	}
}

func TestArraySize(t *testing.T) {
	c := cascadeOf(
		"background-repeat: no-repeat",
		"background-image: url(a.png), url(b.png), url(c.png)",
	)
	tu.AssertEqual(t, c.ArraySize("background-image"), 3)
	tu.AssertEqual(t, c.ArraySize("background-repeat"), 1)
	tu.AssertEqual(t, c.ArraySize("transition-duration"), 0)

	// position-wise fallback: the shorter list wins where it declares,
	// the longer one fills the tail
	tu.AssertEqual(t, c.CascadeValue("background-repeat[0]"), FromKeyword("no-repeat"))
	tu.AssertEqual(t, c.CascadeValue("background-image[1]"), FromURL("b.png"))
}

func TestArraySizeInherited(t *testing.T) {
	parent := cascadeOf("font-family: Arial, sans-serif")
	child := childOf(parent)
	tu.AssertEqual(t, child.ArraySize("font-family"), 2)
	tu.AssertEqual(t, child.ComputedValue("font-family[0]"), FromKeyword("arial"))
}
