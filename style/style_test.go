package style

import (
	"testing"

	tu "github.com/ravstrix/ClanLib/utils/testutils"
)

func TestSetDeclarations(t *testing.T) {
	s := NewStyle()
	s.Set("color: red; margin-top: 5px; opacity: 0.5")

	tu.AssertEqual(t, s.DeclaredValue("color").Color(), Colorf{R: 1, A: 1})
	tu.AssertEqual(t, s.DeclaredValue("margin-top"), FromLength(5, Px))
	tu.AssertEqual(t, s.DeclaredValue("opacity"), FromNumber(0.5))
	tu.AssertEqual(t, s.DeclaredValue("margin-bottom").IsUndefined(), true)
}

func TestSetAccumulatesAndOverwrites(t *testing.T) {
	s := NewStyle()
	s.Set("width: 10px")
	s.Set("height: 20px")
	tu.AssertEqual(t, s.DeclaredValue("width"), FromLength(10, Px))
	tu.AssertEqual(t, s.DeclaredValue("height"), FromLength(20, Px))

	s.Set("width: 30px")
	tu.AssertEqual(t, s.DeclaredValue("width"), FromLength(30, Px))
}

func TestSetDropsMalformed(t *testing.T) {
	s := NewStyle()
	s.Set("width: 10px; !!nonsense!!; height: 20px")
	tu.AssertEqual(t, s.DeclaredValue("width"), FromLength(10, Px))
	tu.AssertEqual(t, s.DeclaredValue("height"), FromLength(20, Px))

	s.Set("width: @@; margin-top: 1px")
	tu.AssertEqual(t, s.DeclaredValue("width"), FromLength(10, Px))
	tu.AssertEqual(t, s.DeclaredValue("margin-top"), FromLength(1, Px))
}

func TestSetNamesAreCaseInsensitive(t *testing.T) {
	s := NewStyle()
	s.Set("Margin-Top: 5px")
	tu.AssertEqual(t, s.DeclaredValue("margin-top"), FromLength(5, Px))
	tu.AssertEqual(t, s.DeclaredValue("MARGIN-TOP"), FromLength(5, Px))
}

func TestSetSubstitution(t *testing.T) {
	s := NewStyle()
	s.Set("width: %1px; background-color: %2", 240, ToRGBA(NewColorf(1, 0, 0)))
	tu.AssertEqual(t, s.DeclaredValue("width"), FromLength(240, Px))
	tu.AssertEqual(t, s.DeclaredValue("background-color").Color(), Colorf{R: 1, A: 1})

	// %% escapes, out of range placeholders vanish
	s.Set("height: 5%%; margin-top: %3px", 1)
	tu.AssertEqual(t, s.DeclaredValue("height"), FromPercentage(5))
}

func TestSetValueKinds(t *testing.T) {
	s := NewStyle()
	s.Set("border-top-style: solid")
	tu.AssertEqual(t, s.DeclaredValue("border-top-style"), FromKeyword("solid"))

	s.Set("margin-left: 25%")
	tu.AssertEqual(t, s.DeclaredValue("margin-left"), FromPercentage(25))

	s.Set("letter-spacing: 0.5em; margin-right: -4px")
	tu.AssertEqual(t, s.DeclaredValue("letter-spacing"), FromLength(0.5, Em))
	tu.AssertEqual(t, s.DeclaredValue("margin-right"), FromLength(-4, Px))

	s.Set("transition-duration: 300ms")
	tu.AssertEqual(t, s.DeclaredValue("transition-duration[0]"), FromTime(300, Ms))

	s.Set("image-resolution: 300dpi; image-orientation: 90deg")
	tu.AssertEqual(t, s.DeclaredValue("image-resolution"), FromResolution(300, Dpi))
	tu.AssertEqual(t, s.DeclaredValue("image-orientation"), FromAngle(90, Deg))
}

func TestSetNegativeValues(t *testing.T) {
	s := NewStyle()
	s.Set("margin-left: -1.5em; margin-top: -25%; image-orientation: -90deg; opacity: +0.5")
	tu.AssertEqual(t, s.DeclaredValue("margin-left"), FromLength(-1.5, Em))
	tu.AssertEqual(t, s.DeclaredValue("margin-top"), FromPercentage(-25))
	tu.AssertEqual(t, s.DeclaredValue("image-orientation"), FromAngle(-90, Deg))
	tu.AssertEqual(t, s.DeclaredValue("opacity"), FromNumber(0.5))

	// a sign must be followed by a numeric component
	s.Set("width: 10px")
	s.Set("width: -auto")
	tu.AssertEqual(t, s.DeclaredValue("width"), FromLength(10, Px))
}

func TestSetColors(t *testing.T) {
	s := NewStyle()
	s.Set("color: #ff0000")
	tu.AssertEqual(t, s.DeclaredValue("color").Color(), Colorf{R: 1, A: 1})

	s.Set("color: #0f0")
	tu.AssertEqual(t, s.DeclaredValue("color").Color(), Colorf{G: 1, A: 1})

	s.Set("border-top-color: rgb(0, 0, 255)")
	tu.AssertEqual(t, s.DeclaredValue("border-top-color").Color(), Colorf{B: 1, A: 1})

	s.Set("background-color: rgba(255, 0, 0, 0.5)")
	tu.AssertEqual(t, s.DeclaredValue("background-color").Color(), Colorf{R: 1, A: 0.5})

	s.Set("color: transparent")
	tu.AssertEqual(t, s.DeclaredValue("color").Color().IsTransparent(), true)

	// named colors only apply in color context
	s.Set("text-align: red")
	tu.AssertEqual(t, s.DeclaredValue("text-align"), FromKeyword("red"))
}

func TestSetArrayProperties(t *testing.T) {
	s := NewStyle()
	s.Set("background-image: url(a.png), url('b.png'), none")
	tu.AssertEqual(t, s.DeclaredValue("background-image[0]"), FromURL("a.png"))
	tu.AssertEqual(t, s.DeclaredValue("background-image[1]"), FromURL("b.png"))
	tu.AssertEqual(t, s.DeclaredValue("background-image[2]"), FromKeyword("none"))
	tu.AssertEqual(t, s.DeclaredValue("background-image[3]").IsUndefined(), true)

	// re-declaring replaces the whole list
	s.Set("background-image: url(c.png)")
	tu.AssertEqual(t, s.DeclaredValue("background-image[0]"), FromURL("c.png"))
	tu.AssertEqual(t, s.DeclaredValue("background-image[1]").IsUndefined(), true)
}

func TestSetFontFamily(t *testing.T) {
	s := NewStyle()
	s.Set("font-family: 'Segoe UI', Helvetica Neue, sans-serif")
	tu.AssertEqual(t, s.DeclaredValue("font-family[0]"), FromString("Segoe UI"))
	tu.AssertEqual(t, s.DeclaredValue("font-family[1]"), FromKeyword("helvetica neue"))
	tu.AssertEqual(t, s.DeclaredValue("font-family[2]"), FromKeyword("sans-serif"))
}

func TestSetBackgroundPosition(t *testing.T) {
	s := NewStyle()
	s.Set("background-position: center, left 10px, 25% 75%")
	tu.AssertEqual(t, s.DeclaredValue("background-position-x[0]"), FromPercentage(50))
	tu.AssertEqual(t, s.DeclaredValue("background-position-y[0]"), FromPercentage(50))
	tu.AssertEqual(t, s.DeclaredValue("background-position-x[1]"), FromPercentage(0))
	tu.AssertEqual(t, s.DeclaredValue("background-position-y[1]"), FromLength(10, Px))
	tu.AssertEqual(t, s.DeclaredValue("background-position-x[2]"), FromPercentage(25))
	tu.AssertEqual(t, s.DeclaredValue("background-position-y[2]"), FromPercentage(75))
}

func TestSetBackgroundPositionEdgeKeywords(t *testing.T) {
	s := NewStyle()

	// vertical keywords alone bind to the y axis, x defaults to center
	s.Set("background-position: top")
	tu.AssertEqual(t, s.DeclaredValue("background-position-x[0]"), FromPercentage(50))
	tu.AssertEqual(t, s.DeclaredValue("background-position-y[0]"), FromPercentage(0))

	s.Set("background-position: bottom")
	tu.AssertEqual(t, s.DeclaredValue("background-position-x[0]"), FromPercentage(50))
	tu.AssertEqual(t, s.DeclaredValue("background-position-y[0]"), FromPercentage(100))

	// keyword pairs may come in either order
	s.Set("background-position: bottom right")
	tu.AssertEqual(t, s.DeclaredValue("background-position-x[0]"), FromPercentage(100))
	tu.AssertEqual(t, s.DeclaredValue("background-position-y[0]"), FromPercentage(100))

	// two keywords of the same axis are malformed
	s.Set("background-position: left")
	s.Set("background-position: top bottom")
	tu.AssertEqual(t, s.DeclaredValue("background-position-x[0]"), FromPercentage(0))
	tu.AssertEqual(t, s.DeclaredValue("background-position-y[0]"), FromPercentage(50))
}

func TestSetBackgroundSize(t *testing.T) {
	s := NewStyle()
	s.Set("background-size: cover, 50% auto, 32px 64px")
	tu.AssertEqual(t, s.DeclaredValue("background-size-x[0]"), FromKeyword("cover"))
	tu.AssertEqual(t, s.DeclaredValue("background-size-y[0]"), FromKeyword("cover"))
	tu.AssertEqual(t, s.DeclaredValue("background-size-x[1]"), FromPercentage(50))
	tu.AssertEqual(t, s.DeclaredValue("background-size-y[1]"), FromKeyword("auto"))
	tu.AssertEqual(t, s.DeclaredValue("background-size-x[2]"), FromLength(32, Px))
	tu.AssertEqual(t, s.DeclaredValue("background-size-y[2]"), FromLength(64, Px))
}

func TestSetGradientImage(t *testing.T) {
	s := NewStyle()
	s.Set("background-image: linear-gradient(to right, red, blue)")
	img, ok := s.declaredImage("background-image[0]")
	tu.AssertEqual(t, ok, true)
	tu.AssertEqual(t, img.IsGradient(), true)
	tu.AssertEqual(t, img.Gradient.IsLinear(), true)
	tu.AssertEqual(t, len(img.Gradient.Stops), 2)
}

func TestToRGBA(t *testing.T) {
	tu.AssertEqual(t, ToRGBA(Colorf{R: 1, G: 0.5, B: 0, A: 0.5}), "rgba(255,128,0,0.5)")
	tu.AssertEqual(t, ToRGBA(NewColorf(0, 0, 0)), "rgba(0,0,0,1)")
}
