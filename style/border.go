package style

import (
	"github.com/ravstrix/ClanLib/backend"
	"github.com/ravstrix/ClanLib/logger"
	"github.com/ravstrix/ClanLib/utils"
)

var borderSides = [4]string{"top", "right", "bottom", "left"}

// borderSide is the resolved paint state of one border edge.
type borderSide struct {
	width Fl
	style string
	color backend.RGBA
}

// borderRadius returns the uniform corner radius, in px. Per corner radii
// all resolve, but painting rounds every corner with the largest of them.
func (c *Cascade) borderRadius() Fl {
	var radius Fl
	for _, corner := range [4]string{"top-left", "top-right", "bottom-left", "bottom-right"} {
		radius = utils.MaxF(radius, c.ComputedValue("border-"+corner+"-radius").Number())
	}
	return radius
}

func (c *Cascade) borderSide(side string) borderSide {
	out := borderSide{
		width: c.ComputedValue("border-" + side + "-width").Number(),
		style: c.ComputedValue("border-" + side + "-style").Text(),
	}
	color := c.ComputedValue("border-" + side + "-color")
	if color.IsKeyword("currentcolor") {
		color = c.ComputedValue("color")
	}
	out.color = toRGBA(color.Color())
	return out
}

var degradedBorderStyles = utils.NewSet()

// paints returns whether the side draws anything. A style this renderer
// does not implement degrades to solid, warning once per style name.
func (s borderSide) paints() bool {
	if s.width <= 0 || s.style == "none" || s.style == "hidden" {
		return false
	}
	if s.style != "solid" && !degradedBorderStyles.Has(s.style) {
		degradedBorderStyles.Add(s.style)
		logger.WarningLogger.Printf("border style %q drawn as solid\n", s.style)
	}
	return s.color.A > 0
}

// RenderBorder paints the border of the element resolved by [c] onto
// [canvas], between the border box and the padding box of [geom]. Uniform
// borders stroke the (possibly rounded) border rectangle; mixed ones fill
// one trapezoid free strip per side.
func RenderBorder(c *Cascade, canvas backend.Canvas, geom Geometry) {
	var sides [4]borderSide
	uniform := true
	for i, name := range borderSides {
		sides[i] = c.borderSide(name)
		uniform = uniform && sides[i] == sides[0]
	}

	if uniform {
		if !sides[0].paints() {
			return
		}
		w := sides[0].width
		r := geom.BorderBox
		canvas.StrokeRect(backend.Rect{
			X: r.X + w/2, Y: r.Y + w/2,
			Width: r.Width - w, Height: r.Height - w,
		}, c.borderRadius(), w, sides[0].color)
		return
	}

	for i, side := range sides {
		if side.paints() {
			canvas.FillRect(sideStrip(geom, borderSides[i]), side.color)
		}
	}
}

// sideStrip is the rectangle between the border box and the padding box on
// one side.
func sideStrip(geom Geometry, side string) backend.Rect {
	b, p := geom.BorderBox, geom.PaddingBox
	switch side {
	case "top":
		return backend.Rect{X: b.X, Y: b.Y, Width: b.Width, Height: p.Y - b.Y}
	case "bottom":
		bottom := p.Y + p.Height
		return backend.Rect{X: b.X, Y: bottom, Width: b.Width, Height: b.Y + b.Height - bottom}
	case "left":
		return backend.Rect{X: b.X, Y: p.Y, Width: p.X - b.X, Height: p.Height}
	}
	right := p.X + p.Width
	return backend.Rect{X: right, Y: p.Y, Width: b.X + b.Width - right, Height: p.Height}
}
