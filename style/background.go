package style

import (
	"math"

	"github.com/ravstrix/ClanLib/backend"
	"github.com/ravstrix/ClanLib/utils"
)

// Geometry gives the boxes of the element being painted, in the
// coordinates of the target canvas.
type Geometry struct {
	BorderBox  backend.Rect
	PaddingBox backend.Rect
	ContentBox backend.Rect
}

func (g Geometry) box(keyword string) backend.Rect {
	switch keyword {
	case "padding-box":
		return g.PaddingBox
	case "content-box":
		return g.ContentBox
	}
	return g.BorderBox
}

// RenderBackground paints the background of the element resolved by [c]
// onto [canvas]: the background color first, then the image layers from
// the last declared to the first, each positioned, sized, repeated and
// clipped per its indexed background properties.
func RenderBackground(c *Cascade, canvas backend.Canvas, geom Geometry) {
	radius := c.borderRadius()
	layers := c.ArraySize("background-image")

	if color := toRGBA(c.ComputedValue("background-color").Color()); color.A > 0 {
		// the color layer is clipped like the bottom image layer
		box := geom.box(c.ComputedValue(indexedName("background-clip", layers-1)).Text())
		if radius > 0 {
			canvas.FillRoundedRect(box, radius, color)
		} else {
			canvas.FillRect(box, color)
		}
	}

	for i := layers - 1; i >= 0; i-- {
		c.renderBackgroundLayer(canvas, geom, i, radius)
	}
}

func (c *Cascade) renderBackgroundLayer(canvas backend.Canvas, geom Geometry, index int, radius Fl) {
	name := indexedName("background-image", index)
	v := c.CascadeValue(name)
	if v.IsUndefined() || v.IsKeyword("none") {
		return
	}
	img, ok := c.cascadeImage(name)
	if !ok {
		return
	}

	clip := geom.box(c.ComputedValue(indexedName("background-clip", index)).Text())
	origin := geom.box(c.ComputedValue(indexedName("background-origin", index)).Text())
	area := c.layerArea(index, origin)
	if area.IsEmpty() || clip.IsEmpty() {
		return
	}

	canvas.PushClip(clip, radius)
	defer canvas.PopClip()

	repeatX, repeatY := c.layerRepeat(index)
	for _, tile := range tileRects(area, clip, repeatX, repeatY) {
		if img.IsGradient() {
			canvas.DrawGradient(c.gradientLayout(img.Gradient, tile), tile)
		} else {
			canvas.DrawImage(img.Image.Text, tile)
		}
	}
}

// layerArea resolves background-position and background-size of layer
// [index] against the origin box.
func (c *Cascade) layerArea(index int, origin backend.Rect) backend.Rect {
	w := c.layerExtent(indexedName("background-size-x", index), origin.Width)
	h := c.layerExtent(indexedName("background-size-y", index), origin.Height)

	x := origin.X + resolveOffset(c.ComputedValue(indexedName("background-position-x", index)), origin.Width-w)
	y := origin.Y + resolveOffset(c.ComputedValue(indexedName("background-position-y", index)), origin.Height-h)
	return backend.Rect{X: x, Y: y, Width: w, Height: h}
}

// layerExtent resolves one background-size component. Without intrinsic
// image dimensions, auto, cover and contain all fill the origin box.
func (c *Cascade) layerExtent(name string, reference Fl) Fl {
	v := c.ComputedValue(name)
	switch {
	case v.IsPercentage():
		return reference * v.Number() / 100
	case v.IsLength():
		return v.Number()
	}
	return reference
}

// resolveOffset turns a background-position component into a px offset: a
// percentage positions the image edge proportionally within the free
// space, as CSS defines it.
func resolveOffset(v Value, free Fl) Fl {
	switch {
	case v.IsPercentage():
		return free * v.Number() / 100
	case v.IsLength():
		return v.Number()
	}
	return 0
}

func (c *Cascade) layerRepeat(index int) (x, y bool) {
	switch c.ComputedValue(indexedName("background-repeat", index)).Text() {
	case "repeat":
		return true, true
	case "repeat-x":
		return true, false
	case "repeat-y":
		return false, true
	}
	return false, false
}

// tileRects expands [area] into the tiles covering [clip] along the
// repeated axes. The non repeated axes keep the single declared tile.
func tileRects(area, clip backend.Rect, repeatX, repeatY bool) []backend.Rect {
	xs := tileAxis(area.X, area.Width, clip.X, clip.Width, repeatX)
	ys := tileAxis(area.Y, area.Height, clip.Y, clip.Height, repeatY)
	out := make([]backend.Rect, 0, len(xs)*len(ys))
	for _, y := range ys {
		for _, x := range xs {
			out = append(out, backend.Rect{X: x, Y: y, Width: area.Width, Height: area.Height})
		}
	}
	return out
}

func tileAxis(start, size, clipStart, clipSize Fl, repeat bool) []Fl {
	if !repeat || size <= 0 {
		return []Fl{start}
	}
	// first tile at or before the clip edge
	n := Fl(math.Ceil(float64((start - clipStart) / size)))
	pos := start - n*size
	var out []Fl
	for ; pos < clipStart+clipSize; pos += size {
		out = append(out, pos)
	}
	return out
}

// gradientLayout flattens a declared gradient into the geometry and color
// ramp the canvas draws with, resolving stop positions against [area].
func (c *Cascade) gradientLayout(g Gradient, area backend.Rect) backend.GradientLayout {
	var layout backend.GradientLayout
	var lineLength Fl
	if g.IsLinear() {
		angle := ComputeAngle(g.LinearAngle.Value()).Number()
		layout.GradientKind = linearKind(angle, area)
		dx := layout.Coords[2] - layout.Coords[0]
		dy := layout.Coords[3] - layout.Coords[1]
		lineLength = Fl(math.Hypot(float64(dx), float64(dy)))
	} else {
		layout.GradientKind = c.radialKind(g, area)
		lineLength = layout.Coords[5]
		if g.RadialShape.IsKeyword("circle") {
			layout.ScaleY = 1
		} else if ry := c.radialExtent(g.RadialSizeY, area.Y, area.Height, area.Y+area.Height/2); ry > 0 {
			rx := layout.Coords[5]
			if rx > 0 {
				layout.ScaleY = ry / rx
			}
		}
		if layout.ScaleY == 0 {
			layout.ScaleY = 1
		}
	}
	layout.Positions, layout.Colors = c.gradientStops(g.Stops, lineLength)
	return layout
}

// linearKind places the gradient line through the center of [area]: angle
// 0 points up, angles grow clockwise, and the line is long enough for the
// first and last stop to touch the corners.
func linearKind(angle Fl, area backend.Rect) backend.GradientKind {
	sin, cos := Fl(math.Sin(float64(angle))), Fl(math.Cos(float64(angle)))
	cx, cy := area.X+area.Width/2, area.Y+area.Height/2
	half := (utils.AbsF(area.Width*sin) + utils.AbsF(area.Height*cos)) / 2
	return backend.GradientKind{
		Kind:   "linear",
		Coords: [6]Fl{cx - sin*half, cy + cos*half, cx + sin*half, cy - cos*half},
	}
}

func (c *Cascade) radialKind(g Gradient, area backend.Rect) backend.GradientKind {
	cx := c.radialExtent(g.RadialPositionX, area.X, area.Width, area.X+area.Width/2)
	cy := c.radialExtent(g.RadialPositionY, area.Y, area.Height, area.Y+area.Height/2)
	r := c.radialExtent(g.RadialSizeX, 0, area.Width, 0)
	if r <= 0 {
		// default extent reaches the farthest corner
		dx := utils.MaxF(cx-area.X, area.X+area.Width-cx)
		dy := utils.MaxF(cy-area.Y, area.Y+area.Height-cy)
		r = Fl(math.Hypot(float64(dx), float64(dy)))
	}
	return backend.GradientKind{Kind: "radial", Coords: [6]Fl{cx, cy, 0, cx, cy, r}}
}

// radialExtent resolves a radial position or size component. [fallback]
// applies to the undefined value.
func (c *Cascade) radialExtent(v SetValue, start, reference, fallback Fl) Fl {
	value := c.normalize(v.Value())
	switch {
	case value.IsPercentage():
		return start + reference*value.Number()/100
	case value.IsLength():
		return start + value.Number()
	}
	return fallback
}

// gradientStops resolves the color ramp: stop positions map to the 0..1
// range, stops without a declared position spread evenly between their
// positioned neighbors, and declaration order is preserved (a stop before
// its predecessor clamps up rather than reordering).
func (c *Cascade) gradientStops(stops []GradientStop, lineLength Fl) ([]Fl, []backend.RGBA) {
	n := len(stops)
	positions := make([]Fl, n)
	known := make([]bool, n)
	for i, stop := range stops {
		v := c.normalize(stop.Position.Value())
		switch {
		case v.IsPercentage():
			positions[i], known[i] = v.Number()/100, true
		case v.IsLength() && lineLength > 0:
			positions[i], known[i] = v.Number()/lineLength, true
		}
	}
	if n > 0 && !known[0] {
		positions[0], known[0] = 0, true
	}
	if n > 0 && !known[n-1] {
		positions[n-1], known[n-1] = 1, true
	}
	for i := 1; i < n; i++ {
		if known[i] {
			continue
		}
		next := i
		for !known[next] {
			next++
		}
		step := (positions[next] - positions[i-1]) / Fl(next-i+1)
		for j := i; j < next; j++ {
			positions[j] = positions[j-1] + step
			known[j] = true
		}
	}
	for i := 1; i < n; i++ {
		positions[i] = utils.MaxF(positions[i], positions[i-1])
	}

	colors := make([]backend.RGBA, n)
	for i, stop := range stops {
		colors[i] = toRGBA(stop.Color.Value().Color())
	}
	return positions, colors
}

func toRGBA(c Colorf) backend.RGBA {
	return backend.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
