// Package raster implements the drawing backend on an in-memory RGBA
// image, using gg for rasterization and freetype for font loading.
package raster

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"

	"github.com/ravstrix/ClanLib/backend"
	"github.com/ravstrix/ClanLib/logger"
)

var _ backend.Canvas = (*Canvas)(nil)

// Canvas draws on an image.RGBA of fixed size. One unit is one pixel.
type Canvas struct {
	dc     *gg.Context
	images map[string]image.Image
}

// NewCanvas returns a transparent canvas of the given pixel size.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		dc:     gg.NewContext(width, height),
		images: map[string]image.Image{},
	}
}

// Image exposes the pixels drawn so far.
func (c *Canvas) Image() image.Image { return c.dc.Image() }

func (c *Canvas) Size() (width, height backend.Fl) {
	return backend.Fl(c.dc.Width()), backend.Fl(c.dc.Height())
}

func (c *Canvas) setColor(col backend.RGBA) {
	c.dc.SetRGBA(float64(col.R), float64(col.G), float64(col.B), float64(col.A))
}

func rect(dc *gg.Context, r backend.Rect, radius backend.Fl) {
	if radius > 0 {
		dc.DrawRoundedRectangle(float64(r.X), float64(r.Y), float64(r.Width), float64(r.Height), float64(radius))
	} else {
		dc.DrawRectangle(float64(r.X), float64(r.Y), float64(r.Width), float64(r.Height))
	}
}

func (c *Canvas) FillRect(r backend.Rect, col backend.RGBA) {
	c.setColor(col)
	rect(c.dc, r, 0)
	c.dc.Fill()
}

func (c *Canvas) FillRoundedRect(r backend.Rect, radius backend.Fl, col backend.RGBA) {
	c.setColor(col)
	rect(c.dc, r, radius)
	c.dc.Fill()
}

func (c *Canvas) StrokeRect(r backend.Rect, radius, lineWidth backend.Fl, col backend.RGBA) {
	c.setColor(col)
	c.dc.SetLineWidth(float64(lineWidth))
	rect(c.dc, r, radius)
	c.dc.Stroke()
}

func (c *Canvas) PushClip(r backend.Rect, radius backend.Fl) {
	c.dc.Push()
	rect(c.dc, r, radius)
	c.dc.Clip()
}

func (c *Canvas) PopClip() {
	c.dc.ResetClip()
	c.dc.Pop()
}

func (c *Canvas) DrawGradient(gradient backend.GradientLayout, r backend.Rect) {
	co := gradient.Coords
	var pattern gg.Gradient
	switch gradient.Kind {
	case "radial":
		if gradient.ScaleY != 1 && gradient.ScaleY > 0 {
			// squash the context to turn the circle into the ellipse
			c.dc.Push()
			defer c.dc.Pop()
			c.dc.ScaleAbout(1, float64(gradient.ScaleY), float64(co[0]), float64(co[1]))
		}
		pattern = gg.NewRadialGradient(
			float64(co[0]), float64(co[1]), float64(co[2]),
			float64(co[3]), float64(co[4]), float64(co[5]))
	default:
		pattern = gg.NewLinearGradient(
			float64(co[0]), float64(co[1]), float64(co[2]), float64(co[3]))
	}
	for i, pos := range gradient.Positions {
		pattern.AddColorStop(float64(pos), toNRGBA(gradient.Colors[i]))
	}
	c.dc.SetFillStyle(pattern)
	rect(c.dc, r, 0)
	c.dc.Fill()
}

// DrawImage paints the image loaded from [url] (a file path or file url),
// scaled to [r]. Unresolvable images are skipped with a warning.
func (c *Canvas) DrawImage(url string, r backend.Rect) {
	img, ok := c.images[url]
	if !ok {
		var err error
		img, err = gg.LoadImage(imagePath(url))
		if err != nil {
			logger.WarningLogger.Printf("cannot load image %q: %s\n", url, err)
			img = nil
		}
		c.images[url] = img
	}
	if img == nil {
		return
	}
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return
	}
	c.dc.Push()
	c.dc.Translate(float64(r.X), float64(r.Y))
	c.dc.Scale(float64(r.Width)/float64(bounds.Dx()), float64(r.Height)/float64(bounds.Dy()))
	c.dc.DrawImage(img, 0, 0)
	c.dc.Pop()
}

func imagePath(url string) string {
	const prefix = "file://"
	if len(url) > len(prefix) && url[:len(prefix)] == prefix {
		return url[len(prefix):]
	}
	return url
}

func toNRGBA(c backend.RGBA) color.Color {
	return color.NRGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(x backend.Fl) backend.Fl {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
