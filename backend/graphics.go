// Package backend defines a common interface, providing graphics primitives.
//
// It aims at supporting the painting operations needed by styled views in an
// output-agnostic manner, so that various output formats may be targeted
// (GUI canvas or raster image for instance).
package backend

import (
	"github.com/ravstrix/ClanLib/utils"
)

type Fl = utils.Fl

// Rect is an axis aligned rectangle, in device independent pixels.
type Rect struct {
	X, Y, Width, Height Fl
}

// IsEmpty returns true for rectangles without any area.
func (r Rect) IsEmpty() bool { return r.Width <= 0 || r.Height <= 0 }

// RGBA is a color with non premultiplied alpha,
// with each component in the range [0, 1].
type RGBA struct {
	R, G, B, A Fl
}

type GradientKind struct {
	// Kind is either:
	// 	"linear": Coords is (x0, y0, x1, y1)
	// 			  coordinates of the starting and ending points.
	// 	"radial": Coords is (cx, cy, radius0, cx, cy, radius1)
	// 			  coordinates of the starting and ending circles
	Kind   string
	Coords [6]Fl
}

// GradientLayout is a gradient resolved against a concrete painting area:
// stop positions are normalized and colors are final.
type GradientLayout struct {
	// Positions is a list of floats in [0..1].
	// 0 at the starting point, 1 at the ending point.
	Positions []Fl
	Colors    []RGBA

	GradientKind

	// used for ellipse radial gradients. 1 otherwise.
	ScaleY Fl
}

// Canvas represents a 2D surface which is the target of painting operations.
//
// The operations are deliberately high level: a styled view only ever fills
// areas, clips to its geometry and blits images, so backends are free to map
// them to paths, GPU quads or plain pixel writes.
type Canvas interface {
	// Size returns the dimensions of the surface, in device independent pixels.
	Size() (width, height Fl)

	// FillRect fills the given rectangle with a plain color.
	FillRect(r Rect, color RGBA)

	// FillRoundedRect fills the given rectangle, with circular corners
	// of the given radius.
	FillRoundedRect(r Rect, radius Fl, color RGBA)

	// StrokeRect strokes the boundary of the given rectangle, with circular
	// corners of the given radius, using the given line width.
	// The stroke is centered on the rectangle boundary.
	StrokeRect(r Rect, radius, lineWidth Fl, color RGBA)

	// PushClip intersects the current clip region with the given rounded
	// rectangle, saving the previous region. A radius of 0 clips to the
	// plain rectangle.
	PushClip(r Rect, radius Fl)

	// PopClip restores the clip region saved by the matching PushClip.
	PopClip()

	// DrawGradient paints the given resolved gradient over the rectangle.
	DrawGradient(gradient GradientLayout, r Rect)

	// DrawImage blits the image identified by [url] with its top-left corner
	// at (r.X, r.Y), scaled to (r.Width, r.Height). How urls are resolved is
	// backend specific; a failed load must degrade to a no-op.
	DrawImage(url string, r Rect)
}
