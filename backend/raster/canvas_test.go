package raster

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/ravstrix/ClanLib/backend"
	"github.com/ravstrix/ClanLib/style"
	tu "github.com/ravstrix/ClanLib/utils/testutils"
)

func pixel(t *testing.T, c *Canvas, x, y int) [4]uint32 {
	t.Helper()
	r, g, b, a := c.Image().At(x, y).RGBA()
	return [4]uint32{r >> 8, g >> 8, b >> 8, a >> 8}
}

func TestCanvasSolidBackground(t *testing.T) {
	canvas := NewCanvas(20, 10)
	s := style.NewStyle()
	s.Set("background-color: red")
	c := &style.Cascade{Cascade: []*style.Style{s}}
	box := backend.Rect{X: 4, Y: 2, Width: 12, Height: 6}
	style.RenderBackground(c, canvas, style.Geometry{BorderBox: box, PaddingBox: box, ContentBox: box})

	tu.AssertEqual(t, pixel(t, canvas, 10, 5), [4]uint32{255, 0, 0, 255})
	// pixels outside the geometry stay untouched
	tu.AssertEqual(t, pixel(t, canvas, 1, 1)[3], uint32(0))
	tu.AssertEqual(t, pixel(t, canvas, 18, 9)[3], uint32(0))
}

func TestCanvasSize(t *testing.T) {
	canvas := NewCanvas(20, 10)
	w, h := canvas.Size()
	tu.AssertEqual(t, w, backend.Fl(20))
	tu.AssertEqual(t, h, backend.Fl(10))
}

func TestCanvasClip(t *testing.T) {
	canvas := NewCanvas(20, 10)
	red := backend.RGBA{R: 1, A: 1}

	canvas.PushClip(backend.Rect{Width: 10, Height: 10}, 0)
	canvas.FillRect(backend.Rect{Width: 20, Height: 10}, red)
	canvas.PopClip()

	tu.AssertEqual(t, pixel(t, canvas, 5, 5), [4]uint32{255, 0, 0, 255})
	tu.AssertEqual(t, pixel(t, canvas, 15, 5)[3], uint32(0))

	// fills reach the whole surface again once the clip is popped
	canvas.FillRect(backend.Rect{X: 12, Width: 4, Height: 10}, red)
	tu.AssertEqual(t, pixel(t, canvas, 13, 5)[3], uint32(255))
}

func TestCanvasLinearGradient(t *testing.T) {
	canvas := NewCanvas(20, 10)
	canvas.DrawGradient(backend.GradientLayout{
		Positions: []backend.Fl{0, 1},
		Colors:    []backend.RGBA{{R: 1, A: 1}, {B: 1, A: 1}},
		GradientKind: backend.GradientKind{
			Kind:   "linear",
			Coords: [6]backend.Fl{0, 5, 20, 5},
		},
	}, backend.Rect{Width: 20, Height: 10})

	left, right := pixel(t, canvas, 1, 5), pixel(t, canvas, 18, 5)
	if left[0] < 200 || left[2] > 55 {
		t.Fatalf("expected red near the start, got %v", left)
	}
	if right[2] < 200 || right[0] > 55 {
		t.Fatalf("expected blue near the end, got %v", right)
	}
}

func TestCanvasMissingImage(t *testing.T) {
	canvas := NewCanvas(8, 8)
	canvas.DrawImage("missing.png", backend.Rect{Width: 8, Height: 8})
	tu.AssertEqual(t, pixel(t, canvas, 4, 4)[3], uint32(0))
}

func TestFontProvider(t *testing.T) {
	p := NewFontProvider()
	if _, err := p.Font(backend.FontDescription{Families: []string{"serif"}}); err == nil {
		t.Fatal("expected an error with no registered fonts")
	}

	tu.AssertEqual(t, p.RegisterFont("Go Regular", goregular.TTF), nil)
	p.SetGeneric("sans-serif", "Go Regular")

	desc := backend.FontDescription{
		Families: []string{"missing family", "sans-serif"},
		Size:     14, Weight: 400, Style: "normal",
	}
	f, err := p.Font(desc)
	tu.AssertEqual(t, err, nil)
	tu.AssertEqual(t, f.Description(), desc)

	w, h := f.Measure("Hello")
	if w <= 0 || h <= 0 {
		t.Fatalf("bad metrics %g x %g", w, h)
	}

	// resolved faces are cached
	again, err := p.Font(desc)
	tu.AssertEqual(t, err, nil)
	tu.AssertEqual(t, again == f, true)
}

func TestRegisterFontRejectsGarbage(t *testing.T) {
	p := NewFontProvider()
	if err := p.RegisterFont("bad", []byte("not a truetype file")); err == nil {
		t.Fatal("expected a parse error")
	}
}
