package style

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ravstrix/ClanLib/utils"
)

// Colorf is a color with non premultiplied alpha, with each component in
// the range [0, 1]. The zero value is fully transparent black.
type Colorf struct {
	R, G, B, A Fl
}

// NewColorf returns an opaque color.
func NewColorf(r, g, b Fl) Colorf { return Colorf{R: r, G: g, B: b, A: 1} }

// IsTransparent returns true for colors which would not paint anything.
func (c Colorf) IsTransparent() bool { return c.A <= 0 }

// ToRGBA generates an "rgba(...)" string for the given color, suitable for
// inclusion in declaration text passed to [Style.Set].
func ToRGBA(c Colorf) string {
	return fmt.Sprintf("rgba(%d,%d,%d,%g)",
		int(utils.Clamp(Fl(math.Round(float64(c.R*255))), 0, 255)),
		int(utils.Clamp(Fl(math.Round(float64(c.G*255))), 0, 255)),
		int(utils.Clamp(Fl(math.Round(float64(c.B*255))), 0, 255)),
		utils.Clamp(c.A, 0, 1))
}

// The CSS2 named colors plus the handful of extended names views actually
// use. Unknown names simply fail to parse as color and stay keywords.
var namedColors = map[string]Colorf{
	"black":   NewColorf(0, 0, 0),
	"silver":  NewColorf(192/255., 192/255., 192/255.),
	"gray":    NewColorf(128/255., 128/255., 128/255.),
	"grey":    NewColorf(128/255., 128/255., 128/255.),
	"white":   NewColorf(1, 1, 1),
	"maroon":  NewColorf(128/255., 0, 0),
	"red":     NewColorf(1, 0, 0),
	"purple":  NewColorf(128/255., 0, 128/255.),
	"fuchsia": NewColorf(1, 0, 1),
	"magenta": NewColorf(1, 0, 1),
	"green":   NewColorf(0, 128/255., 0),
	"lime":    NewColorf(0, 1, 0),
	"olive":   NewColorf(128/255., 128/255., 0),
	"yellow":  NewColorf(1, 1, 0),
	"navy":    NewColorf(0, 0, 128/255.),
	"blue":    NewColorf(0, 0, 1),
	"teal":    NewColorf(0, 128/255., 128/255.),
	"aqua":    NewColorf(0, 1, 1),
	"cyan":    NewColorf(0, 1, 1),
	"orange":  NewColorf(1, 165/255., 0),
	"brown":   NewColorf(165/255., 42/255., 42/255.),
	"pink":    NewColorf(1, 192/255., 203/255.),

	"transparent": {},
}

// parseNamedColor resolves a color name ("red", "transparent").
func parseNamedColor(name string) (Colorf, bool) {
	c, ok := namedColors[utils.AsciiLower(name)]
	return c, ok
}

// parseHexColor resolves "#rgb" and "#rrggbb" notations.
func parseHexColor(hex string) (Colorf, bool) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return Colorf{}, false
	}
	return NewColorf(Fl(c.R), Fl(c.G), Fl(c.B)), true
}

// parseRGBFunction resolves the arguments of an rgb() or rgba() function:
// three integer components in [0, 255] and an optional alpha in [0, 1].
func parseRGBFunction(args []string) (Colorf, bool) {
	if len(args) != 3 && len(args) != 4 {
		return Colorf{}, false
	}
	var comps [4]Fl
	comps[3] = 1
	for i, arg := range args {
		f, err := strconv.ParseFloat(strings.TrimSpace(arg), 32)
		if err != nil {
			return Colorf{}, false
		}
		if i < 3 {
			comps[i] = utils.Clamp(Fl(f)/255, 0, 1)
		} else {
			comps[i] = utils.Clamp(Fl(f), 0, 1)
		}
	}
	return Colorf{R: comps[0], G: comps[1], B: comps[2], A: comps[3]}, true
}
