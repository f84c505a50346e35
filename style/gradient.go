package style

import (
	"github.com/gorilla/css/scanner"
)

// GradientStop is one color stop in a gradient. Position is a percentage or
// a length, or undefined when the declaration left it out (the painting
// backend then distributes the stop evenly between its neighbours).
type GradientStop struct {
	Color    SetValue
	Position SetValue
}

// Gradient describes a linear or radial gradient. Stops are kept in
// declaration order, which is the paint order along the gradient axis.
type Gradient struct {
	Type            SetValue // keyword "linear-gradient" or "radial-gradient"
	LinearAngle     SetValue // angle, clockwise from pointing up
	RadialShape     SetValue // keyword "circle" or "ellipse"
	RadialSizeX     SetValue
	RadialSizeY     SetValue
	RadialPositionX SetValue
	RadialPositionY SetValue
	Stops           []GradientStop
}

// IsLinear returns true for linear gradients.
func (g *Gradient) IsLinear() bool { return g.Type.IsKeyword("linear-gradient") }

// ImageValue is the composite value of an image typed property: either a
// direct image reference (an url value) or a gradient.
type ImageValue struct {
	Image    SetValue // url value, undefined for gradients
	Gradient Gradient
}

// IsGradient returns true when the value holds a gradient rather than a
// direct image reference.
func (i ImageValue) IsGradient() bool { return !i.Gradient.Type.IsUndefined() }

// Angles for the "to <side>" syntax, in degrees.
var sideAngles = map[string]Fl{
	"top":          0,
	"top right":    45,
	"right top":    45,
	"right":        90,
	"bottom right": 135,
	"right bottom": 135,
	"bottom":       180,
	"bottom left":  225,
	"left bottom":  225,
	"left":         270,
	"top left":     315,
	"left top":     315,
}

// Percentages for radial position keywords.
var positionKeywords = map[string]Fl{
	"left":   0,
	"top":    0,
	"center": 50,
	"right":  100,
	"bottom": 100,
}

func keywordOf(tok *scanner.Token) (string, bool) {
	if tok.Type != scanner.TokenIdent {
		return "", false
	}
	v, _, ok := parseComponentValue("", []*scanner.Token{tok})
	if !ok || v.Type != TypeKeyword {
		return "", false
	}
	return v.Text, true
}

// parseLinearDirection interprets the first argument group of a linear
// gradient: an angle ("45deg") or a side ("to bottom left"). It returns
// false when the group is not a direction, in which case it is the first
// color stop and the default direction (to bottom) applies.
func parseLinearDirection(group []*scanner.Token) (SetValue, bool) {
	if len(group) == 0 {
		return SetValue{}, false
	}
	if v, rest, ok := parseComponentValue("", group); ok && v.IsAngle() && len(rest) == 0 {
		return v, true
	}
	if kw, ok := keywordOf(group[0]); ok && kw == "to" {
		side := ""
		for _, tok := range group[1:] {
			kw, ok := keywordOf(tok)
			if !ok {
				return SetValue{}, false
			}
			if side != "" {
				side += " "
			}
			side += kw
		}
		if angle, ok := sideAngles[side]; ok {
			return SetValue{Type: TypeAngle, Number: angle, Dimension: Deg}, true
		}
	}
	return SetValue{}, false
}

// parseRadialPrelude interprets the first argument group of a radial
// gradient: "[circle|ellipse] [<size-x> [<size-y>]] [at <pos-x> [<pos-y>]]".
// As for linear directions, a group which is not a prelude is a color stop.
func parseRadialPrelude(group []*scanner.Token, g *Gradient) bool {
	rest := group
	matched := false
	if len(rest) > 0 {
		if kw, ok := keywordOf(rest[0]); ok && (kw == "circle" || kw == "ellipse") {
			g.RadialShape = SetValue{Type: TypeKeyword, Text: kw}
			rest = rest[1:]
			matched = true
		}
	}
	// explicit sizes, before an eventual "at"
	for _, target := range []*SetValue{&g.RadialSizeX, &g.RadialSizeY} {
		if len(rest) == 0 {
			break
		}
		if kw, ok := keywordOf(rest[0]); ok && kw == "at" {
			break
		}
		v, r, ok := parseComponentValue("", rest)
		if !ok || !(v.IsLength() || v.IsPercentage()) {
			break
		}
		*target = v
		rest = r
		matched = true
	}
	if !g.RadialSizeY.IsUndefined() && g.RadialSizeX.IsUndefined() {
		g.RadialSizeX = g.RadialSizeY
	}
	if len(rest) > 0 {
		kw, ok := keywordOf(rest[0])
		if !ok || kw != "at" {
			return matched && len(rest) == 0
		}
		rest = rest[1:]
		for _, target := range []*SetValue{&g.RadialPositionX, &g.RadialPositionY} {
			if len(rest) == 0 {
				break
			}
			if kw, ok := keywordOf(rest[0]); ok {
				if p, in := positionKeywords[kw]; in {
					*target = SetValue{Type: TypePercentage, Number: p}
					rest = rest[1:]
					continue
				}
				return false
			}
			v, r, ok := parseComponentValue("", rest)
			if !ok || !(v.IsLength() || v.IsPercentage()) {
				return false
			}
			*target = v
			rest = r
		}
		if g.RadialPositionY.IsUndefined() {
			g.RadialPositionY = SetValue{Type: TypePercentage, Number: 50}
		}
		matched = true
	}
	return matched && len(rest) == 0
}

// parseGradientStop reads "color [position]".
func parseGradientStop(group []*scanner.Token) (GradientStop, bool) {
	color, rest, ok := parseColorValue(group)
	if !ok {
		return GradientStop{}, false
	}
	stop := GradientStop{Color: color}
	if len(rest) > 0 {
		pos, rest2, ok := parseComponentValue("", rest)
		if !ok || len(rest2) != 0 || !(pos.IsLength() || pos.IsPercentage()) {
			return GradientStop{}, false
		}
		stop.Position = pos
	}
	return stop, true
}

// parseGradient builds a gradient from the comma separated argument groups
// of a linear-gradient() or radial-gradient() function.
func parseGradient(name string, groups [][]*scanner.Token) (Gradient, bool) {
	g := Gradient{Type: SetValue{Type: TypeKeyword, Text: name}}
	stops := groups

	switch name {
	case "linear-gradient":
		g.LinearAngle = SetValue{Type: TypeAngle, Number: 180, Dimension: Deg}
		if len(groups) > 0 {
			if angle, ok := parseLinearDirection(groups[0]); ok {
				g.LinearAngle = angle
				stops = groups[1:]
			}
		}
	case "radial-gradient":
		g.RadialShape = SetValue{Type: TypeKeyword, Text: "ellipse"}
		g.RadialPositionX = SetValue{Type: TypePercentage, Number: 50}
		g.RadialPositionY = SetValue{Type: TypePercentage, Number: 50}
		if len(groups) > 0 && parseRadialPrelude(groups[0], &g) {
			stops = groups[1:]
		}
	default:
		return Gradient{}, false
	}

	for _, group := range stops {
		stop, ok := parseGradientStop(group)
		if !ok {
			return Gradient{}, false
		}
		g.Stops = append(g.Stops, stop)
	}
	if len(g.Stops) < 2 {
		return Gradient{}, false
	}
	return g, true
}
