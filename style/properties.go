package style

import (
	"fmt"
)

// PropertyDefinition is the static resolution policy of one property:
// whether an undeclared value falls back to the parent cascade or to the
// initial value, and whether the property holds a comma separated list.
// Inheritance is a per property policy, so it is table driven here and
// consulted uniformly by [Cascade.SpecifiedValue], never inferred from the
// value type.
type PropertyDefinition struct {
	Initial   Value
	Inherited bool
	Array     bool
}

var defaultFontSize = Fl(16) // medium, in px

var properties = map[string]PropertyDefinition{
	// text and font, inherited
	"color":          {Initial: FromColor(NewColorf(0, 0, 0)), Inherited: true},
	"font-family":    {Initial: FromKeyword("sans-serif"), Inherited: true, Array: true},
	"font-size":      {Initial: FromKeyword("medium"), Inherited: true},
	"font-weight":    {Initial: FromKeyword("normal"), Inherited: true},
	"font-style":     {Initial: FromKeyword("normal"), Inherited: true},
	"line-height":    {Initial: FromKeyword("normal"), Inherited: true},
	"letter-spacing": {Initial: FromKeyword("normal"), Inherited: true},
	"word-spacing":   {Initial: FromKeyword("normal"), Inherited: true},
	"text-align":     {Initial: FromKeyword("left"), Inherited: true},
	"visibility":     {Initial: FromKeyword("visible"), Inherited: true},

	"image-resolution":  {Initial: FromResolution(1, Dppx), Inherited: true},
	"image-orientation": {Initial: FromAngle(0, Deg), Inherited: true},

	// box
	"width":      {Initial: FromKeyword("auto")},
	"height":     {Initial: FromKeyword("auto")},
	"min-width":  {Initial: FromLength(0, Px)},
	"min-height": {Initial: FromLength(0, Px)},
	"max-width":  {Initial: FromKeyword("none")},
	"max-height": {Initial: FromKeyword("none")},

	"margin-top":    {Initial: FromLength(0, Px)},
	"margin-right":  {Initial: FromLength(0, Px)},
	"margin-bottom": {Initial: FromLength(0, Px)},
	"margin-left":   {Initial: FromLength(0, Px)},

	"padding-top":    {Initial: FromLength(0, Px)},
	"padding-right":  {Initial: FromLength(0, Px)},
	"padding-bottom": {Initial: FromLength(0, Px)},
	"padding-left":   {Initial: FromLength(0, Px)},

	"opacity": {Initial: FromNumber(1)},

	// borders
	"border-top-width":    {Initial: FromKeyword("medium")},
	"border-right-width":  {Initial: FromKeyword("medium")},
	"border-bottom-width": {Initial: FromKeyword("medium")},
	"border-left-width":   {Initial: FromKeyword("medium")},

	"border-top-style":    {Initial: FromKeyword("none")},
	"border-right-style":  {Initial: FromKeyword("none")},
	"border-bottom-style": {Initial: FromKeyword("none")},
	"border-left-style":   {Initial: FromKeyword("none")},

	"border-top-color":    {Initial: FromKeyword("currentcolor")},
	"border-right-color":  {Initial: FromKeyword("currentcolor")},
	"border-bottom-color": {Initial: FromKeyword("currentcolor")},
	"border-left-color":   {Initial: FromKeyword("currentcolor")},

	"border-top-left-radius":     {Initial: FromLength(0, Px)},
	"border-top-right-radius":    {Initial: FromLength(0, Px)},
	"border-bottom-left-radius":  {Initial: FromLength(0, Px)},
	"border-bottom-right-radius": {Initial: FromLength(0, Px)},

	// backgrounds, one entry per layer
	"background-color":      {Initial: FromColor(Colorf{})},
	"background-image":      {Initial: FromKeyword("none"), Array: true},
	"background-repeat":     {Initial: FromKeyword("repeat"), Array: true},
	"background-attachment": {Initial: FromKeyword("scroll"), Array: true},
	"background-position-x": {Initial: FromPercentage(0), Array: true},
	"background-position-y": {Initial: FromPercentage(0), Array: true},
	"background-size-x":     {Initial: FromKeyword("auto"), Array: true},
	"background-size-y":     {Initial: FromKeyword("auto"), Array: true},
	"background-clip":       {Initial: FromKeyword("border-box"), Array: true},
	"background-origin":     {Initial: FromKeyword("padding-box"), Array: true},

	// transitions
	"transition-duration": {Initial: FromTime(0, S), Array: true},
	"transition-delay":    {Initial: FromTime(0, S), Array: true},
}

// lookupProperty resolves the definition for a (possibly indexed) property
// name. Unknown properties resolve as non inherited with an undefined
// initial value.
func lookupProperty(name string) PropertyDefinition {
	def, ok := properties[baseName(name)]
	if !ok {
		return PropertyDefinition{}
	}
	return def
}

// indexedName returns the storage name of element [index] of an array
// property ("background-image[1]").
func indexedName(name string, index int) string {
	return fmt.Sprintf("%s[%d]", name, index)
}

// baseName strips an eventual [index] suffix.
func baseName(name string) string {
	if n := len(name); n > 0 && name[n-1] == ']' {
		for i := n - 2; i >= 0; i-- {
			if name[i] == '[' {
				return name[:i]
			}
		}
	}
	return name
}

// These are unspecified, other than 'thin' <= 'medium' <= 'thick'.
// Values are in pixels.
var borderWidthKeywords = map[string]Fl{
	"thin":   1,
	"medium": 3,
	"thick":  5,
}

// Value in pixels of font-size for <absolute-size> keywords: 16px for
// medium, and scaling factors given in CSS3 for others.
var (
	fontSizeKeywords = map[string]Fl{
		"xx-small": defaultFontSize * 3 / 5,
		"x-small":  defaultFontSize * 3 / 4,
		"small":    defaultFontSize * 8 / 9,
		"medium":   defaultFontSize,
		"large":    defaultFontSize * 6 / 5,
		"x-large":  defaultFontSize * 3 / 2,
		"xx-large": defaultFontSize * 2,
	}
	fontSizeKeywordsOrder = []string{"xx-small", "x-small", "small", "medium", "large", "x-large", "xx-large"}
)

// http://www.w3.org/TR/CSS21/fonts.html#propdef-font-weight
var fontWeightRelative = struct {
	bolder, lighter map[int]int
}{
	bolder: map[int]int{
		100: 400, 200: 400, 300: 400,
		400: 700, 500: 700,
		600: 900, 700: 900, 800: 900, 900: 900,
	},
	lighter: map[int]int{
		100: 100, 200: 100, 300: 100, 400: 100, 500: 100,
		600: 400, 700: 400,
		800: 700, 900: 700,
	},
}
