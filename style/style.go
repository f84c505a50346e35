package style

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/parser"
	"github.com/gorilla/css/scanner"

	"github.com/ravstrix/ClanLib/logger"
	"github.com/ravstrix/ClanLib/utils"
)

// Style is the property set of one element: a mapping from property name to
// declared value, built incrementally from declaration text.
//
// A Style is held by the view that declares it and referenced (never copied)
// by the cascades resolving against it. Mutating a Style while another
// goroutine resolves a cascade referencing it is a data race; all style
// mutation and resolution are expected to happen on the user interface
// thread.
type Style struct {
	values map[string]SetValue
	images map[string]ImageValue
}

// NewStyle returns an empty property set.
func NewStyle() *Style {
	return &Style{
		values: map[string]SetValue{},
		images: map[string]ImageValue{},
	}
}

// Set parses inline style declaration text ("color: red; margin-top: 5px")
// and stores the declarations it contains. The syntax is the same as the
// one of an HTML style attribute.
//
// Set does not clear properties declared by earlier calls: distinct names
// accumulate, re-declaring a name overwrites it. A malformed declaration is
// dropped with a warning, without affecting its siblings in the same call.
//
// Additional arguments are substituted for %1, %2, ... placeholders in the
// text before parsing, so declarations can be built from runtime values:
//
//	style.Set("width: %1px; background-color: %2", width, style.ToRGBA(c))
func (s *Style) Set(properties string, args ...interface{}) {
	text := substituteArgs(properties, args)
	for _, chunk := range splitDeclarations(text) {
		if strings.TrimSpace(chunk) == "" {
			continue
		}
		decls, err := parser.ParseDeclarations(chunk + ";")
		if err != nil || len(decls) != 1 {
			logger.WarningLogger.Printf("dropping malformed declaration %q\n", strings.TrimSpace(chunk))
			continue
		}
		name := utils.AsciiLower(strings.TrimSpace(decls[0].Property))
		if !s.setDeclaration(name, decls[0].Value) {
			logger.WarningLogger.Printf("dropping malformed value for %q: %q\n", name, decls[0].Value)
		}
	}
}

// DeclaredValue returns the value stored under [name], or the undefined
// value if the property was never declared. No cascade or inheritance logic
// applies here; this is raw per element storage.
//
// Elements of array properties are addressed by indexed names, like
// "background-image[1]".
func (s *Style) DeclaredValue(name string) Value {
	return s.values[utils.AsciiLower(name)].Value()
}

// declaredImage returns the gradient/image composite stored under an image
// property name.
func (s *Style) declaredImage(name string) (ImageValue, bool) {
	img, ok := s.images[name]
	return img, ok
}

func (s *Style) setDeclaration(name, value string) bool {
	tokens, ok := scanTokens(value)
	if !ok || len(tokens) == 0 {
		return false
	}
	groups := splitCommas(tokens)

	// The background position and size shorthands fan out into per axis
	// array properties.
	switch name {
	case "background-position":
		return s.setBackgroundPosition(groups)
	case "background-size":
		return s.setBackgroundSize(groups)
	}

	def := lookupProperty(name)
	if def.Array {
		return s.setArray(name, groups)
	}
	if len(groups) != 1 {
		return false
	}
	v, rest, ok := parseComponentValue(name, groups[0])
	if !ok || len(rest) != 0 {
		return false
	}
	s.values[name] = v
	return true
}

func (s *Style) setArray(name string, groups [][]*scanner.Token) bool {
	// parse every layer before touching storage, so a malformed layer
	// leaves the previous declaration intact
	values := make([]SetValue, len(groups))
	images := make([]*ImageValue, len(groups))
	for i, group := range groups {
		v, img, ok := parseArrayElement(name, group)
		if !ok {
			return false
		}
		values[i], images[i] = v, img
	}

	s.clearArray(name)
	for i := range values {
		key := indexedName(name, i)
		s.values[key] = values[i]
		if images[i] != nil {
			s.images[key] = *images[i]
		}
	}
	return true
}

// parseArrayElement converts one comma group of an array property.
// Image properties may yield a gradient/image composite alongside the
// stored marker value.
func parseArrayElement(name string, group []*scanner.Token) (SetValue, *ImageValue, bool) {
	if len(group) == 0 {
		return SetValue{}, nil, false
	}
	if name == "font-family" {
		return parseFontFamily(group)
	}
	if first := group[0]; first.Type == scanner.TokenFunction {
		if fn := functionName(first); fn == "linear-gradient" || fn == "radial-gradient" {
			args, rest, ok := takeFunctionArgs(group[1:])
			if !ok || len(rest) != 0 {
				return SetValue{}, nil, false
			}
			g, ok := parseGradient(fn, args)
			if !ok {
				return SetValue{}, nil, false
			}
			return g.Type, &ImageValue{Gradient: g}, true
		}
	}
	v, rest, ok := parseComponentValue(name, group)
	if !ok || len(rest) != 0 {
		return SetValue{}, nil, false
	}
	if v.Type == TypeURL {
		return v, &ImageValue{Image: v}, true
	}
	return v, nil, true
}

// parseFontFamily folds a comma group into a single family value: either a
// quoted string or a sequence of idents joined by spaces.
func parseFontFamily(group []*scanner.Token) (SetValue, *ImageValue, bool) {
	if group[0].Type == scanner.TokenString {
		if len(group) != 1 {
			return SetValue{}, nil, false
		}
		return SetValue{Type: TypeString, Text: unquote(group[0].Value)}, nil, true
	}
	var parts []string
	for _, tok := range group {
		if tok.Type != scanner.TokenIdent {
			return SetValue{}, nil, false
		}
		parts = append(parts, tok.Value)
	}
	return SetValue{Type: TypeKeyword, Text: utils.AsciiLower(strings.Join(parts, " "))}, nil, true
}

type axisPair struct{ x, y SetValue }

// axisComponents reads the one or two components of a per axis layer.
func axisComponents(name string, group []*scanner.Token) ([]SetValue, bool) {
	var components []SetValue
	rest := group
	for len(rest) > 0 && len(components) < 2 {
		v, r, ok := parseComponentValue(name, rest)
		if !ok {
			return nil, false
		}
		components = append(components, v)
		rest = r
	}
	if len(rest) != 0 || len(components) == 0 {
		return nil, false
	}
	return components, true
}

func (s *Style) storePerAxis(name string, pairs []axisPair) {
	s.clearArray(name + "-x")
	s.clearArray(name + "-y")
	for i, pair := range pairs {
		s.values[indexedName(name+"-x", i)] = pair.x
		s.values[indexedName(name+"-y", i)] = pair.y
	}
}

// positionComponent resolves one background-position component: an edge
// keyword becomes its percentage, lengths and percentages pass through.
func positionComponent(v SetValue) (SetValue, bool) {
	if v.Type == TypeKeyword {
		if pct, in := positionKeywords[v.Text]; in {
			return SetValue{Type: TypePercentage, Number: pct}, true
		}
		return SetValue{}, false
	}
	return v, true
}

// setBackgroundPosition stores "background-position: x y, ..." as the
// background-position-x/-y array properties. Edge keywords bind to their
// own axis: "top" alone means x 50%, y 0%, and a keyword pair may come in
// either order. An unset axis defaults to center.
func (s *Style) setBackgroundPosition(groups [][]*scanner.Token) bool {
	center := SetValue{Type: TypePercentage, Number: 50}
	pairs := make([]axisPair, len(groups))
	for i, group := range groups {
		components, ok := axisComponents("background-position", group)
		if !ok {
			return false
		}
		pair := axisPair{x: center, y: center}
		if len(components) == 1 {
			v := components[0]
			resolved, ok := positionComponent(v)
			if !ok {
				return false
			}
			if v.IsKeyword("top", "bottom") {
				pair.y = resolved
			} else {
				pair.x = resolved
			}
		} else {
			a, b := components[0], components[1]
			if a.IsKeyword("top", "bottom") || b.IsKeyword("left", "right") {
				a, b = b, a
			}
			if a.IsKeyword("top", "bottom") || b.IsKeyword("left", "right") {
				return false
			}
			var ok bool
			if pair.x, ok = positionComponent(a); !ok {
				return false
			}
			if pair.y, ok = positionComponent(b); !ok {
				return false
			}
		}
		pairs[i] = pair
	}
	s.storePerAxis("background-position", pairs)
	return true
}

// setBackgroundSize stores "background-size: x y, ..." as the
// background-size-x/-y array properties. A single cover/contain keyword
// covers both axes; a single other component leaves the y axis on auto.
func (s *Style) setBackgroundSize(groups [][]*scanner.Token) bool {
	pairs := make([]axisPair, len(groups))
	for i, group := range groups {
		components, ok := axisComponents("background-size", group)
		if !ok {
			return false
		}
		pair := axisPair{x: components[0], y: SetValue{Type: TypeKeyword, Text: "auto"}}
		if len(components) == 2 {
			pair.y = components[1]
		} else if components[0].IsKeyword("cover", "contain") {
			pair.y = components[0]
		}
		pairs[i] = pair
	}
	s.storePerAxis("background-size", pairs)
	return true
}

func (s *Style) clearArray(name string) {
	for i := 0; ; i++ {
		key := indexedName(name, i)
		if _, in := s.values[key]; !in {
			return
		}
		delete(s.values, key)
		delete(s.images, key)
	}
}

// substituteArgs replaces %1, %2, ... placeholders with the stringified
// arguments. %% escapes a literal percent sign.
func substituteArgs(text string, args []interface{}) string {
	if len(args) == 0 {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c != '%' || i+1 == len(text) {
			b.WriteByte(c)
			continue
		}
		if text[i+1] == '%' {
			b.WriteByte('%')
			i++
			continue
		}
		j := i + 1
		for j < len(text) && text[j] >= '0' && text[j] <= '9' {
			j++
		}
		if j == i+1 {
			b.WriteByte(c)
			continue
		}
		index := 0
		for _, d := range text[i+1 : j] {
			index = index*10 + int(d-'0')
		}
		if index >= 1 && index <= len(args) {
			b.WriteString(fmt.Sprint(args[index-1]))
		}
		i = j - 1
	}
	return b.String()
}

// splitDeclarations splits declaration text on semicolons, ignoring the
// ones nested in quotes or parentheses (as in data urls).
func splitDeclarations(text string) []string {
	var (
		out   []string
		start int
		depth int
		quote byte
	)
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case quote != 0:
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '(':
			depth++
		case c == ')':
			if depth > 0 {
				depth--
			}
		case c == ';' && depth == 0:
			out = append(out, text[start:i])
			start = i + 1
		}
	}
	return append(out, text[start:])
}
