package style

import (
	"strconv"
	"strings"

	"github.com/gorilla/css/scanner"

	"github.com/ravstrix/ClanLib/utils"
)

// Declaration values are tokenized with the gorilla/css scanner and folded
// into [SetValue]s here. The grammar accepted is the value part of the CSS
// core syntax: idents, dimensions, percentages, numbers, strings, urls, hash
// colors and functions. Anything else makes the declaration malformed, which
// the caller drops.

// scanTokens tokenizes [value], skipping whitespace and comments.
// It returns false if the scanner reported an error.
func scanTokens(value string) ([]*scanner.Token, bool) {
	sc := scanner.New(value)
	var out []*scanner.Token
	for {
		tok := sc.Next()
		switch tok.Type {
		case scanner.TokenEOF:
			return out, true
		case scanner.TokenError:
			return nil, false
		case scanner.TokenS, scanner.TokenComment:
			// not significant
		default:
			out = append(out, tok)
		}
	}
}

// splitCommas splits a token list on top level commas, leaving commas
// nested inside functions untouched.
func splitCommas(tokens []*scanner.Token) [][]*scanner.Token {
	var (
		out     [][]*scanner.Token
		current []*scanner.Token
		depth   int
	)
	for _, tok := range tokens {
		switch {
		case tok.Type == scanner.TokenFunction:
			depth++
		case tok.Type == scanner.TokenChar && tok.Value == "(":
			depth++
		case tok.Type == scanner.TokenChar && tok.Value == ")":
			depth--
		case tok.Type == scanner.TokenChar && tok.Value == "," && depth == 0:
			out = append(out, current)
			current = nil
			continue
		}
		current = append(current, tok)
	}
	return append(out, current)
}

// splitNumberUnit splits a dimension token value ("12.5px") into its
// numeric part and its unit.
func splitNumberUnit(s string) (Fl, string, bool) {
	end := len(s)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= '0' && c <= '9') || c == '.' || c == '+' || c == '-' ||
			// exponent part of scientific notation
			((c == 'e' || c == 'E') && i+1 < len(s) && (s[i+1] == '+' || s[i+1] == '-' || (s[i+1] >= '0' && s[i+1] <= '9'))) {
			continue
		}
		end = i
		break
	}
	f, err := strconv.ParseFloat(s[:end], 32)
	if err != nil {
		return 0, "", false
	}
	return Fl(f), s[end:], true
}

// unquote strips the quotes of a string token and resolves the escaped
// quote characters inside.
func unquote(s string) string {
	if len(s) < 2 {
		return s
	}
	quote := s[0]
	if quote != '"' && quote != '\'' {
		return s
	}
	s = s[1 : len(s)-1]
	s = strings.ReplaceAll(s, `\`+string(quote), string(quote))
	return s
}

// unquoteURL extracts the target of an url token: url( <string> | <plain> ).
func unquoteURL(s string) string {
	open := strings.IndexByte(s, '(')
	if open == -1 || !strings.HasSuffix(s, ")") {
		return s
	}
	inner := strings.TrimSpace(s[open+1 : len(s)-1])
	return unquote(inner)
}

// functionName returns the lowercased name of a function token ("rgb(" -> "rgb").
func functionName(tok *scanner.Token) string {
	return utils.AsciiLower(strings.TrimSuffix(tok.Value, "("))
}

// isColorProperty reports whether idents in the property's value should be
// tried as color names before falling back to keywords.
func isColorProperty(name string) bool {
	return name == "color" || strings.HasSuffix(name, "-color")
}

// takeFunctionArgs consumes the argument tokens of a function, [tokens]
// starting just after the function token, up to the matching closing
// parenthesis. It returns the arguments split on top level commas and the
// remaining tokens.
func takeFunctionArgs(tokens []*scanner.Token) (args [][]*scanner.Token, rest []*scanner.Token, ok bool) {
	depth := 1
	for i, tok := range tokens {
		switch {
		case tok.Type == scanner.TokenFunction:
			depth++
		case tok.Type == scanner.TokenChar && tok.Value == "(":
			depth++
		case tok.Type == scanner.TokenChar && tok.Value == ")":
			depth--
			if depth == 0 {
				return splitCommas(tokens[:i]), tokens[i+1:], true
			}
		}
	}
	return nil, nil, false
}

// parseColorValue interprets a component as a color: a name, a hash
// notation or an rgb()/rgba() function.
func parseColorValue(tokens []*scanner.Token) (SetValue, []*scanner.Token, bool) {
	if len(tokens) == 0 {
		return SetValue{}, nil, false
	}
	tok := tokens[0]
	switch tok.Type {
	case scanner.TokenIdent:
		if c, ok := parseNamedColor(tok.Value); ok {
			return SetValue{Type: TypeColor, Color: c}, tokens[1:], true
		}
	case scanner.TokenHash:
		if c, ok := parseHexColor(tok.Value); ok {
			return SetValue{Type: TypeColor, Color: c}, tokens[1:], true
		}
	case scanner.TokenFunction:
		if name := functionName(tok); name == "rgb" || name == "rgba" {
			args, rest, ok := takeFunctionArgs(tokens[1:])
			if !ok {
				return SetValue{}, nil, false
			}
			strs := make([]string, len(args))
			for i, arg := range args {
				var b strings.Builder
				for _, t := range arg {
					b.WriteString(t.Value)
				}
				strs[i] = b.String()
			}
			if c, ok := parseRGBFunction(strs); ok {
				return SetValue{Type: TypeColor, Color: c}, rest, true
			}
		}
	}
	return SetValue{}, nil, false
}

// parseComponentValue converts the leading component of [tokens] into a
// SetValue, returning the unconsumed tokens. [property] drives the ident
// disambiguation between keywords and color names.
func parseComponentValue(property string, tokens []*scanner.Token) (SetValue, []*scanner.Token, bool) {
	if len(tokens) == 0 {
		return SetValue{}, nil, false
	}
	tok := tokens[0]
	// the scanner emits the sign of negative values as a separate char token
	if tok.Type == scanner.TokenChar && (tok.Value == "-" || tok.Value == "+") {
		v, rest, ok := parseComponentValue(property, tokens[1:])
		if !ok {
			return SetValue{}, nil, false
		}
		switch v.Type {
		case TypeNumber, TypePercentage, TypeLength, TypeAngle, TypeTime, TypeFrequency, TypeResolution:
			if tok.Value == "-" {
				v.Number = -v.Number
			}
			return v, rest, true
		}
		return SetValue{}, nil, false
	}
	switch tok.Type {
	case scanner.TokenNumber:
		f, err := strconv.ParseFloat(tok.Value, 32)
		if err != nil {
			return SetValue{}, nil, false
		}
		return SetValue{Type: TypeNumber, Number: Fl(f)}, tokens[1:], true

	case scanner.TokenPercentage:
		f, err := strconv.ParseFloat(strings.TrimSuffix(tok.Value, "%"), 32)
		if err != nil {
			return SetValue{}, nil, false
		}
		return SetValue{Type: TypePercentage, Number: Fl(f)}, tokens[1:], true

	case scanner.TokenDimension:
		number, unit, ok := splitNumberUnit(tok.Value)
		if !ok {
			return SetValue{}, nil, false
		}
		dim, typ, ok := valueTypeForUnit(unit)
		if !ok {
			return SetValue{}, nil, false
		}
		return SetValue{Type: typ, Number: number, Dimension: dim}, tokens[1:], true

	case scanner.TokenString:
		return SetValue{Type: TypeString, Text: unquote(tok.Value)}, tokens[1:], true

	case scanner.TokenURI:
		return SetValue{Type: TypeURL, Text: unquoteURL(tok.Value)}, tokens[1:], true

	case scanner.TokenHash:
		if c, ok := parseHexColor(tok.Value); ok {
			return SetValue{Type: TypeColor, Color: c}, tokens[1:], true
		}
		return SetValue{}, nil, false

	case scanner.TokenIdent:
		ident := utils.AsciiLower(tok.Value)
		if isColorProperty(property) || ident == "transparent" {
			if c, ok := parseNamedColor(ident); ok {
				return SetValue{Type: TypeColor, Color: c}, tokens[1:], true
			}
		}
		return SetValue{Type: TypeKeyword, Text: ident}, tokens[1:], true

	case scanner.TokenFunction:
		if v, rest, ok := parseColorValue(tokens); ok {
			return v, rest, ok
		}
		return SetValue{}, nil, false

	default:
		return SetValue{}, nil, false
	}
}
