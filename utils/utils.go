package utils

var Has = struct{}{}

type Set map[string]struct{}

func (s Set) Add(key string) {
	s[key] = Has
}

func (s Set) Has(key string) bool {
	_, in := s[key]
	return in
}

func NewSet(values ...string) Set {
	s := make(Set, len(values))
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// AsciiLower returns [s] with the ASCII letters A-Z lowercased.
// Style property names and keywords are ASCII case insensitive, but
// unicode.ToLower would also fold non ASCII characters found in strings.
func AsciiLower(s string) string {
	rs := []byte(s)
	for index, c := range rs {
		if 'A' <= c && c <= 'Z' {
			rs[index] = c + 'a' - 'A'
		}
	}
	return string(rs)
}

func IsIn(l []string, s string) bool {
	for _, e := range l {
		if e == s {
			return true
		}
	}
	return false
}
