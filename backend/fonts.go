package backend

// FontDescription is the resolved set of font properties for one styled
// element: concrete families in order of preference, a size in device
// independent pixels, a numeric weight and a style keyword.
type FontDescription struct {
	// Families lists the requested font families, most specific first.
	// The generic families "serif", "sans-serif" and "monospace" are always
	// considered available by providers.
	Families []string

	Size   Fl     // in px
	Weight int    // 100 to 900, 400 is normal, 700 is bold
	Style  string // "normal", "italic" or "oblique"
}

// Font is a sized and styled font resource, able to measure text.
// Glyph rendering internals are the provider's concern.
type Font interface {
	// Description returns the description the font was created from.
	Description() FontDescription

	// Measure returns the advance width and line height of [text],
	// in device independent pixels.
	Measure(text string) (width, height Fl)
}

// FontProvider creates font resources from resolved font properties.
// Providers are expected to cache: Font may be called with the same
// description once per styled element per frame.
type FontProvider interface {
	Font(desc FontDescription) (Font, error)
}
