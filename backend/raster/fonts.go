package raster

import (
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/ravstrix/ClanLib/backend"
	"github.com/ravstrix/ClanLib/utils"
)

var _ backend.FontProvider = (*FontProvider)(nil)

// FontProvider selects fonts among truetype files registered by family
// name. Resolved faces are cached per description.
type FontProvider struct {
	families map[string]*truetype.Font
	generics map[string]string // generic family name to registered family
	cache    map[string]*rasterFont
}

func NewFontProvider() *FontProvider {
	return &FontProvider{
		families: map[string]*truetype.Font{},
		generics: map[string]string{},
		cache:    map[string]*rasterFont{},
	}
}

// RegisterFont parses the truetype font [data] and makes it selectable
// under [family].
func (p *FontProvider) RegisterFont(family string, data []byte) error {
	f, err := truetype.Parse(data)
	if err != nil {
		return fmt.Errorf("registering font %q: %w", family, err)
	}
	p.families[utils.AsciiLower(family)] = f
	return nil
}

// RegisterFontFile loads and registers the truetype file at [path].
func (p *FontProvider) RegisterFontFile(family, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("registering font %q: %w", family, err)
	}
	return p.RegisterFont(family, data)
}

// SetGeneric routes a generic family (serif, sans-serif, monospace) to a
// registered family.
func (p *FontProvider) SetGeneric(generic, family string) {
	p.generics[utils.AsciiLower(generic)] = utils.AsciiLower(family)
}

// Font returns a font matching [desc]: the first family of the list with
// a registered font wins, and generic families route through SetGeneric.
// With no match at all, any registered font serves as last resort.
func (p *FontProvider) Font(desc backend.FontDescription) (backend.Font, error) {
	key := fmt.Sprintf("%v|%g|%d|%s", desc.Families, desc.Size, desc.Weight, desc.Style)
	if f, in := p.cache[key]; in {
		return f, nil
	}
	ttf := p.resolve(desc.Families)
	if ttf == nil {
		return nil, fmt.Errorf("no font registered for families %v", desc.Families)
	}
	face := truetype.NewFace(ttf, &truetype.Options{
		// size is in px; at 72 dpi one point is one px
		Size: float64(desc.Size),
		DPI:  72,
	})
	f := &rasterFont{desc: desc, face: face}
	p.cache[key] = f
	return f, nil
}

func (p *FontProvider) resolve(families []string) *truetype.Font {
	for _, family := range families {
		name := utils.AsciiLower(family)
		if routed, in := p.generics[name]; in {
			name = routed
		}
		if f, in := p.families[name]; in {
			return f
		}
	}
	for _, f := range p.families {
		return f
	}
	return nil
}

type rasterFont struct {
	desc backend.FontDescription
	face font.Face
}

func (f *rasterFont) Description() backend.FontDescription { return f.desc }

func (f *rasterFont) Measure(text string) (width, height backend.Fl) {
	adv := font.MeasureString(f.face, text)
	metrics := f.face.Metrics()
	return fixedToFl(adv), fixedToFl(metrics.Height)
}

func fixedToFl(v fixed.Int26_6) backend.Fl { return backend.Fl(v) / 64 }
