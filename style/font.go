package style

import (
	"github.com/ravstrix/ClanLib/backend"
)

// FontDescription resolves the font properties of the element into the
// description a [backend.FontProvider] selects from: the declared family
// list (generic families included), the computed size in px, the numeric
// weight and the style keyword.
func (c *Cascade) FontDescription() backend.FontDescription {
	desc := backend.FontDescription{
		Size:   c.fontSize(),
		Weight: int(c.ComputedValue("font-weight").Number()),
		Style:  c.ComputedValue("font-style").Text(),
	}
	for i, n := 0, c.ArraySize("font-family"); i < n; i++ {
		v := c.ComputedValue(indexedName("font-family", i))
		if family := v.Text(); family != "" {
			desc.Families = append(desc.Families, family)
		}
	}
	if len(desc.Families) == 0 {
		desc.Families = []string{"sans-serif"}
	}
	if desc.Weight == 0 {
		desc.Weight = 400
	}
	if desc.Style == "" {
		desc.Style = "normal"
	}
	return desc
}

// GetFont resolves the element's font description and asks [provider] for
// a matching font. Selection and caching policy belong to the provider.
func GetFont(c *Cascade, provider backend.FontProvider) (backend.Font, error) {
	return provider.Font(c.FontDescription())
}
