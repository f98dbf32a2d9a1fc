package pattern

import (
	"strings"

	"github.com/patternforge/synth"
)

// Palette holds the color lists driving fills and post-processing.
type Palette struct {
	Primary   []synth.RGBA
	Secondary []synth.RGBA
	Accent    []synth.RGBA

	// Harmony tags the palette relationship, e.g. "sacred".
	Harmony string
}

// PrimaryAt returns the i-th primary color, falling back to white.
func (p Palette) PrimaryAt(i int) synth.RGBA {
	return colorAt(p.Primary, i)
}

// SecondaryAt returns the i-th secondary color, falling back to white.
func (p Palette) SecondaryAt(i int) synth.RGBA {
	return colorAt(p.Secondary, i)
}

// AccentAt returns the i-th accent color, falling back to white.
func (p Palette) AccentAt(i int) synth.RGBA {
	return colorAt(p.Accent, i)
}

func colorAt(colors []synth.RGBA, i int) synth.RGBA {
	if i < 0 || i >= len(colors) {
		return synth.White
	}
	return colors[i]
}

// ArtStyle describes palette and technique tags for a pattern. Technique
// tags such as "sacred-geometry" and "surreal-illustration" select
// post-processing branches.
type ArtStyle struct {
	Palette    Palette
	Techniques []string
}

// HasTechnique reports whether the style carries the given tag.
func (s ArtStyle) HasTechnique(tag string) bool {
	for _, t := range s.Techniques {
		if t == tag {
			return true
		}
	}
	return false
}

// Description derives a free-text description from the style's harmony
// and technique tags. The keyword-driven enhancement step scans it for
// terms like "shadow" and "light".
func (s ArtStyle) Description() string {
	parts := make([]string, 0, len(s.Techniques)+1)
	if s.Palette.Harmony != "" {
		parts = append(parts, s.Palette.Harmony)
	}
	parts = append(parts, s.Techniques...)
	return strings.ToLower(strings.Join(parts, " "))
}

// DefaultStyle returns the palette used when a request carries no style:
// deep violet primaries with gold accents, mirroring the engine's
// built-in template set.
func DefaultStyle() ArtStyle {
	return ArtStyle{
		Palette: Palette{
			Primary:   []synth.RGBA{synth.Hex("#4b0082"), synth.Hex("#1a0033")},
			Secondary: []synth.RGBA{synth.Hex("#9932cc"), synth.Hex("#dda0dd")},
			Accent:    []synth.RGBA{synth.Hex("#ffd700"), synth.Hex("#daa520")},
			Harmony:   "triadic",
		},
	}
}

// IsZero reports whether the style is entirely unset.
func (s ArtStyle) IsZero() bool {
	return len(s.Palette.Primary) == 0 &&
		len(s.Palette.Secondary) == 0 &&
		len(s.Palette.Accent) == 0 &&
		s.Palette.Harmony == "" &&
		len(s.Techniques) == 0
}
