package render

import (
	"math/rand"
	"strings"

	"github.com/patternforge/synth"
	"github.com/patternforge/synth/pattern"
)

// goldenRatio drives the nested-rectangle overlay.
const goldenRatio = 1.618

// ApplyStyle runs the post-processing passes selected by the style's
// harmony tag and technique set, in a fixed order so seeded runs are
// reproducible.
func ApplyStyle(c *synth.Canvas, style pattern.ArtStyle, rng *rand.Rand) {
	if style.Palette.Harmony == "sacred" {
		multiplyOverlay(c, style.Palette.PrimaryAt(0))
	}
	if style.HasTechnique("sacred-geometry") {
		goldenRectOverlay(c)
	}
	if style.HasTechnique("surreal-illustration") {
		surrealTint(c, rng)
	}
	applyKeywordEnhancements(c, style.Description())
}

// multiplyOverlay multiply-blends a flat color over the full surface.
func multiplyOverlay(c *synth.Canvas, col synth.RGBA) {
	pm := c.Pixmap()
	for y := 0; y < pm.Height(); y++ {
		for x := 0; x < pm.Width(); x++ {
			pm.MultiplyPixel(x, y, col)
		}
	}
}

// goldenRectOverlay strokes nested rectangles shrinking by the golden
// ratio, centered on the surface, while the rectangle width exceeds
// 20px. The width bound is the explicit recursion guard; do not rely on
// anything else to terminate.
func goldenRectOverlay(c *synth.Canvas) {
	cx := float64(c.Width()) / 2
	cy := float64(c.Height()) / 2
	w := float64(c.Width()) * 0.8
	h := w / goldenRatio

	c.SetBrush(synth.Solid(synth.White.WithAlpha(0.1)))
	c.SetLineWidth(1)
	drawGoldenRect(c, cx, cy, w, h)
}

func drawGoldenRect(c *synth.Canvas, cx, cy, w, h float64) {
	if w <= 20 {
		return
	}
	c.DrawRectangle(cx-w/2, cy-h/2, w, h)
	c.Stroke()
	drawGoldenRect(c, cx, cy, w/goldenRatio, h/goldenRatio)
}

// surrealTint nudges roughly 1% of pixels: red up by as much as 20,
// blue down by as much as 10, clamped to the channel range.
func surrealTint(c *synth.Canvas, rng *rand.Rand) {
	pm := c.Pixmap()
	for y := 0; y < pm.Height(); y++ {
		for x := 0; x < pm.Width(); x++ {
			if rng.Float64() >= 0.01 {
				continue
			}
			px := pm.GetPixel(x, y)
			px.R = clampUnit(px.R + rng.Float64()*20/255)
			px.B = clampUnit(px.B - rng.Float64()*10/255)
			pm.SetPixel(x, y, px)
		}
	}
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// applyKeywordEnhancements scans the derived style description for
// keywords. "shadow" dims subsequent draws via the global alpha;
// "light" composites a radial white-to-transparent gradient centered on
// the surface.
func applyKeywordEnhancements(c *synth.Canvas, description string) {
	if strings.Contains(description, "shadow") {
		c.SetGlobalAlpha(0.9)
	}
	if strings.Contains(description, "light") {
		cx := float64(c.Width()) / 2
		cy := float64(c.Height()) / 2
		radius := float64(max(c.Width(), c.Height())) / 2

		glow := synth.NewRadialGradientBrush(cx, cy, radius).
			AddColorStop(0, synth.White.WithAlpha(0.6)).
			AddColorStop(1, synth.White.WithAlpha(0))
		c.SetBrush(glow)
		c.DrawRectangle(0, 0, float64(c.Width()), float64(c.Height()))
		c.Fill()
	}
}
