package render

import (
	"math"
	"math/rand"

	"github.com/patternforge/synth"
	"github.com/patternforge/synth/pattern"
)

// Geometric draws a regular polygon centered at the surface midpoint,
// rotated and scaled about its own center, filled with a radial gradient
// from palette primary to secondary and stroked with the accent color.
type Geometric struct{}

// geometricStrokeWidth is the fixed outline width.
const geometricStrokeWidth = 2.0

// Render implements Renderer. Malformed side counts degrade by clamping
// to a triangle rather than erroring.
func (Geometric) Render(c *synth.Canvas, def pattern.Definition, _ *rand.Rand) error {
	p := def.Geometric.WithDefaults()
	style := EffectiveStyle(def)

	cx := float64(c.Width()) / 2
	cy := float64(c.Height()) / 2
	r := p.Radius * p.Scale
	rotation := p.Rotation * math.Pi / 180

	gradient := synth.NewRadialGradientBrush(cx, cy, r).
		AddColorStop(0, style.Palette.PrimaryAt(0)).
		AddColorStop(1, style.Palette.SecondaryAt(0))

	c.SetBrush(gradient)
	c.DrawRegularPolygon(cx, cy, r, p.Sides, rotation)
	c.Fill()

	c.SetBrush(synth.Solid(style.Palette.AccentAt(0)))
	c.SetLineWidth(geometricStrokeWidth)
	c.DrawRegularPolygon(cx, cy, r, p.Sides, rotation)
	c.Stroke()
	return nil
}
