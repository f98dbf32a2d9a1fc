package render

import (
	"math"
	"math/rand"

	"github.com/patternforge/synth"
	"github.com/patternforge/synth/pattern"
)

// Sacred draws a rosette of overlapping circles ("flower" arrangement)
// around the surface center, optionally overlaid with a spiral whose
// growth per turn follows the configured sacred ratio.
type Sacred struct{}

// Fixed rosette tones: petal gradients run between the two golds and the
// outlines and spiral stroke use the darker accent.
var (
	petalInner   = synth.Hex("#ffd700")
	petalOuter   = synth.Hex("#daa520")
	sacredStroke = synth.Hex("#b8860b")
)

// Render implements Renderer.
func (Sacred) Render(c *synth.Canvas, def pattern.Definition, _ *rand.Rand) error {
	p := def.Sacred
	petals := p.EffectivePetalCount()
	radius := p.EffectiveRadius()
	spirals := p.EffectiveSpiralCount()
	ratio := p.EffectiveSacredRatio()

	cx := float64(c.Width()) / 2
	cy := float64(c.Height()) / 2
	center := synth.Pt(cx, cy)

	// Overlapping circles of radius R on a ring of the same radius.
	for i := 0; i < petals; i++ {
		angle := 2 * math.Pi * float64(i) / float64(petals)
		pc := center.Polar(angle, radius)

		gradient := synth.NewRadialGradientBrush(pc.X, pc.Y, radius).
			AddColorStop(0, petalInner.WithAlpha(0.35)).
			AddColorStop(1, petalOuter.WithAlpha(0.15))
		c.SetBrush(gradient)
		c.DrawCircle(pc.X, pc.Y, radius)
		c.Fill()

		c.SetBrush(synth.Solid(sacredStroke))
		c.SetLineWidth(1.5)
		c.DrawCircle(pc.X, pc.Y, radius)
		c.Stroke()
	}

	if spirals > 0 {
		drawSpiral(c, center, radius, ratio, spirals)
	}
	return nil
}

// drawSpiral strokes a spiral with radius envelope
// r(θ) = (radius·ratio)/(2π) · θ for θ up to turns·2π.
func drawSpiral(c *synth.Canvas, center synth.Point, radius, ratio, turns float64) {
	growth := radius * ratio / (2 * math.Pi)
	maxTheta := turns * 2 * math.Pi

	const step = 0.05
	c.MoveTo(center.X, center.Y)
	for theta := step; theta <= maxTheta; theta += step {
		p := center.Polar(theta, growth*theta)
		c.LineTo(p.X, p.Y)
	}

	c.SetBrush(synth.Solid(sacredStroke))
	c.SetLineWidth(2)
	c.Stroke()
}
