package render

import (
	"math/rand"

	"github.com/patternforge/synth"
	"github.com/patternforge/synth/pattern"
)

// Fractal renders an escape-time fractal over the full pixel grid,
// writing directly into the pixel buffer and bypassing path primitives.
// This is the engine's performance-critical path: cost is
// O(width × height × iterations).
//
// Two complex-plane variants are supported. The self-squared variant
// derives c from each pixel's normalized screen coordinates; the
// fixed-parameter variant starts z at the pixel's coordinates and keeps
// c constant for every pixel.
type Fractal struct{}

// Escape radius squared: iteration stops once |z|^2 reaches 4.
const escapeRadiusSq = 4.0

// Render implements Renderer.
func (Fractal) Render(c *synth.Canvas, def pattern.Definition, _ *rand.Rand) error {
	p := def.Fractal.WithDefaults()
	if p.Iterations < 1 {
		return invalidParams("fractal: iteration cap %d must be >= 1", p.Iterations)
	}

	width := c.Width()
	height := c.Height()

	for py := 0; py < height; py++ {
		for px := 0; px < width; px++ {
			iter, escaped := iterate(p, px, py, width, height)
			if !escaped {
				c.SetPixel(px, py, synth.Black)
				continue
			}
			hue := 360 * float64(iter) / float64(p.Iterations)
			c.SetPixel(px, py, synth.HSL(hue, 1, 0.5))
		}
	}
	return nil
}

// iterate runs the escape-time recurrence for one pixel and reports the
// iteration count and whether the orbit escaped.
func iterate(p pattern.FractalParams, px, py, width, height int) (int, bool) {
	var zx, zy, cx, cy float64

	switch p.Variant {
	case pattern.VariantFixedParameter:
		// z starts at the pixel; c is the same for every pixel.
		zx = -2 + 4*float64(px)/float64(width)
		zy = -2 + 4*float64(py)/float64(height)
		cx = p.CX
		cy = p.CY
	default:
		// z starts at the origin; c is the pixel.
		cx = -2.5 + 4*float64(px)/float64(width)
		cy = -2 + 4*float64(py)/float64(height)
	}

	iter := 0
	for zx*zx+zy*zy < escapeRadiusSq && iter < p.Iterations {
		zx, zy = zx*zx-zy*zy+cx, 2*zx*zy+cy
		iter++
	}
	return iter, iter < p.Iterations
}
