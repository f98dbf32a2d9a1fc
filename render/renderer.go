// Package render draws each pattern kind onto a canvas and applies style
// post-processing. One renderer exists per pattern kind, dispatched
// exhaustively over the closed pattern.Kind set.
package render

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/patternforge/synth"
	"github.com/patternforge/synth/pattern"
)

// ErrInvalidParams marks renderer failures caused by bad caller
// parameters, as opposed to unexpected internal faults. Test with
// errors.Is.
var ErrInvalidParams = errors.New("invalid parameters")

// invalidParams tags an error as a parameter problem.
func invalidParams(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidParams}, args...)...)
}

// Renderer draws one pattern kind. Implementations read only the
// parameter field matching their kind and must take all randomness from
// the supplied source so that seeded generation is reproducible.
type Renderer interface {
	Render(c *synth.Canvas, def pattern.Definition, rng *rand.Rand) error
}

// For returns the renderer for a pattern kind. The catalog is consulted
// only by the fusion compositor. The switch is exhaustive over
// pattern.Kind; unknown kinds take the default fallback.
func For(kind pattern.Kind, catalog pattern.Catalog) Renderer {
	switch kind {
	case pattern.KindGeometric:
		return Geometric{}
	case pattern.KindOrganic:
		return Organic{}
	case pattern.KindFractal:
		return Fractal{}
	case pattern.KindSacred:
		return Sacred{}
	case pattern.KindFusion:
		return Fusion{Catalog: catalog}
	case pattern.KindDefault:
		return Default{}
	default:
		return Default{}
	}
}

// EffectiveStyle resolves the style a definition paints with: the
// definition's own style, or the default palette when none is set. The
// same resolution feeds rendering, post-processing, and the technique
// list reported in generation metadata.
func EffectiveStyle(def pattern.Definition) pattern.ArtStyle {
	if def.Style.IsZero() {
		return pattern.DefaultStyle()
	}
	return def.Style
}

// DefaultRadius is the fixed radius of the fallback circle.
const DefaultRadius = 100.0

// Default draws the fallback pattern: a filled circle of fixed radius
// centered on the surface. It takes no parameters and no randomness, so
// repeated renders are identical.
type Default struct{}

// Render implements Renderer.
func (Default) Render(c *synth.Canvas, def pattern.Definition, _ *rand.Rand) error {
	style := EffectiveStyle(def)
	cx := float64(c.Width()) / 2
	cy := float64(c.Height()) / 2

	c.SetBrush(synth.Solid(style.Palette.PrimaryAt(0)))
	c.DrawCircle(cx, cy, DefaultRadius)
	c.Fill()
	return nil
}
