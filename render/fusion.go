package render

import (
	"image"
	"image/color"
	"math/rand"

	"golang.org/x/image/draw"

	"github.com/patternforge/synth"
	"github.com/patternforge/synth/pattern"
)

// Fusion composes multiple named templates from the catalog. Each source
// is rendered into its own transparent layer, optionally from a mutated
// copy of its template, then composited onto the surface with a uniform
// alpha equal to the source's weight.
//
// Unknown source ids are skipped, not errors: the catalog is opaque
// caller data and permissive degradation is the documented behavior.
type Fusion struct {
	Catalog pattern.Catalog
}

// Render implements Renderer.
func (f Fusion) Render(c *synth.Canvas, def pattern.Definition, rng *rand.Rand) error {
	p := def.Fusion
	if p == nil {
		return invalidParams("fusion: no sources given")
	}
	if err := p.Validate(); err != nil {
		return invalidParams("%v", err)
	}

	weights := p.EffectiveWeights()
	log := synth.Logger()

	for i, id := range p.Sources {
		if f.Catalog == nil {
			log.Debug("fusion source skipped, no catalog", "source", id)
			continue
		}
		tmpl, ok := f.Catalog.Lookup(id)
		if !ok {
			log.Debug("fusion source skipped, unknown id", "source", id)
			continue
		}
		if tmpl.Kind == pattern.KindFusion {
			// Fusion templates do not re-enter the compositor.
			log.Debug("fusion source skipped, nested fusion", "source", id)
			continue
		}

		if rng.Float64() < p.MutationRate {
			tmpl = tmpl.Mutate(rng)
		}

		layer := synth.NewCanvas(c.Width(), c.Height())
		if err := For(tmpl.Kind, f.Catalog).Render(layer, tmpl, rng); err != nil {
			return err
		}

		compositeLayer(c, layer, weights[i])
	}
	return nil
}

// compositeLayer draws a rendered layer onto the destination canvas with
// a uniform alpha mask.
func compositeLayer(dst *synth.Canvas, layer *synth.Canvas, weight float64) {
	if weight <= 0 {
		return
	}
	if weight > 1 {
		weight = 1
	}
	mask := image.NewUniform(color.Alpha{A: uint8(weight*255 + 0.5)})
	bounds := dst.Pixmap().Bounds()
	draw.DrawMask(dst.Pixmap(), bounds, layer.Pixmap().ToImage(), image.Point{}, mask, image.Point{}, draw.Over)
}
