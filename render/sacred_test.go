package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patternforge/synth"
	"github.com/patternforge/synth/pattern"
)

func TestSacredRenderDefaults(t *testing.T) {
	c := synth.NewCanvas(400, 400)
	c.ClearWith(synth.Black)
	def := pattern.Definition{Kind: pattern.KindSacred}
	require.NoError(t, Sacred{}.Render(c, def, nil))

	// Six circles of radius 80 on a ring of radius 80: the ring region
	// is painted, the far corners are not.
	painted := 0
	for y := 0; y < 400; y++ {
		for x := 0; x < 400; x++ {
			if c.GetPixel(x, y) != synth.Black {
				painted++
			}
		}
	}
	assert.Greater(t, painted, 1000, "rosette painted almost nothing")
	assert.Equal(t, synth.Black, c.GetPixel(3, 3))
	assert.Equal(t, synth.Black, c.GetPixel(396, 396))
}

func TestSacredSpiralOverlay(t *testing.T) {
	render := func(def pattern.Definition) []byte {
		c := synth.NewCanvas(300, 300)
		c.ClearWith(synth.Black)
		require.NoError(t, Sacred{}.Render(c, def, nil))
		return c.Pixmap().Data()
	}

	plain := render(pattern.Definition{
		Kind:   pattern.KindSacred,
		Sacred: &pattern.SacredParams{PetalCount: pattern.IntPtr(6), Radius: 60},
	})
	withSpiral := render(pattern.Definition{
		Kind: pattern.KindSacred,
		Sacred: &pattern.SacredParams{
			PetalCount:  pattern.IntPtr(6),
			Radius:      60,
			SpiralCount: pattern.Float64Ptr(2),
		},
	})
	assert.NotEqual(t, plain, withSpiral, "spiral overlay changed nothing")
}

func TestSacredPetalCount(t *testing.T) {
	// More petals cover more of the ring; the render stays in bounds
	// and paints strictly more with 12 petals than with 3.
	paint := func(petals int) int {
		c := synth.NewCanvas(300, 300)
		c.ClearWith(synth.Black)
		def := pattern.Definition{
			Kind:   pattern.KindSacred,
			Sacred: &pattern.SacredParams{PetalCount: pattern.IntPtr(petals), Radius: 50},
		}
		require.NoError(t, Sacred{}.Render(c, def, nil))

		painted := 0
		for y := 0; y < 300; y++ {
			for x := 0; x < 300; x++ {
				if c.GetPixel(x, y) != synth.Black {
					painted++
				}
			}
		}
		return painted
	}

	assert.Greater(t, paint(12), paint(3))
}
