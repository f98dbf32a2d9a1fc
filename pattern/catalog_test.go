package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinCatalog(t *testing.T) {
	cat := Builtin()

	flower, ok := cat.Lookup("flower_of_life")
	require.True(t, ok)
	assert.Equal(t, KindSacred, flower.Kind)
	require.NotNil(t, flower.Sacred)
	assert.Equal(t, 6, flower.Sacred.EffectivePetalCount())

	spiral, ok := cat.Lookup("golden_spiral")
	require.True(t, ok)
	require.NotNil(t, spiral.Sacred)
	assert.Equal(t, 1.618, spiral.Sacred.EffectiveSacredRatio())
	assert.Greater(t, spiral.Sacred.EffectiveSpiralCount(), 0.0)

	julia, ok := cat.Lookup("julia_mystical")
	require.True(t, ok)
	require.NotNil(t, julia.Fractal)
	assert.Equal(t, VariantFixedParameter, julia.Fractal.Variant)

	_, ok = cat.Lookup("no_such_template")
	assert.False(t, ok)
}

func TestMapCatalogZeroValue(t *testing.T) {
	var cat MapCatalog
	_, ok := cat.Lookup("anything")
	assert.False(t, ok)
}

func TestParseCatalog(t *testing.T) {
	data := []byte(`
[templates.my_rosette]
kind       = "sacred"
complexity = 0.6
connection = "sunflower seed head"

[templates.my_rosette.sacred]
petal_count  = 8
radius       = 90.0
spiral_count = 3.0
sacred_ratio = 1.618

[templates.my_rosette.style]
primary    = ["#4b0082"]
accent     = ["#ffd700"]
harmony    = "sacred"
techniques = ["sacred-geometry"]

[templates.my_blend]
kind = "fusion"

[templates.my_blend.fusion]
sources       = ["my_rosette", "my_rosette"]
weights       = [0.7, 0.3]
mutation_rate = 0.2

[templates.my_julia]
kind = "fractal"

[templates.my_julia.fractal]
variant    = "fixed-parameter"
iterations = 60
cx         = -0.8
cy         = 0.156
`)

	cat, err := ParseCatalog(data)
	require.NoError(t, err)

	rosette, ok := cat.Lookup("my_rosette")
	require.True(t, ok)
	assert.Equal(t, KindSacred, rosette.Kind)
	assert.Equal(t, 0.6, rosette.Complexity)
	assert.Equal(t, "sunflower seed head", rosette.RealWorldConnection)
	require.NotNil(t, rosette.Sacred)
	require.NotNil(t, rosette.Sacred.PetalCount)
	assert.Equal(t, 8, *rosette.Sacred.PetalCount)
	require.NotNil(t, rosette.Sacred.SpiralCount)
	assert.Equal(t, 3.0, *rosette.Sacred.SpiralCount)
	assert.Equal(t, "sacred", rosette.Style.Palette.Harmony)
	assert.True(t, rosette.Style.HasTechnique("sacred-geometry"))

	blend, ok := cat.Lookup("my_blend")
	require.True(t, ok)
	assert.Equal(t, KindFusion, blend.Kind)
	require.NotNil(t, blend.Fusion)
	assert.Equal(t, []float64{0.7, 0.3}, blend.Fusion.Weights)
	assert.Equal(t, 0.2, blend.Fusion.MutationRate)

	julia, ok := cat.Lookup("my_julia")
	require.True(t, ok)
	require.NotNil(t, julia.Fractal)
	assert.Equal(t, VariantFixedParameter, julia.Fractal.Variant)
	assert.Equal(t, 60, julia.Fractal.Iterations)
	assert.Equal(t, -0.8, julia.Fractal.CX)
}

func TestParseCatalogMalformed(t *testing.T) {
	_, err := ParseCatalog([]byte("templates = 3"))
	assert.Error(t, err)
}

func TestParseCatalogSacredPresence(t *testing.T) {
	// Omitted sacred fields must stay nil so the analyzer can tell
	// "absent" from "present with the default value".
	data := []byte(`
[templates.plain]
kind = "sacred"

[templates.plain.sacred]
radius = 100.0
`)
	cat, err := ParseCatalog(data)
	require.NoError(t, err)

	plain, ok := cat.Lookup("plain")
	require.True(t, ok)
	require.NotNil(t, plain.Sacred)
	assert.Nil(t, plain.Sacred.PetalCount)
	assert.Nil(t, plain.Sacred.SpiralCount)
	assert.Nil(t, plain.Sacred.SacredRatio)
}
