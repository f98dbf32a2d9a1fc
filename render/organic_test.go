package render

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patternforge/synth"
	"github.com/patternforge/synth/pattern"
)

func TestGrowBranchesNoBranching(t *testing.T) {
	// Branching probability zero: the tree is exactly the symmetry
	// siblings of the root, all at depth zero.
	p := (&pattern.OrganicParams{
		Symmetry:           5,
		BranchingFactor:    0,
		HasBranchingFactor: true,
	}).WithDefaults()

	var segments []branchSegment
	rng := rand.New(rand.NewSource(99))
	growBranches(rng, p, synth.Pt(100, 100), p.Length, 0, 0, &segments)

	require.Len(t, segments, 5)
	for _, seg := range segments {
		assert.Equal(t, 0, seg.depth)
		assert.Equal(t, synth.Pt(100, 100), seg.from)
		assert.InDelta(t, p.Length, seg.from.Distance(seg.to), 1e-9)
	}
}

func TestGrowBranchesDepthBound(t *testing.T) {
	// Probability one forces recursion every node; depth stays below
	// the configured maximum.
	p := (&pattern.OrganicParams{
		Symmetry:           2,
		BranchingFactor:    1,
		HasBranchingFactor: true,
		GrowthRate:         0.9,
		MaxDepth:           4,
	}).WithDefaults()

	var segments []branchSegment
	rng := rand.New(rand.NewSource(5))
	growBranches(rng, p, synth.Pt(0, 0), 100, 0, 0, &segments)

	require.NotEmpty(t, segments)
	deeper := false
	for _, seg := range segments {
		assert.Less(t, seg.depth, 4)
		if seg.depth > 0 {
			deeper = true
		}
	}
	assert.True(t, deeper, "branching probability 1 never recursed")
}

func TestGrowBranchesLengthBound(t *testing.T) {
	p := (&pattern.OrganicParams{
		Symmetry:           1,
		BranchingFactor:    1,
		HasBranchingFactor: true,
		GrowthRate:         0.5,
		MaxDepth:           1000,
	}).WithDefaults()

	var segments []branchSegment
	rng := rand.New(rand.NewSource(11))
	growBranches(rng, p, synth.Pt(0, 0), 10, 0, 0, &segments)

	// Length halves (at most) every generation, so recursion dies out
	// once branches shrink below the minimum drawable length.
	require.NotEmpty(t, segments)
	for _, seg := range segments {
		assert.GreaterOrEqual(t, seg.from.Distance(seg.to), minBranchLength-1e-9)
	}
}

func TestOrganicRenderInvalidBranchingFactor(t *testing.T) {
	c := synth.NewCanvas(50, 50)
	def := pattern.Definition{
		Kind:    pattern.KindOrganic,
		Organic: &pattern.OrganicParams{BranchingFactor: 1.5},
	}
	err := Organic{}.Render(c, def, rand.New(rand.NewSource(1)))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidParams))
}

func TestOrganicRenderPaints(t *testing.T) {
	c := synth.NewCanvas(200, 200)
	c.ClearWith(synth.Black)
	def := pattern.Definition{Kind: pattern.KindOrganic}
	require.NoError(t, Organic{}.Render(c, def, rand.New(rand.NewSource(2))))

	painted := 0
	for y := 0; y < 200; y++ {
		for x := 0; x < 200; x++ {
			if c.GetPixel(x, y) != synth.Black {
				painted++
			}
		}
	}
	assert.Greater(t, painted, 0, "organic render painted nothing")
}

func TestOrganicRenderSeededDeterminism(t *testing.T) {
	render := func() []byte {
		c := synth.NewCanvas(100, 100)
		c.ClearWith(synth.Black)
		def := pattern.Definition{Kind: pattern.KindOrganic}
		require.NoError(t, Organic{}.Render(c, def, rand.New(rand.NewSource(77))))
		return c.Pixmap().Data()
	}
	assert.Equal(t, render(), render())
}
