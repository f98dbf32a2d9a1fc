package render

import (
	"math"
	"math/rand"

	"github.com/patternforge/synth"
	"github.com/patternforge/synth/pattern"
)

// Organic draws a recursive, rotationally symmetric branch tree. The
// construction is stochastic: branch recursion, heading jitter, and
// length decay all draw from the injected random source, so two renders
// with independent randomness differ while a fixed seed reproduces
// exactly.
type Organic struct{}

// branchSegment is one emitted stroke of the branch tree.
type branchSegment struct {
	from  synth.Point
	to    synth.Point
	width float64
	depth int
}

// minBranchLength terminates recursion once branches become sub-pixel
// noise.
const minBranchLength = 2.0

// Render implements Renderer.
func (Organic) Render(c *synth.Canvas, def pattern.Definition, rng *rand.Rand) error {
	p := def.Organic.WithDefaults()
	if p.BranchingFactor < 0 || p.BranchingFactor > 1 {
		return invalidParams("organic: branching factor %v outside [0, 1]", p.BranchingFactor)
	}
	style := EffectiveStyle(def)

	start := synth.Pt(float64(c.Width())/2, float64(c.Height())/2)
	// Heading 0 points up; parameters give degrees.
	heading := p.Angle*math.Pi/180 - math.Pi/2

	var segments []branchSegment
	growBranches(rng, p, start, p.Length, heading, 0, &segments)

	stroke := style.Palette.SecondaryAt(0)
	for _, seg := range segments {
		alpha := 1 - float64(seg.depth)*0.1
		if alpha < 0.1 {
			alpha = 0.1
		}
		c.SetBrush(synth.Solid(stroke.WithAlpha(alpha)))
		c.SetLineWidth(seg.width)
		c.DrawLine(seg.from.X, seg.from.Y, seg.to.X, seg.to.Y)
		c.Stroke()
	}
	return nil
}

// growBranches emits the branch tree rooted at start. Each node emits
// symmetry sibling segments at evenly spaced angles around the current
// heading, then with probability BranchingFactor recurses twice from the
// first sibling's endpoint. Recursion stops at MaxDepth or when the
// branch length falls below minBranchLength.
func growBranches(rng *rand.Rand, p pattern.OrganicParams, start synth.Point, length, heading float64, depth int, out *[]branchSegment) {
	if depth >= p.MaxDepth || length < minBranchLength {
		return
	}

	width := length / 10
	if width < 1 {
		width = 1
	}

	var firstEnd synth.Point
	for i := 0; i < p.Symmetry; i++ {
		angle := heading + 2*math.Pi*float64(i)/float64(p.Symmetry)
		end := start.Polar(angle, length)
		if i == 0 {
			firstEnd = end
		}
		*out = append(*out, branchSegment{
			from:  start,
			to:    end,
			width: width,
			depth: depth,
		})
	}

	if rng.Float64() < p.BranchingFactor {
		newLength := length * p.GrowthRate * (0.6 + 0.4*rng.Float64())
		left := heading + (rng.Float64()-0.5)*math.Pi/2
		right := heading + (rng.Float64()-0.5)*math.Pi/2
		growBranches(rng, p, firstEnd, newLength, left, depth+1, out)
		growBranches(rng, p, firstEnd, newLength, right, depth+1, out)
	}
}
