package pattern

import "math/rand"

// Mutation constants: each numeric parameter is independently perturbed
// with probability mutateChance by up to ±mutateSpread of its value.
const (
	mutateChance = 0.3
	mutateSpread = 0.1
)

// Mutate returns a copy of the definition with every numeric parameter
// given an independent 30% chance of being perturbed by up to ±10% of
// its value. Non-numeric fields (kind, style, fusion source lists) are
// left untouched. The original definition is not modified.
func (d Definition) Mutate(rng *rand.Rand) Definition {
	out := d

	if d.Geometric != nil {
		g := *d.Geometric
		g.Radius = perturb(rng, g.Radius)
		g.Rotation = perturb(rng, g.Rotation)
		g.Scale = perturb(rng, g.Scale)
		g.Sides = perturbInt(rng, g.Sides)
		out.Geometric = &g
	}
	if d.Organic != nil {
		o := *d.Organic
		o.Length = perturb(rng, o.Length)
		o.Angle = perturb(rng, o.Angle)
		o.GrowthRate = perturb(rng, o.GrowthRate)
		o.BranchingFactor = perturb(rng, o.BranchingFactor)
		o.Symmetry = perturbInt(rng, o.Symmetry)
		o.MaxDepth = perturbInt(rng, o.MaxDepth)
		out.Organic = &o
	}
	if d.Fractal != nil {
		f := *d.Fractal
		f.Iterations = perturbInt(rng, f.Iterations)
		f.CX = perturb(rng, f.CX)
		f.CY = perturb(rng, f.CY)
		out.Fractal = &f
	}
	if d.Sacred != nil {
		s := *d.Sacred
		s.Radius = perturb(rng, s.Radius)
		if d.Sacred.PetalCount != nil {
			s.PetalCount = IntPtr(perturbInt(rng, *d.Sacred.PetalCount))
		}
		if d.Sacred.SpiralCount != nil {
			s.SpiralCount = Float64Ptr(perturb(rng, *d.Sacred.SpiralCount))
		}
		if d.Sacred.SacredRatio != nil {
			s.SacredRatio = Float64Ptr(perturb(rng, *d.Sacred.SacredRatio))
		}
		out.Sacred = &s
	}

	return out
}

// perturb applies the per-parameter mutation rule to one value.
func perturb(rng *rand.Rand, v float64) float64 {
	if rng.Float64() >= mutateChance {
		return v
	}
	return v * (1 + (rng.Float64()*2-1)*mutateSpread)
}

// perturbInt rounds the perturbed value back to an integer, never below 1.
func perturbInt(rng *rand.Rand, v int) int {
	out := int(perturb(rng, float64(v)) + 0.5)
	if out < 1 {
		out = 1
	}
	return out
}
