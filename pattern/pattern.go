// Package pattern defines the closed pattern-definition model consumed by
// the renderers, plus the named template catalog.
package pattern

import "fmt"

// Kind identifies one of the closed set of pattern families.
type Kind int

const (
	// KindDefault is the fallback pattern: a filled circle of fixed
	// radius centered on the surface.
	KindDefault Kind = iota
	// KindGeometric is a regular polygon with radial-gradient fill.
	KindGeometric
	// KindOrganic is a recursive, symmetric, stochastic branch tree.
	KindOrganic
	// KindFractal is an escape-time fractal over the full pixel grid.
	KindFractal
	// KindSacred is a rosette of overlapping circles with an optional
	// logarithmic spiral overlay.
	KindSacred
	// KindFusion composes multiple named templates with per-source
	// weights and bounded random mutation.
	KindFusion
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindGeometric:
		return "geometric"
	case KindOrganic:
		return "organic"
	case KindFractal:
		return "fractal"
	case KindSacred:
		return "sacred"
	case KindFusion:
		return "fusion"
	default:
		return "default"
	}
}

// ParseKind converts a kind name to a Kind. Unknown names map to
// KindDefault, matching the engine's permissive fallback behavior.
func ParseKind(s string) Kind {
	switch s {
	case "geometric":
		return KindGeometric
	case "organic":
		return KindOrganic
	case "fractal":
		return KindFractal
	case "sacred":
		return KindSacred
	case "fusion":
		return KindFusion
	default:
		return KindDefault
	}
}

// Definition describes one pattern to generate. It is immutable once
// passed into a generation call: renderers work on copies.
//
// Exactly one of the parameter fields matching Kind is consulted by the
// renderer; a nil field means "all defaults". Sacred is also read by the
// analyzer independent of Kind, because sacred-geometry parameters may
// accompany any pattern family.
type Definition struct {
	Kind      Kind
	Geometric *GeometricParams
	Organic   *OrganicParams
	Fractal   *FractalParams
	Sacred    *SacredParams
	Fusion    *FusionParams

	// Style drives post-processing after the primary render.
	Style ArtStyle

	// Complexity is an informational scalar copied into the analysis.
	Complexity float64

	// RealWorldConnection is an opaque provenance tag.
	RealWorldConnection string
}

// GeometricParams configures the regular-polygon renderer.
type GeometricParams struct {
	Sides    int     // vertices; < 3 clamps to 3 (default 6)
	Radius   float64 // circumradius in pixels (default 100)
	Rotation float64 // degrees
	Scale    float64 // uniform scale about the polygon center (default 1)
}

// WithDefaults returns the parameters with zero fields replaced by their
// documented defaults. Works on a nil receiver.
func (p *GeometricParams) WithDefaults() GeometricParams {
	out := GeometricParams{Sides: 6, Radius: 100, Scale: 1}
	if p == nil {
		return out
	}
	if p.Sides != 0 {
		out.Sides = p.Sides
	}
	if out.Sides < 3 {
		out.Sides = 3
	}
	if p.Radius != 0 {
		out.Radius = p.Radius
	}
	out.Rotation = p.Rotation
	if p.Scale != 0 {
		out.Scale = p.Scale
	}
	return out
}

// OrganicParams configures the recursive branch generator.
type OrganicParams struct {
	Length          float64 // initial branch length (default 80)
	Angle           float64 // initial heading in degrees, 0 points up
	Symmetry        int     // rotational copies per node (default 5)
	GrowthRate      float64 // length decay per generation (default 0.8)
	BranchingFactor float64 // recursion probability in [0, 1] (default 0.7)
	MaxDepth        int     // recursion bound (default 8)

	// HasBranchingFactor distinguishes an explicit zero probability from
	// an omitted one, which takes the default.
	HasBranchingFactor bool
}

// WithDefaults returns the parameters with zero fields replaced by their
// documented defaults. Works on a nil receiver.
func (p *OrganicParams) WithDefaults() OrganicParams {
	out := OrganicParams{
		Length:          80,
		Symmetry:        5,
		GrowthRate:      0.8,
		BranchingFactor: 0.7,
		MaxDepth:        8,
	}
	if p == nil {
		return out
	}
	if p.Length != 0 {
		out.Length = p.Length
	}
	out.Angle = p.Angle
	if p.Symmetry != 0 {
		out.Symmetry = p.Symmetry
	}
	if p.GrowthRate != 0 {
		out.GrowthRate = p.GrowthRate
	}
	if p.HasBranchingFactor || p.BranchingFactor != 0 {
		out.BranchingFactor = p.BranchingFactor
	}
	if p.MaxDepth != 0 {
		out.MaxDepth = p.MaxDepth
	}
	return out
}

// FractalVariant selects the escape-time recurrence.
type FractalVariant int

const (
	// VariantSelfSquared iterates z <- z^2 + c with c derived from the
	// pixel's normalized screen coordinates.
	VariantSelfSquared FractalVariant = iota
	// VariantFixedParameter starts z at the pixel's normalized
	// coordinates and keeps c fixed for every pixel.
	VariantFixedParameter
)

// FractalParams configures the escape-time renderer.
type FractalParams struct {
	Variant    FractalVariant
	Iterations int     // escape cap (default 8; quality needs far more)
	CX         float64 // fixed-parameter real part (default -0.7)
	CY         float64 // fixed-parameter imaginary part (default 0.27015)
}

// WithDefaults returns the parameters with zero fields replaced by their
// documented defaults. Works on a nil receiver.
func (p *FractalParams) WithDefaults() FractalParams {
	out := FractalParams{Iterations: 8, CX: -0.7, CY: 0.27015}
	if p == nil {
		return out
	}
	out.Variant = p.Variant
	if p.Iterations != 0 {
		out.Iterations = p.Iterations
	}
	if p.CX != 0 {
		out.CX = p.CX
	}
	if p.CY != 0 {
		out.CY = p.CY
	}
	return out
}

// SacredParams configures the rosette renderer. The three pointer fields
// double as presence markers for the analyzer: a nil field means the
// parameter was not supplied, which is distinct from supplying its
// default value.
type SacredParams struct {
	PetalCount  *int     // circles in the rosette (default 6)
	Radius      float64  // circle and ring radius (default 80)
	SpiralCount *float64 // spiral turns; > 0 enables the overlay
	SacredRatio *float64 // spiral growth ratio (default 1.618)
}

// EffectivePetalCount returns the petal count or its default.
func (p *SacredParams) EffectivePetalCount() int {
	if p == nil || p.PetalCount == nil || *p.PetalCount <= 0 {
		return 6
	}
	return *p.PetalCount
}

// EffectiveRadius returns the rosette radius or its default.
func (p *SacredParams) EffectiveRadius() float64 {
	if p == nil || p.Radius == 0 {
		return 80
	}
	return p.Radius
}

// EffectiveSpiralCount returns the spiral turn count, zero if absent.
func (p *SacredParams) EffectiveSpiralCount() float64 {
	if p == nil || p.SpiralCount == nil {
		return 0
	}
	return *p.SpiralCount
}

// EffectiveSacredRatio returns the spiral ratio or its default.
func (p *SacredParams) EffectiveSacredRatio() float64 {
	if p == nil || p.SacredRatio == nil || *p.SacredRatio == 0 {
		return 1.618
	}
	return *p.SacredRatio
}

// FusionParams configures the fusion compositor.
type FusionParams struct {
	// Sources names templates in the catalog. Unknown names are skipped.
	Sources []string
	// Weights holds one global alpha per source. Empty means uniform
	// 1/N. A non-empty list must match Sources in length.
	Weights []float64
	// MutationRate is the probability in [0, 1] that a source is
	// rendered from a mutated copy of its template.
	MutationRate float64
}

// Validate checks the weight list against the source list.
func (p *FusionParams) Validate() error {
	if p == nil {
		return nil
	}
	if len(p.Weights) > 0 && len(p.Weights) != len(p.Sources) {
		return fmt.Errorf("fusion: %d weights for %d sources", len(p.Weights), len(p.Sources))
	}
	if p.MutationRate < 0 || p.MutationRate > 1 {
		return fmt.Errorf("fusion: mutation rate %v outside [0, 1]", p.MutationRate)
	}
	return nil
}

// EffectiveWeights returns one weight per source, defaulting to uniform.
func (p *FusionParams) EffectiveWeights() []float64 {
	if p == nil || len(p.Sources) == 0 {
		return nil
	}
	if len(p.Weights) == len(p.Sources) {
		out := make([]float64, len(p.Weights))
		copy(out, p.Weights)
		return out
	}
	out := make([]float64, len(p.Sources))
	for i := range out {
		out[i] = 1 / float64(len(p.Sources))
	}
	return out
}

// Float64Ptr returns a pointer to v, for building presence-tracked
// parameters in literals.
func Float64Ptr(v float64) *float64 { return &v }

// IntPtr returns a pointer to v.
func IntPtr(v int) *int { return &v }
