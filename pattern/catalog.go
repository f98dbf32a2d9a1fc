package pattern

// Catalog is a read-only named template collection keyed by string id.
// Only the fusion compositor consumes it: each fusion source names one
// entry. Implementations must be safe for concurrent lookup.
type Catalog interface {
	Lookup(id string) (Definition, bool)
}

// MapCatalog is an in-memory Catalog backed by a map. The zero value is
// an empty catalog. MapCatalog must not be mutated after it is handed to
// an engine.
type MapCatalog map[string]Definition

// Lookup implements Catalog.
func (m MapCatalog) Lookup(id string) (Definition, bool) {
	d, ok := m[id]
	return d, ok
}

// Builtin returns the built-in template catalog: the sacred-geometry and
// fractal presets every engine ships with so fusion works out of the box.
func Builtin() MapCatalog {
	return MapCatalog{
		"flower_of_life": {
			Kind: KindSacred,
			Sacred: &SacredParams{
				PetalCount: IntPtr(6),
				Radius:     120,
			},
			Complexity: 0.8,
		},
		"golden_spiral": {
			Kind: KindSacred,
			Sacred: &SacredParams{
				PetalCount:  IntPtr(6),
				Radius:      100,
				SpiralCount: Float64Ptr(5),
				SacredRatio: Float64Ptr(1.618),
			},
			Complexity: 0.7,
		},
		"mandelbrot_cathedral": {
			Kind: KindFractal,
			Fractal: &FractalParams{
				Variant:    VariantSelfSquared,
				Iterations: 100,
			},
			Complexity: 0.8,
		},
		"julia_mystical": {
			Kind: KindFractal,
			Fractal: &FractalParams{
				Variant:    VariantFixedParameter,
				Iterations: 80,
			},
			Complexity: 0.7,
		},
		"hexagon_prime": {
			Kind: KindGeometric,
			Geometric: &GeometricParams{
				Sides:  6,
				Radius: 160,
			},
			Complexity: 0.4,
		},
		"world_tree": {
			Kind: KindOrganic,
			Organic: &OrganicParams{
				Length:          120,
				Symmetry:        5,
				GrowthRate:      0.75,
				BranchingFactor: 0.6,
				MaxDepth:        7,
			},
			Complexity: 0.9,
		},
	}
}
