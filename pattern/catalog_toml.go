package pattern

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/patternforge/synth"
)

// catalogFile mirrors the TOML template-catalog layout:
//
//	[templates.flower_of_life]
//	kind       = "sacred"
//	complexity = 0.8
//
//	[templates.flower_of_life.sacred]
//	petal_count = 6
//	radius      = 120.0
type catalogFile struct {
	Templates map[string]templateEntry `toml:"templates"`
}

type templateEntry struct {
	Kind       string  `toml:"kind"`
	Complexity float64 `toml:"complexity"`
	Connection string  `toml:"connection"`

	Geometric *geometricEntry `toml:"geometric"`
	Organic   *organicEntry   `toml:"organic"`
	Fractal   *fractalEntry   `toml:"fractal"`
	Sacred    *sacredEntry    `toml:"sacred"`
	Fusion    *fusionEntry    `toml:"fusion"`

	Style *styleEntry `toml:"style"`
}

type geometricEntry struct {
	Sides    int     `toml:"sides"`
	Radius   float64 `toml:"radius"`
	Rotation float64 `toml:"rotation"`
	Scale    float64 `toml:"scale"`
}

type organicEntry struct {
	Length          float64  `toml:"length"`
	Angle           float64  `toml:"angle"`
	Symmetry        int      `toml:"symmetry"`
	GrowthRate      float64  `toml:"growth_rate"`
	BranchingFactor *float64 `toml:"branching_factor"`
	MaxDepth        int      `toml:"max_depth"`
}

type fractalEntry struct {
	Variant    string  `toml:"variant"` // "self-squared" or "fixed-parameter"
	Iterations int     `toml:"iterations"`
	CX         float64 `toml:"cx"`
	CY         float64 `toml:"cy"`
}

type sacredEntry struct {
	PetalCount  *int     `toml:"petal_count"`
	Radius      float64  `toml:"radius"`
	SpiralCount *float64 `toml:"spiral_count"`
	SacredRatio *float64 `toml:"sacred_ratio"`
}

type fusionEntry struct {
	Sources      []string  `toml:"sources"`
	Weights      []float64 `toml:"weights"`
	MutationRate float64   `toml:"mutation_rate"`
}

type styleEntry struct {
	Primary    []string `toml:"primary"`
	Secondary  []string `toml:"secondary"`
	Accent     []string `toml:"accent"`
	Harmony    string   `toml:"harmony"`
	Techniques []string `toml:"techniques"`
}

// LoadCatalog reads a TOML template catalog from disk. Template contents
// are treated as opaque caller data: entries are converted, not
// validated beyond what decoding requires.
func LoadCatalog(path string) (MapCatalog, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes a TOML template catalog from raw bytes.
func ParseCatalog(data []byte) (MapCatalog, error) {
	var file catalogFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	out := make(MapCatalog, len(file.Templates))
	for id, entry := range file.Templates {
		out[id] = entry.toDefinition()
	}
	return out, nil
}

func (e templateEntry) toDefinition() Definition {
	d := Definition{
		Kind:                ParseKind(e.Kind),
		Complexity:          e.Complexity,
		RealWorldConnection: e.Connection,
	}

	if e.Geometric != nil {
		d.Geometric = &GeometricParams{
			Sides:    e.Geometric.Sides,
			Radius:   e.Geometric.Radius,
			Rotation: e.Geometric.Rotation,
			Scale:    e.Geometric.Scale,
		}
	}
	if e.Organic != nil {
		o := &OrganicParams{
			Length:     e.Organic.Length,
			Angle:      e.Organic.Angle,
			Symmetry:   e.Organic.Symmetry,
			GrowthRate: e.Organic.GrowthRate,
			MaxDepth:   e.Organic.MaxDepth,
		}
		if e.Organic.BranchingFactor != nil {
			o.BranchingFactor = *e.Organic.BranchingFactor
			o.HasBranchingFactor = true
		}
		d.Organic = o
	}
	if e.Fractal != nil {
		variant := VariantSelfSquared
		if e.Fractal.Variant == "fixed-parameter" {
			variant = VariantFixedParameter
		}
		d.Fractal = &FractalParams{
			Variant:    variant,
			Iterations: e.Fractal.Iterations,
			CX:         e.Fractal.CX,
			CY:         e.Fractal.CY,
		}
	}
	if e.Sacred != nil {
		d.Sacred = &SacredParams{
			PetalCount:  e.Sacred.PetalCount,
			Radius:      e.Sacred.Radius,
			SpiralCount: e.Sacred.SpiralCount,
			SacredRatio: e.Sacred.SacredRatio,
		}
	}
	if e.Fusion != nil {
		d.Fusion = &FusionParams{
			Sources:      e.Fusion.Sources,
			Weights:      e.Fusion.Weights,
			MutationRate: e.Fusion.MutationRate,
		}
	}
	if e.Style != nil {
		d.Style = ArtStyle{
			Palette: Palette{
				Primary:   hexColors(e.Style.Primary),
				Secondary: hexColors(e.Style.Secondary),
				Accent:    hexColors(e.Style.Accent),
				Harmony:   e.Style.Harmony,
			},
			Techniques: e.Style.Techniques,
		}
	}
	return d
}

func hexColors(hexes []string) []synth.RGBA {
	if len(hexes) == 0 {
		return nil
	}
	out := make([]synth.RGBA, len(hexes))
	for i, h := range hexes {
		out[i] = synth.Hex(h)
	}
	return out
}
