// Package analyze derives pattern and style metrics from a generation
// request. The analysis is a pure function of the request parameters: it
// never inspects rendered pixels, which keeps it cheap and deterministic
// but limits it to what the parameters imply.
package analyze

import (
	"math"

	"github.com/patternforge/synth/pattern"
)

// goldenRatio is the only sacred ratio that scores full compliance.
const goldenRatio = 1.618

// aestheticRatios is the fixed set reported with every analysis: the
// golden ratio, the silver ratio (root 2), e, and pi.
var aestheticRatios = [4]float64{1.618, 1.414, 2.718, 3.14159}

// PatternAnalysis summarizes the mathematical character of a pattern.
type PatternAnalysis struct {
	// Symmetry is a fixed estimate for parameter-derived analysis.
	Symmetry float64 `json:"symmetry"`
	// Complexity echoes the request's complexity scalar.
	Complexity float64 `json:"complexity"`
	// FractalDimension is log(iterations)/log(3) for fractal patterns
	// and 1.0 for everything else.
	FractalDimension float64 `json:"fractalDimension"`
	// AestheticRatios lists the reference ratios the analysis compares
	// against. The set is fixed.
	AestheticRatios []float64 `json:"aestheticRatios"`
	// GoldenRatioCompliance is 1.0 only when the request supplies a
	// sacred ratio equal to the golden ratio. A different supplied
	// value, or no value at all, both score 0.5.
	GoldenRatioCompliance float64 `json:"goldenRatioCompliance"`
	// SacredElements tags which sacred-geometry parameters were present
	// in the request, regardless of their values.
	SacredElements []string `json:"sacredElements"`
}

// StyleAnalysis scores the visual character of the applied style. The
// scores are fixed placeholders in [0, 1]; the shape of the struct is
// stable so callers can persist it.
type StyleAnalysis struct {
	ColorHarmony     float64 `json:"colorHarmony"`
	CompositionScore float64 `json:"compositionScore"`
	TextureRichness  float64 `json:"textureRichness"`
	ContrastLevel    float64 `json:"contrastLevel"`
	StyleFidelity    float64 `json:"styleFidelity"`
}

// Pattern analyzes a pattern definition.
func Pattern(def pattern.Definition) PatternAnalysis {
	a := PatternAnalysis{
		Symmetry:              0.8,
		Complexity:            def.Complexity,
		FractalDimension:      1.0,
		AestheticRatios:       append([]float64(nil), aestheticRatios[:]...),
		GoldenRatioCompliance: 0.5,
		SacredElements:        []string{},
	}

	if def.Kind == pattern.KindFractal {
		iters := def.Fractal.WithDefaults().Iterations
		a.FractalDimension = math.Log(float64(iters)) / math.Log(3)
	}

	if s := def.Sacred; s != nil {
		if s.SacredRatio != nil {
			a.SacredElements = append(a.SacredElements, "sacredRatio")
			if *s.SacredRatio == goldenRatio {
				a.GoldenRatioCompliance = 1.0
			}
		}
		if s.PetalCount != nil {
			a.SacredElements = append(a.SacredElements, "petalCount")
		}
		if s.SpiralCount != nil {
			a.SacredElements = append(a.SacredElements, "spiralCount")
		}
	}

	return a
}

// Style analyzes an art style.
func Style(style pattern.ArtStyle) StyleAnalysis {
	return StyleAnalysis{
		ColorHarmony:     0.85,
		CompositionScore: 0.8,
		TextureRichness:  0.75,
		ContrastLevel:    0.7,
		StyleFidelity:    0.9,
	}
}

// EmptyPattern is the sentinel analysis attached to failed generations.
func EmptyPattern() PatternAnalysis {
	return PatternAnalysis{
		AestheticRatios: []float64{},
		SacredElements:  []string{},
	}
}

// EmptyStyle is the sentinel style analysis for failed generations.
func EmptyStyle() StyleAnalysis {
	return StyleAnalysis{}
}
