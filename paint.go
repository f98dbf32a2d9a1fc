package synth

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// Paint represents the styling information for drawing.
type Paint struct {
	// Brush is the fill or stroke brush.
	Brush Brush

	// LineWidth is the width of strokes.
	LineWidth float64

	// FillRule is the fill rule for paths.
	FillRule FillRule

	// GlobalAlpha scales the alpha of every drawing operation in [0, 1].
	// Fusion compositing and style post-processing set this to draw
	// semi-transparent layers without touching individual brush colors.
	GlobalAlpha float64
}

// NewPaint creates a new Paint with default values.
func NewPaint() *Paint {
	return &Paint{
		Brush:       Solid(Black),
		LineWidth:   1.0,
		FillRule:    FillRuleNonZero,
		GlobalAlpha: 1.0,
	}
}

// ColorAt returns the brush color at the given position with GlobalAlpha
// applied.
func (p *Paint) ColorAt(x, y float64) RGBA {
	c := p.Brush.ColorAt(x, y)
	if p.GlobalAlpha < 1 {
		c.A *= clamp01(p.GlobalAlpha)
	}
	return c
}
