package synth

import "testing"

// Compile-time checks that both brush types satisfy the sealed interface.
var (
	_ Brush = SolidBrush{}
	_ Brush = (*RadialGradientBrush)(nil)
)

func TestSolidBrush(t *testing.T) {
	b := Solid(RGB(0.1, 0.2, 0.3))
	if got := b.ColorAt(0, 0); got != RGB(0.1, 0.2, 0.3) {
		t.Errorf("ColorAt(0,0) = %v", got)
	}
	if got := b.ColorAt(1000, -1000); got != RGB(0.1, 0.2, 0.3) {
		t.Errorf("ColorAt(1000,-1000) = %v", got)
	}
}

func TestRadialGradientBrush(t *testing.T) {
	g := NewRadialGradientBrush(50, 50, 100).
		AddColorStop(0, Black).
		AddColorStop(1, White)

	tests := []struct {
		name string
		x, y float64
		want RGBA
	}{
		{"center", 50, 50, Black},
		{"edge", 150, 50, White},
		{"beyond radius pads", 350, 50, White},
		{"midpoint", 100, 50, RGB(0.5, 0.5, 0.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.ColorAt(tt.x, tt.y)
			if !colorClose(got, tt.want, 1e-9) {
				t.Errorf("ColorAt(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRadialGradientStopEdgeCases(t *testing.T) {
	t.Run("no stops", func(t *testing.T) {
		g := NewRadialGradientBrush(0, 0, 10)
		if got := g.ColorAt(5, 0); got != Transparent {
			t.Errorf("ColorAt = %v, want transparent", got)
		}
	})

	t.Run("single stop", func(t *testing.T) {
		g := NewRadialGradientBrush(0, 0, 10).AddColorStop(0.5, White)
		if got := g.ColorAt(100, 100); got != White {
			t.Errorf("ColorAt = %v, want white", got)
		}
	})

	t.Run("unsorted stops", func(t *testing.T) {
		g := NewRadialGradientBrush(0, 0, 10).
			AddColorStop(1, White).
			AddColorStop(0, Black)
		if got := g.ColorAt(0, 0); got != Black {
			t.Errorf("center = %v, want black", got)
		}
		if got := g.ColorAt(10, 0); got != White {
			t.Errorf("edge = %v, want white", got)
		}
	})

	t.Run("zero radius", func(t *testing.T) {
		g := NewRadialGradientBrush(0, 0, 0).
			AddColorStop(0, Black).
			AddColorStop(1, White)
		if got := g.ColorAt(3, 4); got != Black {
			t.Errorf("ColorAt = %v, want first stop", got)
		}
	})
}
