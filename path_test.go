package synth

import (
	"math"
	"testing"
)

func TestPathBasics(t *testing.T) {
	p := NewPath()
	if !p.IsEmpty() {
		t.Error("new path is not empty")
	}

	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.CubicTo(15, 5, 20, 5, 25, 0)
	p.Close()

	if p.IsEmpty() {
		t.Error("path is empty after adding elements")
	}
	if got := len(p.Elements()); got != 4 {
		t.Errorf("len(Elements()) = %d, want 4", got)
	}

	p.Clear()
	if !p.IsEmpty() {
		t.Error("path is not empty after Clear")
	}
}

func TestRegularPolygon(t *testing.T) {
	tests := []struct {
		name      string
		sides     int
		wantElems int // MoveTo + (sides-1) LineTo + Close
	}{
		{"triangle", 3, 5},
		{"hexagon", 6, 8},
		{"clamped digon", 2, 5},
		{"clamped zero", 0, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPath()
			p.RegularPolygon(0, 0, 10, tt.sides, 0)
			if got := len(p.Elements()); got != tt.wantElems {
				t.Errorf("len(Elements()) = %d, want %d", got, tt.wantElems)
			}
		})
	}
}

func TestRegularPolygonVertices(t *testing.T) {
	// A square rotated by 0 starts at (cx+r, cy) and every vertex lies
	// on the circumscribed circle.
	p := NewPath()
	cx, cy, r := 50.0, 60.0, 20.0
	p.RegularPolygon(cx, cy, r, 4, 0)

	for _, el := range p.Elements() {
		var pt Point
		switch e := el.(type) {
		case MoveTo:
			pt = e.Point
		case LineTo:
			pt = e.Point
		default:
			continue
		}
		d := pt.Distance(Pt(cx, cy))
		if math.Abs(d-r) > 1e-9 {
			t.Errorf("vertex %v at distance %v, want %v", pt, d, r)
		}
	}
}

func TestCircleElements(t *testing.T) {
	p := NewPath()
	p.Circle(0, 0, 10)
	// MoveTo + 4 cubic arcs + Close.
	if got := len(p.Elements()); got != 6 {
		t.Errorf("len(Elements()) = %d, want 6", got)
	}
}

func TestCloseReturnsToStart(t *testing.T) {
	p := NewPath()
	p.MoveTo(3, 4)
	p.LineTo(10, 10)
	p.Close()
	p.LineTo(5, 4)

	// The LineTo after Close starts from the subpath origin.
	last := p.Elements()[len(p.Elements())-1].(LineTo)
	if last.Point != Pt(5, 4) {
		t.Errorf("last point = %v", last.Point)
	}
}
