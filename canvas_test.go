package synth

import (
	"math"
	"testing"
)

func TestCanvasFillCircle(t *testing.T) {
	c := NewCanvas(50, 50)
	c.SetRGB(1, 0, 0)
	c.DrawCircle(25, 25, 10)
	c.Fill()

	if got := c.GetPixel(25, 25); !colorClose(got, RGB(1, 0, 0), 0.005) {
		t.Errorf("center pixel = %v, want red", got)
	}
	if got := c.GetPixel(2, 2); got != Transparent {
		t.Errorf("corner pixel = %v, want untouched", got)
	}
}

func TestCanvasFillHexagonInBounds(t *testing.T) {
	c := NewCanvas(200, 200)
	c.SetRGB(0, 1, 0)
	c.DrawRegularPolygon(100, 100, 90, 6, 0)
	c.Fill()

	center := Pt(100, 100)
	painted := 0
	for y := 0; y < 200; y++ {
		for x := 0; x < 200; x++ {
			if c.GetPixel(x, y) == Transparent {
				continue
			}
			painted++
			// Every painted pixel lies within the circumradius
			// (plus a pixel of rasterization slack).
			if d := Pt(float64(x), float64(y)).Distance(center); d > 91 {
				t.Fatalf("painted pixel (%d,%d) at distance %v from center", x, y, d)
			}
		}
	}
	if painted == 0 {
		t.Fatal("hexagon fill painted nothing")
	}
	// A hexagon with r=90 covers more than half its bounding circle.
	if area := math.Pi * 90 * 90 / 2; float64(painted) < area {
		t.Errorf("painted %d pixels, want at least %v", painted, area)
	}
}

func TestCanvasTranslate(t *testing.T) {
	c := NewCanvas(100, 100)
	c.Translate(40, 40)
	c.SetRGB(0, 0, 1)
	c.DrawCircle(0, 0, 10)
	c.Fill()

	if got := c.GetPixel(40, 40); !colorClose(got, RGB(0, 0, 1), 0.005) {
		t.Errorf("translated center = %v, want blue", got)
	}
	if got := c.GetPixel(5, 5); got != Transparent {
		t.Errorf("origin = %v, want untouched", got)
	}
}

func TestCanvasPushPop(t *testing.T) {
	c := NewCanvas(10, 10)
	c.SetLineWidth(5)
	c.SetGlobalAlpha(0.25)
	c.Translate(3, 3)

	c.Push()
	c.SetLineWidth(1)
	c.SetGlobalAlpha(1)
	c.Translate(20, 20)
	c.Pop()

	if got := c.GlobalAlpha(); got != 0.25 {
		t.Errorf("GlobalAlpha after Pop = %v, want 0.25", got)
	}
	if x, y := c.TransformPoint(0, 0); x != 3 || y != 3 {
		t.Errorf("TransformPoint after Pop = (%v, %v), want (3, 3)", x, y)
	}

	// Pop on an empty stack is a no-op.
	c.Pop()
	c.Pop()
}

func TestCanvasGlobalAlphaFill(t *testing.T) {
	c := NewCanvas(10, 10)
	c.ClearWith(White)
	c.SetRGB(0, 0, 0)
	c.SetGlobalAlpha(0.5)
	c.DrawRectangle(0, 0, 10, 10)
	c.Fill()

	got := c.GetPixel(5, 5)
	want := RGBA{R: 0.5, G: 0.5, B: 0.5, A: 1}
	if !colorClose(got, want, 0.01) {
		t.Errorf("pixel = %v, want %v", got, want)
	}
}

func TestCanvasClearResetsState(t *testing.T) {
	c := NewCanvas(10, 10)
	c.Translate(5, 5)
	c.SetGlobalAlpha(0.3)
	c.Push()
	c.ClearWith(RGB(1, 1, 0))

	if got := c.GlobalAlpha(); got != 1 {
		t.Errorf("GlobalAlpha after clear = %v, want 1", got)
	}
	if x, y := c.TransformPoint(1, 2); x != 1 || y != 2 {
		t.Errorf("transform after clear = (%v, %v), want identity", x, y)
	}
	if got := c.GetPixel(0, 0); !colorClose(got, RGB(1, 1, 0), 0.005) {
		t.Errorf("pixel after clear = %v, want yellow", got)
	}
}

func TestCanvasStrokeLine(t *testing.T) {
	c := NewCanvas(40, 40)
	c.SetRGB(1, 1, 1)
	c.SetLineWidth(3)
	c.DrawLine(5, 20, 35, 20)
	c.Stroke()

	if got := c.GetPixel(20, 20); got == Transparent {
		t.Error("stroke left the line's midpoint unpainted")
	}
	if got := c.GetPixel(20, 5); got != Transparent {
		t.Errorf("pixel far from the line = %v, want untouched", got)
	}
}

func TestCanvasRadialGradientFill(t *testing.T) {
	c := NewCanvas(60, 60)
	g := NewRadialGradientBrush(30, 30, 30).
		AddColorStop(0, White).
		AddColorStop(1, Black)
	c.SetBrush(g)
	c.DrawRectangle(0, 0, 60, 60)
	c.Fill()

	center := c.GetPixel(30, 30)
	corner := c.GetPixel(0, 0)
	if center.R < 0.9 {
		t.Errorf("center = %v, want near white", center)
	}
	if corner.R > 0.1 {
		t.Errorf("corner = %v, want near black", corner)
	}
}
