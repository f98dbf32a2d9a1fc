// Package raster provides scanline rasterization for 2D paths.
package raster

import (
	"math"
	"sort"
)

// RGBA represents a color (internal copy to avoid import cycle).
type RGBA struct {
	R, G, B, A float64
}

// Device is an interface for compositing pixels (avoids import cycle).
type Device interface {
	Width() int
	Height() int
	BlendPixel(x, y int, c RGBA)
}

// Shader supplies the color for each covered pixel. Solid brushes return
// a constant; gradient brushes sample their ramp at the pixel position.
type Shader interface {
	ColorAt(x, y float64) RGBA
}

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// crossing is an edge intersection with the current scanline.
type crossing struct {
	x   float64
	dir int
}

// Fill rasterizes filled subpaths onto a device, sampling the shader at
// every covered pixel center.
func Fill(device Device, subpaths [][]Point, fillRule FillRule, shader Shader) {
	edges := buildEdges(subpaths)
	if len(edges) == 0 {
		return
	}

	yMin := math.MaxFloat64
	yMax := -math.MaxFloat64
	for _, e := range edges {
		yMin = math.Min(yMin, e.y0)
		yMax = math.Max(yMax, e.y1)
	}

	yMinInt := int(math.Floor(yMin))
	yMaxInt := int(math.Ceil(yMax))
	if yMinInt < 0 {
		yMinInt = 0
	}
	if yMaxInt > device.Height() {
		yMaxInt = device.Height()
	}

	crossings := make([]crossing, 0, 16)
	for y := yMinInt; y < yMaxInt; y++ {
		scanY := float64(y) + 0.5

		crossings = crossings[:0]
		for i := range edges {
			e := &edges[i]
			if e.y0 <= scanY && scanY < e.y1 {
				crossings = append(crossings, crossing{x: e.XAtY(scanY), dir: e.dir})
			}
		}
		if len(crossings) == 0 {
			continue
		}
		sort.Slice(crossings, func(i, j int) bool {
			return crossings[i].x < crossings[j].x
		})

		if fillRule == FillRuleNonZero {
			fillNonZero(device, crossings, y, shader)
		} else {
			fillEvenOdd(device, crossings, y, shader)
		}
	}
}

// buildEdges converts subpath polylines into a scanline edge list,
// dropping near-horizontal edges.
func buildEdges(subpaths [][]Point) []Edge {
	var edges []Edge
	for _, points := range subpaths {
		for i := 0; i < len(points)-1; i++ {
			p0 := points[i]
			p1 := points[i+1]
			if math.Abs(p1.Y-p0.Y) < 0.001 {
				continue
			}
			edges = append(edges, NewEdge(p0, p1))
		}
	}
	return edges
}

// fillNonZero fills using the non-zero winding rule.
func fillNonZero(device Device, crossings []crossing, y int, shader Shader) {
	winding := 0
	var x1 float64

	for _, c := range crossings {
		if winding == 0 {
			x1 = c.x
		}
		winding += c.dir
		if winding == 0 {
			fillSpan(device, int(x1), int(c.x), y, shader)
		}
	}
}

// fillEvenOdd fills using the even-odd rule.
func fillEvenOdd(device Device, crossings []crossing, y int, shader Shader) {
	for i := 0; i+1 < len(crossings); i += 2 {
		fillSpan(device, int(crossings[i].x), int(crossings[i+1].x), y, shader)
	}
}

// fillSpan composites a horizontal span of shaded pixels.
func fillSpan(device Device, x1, x2, y int, shader Shader) {
	if y < 0 || y >= device.Height() {
		return
	}
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if x1 < 0 {
		x1 = 0
	}
	if x2 > device.Width() {
		x2 = device.Width()
	}
	for x := x1; x < x2; x++ {
		device.BlendPixel(x, y, shader.ColorAt(float64(x)+0.5, float64(y)+0.5))
	}
}

// Stroke rasterizes stroked subpaths by filling a quad per segment.
func Stroke(device Device, subpaths [][]Point, lineWidth float64, shader Shader) {
	if lineWidth < 1 {
		lineWidth = 1
	}
	for _, points := range subpaths {
		for i := 0; i < len(points)-1; i++ {
			strokeLine(device, points[i], points[i+1], lineWidth, shader)
		}
	}
}

// strokeLine draws a thick line.
func strokeLine(device Device, p0, p1 Point, width float64, shader Shader) {
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	length := math.Sqrt(dx*dx + dy*dy)
	if length < 0.001 {
		return
	}

	// Perpendicular vector, offset by half width
	nx := -dy / length
	ny := dx / length
	offset := width / 2

	quad := []Point{
		{X: p0.X + nx*offset, Y: p0.Y + ny*offset},
		{X: p0.X - nx*offset, Y: p0.Y - ny*offset},
		{X: p1.X - nx*offset, Y: p1.Y - ny*offset},
		{X: p1.X + nx*offset, Y: p1.Y + ny*offset},
	}
	quad = append(quad, quad[0])
	Fill(device, [][]Point{quad}, FillRuleNonZero, shader)
}
