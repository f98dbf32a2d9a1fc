package synth

import (
	"io"

	"github.com/patternforge/synth/internal/geom"
	"github.com/patternforge/synth/internal/raster"
)

// Canvas is the raster surface and its drawing context.
// It maintains a pixmap, current path, paint state, and an explicit
// transform/alpha stack. The pixmap dimensions are fixed at construction;
// create a new Canvas to change output resolution.
//
// A Canvas is owned by exactly one caller at a time; it is not safe for
// concurrent use.
type Canvas struct {
	width  int
	height int
	pixmap *Pixmap

	// Current state
	path  *Path
	paint *Paint

	// Explicit transform stack: matrix plus the state Push snapshots.
	matrix Matrix
	stack  []canvasState
}

// canvasState is the saved state for Push/Pop.
type canvasState struct {
	matrix      Matrix
	globalAlpha float64
	lineWidth   float64
	brush       Brush
}

// NewCanvas creates a new drawing canvas with the given dimensions.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		pixmap: NewPixmap(width, height),
		path:   NewPath(),
		paint:  NewPaint(),
		matrix: Identity(),
		stack:  make([]canvasState, 0, 8),
	}
}

// Width returns the width of the canvas.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the height of the canvas.
func (c *Canvas) Height() int {
	return c.height
}

// Pixmap returns the canvas's pixel buffer.
func (c *Canvas) Pixmap() *Pixmap {
	return c.pixmap
}

// Clear fills the entire canvas with opaque black and resets path,
// transform, and paint state.
func (c *Canvas) Clear() {
	c.ClearWith(Black)
}

// ClearWith fills the entire canvas with a specific color and resets
// path, transform, and paint state.
func (c *Canvas) ClearWith(col RGBA) {
	c.pixmap.Clear(col)
	c.path.Clear()
	c.paint = NewPaint()
	c.matrix = Identity()
	c.stack = c.stack[:0]
}

// SetBrush sets the brush used for fill and stroke operations.
func (c *Canvas) SetBrush(b Brush) {
	c.paint.Brush = b
}

// SetRGB sets a solid drawing color using RGB values (0-1).
func (c *Canvas) SetRGB(r, g, b float64) {
	c.paint.Brush = Solid(RGB(r, g, b))
}

// SetRGBA sets a solid drawing color using RGBA values (0-1).
func (c *Canvas) SetRGBA(r, g, b, a float64) {
	c.paint.Brush = Solid(RGBA{R: r, G: g, B: b, A: a})
}

// SetLineWidth sets the line width for stroking.
func (c *Canvas) SetLineWidth(width float64) {
	c.paint.LineWidth = width
}

// SetFillRule sets the fill rule.
func (c *Canvas) SetFillRule(rule FillRule) {
	c.paint.FillRule = rule
}

// SetGlobalAlpha sets the alpha multiplier applied to every subsequent
// fill and stroke. Values are clamped to [0, 1].
func (c *Canvas) SetGlobalAlpha(a float64) {
	c.paint.GlobalAlpha = clamp01(a)
}

// GlobalAlpha returns the current global alpha multiplier.
func (c *Canvas) GlobalAlpha() float64 {
	return c.paint.GlobalAlpha
}

// MoveTo starts a new subpath at the given point.
func (c *Canvas) MoveTo(x, y float64) {
	p := c.matrix.TransformPoint(Pt(x, y))
	c.path.MoveTo(p.X, p.Y)
}

// LineTo adds a line to the current path.
func (c *Canvas) LineTo(x, y float64) {
	p := c.matrix.TransformPoint(Pt(x, y))
	c.path.LineTo(p.X, p.Y)
}

// CubicTo adds a cubic Bezier curve to the current path.
func (c *Canvas) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	cp1 := c.matrix.TransformPoint(Pt(c1x, c1y))
	cp2 := c.matrix.TransformPoint(Pt(c2x, c2y))
	p := c.matrix.TransformPoint(Pt(x, y))
	c.path.CubicTo(cp1.X, cp1.Y, cp2.X, cp2.Y, p.X, p.Y)
}

// ClosePath closes the current subpath.
func (c *Canvas) ClosePath() {
	c.path.Close()
}

// ClearPath clears the current path.
func (c *Canvas) ClearPath() {
	c.path.Clear()
}

// DrawLine draws a line between two points.
func (c *Canvas) DrawLine(x1, y1, x2, y2 float64) {
	c.MoveTo(x1, y1)
	c.LineTo(x2, y2)
}

// DrawRectangle draws a rectangle.
func (c *Canvas) DrawRectangle(x, y, w, h float64) {
	c.MoveTo(x, y)
	c.LineTo(x+w, y)
	c.LineTo(x+w, y+h)
	c.LineTo(x, y+h)
	c.ClosePath()
}

// DrawCircle draws a circle.
func (c *Canvas) DrawCircle(x, y, r float64) {
	const k = 0.5522847498307936
	offset := r * k

	c.MoveTo(x+r, y)
	c.CubicTo(x+r, y+offset, x+offset, y+r, x, y+r)
	c.CubicTo(x-offset, y+r, x-r, y+offset, x-r, y)
	c.CubicTo(x-r, y-offset, x-offset, y-r, x, y-r)
	c.CubicTo(x+offset, y-r, x+r, y-offset, x+r, y)
	c.ClosePath()
}

// DrawRegularPolygon draws a closed regular polygon with sides vertices
// on a circle of radius r around (x, y), rotated by rotation radians.
// Fewer than 3 sides are clamped to 3.
func (c *Canvas) DrawRegularPolygon(x, y, r float64, sides int, rotation float64) {
	p := NewPath()
	p.RegularPolygon(x, y, r, sides, rotation)
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			c.MoveTo(e.Point.X, e.Point.Y)
		case LineTo:
			c.LineTo(e.Point.X, e.Point.Y)
		case Close:
			c.ClosePath()
		}
	}
}

// Fill fills the current path and clears it.
func (c *Canvas) Fill() {
	c.fillPath(c.path)
	c.path.Clear()
}

// Stroke strokes the current path and clears it.
func (c *Canvas) Stroke() {
	subpaths := flattenPath(c.path)
	raster.Stroke(&deviceAdapter{c.pixmap}, subpaths, c.paint.LineWidth, &paintShader{c.paint})
	c.path.Clear()
}

// FillPath fills an explicit path, leaving the canvas's current path
// untouched. The path is taken in device coordinates.
func (c *Canvas) FillPath(p *Path) {
	c.fillPath(p)
}

func (c *Canvas) fillPath(p *Path) {
	subpaths := flattenPath(p)
	rule := raster.FillRuleNonZero
	if c.paint.FillRule == FillRuleEvenOdd {
		rule = raster.FillRuleEvenOdd
	}
	raster.Fill(&deviceAdapter{c.pixmap}, subpaths, rule, &paintShader{c.paint})
}

// Push saves the current transform and paint state.
func (c *Canvas) Push() {
	c.stack = append(c.stack, canvasState{
		matrix:      c.matrix,
		globalAlpha: c.paint.GlobalAlpha,
		lineWidth:   c.paint.LineWidth,
		brush:       c.paint.Brush,
	})
}

// Pop restores the last saved state.
func (c *Canvas) Pop() {
	if len(c.stack) == 0 {
		return
	}
	s := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	c.matrix = s.matrix
	c.paint.GlobalAlpha = s.globalAlpha
	c.paint.LineWidth = s.lineWidth
	c.paint.Brush = s.brush
}

// Identity resets the transformation matrix to identity.
func (c *Canvas) Identity() {
	c.matrix = Identity()
}

// Translate applies a translation to the transformation matrix.
func (c *Canvas) Translate(x, y float64) {
	c.matrix = c.matrix.Multiply(Translate(x, y))
}

// Scale applies a scaling transformation.
func (c *Canvas) Scale(x, y float64) {
	c.matrix = c.matrix.Multiply(Scale(x, y))
}

// Rotate applies a rotation (angle in radians).
func (c *Canvas) Rotate(angle float64) {
	c.matrix = c.matrix.Multiply(Rotate(angle))
}

// RotateAbout rotates around a specific point.
func (c *Canvas) RotateAbout(angle, x, y float64) {
	c.Translate(x, y)
	c.Rotate(angle)
	c.Translate(-x, -y)
}

// TransformPoint transforms a point by the current matrix.
func (c *Canvas) TransformPoint(x, y float64) (float64, float64) {
	p := c.matrix.TransformPoint(Pt(x, y))
	return p.X, p.Y
}

// SetPixel sets a single pixel, bypassing path primitives.
func (c *Canvas) SetPixel(x, y int, col RGBA) {
	c.pixmap.SetPixel(x, y, col)
}

// GetPixel returns the color of a single pixel.
func (c *Canvas) GetPixel(x, y int) RGBA {
	return c.pixmap.GetPixel(x, y)
}

// EncodePNG writes the canvas contents as PNG to the given writer.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return c.pixmap.EncodePNG(w)
}

// SavePNG saves the canvas contents to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	return c.pixmap.SavePNG(path)
}

// flattenPath converts a path into per-subpath polylines for the
// rasterizer.
func flattenPath(p *Path) [][]raster.Point {
	elements := make([]geom.PathElement, 0, len(p.Elements()))
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			elements = append(elements, geom.MoveTo{Point: geom.Point{X: e.Point.X, Y: e.Point.Y}})
		case LineTo:
			elements = append(elements, geom.LineTo{Point: geom.Point{X: e.Point.X, Y: e.Point.Y}})
		case CubicTo:
			elements = append(elements, geom.CubicTo{
				Control1: geom.Point{X: e.Control1.X, Y: e.Control1.Y},
				Control2: geom.Point{X: e.Control2.X, Y: e.Control2.Y},
				Point:    geom.Point{X: e.Point.X, Y: e.Point.Y},
			})
		case Close:
			elements = append(elements, geom.Close{})
		}
	}

	flattened := geom.Flatten(elements)
	subpaths := make([][]raster.Point, len(flattened))
	for i, sub := range flattened {
		points := make([]raster.Point, len(sub))
		for j, pt := range sub {
			points[j] = raster.Point{X: pt.X, Y: pt.Y}
		}
		subpaths[i] = points
	}
	return subpaths
}

// deviceAdapter adapts Pixmap to the raster.Device interface.
type deviceAdapter struct {
	pixmap *Pixmap
}

func (d *deviceAdapter) Width() int {
	return d.pixmap.Width()
}

func (d *deviceAdapter) Height() int {
	return d.pixmap.Height()
}

func (d *deviceAdapter) BlendPixel(x, y int, c raster.RGBA) {
	d.pixmap.BlendPixel(x, y, RGBA{R: c.R, G: c.G, B: c.B, A: c.A})
}

// paintShader adapts Paint to the raster.Shader interface.
type paintShader struct {
	paint *Paint
}

func (s *paintShader) ColorAt(x, y float64) raster.RGBA {
	c := s.paint.ColorAt(x, y)
	return raster.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
