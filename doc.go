// Package synth is a procedural 2D pattern-synthesis engine.
//
// # Overview
//
// synth renders geometric, organic, fractal, sacred-geometry, and fused
// patterns onto an owned raster surface, then derives quantitative
// descriptors (symmetry, fractal dimension, golden-ratio compliance) from
// the generation request. The root package provides the drawing core: a
// pixel buffer (Pixmap) and an immediate-mode drawing context (Canvas)
// with paths, brushes, and an explicit transform stack.
//
// # Quick Start
//
//	import (
//	    "github.com/patternforge/synth/engine"
//	    "github.com/patternforge/synth/pattern"
//	)
//
//	eng := engine.New(engine.WithSize(800, 600))
//	rec := eng.GenerateArt(context.Background(), engine.Request{
//	    Pattern: pattern.Definition{Kind: pattern.KindFractal},
//	})
//	if rec.Result.Success {
//	    os.WriteFile("out.png", rec.Result.ImagePNG, 0o644)
//	}
//
// # Architecture
//
// The repository is organized into:
//   - Root package: Canvas, Pixmap, Path, Brush, Paint, Matrix, Point
//   - internal/: geom (curve flattening), raster (scanline fill/stroke),
//     blend (compositing)
//   - pattern/: the closed pattern-definition model and template catalog
//   - render/: one renderer per pattern kind plus style post-processing
//   - analyze/: request-derived pattern and style analysis
//   - engine/: the orchestrator tying the above together
//
// # Coordinate System
//
// Standard raster coordinates: origin (0,0) at top-left, X increases
// right, Y increases down, angles in radians unless documented otherwise.
//
// # Concurrency
//
// A Canvas is not safe for concurrent use. The engine serializes
// generation calls against its single owned surface; create one engine
// per goroutine for parallel generation.
package synth

// Version is the current version of the library.
const Version = "0.1.0"
