// Package engine orchestrates art generation: it owns the raster
// surface, dispatches pattern renderers, applies style post-processing,
// encodes the result, and packages analyses and metadata into a Record.
package engine

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/patternforge/synth"
	"github.com/patternforge/synth/analyze"
	"github.com/patternforge/synth/pattern"
	"github.com/patternforge/synth/render"
)

// Default surface dimensions.
const (
	DefaultWidth  = 1920
	DefaultHeight = 1080
)

// Engine generates art records. It owns a single canvas, so concurrent
// GenerateArt calls are serialized; construct one Engine per worker for
// parallel generation.
type Engine struct {
	mu      sync.Mutex
	canvas  *synth.Canvas
	rng     *rand.Rand
	catalog pattern.Catalog
	log     *slog.Logger
}

// Option configures an Engine.
type Option func(*config)

type config struct {
	width, height int
	rng           *rand.Rand
	catalog       pattern.Catalog
	log           *slog.Logger
}

// WithSize sets the surface dimensions. Non-positive values are
// ignored.
func WithSize(width, height int) Option {
	return func(c *config) {
		if width > 0 && height > 0 {
			c.width, c.height = width, height
		}
	}
}

// WithSeed makes generation deterministic: the same seed and request
// sequence produces byte-identical images.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies the random source directly. It overrides WithSeed.
func WithRand(rng *rand.Rand) Option {
	return func(c *config) {
		if rng != nil {
			c.rng = rng
		}
	}
}

// WithCatalog sets the template catalog consulted by fusion patterns.
func WithCatalog(cat pattern.Catalog) Option {
	return func(c *config) {
		if cat != nil {
			c.catalog = cat
		}
	}
}

// WithLogger sets the engine's structured logger.
func WithLogger(log *slog.Logger) Option {
	return func(c *config) {
		if log != nil {
			c.log = log
		}
	}
}

// New constructs an Engine. Without options: 1920x1080 surface, the
// built-in template catalog, an unseeded time-based random source (every
// run unique), and the package logger.
func New(opts ...Option) *Engine {
	cfg := config{
		width:   DefaultWidth,
		height:  DefaultHeight,
		catalog: pattern.Builtin(),
		log:     synth.Logger(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{
		canvas:  synth.NewCanvas(cfg.width, cfg.height),
		rng:     cfg.rng,
		catalog: cfg.catalog,
		log:     cfg.log,
	}
}

// GenerateArt renders one request and returns its complete record. It
// never returns an error: renderer failures and panics are captured in
// the record with a failure code. The ctx parameter is accepted for API
// uniformity; rendering is not cancelable mid-frame.
func (e *Engine) GenerateArt(ctx context.Context, req Request) Record {
	_ = ctx

	e.mu.Lock()
	defer e.mu.Unlock()

	start := time.Now()
	rec := Record{
		ID:          uuid.NewString(),
		Request:     req,
		Connections: []string{},
	}
	if c := req.Pattern.RealWorldConnection; c != "" {
		rec.Connections = append(rec.Connections, c)
	}

	png, err := e.renderPNG(req.Pattern)
	elapsed := time.Since(start)
	if err != nil {
		code := FailureInternal
		if errors.Is(err, render.ErrInvalidParams) {
			code = FailureInvalidParams
		}
		e.log.Warn("generation failed",
			"id", rec.ID,
			"kind", req.Pattern.Kind.String(),
			"code", string(code),
			"error", err)

		rec.Result = Result{
			Success:         false,
			Error:           err.Error(),
			Code:            code,
			PatternAnalysis: analyze.EmptyPattern(),
			StyleAnalysis:   analyze.EmptyStyle(),
		}
		rec.Metadata = e.metadata(elapsed, 0, 0, nil)
		return rec
	}

	style := render.EffectiveStyle(req.Pattern)
	rec.Result = Result{
		Success:         true,
		ImagePNG:        png,
		PatternAnalysis: analyze.Pattern(req.Pattern),
		StyleAnalysis:   analyze.Style(style),
	}
	layers := 1
	if req.Pattern.Kind == pattern.KindFusion {
		layers = 3
	}
	rec.Metadata = e.metadata(elapsed, len(png), layers, style.Techniques)

	e.log.Info("generated",
		"id", rec.ID,
		"kind", req.Pattern.Kind.String(),
		"bytes", len(png),
		"elapsed", elapsed)
	return rec
}

// renderPNG runs the full pipeline for one definition: clear, render,
// post-process, encode. Panics from renderers surface as errors here so
// GenerateArt stays total.
func (e *Engine) renderPNG(def pattern.Definition) (data []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("render panic: %v", r)
		}
	}()

	e.canvas.ClearWith(synth.Black)

	r := render.For(def.Kind, e.catalog)
	if err := r.Render(e.canvas, def, e.rng); err != nil {
		return nil, err
	}
	render.ApplyStyle(e.canvas, render.EffectiveStyle(def), e.rng)

	var buf bytes.Buffer
	if err := e.canvas.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// metadata assembles the image metadata block.
func (e *Engine) metadata(elapsed time.Duration, size, layers int, techniques []string) Metadata {
	if techniques == nil {
		techniques = []string{}
	}
	return Metadata{
		GenerationTime: elapsed,
		Size:           size,
		Resolution:     fmt.Sprintf("%dx%d", e.canvas.Width(), e.canvas.Height()),
		ColorDepth:     24,
		Layers:         layers,
		Techniques:     techniques,
	}
}
