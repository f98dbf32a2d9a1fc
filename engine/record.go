package engine

import (
	"time"

	"github.com/patternforge/synth/analyze"
	"github.com/patternforge/synth/pattern"
)

// FailureCode classifies why a generation failed. Codes are stable
// strings so callers can branch on them or persist them.
type FailureCode string

const (
	// FailureNone means the generation succeeded.
	FailureNone FailureCode = ""
	// FailureInvalidParams means the request's parameters were rejected
	// before or during rendering.
	FailureInvalidParams FailureCode = "invalid-params"
	// FailureInternal means rendering or encoding faulted unexpectedly.
	FailureInternal FailureCode = "internal"
)

// Request describes one piece of art to generate.
type Request struct {
	// Pattern selects the pattern family, its parameters, and the style
	// applied afterward.
	Pattern pattern.Definition
}

// Record is the complete outcome of one generation. It is returned for
// failures as well as successes; check Result.Success.
type Record struct {
	// ID is a fresh UUID assigned per generation.
	ID string `json:"id"`
	// Request echoes the request that produced this record.
	Request Request `json:"request"`
	Result  Result  `json:"result"`
	// Connections carries the request's real-world connection tag, when
	// one was supplied.
	Connections []string `json:"connections"`
	Metadata    Metadata `json:"metadata"`
}

// Result holds the rendered image and its analyses.
type Result struct {
	Success bool `json:"success"`
	// ImagePNG is the encoded surface. Empty on failure.
	ImagePNG []byte `json:"imagePng,omitempty"`
	// Error is a human-readable failure message; Code is its stable
	// classification. Both are empty on success.
	Error string      `json:"error,omitempty"`
	Code  FailureCode `json:"code,omitempty"`

	PatternAnalysis analyze.PatternAnalysis `json:"patternAnalysis"`
	StyleAnalysis   analyze.StyleAnalysis   `json:"styleAnalysis"`
}

// Metadata describes the generated image.
type Metadata struct {
	// GenerationTime spans request receipt through PNG encoding.
	GenerationTime time.Duration `json:"generationTime"`
	// Size is the encoded PNG length in bytes.
	Size int `json:"size"`
	// Resolution is "WxH" in pixels, e.g. "1920x1080".
	Resolution string `json:"resolution"`
	// ColorDepth is bits of color per pixel, always 24.
	ColorDepth int `json:"colorDepth"`
	// Layers counts composited layers: 3 for fusion patterns, 1 for
	// every other success, 0 on failure.
	Layers int `json:"layers"`
	// Techniques lists the style technique tags that were applied.
	Techniques []string `json:"techniques"`
}
