package tulis

import "github.com/gogpu/tulis/text"

// Default canvas of the writing screen, in logical pixels.
const (
	DefaultWidth  = 300
	DefaultHeight = 300
)

// Option configures an Engine during creation.
//
// Example:
//
//	// Default 300×300 canvas at 1x, overlap strategy
//	e := tulis.New()
//
//	// Retina phone, lenient checking
//	e := tulis.New(tulis.WithSize(320, 320), tulis.WithDPR(3),
//	    tulis.WithEvaluator(tulis.Chain{tulis.NewOverlap(), tulis.NewDensity()}))
type Option func(*options)

// options holds optional configuration for Engine creation.
type options struct {
	width, height int
	dpr           float64
	ink           Stroke
	fontSize      float64
	font          *text.FontSource
	evaluator     Evaluator
	jitter        float64
	coalesce      bool
	guide         bool
	layout        func() Rect
}

// defaultOptions returns the default engine options.
func defaultOptions() options {
	return options{
		width:    DefaultWidth,
		height:   DefaultHeight,
		dpr:      1,
		ink:      DefaultInk(),
		fontSize: DefaultFontSize,
		jitter:   DefaultJitterThreshold,
	}
}

// WithSize sets the logical canvas size.
func WithSize(width, height int) Option {
	return func(o *options) {
		o.width, o.height = width, height
	}
}

// WithDPR sets the device pixel ratio.
func WithDPR(dpr float64) Option {
	return func(o *options) {
		o.dpr = dpr
	}
}

// WithInk sets the pen style.
func WithInk(s Stroke) Option {
	return func(o *options) {
		o.ink = s
	}
}

// WithFontSize sets the template glyph size in logical pixels. The glyph
// is still shrunk to fit small canvases.
func WithFontSize(size float64) Option {
	return func(o *options) {
		o.fontSize = size
	}
}

// WithFont sets the font templates are drawn from.
// The default is the embedded Go Bold.
func WithFont(src *text.FontSource) Option {
	return func(o *options) {
		o.font = src
	}
}

// WithEvaluator sets the matching strategy. The default is Overlap.
func WithEvaluator(e Evaluator) Option {
	return func(o *options) {
		o.evaluator = e
	}
}

// WithJitterThreshold sets the minimum move, in logical pixels, that is
// recorded. Zero records every move.
func WithJitterThreshold(d float64) Option {
	return func(o *options) {
		o.jitter = d
	}
}

// WithFrameCoalescing makes Extend queue moves until the next Frame call,
// so repaints happen at most once per animation frame.
func WithFrameCoalescing(on bool) Option {
	return func(o *options) {
		o.coalesce = on
	}
}

// WithGuide starts the engine with the guide overlay shown.
func WithGuide(on bool) Option {
	return func(o *options) {
		o.guide = on
	}
}

// WithLayout sets the lookup of the surface's on-screen rectangle used to
// map viewport coordinates onto the canvas.
func WithLayout(layout func() Rect) Option {
	return func(o *options) {
		o.layout = layout
	}
}
