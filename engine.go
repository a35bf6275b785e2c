package tulis

import (
	"errors"
	"image"
	"sync"

	"github.com/google/uuid"
)

// Engine ties capture, template rasterization and evaluation together
// for one drawing surface. Surface and mask are always built from the
// same Scale.
//
// Engine is safe for concurrent use. Operations are serialized, so a
// Reset completes before any later Begin is observed.
type Engine struct {
	mu sync.Mutex

	opts    options
	scale   Scale
	surface *Surface
	capture *Capture
	raster  *Rasterizer
	eval    Evaluator

	target  Target
	mask    *TemplateMask
	guide   bool
	attempt uuid.UUID
}

// New creates an Engine. With an invalid canvas size the engine starts
// unsized: capture operations are no-ops and evaluation never matches
// until Resize succeeds.
func New(opts ...Option) *Engine {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.evaluator == nil {
		o.evaluator = NewOverlap()
	}

	e := &Engine{
		opts:    o,
		raster:  NewRasterizer(o.font, o.fontSize),
		eval:    o.evaluator,
		guide:   o.guide,
		attempt: uuid.New(),
	}
	if err := e.resize(o.width, o.height, o.dpr); err != nil {
		Logger().Warn("engine starts unsized", "err", err)
		e.capture = NewCapture(nil, e.captureConfig())
	}
	return e
}

func (e *Engine) captureConfig() CaptureConfig {
	return CaptureConfig{
		Ink:             e.opts.ink,
		JitterThreshold: e.opts.jitter,
		Coalesce:        e.opts.coalesce,
		Layout:          e.opts.layout,
	}
}

// Resize re-initializes the surface for a new logical size and device
// pixel ratio. The drawing is cleared and the template is rebuilt.
func (e *Engine) Resize(width, height int, dpr float64) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.resize(width, height, dpr); err != nil {
		return err
	}
	Logger().Info("surface resized", "scale", e.scale.String(), "attempt", e.attempt)
	return nil
}

func (e *Engine) resize(width, height int, dpr float64) error {
	scale, err := NewScale(width, height, dpr)
	if err != nil {
		return err
	}
	surface, err := NewSurface(scale)
	if err != nil {
		return err
	}
	e.scale = scale
	e.surface = surface
	e.capture = NewCapture(surface, e.captureConfig())
	e.attempt = uuid.New()
	_ = e.rebuild()
	return nil
}

// rebuild regenerates the mask and overlay for the current target and
// scale. Failures leave no mask, which evaluates as no match.
func (e *Engine) rebuild() error {
	e.mask = nil
	e.surface.SetOverlay(nil)
	if e.target.IsZero() || !e.surface.Ready() {
		return nil
	}

	var errs []error
	mask, err := e.raster.RenderMask(e.target, e.scale)
	if err != nil {
		errs = append(errs, err)
	} else {
		e.mask = mask
	}
	if e.guide {
		overlay, err := e.raster.Overlay(e.target, e.scale)
		if err != nil {
			errs = append(errs, err)
		} else {
			e.surface.SetOverlay(overlay)
		}
	}
	if err := errors.Join(errs...); err != nil {
		Logger().Warn("template unavailable",
			"target", e.target.String(), "attempt", e.attempt, "err", err)
		return err
	}
	return nil
}

// SetTarget parses s and makes it the target of a new attempt: the
// drawing is cleared and the template is rebuilt. A parse error leaves
// the engine unchanged. A target the font cannot render is still set,
// and evaluates as no match.
func (e *Engine) SetTarget(s string) error {
	t, err := ParseTarget(s)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	e.target = t
	e.capture.Reset()
	e.attempt = uuid.New()
	Logger().Info("target changed", "target", t.String(), "attempt", e.attempt)
	return e.rebuild()
}

// Target returns the current target.
func (e *Engine) Target() Target {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.target
}

// Attempt returns the identifier of the current drawing attempt.
func (e *Engine) Attempt() uuid.UUID {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.attempt
}

// Scale returns the current logical-to-device transform.
func (e *Engine) Scale() Scale {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.scale
}

// Begin starts a stroke.
func (e *Engine) Begin(ev PointerEvent) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.capture.Begin(ev)
}

// Extend continues the active stroke.
func (e *Engine) Extend(ev PointerEvent) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.capture.Extend(ev)
}

// End finishes the active stroke. It is safe to call at any time.
func (e *Engine) End() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.capture.End()
}

// Frame paints moves queued by frame coalescing. Call it once per
// animation frame.
func (e *Engine) Frame() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.capture.Frame()
}

// Reset clears the drawing and starts a new attempt at the same target.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.capture.Reset()
	e.attempt = uuid.New()
	Logger().Debug("drawing reset", "target", e.target.String(), "attempt", e.attempt)
}

// HasDrawnAnything reports whether any ink was laid down in this attempt.
func (e *Engine) HasDrawnAnything() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.capture.HasDrawn()
}

// Points returns the captured points of this attempt.
func (e *Engine) Points() []Point {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.capture.Points()
}

// Strokes returns the captured points of this attempt split by stroke.
func (e *Engine) Strokes() [][]Point {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.capture.Strokes()
}

// Evaluate checks the drawing against the target. A stroke in progress
// is evaluated as drawn so far.
func (e *Engine) Evaluate() Verdict {
	e.mu.Lock()
	defer e.mu.Unlock()

	in := Input{
		Target:   e.target,
		Scale:    e.scale,
		Surface:  e.surface.Pixmap(),
		Mask:     e.mask,
		Strokes:  e.capture.Sequence(),
		HasDrawn: e.capture.HasDrawn(),
	}
	v := e.eval.Evaluate(in)
	v.Target = e.target
	v.Attempt = e.attempt
	Logger().Debug("evaluated",
		"target", e.target.String(),
		"strategy", v.Strategy,
		"matched", v.Matched,
		"confidence", v.Confidence,
		"ratio", v.Ratio,
		"attempt", e.attempt,
	)
	return v
}

// SetEvaluator replaces the matching strategy. Nil restores Overlap.
func (e *Engine) SetEvaluator(ev Evaluator) {
	if ev == nil {
		ev = NewOverlap()
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.eval = ev
}

// Evaluator returns the matching strategy.
func (e *Engine) Evaluator() Evaluator {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.eval
}

// SetGuide shows or hides the faint target outline on the surface. The
// overlay is a separate layer and never counts as ink.
func (e *Engine) SetGuide(on bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.guide == on {
		return
	}
	e.guide = on
	_ = e.rebuild()
}

// Guide reports whether the guide overlay is shown.
func (e *Engine) Guide() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.guide
}

// Mask returns the template mask of the current target and scale, or nil
// when there is none.
func (e *Engine) Mask() *TemplateMask {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mask
}

// Surface returns the drawing surface. It is replaced by Resize.
func (e *Engine) Surface() *Surface {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.surface
}

// Display returns what the user sees: ink plus guide overlay.
func (e *Engine) Display() *image.RGBA {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.capture.Frame()
	return e.surface.Display()
}
