package tulis

// DefaultJitterThreshold is the minimum distance, in logical pixels,
// between two recorded points of a gesture.
const DefaultJitterThreshold = 1.0

// CaptureConfig configures a Capture.
type CaptureConfig struct {
	// Ink is the pen style.
	Ink Stroke

	// JitterThreshold drops moves closer than this to the previous point.
	// Zero keeps every move.
	JitterThreshold float64

	// Coalesce defers painting to Frame, at most once per animation frame.
	Coalesce bool

	// Layout returns the surface's on-screen rectangle. Nil means events
	// are already relative to the surface at its logical size.
	Layout func() Rect
}

// Capture records pointer gestures into a StrokeSequence and paints them
// onto a Surface. The two stay consistent: the surface shows exactly the
// committed points.
//
// Capture is not safe for concurrent use; Engine serializes access.
type Capture struct {
	surface *Surface
	cfg     CaptureConfig

	seq      StrokeSequence
	active   bool
	hasDrawn bool

	// last is the most recent accepted point, committed or pending.
	last    Point
	pending []Point
}

// NewCapture returns a Capture painting onto surface. A nil or unsized
// surface yields a Capture whose operations are all no-ops.
func NewCapture(surface *Surface, cfg CaptureConfig) *Capture {
	if cfg.Ink.Width <= 0 || cfg.Ink.Color == nil {
		cfg.Ink = DefaultInk()
	}
	if cfg.JitterThreshold < 0 {
		cfg.JitterThreshold = 0
	}
	return &Capture{surface: surface, cfg: cfg}
}

func (c *Capture) ready() bool {
	return c != nil && c.surface.Ready()
}

func (c *Capture) locate(ev PointerEvent) (Point, bool) {
	sc := c.surface.Scale()
	r := Rect{Width: float64(sc.Width), Height: float64(sc.Height)}
	if c.cfg.Layout != nil {
		r = c.cfg.Layout()
	}
	return ev.Locate(r, sc.Width, sc.Height)
}

// Begin starts a gesture at the event position.
func (c *Capture) Begin(ev PointerEvent) {
	if !c.ready() {
		return
	}
	p, ok := c.locate(ev)
	if !ok {
		return
	}
	// A Begin during an active gesture closes the previous one first.
	c.flush()
	c.active = true
	c.hasDrawn = true
	c.last = p
	c.seq.begin(p)
	c.surface.Stroke([]Point{p}, c.cfg.Ink)
}

// Extend continues the active gesture to the event position.
func (c *Capture) Extend(ev PointerEvent) {
	if !c.ready() || !c.active {
		return
	}
	p, ok := c.locate(ev)
	if !ok {
		return
	}
	if c.cfg.JitterThreshold > 0 && p.Distance(c.last) < c.cfg.JitterThreshold {
		return
	}
	if c.cfg.Coalesce {
		c.pending = append(c.pending, p)
		c.last = p
		return
	}
	c.surface.Stroke([]Point{c.last, p}, c.cfg.Ink)
	c.seq.append(p)
	c.last = p
}

// Frame paints and commits the moves queued since the previous frame.
// Without coalescing it does nothing.
func (c *Capture) Frame() {
	if !c.ready() {
		return
	}
	c.flush()
}

func (c *Capture) flush() {
	if len(c.pending) == 0 {
		return
	}
	from, ok := c.seq.Last()
	if !ok {
		c.pending = c.pending[:0]
		return
	}
	pts := make([]Point, 0, len(c.pending)+1)
	pts = append(pts, from)
	pts = append(pts, c.pending...)
	c.surface.Stroke(pts, c.cfg.Ink)
	for _, p := range c.pending {
		c.seq.append(p)
	}
	c.pending = c.pending[:0]
}

// End closes the active gesture. It is a no-op without one.
func (c *Capture) End() {
	if !c.ready() || !c.active {
		return
	}
	c.flush()
	c.active = false
}

// Reset clears the surface and the sequence. An active gesture is
// aborted and its queued moves are discarded.
func (c *Capture) Reset() {
	if c == nil {
		return
	}
	c.active = false
	c.hasDrawn = false
	c.pending = c.pending[:0]
	c.last = Point{}
	c.seq.Reset()
	c.surface.Clear()
}

// HasDrawn reports whether any ink was laid down since the last reset.
func (c *Capture) HasDrawn() bool {
	return c != nil && c.hasDrawn
}

// Active reports whether a gesture is in progress.
func (c *Capture) Active() bool {
	return c != nil && c.active
}

// Sequence returns a snapshot of the committed points, flushing queued
// moves first.
func (c *Capture) Sequence() *StrokeSequence {
	if c == nil {
		return &StrokeSequence{}
	}
	if c.ready() {
		c.flush()
	}
	return c.seq.Clone()
}

// Points returns the committed points in capture order.
func (c *Capture) Points() []Point {
	return c.Sequence().Points()
}

// Strokes returns the committed points split by gesture.
func (c *Capture) Strokes() [][]Point {
	return c.Sequence().Strokes()
}
