package tulis

// Rect is the on-screen bounding rectangle of the drawing surface in
// viewport CSS pixels, as returned by getBoundingClientRect.
type Rect struct {
	Left, Top, Width, Height float64
}

// Touch is one contact point of a touch event.
type Touch struct {
	ClientX, ClientY float64
}

// PointerEvent is a mouse or touch event with viewport-relative
// coordinates. A touch event carries its contacts in Touches and its
// ClientX/ClientY are ignored.
type PointerEvent struct {
	ClientX, ClientY float64
	Touches          []Touch
	IsTouch          bool
}

// MouseAt returns a mouse event at viewport position (x, y).
func MouseAt(x, y float64) PointerEvent {
	return PointerEvent{ClientX: x, ClientY: y}
}

// TouchAt returns a touch event whose contacts are touches.
func TouchAt(touches ...Touch) PointerEvent {
	return PointerEvent{Touches: touches, IsTouch: true}
}

// client returns the viewport position of the event. A touch event
// without contacts (touchend) has no position.
func (e PointerEvent) client() (x, y float64, ok bool) {
	if e.IsTouch || len(e.Touches) > 0 {
		if len(e.Touches) == 0 {
			return 0, 0, false
		}
		return e.Touches[0].ClientX, e.Touches[0].ClientY, true
	}
	return e.ClientX, e.ClientY, true
}

// Locate maps the event into logical canvas coordinates of a surface of
// size (w, h) laid out at r. The surface offset is subtracted, so the
// result does not depend on scroll or layout position. When the surface
// is displayed at a different CSS size than its logical size, the
// position is rescaled. The result is clamped into [0,w]×[0,h].
func (e PointerEvent) Locate(r Rect, w, h int) (Point, bool) {
	x, y, ok := e.client()
	if !ok {
		return Point{}, false
	}
	p := Point{X: x - r.Left, Y: y - r.Top}
	if r.Width > 0 && r.Height > 0 {
		p.X *= float64(w) / r.Width
		p.Y *= float64(h) / r.Height
	}
	return p.Clamp(float64(w), float64(h)), true
}
