package tulis

import (
	"image"
	"image/draw"

	"github.com/gogpu/tulis/internal/raster"
)

// Surface is the drawing surface: an ink layer the user paints into and
// an optional overlay layer with the faint target guide. Only the ink
// layer is read by evaluators, so guide mode never counts as ink.
type Surface struct {
	scale   Scale
	ink     *Pixmap
	overlay *image.RGBA
}

// NewSurface allocates a surface at the device resolution of scale and
// fills it with the background colour.
func NewSurface(scale Scale) (*Surface, error) {
	if !scale.Valid() {
		return nil, ErrInvalidSize
	}
	w, h := scale.DeviceSize()
	s := &Surface{
		scale: scale,
		ink:   NewPixmap(w, h),
	}
	s.Clear()
	return s, nil
}

// Ready reports whether the surface can be drawn on.
func (s *Surface) Ready() bool {
	return s != nil && s.ink != nil && s.ink.Len() > 0
}

// Scale returns the surface's logical-to-device transform.
func (s *Surface) Scale() Scale {
	if s == nil {
		return Scale{}
	}
	return s.scale
}

// Pixmap returns the ink layer.
func (s *Surface) Pixmap() *Pixmap {
	if s == nil {
		return nil
	}
	return s.ink
}

// Clear fills the ink layer with the background colour.
func (s *Surface) Clear() {
	if !s.Ready() {
		return
	}
	s.ink.Clear(BackgroundColor)
}

// Stroke paints an open polyline in logical coordinates onto the ink
// layer. A single point paints a dot.
func (s *Surface) Stroke(pts []Point, st Stroke) {
	if !s.Ready() || len(pts) == 0 {
		return
	}
	dev := make([]raster.Vec, len(pts))
	for i, p := range pts {
		dev[i] = s.scale.ToDevice(p)
	}
	raster.StrokePolyline(s.ink, dev, st.device(s.scale))
}

// SetOverlay installs the overlay layer. It must have the surface's
// device size; nil removes the overlay.
func (s *Surface) SetOverlay(img *image.RGBA) {
	if s == nil {
		return
	}
	if img != nil && img.Rect != s.ink.Bounds() {
		return
	}
	s.overlay = img
}

// HasOverlay reports whether an overlay is installed.
func (s *Surface) HasOverlay() bool {
	return s != nil && s.overlay != nil
}

// Display returns what the user sees: the ink layer with the overlay
// composited on top.
func (s *Surface) Display() *image.RGBA {
	if !s.Ready() {
		return image.NewRGBA(image.Rectangle{})
	}
	img := s.ink.ToImage()
	if s.overlay != nil {
		draw.Draw(img, img.Rect, s.overlay, image.Point{}, draw.Over)
	}
	return img
}
