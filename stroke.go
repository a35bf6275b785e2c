package tulis

import (
	"image/color"

	"github.com/gogpu/tulis/internal/raster"
)

// Stroke defines the style for stroking ink and glyph outlines.
// Width and dash lengths are in logical pixels; the device pixel ratio is
// applied when the stroke is rasterized.
type Stroke struct {
	// Width is the line width in logical pixels.
	Width float64

	// Color is the stroke colour, composited source-over.
	Color color.Color

	// Dash is the dash pattern for the stroke.
	// nil means a solid line (no dashing).
	Dash *Dash
}

// Colours of the writing screen.
var (
	// InkColor is the default pen colour (#333).
	InkColor = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}

	// BackgroundColor is the surface fill.
	BackgroundColor = color.White

	// GuideColor is the light grey of the printed guide outline (#d0d0d0).
	GuideColor = color.RGBA{R: 0xd0, G: 0xd0, B: 0xd0, A: 0xff}

	// OverlayColor is the faint blue (#0088ff at 18%) of the debug overlay,
	// premultiplied.
	OverlayColor = color.RGBA{R: 0x00, G: 0x18, B: 0x2e, A: 0x2e}
)

// DefaultInk returns the pen style of the writing screen: #333, 8 px.
func DefaultInk() Stroke {
	return Stroke{Width: 8, Color: InkColor}
}

// GuideStroke returns the dashed outline style used for on-screen guidance.
func GuideStroke() Stroke {
	return Stroke{Width: 4, Color: GuideColor, Dash: NewDash(8, 12)}
}

// OverlayStroke returns the faint dashed outline drawn on the live surface
// in guide mode.
func OverlayStroke() Stroke {
	return Stroke{Width: 4, Color: OverlayColor, Dash: NewDash(8, 12)}
}

// MaskStroke returns the solid outline used to rasterize the template
// mask. It is heavier than the guide so the mask has a wider footprint;
// the rasterizer widens it further for large glyphs.
func MaskStroke() Stroke {
	return Stroke{Width: 10, Color: color.Opaque}
}

// WithWidth returns a copy of the Stroke with the given width.
func (s Stroke) WithWidth(w float64) Stroke {
	s.Width = w
	return s
}

// WithColor returns a copy of the Stroke with the given colour.
func (s Stroke) WithColor(c color.Color) Stroke {
	s.Color = c
	return s
}

// WithDash returns a copy of the Stroke with the given dash pattern.
// Pass nil to remove dashing and return to solid lines.
func (s Stroke) WithDash(dash *Dash) Stroke {
	s.Dash = dash.Clone()
	return s
}

// device converts the style to device pixels.
func (s Stroke) device(scale Scale) raster.Style {
	st := raster.Style{
		Width: scale.Length(s.Width),
		Color: s.Color,
	}
	if d := s.Dash.Scale(scale.DPR); d.IsDashed() {
		st.Dashes = d.effectiveArray()
		st.DashOffset = d.Offset
	}
	return st
}
