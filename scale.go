package tulis

import (
	"fmt"
	"math"

	"github.com/gogpu/tulis/internal/raster"
)

// MaxDPR bounds the device pixel ratio. Phones report up to 4.
const MaxDPR = 8

// Scale is the logical-to-device transform shared by the drawing surface
// and the template rasterizer. Both sides are built from the same Scale
// value, so their pixel indices are comparable by construction.
type Scale struct {
	// Width and Height are the logical (CSS pixel) canvas size.
	Width, Height int

	// DPR is the device pixel ratio.
	DPR float64
}

// NewScale validates and returns a Scale. A DPR of 0 means 1.
func NewScale(width, height int, dpr float64) (Scale, error) {
	if dpr == 0 {
		dpr = 1
	}
	s := Scale{Width: width, Height: height, DPR: dpr}
	if !s.Valid() {
		return Scale{}, fmt.Errorf("%w: %dx%d@%v", ErrInvalidSize, width, height, dpr)
	}
	return s, nil
}

// Valid reports whether the scale describes a non-empty canvas.
func (s Scale) Valid() bool {
	if s.Width <= 0 || s.Height <= 0 {
		return false
	}
	if math.IsNaN(s.DPR) || s.DPR <= 0 || s.DPR > MaxDPR {
		return false
	}
	w, h := s.DeviceSize()
	return w > 0 && h > 0
}

// DeviceSize returns the backing buffer size in device pixels. Fractional
// sizes are truncated, as canvas width and height attributes are.
func (s Scale) DeviceSize() (w, h int) {
	return int(float64(s.Width) * s.DPR), int(float64(s.Height) * s.DPR)
}

// PixelCount returns the number of device pixels.
func (s Scale) PixelCount() int {
	w, h := s.DeviceSize()
	return w * h
}

// ToDevice maps a logical point to device coordinates.
func (s Scale) ToDevice(p Point) raster.Vec {
	return raster.Vec{X: p.X * s.DPR, Y: p.Y * s.DPR}
}

// Length maps a logical length to device pixels.
func (s Scale) Length(l float64) float64 {
	return l * s.DPR
}

// String implements fmt.Stringer.
func (s Scale) String() string {
	return fmt.Sprintf("%dx%d@%gx", s.Width, s.Height, s.DPR)
}
