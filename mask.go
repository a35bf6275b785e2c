package tulis

import (
	"image"
	"slices"
)

// AlphaThreshold is the template coverage above which a device pixel is
// part of the mask.
const AlphaThreshold = 30

// TemplateMask is the set of device pixel indices where ink is expected
// for one target at one scale. Index i addresses pixel (i%w, i/w) of a
// buffer of Scale.DeviceSize().
//
// A TemplateMask is immutable; a new target or scale yields a new mask.
type TemplateMask struct {
	target  Target
	scale   Scale
	indices []int // ascending
}

// NewTemplateMask extracts the pixels of alpha whose value exceeds
// threshold. Pixels of alpha outside the device rectangle of scale are
// ignored, so every index is valid for a surface built from scale.
func NewTemplateMask(target Target, scale Scale, alpha *image.Alpha, threshold uint8) *TemplateMask {
	m := &TemplateMask{target: target, scale: scale}
	if alpha == nil || !scale.Valid() {
		return m
	}

	w, h := scale.DeviceSize()
	area := alpha.Rect.Intersect(image.Rect(0, 0, w, h))
	for y := area.Min.Y; y < area.Max.Y; y++ {
		row := alpha.Pix[alpha.PixOffset(area.Min.X, y):]
		for x := 0; x < area.Dx(); x++ {
			if row[x] > threshold {
				m.indices = append(m.indices, y*w+area.Min.X+x)
			}
		}
	}
	return m
}

// Target returns the target the mask was built for.
func (m *TemplateMask) Target() Target {
	if m == nil {
		return Target{}
	}
	return m.target
}

// Scale returns the scale the mask was rasterized at.
func (m *TemplateMask) Scale() Scale {
	if m == nil {
		return Scale{}
	}
	return m.scale
}

// Len returns the number of mask pixels.
func (m *TemplateMask) Len() int {
	if m == nil {
		return 0
	}
	return len(m.indices)
}

// Empty reports whether the mask has no pixels.
func (m *TemplateMask) Empty() bool {
	return m.Len() == 0
}

// Indices returns a copy of the mask's pixel indices in ascending order.
func (m *TemplateMask) Indices() []int {
	if m == nil {
		return nil
	}
	return slices.Clone(m.indices)
}

// Contains reports whether pixel index i is in the mask.
func (m *TemplateMask) Contains(i int) bool {
	if m == nil {
		return false
	}
	_, ok := slices.BinarySearch(m.indices, i)
	return ok
}

// Bounds returns the device-pixel bounding box of the mask.
func (m *TemplateMask) Bounds() image.Rectangle {
	if m.Empty() {
		return image.Rectangle{}
	}
	w, _ := m.scale.DeviceSize()
	r := image.Rectangle{Min: image.Pt(w, m.indices[0]/w), Max: image.Pt(0, 0)}
	for _, i := range m.indices {
		x, y := i%w, i/w
		r.Min.X = min(r.Min.X, x)
		r.Max.X = max(r.Max.X, x+1)
		r.Max.Y = max(r.Max.Y, y+1)
	}
	return r
}

// ToImage renders the mask as an opaque-on-transparent alpha image.
func (m *TemplateMask) ToImage() *image.Alpha {
	w, h := m.Scale().DeviceSize()
	img := image.NewAlpha(image.Rect(0, 0, w, h))
	if m == nil {
		return img
	}
	for _, i := range m.indices {
		img.Pix[i] = 0xff
	}
	return img
}
