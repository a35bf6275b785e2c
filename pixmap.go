package tulis

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
)

// Pixmap is the device-resolution RGBA buffer the user paints into.
type Pixmap struct {
	img *image.RGBA
}

// NewPixmap creates a new pixmap with the given dimensions.
// Non-positive dimensions produce an empty pixmap.
func NewPixmap(width, height int) *Pixmap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Pixmap{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.img.Rect.Dx()
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.img.Rect.Dy()
}

// Len returns the number of pixels.
func (p *Pixmap) Len() int {
	return p.Width() * p.Height()
}

// Data returns the raw pixel data (RGBA format, 4 bytes per pixel,
// no row padding).
func (p *Pixmap) Data() []uint8 {
	return p.img.Pix
}

// SetPixel sets the color of a single pixel.
func (p *Pixmap) SetPixel(x, y int, c color.Color) {
	p.img.Set(x, y, c)
}

// GetPixel returns the color of a single pixel.
// Out-of-range coordinates return transparent black.
func (p *Pixmap) GetPixel(x, y int) color.RGBA {
	return p.img.RGBAAt(x, y)
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c color.Color) {
	draw.Draw(p.img, p.img.Rect, image.NewUniform(c), image.Point{}, draw.Src)
}

// IsInked reports whether pixel index i differs from a light background:
// any of R, G or B below threshold. Out-of-range indices are never inked.
func (p *Pixmap) IsInked(i int, threshold uint8) bool {
	if i < 0 || i >= p.Len() {
		return false
	}
	o := i * 4
	pix := p.img.Pix
	return pix[o] < threshold || pix[o+1] < threshold || pix[o+2] < threshold
}

// ToImage returns a copy of the pixmap as an image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(p.img.Rect)
	copy(img.Pix, p.img.Pix)
	return img
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, p.img)
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.img.At(x, y)
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return p.img.Rect
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.RGBAModel
}

// Set implements the draw.Image interface.
func (p *Pixmap) Set(x, y int, c color.Color) {
	p.img.Set(x, y, c)
}

// SubImage returns the pixmap region r, sharing pixels with p.
func (p *Pixmap) SubImage(r image.Rectangle) image.Image {
	return p.img.SubImage(r)
}
