package tulis

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/gogpu/tulis/internal/cache"
	"github.com/gogpu/tulis/internal/raster"
	"github.com/gogpu/tulis/text"
)

// DefaultFontSize is the glyph size in logical pixels before it is
// fitted to the canvas.
const DefaultFontSize = 160

// glyphFill is the share of the shorter canvas side the glyph may use.
const glyphFill = 0.8

// maskWeight is the mask stroke width as a share of the glyph size. It
// exceeds the stem width of the bold font, so the stroke covers stems
// edge to edge and a line down the middle of a stem lands on the mask.
const maskWeight = 0.15

// maxCachedMasks bounds the mask cache. A session cycles through a
// couple of dozen targets at one or two scales.
const maxCachedMasks = 64

type maskKey struct {
	r     rune
	scale Scale
}

// Rasterizer renders target glyphs as a dashed guide and as the solid
// template mask. Masks are cached per target and scale.
//
// A Rasterizer is safe for concurrent use.
type Rasterizer struct {
	src      *text.FontSource
	fontSize float64

	masks *cache.Cache[maskKey, *TemplateMask]
}

// NewRasterizer returns a Rasterizer drawing glyphs from src. A nil src
// uses the embedded Go Bold font; a non-positive fontSize uses
// DefaultFontSize.
func NewRasterizer(src *text.FontSource, fontSize float64) *Rasterizer {
	if src == nil {
		src = text.DefaultSource()
	}
	if fontSize <= 0 {
		fontSize = DefaultFontSize
	}
	return &Rasterizer{
		src:      src,
		fontSize: fontSize,
		masks:    cache.New[maskKey, *TemplateMask](maxCachedMasks),
	}
}

// FontSize returns the configured glyph size in logical pixels.
func (r *Rasterizer) FontSize() float64 {
	return r.fontSize
}

// Supports reports whether the font can render t.
func (r *Rasterizer) Supports(t Target) bool {
	return !t.IsZero() && r.src.HasGlyph(t.Rune())
}

// glyphSize returns the logical glyph size for a canvas.
func (r *Rasterizer) glyphSize(scale Scale) float64 {
	return min(r.fontSize, glyphFill*float64(min(scale.Width, scale.Height)))
}

// layout returns the outline of t in device coordinates, with its ink
// bounding box centred on the canvas.
func (r *Rasterizer) layout(t Target, scale Scale) ([]raster.Segment, error) {
	if !scale.Valid() {
		return nil, ErrInvalidSize
	}
	if !r.Supports(t) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedTarget, t.String())
	}
	o, err := r.src.Outline(t.Rune(), scale.Length(r.glyphSize(scale)))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedTarget, err)
	}
	if o.IsEmpty() {
		return nil, fmt.Errorf("%w: %q has no outline", ErrUnsupportedTarget, t.String())
	}

	gx, gy := o.Bounds.Center()
	cx := scale.Length(float64(scale.Width)) / 2
	cy := scale.Length(float64(scale.Height)) / 2
	o = o.Transform(1, cx-gx, cy-gy)

	segs := make([]raster.Segment, len(o.Segments))
	for i, s := range o.Segments {
		segs[i].Op = outlineOps[s.Op]
		for j := 0; j < s.Op.PointCount(); j++ {
			segs[i].Args[j] = raster.Vec{X: s.Points[j].X, Y: s.Points[j].Y}
		}
	}
	return segs, nil
}

var outlineOps = map[text.OutlineOp]raster.Op{
	text.OutlineOpMoveTo:  raster.MoveTo,
	text.OutlineOpLineTo:  raster.LineTo,
	text.OutlineOpQuadTo:  raster.QuadTo,
	text.OutlineOpCubicTo: raster.CubeTo,
}

// RenderGuide clears dst to transparent and draws the dashed light-grey
// outline of t. dst is expected to have the device size of scale.
func (r *Rasterizer) RenderGuide(dst draw.Image, t Target, scale Scale) error {
	return r.renderOutline(dst, t, scale, GuideStroke())
}

// RenderOverlay is like RenderGuide but uses the faint blue of the
// on-surface debug overlay.
func (r *Rasterizer) RenderOverlay(dst draw.Image, t Target, scale Scale) error {
	return r.renderOutline(dst, t, scale, OverlayStroke())
}

func (r *Rasterizer) renderOutline(dst draw.Image, t Target, scale Scale, st Stroke) error {
	segs, err := r.layout(t, scale)
	if err != nil {
		return err
	}
	draw.Draw(dst, dst.Bounds(), image.Transparent, image.Point{}, draw.Src)
	raster.StrokePath(dst, segs, st.device(scale))
	return nil
}

// Overlay returns a new device-size image holding the overlay of t.
func (r *Rasterizer) Overlay(t Target, scale Scale) (*image.RGBA, error) {
	w, h := scale.DeviceSize()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if err := r.RenderOverlay(img, t, scale); err != nil {
		return nil, err
	}
	return img, nil
}

// maskStroke returns MaskStroke widened to maskWeight of the glyph size.
func (r *Rasterizer) maskStroke(scale Scale) Stroke {
	st := MaskStroke()
	return st.WithWidth(max(st.Width, maskWeight*r.glyphSize(scale)))
}

// RenderMask returns the template mask of t at scale, rasterizing it on
// first use.
func (r *Rasterizer) RenderMask(t Target, scale Scale) (*TemplateMask, error) {
	key := maskKey{r: t.Rune(), scale: scale}

	if m, ok := r.masks.Get(key); ok {
		Logger().Debug("template mask cached", "target", t.String(), "scale", scale.String())
		return m, nil
	}

	segs, err := r.layout(t, scale)
	if err != nil {
		return nil, err
	}
	w, h := scale.DeviceSize()
	alpha := image.NewAlpha(image.Rect(0, 0, w, h))
	raster.StrokePath(alpha, segs, r.maskStroke(scale).device(scale))
	m := NewTemplateMask(t, scale, alpha, AlphaThreshold)

	Logger().Debug("template mask built",
		"target", t.String(),
		"scale", scale.String(),
		"pixels", m.Len(),
	)

	return r.masks.SetIfAbsent(key, m), nil
}

// Cached returns the number of cached masks.
func (r *Rasterizer) Cached() int {
	return r.masks.Len()
}

// Purge drops all cached masks.
func (r *Rasterizer) Purge() {
	r.masks.Clear()
}
