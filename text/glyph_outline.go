package text

import (
	"math"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// OutlinePoint represents a point in a glyph outline, in pixels.
type OutlinePoint struct {
	X, Y float64
}

// OutlineOp is the type of path operation.
type OutlineOp uint8

const (
	// OutlineOpMoveTo moves to a new point without drawing.
	OutlineOpMoveTo OutlineOp = iota

	// OutlineOpLineTo draws a line to the target point.
	OutlineOpLineTo

	// OutlineOpQuadTo draws a quadratic bezier curve.
	OutlineOpQuadTo

	// OutlineOpCubicTo draws a cubic bezier curve.
	OutlineOpCubicTo
)

// String returns a string representation of the operation.
func (op OutlineOp) String() string {
	switch op {
	case OutlineOpMoveTo:
		return "MoveTo"
	case OutlineOpLineTo:
		return "LineTo"
	case OutlineOpQuadTo:
		return "QuadTo"
	case OutlineOpCubicTo:
		return "CubicTo"
	default:
		return "Unknown"
	}
}

// PointCount returns how many entries of OutlineSegment.Points the
// operation uses.
func (op OutlineOp) PointCount() int {
	switch op {
	case OutlineOpQuadTo:
		return 2
	case OutlineOpCubicTo:
		return 3
	default:
		return 1
	}
}

// OutlineSegment represents a segment of a glyph outline.
type OutlineSegment struct {
	// Op is the segment operation type.
	Op OutlineOp

	// Points contains the control and end points for this segment.
	// - MoveTo: Points[0] is the target point
	// - LineTo: Points[0] is the target point
	// - QuadTo: Points[0] is control, Points[1] is target
	// - CubicTo: Points[0], Points[1] are controls, Points[2] is target
	Points [3]OutlinePoint
}

// Rect is an axis-aligned rectangle in pixels.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Width returns the rectangle width.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the rectangle height.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Center returns the rectangle centre.
func (r Rect) Center() (x, y float64) {
	return (r.MinX + r.MaxX) / 2, (r.MinY + r.MaxY) / 2
}

// GlyphOutline represents the vector outline of a glyph.
// The outline consists of one or more closed contours.
type GlyphOutline struct {
	// Rune is the character this outline was loaded for.
	Rune rune

	// Size is the pixel size (ppem) the outline was loaded at.
	Size float64

	// Segments is the list of path segments that make up the outline.
	Segments []OutlineSegment

	// Bounds is the bounding box of all on- and off-curve points.
	Bounds Rect

	// Advance is the horizontal advance width of the glyph.
	Advance float64
}

// IsEmpty returns true if the outline has no segments.
func (o *GlyphOutline) IsEmpty() bool {
	return o == nil || len(o.Segments) == 0
}

// SegmentCount returns the number of segments in the outline.
func (o *GlyphOutline) SegmentCount() int {
	if o == nil {
		return 0
	}
	return len(o.Segments)
}

// Contours returns the number of closed contours.
func (o *GlyphOutline) Contours() int {
	if o == nil {
		return 0
	}
	n := 0
	for _, seg := range o.Segments {
		if seg.Op == OutlineOpMoveTo {
			n++
		}
	}
	return n
}

// Transform returns a new outline with every point mapped through
// (x*scale + dx, y*scale + dy).
func (o *GlyphOutline) Transform(scale, dx, dy float64) *GlyphOutline {
	if o == nil {
		return nil
	}

	out := &GlyphOutline{
		Rune:     o.Rune,
		Size:     o.Size * scale,
		Segments: make([]OutlineSegment, len(o.Segments)),
		Bounds: Rect{
			MinX: o.Bounds.MinX*scale + dx,
			MinY: o.Bounds.MinY*scale + dy,
			MaxX: o.Bounds.MaxX*scale + dx,
			MaxY: o.Bounds.MaxY*scale + dy,
		},
		Advance: o.Advance * scale,
	}

	for i, seg := range o.Segments {
		out.Segments[i].Op = seg.Op
		for j := 0; j < seg.Op.PointCount(); j++ {
			out.Segments[i].Points[j] = OutlinePoint{
				X: seg.Points[j].X*scale + dx,
				Y: seg.Points[j].Y*scale + dy,
			}
		}
	}

	return out
}

// convertSegments copies sfnt segments into an outline. The sfnt slice
// is owned by a pooled buffer and must not escape.
func convertSegments(segments sfnt.Segments) *GlyphOutline {
	outline := &GlyphOutline{
		Segments: make([]OutlineSegment, 0, len(segments)),
	}
	if len(segments) == 0 {
		return outline
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)

	for _, seg := range segments {
		var out OutlineSegment
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			out.Op = OutlineOpMoveTo
		case sfnt.SegmentOpLineTo:
			out.Op = OutlineOpLineTo
		case sfnt.SegmentOpQuadTo:
			out.Op = OutlineOpQuadTo
		case sfnt.SegmentOpCubeTo:
			out.Op = OutlineOpCubicTo
		default:
			continue
		}
		for j := 0; j < out.Op.PointCount(); j++ {
			p := fixedPointToOutline(seg.Args[j])
			out.Points[j] = p
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
		outline.Segments = append(outline.Segments, out)
	}

	if len(outline.Segments) > 0 {
		outline.Bounds = Rect{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
	}
	return outline
}

// fixedPointToOutline converts a fixed.Point26_6 to OutlinePoint.
func fixedPointToOutline(p fixed.Point26_6) OutlinePoint {
	return OutlinePoint{
		X: fixedToFloat(p.X),
		Y: fixedToFloat(p.Y),
	}
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
