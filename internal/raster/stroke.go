package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// Vec is a device-space coordinate.
type Vec struct {
	X, Y float64
}

// Op is a path segment operation.
type Op uint8

const (
	// MoveTo starts a new contour at Args[0].
	MoveTo Op = iota

	// LineTo draws a line to Args[0].
	LineTo

	// QuadTo draws a quadratic curve through control Args[0] to Args[1].
	QuadTo

	// CubeTo draws a cubic curve through controls Args[0], Args[1] to Args[2].
	CubeTo
)

// Segment is one element of a path in device space.
type Segment struct {
	Op   Op
	Args [3]Vec
}

// argCount returns how many entries of Args the operation uses.
func (s Segment) argCount() int {
	switch s.Op {
	case QuadTo:
		return 2
	case CubeTo:
		return 3
	default:
		return 1
	}
}

// Style describes how a path is stroked.
type Style struct {
	// Width is the full stroke width in device pixels.
	Width float64

	// Color is the ink colour, composited source-over.
	Color color.Color

	// Dashes holds alternating dash and gap lengths in device pixels.
	// Nil or empty means a solid stroke.
	Dashes []float64

	// DashOffset shifts the start of the dash pattern.
	DashOffset float64
}

// dotLength is the length of the synthetic segment used to render a
// single-point stroke; round caps turn it into a filled disc.
const dotLength = 0.25

// StrokePolyline strokes an open polyline. A single point renders as a
// dot of diameter st.Width. An empty slice draws nothing.
func StrokePolyline(dst draw.Image, pts []Vec, st Style) {
	if len(pts) == 0 {
		return
	}
	segs := make([]Segment, 0, len(pts)+1)
	segs = append(segs, Segment{Op: MoveTo, Args: [3]Vec{pts[0]}})
	if len(pts) == 1 {
		p := pts[0]
		segs = append(segs, Segment{Op: LineTo, Args: [3]Vec{{X: p.X + dotLength, Y: p.Y}}})
	}
	for _, p := range pts[1:] {
		segs = append(segs, Segment{Op: LineTo, Args: [3]Vec{p}})
	}
	stroke(dst, segs, st, false)
}

// StrokePath strokes a path made of one or more contours. Every contour
// is treated as closed, which is how glyph outlines are stored.
func StrokePath(dst draw.Image, segs []Segment, st Style) {
	stroke(dst, segs, st, true)
}

// Bounds returns the device rectangle touched by stroking segs with the
// given width, before clipping to any destination.
func Bounds(segs []Segment, width float64) image.Rectangle {
	if len(segs) == 0 {
		return image.Rectangle{}
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, s := range segs {
		for i := 0; i < s.argCount(); i++ {
			p := s.Args[i]
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}
	// One extra pixel for anti-aliasing fringe.
	pad := width/2 + 1
	return image.Rect(
		int(math.Floor(minX-pad)),
		int(math.Floor(minY-pad)),
		int(math.Ceil(maxX+pad)),
		int(math.Ceil(maxY+pad)),
	)
}

// subImager is implemented by the standard library image types.
type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

func stroke(dst draw.Image, segs []Segment, st Style, closed bool) {
	if dst == nil || len(segs) == 0 || st.Width <= 0 || st.Color == nil {
		return
	}

	// Rasterize only the dirty rectangle. The scanner's coverage buffer
	// maps (0,0) to the destination's Min, so work in local coordinates.
	area := Bounds(segs, st.Width).Intersect(dst.Bounds())
	if area.Empty() {
		return
	}
	target := dst
	if si, ok := dst.(subImager); ok {
		if sub, ok := si.SubImage(area).(draw.Image); ok {
			target = sub
		}
	}
	origin := target.Bounds().Min
	w, h := target.Bounds().Dx(), target.Bounds().Dy()

	scanner := rasterx.NewScannerGV(w, h, target, target.Bounds())
	dasher := rasterx.NewDasher(w, h, scanner)
	dasher.SetStroke(
		toFixed(st.Width), 0,
		rasterx.RoundCap, rasterx.RoundCap, rasterx.RoundGap, rasterx.Round,
		st.Dashes, st.DashOffset,
	)
	dasher.SetColor(st.Color)

	local := func(v Vec) fixed.Point26_6 {
		return fixed.Point26_6{
			X: toFixed(v.X - float64(origin.X)),
			Y: toFixed(v.Y - float64(origin.Y)),
		}
	}

	open := false
	for _, s := range segs {
		switch s.Op {
		case MoveTo:
			if open {
				dasher.Stop(closed)
			}
			dasher.Start(local(s.Args[0]))
			open = true
		case LineTo:
			if !open {
				dasher.Start(local(s.Args[0]))
				open = true
				continue
			}
			dasher.Line(local(s.Args[0]))
		case QuadTo:
			if open {
				dasher.QuadBezier(local(s.Args[0]), local(s.Args[1]))
			}
		case CubeTo:
			if open {
				dasher.CubeBezier(local(s.Args[0]), local(s.Args[1]), local(s.Args[2]))
			}
		}
	}
	if open {
		dasher.Stop(closed)
	}
	dasher.Draw()
	dasher.Clear()
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}
