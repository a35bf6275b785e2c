package text

import (
	"testing"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

func fp(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)}
}

func TestOutlineOpString(t *testing.T) {
	tests := []struct {
		op   OutlineOp
		want string
	}{
		{OutlineOpMoveTo, "MoveTo"},
		{OutlineOpLineTo, "LineTo"},
		{OutlineOpQuadTo, "QuadTo"},
		{OutlineOpCubicTo, "CubicTo"},
		{OutlineOp(42), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("OutlineOp(%d).String() = %q, want %q", tt.op, got, tt.want)
		}
	}
}

func TestConvertSegments(t *testing.T) {
	segs := sfnt.Segments{
		{Op: sfnt.SegmentOpMoveTo, Args: [3]fixed.Point26_6{fp(0, 0)}},
		{Op: sfnt.SegmentOpLineTo, Args: [3]fixed.Point26_6{fp(10, 0)}},
		{Op: sfnt.SegmentOpQuadTo, Args: [3]fixed.Point26_6{fp(20, -10), fp(10, -20)}},
		{Op: sfnt.SegmentOpCubeTo, Args: [3]fixed.Point26_6{fp(5, -25), fp(-5, -10), fp(0, 0)}},
	}

	out := convertSegments(segs)
	if out.SegmentCount() != 4 {
		t.Fatalf("SegmentCount() = %d, want 4", out.SegmentCount())
	}
	if out.Segments[2].Op != OutlineOpQuadTo || out.Segments[2].Points[1] != (OutlinePoint{X: 10, Y: -20}) {
		t.Errorf("quad segment = %+v", out.Segments[2])
	}
	want := Rect{MinX: -5, MinY: -25, MaxX: 20, MaxY: 0}
	if out.Bounds != want {
		t.Errorf("Bounds = %+v, want %+v", out.Bounds, want)
	}
	if out.Contours() != 1 {
		t.Errorf("Contours() = %d, want 1", out.Contours())
	}
}

func TestConvertSegmentsEmpty(t *testing.T) {
	out := convertSegments(nil)
	if !out.IsEmpty() {
		t.Error("expected empty outline")
	}
	if out.Bounds != (Rect{}) {
		t.Errorf("empty outline bounds = %+v, want zero", out.Bounds)
	}
}

func TestGlyphOutlineTransform(t *testing.T) {
	o := &GlyphOutline{
		Rune: 'x',
		Size: 10,
		Segments: []OutlineSegment{
			{Op: OutlineOpMoveTo, Points: [3]OutlinePoint{{X: 1, Y: 2}}},
			{Op: OutlineOpLineTo, Points: [3]OutlinePoint{{X: 3, Y: 4}}},
		},
		Bounds:  Rect{MinX: 1, MinY: 2, MaxX: 3, MaxY: 4},
		Advance: 5,
	}

	got := o.Transform(2, 10, 20)
	if got.Segments[0].Points[0] != (OutlinePoint{X: 12, Y: 24}) {
		t.Errorf("first point = %+v, want {12 24}", got.Segments[0].Points[0])
	}
	if got.Bounds != (Rect{MinX: 12, MinY: 24, MaxX: 16, MaxY: 28}) {
		t.Errorf("Bounds = %+v", got.Bounds)
	}
	if got.Size != 20 || got.Advance != 10 {
		t.Errorf("Size/Advance = %v/%v, want 20/10", got.Size, got.Advance)
	}
	// Original is untouched.
	if o.Segments[0].Points[0] != (OutlinePoint{X: 1, Y: 2}) {
		t.Error("Transform mutated the receiver")
	}

	var nilOutline *GlyphOutline
	if nilOutline.Transform(2, 0, 0) != nil {
		t.Error("nil.Transform() should return nil")
	}
}

func TestRect(t *testing.T) {
	r := Rect{MinX: 10, MinY: 20, MaxX: 30, MaxY: 60}
	if r.Width() != 20 || r.Height() != 40 {
		t.Errorf("size = %vx%v, want 20x40", r.Width(), r.Height())
	}
	x, y := r.Center()
	if x != 20 || y != 40 {
		t.Errorf("Center() = (%v, %v), want (20, 40)", x, y)
	}
}
