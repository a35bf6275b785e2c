package tulis

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

// inkedCount returns how many surface pixels carry ink.
func inkedCount(pm *Pixmap) int {
	n := 0
	for i := 0; i < pm.Len(); i++ {
		if pm.IsInked(i, DefaultBackgroundThreshold) {
			n++
		}
	}
	return n
}

func TestNewSurface(t *testing.T) {
	s, err := NewSurface(Scale{Width: 50, Height: 40, DPR: 2})
	if err != nil {
		t.Fatalf("NewSurface: %v", err)
	}
	if !s.Ready() {
		t.Fatal("surface not ready")
	}
	if s.Pixmap().Width() != 100 || s.Pixmap().Height() != 80 {
		t.Errorf("pixmap = %dx%d, want 100x80", s.Pixmap().Width(), s.Pixmap().Height())
	}
	if inkedCount(s.Pixmap()) != 0 {
		t.Error("new surface is not blank")
	}

	if _, err := NewSurface(Scale{}); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("NewSurface(zero) err = %v, want ErrInvalidSize", err)
	}
}

func TestSurfaceStrokeAndClear(t *testing.T) {
	s, _ := NewSurface(Scale{Width: 100, Height: 100, DPR: 1})
	s.Stroke([]Point{Pt(10, 50), Pt(90, 50)}, DefaultInk())

	pm := s.Pixmap()
	if !pm.IsInked(50*100+50, DefaultBackgroundThreshold) {
		t.Error("no ink on the stroke")
	}
	if pm.IsInked(10*100+50, DefaultBackgroundThreshold) {
		t.Error("ink far from the stroke")
	}

	s.Clear()
	if inkedCount(pm) != 0 {
		t.Error("Clear left ink behind")
	}
}

func TestSurfaceStrokeUsesDeviceScale(t *testing.T) {
	s, _ := NewSurface(Scale{Width: 50, Height: 50, DPR: 2})
	s.Stroke([]Point{Pt(25, 25)}, DefaultInk())
	// A dot of 8 logical px at 2x covers a disc of radius 8 device px.
	pm := s.Pixmap()
	if !pm.IsInked(50*100+50, DefaultBackgroundThreshold) {
		t.Error("dot centre not inked")
	}
	if !pm.IsInked(50*100+55, DefaultBackgroundThreshold) {
		t.Error("dot does not reach 5 device px from the centre")
	}
	if pm.IsInked(50*100+62, DefaultBackgroundThreshold) {
		t.Error("dot reaches 12 device px from the centre")
	}
}

func TestSurfaceOverlayNeverCountsAsInk(t *testing.T) {
	s, _ := NewSurface(Scale{Width: 20, Height: 20, DPR: 1})
	overlay := image.NewRGBA(image.Rect(0, 0, 20, 20))
	for i := range overlay.Pix {
		overlay.Pix[i] = 0xff
	}
	overlay.SetRGBA(5, 5, color.RGBA{A: 0xff})

	s.SetOverlay(overlay)
	if !s.HasOverlay() {
		t.Fatal("overlay not installed")
	}
	if inkedCount(s.Pixmap()) != 0 {
		t.Error("overlay leaked into the ink layer")
	}
	if got := s.Display().RGBAAt(5, 5); got.R != 0 {
		t.Errorf("Display() at overlay pixel = %v, want black", got)
	}

	s.SetOverlay(image.NewRGBA(image.Rect(0, 0, 10, 10)))
	if s.Display().RGBAAt(5, 5).R != 0 {
		t.Error("overlay of the wrong size replaced the installed one")
	}
	s.SetOverlay(nil)
	if s.HasOverlay() {
		t.Error("SetOverlay(nil) kept the overlay")
	}
}

func TestNilSurfaceIsInert(t *testing.T) {
	var s *Surface
	s.Clear()
	s.Stroke([]Point{Pt(1, 1)}, DefaultInk())
	s.SetOverlay(nil)
	if s.Ready() || s.HasOverlay() || s.Pixmap() != nil {
		t.Error("nil surface should be inert")
	}
	if !s.Display().Rect.Empty() {
		t.Error("nil surface should display nothing")
	}
}
