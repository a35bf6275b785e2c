package tulis

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"
)

func TestNewPixmap(t *testing.T) {
	tests := []struct {
		name       string
		w, h       int
		wantW      int
		wantH      int
		wantLength int
	}{
		{"normal", 4, 3, 4, 3, 12},
		{"zero", 0, 0, 0, 0, 0},
		{"negative clamps to zero", -2, 5, 0, 5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pm := NewPixmap(tt.w, tt.h)
			if pm.Width() != tt.wantW || pm.Height() != tt.wantH {
				t.Errorf("size = %dx%d, want %dx%d", pm.Width(), pm.Height(), tt.wantW, tt.wantH)
			}
			if pm.Len() != tt.wantLength {
				t.Errorf("Len() = %d, want %d", pm.Len(), tt.wantLength)
			}
			if len(pm.Data()) != tt.wantLength*4 {
				t.Errorf("len(Data()) = %d, want %d", len(pm.Data()), tt.wantLength*4)
			}
		})
	}
}

func TestPixmapClearAndGet(t *testing.T) {
	pm := NewPixmap(3, 3)
	pm.Clear(color.White)
	if got := pm.GetPixel(1, 1); got != (color.RGBA{0xff, 0xff, 0xff, 0xff}) {
		t.Errorf("GetPixel after Clear(White) = %v", got)
	}
	pm.SetPixel(2, 0, InkColor)
	if got := pm.GetPixel(2, 0); got != InkColor {
		t.Errorf("GetPixel(2, 0) = %v, want %v", got, InkColor)
	}
	if got := pm.GetPixel(5, 5); got != (color.RGBA{}) {
		t.Errorf("out-of-range GetPixel = %v, want transparent", got)
	}
}

func TestPixmapIsInked(t *testing.T) {
	pm := NewPixmap(4, 1)
	pm.Clear(color.White)
	pm.SetPixel(0, 0, InkColor)
	pm.SetPixel(1, 0, color.RGBA{R: 0xff, G: 0xff, B: 0xef, A: 0xff}) // one channel below 240
	pm.SetPixel(2, 0, color.RGBA{R: 0xf5, G: 0xf5, B: 0xf5, A: 0xff}) // near-white

	tests := []struct {
		i    int
		want bool
	}{
		{0, true},
		{1, true},
		{2, false},
		{3, false},
		{-1, false},
		{4, false},
	}
	for _, tt := range tests {
		if got := pm.IsInked(tt.i, DefaultBackgroundThreshold); got != tt.want {
			t.Errorf("IsInked(%d) = %v, want %v", tt.i, got, tt.want)
		}
	}
}

func TestPixmapToImageIsCopy(t *testing.T) {
	pm := NewPixmap(2, 2)
	pm.Clear(color.White)
	img := pm.ToImage()
	img.Set(0, 0, color.Black)
	if pm.GetPixel(0, 0) != (color.RGBA{0xff, 0xff, 0xff, 0xff}) {
		t.Error("ToImage shares pixels with the pixmap")
	}
}

func TestPixmapSubImageSharesPixels(t *testing.T) {
	pm := NewPixmap(4, 4)
	pm.Clear(color.White)
	sub, ok := pm.SubImage(image.Rect(1, 1, 3, 3)).(*image.RGBA)
	if !ok {
		t.Fatal("SubImage is not *image.RGBA")
	}
	sub.Set(2, 2, color.Black)
	if got := pm.GetPixel(2, 2); got.R != 0 {
		t.Errorf("write through SubImage not visible: %v", got)
	}
}

func TestPixmapSavePNG(t *testing.T) {
	pm := NewPixmap(2, 2)
	path := filepath.Join(t.TempDir(), "out.png")
	if err := pm.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	if err := pm.SavePNG(filepath.Join(t.TempDir(), "missing", "out.png")); err == nil {
		t.Error("SavePNG into a missing directory should fail")
	}
}
