package text

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestNewFontSourceEmpty(t *testing.T) {
	_, err := NewFontSource(nil)
	if !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewFontSource(nil) error = %v, want ErrEmptyFontData", err)
	}
}

func TestNewFontSourceGarbage(t *testing.T) {
	_, err := NewFontSource([]byte("definitely not a font"))
	if err == nil {
		t.Fatal("expected parse error")
	}
	var fe *FontError
	if !errors.As(err, &fe) {
		t.Errorf("error %v is not a *FontError", err)
	}
}

func TestNewFontSourceCopiesData(t *testing.T) {
	data := make([]byte, len(goregular.TTF))
	copy(data, goregular.TTF)

	src, err := NewFontSource(data)
	if err != nil {
		t.Fatalf("NewFontSource: %v", err)
	}
	for i := range data {
		data[i] = 0
	}
	if _, err := src.Outline('A', 32); err != nil {
		t.Errorf("outline after caller mutated data: %v", err)
	}
}

func TestNewFontSourceFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "regular.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o600); err != nil {
		t.Fatal(err)
	}
	src, err := NewFontSourceFromFile(path)
	if err != nil {
		t.Fatalf("NewFontSourceFromFile: %v", err)
	}
	if !src.HasGlyph('x') {
		t.Error("expected glyph for 'x'")
	}

	if _, err := NewFontSourceFromFile(filepath.Join(t.TempDir(), "missing.ttf")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestDefaultSource(t *testing.T) {
	src := DefaultSource()
	if src == nil {
		t.Fatal("DefaultSource() returned nil")
	}
	if src != DefaultSource() {
		t.Error("DefaultSource() should return the same instance")
	}
	if src.Name() == "" {
		t.Error("expected a family name for the embedded font")
	}
}

func TestHasGlyph(t *testing.T) {
	src := DefaultSource()
	for _, r := range "AZaz09MNOPR" {
		if !src.HasGlyph(r) {
			t.Errorf("HasGlyph(%q) = false, want true", r)
		}
	}
	// Private use area.
	if src.HasGlyph('\uE000') {
		t.Error("HasGlyph(U+E000) = true, want false")
	}
}

func TestOutline(t *testing.T) {
	src := DefaultSource()

	outline, err := src.Outline('O', 160)
	if err != nil {
		t.Fatalf("Outline('O'): %v", err)
	}
	if outline.IsEmpty() {
		t.Fatal("outline of 'O' is empty")
	}
	if outline.Rune != 'O' || outline.Size != 160 {
		t.Errorf("outline metadata = (%q, %v), want ('O', 160)", outline.Rune, outline.Size)
	}
	// 'O' has an outer and an inner contour.
	if got := outline.Contours(); got != 2 {
		t.Errorf("Contours() = %d, want 2", got)
	}
	// Y grows downward and the glyph sits above the baseline.
	if outline.Bounds.MaxY > 5 || outline.Bounds.MinY >= 0 {
		t.Errorf("unexpected vertical bounds %+v", outline.Bounds)
	}
	if outline.Bounds.Height() < 80 || outline.Bounds.Height() > 160 {
		t.Errorf("height %v not plausible for a 160px cap", outline.Bounds.Height())
	}
	if outline.Advance <= 0 {
		t.Error("expected positive advance")
	}
}

func TestOutlineScalesWithSize(t *testing.T) {
	src := DefaultSource()
	small, err := src.Outline('1', 50)
	if err != nil {
		t.Fatal(err)
	}
	large, err := src.Outline('1', 100)
	if err != nil {
		t.Fatal(err)
	}
	ratio := large.Bounds.Height() / small.Bounds.Height()
	if ratio < 1.9 || ratio > 2.1 {
		t.Errorf("height ratio = %v, want about 2", ratio)
	}
}

func TestOutlineErrors(t *testing.T) {
	src := DefaultSource()

	if _, err := src.Outline('A', 0); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Outline size 0 error = %v, want ErrInvalidSize", err)
	}
	if _, err := src.Outline('\uE000', 32); !errors.Is(err, ErrGlyphNotFound) {
		t.Errorf("Outline(U+E000) error = %v, want ErrGlyphNotFound", err)
	}
}

func TestOutlineConcurrent(t *testing.T) {
	src := DefaultSource()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(r rune) {
			defer wg.Done()
			if _, err := src.Outline(r, 64); err != nil {
				t.Errorf("Outline(%q): %v", r, err)
			}
			src.HasGlyph(r)
		}('A' + rune(i))
	}
	wg.Wait()
}
