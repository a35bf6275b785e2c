package text

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	gotext "github.com/go-text/typesetting/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// FontSource represents a loaded font.
// FontSource is heavyweight and should be shared across the application.
//
// FontSource is safe for concurrent use.
type FontSource struct {
	data []byte
	name string

	// outlines is safe for concurrent use as long as every caller brings
	// its own sfnt.Buffer; buffers are pooled.
	outlines *sfnt.Font
	buffers  sync.Pool

	// cmapMu guards cmap: a go-text Face carries per-instance caches.
	cmapMu sync.Mutex
	cmap   *gotext.Face
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	outlines, err := sfnt.Parse(dataCopy)
	if err != nil {
		return nil, &FontError{Backend: "sfnt", Err: err}
	}
	cmap, err := gotext.ParseTTF(bytes.NewReader(dataCopy))
	if err != nil {
		return nil, &FontError{Backend: "go-text", Err: err}
	}

	s := &FontSource{
		data:     dataCopy,
		outlines: outlines,
		cmap:     cmap,
	}
	s.buffers.New = func() any { return new(sfnt.Buffer) }

	buf := s.getBuffer()
	if name, err := outlines.Name(buf, sfnt.NameIDFamily); err == nil {
		s.name = name
	}
	s.putBuffer(buf)

	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string) (*FontSource, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("text: read font: %w", err)
	}
	return NewFontSource(data)
}

var (
	defaultOnce   sync.Once
	defaultSource *FontSource
)

// DefaultSource returns the embedded Go Bold font.
// Bold gives the template a wider stroke footprint than a regular weight.
func DefaultSource() *FontSource {
	defaultOnce.Do(func() {
		s, err := NewFontSource(gobold.TTF)
		if err != nil {
			// The embedded font is part of the build; failing to parse it
			// is a broken dependency, not a runtime condition.
			panic(err)
		}
		defaultSource = s
	})
	return defaultSource
}

// Name returns the font family name, or "" if the font has none.
func (s *FontSource) Name() string {
	return s.name
}

// HasGlyph reports whether the font maps r to a glyph.
func (s *FontSource) HasGlyph(r rune) bool {
	s.cmapMu.Lock()
	defer s.cmapMu.Unlock()
	gid, ok := s.cmap.NominalGlyph(r)
	return ok && gid != 0
}

// Outline extracts the outline of r at size pixels per em.
// Coordinates are in pixels, y grows downward, and the origin is the
// glyph's pen position on the baseline.
func (s *FontSource) Outline(r rune, size float64) (*GlyphOutline, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}

	buf := s.getBuffer()
	defer s.putBuffer(buf)

	idx, err := s.outlines.GlyphIndex(buf, r)
	if err != nil {
		return nil, &FontError{Backend: "sfnt", Err: err}
	}
	if idx == 0 {
		return nil, fmt.Errorf("%w: %q", ErrGlyphNotFound, r)
	}

	ppem := fixed.Int26_6(size * 64)
	segments, err := s.outlines.LoadGlyph(buf, idx, ppem, nil)
	if err != nil {
		return nil, &FontError{Backend: "sfnt", Err: err}
	}

	outline := convertSegments(segments)
	outline.Rune = r
	outline.Size = size
	if adv, err := s.outlines.GlyphAdvance(buf, idx, ppem, 0); err == nil {
		outline.Advance = fixedToFloat(adv)
	}
	return outline, nil
}

func (s *FontSource) getBuffer() *sfnt.Buffer {
	return s.buffers.Get().(*sfnt.Buffer)
}

func (s *FontSource) putBuffer(b *sfnt.Buffer) {
	s.buffers.Put(b)
}
