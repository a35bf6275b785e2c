package tulis

import (
	"github.com/gogpu/tulis/text"
)

// densityBand is the accepted range of one target category.
type densityBand struct {
	minPoints              int
	minStrokes, maxStrokes int
	// minDensity and maxDensity bound points per square logical pixel.
	minDensity, maxDensity float64
}

var (
	digitBand   = densityBand{minPoints: 15, minStrokes: 1, maxStrokes: 2, minDensity: 0.001, maxDensity: 0.08}
	letterBand  = densityBand{minPoints: 20, minStrokes: 1, maxStrokes: 4, minDensity: 0.001, maxDensity: 0.08}
	complexBand = densityBand{minPoints: 30, minStrokes: 1, maxStrokes: 5, minDensity: 0.002, maxDensity: 0.12}
)

// complexGlyphs are drawn with more strokes or more points than their
// category suggests.
var complexGlyphs = map[rune]bool{
	'B': true, 'E': true, 'M': true, 'W': true, 'R': true, 'K': true,
	'8': true, 'm': true, 'w': true, 'g': true,
}

// Density accepts any drawing whose stroke count, point count and point
// density fall in the band of the target's category. It barely
// discriminates between glyphs and suits lenient feedback only.
type Density struct {
	// MinExtent is the smallest side, in logical pixels, the drawing's
	// box is taken to have. A straight stroke still covers the pen width.
	MinExtent float64
}

// NewDensity returns the density strategy with MinExtent set to the
// default ink width.
func NewDensity() *Density { return &Density{MinExtent: DefaultInk().Width} }

// Name implements Evaluator.
func (d *Density) Name() string { return "density" }

func bandFor(t Target) (densityBand, bool) {
	if complexGlyphs[t.Rune()] {
		return complexBand, true
	}
	switch t.Class() {
	case text.ClassDigit:
		return digitBand, true
	case text.ClassUpper, text.ClassLower:
		return letterBand, true
	default:
		return densityBand{}, false
	}
}

// Evaluate implements Evaluator. Confidence is the share of the three
// band checks that passed.
func (d *Density) Evaluate(in Input) Verdict {
	v := noMatch(d.Name(), in)
	if d == nil {
		return v
	}
	if !in.HasDrawn || in.Strokes.Len() == 0 {
		return v
	}
	band, ok := bandFor(in.Target)
	if !ok {
		return v
	}

	b := in.Strokes.Bounds()
	side := max(d.MinExtent, 1)
	area := max(b.Width(), side) * max(b.Height(), side)
	points := in.Strokes.Len()
	strokes := in.Strokes.StrokeCount()
	density := float64(points) / area

	passed := 0
	if points >= band.minPoints {
		passed++
	}
	if strokes >= band.minStrokes && strokes <= band.maxStrokes {
		passed++
	}
	if density >= band.minDensity && density <= band.maxDensity {
		passed++
	}
	v.Confidence = float64(passed) / 3
	v.Matched = passed == 3
	return v
}
