package tulis

import (
	"strings"

	"github.com/google/uuid"
)

// Verdict is the outcome of one check.
type Verdict struct {
	// Matched reports whether the ink is accepted as the target.
	Matched bool

	// Confidence is a score in [0, 1]. Strategies without a natural
	// score report 1 for a match and 0 otherwise.
	Confidence float64

	// Ratio is the mask overlap ratio for pixel strategies, 0 otherwise.
	Ratio float64

	// Strategy names the evaluator that produced the verdict.
	Strategy string

	// Target is the glyph that was checked.
	Target Target

	// Attempt identifies the drawing attempt the verdict belongs to.
	Attempt uuid.UUID
}

// Input is everything an evaluator may look at. Pixel strategies read
// Surface and Mask; geometric strategies read Strokes.
type Input struct {
	Target   Target
	Scale    Scale
	Surface  *Pixmap
	Mask     *TemplateMask
	Strokes  *StrokeSequence
	HasDrawn bool
}

// Evaluator decides whether the captured ink matches the target.
// Implementations never panic; malformed or insufficient input yields a
// verdict with Matched false.
type Evaluator interface {
	Name() string
	Evaluate(in Input) Verdict
}

func noMatch(name string, in Input) Verdict {
	return Verdict{Strategy: name, Target: in.Target}
}

// Chain tries each evaluator in order and returns the first match.
// Without a match, the verdict of the first evaluator is returned.
// Nil entries are skipped.
type Chain []Evaluator

// Name implements Evaluator.
func (c Chain) Name() string {
	names := make([]string, 0, len(c))
	for _, e := range c {
		if e != nil {
			names = append(names, e.Name())
		}
	}
	return strings.Join(names, "+")
}

// Evaluate implements Evaluator.
func (c Chain) Evaluate(in Input) Verdict {
	var (
		first Verdict
		tried bool
	)
	for _, e := range c {
		if e == nil {
			continue
		}
		v := e.Evaluate(in)
		if v.Matched {
			return v
		}
		if !tried {
			first, tried = v, true
		}
	}
	if !tried {
		return noMatch(c.Name(), in)
	}
	return first
}

// EvaluatorByName returns the built-in strategy called name: "overlap",
// "shape", "density", or "all" for a chain of the three.
func EvaluatorByName(name string) (Evaluator, bool) {
	switch strings.ToLower(name) {
	case "overlap", "":
		return NewOverlap(), true
	case "shape":
		return NewShape(), true
	case "density":
		return NewDensity(), true
	case "all":
		return Chain{NewOverlap(), NewShape(), NewDensity()}, true
	default:
		return nil, false
	}
}
