package tulis

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/tulis/text"
)

// Target is the letter or digit the child is asked to write.
// The zero Target is "no target".
type Target struct {
	r rune
}

// ParseTarget returns s as a Target. Surrounding whitespace is ignored and
// compatibility forms are folded by NFKC, so a fullwidth "Ａ" is "A".
// Targets are the ASCII digits and letters; accented and other Latin
// letters are unsupported.
func ParseTarget(s string) (Target, error) {
	s = norm.NFKC.String(strings.TrimSpace(s))
	if s == "" {
		return Target{}, ErrEmptyTarget
	}
	r, size := utf8.DecodeRuneInString(s)
	if size != len(s) {
		return Target{}, fmt.Errorf("%w: %q", ErrMultiGlyphTarget, s)
	}
	if r >= utf8.RuneSelf || text.Classify(r) == text.ClassUnsupported {
		return Target{}, fmt.Errorf("%w: %q", ErrUnsupportedTarget, s)
	}
	return Target{r: r}, nil
}

// MustTarget is like ParseTarget but panics on error.
func MustTarget(s string) Target {
	t, err := ParseTarget(s)
	if err != nil {
		panic(err)
	}
	return t
}

// Rune returns the target character.
func (t Target) Rune() rune {
	return t.r
}

// IsZero reports whether t is the zero Target.
func (t Target) IsZero() bool {
	return t.r == 0
}

// Class returns the coarse category of the target.
func (t Target) Class() text.Class {
	if t.IsZero() {
		return text.ClassUnsupported
	}
	return text.Classify(t.r)
}

// String implements fmt.Stringer.
func (t Target) String() string {
	if t.IsZero() {
		return ""
	}
	return string(t.r)
}

// DefaultTargets is the practice set of the writing game.
var DefaultTargets = []Target{
	MustTarget("A"), MustTarget("B"), MustTarget("C"), MustTarget("D"), MustTarget("E"),
	MustTarget("1"), MustTarget("2"), MustTarget("3"), MustTarget("4"), MustTarget("5"),
	MustTarget("M"), MustTarget("N"), MustTarget("O"), MustTarget("P"), MustTarget("R"),
	MustTarget("6"), MustTarget("7"), MustTarget("8"), MustTarget("9"), MustTarget("0"),
}

// RandomTarget picks a target from DefaultTargets.
func RandomTarget(rng *rand.Rand) Target {
	if rng == nil {
		return DefaultTargets[rand.IntN(len(DefaultTargets))]
	}
	return DefaultTargets[rng.IntN(len(DefaultTargets))]
}
