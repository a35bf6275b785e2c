package tulis

import (
	"errors"
	"fmt"
)

// Sentinel errors for tulis.
var (
	// ErrInvalidSize is returned for empty canvases or a DPR outside (0, MaxDPR].
	ErrInvalidSize = errors.New("tulis: invalid canvas size")

	// ErrEmptyTarget is returned when the target string is empty.
	ErrEmptyTarget = errors.New("tulis: empty target")

	// ErrMultiGlyphTarget is returned when the target holds more than one character.
	ErrMultiGlyphTarget = errors.New("tulis: target must be a single character")

	// ErrUnsupportedTarget is returned when the target is not a Latin
	// letter or digit, or the font cannot render it.
	ErrUnsupportedTarget = errors.New("tulis: unsupported target")
)

// ScaleMismatchError reports a template mask that was rasterized at a
// different scale than the surface it is compared against.
type ScaleMismatchError struct {
	Surface Scale
	Mask    Scale
}

func (e *ScaleMismatchError) Error() string {
	return fmt.Sprintf("tulis: mask scale %v does not match surface scale %v", e.Mask, e.Surface)
}
