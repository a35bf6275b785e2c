package text

import (
	"unicode"

	"github.com/go-text/typesetting/language"
)

// Class is the coarse category of a target character.
type Class uint8

const (
	// ClassUnsupported covers everything that is not a Latin letter or an
	// ASCII digit.
	ClassUnsupported Class = iota

	// ClassDigit is one of '0'..'9'.
	ClassDigit

	// ClassUpper is an uppercase Latin letter.
	ClassUpper

	// ClassLower is a lowercase Latin letter.
	ClassLower
)

// String returns the class name.
func (c Class) String() string {
	switch c {
	case ClassDigit:
		return "digit"
	case ClassUpper:
		return "upper"
	case ClassLower:
		return "lower"
	default:
		return "unsupported"
	}
}

// Classify returns the class of r. Look-alikes from other scripts, such
// as Cyrillic 'А', are unsupported even though they render like Latin.
func Classify(r rune) Class {
	switch language.LookupScript(r) {
	case language.Latin:
		switch {
		case unicode.IsUpper(r):
			return ClassUpper
		case unicode.IsLower(r):
			return ClassLower
		}
	case language.Common:
		if r >= '0' && r <= '9' {
			return ClassDigit
		}
	}
	return ClassUnsupported
}
