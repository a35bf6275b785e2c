package text

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		r    rune
		want Class
	}{
		{'0', ClassDigit},
		{'7', ClassDigit},
		{'A', ClassUpper},
		{'R', ClassUpper},
		{'b', ClassLower},
		{'z', ClassLower},
		{'É', ClassUpper},
		{'А', ClassUnsupported}, // Cyrillic capital A
		{'١', ClassUnsupported}, // Arabic-Indic one
		{'!', ClassUnsupported},
		{' ', ClassUnsupported},
		{'中', ClassUnsupported},
	}
	for _, tt := range tests {
		if got := Classify(tt.r); got != tt.want {
			t.Errorf("Classify(%q) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestClassString(t *testing.T) {
	for c, want := range map[Class]string{
		ClassDigit:       "digit",
		ClassUpper:       "upper",
		ClassLower:       "lower",
		ClassUnsupported: "unsupported",
	} {
		if got := c.String(); got != want {
			t.Errorf("Class(%d).String() = %q, want %q", c, got, want)
		}
	}
}
