package tulis

// Defaults of the overlap strategy.
const (
	// DefaultOverlapThreshold is the share of mask pixels that must carry
	// ink. It is deliberately low: children's handwriting is imprecise and
	// the stroked mask is wide.
	DefaultOverlapThreshold = 0.08

	// DefaultBackgroundThreshold is the channel value below which a pixel
	// counts as ink.
	DefaultBackgroundThreshold = 240
)

// Overlap accepts the ink when enough template mask pixels are inked.
// The scan visits mask pixels only.
type Overlap struct {
	Threshold  float64
	Background uint8
}

// NewOverlap returns the overlap strategy with its default thresholds.
func NewOverlap() *Overlap {
	return &Overlap{
		Threshold:  DefaultOverlapThreshold,
		Background: DefaultBackgroundThreshold,
	}
}

// Name implements Evaluator.
func (o *Overlap) Name() string { return "overlap" }

// Evaluate implements Evaluator.
func (o *Overlap) Evaluate(in Input) Verdict {
	v := noMatch(o.Name(), in)
	if o == nil {
		return v
	}
	if !in.HasDrawn || in.Mask.Empty() || in.Surface == nil {
		return v
	}
	if in.Mask.Scale() != in.Scale {
		Logger().Warn("mask scale mismatch",
			"err", &ScaleMismatchError{Surface: in.Scale, Mask: in.Mask.Scale()})
		return v
	}
	if in.Mask.Target() != in.Target {
		return v
	}
	if w, h := in.Scale.DeviceSize(); in.Surface.Width() != w || in.Surface.Height() != h {
		return v
	}

	v.Ratio = MatchRatio(in.Surface, in.Mask, o.Background)
	v.Confidence = v.Ratio
	v.Matched = v.Ratio >= o.Threshold
	return v
}

// MatchRatio returns the share of mask pixels that are inked on surface.
// An empty mask has ratio 0. Indices outside the surface count as not
// inked.
func MatchRatio(surface *Pixmap, mask *TemplateMask, background uint8) float64 {
	if mask.Empty() || surface == nil {
		return 0
	}
	matched := 0
	for _, i := range mask.indices {
		if surface.IsInked(i, background) {
			matched++
		}
	}
	return float64(matched) / float64(len(mask.indices))
}
