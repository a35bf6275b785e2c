package tulis

import (
	"math"
)

// Defaults of the shape strategy. Lengths are in logical pixels.
const (
	// DefaultMinPoints is the fewest captured points that count as a
	// deliberate attempt.
	DefaultMinPoints = 20

	// DefaultMinBox is the smallest accepted bounding box side.
	DefaultMinBox = 30

	// dominance is how much one axis must exceed the other for a move to
	// count as vertical or horizontal.
	dominance = 2.0

	// runShare is the share of the box height (or width) a straight run
	// must cover.
	runShare = 0.5

	// curveFactor is how much longer than its chord a curved stroke is.
	curveFactor = 1.5

	// minCurveLength is the shortest stroke that can be a curve.
	minCurveLength = 60

	// tallRatio is the height to width ratio of a tall glyph.
	tallRatio = 1.3

	// balancedMin and balancedMax bound the width to height ratio of a
	// round glyph.
	balancedMin = 0.6
	balancedMax = 1.6

	// maxStrength caps a single predicate's contribution to confidence.
	maxStrength = 2.0
)

// ShapeFeatures are the coarse geometric predicates of a drawing.
//
// Every *Strength field is the measured value divided by its threshold:
// 1 means just enough, larger means more pronounced.
type ShapeFeatures struct {
	Points  int
	Strokes int
	Box     Bounds

	// PathLength is the summed length of all strokes.
	PathLength float64

	// VerticalRun and HorizontalRun are the longest runs of moves
	// dominated by one axis.
	VerticalRun   float64
	HorizontalRun float64

	// CurveRatio is the highest path length to chord ratio among strokes
	// long enough to be a curve. A closed loop has an infinite ratio.
	CurveRatio float64

	HasVertical   bool
	HasHorizontal bool
	HasCurve      bool
	Tall          bool
	Balanced      bool

	VerticalStrength   float64
	HorizontalStrength float64
	CurveStrength      float64
	TallStrength       float64
	BalancedStrength   float64
}

// MeasureShape derives ShapeFeatures from a stroke sequence. Moves are
// only measured within a stroke; pen lifts are not ink.
func MeasureShape(seq *StrokeSequence) ShapeFeatures {
	f := ShapeFeatures{
		Points:  seq.Len(),
		Strokes: seq.StrokeCount(),
		Box:     seq.Bounds(),
	}
	if f.Points == 0 {
		return f
	}
	w, h := f.Box.Width(), f.Box.Height()

	for i := 0; i < f.Strokes; i++ {
		pts := seq.stroke(i)
		v, hz, length := axisRuns(pts)
		f.VerticalRun = max(f.VerticalRun, v)
		f.HorizontalRun = max(f.HorizontalRun, hz)
		f.PathLength += length

		if length >= minCurveLength {
			chord := pts[0].Distance(pts[len(pts)-1])
			ratio := math.Inf(1)
			if chord > 0 {
				ratio = length / chord
			}
			f.CurveRatio = max(f.CurveRatio, ratio)
		}
	}

	if h > 0 {
		f.VerticalStrength = f.VerticalRun / (runShare * h)
	}
	if w > 0 {
		f.HorizontalStrength = f.HorizontalRun / (runShare * w)
	}
	f.CurveStrength = f.CurveRatio / curveFactor
	f.TallStrength = ratioStrength(h, tallRatio*w)
	if h > 0 && w > 0 {
		r := w / h
		switch {
		case r >= 1:
			f.BalancedStrength = 1 + (1 - math.Log(r)/math.Log(balancedMax))
		default:
			f.BalancedStrength = 1 + (1 - math.Log(r)/math.Log(balancedMin))
		}
	}

	f.HasVertical = f.VerticalStrength >= 1
	f.HasHorizontal = f.HorizontalStrength >= 1
	f.HasCurve = f.CurveStrength >= 1
	f.Tall = f.TallStrength >= 1
	f.Balanced = f.BalancedStrength >= 1
	return f
}

// axisRuns returns the longest vertical and horizontal runs of pts and
// its path length. A run is a maximal sequence of moves where one axis
// dominates the other; stationary moves do not break a run.
func axisRuns(pts []Point) (vertical, horizontal, length float64) {
	var vRun, hRun float64
	for i := 1; i < len(pts); i++ {
		d := pts[i].Sub(pts[i-1])
		dx, dy := math.Abs(d.X), math.Abs(d.Y)
		length += d.Length()
		if dx == 0 && dy == 0 {
			continue
		}
		if dy >= dominance*dx {
			vRun += dy
		} else {
			vRun = 0
		}
		if dx >= dominance*dy {
			hRun += dx
		} else {
			hRun = 0
		}
		vertical = max(vertical, vRun)
		horizontal = max(horizontal, hRun)
	}
	return vertical, horizontal, length
}

func ratioStrength(v, threshold float64) float64 {
	switch {
	case threshold > 0:
		return v / threshold
	case v > 0:
		return math.Inf(1)
	default:
		return 0
	}
}

// shapeNeed is a set of predicates a target requires.
type shapeNeed uint8

const (
	needVertical shapeNeed = 1 << iota
	needHorizontal
	needCurve
	needTall
	needBalanced

	// narrow glyphs are often drawn as a single line, so only their
	// height is held to the minimum box size.
	narrow
)

// shapeTable lists the requirements of every supported target.
var shapeTable = map[rune]shapeNeed{
	'0': needCurve | needBalanced,
	'1': needVertical | needTall | narrow,
	'2': needCurve | needHorizontal,
	'3': needCurve,
	'4': needVertical | needHorizontal,
	'5': needHorizontal | needCurve,
	'6': needCurve,
	'7': needHorizontal,
	'8': needCurve,
	'9': needCurve,

	'A': needHorizontal | needBalanced,
	'B': needVertical | needCurve,
	'C': needCurve,
	'D': needVertical | needCurve,
	'E': needVertical | needHorizontal,
	'F': needVertical | needHorizontal,
	'G': needCurve,
	'H': needVertical | needHorizontal,
	'I': needVertical | narrow,
	'J': needCurve,
	'K': needVertical,
	'L': needVertical | needHorizontal,
	'M': needVertical,
	'N': needVertical,
	'O': needCurve | needBalanced,
	'P': needVertical | needCurve,
	'Q': needCurve,
	'R': needVertical | needCurve,
	'S': needCurve,
	'T': needVertical | needHorizontal,
	'U': needCurve,
	'V': needBalanced,
	'W': needBalanced,
	'X': needBalanced,
	'Y': needVertical,
	'Z': needHorizontal,

	'a': needCurve,
	'b': needVertical | needCurve | needTall,
	'c': needCurve,
	'd': needVertical | needCurve | needTall,
	'e': needCurve | needHorizontal,
	'f': needVertical | needHorizontal | needTall,
	'g': needCurve,
	'h': needVertical | needTall,
	'i': needVertical | narrow,
	'j': needVertical | narrow,
	'k': needVertical | needTall,
	'l': needVertical | needTall | narrow,
	'm': needVertical,
	'n': needVertical,
	'o': needCurve | needBalanced,
	'p': needVertical | needCurve | needTall,
	'q': needVertical | needCurve | needTall,
	'r': needVertical,
	's': needCurve,
	't': needVertical | needHorizontal,
	'u': needCurve,
	'v': needBalanced,
	'w': needBalanced,
	'x': needBalanced,
	'y': needBalanced,
	'z': needHorizontal,
}

// Shape matches the point sequence against a per-target table of
// geometric predicates. It needs no pixel access.
type Shape struct {
	MinPoints int
	MinBox    float64
}

// NewShape returns the shape strategy with its default guards.
func NewShape() *Shape {
	return &Shape{MinPoints: DefaultMinPoints, MinBox: DefaultMinBox}
}

// Name implements Evaluator.
func (s *Shape) Name() string { return "shape" }

// Supports reports whether the table has an entry for t.
func (s *Shape) Supports(t Target) bool {
	_, ok := shapeTable[t.Rune()]
	return ok
}

// Evaluate implements Evaluator.
func (s *Shape) Evaluate(in Input) Verdict {
	v := noMatch(s.Name(), in)
	if s == nil {
		return v
	}
	if !in.HasDrawn || in.Strokes.Len() == 0 {
		return v
	}
	need, ok := shapeTable[in.Target.Rune()]
	if !ok {
		Logger().Debug("no shape entry", "target", in.Target.String())
		return v
	}

	f := MeasureShape(in.Strokes)
	strengths := []float64{ratioStrength(float64(f.Points), float64(s.MinPoints))}
	if f.Points < s.MinPoints {
		return v
	}
	heightStrength := ratioStrength(f.Box.Height(), s.MinBox)
	if heightStrength < 1 {
		return v
	}
	strengths = append(strengths, heightStrength)
	if need&narrow == 0 {
		widthStrength := ratioStrength(f.Box.Width(), s.MinBox)
		if widthStrength < 1 {
			return v
		}
		strengths = append(strengths, widthStrength)
	}

	checks := []struct {
		need     shapeNeed
		has      bool
		strength float64
	}{
		{needVertical, f.HasVertical, f.VerticalStrength},
		{needHorizontal, f.HasHorizontal, f.HorizontalStrength},
		{needCurve, f.HasCurve, f.CurveStrength},
		{needTall, f.Tall, f.TallStrength},
		{needBalanced, f.Balanced, f.BalancedStrength},
	}
	for _, c := range checks {
		if need&c.need == 0 {
			continue
		}
		if !c.has {
			return v
		}
		strengths = append(strengths, c.strength)
	}

	v.Matched = true
	v.Confidence = confidence(strengths)
	return v
}

// confidence maps predicate strengths to [0, 1]: a strength at its
// threshold scores 0, twice the threshold or more scores 1.
func confidence(strengths []float64) float64 {
	if len(strengths) == 0 {
		return 0
	}
	var sum float64
	for _, s := range strengths {
		sum += min(s, maxStrength) - 1
	}
	return math.Max(0, math.Min(1, sum/float64(len(strengths))))
}
