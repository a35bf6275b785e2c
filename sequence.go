package tulis

import "slices"

// StrokeSequence is the ordered point history of one drawing attempt.
// Points from successive gestures are stored back to back; starts marks
// where each gesture begins so pen lifts are not mistaken for ink.
type StrokeSequence struct {
	points []Point
	starts []int
}

// NewStrokeSequence builds a sequence from complete strokes. Empty
// strokes are skipped.
func NewStrokeSequence(strokes ...[]Point) *StrokeSequence {
	s := &StrokeSequence{}
	for _, st := range strokes {
		if len(st) == 0 {
			continue
		}
		s.begin(st[0])
		for _, p := range st[1:] {
			s.append(p)
		}
	}
	return s
}

func (s *StrokeSequence) begin(p Point) {
	s.starts = append(s.starts, len(s.points))
	s.points = append(s.points, p)
}

func (s *StrokeSequence) append(p Point) {
	if len(s.starts) == 0 {
		s.begin(p)
		return
	}
	s.points = append(s.points, p)
}

// Reset empties the sequence, keeping its capacity.
func (s *StrokeSequence) Reset() {
	s.points = s.points[:0]
	s.starts = s.starts[:0]
}

// Len returns the number of points.
func (s *StrokeSequence) Len() int {
	if s == nil {
		return 0
	}
	return len(s.points)
}

// StrokeCount returns the number of gestures.
func (s *StrokeSequence) StrokeCount() int {
	if s == nil {
		return 0
	}
	return len(s.starts)
}

// Points returns a copy of all points in capture order.
func (s *StrokeSequence) Points() []Point {
	if s == nil {
		return nil
	}
	return slices.Clone(s.points)
}

// Strokes returns a copy of the points split by gesture.
func (s *StrokeSequence) Strokes() [][]Point {
	if s.StrokeCount() == 0 {
		return nil
	}
	out := make([][]Point, len(s.starts))
	for i := range s.starts {
		out[i] = slices.Clone(s.stroke(i))
	}
	return out
}

// stroke returns gesture i without copying.
func (s *StrokeSequence) stroke(i int) []Point {
	end := len(s.points)
	if i+1 < len(s.starts) {
		end = s.starts[i+1]
	}
	return s.points[s.starts[i]:end]
}

// Last returns the most recent point.
func (s *StrokeSequence) Last() (Point, bool) {
	if s.Len() == 0 {
		return Point{}, false
	}
	return s.points[len(s.points)-1], true
}

// Bounds returns the bounding box of all points.
func (s *StrokeSequence) Bounds() Bounds {
	if s == nil {
		return Bounds{}
	}
	return BoundsOf(s.points)
}

// PathLength returns the summed length of all gestures. The jump between
// the end of one gesture and the start of the next is not counted.
func (s *StrokeSequence) PathLength() float64 {
	var total float64
	for i := 0; i < s.StrokeCount(); i++ {
		pts := s.stroke(i)
		for j := 1; j < len(pts); j++ {
			total += pts[j].Distance(pts[j-1])
		}
	}
	return total
}

// Clone returns a deep copy.
func (s *StrokeSequence) Clone() *StrokeSequence {
	if s == nil {
		return &StrokeSequence{}
	}
	return &StrokeSequence{
		points: slices.Clone(s.points),
		starts: slices.Clone(s.starts),
	}
}
