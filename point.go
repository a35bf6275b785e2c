package tulis

import "math"

// Point is a position in logical (CSS) pixels on the drawing surface.
// Origin is the top-left corner; Y grows downward.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Clamp limits p to the rectangle [0,w]×[0,h].
func (p Point) Clamp(w, h float64) Point {
	return Point{
		X: math.Max(0, math.Min(w, p.X)),
		Y: math.Max(0, math.Min(h, p.Y)),
	}
}

// Bounds is an axis-aligned bounding box in logical pixels.
type Bounds struct {
	Min, Max Point
}

// Width returns the box width.
func (b Bounds) Width() float64 { return b.Max.X - b.Min.X }

// Height returns the box height.
func (b Bounds) Height() float64 { return b.Max.Y - b.Min.Y }

// Area returns the box area.
func (b Bounds) Area() float64 { return b.Width() * b.Height() }

// BoundsOf returns the bounding box of pts. The zero Bounds is returned
// for an empty slice.
func BoundsOf(pts []Point) Bounds {
	if len(pts) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		b.Min.X = math.Min(b.Min.X, p.X)
		b.Min.Y = math.Min(b.Min.Y, p.Y)
		b.Max.X = math.Max(b.Max.X, p.X)
		b.Max.Y = math.Max(b.Max.Y, p.Y)
	}
	return b
}
