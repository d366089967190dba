// pkg/geom/vector.go
package geom

import (
	"math"

	"github.com/golang/geo/r2"
)

// Point is a screen-space point (x right, y down).
type Point = r2.Point

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Distance returns the Euclidean distance between two points.
func Distance(p1, p2 Point) float64 {
	return p2.Sub(p1).Norm()
}

// Rotate turns v by deg degrees counterclockwise as seen on screen.
// This is the usual [[cos, -sin], [sin, cos]] matrix in a y-up frame,
// written out for y-down coordinates.
func Rotate(v Point, deg float64) Point {
	sin, cos := math.Sincos(Radians(deg))
	return Point{
		X: v.X*cos + v.Y*sin,
		Y: -v.X*sin + v.Y*cos,
	}
}

// RotateAbout turns p around center by deg degrees.
func RotateAbout(p, center Point, deg float64) Point {
	return center.Add(Rotate(p.Sub(center), deg))
}

// Midpoint returns the point halfway between p1 and p2, shifted by offset
// along the unit vector from p1 to p2. Coincident points have no direction
// and are a programming error.
func Midpoint(p1, p2 Point, offset float64) Point {
	d := p2.Sub(p1)
	norm := d.Norm()
	if norm == 0 {
		panic("geom: midpoint of coincident points")
	}
	mid := p1.Add(p2).Mul(0.5)
	return mid.Add(d.Mul(offset / norm))
}

// RoundTo rounds x to the given number of decimal places.
func RoundTo(x float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(x*scale) / scale
}

// NearlyEqual reports whether two points are within eps on both axes.
func NearlyEqual(a, b Point, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps
}
