// pkg/geom/detect.go
package geom

import "math"

// DetectPrecision is the number of decimals distances are rounded to before
// the on-segment test. Rounding absorbs the float drift that would otherwise
// make A-M-B never sum exactly at typical rotation speeds.
const DetectPrecision = 1

// Segment is a line segment from A to B.
type Segment struct {
	A, B Point
}

// Length returns |AB|.
func (s Segment) Length() float64 {
	return Distance(s.A, s.B)
}

// Passes reports whether p lies on the segment within tolerance, using
// |AP| + |PB| - |AB| on rounded distances.
func (s Segment) Passes(p Point, tolerance float64) bool {
	d1 := RoundTo(Distance(s.A, p), DetectPrecision)
	d2 := RoundTo(Distance(p, s.B), DetectPrecision)
	d3 := RoundTo(Distance(s.A, s.B), DetectPrecision)
	return math.Abs(d1+d2-d3) <= tolerance
}

// Detect returns the first position, in slice order, lying on the segment.
func Detect(s Segment, positions []Point, tolerance float64) (Point, bool) {
	for _, p := range positions {
		if s.Passes(p, tolerance) {
			return p, true
		}
	}
	return Point{}, false
}
