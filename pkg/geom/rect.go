// pkg/geom/rect.go
package geom

import "github.com/golang/geo/r2"

// Rect is an axis-aligned screen rectangle. X spans left..right, Y spans top..bottom.
type Rect = r2.Rect

// RectAt returns a w×h rect centred on c.
func RectAt(c Point, w, h float64) Rect {
	return r2.RectFromCenterSize(c, Point{X: w, Y: h})
}

// Inflate grows r by amount in total on each axis, half on every side,
// like pygame's Rect.inflate.
func Inflate(r Rect, amount float64) Rect {
	return r.ExpandedByMargin(amount / 2)
}

// Corners returns top-left, top-right, bottom-right and bottom-left.
func Corners(r Rect) [4]Point {
	// r2 vertices run lo,lo → hi,lo → hi,hi → lo,hi, which in y-down
	// coordinates is TL, TR, BR, BL.
	return r.Vertices()
}

// RotateCorners rotates the corners of r about its centre by deg degrees.
// The rect itself is never modified.
func RotateCorners(r Rect, deg float64) [4]Point {
	center := r.Center()
	corners := Corners(r)
	for i, c := range corners {
		corners[i] = RotateAbout(c, center, deg)
	}
	return corners
}
