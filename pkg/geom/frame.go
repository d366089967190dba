// pkg/geom/frame.go
package geom

// FrameSpec holds the fixed offsets used to derive anchor points from the
// rotated turret rect.
type FrameSpec struct {
	RayLength         float64 // length of the firing and laser rays, usually the screen width
	LaserSideOffset   float64 // laser rail offset from the centre of the long edges
	LaserStartOffset  float64 // laser origin offset from the middle of the rail
	SteamSideOffset   float64 // steam alignment offset along the short edges
	SteamOriginOffset float64 // steam origin offset between the alignments
	SteamLength       float64
}

// Frame is the set of anchor points for one turret angle.
type Frame struct {
	Angle float64

	TopLeft     Point
	TopRight    Point
	BottomRight Point
	BottomLeft  Point

	LeftSide  Point
	RightSide Point
	Bottom    Point

	SmallSide float64
	LongSide  float64

	Cannon Point
	Target Point

	TopLaser    Point
	BottomLaser Point
	LaserStart  Point
	LaserEnd    Point

	SteamOrigin Point
	SteamEnd    Point
}

// NewFrame computes every anchor point of base rotated by angle degrees.
// base is the unrotated turret rect centred on the pivot.
func NewFrame(base Rect, angle float64, spec FrameSpec) Frame {
	c := RotateCorners(base, angle)
	f := Frame{
		Angle:       angle,
		TopLeft:     c[0],
		TopRight:    c[1],
		BottomRight: c[2],
		BottomLeft:  c[3],
	}

	f.LeftSide = Midpoint(f.TopLeft, f.BottomLeft, 0)
	f.RightSide = Midpoint(f.TopRight, f.BottomRight, 0)
	f.Bottom = Midpoint(f.BottomLeft, f.BottomRight, 0)

	f.SmallSide = Distance(f.TopLeft, f.TopRight)
	f.LongSide = Distance(f.TopRight, f.BottomRight)

	ray := Rotate(Pt(0, -spec.RayLength), angle)
	f.Cannon = Midpoint(f.TopLeft, f.TopRight, 0)
	f.Target = f.Cannon.Add(ray)

	f.TopLaser = Midpoint(f.TopLeft, f.TopRight, spec.LaserSideOffset)
	f.BottomLaser = Midpoint(f.BottomLeft, f.BottomRight, spec.LaserSideOffset)
	f.LaserStart = Midpoint(f.TopLaser, f.BottomLaser, spec.LaserStartOffset)
	f.LaserEnd = f.LaserStart.Add(ray)

	steamRight := Midpoint(f.TopRight, f.BottomRight, spec.SteamSideOffset)
	steamLeft := Midpoint(f.TopLeft, f.BottomLeft, spec.SteamSideOffset)
	f.SteamOrigin = Midpoint(steamLeft, steamRight, spec.SteamOriginOffset)
	f.SteamEnd = f.SteamOrigin.Add(Rotate(Pt(spec.SteamLength, 0), angle))

	return f
}

// LaserSegment is the rotating detection sweep.
func (f Frame) LaserSegment() Segment {
	return Segment{A: f.LaserStart, B: f.LaserEnd}
}

// CannonSegment is the firing line from the muzzle.
func (f Frame) CannonSegment() Segment {
	return Segment{A: f.Cannon, B: f.Target}
}

// Corners returns the rotated corners in TL, TR, BR, BL order.
func (f Frame) Corners() [4]Point {
	return [4]Point{f.TopLeft, f.TopRight, f.BottomRight, f.BottomLeft}
}

// NamedPoint is an anchor point with its label, used by debug views.
type NamedPoint struct {
	Name   string
	Point  Point
	Vertex bool
}

// Anchors lists every point of the frame for debug drawing.
func (f Frame) Anchors() []NamedPoint {
	return []NamedPoint{
		{"top_left", f.TopLeft, true},
		{"top_right", f.TopRight, true},
		{"bottom_right", f.BottomRight, true},
		{"bottom_left", f.BottomLeft, true},
		{"left_side", f.LeftSide, false},
		{"right_side", f.RightSide, false},
		{"bottom", f.Bottom, false},
		{"cannon", f.Cannon, false},
		{"target", f.Target, false},
		{"top_laser", f.TopLaser, false},
		{"bottom_laser", f.BottomLaser, false},
		{"laser_start", f.LaserStart, false},
		{"steam_origin", f.SteamOrigin, false},
		{"steam_end", f.SteamEnd, false},
	}
}
