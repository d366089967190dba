package geom

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestRotateCornersAtZero(t *testing.T) {
	r := RectAt(Pt(100, 100), 40, 20)
	got := RotateCorners(r, 0)
	want := [4]Point{Pt(80, 90), Pt(120, 90), Pt(120, 110), Pt(80, 110)}
	for i := range want {
		if !NearlyEqual(got[i], want[i], eps) {
			t.Errorf("corner %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestRotateCornersHalfTurnReflectsThroughCenter(t *testing.T) {
	r := RectAt(Pt(100, 100), 40, 20)
	center := r.Center()
	orig := Corners(r)
	got := RotateCorners(r, 180)
	for i := range orig {
		reflected := center.Mul(2).Sub(orig[i])
		if !NearlyEqual(got[i], reflected, 1e-9) {
			t.Errorf("corner %d: expected %v, got %v", i, reflected, got[i])
		}
	}
}

func TestRotateCornersRoundTrip(t *testing.T) {
	r := RectAt(Pt(600, 400), 132, 176)
	orig := Corners(r)
	for angle := 0.0; angle < 720; angle += 7.3 {
		rotated := RotateCorners(r, angle)
		back := math.Mod(360-math.Mod(angle, 360), 360)
		for i, c := range rotated {
			p := RotateAbout(c, r.Center(), back)
			if !NearlyEqual(p, orig[i], 1e-6) {
				t.Fatalf("angle %.1f corner %d: expected %v, got %v", angle, i, orig[i], p)
			}
		}
	}
}

func TestRotateIsCounterclockwiseOnScreen(t *testing.T) {
	// Straight up on screen turns to the left after a quarter turn.
	got := Rotate(Pt(0, -1), 90)
	if !NearlyEqual(got, Pt(-1, 0), eps) {
		t.Errorf("expected (-1, 0), got %v", got)
	}
}

func TestMidpointZeroOffsetIsAverage(t *testing.T) {
	cases := [][2]Point{
		{Pt(0, 0), Pt(10, 0)},
		{Pt(-3, 7), Pt(12, -5)},
		{Pt(1e3, 1e3), Pt(1e3+0.5, 1e3-0.25)},
	}
	for _, c := range cases {
		got := Midpoint(c[0], c[1], 0)
		want := Pt((c[0].X+c[1].X)/2, (c[0].Y+c[1].Y)/2)
		if !NearlyEqual(got, want, eps) {
			t.Errorf("Midpoint(%v, %v, 0) = %v, want %v", c[0], c[1], got, want)
		}
	}
}

func TestMidpointOffsetFollowsDirection(t *testing.T) {
	got := Midpoint(Pt(0, 0), Pt(100, 0), -48)
	if !NearlyEqual(got, Pt(2, 0), eps) {
		t.Errorf("expected (2, 0), got %v", got)
	}
	got = Midpoint(Pt(0, 0), Pt(0, 100), 20)
	if !NearlyEqual(got, Pt(0, 70), eps) {
		t.Errorf("expected (0, 70), got %v", got)
	}
}

func TestMidpointCoincidentPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for coincident points")
		}
	}()
	Midpoint(Pt(5, 5), Pt(5, 5), 0)
}

func TestInflate(t *testing.T) {
	r := Inflate(RectAt(Pt(0, 0), 10, 10), 100)
	if r.X.Lo != -55 || r.X.Hi != 55 || r.Y.Lo != -55 || r.Y.Hi != 55 {
		t.Errorf("unexpected inflated rect %v", r)
	}
}

func TestDetectColinear(t *testing.T) {
	seg := Segment{A: Pt(0, 0), B: Pt(100, 0)}
	m := Pt(37, 0)
	got, ok := Detect(seg, []Point{m}, 0.2)
	if !ok || got != m {
		t.Fatalf("expected %v detected, got %v (%v)", m, got, ok)
	}

	// Diagonal segment with a point strictly between the ends.
	seg = Segment{A: Pt(10, 10), B: Pt(310, 410)}
	m = Pt(160, 210)
	if _, ok := Detect(seg, []Point{m}, 0.2); !ok {
		t.Errorf("expected diagonal midpoint %v to be detected", m)
	}
}

func TestDetectOffLine(t *testing.T) {
	seg := Segment{A: Pt(0, 0), B: Pt(100, 0)}
	if p, ok := Detect(seg, []Point{Pt(50, 10)}, 0.2); ok {
		t.Errorf("point off the line must not be detected, got %v", p)
	}
	// Colinear but past the end.
	if p, ok := Detect(seg, []Point{Pt(150, 0)}, 0.2); ok {
		t.Errorf("point beyond the segment must not be detected, got %v", p)
	}
}

func TestDetectFirstMatchWins(t *testing.T) {
	seg := Segment{A: Pt(0, 0), B: Pt(0, -500)}
	far := Pt(0, -400)
	near := Pt(0, -100)
	got, ok := Detect(seg, []Point{Pt(80, 80), far, near}, 0.2)
	if !ok || got != far {
		t.Errorf("expected first match %v, got %v (%v)", far, got, ok)
	}
}

func TestDetectEmpty(t *testing.T) {
	if _, ok := Detect(Segment{A: Pt(0, 0), B: Pt(1, 1)}, nil, 0.2); ok {
		t.Error("no positions must yield no detection")
	}
}

func testSpec() FrameSpec {
	return FrameSpec{
		RayLength:         1200,
		LaserSideOffset:   -48,
		LaserStartOffset:  20,
		SteamSideOffset:   10,
		SteamOriginOffset: 40,
		SteamLength:       250,
	}
}

func TestFrameAtZero(t *testing.T) {
	base := RectAt(Pt(600, 400), 132, 176)
	f := NewFrame(base, 0, testSpec())

	checks := []struct {
		name string
		got  Point
		want Point
	}{
		{"cannon", f.Cannon, Pt(600, 312)},
		{"target", f.Target, Pt(600, 312-1200)},
		{"top_laser", f.TopLaser, Pt(552, 312)},
		{"bottom_laser", f.BottomLaser, Pt(552, 488)},
		{"laser_start", f.LaserStart, Pt(552, 420)},
		{"laser_end", f.LaserEnd, Pt(552, 420-1200)},
		{"left_side", f.LeftSide, Pt(534, 400)},
		{"right_side", f.RightSide, Pt(666, 400)},
		{"bottom", f.Bottom, Pt(600, 488)},
		{"steam_origin", f.SteamOrigin, Pt(640, 410)},
		{"steam_end", f.SteamEnd, Pt(890, 410)},
	}
	for _, c := range checks {
		if !NearlyEqual(c.got, c.want, 1e-9) {
			t.Errorf("%s: expected %v, got %v", c.name, c.want, c.got)
		}
	}
	if math.Abs(f.SmallSide-132) > eps || math.Abs(f.LongSide-176) > eps {
		t.Errorf("unexpected side lengths %f x %f", f.SmallSide, f.LongSide)
	}
}

func TestFrameQuarterTurn(t *testing.T) {
	base := RectAt(Pt(600, 400), 132, 176)
	f := NewFrame(base, 90, testSpec())

	// The muzzle swings from the top edge to the left edge.
	if !NearlyEqual(f.Cannon, Pt(512, 400), 1e-9) {
		t.Errorf("cannon: expected (512, 400), got %v", f.Cannon)
	}
	if !NearlyEqual(f.Target, Pt(512-1200, 400), 1e-9) {
		t.Errorf("target: expected (-688, 400), got %v", f.Target)
	}
	// The ray stays parallel to the muzzle direction.
	dir := f.Target.Sub(f.Cannon).Normalize()
	laserDir := f.LaserEnd.Sub(f.LaserStart).Normalize()
	if !NearlyEqual(dir, laserDir, 1e-9) {
		t.Errorf("laser %v and cannon %v rays diverge", laserDir, dir)
	}
}

func TestFrameTracksAngleContinuously(t *testing.T) {
	base := RectAt(Pt(600, 400), 132, 176)
	spec := testSpec()
	for angle := 0.0; angle < 360; angle += 0.6 {
		f := NewFrame(base, angle, spec)
		if d := Distance(f.Cannon, base.Center()); math.Abs(d-88) > 1e-9 {
			t.Fatalf("angle %.1f: cannon drifted to %f from pivot", angle, d)
		}
		if l := f.CannonSegment().Length(); math.Abs(l-1200) > 1e-9 {
			t.Fatalf("angle %.1f: ray length %f", angle, l)
		}
	}
}
