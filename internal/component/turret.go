// internal/component/turret.go
package component

import (
	"go-turret-sentinel/internal/utils"
	"go-turret-sentinel/pkg/geom"
)

// Mode is the turret's behavioural state.
type Mode int

const (
	ModeSearching Mode = iota // sweeping at full speed
	ModeAlert                 // laser is on a mob, slow sweep
	ModeFiring                // cannon is on a mob, holding still
)

func (m Mode) String() string {
	switch m {
	case ModeSearching:
		return "sentinel"
	case ModeAlert:
		return "alert"
	case ModeFiring:
		return "fire"
	default:
		return "unknown"
	}
}

// Turret holds the rotation state. The angle only ever grows; wrap it with
// DisplayAngle when a bounded value is needed.
type Turret struct {
	Angle    float64
	Speed    float64 // speed applied by the last Rotate
	Mode     Mode
	PrevMode Mode

	speeds [3]float64

	target    geom.Point
	hasTarget bool
}

// NewTurret creates a turret in Searching mode at angle 0.
func NewTurret(searching, alert, firing float64) *Turret {
	return &Turret{
		Mode:     ModeSearching,
		PrevMode: ModeSearching,
		speeds:   [3]float64{searching, alert, firing},
	}
}

// SpeedFor returns the angular speed of a mode in degrees per tick.
func (t *Turret) SpeedFor(m Mode) float64 {
	if m < ModeSearching || m > ModeFiring {
		return 0
	}
	return t.speeds[m]
}

// SetMode records this tick's mode and keeps the previous one for edges.
func (t *Turret) SetMode(m Mode) {
	t.PrevMode = t.Mode
	t.Mode = m
}

// Entered reports whether the last SetMode switched into m.
func (t *Turret) Entered(m Mode) bool {
	return t.Mode == m && t.PrevMode != m
}

// Exited reports whether the last SetMode switched away from m.
func (t *Turret) Exited(m Mode) bool {
	return t.PrevMode == m && t.Mode != m
}

// Changed reports whether the last SetMode changed the mode at all.
func (t *Turret) Changed() bool {
	return t.Mode != t.PrevMode
}

// Rotate advances the angle by the current mode's speed.
func (t *Turret) Rotate() {
	t.Speed = t.SpeedFor(t.Mode)
	t.Angle += t.Speed
}

// DisplayAngle returns the angle wrapped to [0, 360).
func (t *Turret) DisplayAngle() float64 {
	return utils.NormalizeDegrees(t.Angle)
}

// Latch stores the firing target unless one is already held.
func (t *Turret) Latch(p geom.Point) bool {
	if t.hasTarget {
		return false
	}
	t.target = p
	t.hasTarget = true
	return true
}

// Release drops the latched target.
func (t *Turret) Release() {
	t.target = geom.Point{}
	t.hasTarget = false
}

// Target returns the latched target position.
func (t *Turret) Target() (geom.Point, bool) {
	return t.target, t.hasTarget
}
