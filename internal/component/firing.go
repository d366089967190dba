// internal/component/firing.go
package component

import "go-turret-sentinel/pkg/geom"

// FiringPhase is the step of the destroy sequence.
type FiringPhase int

const (
	FiringIdle FiringPhase = iota
	FiringSteam
	FiringTravel
	FiringExplode
)

func (p FiringPhase) String() string {
	switch p {
	case FiringIdle:
		return "idle"
	case FiringSteam:
		return "steam"
	case FiringTravel:
		return "travel"
	case FiringExplode:
		return "explode"
	default:
		return "unknown"
	}
}

// FiringSequence drives one target from latch to removal:
// steam jet, projectile, debris with explosion, then removal.
type FiringSequence struct {
	Phase      FiringPhase
	Target     geom.Point
	Steam      Animation
	Projectile Projectile
	Explosion  Explosion
	Destroyed  int // targets removed since start
}

// NewFiringSequence creates an idle sequence with its animation steps.
func NewFiringSequence(steamFrames int, steamStep float64, blastFrames int, blastStep float64) *FiringSequence {
	return &FiringSequence{
		Steam:     NewAnimation(steamFrames, steamStep),
		Explosion: Explosion{Anim: NewAnimation(blastFrames, blastStep)},
	}
}

// Active reports whether a sequence is in progress.
func (f *FiringSequence) Active() bool {
	return f.Phase != FiringIdle
}

// Reset stops every animation and drops the target.
func (f *FiringSequence) Reset() {
	f.Phase = FiringIdle
	f.Target = geom.Point{}
	f.Steam.Playing = false
	f.Steam.Frame = 0
	f.Explosion.Anim.Playing = false
	f.Explosion.Anim.Frame = 0
	f.Projectile = Projectile{}
}
