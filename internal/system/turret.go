// internal/system/turret.go
package system

import (
	"log"

	"go-turret-sentinel/internal/component"
	"go-turret-sentinel/internal/config"
	"go-turret-sentinel/internal/entity"
	"go-turret-sentinel/internal/event"
	"go-turret-sentinel/pkg/geom"
)

// ResolveMode picks the mode for this tick. There is no hysteresis: a
// cannon hit wins over a laser hit, and no hit at all means searching.
func ResolveMode(laserHit, cannonHit bool) component.Mode {
	switch {
	case cannonHit:
		return component.ModeFiring
	case laserHit:
		return component.ModeAlert
	default:
		return component.ModeSearching
	}
}

// TurretSystem runs detection on the current frame, switches the mode,
// latches the firing target and rotates the turret.
type TurretSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	laserTolerance  float64
	cannonTolerance float64

	// Detection results of the last Update, for the debug overlay.
	LaserHit  bool
	CannonHit bool
}

func NewTurretSystem(world *entity.World, eventDispatcher *event.Dispatcher, tuning config.TurretTuning) *TurretSystem {
	return &TurretSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
		laserTolerance:  tuning.LaserTolerance,
		cannonTolerance: tuning.CannonTolerance,
	}
}

// Update performs one tick: frame, detection, mode, latch, rotation.
func (s *TurretSystem) Update() {
	t := s.world.Turret
	frame := s.world.Frame()
	positions := s.world.Mobs.Positions()

	_, s.LaserHit = geom.Detect(frame.LaserSegment(), positions, s.laserTolerance)
	target, cannonHit := geom.Detect(frame.CannonSegment(), positions, s.cannonTolerance)
	s.CannonHit = cannonHit

	t.SetMode(ResolveMode(s.LaserHit, cannonHit))

	if t.Exited(component.ModeFiring) {
		s.release()
	}
	if t.Changed() {
		change := event.ModeChange{From: t.PrevMode, To: t.Mode}
		if s.world.Debug {
			log.Printf("TurretSystem: %s -> %s at %.1f°", change.From, change.To, t.DisplayAngle())
		}
		s.eventDispatcher.Dispatch(event.Event{Type: event.ModeExited, Data: change})
		s.eventDispatcher.Dispatch(event.Event{Type: event.ModeEntered, Data: change})
	}
	if cannonHit && t.Latch(target) {
		s.eventDispatcher.Dispatch(event.Event{Type: event.TargetLatched, Data: event.PointData{Position: target}})
	}

	t.Rotate()
}

func (s *TurretSystem) release() {
	target, held := s.world.Turret.Target()
	if !held {
		return
	}
	s.world.Turret.Release()
	s.eventDispatcher.Dispatch(event.Event{Type: event.TargetReleased, Data: event.PointData{Position: target}})
}
