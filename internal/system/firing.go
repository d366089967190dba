// internal/system/firing.go
package system

import (
	"log"

	"go-turret-sentinel/internal/component"
	"go-turret-sentinel/internal/config"
	"go-turret-sentinel/internal/entity"
	"go-turret-sentinel/internal/event"
	"go-turret-sentinel/internal/utils"
	"go-turret-sentinel/pkg/geom"
)

// FiringSystem plays the destroy sequence for the latched target:
// steam jet, projectile, debris under an explosion, removal.
type FiringSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	prng            *utils.PRNGService
	tuning          config.FiringTuning
}

func NewFiringSystem(world *entity.World, eventDispatcher *event.Dispatcher, prng *utils.PRNGService, tuning config.FiringTuning) *FiringSystem {
	fs := &FiringSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
		prng:            prng,
		tuning:          tuning,
	}
	eventDispatcher.Subscribe(event.TargetLatched, fs)
	eventDispatcher.Subscribe(event.ModeExited, fs)
	return fs
}

func (s *FiringSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.TargetLatched:
		if data, ok := e.Data.(event.PointData); ok {
			s.start(data)
		}
	case event.ModeExited:
		if change, ok := e.Data.(event.ModeChange); ok && change.From == component.ModeFiring {
			s.abort("firing mode exited")
		}
	}
}

func (s *FiringSystem) start(data event.PointData) {
	f := s.world.Firing
	f.Reset()
	f.Target = data.Position
	f.Phase = component.FiringSteam
	f.Steam.Start()
	s.eventDispatcher.Dispatch(event.Event{Type: event.SteamReleased, Data: data})
}

// abort drops the sequence and frees the turret latch so another mob on
// the same firing line can be picked up on the next tick.
func (s *FiringSystem) abort(reason string) {
	f := s.world.Firing
	if !f.Active() {
		return
	}
	pos := f.Target
	if s.world.Debug {
		log.Printf("FiringSystem: sequence on (%.0f, %.0f) aborted: %s", pos.X, pos.Y, reason)
	}
	f.Reset()
	s.releaseTurret(pos)
}

// Update advances the sequence by one tick.
func (s *FiringSystem) Update() {
	f := s.world.Firing
	if !f.Active() {
		return
	}
	if !s.world.Mobs.Has(f.Target) {
		s.abort("target no longer registered")
		return
	}

	target := event.PointData{Position: f.Target}
	switch f.Phase {
	case component.FiringSteam:
		if f.Steam.Advance() {
			f.Projectile = launchProjectile(s.world.Frame().Cannon, f.Target, s.tuning)
			f.Phase = component.FiringTravel
			s.eventDispatcher.Dispatch(event.Event{Type: event.ProjectileFired, Data: target})
		}

	case component.FiringTravel:
		if stepProjectile(&f.Projectile, s.tuning, s.prng) {
			rotation := float64(s.prng.IntRange(1, s.tuning.DebrisMaxRotation))
			s.world.Mobs.MarkDestroyed(f.Target, rotation)
			f.Explosion.Position = f.Target
			f.Explosion.Anim.Start()
			f.Phase = component.FiringExplode
			if m := s.world.Mobs.Find(f.Target); m != nil {
				s.eventDispatcher.Dispatch(event.Event{Type: event.MobDestroyed, Data: event.MobData{Mob: *m}})
			}
		}

	case component.FiringExplode:
		if f.Explosion.Anim.Advance() {
			s.finish()
		}
	}
}

func (s *FiringSystem) finish() {
	f := s.world.Firing
	pos := f.Target
	m := s.world.Mobs.Find(pos)
	s.world.Mobs.Remove(pos)
	f.Destroyed++
	f.Reset()

	if m != nil {
		s.eventDispatcher.Dispatch(event.Event{Type: event.MobRemoved, Data: event.MobData{Mob: *m}})
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.ExplosionFinished, Data: event.PointData{Position: pos}})

	s.releaseTurret(pos)
}

func (s *FiringSystem) releaseTurret(pos geom.Point) {
	if held, ok := s.world.Turret.Target(); ok && held == pos {
		s.world.Turret.Release()
		s.eventDispatcher.Dispatch(event.Event{Type: event.TargetReleased, Data: event.PointData{Position: pos}})
	}
}
