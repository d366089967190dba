// internal/system/mob.go
package system

import (
	"log"

	"go-turret-sentinel/internal/config"
	"go-turret-sentinel/internal/entity"
	"go-turret-sentinel/internal/event"
	"go-turret-sentinel/internal/utils"
	"go-turret-sentinel/pkg/geom"
)

// MobSystem turns player clicks into registry changes.
type MobSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	prng            *utils.PRNGService
}

func NewMobSystem(world *entity.World, eventDispatcher *event.Dispatcher, prng *utils.PRNGService) *MobSystem {
	return &MobSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
		prng:            prng,
	}
}

// Spawn tries to place a mob at pos. Rejections are silent.
func (s *MobSystem) Spawn(pos geom.Point) entity.SpawnResult {
	m, res := s.world.Mobs.Spawn(pos, s.world.Frame().Cannon)
	if res != entity.SpawnOK {
		return res
	}
	m.Variant = s.prng.Intn(config.MobVariants)
	if s.world.Debug {
		log.Printf("MobSystem: mob %d spawned at (%.0f, %.0f), %.0f px from the muzzle", m.ID, pos.X, pos.Y, m.Distance)
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.MobSpawned, Data: event.MobData{Mob: *m}})
	return res
}

// KillOldest removes the oldest mob. A firing sequence on it aborts on the
// next tick.
func (s *MobSystem) KillOldest() bool {
	m, ok := s.world.Mobs.RemoveOldest()
	if !ok {
		return false
	}
	if s.world.Debug {
		log.Printf("MobSystem: mob %d removed by the player", m.ID)
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.MobRemoved, Data: event.MobData{Mob: m}})
	return true
}
