// internal/entity/mobs.go
package entity

import (
	"log"

	"go-turret-sentinel/internal/component"
	"go-turret-sentinel/pkg/geom"
)

// SpawnResult tells why a spawn was accepted or refused.
type SpawnResult int

const (
	SpawnOK SpawnResult = iota
	SpawnRejectedCapacity
	SpawnRejectedNearBase
	SpawnRejectedNearMob
)

func (r SpawnResult) String() string {
	switch r {
	case SpawnOK:
		return "ok"
	case SpawnRejectedCapacity:
		return "capacity reached"
	case SpawnRejectedNearBase:
		return "too close to base"
	case SpawnRejectedNearMob:
		return "too close to another mob"
	default:
		return "unknown"
	}
}

// MobRegistry keeps the living mobs in spawn order. Mobs are looked up by
// their exact position, which never changes after spawn.
type MobRegistry struct {
	mobs          []*component.Mob
	nextID        int
	capacity      int
	baseZone      geom.Rect
	mobProximity  float64
	mobW, mobH    float64
	LogRejections bool
}

// NewMobRegistry creates an empty registry. base is the turret base rect;
// baseProximity and mobProximity are total growth, like a rect inflate.
func NewMobRegistry(capacity int, base geom.Rect, baseProximity, mobProximity, mobW, mobH float64) *MobRegistry {
	return &MobRegistry{
		mobs:         make([]*component.Mob, 0, capacity),
		nextID:       1,
		capacity:     capacity,
		baseZone:     geom.Inflate(base, baseProximity),
		mobProximity: mobProximity,
		mobW:         mobW,
		mobH:         mobH,
	}
}

// Spawn places a mob at pos if the capacity, base and mob proximity rules
// allow it. ref is the muzzle position used for the cached distance.
func (r *MobRegistry) Spawn(pos, ref geom.Point) (*component.Mob, SpawnResult) {
	result := r.check(pos)
	if result != SpawnOK {
		if r.LogRejections {
			log.Printf("MobRegistry: spawn at (%.0f, %.0f) rejected: %s", pos.X, pos.Y, result)
		}
		return nil, result
	}

	m := &component.Mob{
		ID:       r.nextID,
		Position: pos,
		Bounds:   geom.RectAt(pos, r.mobW, r.mobH),
		Distance: geom.Distance(ref, pos),
	}
	r.nextID++
	r.mobs = append(r.mobs, m)
	return m, SpawnOK
}

func (r *MobRegistry) check(pos geom.Point) SpawnResult {
	if len(r.mobs) >= r.capacity {
		return SpawnRejectedCapacity
	}
	if r.baseZone.ContainsPoint(pos) {
		return SpawnRejectedNearBase
	}
	for _, m := range r.mobs {
		if geom.Inflate(m.Bounds, r.mobProximity).ContainsPoint(pos) {
			return SpawnRejectedNearMob
		}
	}
	return SpawnOK
}

// Find returns the mob stored at pos.
func (r *MobRegistry) Find(pos geom.Point) *component.Mob {
	for _, m := range r.mobs {
		if m.Position == pos {
			return m
		}
	}
	return nil
}

// Has reports whether a mob is stored at pos.
func (r *MobRegistry) Has(pos geom.Point) bool {
	return r.Find(pos) != nil
}

// MarkDestroyed turns the mob at pos into debris. It stays registered, and
// detectable, until Remove.
func (r *MobRegistry) MarkDestroyed(pos geom.Point, rotation float64) bool {
	m := r.Find(pos)
	if m == nil {
		return false
	}
	m.Destroyed = true
	m.DebrisRotation = rotation
	return true
}

// Remove deletes the mob at pos.
func (r *MobRegistry) Remove(pos geom.Point) bool {
	for i, m := range r.mobs {
		if m.Position == pos {
			r.mobs = append(r.mobs[:i], r.mobs[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveOldest deletes the first mob in spawn order.
func (r *MobRegistry) RemoveOldest() (component.Mob, bool) {
	if len(r.mobs) == 0 {
		return component.Mob{}, false
	}
	m := *r.mobs[0]
	r.mobs = r.mobs[1:]
	return m, true
}

// Positions returns every mob position in spawn order.
func (r *MobRegistry) Positions() []geom.Point {
	out := make([]geom.Point, len(r.mobs))
	for i, m := range r.mobs {
		out[i] = m.Position
	}
	return out
}

// All returns the mobs in spawn order. The slice must not be modified.
func (r *MobRegistry) All() []*component.Mob {
	return r.mobs
}

func (r *MobRegistry) Len() int { return len(r.mobs) }

func (r *MobRegistry) Capacity() int { return r.capacity }

// BaseZone is the inflated base rect in which nothing may spawn.
func (r *MobRegistry) BaseZone() geom.Rect { return r.baseZone }
