// internal/event/types.go
package event

import (
	"go-turret-sentinel/internal/component"
	"go-turret-sentinel/pkg/geom"
)

const (
	ModeEntered       EventType = "ModeEntered" // ModeChange
	ModeExited        EventType = "ModeExited"  // ModeChange
	TargetLatched     EventType = "TargetLatched"
	TargetReleased    EventType = "TargetReleased"
	MobSpawned        EventType = "MobSpawned" // MobData
	MobRemoved        EventType = "MobRemoved" // MobData
	SteamReleased     EventType = "SteamReleased"
	ProjectileFired   EventType = "ProjectileFired"
	MobDestroyed      EventType = "MobDestroyed"     // MobData, switched to debris
	ExplosionFinished EventType = "ExplosionFinished" // PointData
	LightningStarted  EventType = "LightningStarted"
	StrongWindStarted EventType = "StrongWindStarted"
	StrongWindEnded   EventType = "StrongWindEnded"
	RainToggled       EventType = "RainToggled" // bool
)

// ModeChange is the payload of mode edge events.
type ModeChange struct {
	From, To component.Mode
}

// MobData carries a copy of the mob involved.
type MobData struct {
	Mob component.Mob
}

// PointData carries a position, the target for latch and firing events.
type PointData struct {
	Position geom.Point
}
