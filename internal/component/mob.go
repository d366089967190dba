package component

import "go-turret-sentinel/pkg/geom"

// Mob is a stationary target placed by the player.
type Mob struct {
	ID       int
	Variant  int        // index into the mob sprite set
	Position geom.Point // never changes after spawn, used as the lookup key
	Bounds   geom.Rect
	Distance float64 // distance to the muzzle at spawn time

	Destroyed      bool
	DebrisRotation float64 // degrees, only meaningful once destroyed
}
