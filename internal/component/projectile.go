// internal/component/projectile.go
package component

import "go-turret-sentinel/pkg/geom"

// Projectile is the shell flying from the muzzle to the latched target.
type Projectile struct {
	Position  geom.Point
	Target    geom.Point
	Direction geom.Point // unit vector, fixed at launch
	Speed     float64    // pixels per tick
	Green     int        // green channel of the flicker colour
	Radius    float64    // redrawn every tick
}
