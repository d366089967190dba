// internal/system/projectile.go
package system

import (
	"go-turret-sentinel/internal/component"
	"go-turret-sentinel/internal/config"
	"go-turret-sentinel/internal/utils"
	"go-turret-sentinel/pkg/geom"
)

const projectileStartGreen = 200

func launchProjectile(from, to geom.Point, tuning config.FiringTuning) component.Projectile {
	return component.Projectile{
		Position:  from,
		Target:    to,
		Direction: to.Sub(from).Normalize(),
		Speed:     tuning.ProjectileSpeed,
		Green:     projectileStartGreen,
		Radius:    float64(tuning.ProjectileMinSize),
	}
}

// stepProjectile moves p one tick toward its target and reports a hit.
// The colour flickers and the radius is redrawn on every step.
func stepProjectile(p *component.Projectile, tuning config.FiringTuning, prng *utils.PRNGService) bool {
	p.Green = (p.Green + tuning.ColorJump) % 255
	p.Radius = float64(prng.IntRange(tuning.ProjectileMinSize, tuning.ProjectileMaxSize))

	// Snap when the next step would reach or pass the target.
	if geom.Distance(p.Position, p.Target) <= p.Speed {
		p.Position = p.Target
		return true
	}
	p.Position = p.Position.Add(p.Direction.Mul(p.Speed))
	return geom.Distance(p.Position, p.Target) < tuning.HitRadius
}
