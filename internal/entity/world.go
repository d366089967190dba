// internal/entity/world.go
package entity

import (
	"go-turret-sentinel/internal/component"
	"go-turret-sentinel/internal/config"
	"go-turret-sentinel/pkg/geom"
)

// World owns every piece of simulation state. Systems receive it by
// reference; nothing lives in package globals.
type World struct {
	GameTime float64 // seconds, advanced by 1/TPS per tick
	Tick     uint64

	Turret     *component.Turret
	TurretRect geom.Rect // unrotated, centred on the pivot
	BaseRect   geom.Rect
	FrameSpec  geom.FrameSpec

	Mobs    *MobRegistry
	Firing  *component.FiringSequence
	Weather *component.Weather

	Debug bool
}

func NewWorld(t config.Tuning) *World {
	pivot := geom.Pt(config.ScreenWidth/2, config.ScreenHeight/2)
	base := geom.RectAt(pivot, config.BaseSize, config.BaseSize)

	return &World{
		Turret:     component.NewTurret(t.Turret.SearchingSpeed, t.Turret.AlertSpeed, t.Turret.FiringSpeed),
		TurretRect: geom.RectAt(pivot, config.TurretWidth, config.TurretHeight),
		BaseRect:   base,
		FrameSpec: geom.FrameSpec{
			RayLength:         config.ScreenWidth,
			LaserSideOffset:   t.Turret.LaserSideOffset,
			LaserStartOffset:  t.Turret.LaserStartOffset,
			SteamSideOffset:   t.Turret.SteamSideOffset,
			SteamOriginOffset: t.Turret.SteamOriginOffset,
			SteamLength:       t.Turret.SteamLength,
		},
		Mobs: NewMobRegistry(t.Mobs.MaxLiving, base, t.Mobs.BaseProximity, t.Mobs.MobProximity,
			config.MobSize, config.MobSize),
		Firing: component.NewFiringSequence(config.SteamFrames, t.Firing.SteamStep,
			config.ExplosionFrames, t.Firing.ExplosionStep),
		Weather: &component.Weather{},
	}
}

// Frame computes the reference frame for the current angle.
func (w *World) Frame() geom.Frame {
	return geom.NewFrame(w.TurretRect, w.Turret.Angle, w.FrameSpec)
}

// Pivot is the turret's rotation centre.
func (w *World) Pivot() geom.Point {
	return w.TurretRect.Center()
}
