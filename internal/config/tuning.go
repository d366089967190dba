// internal/config/tuning.go
package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// TurretTuning holds the rotation state machine and frame offsets.
type TurretTuning struct {
	SearchingSpeed    float64 `json:"searching_speed"` // degrees per tick
	AlertSpeed        float64 `json:"alert_speed"`
	FiringSpeed       float64 `json:"firing_speed"`
	LaserTolerance    float64 `json:"laser_tolerance"`
	CannonTolerance   float64 `json:"cannon_tolerance"`
	LaserSideOffset   float64 `json:"laser_side_offset"`
	LaserStartOffset  float64 `json:"laser_start_offset"`
	SteamSideOffset   float64 `json:"steam_side_offset"`
	SteamOriginOffset float64 `json:"steam_origin_offset"`
	SteamLength       float64 `json:"steam_length"`
}

// MobTuning holds the spawn rules.
type MobTuning struct {
	MaxLiving     int     `json:"max_living"`
	BaseProximity float64 `json:"base_proximity"` // total growth of the base rect
	MobProximity  float64 `json:"mob_proximity"`  // total growth of each mob rect
}

// FiringTuning holds the steam, projectile and explosion steps.
type FiringTuning struct {
	SteamStep         float64 `json:"steam_step"` // frames per tick
	ProjectileSpeed   float64 `json:"projectile_speed"`
	HitRadius         float64 `json:"hit_radius"`
	ColorJump         int     `json:"color_jump"`
	ProjectileMinSize int     `json:"projectile_min_size"`
	ProjectileMaxSize int     `json:"projectile_max_size"`
	ExplosionStep     float64 `json:"explosion_step"`
	DebrisMaxRotation int     `json:"debris_max_rotation"`
}

// TimerTuning describes one random weather gate.
type TimerTuning struct {
	Chance      float64 `json:"chance"` // probability per second of leaving Idle
	MinDuration float64 `json:"min_duration"`
	MaxDuration float64 `json:"max_duration"`
	MinCooldown float64 `json:"min_cooldown"`
	MaxCooldown float64 `json:"max_cooldown"`
}

// WeatherTuning holds rain and the lightning and wind gates.
type WeatherTuning struct {
	RainIntensity int         `json:"rain_intensity"`
	RainMinSpeed  float64     `json:"rain_min_speed"` // pixels per tick
	RainMaxSpeed  float64     `json:"rain_max_speed"`
	RainMinLength float64     `json:"rain_min_length"`
	RainMaxLength float64     `json:"rain_max_length"`
	GustSlant     float64     `json:"gust_slant"` // horizontal pixels per tick while a gust blows
	Lightning     TimerTuning `json:"lightning"`
	StrongWind    TimerTuning `json:"strong_wind"`
}

// AudioTuning holds per-cue volumes.
type AudioTuning struct {
	Volumes       map[string]float64 `json:"volumes"`
	MusicVolume   float64            `json:"music_volume"`
	WindFadeoutMs int                `json:"wind_fadeout_ms"`
}

// Tuning is the full set of gameplay parameters. Any field missing from a
// tuning file keeps its default.
type Tuning struct {
	Turret  TurretTuning  `json:"turret"`
	Mobs    MobTuning     `json:"mobs"`
	Firing  FiringTuning  `json:"firing"`
	Weather WeatherTuning `json:"weather"`
	Audio   AudioTuning   `json:"audio"`
}

// DefaultTuning returns the built-in values.
func DefaultTuning() Tuning {
	return Tuning{
		Turret: TurretTuning{
			SearchingSpeed:    0.6,
			AlertSpeed:        0.1,
			FiringSpeed:       0,
			LaserTolerance:    0.2,
			CannonTolerance:   0.2,
			LaserSideOffset:   -48,
			LaserStartOffset:  20,
			SteamSideOffset:   10,
			SteamOriginOffset: 40,
			SteamLength:       250,
		},
		Mobs: MobTuning{
			MaxLiving:     10,
			BaseProximity: 100,
			MobProximity:  50,
		},
		Firing: FiringTuning{
			SteamStep:         0.16,
			ProjectileSpeed:   3,
			HitRadius:         5,
			ColorJump:         20,
			ProjectileMinSize: 2,
			ProjectileMaxSize: 9,
			ExplosionStep:     0.25,
			DebrisMaxRotation: 270,
		},
		Weather: WeatherTuning{
			RainIntensity: 120,
			RainMinSpeed:  6,
			RainMaxSpeed:  12,
			RainMinLength: 2,
			RainMaxLength: 10,
			GustSlant:     4,
			Lightning: TimerTuning{
				Chance:      0.08,
				MinDuration: 0.15,
				MaxDuration: 0.45,
				MinCooldown: 4,
				MaxCooldown: 12,
			},
			StrongWind: TimerTuning{
				Chance:      0.05,
				MinDuration: 4,
				MaxDuration: 9,
				MinCooldown: 10,
				MaxCooldown: 25,
			},
		},
		Audio: AudioTuning{
			Volumes: map[string]float64{
				"sentinel":    0.44,
				"alert":       0.33,
				"deploy":      0.15,
				"rain":        0.55,
				"wind":        0.80,
				"strong_wind": 0.85,
			},
			MusicVolume:   0.66,
			WindFadeoutMs: 2000,
		},
	}
}

// LoadTuning reads a JSON tuning file over the defaults.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()
	if path == "" {
		return t, nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("failed to read tuning file: %w", err)
	}
	if err := json.Unmarshal(file, &t); err != nil {
		return t, fmt.Errorf("failed to unmarshal tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return t, fmt.Errorf("invalid tuning %s: %w", path, err)
	}

	log.Printf("Loaded tuning from %s", path)
	return t, nil
}

// Validate checks the invariants the systems rely on.
func (t Tuning) Validate() error {
	tt := t.Turret
	if tt.SearchingSpeed <= 0 || tt.AlertSpeed <= 0 {
		return fmt.Errorf("searching and alert speeds must be positive")
	}
	if tt.AlertSpeed >= tt.SearchingSpeed {
		return fmt.Errorf("alert speed %.2f must be below searching speed %.2f", tt.AlertSpeed, tt.SearchingSpeed)
	}
	if tt.FiringSpeed != 0 {
		return fmt.Errorf("firing speed must be 0, got %.2f", tt.FiringSpeed)
	}
	if tt.LaserTolerance < 0 || tt.CannonTolerance < 0 {
		return fmt.Errorf("detection tolerances must not be negative")
	}
	if t.Mobs.MaxLiving < 0 {
		return fmt.Errorf("max_living must not be negative")
	}
	if t.Mobs.BaseProximity < 0 || t.Mobs.MobProximity < 0 {
		return fmt.Errorf("proximity margins must not be negative")
	}
	f := t.Firing
	if f.SteamStep <= 0 || f.ExplosionStep <= 0 || f.ProjectileSpeed <= 0 {
		return fmt.Errorf("animation steps and projectile speed must be positive")
	}
	if f.ProjectileMinSize <= 0 || f.ProjectileMaxSize < f.ProjectileMinSize {
		return fmt.Errorf("bad projectile size range %d..%d", f.ProjectileMinSize, f.ProjectileMaxSize)
	}
	if f.DebrisMaxRotation < 1 {
		return fmt.Errorf("debris_max_rotation must be at least 1")
	}
	for name, gate := range map[string]TimerTuning{"lightning": t.Weather.Lightning, "strong_wind": t.Weather.StrongWind} {
		if gate.Chance < 0 || gate.MinDuration <= 0 || gate.MaxDuration < gate.MinDuration || gate.MaxCooldown < gate.MinCooldown {
			return fmt.Errorf("bad %s timer settings", name)
		}
	}
	if t.Weather.RainMaxSpeed < t.Weather.RainMinSpeed || t.Weather.RainMaxLength < t.Weather.RainMinLength {
		return fmt.Errorf("bad rain ranges")
	}
	return nil
}

// Volume returns the configured volume for a cue, 1 when unset.
func (a AudioTuning) Volume(name string) float64 {
	if v, ok := a.Volumes[name]; ok {
		return v
	}
	return 1
}
