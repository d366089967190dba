// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 800
	TPS          = 60
	WindowTitle  = "Turret"

	// Sprite sizes in pixels after scaling.
	TurretWidth  = 132
	TurretHeight = 176
	BaseSize     = 96
	MobSize      = 56
	SteamWidth   = 96
	SteamHeight  = 64
	BlastSize    = 96

	MobVariants     = 3
	SteamFrames     = 6
	ExplosionFrames = 8

	LaserThickness  = 3.0
	TargetThickness = 2.0
	AnchorRadius    = 4.0

	IndicatorOffsetX = 30
	IndicatorRadius  = 10.0

	DebugTextX      = 20
	DebugTextY      = 20
	DebugLineHeight = 20
)

var (
	BackgroundColor = color.RGBA{25, 25, 25, 255}
	LaserColor      = color.RGBA{255, 0, 0, 255}
	TargetLineColor = color.RGBA{255, 255, 255, 255}
	VertexColor     = color.RGBA{255, 255, 255, 255}
	AnchorColor     = color.RGBA{255, 0, 0, 255}
	BaseRectColor   = color.RGBA{0, 255, 0, 255}
	BaseZoneColor   = color.RGBA{255, 165, 0, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	RaindropColor   = color.RGBA{220, 220, 200, 255}
	LightningColor  = color.RGBA{235, 235, 255, 255}
	PauseOverlay    = color.RGBA{0, 0, 0, 128}
	IndicatorStroke = color.RGBA{240, 240, 240, 255}
	SearchingColor  = color.RGBA{70, 130, 180, 255}
	AlertColor      = color.RGBA{255, 165, 0, 255}
	FiringColor     = color.RGBA{220, 60, 60, 255}
)
