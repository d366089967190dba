package main

import (
	"flag"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"go-turret-sentinel/internal/app"
	"go-turret-sentinel/internal/audio"
	"go-turret-sentinel/internal/config"
	"go-turret-sentinel/internal/entity"
	"go-turret-sentinel/pkg/geom"
)

func vec(p geom.Point) rl.Vector2 {
	return rl.NewVector2(float32(p.X), float32(p.Y))
}

func rect(r geom.Rect) rl.Rectangle {
	return rl.NewRectangle(float32(r.X.Lo), float32(r.Y.Lo), float32(r.X.Length()), float32(r.Y.Length()))
}

func main() {
	seed := flag.Int64("seed", 0, "random seed, 0 uses the clock")
	flag.Parse()

	backgroundColor := rl.NewColor(10, 10, 20, 255)

	rl.InitWindow(config.ScreenWidth, config.ScreenHeight, "Frame Viewer | LMB - spawn, RMB - remove oldest, Space - pause")
	rl.SetTargetFPS(config.TPS)

	game := app.NewGame(config.DefaultTuning(), audio.NullPlayer{}, app.Options{Seed: *seed})
	game.World.Mobs.LogRejections = true
	lastResult := entity.SpawnOK

	for !rl.WindowShouldClose() {
		// --- Input ---
		if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
			m := rl.GetMousePosition()
			lastResult = game.HandleLeftClick(geom.Pt(float64(m.X), float64(m.Y)))
		}
		if rl.IsMouseButtonPressed(rl.MouseButtonRight) {
			game.HandleRightClick()
		}
		if rl.IsKeyPressed(rl.KeySpace) {
			game.SetPaused(!game.IsPaused())
		}

		game.Update()

		// --- Drawing ---
		w := game.World
		frame := w.Frame()

		rl.BeginDrawing()
		rl.ClearBackground(backgroundColor)

		rl.DrawRectangleLinesEx(rect(w.BaseRect), 1, rl.Green)
		rl.DrawRectangleLinesEx(rect(w.Mobs.BaseZone()), 1, rl.Orange)

		for _, m := range w.Mobs.All() {
			clr := rl.SkyBlue
			if m.Destroyed {
				clr = rl.Gray
			}
			rl.DrawRectangleLinesEx(rect(m.Bounds), 1, clr)
			rl.DrawCircleV(vec(m.Position), 2, clr)
		}

		corners := frame.Corners()
		for i := range corners {
			rl.DrawLineEx(vec(corners[i]), vec(corners[(i+1)%len(corners)]), 1, rl.LightGray)
		}

		laser, cannon := frame.LaserSegment(), frame.CannonSegment()
		rl.DrawLineEx(vec(laser.A), vec(laser.B), config.LaserThickness, rl.Red)
		rl.DrawLineEx(vec(cannon.A), vec(cannon.B), config.TargetThickness, rl.White)
		rl.DrawLineEx(vec(frame.SteamOrigin), vec(frame.SteamEnd), 1, rl.Purple)

		for _, a := range frame.Anchors() {
			clr := rl.Red
			if a.Vertex {
				clr = rl.White
			}
			rl.DrawCircleV(vec(a.Point), config.AnchorRadius, clr)
		}

		drawStatus(game, lastResult)
		rl.DrawFPS(10, config.ScreenHeight-30)

		rl.EndDrawing()
	}

	rl.CloseWindow()
}

func drawStatus(game *app.Game, lastResult entity.SpawnResult) {
	w := game.World
	lines := []string{
		fmt.Sprintf("angle %.1f  mode %s  speed %g", w.Turret.DisplayAngle(), w.Turret.Mode, w.Turret.Speed),
		fmt.Sprintf("mobs %d/%d  destroyed %d", w.Mobs.Len(), w.Mobs.Capacity(), w.Firing.Destroyed),
		fmt.Sprintf("firing %s  last spawn %s", w.Firing.Phase, lastResult),
	}
	if game.IsPaused() {
		lines = append(lines, "PAUSED")
	}
	for i, l := range lines {
		clr := rl.White
		if i == 2 && lastResult != entity.SpawnOK {
			clr = rl.Orange
		}
		rl.DrawText(l, 10, int32(10+i*22), 20, clr)
	}
}
