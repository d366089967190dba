// internal/render/render.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-turret-sentinel/internal/assets"
	"go-turret-sentinel/internal/component"
	"go-turret-sentinel/internal/config"
	"go-turret-sentinel/internal/entity"
	"go-turret-sentinel/pkg/geom"
)

// RenderSystem draws the world. It only reads state.
type RenderSystem struct {
	world   *entity.World
	sprites *assets.SpriteSet
}

func NewRenderSystem(world *entity.World, sprites *assets.SpriteSet) *RenderSystem {
	return &RenderSystem{world: world, sprites: sprites}
}

func (s *RenderSystem) Draw(screen *ebiten.Image) {
	w := s.world
	frame := w.Frame()

	screen.Fill(config.BackgroundColor)
	s.drawWeather(screen)

	drawCentered(screen, s.sprites.Base, w.Pivot(), 0)

	for _, m := range w.Mobs.All() {
		if m.Destroyed {
			drawCentered(screen, s.sprites.Debris, m.Position, m.DebrisRotation)
			continue
		}
		drawCentered(screen, s.sprites.Mobs[m.Variant%len(s.sprites.Mobs)], m.Position, 0)
	}

	line(screen, frame.LaserStart, frame.LaserEnd, config.LaserThickness, config.LaserColor)
	drawCentered(screen, s.sprites.Turret[w.Turret.Mode], w.Pivot(), w.Turret.Angle)

	s.drawFiring(screen, frame)
}

func (s *RenderSystem) drawFiring(screen *ebiten.Image, frame geom.Frame) {
	f := s.world.Firing

	if f.Steam.Playing {
		img := s.sprites.Steam[f.Steam.Index()]
		h := float64(img.Bounds().Dy())
		op := &ebiten.DrawImageOptions{}
		// The vent sits on the sprite's left edge, the jet points along +x.
		op.GeoM.Translate(0, -h/2)
		op.GeoM.Rotate(-geom.Radians(frame.Angle))
		op.GeoM.Translate(frame.SteamOrigin.X, frame.SteamOrigin.Y)
		screen.DrawImage(img, op)
	}

	if f.Phase == component.FiringTravel {
		p := f.Projectile
		clr := color.RGBA{255, uint8(p.Green), 0, 255}
		vector.DrawFilledCircle(screen, float32(p.Position.X), float32(p.Position.Y), float32(p.Radius), clr, true)
	}

	if f.Explosion.Anim.Playing {
		drawCentered(screen, s.sprites.Explosion[f.Explosion.Anim.Index()], f.Explosion.Position, 0)
	}
}

func (s *RenderSystem) drawWeather(screen *ebiten.Image) {
	wt := s.world.Weather
	if !wt.Raining {
		return
	}

	if wt.Lightning.Active() {
		lc := config.LightningColor
		flash := color.NRGBA{lc.R, lc.G, lc.B, 60}
		vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, flash, false)
		for i := 1; i < len(wt.Bolt); i++ {
			line(screen, wt.Bolt[i-1], wt.Bolt[i], 3, config.LightningColor)
		}
	}

	// Gusts lean the streaks.
	lean := 0.0
	if wt.StrongWind.Active() {
		lean = 0.5
	}
	for _, d := range wt.Drops {
		vector.StrokeLine(screen, float32(d.X), float32(d.Y), float32(d.X+lean*d.Length), float32(d.Y+d.Length), 1, config.RaindropColor, false)
	}
}

// drawCentered draws img centred on c and rotated counterclockwise by deg,
// matching geom.Rotate.
func drawCentered(screen, img *ebiten.Image, c geom.Point, deg float64) {
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	if deg != 0 {
		op.GeoM.Rotate(-geom.Radians(deg))
	}
	op.GeoM.Translate(c.X, c.Y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

func line(screen *ebiten.Image, a, b geom.Point, width float32, clr color.Color) {
	vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), width, clr, true)
}
