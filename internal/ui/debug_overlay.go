// internal/ui/debug_overlay.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"go-turret-sentinel/internal/config"
	"go-turret-sentinel/internal/entity"
	"go-turret-sentinel/pkg/geom"
)

// DebugOverlay prints the state lines and draws the reference geometry:
// the base rect and its spawn exclusion zone, every anchor point and the
// firing line.
type DebugOverlay struct {
	world *entity.World
	face  font.Face
}

func NewDebugOverlay(world *entity.World) *DebugOverlay {
	return &DebugOverlay{world: world, face: basicfont.Face7x13}
}

func (o *DebugOverlay) Draw(screen *ebiten.Image, lines []string) {
	y := config.DebugTextY
	for _, l := range lines {
		// text.Draw places the baseline at y.
		text.Draw(screen, l, o.face, config.DebugTextX, y+o.face.Metrics().Ascent.Ceil(), config.TextLightColor)
		y += config.DebugLineHeight
	}

	strokeRect(screen, o.world.BaseRect, 2, config.BaseRectColor)
	strokeRect(screen, o.world.Mobs.BaseZone(), 2, config.BaseZoneColor)

	frame := o.world.Frame()
	for _, a := range frame.Anchors() {
		clr := config.AnchorColor
		if a.Vertex {
			clr = config.VertexColor
		}
		vector.DrawFilledCircle(screen, float32(a.Point.X), float32(a.Point.Y), config.AnchorRadius, clr, true)
	}
	vector.StrokeLine(screen, float32(frame.Cannon.X), float32(frame.Cannon.Y),
		float32(frame.Target.X), float32(frame.Target.Y), config.TargetThickness, config.TargetLineColor, true)
}

func strokeRect(screen *ebiten.Image, r geom.Rect, width float32, clr color.Color) {
	vector.StrokeRect(screen, float32(r.X.Lo), float32(r.Y.Lo), float32(r.X.Length()), float32(r.Y.Length()), width, clr, false)
}
