// internal/state/game_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-turret-sentinel/internal/app"
	"go-turret-sentinel/internal/assets"
	"go-turret-sentinel/internal/config"
	"go-turret-sentinel/internal/render"
	"go-turret-sentinel/internal/ui"
	"go-turret-sentinel/pkg/geom"
)

var _ State = (*GameState)(nil)

// GameState runs the simulation and maps input to game actions.
type GameState struct {
	sm        *StateMachine
	game      *app.Game
	renderer  *render.RenderSystem
	overlay   *ui.DebugOverlay
	indicator *ui.ModeIndicator
}

func NewGameState(sm *StateMachine, game *app.Game, sprites *assets.SpriteSet) *GameState {
	return &GameState{
		sm:       sm,
		game:     game,
		renderer: render.NewRenderSystem(game.World, sprites),
		overlay:  ui.NewDebugOverlay(game.World),
		indicator: ui.NewModeIndicator(
			float32(config.ScreenWidth-config.IndicatorOffsetX),
			float32(config.IndicatorOffsetX),
			float32(config.IndicatorRadius),
		),
	}
}

// Enter attaches the indicator. It is detached while another state is
// active, and catches up with the turret on return.
func (g *GameState) Enter() {
	g.indicator.Attach(g.game.EventDispatcher)
	g.indicator.Sync(g.game.World.Turret.Mode)
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.game.HandleLeftClick(geom.Pt(float64(x), float64(y)))
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.game.HandleRightClick()
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyD):
		g.game.ToggleDebug()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.game.ToggleRain()
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		g.game.ToggleMusic()
	case inpututil.IsKeyJustPressed(ebiten.KeyP), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.sm.SetState(NewPauseState(g.sm, g, g.game))
		return
	}

	g.game.Update()
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen)
	if g.game.World.Debug {
		g.overlay.Draw(screen, g.game.DebugLines(ebiten.ActualFPS(), g.game.Elapsed()))
	}
	g.indicator.Draw(screen)
}

func (g *GameState) Exit() {
	g.indicator.Detach(g.game.EventDispatcher)
}
