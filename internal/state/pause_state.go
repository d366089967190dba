// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"go-turret-sentinel/internal/app"
	"go-turret-sentinel/internal/config"
)

var _ State = (*PauseState)(nil)

// PauseState freezes the game and draws it dimmed behind a banner.
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
	game          *app.Game
	face          font.Face
}

func NewPauseState(sm *StateMachine, prevState State, game *app.Game) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		game:          game,
		face:          basicfont.Face7x13,
	}
}

func (s *PauseState) Enter() {
	s.game.SetPaused(true)
}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.PauseOverlay, false)

	pauseText := "PAUSED"
	width := font.MeasureString(s.face, pauseText).Ceil()
	text.Draw(screen, pauseText, s.face, (config.ScreenWidth-width)/2, config.ScreenHeight/2, config.TextLightColor)
}

func (s *PauseState) Exit() {
	s.game.SetPaused(false)
}
