// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-turret-sentinel/internal/component"
	"go-turret-sentinel/internal/config"
	"go-turret-sentinel/internal/event"
)

// ModeIndicator is a coloured dot showing the turret mode. It pulses
// briefly whenever the mode changes.
type ModeIndicator struct {
	X, Y           float32
	Radius         float32
	LastChangeTime time.Time
	mode           component.Mode
}

func NewModeIndicator(x, y, radius float32) *ModeIndicator {
	return &ModeIndicator{X: x, Y: y, Radius: radius}
}

// Attach starts following mode changes on dispatcher.
func (i *ModeIndicator) Attach(dispatcher *event.Dispatcher) {
	dispatcher.Subscribe(event.ModeEntered, i)
}

// Detach stops following mode changes.
func (i *ModeIndicator) Detach(dispatcher *event.Dispatcher) {
	dispatcher.Unsubscribe(event.ModeEntered, i)
}

// Sync sets the mode without a pulse.
func (i *ModeIndicator) Sync(m component.Mode) {
	i.mode = m
}

// Mode is the last mode seen.
func (i *ModeIndicator) Mode() component.Mode {
	return i.mode
}

func (i *ModeIndicator) OnEvent(e event.Event) {
	if change, ok := e.Data.(event.ModeChange); ok {
		i.mode = change.To
		i.LastChangeTime = time.Now()
	}
}

func (i *ModeIndicator) Draw(screen *ebiten.Image) {
	elapsed := time.Since(i.LastChangeTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	r := i.Radius * float32(scale)

	vector.DrawFilledCircle(screen, i.X, i.Y, r, ModeColor(i.mode), true)
	vector.StrokeCircle(screen, i.X, i.Y, r, 1, config.IndicatorStroke, true)
}

// ModeColor is the indicator colour of a mode.
func ModeColor(m component.Mode) color.RGBA {
	switch m {
	case component.ModeAlert:
		return config.AlertColor
	case component.ModeFiring:
		return config.FiringColor
	default:
		return config.SearchingColor
	}
}
