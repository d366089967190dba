// internal/component/weather.go
package component

import "go-turret-sentinel/pkg/geom"

// TimerPhase is the state of a random weather gate.
type TimerPhase int

const (
	TimerIdle TimerPhase = iota
	TimerActive
	TimerCooldown
)

// WeatherTimer gates an effect such as lightning or a strong gust.
// Remaining counts down in seconds while Active or Cooldown.
type WeatherTimer struct {
	Phase     TimerPhase
	Remaining float64
}

// Active reports whether the effect is currently shown.
func (t WeatherTimer) Active() bool {
	return t.Phase == TimerActive
}

// Raindrop is one falling streak.
type Raindrop struct {
	X, Y   float64
	Speed  float64
	Length float64
}

// Weather is the background rain, lightning and wind state.
type Weather struct {
	Raining    bool
	Drops      []Raindrop
	Lightning  WeatherTimer
	StrongWind WeatherTimer
	Bolt       []geom.Point // polyline of the current lightning bolt
}
