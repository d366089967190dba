// internal/system/weather.go
package system

import (
	"go-turret-sentinel/internal/component"
	"go-turret-sentinel/internal/config"
	"go-turret-sentinel/internal/entity"
	"go-turret-sentinel/internal/event"
	"go-turret-sentinel/internal/utils"
	"go-turret-sentinel/pkg/geom"
)

const boltSegments = 9

// WeatherSystem moves the rain and runs the lightning and strong wind
// gates. Lightning and gusts only happen while it rains.
type WeatherSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	prng            *utils.PRNGService
	tuning          config.WeatherTuning
}

func NewWeatherSystem(world *entity.World, eventDispatcher *event.Dispatcher, prng *utils.PRNGService, tuning config.WeatherTuning) *WeatherSystem {
	return &WeatherSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
		prng:            prng,
		tuning:          tuning,
	}
}

// SetRain starts or stops the rain. Stopping it also ends any lightning
// or gust in progress.
func (s *WeatherSystem) SetRain(on bool) {
	w := s.world.Weather
	if w.Raining == on {
		return
	}
	w.Raining = on
	if on {
		w.Drops = w.Drops[:0]
		for i := 0; i < s.tuning.RainIntensity; i++ {
			w.Drops = append(w.Drops, s.newDrop(s.prng.Uniform(0, config.ScreenHeight)))
		}
	} else {
		if w.StrongWind.Active() {
			s.eventDispatcher.Dispatch(event.Event{Type: event.StrongWindEnded})
		}
		w.Drops = nil
		w.Bolt = nil
		w.Lightning = component.WeatherTimer{}
		w.StrongWind = component.WeatherTimer{}
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.RainToggled, Data: on})
}

// ToggleRain flips the rain on or off.
func (s *WeatherSystem) ToggleRain() {
	s.SetRain(!s.world.Weather.Raining)
}

func (s *WeatherSystem) Update(deltaTime float64) {
	w := s.world.Weather
	if !w.Raining {
		return
	}

	slant := 0.0
	if w.StrongWind.Active() {
		slant = s.tuning.GustSlant
	}
	for i := range w.Drops {
		d := &w.Drops[i]
		d.Y += d.Speed
		d.X += slant
		if d.Y > config.ScreenHeight || d.X > config.ScreenWidth {
			*d = s.newDrop(-d.Length)
		}
	}

	started, ended := stepTimer(&w.Lightning, s.tuning.Lightning, deltaTime, s.prng)
	if started {
		w.Bolt = s.newBolt()
		s.eventDispatcher.Dispatch(event.Event{Type: event.LightningStarted})
	}
	if ended {
		w.Bolt = nil
	}

	started, ended = stepTimer(&w.StrongWind, s.tuning.StrongWind, deltaTime, s.prng)
	if started {
		s.eventDispatcher.Dispatch(event.Event{Type: event.StrongWindStarted})
	}
	if ended {
		s.eventDispatcher.Dispatch(event.Event{Type: event.StrongWindEnded})
	}
}

func (s *WeatherSystem) newDrop(y float64) component.Raindrop {
	return component.Raindrop{
		X:      s.prng.Uniform(0, config.ScreenWidth),
		Y:      y,
		Speed:  s.prng.Uniform(s.tuning.RainMinSpeed, s.tuning.RainMaxSpeed),
		Length: s.prng.Uniform(s.tuning.RainMinLength, s.tuning.RainMaxLength),
	}
}

// newBolt draws a jagged polyline from the top edge down to a random depth.
func (s *WeatherSystem) newBolt() []geom.Point {
	x := s.prng.Uniform(config.ScreenWidth*0.1, config.ScreenWidth*0.9)
	depth := s.prng.Uniform(config.ScreenHeight*0.35, config.ScreenHeight*0.7)
	bolt := make([]geom.Point, 0, boltSegments+1)
	for i := 0; i <= boltSegments; i++ {
		y := depth * float64(i) / boltSegments
		bolt = append(bolt, geom.Pt(x, y))
		x += s.prng.Uniform(-35, 35)
	}
	return bolt
}

// stepTimer advances a weather gate by dt seconds. Idle leaves with
// probability chance*dt per tick; Active and Cooldown count down to a
// randomized length.
func stepTimer(t *component.WeatherTimer, gate config.TimerTuning, dt float64, prng *utils.PRNGService) (started, ended bool) {
	switch t.Phase {
	case component.TimerIdle:
		if prng.Chance(gate.Chance * dt) {
			t.Phase = component.TimerActive
			t.Remaining = prng.Uniform(gate.MinDuration, gate.MaxDuration)
			started = true
		}
	case component.TimerActive:
		t.Remaining -= dt
		if t.Remaining <= 0 {
			t.Phase = component.TimerCooldown
			t.Remaining = prng.Uniform(gate.MinCooldown, gate.MaxCooldown)
			ended = true
		}
	case component.TimerCooldown:
		t.Remaining -= dt
		if t.Remaining <= 0 {
			t.Phase = component.TimerIdle
			t.Remaining = 0
		}
	}
	return started, ended
}
