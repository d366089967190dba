// internal/system/sound.go
package system

import (
	"time"

	"go-turret-sentinel/internal/audio"
	"go-turret-sentinel/internal/component"
	"go-turret-sentinel/internal/config"
	"go-turret-sentinel/internal/entity"
	"go-turret-sentinel/internal/event"
)

// SoundSystem maps game events to one-shot cues and keeps the looping
// cues in line with the turret mode and the weather.
type SoundSystem struct {
	world   *entity.World
	player  audio.Player
	fadeout time.Duration
	music   bool
}

func NewSoundSystem(world *entity.World, eventDispatcher *event.Dispatcher, player audio.Player, tuning config.AudioTuning) *SoundSystem {
	ss := &SoundSystem{
		world:   world,
		player:  player,
		fadeout: time.Duration(tuning.WindFadeoutMs) * time.Millisecond,
	}
	eventDispatcher.SubscribeAll(ss,
		event.ModeEntered,
		event.SteamReleased,
		event.ProjectileFired,
		event.MobDestroyed,
		event.MobSpawned,
		event.LightningStarted,
		event.StrongWindStarted,
		event.StrongWindEnded,
		event.RainToggled,
	)
	return ss
}

func (s *SoundSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.ModeEntered:
		if change, ok := e.Data.(event.ModeChange); ok && change.To == component.ModeFiring {
			s.player.Play(audio.Deploy)
		}
	case event.SteamReleased:
		s.player.Play(audio.Steam)
	case event.ProjectileFired:
		s.player.Play(audio.Fire)
	case event.MobDestroyed:
		s.player.Play(audio.Destroy)
	case event.MobSpawned:
		if !s.player.IsPlaying(audio.Spawn) {
			s.player.Play(audio.Spawn)
		}
	case event.LightningStarted:
		s.player.Play(audio.Thunder)
	case event.StrongWindStarted:
		s.player.Play(audio.StrongWind)
	case event.StrongWindEnded:
		s.player.Fadeout(audio.StrongWind, s.fadeout)
	case event.RainToggled:
		if on, ok := e.Data.(bool); ok && !on {
			s.player.Fadeout(audio.Rain, s.fadeout)
			s.player.Fadeout(audio.Wind, s.fadeout)
		}
	}
}

// Update keeps the mode loop and the rain loops playing.
func (s *SoundSystem) Update() {
	switch s.world.Turret.Mode {
	case component.ModeSearching:
		s.player.Stop(audio.Alert)
		s.ensure(audio.Sentinel)
	case component.ModeAlert:
		s.player.Stop(audio.Sentinel)
		s.ensure(audio.Alert)
	case component.ModeFiring:
		s.player.Stop(audio.Sentinel)
		s.player.Stop(audio.Alert)
	}

	if s.world.Weather.Raining {
		s.ensure(audio.Rain)
		s.ensure(audio.Wind)
	}
}

func (s *SoundSystem) ensure(c audio.Cue) {
	if !s.player.IsPlaying(c) {
		s.player.Play(c)
	}
}

// SetMusic starts or pauses the background music.
func (s *SoundSystem) SetMusic(on bool) {
	s.music = on
	if on {
		s.player.Play(audio.Atmosphere)
	} else {
		s.player.Stop(audio.Atmosphere)
	}
}

func (s *SoundSystem) ToggleMusic() {
	s.SetMusic(!s.music)
}

func (s *SoundSystem) MusicOn() bool {
	return s.music
}

// Silence stops every channel, for pausing. Update restores the loops.
func (s *SoundSystem) Silence() {
	for _, c := range audio.Cues {
		s.player.Stop(c)
	}
}

// Resume restarts the music if it was on before Silence.
func (s *SoundSystem) Resume() {
	if s.music {
		s.player.Play(audio.Atmosphere)
	}
}

// Busy reports busy and total channels for the debug overlay.
func (s *SoundSystem) Busy() (int, int) {
	return s.player.Busy()
}
