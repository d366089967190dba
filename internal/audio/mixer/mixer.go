// internal/audio/mixer/mixer.go
package mixer

import (
	"bytes"
	"fmt"
	"log"
	"time"

	eaudio "github.com/hajimehoshi/ebiten/v2/audio"

	"go-turret-sentinel/internal/audio"
	"go-turret-sentinel/internal/config"
	"go-turret-sentinel/internal/synth"
)

type channel struct {
	player *eaudio.Player
	volume float64
	fade   fade
}

// Mixer plays synthesized cues through ebiten's audio context, one player
// per cue.
type Mixer struct {
	channels map[audio.Cue]*channel
}

// New renders every cue and creates its player. It must be called once,
// since ebiten allows a single audio context.
func New(tuning config.AudioTuning) (*Mixer, error) {
	ctx := eaudio.NewContext(synth.SampleRate)
	m := &Mixer{channels: make(map[audio.Cue]*channel, len(audio.Cues))}

	for _, c := range audio.Cues {
		data, err := synth.RenderCue(c)
		if err != nil {
			return nil, fmt.Errorf("failed to render cue %s: %w", c, err)
		}

		var p *eaudio.Player
		if c.Looping() {
			loop := eaudio.NewInfiniteLoopF32(bytes.NewReader(data), int64(len(data)))
			p, err = ctx.NewPlayerF32(loop)
			if err != nil {
				return nil, fmt.Errorf("failed to create player for %s: %w", c, err)
			}
		} else {
			p = ctx.NewPlayerF32FromBytes(data)
		}

		vol := tuning.Volume(string(c))
		if c == audio.Atmosphere {
			vol = tuning.MusicVolume
		}
		p.SetVolume(vol)
		m.channels[c] = &channel{player: p, volume: vol}
	}

	log.Printf("Mixer: %d cues ready at %d Hz", len(m.channels), synth.SampleRate)
	return m, nil
}

// Play restarts the cue from the beginning at full channel volume.
func (m *Mixer) Play(c audio.Cue) {
	ch, ok := m.channels[c]
	if !ok {
		return
	}
	ch.fade = fade{}
	ch.player.Pause()
	if err := ch.player.Rewind(); err != nil {
		log.Printf("Mixer: failed to rewind %s: %v", c, err)
	}
	ch.player.SetVolume(ch.volume)
	ch.player.Play()
}

func (m *Mixer) Stop(c audio.Cue) {
	if ch, ok := m.channels[c]; ok {
		ch.fade = fade{}
		ch.player.Pause()
		ch.player.SetVolume(ch.volume)
	}
}

func (m *Mixer) IsPlaying(c audio.Cue) bool {
	ch, ok := m.channels[c]
	return ok && ch.player.IsPlaying()
}

// Fadeout ramps the cue down over d. Update must be called every tick.
func (m *Mixer) Fadeout(c audio.Cue, d time.Duration) {
	ch, ok := m.channels[c]
	if !ok || !ch.player.IsPlaying() {
		return
	}
	if d <= 0 {
		m.Stop(c)
		return
	}
	ch.fade = fade{remaining: d, total: d}
}

func (m *Mixer) Busy() (playing, total int) {
	for _, ch := range m.channels {
		if ch.player.IsPlaying() {
			playing++
		}
	}
	return playing, len(m.channels)
}

// Update advances running fades by dt.
func (m *Mixer) Update(dt time.Duration) {
	for _, ch := range m.channels {
		if !ch.fade.active() {
			continue
		}
		vol, done := ch.fade.step(ch.volume, dt)
		if done {
			ch.player.Pause()
			ch.player.SetVolume(ch.volume)
			continue
		}
		ch.player.SetVolume(vol)
	}
}
