// internal/synth/bank.go
package synth

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"

	"go-turret-sentinel/internal/audio"
)

// SampleRate matches the ebiten audio context.
const SampleRate = 44100

// Rate is SampleRate as a beep type.
var Rate = beep.SampleRate(SampleRate)

const noiseSeed = 7

// Streamer builds the finite streamer for a cue. Looping cues are rendered
// as one period and looped by the player.
func Streamer(c audio.Cue) (beep.Streamer, error) {
	rng := rand.New(rand.NewSource(noiseSeed))
	ms := time.Millisecond

	switch c {
	case audio.Sentinel:
		// Radar ping followed by a pause; the sweep loop re-triggers it.
		ping, err := tone(660, 140*ms, 5*ms, 120*ms)
		if err != nil {
			return nil, err
		}
		return beep.Seq(ping, beep.Silence(Rate.N(1100*ms))), nil

	case audio.Alert:
		hi := newEnvelope(newOscillator(880, 880, 150*ms, WaveSquare, rng), 150*ms, 5*ms, 40*ms)
		lo := newEnvelope(newOscillator(660, 660, 150*ms, WaveSquare, rng), 150*ms, 5*ms, 40*ms)
		return newVolume(beep.Seq(hi, beep.Silence(Rate.N(60*ms)), lo, beep.Silence(Rate.N(240*ms))), 0.4), nil

	case audio.Deploy:
		whine := newEnvelope(newOscillator(90, 260, 500*ms, WaveSaw, rng), 500*ms, 40*ms, 120*ms)
		clank := newEnvelope(newOscillator(0, 0, 80*ms, WaveNoise, rng), 80*ms, 2*ms, 60*ms)
		return beep.Seq(newVolume(whine, 0.5), newLowpass(clank, 0.3)), nil

	case audio.Steam:
		hiss := newEnvelope(newOscillator(0, 0, 900*ms, WaveNoise, rng), 900*ms, 30*ms, 500*ms)
		return newVolume(newLowpass(hiss, 0.45), 0.7), nil

	case audio.Fire:
		thump, err := tone(70, 250*ms, 2*ms, 200*ms)
		if err != nil {
			return nil, err
		}
		crack := newEnvelope(newOscillator(0, 0, 120*ms, WaveNoise, rng), 120*ms, 1*ms, 100*ms)
		return beep.Mix(thump, newVolume(crack, 0.6)), nil

	case audio.Destroy:
		boom := newEnvelope(newOscillator(0, 0, 900*ms, WaveNoise, rng), 900*ms, 2*ms, 850*ms)
		rumble := newEnvelope(newOscillator(60, 35, 900*ms, WaveSine, rng), 900*ms, 2*ms, 800*ms)
		return beep.Mix(newLowpass(boom, 0.12), newVolume(rumble, 0.8)), nil

	case audio.Rain:
		patter := newOscillator(0, 0, 4*time.Second, WaveNoise, rng)
		return newVolume(newLowpass(patter, 0.35), 0.35), nil

	case audio.Wind:
		gust := newOscillator(0, 0, 6*time.Second, WaveNoise, rng)
		return newVolume(newTremolo(newLowpass(gust, 0.02), 0.6, 2, 6*time.Second), 1.5), nil

	case audio.StrongWind:
		gust := newEnvelope(newOscillator(0, 0, 5*time.Second, WaveNoise, rng), 5*time.Second, 1200*ms, 1500*ms)
		return newVolume(newTremolo(newLowpass(gust, 0.04), 0.4, 3, 5*time.Second), 2), nil

	case audio.Thunder:
		roll := newEnvelope(newOscillator(0, 0, 2500*ms, WaveNoise, rng), 2500*ms, 10*ms, 2300*ms)
		return newVolume(newLowpass(newLowpass(roll, 0.05), 0.2), 3), nil

	case audio.Spawn:
		blip := newEnvelope(newOscillator(300, 900, 220*ms, WaveSine, rng), 220*ms, 5*ms, 120*ms)
		return newVolume(blip, 0.5), nil

	case audio.Atmosphere:
		length := 8 * time.Second
		var voices []beep.Streamer
		for _, f := range []float64{55, 82.5, 110} {
			s, err := generators.SineTone(Rate, f)
			if err != nil {
				return nil, fmt.Errorf("failed to create drone at %.1f Hz: %w", f, err)
			}
			voices = append(voices, newVolume(beep.Take(Rate.N(length), s), 0.25))
		}
		return newTremolo(beep.Mix(voices...), 0.5, 1, length), nil
	}
	return nil, fmt.Errorf("unknown cue %q", c)
}

func tone(freq float64, d, attack, release time.Duration) (beep.Streamer, error) {
	s, err := generators.SineTone(Rate, freq)
	if err != nil {
		return nil, fmt.Errorf("failed to create %.0f Hz tone: %w", freq, err)
	}
	return newEnvelope(beep.Take(Rate.N(d), s), d, attack, release), nil
}

// Render drains s into interleaved little-endian float32 stereo PCM, the
// format ebiten's F32 players read.
func Render(s beep.Streamer) []byte {
	buf := make([][2]float64, 512)
	var out []byte
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			for _, v := range frame {
				v = math.Max(-1, math.Min(1, v))
				out = binary.LittleEndian.AppendUint32(out, math.Float32bits(float32(v)))
			}
		}
		if !ok || n == 0 {
			return out
		}
	}
}

// RenderCue builds and renders a cue.
func RenderCue(c audio.Cue) ([]byte, error) {
	s, err := Streamer(c)
	if err != nil {
		return nil, err
	}
	return Render(s), nil
}
