// internal/audio/audio.go
package audio

import "time"

// Cue names a sound. Every cue owns one channel, so a cue never overlaps
// itself and IsPlaying tells whether its channel is busy.
type Cue string

const (
	Sentinel   Cue = "sentinel"
	Alert      Cue = "alert"
	Deploy     Cue = "deploy"
	Steam      Cue = "steam"
	Fire       Cue = "fire"
	Destroy    Cue = "destroy"
	Rain       Cue = "rain"
	Wind       Cue = "wind"
	StrongWind Cue = "strong_wind"
	Thunder    Cue = "thunder"
	Spawn      Cue = "spawn"
	Atmosphere Cue = "atmosphere" // background music, loops
)

// Cues lists every cue in channel order.
var Cues = []Cue{Sentinel, Alert, Deploy, Steam, Fire, Destroy, Rain, Wind, StrongWind, Thunder, Spawn, Atmosphere}

// Looping reports whether the cue restarts by itself when it ends.
func (c Cue) Looping() bool {
	return c == Atmosphere || c == Rain || c == Wind
}

// Player plays cues. Calls never block the game loop.
type Player interface {
	Play(c Cue)
	Stop(c Cue)
	IsPlaying(c Cue) bool
	// Fadeout lowers the volume to zero over d, then stops the cue.
	Fadeout(c Cue, d time.Duration)
	// Busy returns the number of busy channels and the channel count.
	Busy() (playing, total int)
}

// NullPlayer discards everything. Used with -mute and by the headless viewer.
type NullPlayer struct{}

func (NullPlayer) Play(Cue) {}
func (NullPlayer) Stop(Cue) {}
func (NullPlayer) IsPlaying(Cue) bool { return false }
func (NullPlayer) Fadeout(Cue, time.Duration) {}
func (NullPlayer) Busy() (playing, total int) { return 0, len(Cues) }
