package mixer

import "time"

// fade is a linear ramp to silence.
type fade struct {
	remaining time.Duration
	total     time.Duration
}

func (f fade) active() bool {
	return f.total > 0
}

// step advances the fade and returns the volume to apply, or done when the
// ramp has reached zero.
func (f *fade) step(base float64, dt time.Duration) (vol float64, done bool) {
	f.remaining -= dt
	if f.remaining <= 0 {
		*f = fade{}
		return 0, true
	}
	return base * float64(f.remaining) / float64(f.total), false
}
