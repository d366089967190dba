package mixer

import (
	"math"
	"testing"
	"time"
)

func TestFadeRamp(t *testing.T) {
	f := fade{remaining: 2 * time.Second, total: 2 * time.Second}
	if !f.active() {
		t.Fatal("new fade must be active")
	}

	steps := []struct {
		dt   time.Duration
		want float64
	}{
		{500 * time.Millisecond, 0.6},
		{time.Second, 0.2},
	}
	for _, s := range steps {
		vol, done := f.step(0.8, s.dt)
		if done || math.Abs(vol-s.want) > 1e-9 {
			t.Errorf("step %v: vol %v done %v, want %v", s.dt, vol, done, s.want)
		}
	}
	if _, done := f.step(0.8, time.Second); !done {
		t.Error("fade should finish past its length")
	}
	if f.active() {
		t.Error("finished fade must reset")
	}
}

func TestZeroFadeIsInactive(t *testing.T) {
	var f fade
	if f.active() {
		t.Error("zero fade must be inactive")
	}
}
