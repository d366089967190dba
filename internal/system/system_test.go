package system

import (
	"testing"
	"time"

	"go-turret-sentinel/internal/audio"
	"go-turret-sentinel/internal/component"
	"go-turret-sentinel/internal/config"
	"go-turret-sentinel/internal/entity"
	"go-turret-sentinel/internal/event"
	"go-turret-sentinel/internal/utils"
	"go-turret-sentinel/pkg/geom"
)

type rig struct {
	world   *entity.World
	events  *event.Dispatcher
	turret  *TurretSystem
	firing  *FiringSystem
	mobs    *MobSystem
	weather *WeatherSystem
	log     []event.Event
}

func newRig(t *testing.T) *rig {
	t.Helper()
	tuning := config.DefaultTuning()
	prng := utils.NewPRNGService(1)
	r := &rig{
		world:  entity.NewWorld(tuning),
		events: event.NewDispatcher(),
	}
	// Subscribed first so nested dispatches are recorded in causal order.
	r.events.SubscribeAll(event.ListenerFunc(func(e event.Event) { r.log = append(r.log, e) }),
		event.ModeEntered, event.ModeExited, event.TargetLatched, event.TargetReleased,
		event.MobSpawned, event.MobRemoved, event.SteamReleased, event.ProjectileFired,
		event.MobDestroyed, event.ExplosionFinished)
	r.turret = NewTurretSystem(r.world, r.events, tuning.Turret)
	r.firing = NewFiringSystem(r.world, r.events, prng, tuning.Firing)
	r.mobs = NewMobSystem(r.world, r.events, prng)
	r.weather = NewWeatherSystem(r.world, r.events, prng, tuning.Weather)
	return r
}

func (r *rig) tick() {
	r.turret.Update()
	r.firing.Update()
}

func (r *rig) count(et event.EventType) int {
	n := 0
	for _, e := range r.log {
		if e.Type == et {
			n++
		}
	}
	return n
}

func (r *rig) spawn(t *testing.T, p geom.Point) {
	t.Helper()
	if res := r.mobs.Spawn(p); res != entity.SpawnOK {
		t.Fatalf("spawn at %v: %s", p, res)
	}
}

func TestResolveMode(t *testing.T) {
	tests := []struct {
		laser, cannon bool
		want          component.Mode
	}{
		{false, false, component.ModeSearching},
		{true, false, component.ModeAlert},
		{false, true, component.ModeFiring},
		{true, true, component.ModeFiring},
	}
	for _, tt := range tests {
		if got := ResolveMode(tt.laser, tt.cannon); got != tt.want {
			t.Errorf("ResolveMode(%v, %v) = %s, want %s", tt.laser, tt.cannon, got, tt.want)
		}
	}
}

func TestLaserHitSlowsTheSweep(t *testing.T) {
	r := newRig(t)
	r.spawn(t, geom.Pt(552, 100)) // on the laser line at 0°

	r.tick()
	tr := r.world.Turret
	if tr.Mode != component.ModeAlert {
		t.Fatalf("mode %s, want alert", tr.Mode)
	}
	if tr.Angle != 0.1 {
		t.Errorf("angle %v after one alert tick, want 0.1", tr.Angle)
	}
	if _, held := tr.Target(); held {
		t.Error("a laser hit must not latch a target")
	}
	if r.count(event.ModeEntered) != 1 || r.count(event.ModeExited) != 1 {
		t.Errorf("expected one edge pair, got %d entered / %d exited", r.count(event.ModeEntered), r.count(event.ModeExited))
	}
}

func TestCannonHitLatchesAndHolds(t *testing.T) {
	r := newRig(t)
	target := geom.Pt(600, 100) // on the firing line at 0°
	r.spawn(t, target)

	r.tick()
	tr := r.world.Turret
	if tr.Mode != component.ModeFiring {
		t.Fatalf("mode %s, want fire", tr.Mode)
	}
	if got, held := tr.Target(); !held || got != target {
		t.Fatalf("latched %v (%v), want %v", got, held, target)
	}
	if tr.Angle != 0 {
		t.Errorf("firing must hold the angle, got %v", tr.Angle)
	}
	if !r.world.Firing.Active() || r.world.Firing.Phase != component.FiringSteam {
		t.Errorf("sequence phase %s, want steam", r.world.Firing.Phase)
	}
}

func TestFullDestroySequence(t *testing.T) {
	r := newRig(t)
	target := geom.Pt(600, 100)
	r.spawn(t, target)

	sawDebris := false
	for i := 0; i < 1000 && r.world.Mobs.Len() > 0; i++ {
		r.tick()
		if m := r.world.Mobs.Find(target); m != nil && m.Destroyed {
			sawDebris = true
			if m.DebrisRotation < 1 || m.DebrisRotation > 270 {
				t.Fatalf("debris rotation %v out of range", m.DebrisRotation)
			}
			if r.world.Turret.Mode != component.ModeFiring {
				t.Fatal("debris must keep the cannon locked")
			}
		}
	}
	if r.world.Mobs.Len() != 0 {
		t.Fatal("mob was never removed")
	}
	if !sawDebris {
		t.Error("mob was removed without a debris phase")
	}

	want := []event.EventType{
		event.MobSpawned, event.ModeExited, event.ModeEntered, event.TargetLatched,
		event.SteamReleased, event.ProjectileFired, event.MobDestroyed,
		event.MobRemoved, event.ExplosionFinished, event.TargetReleased,
	}
	if len(r.log) != len(want) {
		t.Fatalf("got %d events, want %d: %v", len(r.log), len(want), r.log)
	}
	for i, e := range r.log {
		if e.Type != want[i] {
			t.Errorf("event %d = %s, want %s", i, e.Type, want[i])
		}
	}

	r.tick()
	if r.world.Turret.Mode != component.ModeSearching || r.world.Turret.Angle == 0 {
		t.Errorf("turret should resume searching, mode %s angle %v", r.world.Turret.Mode, r.world.Turret.Angle)
	}
	if r.world.Firing.Destroyed != 1 {
		t.Errorf("destroyed count %d, want 1", r.world.Firing.Destroyed)
	}
}

func TestTwoMobsOnOneLineAreDestroyedInSpawnOrder(t *testing.T) {
	r := newRig(t)
	far, near := geom.Pt(600, 100), geom.Pt(600, 200)
	r.spawn(t, far)
	r.spawn(t, near)

	var latched []geom.Point
	r.events.Subscribe(event.TargetLatched, event.ListenerFunc(func(e event.Event) {
		latched = append(latched, e.Data.(event.PointData).Position)
	}))

	for i := 0; i < 2000 && r.world.Mobs.Len() > 0; i++ {
		r.tick()
	}
	if r.world.Mobs.Len() != 0 {
		t.Fatalf("%d mobs left", r.world.Mobs.Len())
	}
	if len(latched) != 2 || latched[0] != far || latched[1] != near {
		t.Errorf("latch order %v, want [%v %v]", latched, far, near)
	}
	if r.world.Firing.Destroyed != 2 {
		t.Errorf("destroyed %d, want 2", r.world.Firing.Destroyed)
	}
	entered := 0
	for _, e := range r.log {
		if e.Type == event.ModeEntered && e.Data.(event.ModeChange).To == component.ModeFiring {
			entered++
		}
	}
	if entered != 1 {
		t.Errorf("firing entered %d times, want once", entered)
	}
}

func TestKillingTheTargetAbortsTheSequence(t *testing.T) {
	r := newRig(t)
	r.spawn(t, geom.Pt(600, 100))

	for i := 0; i < 1000 && r.world.Firing.Phase != component.FiringTravel; i++ {
		r.tick()
	}
	if r.world.Firing.Phase != component.FiringTravel {
		t.Fatal("projectile never launched")
	}
	if !r.mobs.KillOldest() {
		t.Fatal("KillOldest found nothing")
	}

	r.tick()
	if r.world.Firing.Active() {
		t.Errorf("sequence still active in phase %s", r.world.Firing.Phase)
	}
	if _, held := r.world.Turret.Target(); held {
		t.Error("target still latched")
	}
	if r.world.Turret.Mode != component.ModeSearching {
		t.Errorf("mode %s, want sentinel", r.world.Turret.Mode)
	}
	if r.world.Firing.Destroyed != 0 {
		t.Error("an aborted sequence must not count as destroyed")
	}
}

func TestKillingTheTargetHandsOverToTheNextMob(t *testing.T) {
	tests := []struct {
		name  string
		phase component.FiringPhase
	}{
		{"during travel", component.FiringTravel},
		{"during explosion", component.FiringExplode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig(t)
			near, far := geom.Pt(600, 100), geom.Pt(600, 200)
			r.spawn(t, near)
			r.spawn(t, far)

			for i := 0; i < 1000 && r.world.Firing.Phase != tt.phase; i++ {
				r.tick()
			}
			if r.world.Firing.Phase != tt.phase {
				t.Fatalf("sequence never reached %s", tt.phase)
			}
			if !r.mobs.KillOldest() {
				t.Fatal("KillOldest found nothing")
			}

			r.tick()
			if held, ok := r.world.Turret.Target(); ok && held == near {
				t.Fatal("turret still latched on the removed mob")
			}

			for i := 0; i < 3000 && r.world.Mobs.Len() > 0; i++ {
				r.tick()
			}
			if r.world.Mobs.Has(far) {
				t.Fatalf("far mob never destroyed, mode %s, firing %s", r.world.Turret.Mode, r.world.Firing.Phase)
			}
			if r.world.Firing.Destroyed != 1 {
				t.Errorf("destroyed %d, want 1", r.world.Firing.Destroyed)
			}
			if got := r.count(event.TargetLatched); got != 2 {
				t.Errorf("TargetLatched sent %d times, want 2", got)
			}
			if got := r.count(event.ModeEntered); got != 1 {
				t.Errorf("Firing should be entered once, ModeEntered sent %d times", got)
			}

			r.tick()
			if _, held := r.world.Turret.Target(); held {
				t.Error("target still latched after the last mob")
			}
			if r.world.Turret.Mode == component.ModeFiring {
				t.Error("turret still firing at an empty line")
			}
		})
	}
}

func TestProjectileFlickerAndHit(t *testing.T) {
	tuning := config.DefaultTuning().Firing
	prng := utils.NewPRNGService(3)
	p := launchProjectile(geom.Pt(0, 0), geom.Pt(0, 100), tuning)

	hit := false
	steps := 0
	for !hit && steps < 100 {
		hit = stepProjectile(&p, tuning, prng)
		steps++
		if p.Radius < 2 || p.Radius > 9 {
			t.Fatalf("radius %v out of range", p.Radius)
		}
		if p.Green < 0 || p.Green >= 255 {
			t.Fatalf("green %d out of range", p.Green)
		}
	}
	if !hit {
		t.Fatal("projectile never hit")
	}
	// 100 px at 3 px/tick lands within 5 px after 32 steps.
	if steps != 32 {
		t.Errorf("hit after %d steps, want 32", steps)
	}
}

func TestWeatherTimerCycle(t *testing.T) {
	prng := utils.NewPRNGService(5)
	gate := config.TimerTuning{Chance: 1000, MinDuration: 0.5, MaxDuration: 0.5, MinCooldown: 1, MaxCooldown: 1}
	var timer component.WeatherTimer
	dt := 1.0 / config.TPS

	started, _ := stepTimer(&timer, gate, dt, prng)
	if !started || !timer.Active() {
		t.Fatal("a certain chance must start the effect at once")
	}
	ticks := 0
	for ended := false; !ended; ticks++ {
		_, ended = stepTimer(&timer, gate, dt, prng)
		if ticks > 100 {
			t.Fatal("effect never ended")
		}
	}
	if ticks < 29 || ticks > 31 {
		t.Errorf("effect lasted %d ticks, want about 30", ticks)
	}
	if timer.Phase != component.TimerCooldown {
		t.Fatalf("phase %v, want cooldown", timer.Phase)
	}
	for i := 0; i < 70 && timer.Phase == component.TimerCooldown; i++ {
		if started, _ := stepTimer(&timer, gate, dt, prng); started {
			t.Fatal("cooldown must not start the effect")
		}
	}
	if timer.Phase != component.TimerIdle {
		t.Errorf("phase %v after cooldown, want idle", timer.Phase)
	}
}

func TestRainToggle(t *testing.T) {
	r := newRig(t)
	w := r.world.Weather

	r.weather.SetRain(true)
	if !w.Raining || len(w.Drops) != config.DefaultTuning().Weather.RainIntensity {
		t.Fatalf("rain on with %d drops", len(w.Drops))
	}
	for i := 0; i < 300; i++ {
		r.weather.Update(1.0 / config.TPS)
	}
	for _, d := range w.Drops {
		if d.Y > config.ScreenHeight {
			t.Fatalf("drop below the screen was not recycled: %+v", d)
		}
	}

	r.weather.ToggleRain()
	if w.Raining || w.Drops != nil || w.Lightning.Active() || w.StrongWind.Active() {
		t.Error("stopping the rain must clear the storm")
	}
}

type fakePlayer struct {
	playing map[audio.Cue]bool
	plays   []audio.Cue
	fades   []audio.Cue
}

func newFakePlayer() *fakePlayer {
	return &fakePlayer{playing: make(map[audio.Cue]bool)}
}

func (f *fakePlayer) Play(c audio.Cue) {
	f.playing[c] = true
	f.plays = append(f.plays, c)
}

func (f *fakePlayer) Stop(c audio.Cue) { f.playing[c] = false }

func (f *fakePlayer) IsPlaying(c audio.Cue) bool { return f.playing[c] }

func (f *fakePlayer) Fadeout(c audio.Cue, _ time.Duration) {
	f.fades = append(f.fades, c)
	f.playing[c] = false
}

func (f *fakePlayer) Busy() (int, int) { return 0, len(audio.Cues) }

func (f *fakePlayer) played(c audio.Cue) int {
	n := 0
	for _, p := range f.plays {
		if p == c {
			n++
		}
	}
	return n
}

func TestSoundFollowsModes(t *testing.T) {
	r := newRig(t)
	player := newFakePlayer()
	sound := NewSoundSystem(r.world, r.events, player, config.DefaultTuning().Audio)

	sound.Update()
	sound.Update()
	if player.played(audio.Sentinel) != 1 {
		t.Errorf("sentinel loop started %d times, want 1", player.played(audio.Sentinel))
	}

	r.spawn(t, geom.Pt(552, 100))
	r.tick()
	sound.Update()
	if player.playing[audio.Sentinel] || !player.playing[audio.Alert] {
		t.Errorf("alert mode: sentinel=%v alert=%v", player.playing[audio.Sentinel], player.playing[audio.Alert])
	}
	if player.played(audio.Spawn) != 1 {
		t.Error("spawn cue missing")
	}
}

func TestSoundOneShotsDuringFiring(t *testing.T) {
	r := newRig(t)
	player := newFakePlayer()
	NewSoundSystem(r.world, r.events, player, config.DefaultTuning().Audio)

	r.spawn(t, geom.Pt(600, 100))
	for i := 0; i < 1000 && r.world.Mobs.Len() > 0; i++ {
		r.tick()
	}
	for _, c := range []audio.Cue{audio.Deploy, audio.Steam, audio.Fire, audio.Destroy} {
		if player.played(c) != 1 {
			t.Errorf("%s played %d times, want 1", c, player.played(c))
		}
	}
}

func TestSoundRainFadesOut(t *testing.T) {
	r := newRig(t)
	player := newFakePlayer()
	sound := NewSoundSystem(r.world, r.events, player, config.DefaultTuning().Audio)

	r.weather.SetRain(true)
	sound.Update()
	if !player.playing[audio.Rain] || !player.playing[audio.Wind] {
		t.Fatal("rain loops not started")
	}
	r.weather.SetRain(false)
	if len(player.fades) != 2 {
		t.Errorf("fades %v, want rain and wind", player.fades)
	}
}
