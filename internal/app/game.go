// internal/app/game.go
package app

import (
	"fmt"
	"log"
	"time"

	"go-turret-sentinel/internal/audio"
	"go-turret-sentinel/internal/config"
	"go-turret-sentinel/internal/entity"
	"go-turret-sentinel/internal/event"
	"go-turret-sentinel/internal/system"
	"go-turret-sentinel/internal/utils"
	"go-turret-sentinel/pkg/geom"
)

// Options are the startup switches from the command line.
type Options struct {
	Seed  int64
	Debug bool
	Rain  bool
	Music bool
}

// fadeUpdater is implemented by players that run fades per tick.
type fadeUpdater interface {
	Update(dt time.Duration)
}

// Game holds the simulation and its systems. It knows nothing about the
// window or the input device.
type Game struct {
	World           *entity.World
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService
	Tuning          config.Tuning

	TurretSystem  *system.TurretSystem
	FiringSystem  *system.FiringSystem
	MobSystem     *system.MobSystem
	WeatherSystem *system.WeatherSystem
	SoundSystem   *system.SoundSystem

	player   audio.Player
	isPaused bool
	started  time.Time
}

// NewGame wires the world and every system. player must not be nil; pass
// audio.NullPlayer{} to run silent.
func NewGame(tuning config.Tuning, player audio.Player, opts Options) *Game {
	if player == nil {
		panic("app: NewGame requires an audio player")
	}

	world := entity.NewWorld(tuning)
	world.Debug = opts.Debug
	world.Mobs.LogRejections = opts.Debug

	dispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(opts.Seed)

	g := &Game{
		World:           world,
		EventDispatcher: dispatcher,
		Rng:             rng,
		Tuning:          tuning,
		TurretSystem:    system.NewTurretSystem(world, dispatcher, tuning.Turret),
		FiringSystem:    system.NewFiringSystem(world, dispatcher, rng, tuning.Firing),
		MobSystem:       system.NewMobSystem(world, dispatcher, rng),
		WeatherSystem:   system.NewWeatherSystem(world, dispatcher, rng, tuning.Weather),
		SoundSystem:     system.NewSoundSystem(world, dispatcher, player, tuning.Audio),
		player:          player,
		started:         time.Now(),
	}

	if opts.Rain {
		g.WeatherSystem.SetRain(true)
	}
	if opts.Music {
		g.SoundSystem.SetMusic(true)
	}

	log.Printf("Game: started with seed %d", rng.Seed())
	return g
}

// Update advances the simulation by one tick.
func (g *Game) Update() {
	if g.isPaused {
		return
	}
	dt := 1.0 / config.TPS
	g.World.Tick++
	g.World.GameTime += dt

	g.TurretSystem.Update()
	g.FiringSystem.Update()
	g.WeatherSystem.Update(dt)
	g.SoundSystem.Update()

	if f, ok := g.player.(fadeUpdater); ok {
		f.Update(time.Second / config.TPS)
	}
}

// HandleLeftClick spawns a mob at the cursor.
func (g *Game) HandleLeftClick(pos geom.Point) entity.SpawnResult {
	return g.MobSystem.Spawn(pos)
}

// HandleRightClick removes the oldest mob.
func (g *Game) HandleRightClick() bool {
	return g.MobSystem.KillOldest()
}

func (g *Game) ToggleDebug() {
	g.World.Debug = !g.World.Debug
	g.World.Mobs.LogRejections = g.World.Debug
}

func (g *Game) ToggleRain() {
	g.WeatherSystem.ToggleRain()
}

func (g *Game) ToggleMusic() {
	g.SoundSystem.ToggleMusic()
}

// SetPaused freezes the simulation and silences every channel.
func (g *Game) SetPaused(paused bool) {
	if g.isPaused == paused {
		return
	}
	g.isPaused = paused
	if paused {
		g.SoundSystem.Silence()
	} else {
		g.SoundSystem.Resume()
	}
}

func (g *Game) IsPaused() bool {
	return g.isPaused
}

// Elapsed is the wall time since start, shown in the debug overlay.
func (g *Game) Elapsed() time.Duration {
	return time.Since(g.started)
}

// DebugLines returns the overlay text for the current state.
func (g *Game) DebugLines(fps float64, elapsed time.Duration) []string {
	w := g.World
	frame := w.Frame()
	detected := "None"
	if target, ok := w.Turret.Target(); ok {
		detected = fmt.Sprintf("(%.0f, %.0f)", target.X, target.Y)
	}
	playing, total := g.SoundSystem.Busy()

	return []string{
		fmt.Sprintf("Duration : %s", utils.FormatHMS(elapsed.Seconds())),
		fmt.Sprintf("Window size : %dx%d", config.ScreenWidth, config.ScreenHeight),
		fmt.Sprintf("FPS : %.2f", fps),
		fmt.Sprintf("Turret size = %dx%d", int(frame.SmallSide+0.5), int(frame.LongSide+0.5)),
		fmt.Sprintf("Turret angle : %d", int(w.Turret.DisplayAngle())),
		fmt.Sprintf("Turret speed : %g", w.Turret.Speed),
		fmt.Sprintf("Turret mode : %s", w.Turret.Mode),
		fmt.Sprintf("Maximum mobs : %d", w.Mobs.Capacity()),
		fmt.Sprintf("Living mobs : %d", w.Mobs.Len()),
		fmt.Sprintf("Detected mob : %s", detected),
		fmt.Sprintf("Sounds playing : %d/%d", playing, total),
		fmt.Sprintf("Strong wind : %t", w.Weather.StrongWind.Active()),
		fmt.Sprintf("Lightning : %t", w.Weather.Lightning.Active()),
	}
}
