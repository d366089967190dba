// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"

	"github.com/hajimehoshi/ebiten/v2"

	"go-turret-sentinel/internal/app"
	"go-turret-sentinel/internal/assets"
	"go-turret-sentinel/internal/audio"
	"go-turret-sentinel/internal/audio/mixer"
	"go-turret-sentinel/internal/config"
	"go-turret-sentinel/internal/state"
)

type AppGame struct {
	stateMachine *state.StateMachine
}

func (a *AppGame) Update() error {
	a.stateMachine.Update(1.0 / config.TPS)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	tuningPath := flag.String("tuning", "", "path to a JSON tuning file")
	seed := flag.Int64("seed", 0, "random seed, 0 uses the clock")
	debug := flag.Bool("debug", false, "start with the debug overlay on")
	rain := flag.Bool("rain", false, "start with rain")
	mute := flag.Bool("mute", false, "disable audio output")
	music := flag.Bool("music", true, "play the atmosphere loop")
	pprofAddr := flag.String("pprof", "", "serve pprof on this address, e.g. localhost:6060")
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	tuning, err := config.LoadTuning(*tuningPath)
	if err != nil {
		log.Fatalf("Failed to load tuning: %v", err)
	}

	var player audio.Player = audio.NullPlayer{}
	if !*mute {
		m, err := mixer.New(tuning.Audio)
		if err != nil {
			log.Fatalf("Failed to start audio: %v", err)
		}
		player = m
	}

	sprites, err := assets.Load()
	if err != nil {
		log.Fatalf("Failed to load sprites: %v", err)
	}

	game := app.NewGame(tuning, player, app.Options{
		Seed:  *seed,
		Debug: *debug,
		Rain:  *rain,
		Music: *music && !*mute,
	})

	sm := state.NewStateMachine()
	sm.SetState(state.NewGameState(sm, game, sprites))

	ebiten.SetTPS(config.TPS)
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	if err := ebiten.RunGame(&AppGame{stateMachine: sm}); err != nil {
		log.Fatal(err)
	}
}
