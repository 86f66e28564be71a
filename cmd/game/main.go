// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/nxu-game/gaze-laser-game/internal/app"
	"github.com/nxu-game/gaze-laser-game/internal/assets"
	"github.com/nxu-game/gaze-laser-game/internal/config"
	"github.com/nxu-game/gaze-laser-game/internal/defs"
	"github.com/nxu-game/gaze-laser-game/internal/event"
	"github.com/nxu-game/gaze-laser-game/internal/state"
	"github.com/nxu-game/gaze-laser-game/internal/ui"
	"github.com/nxu-game/gaze-laser-game/internal/vision"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	cameraID := flag.Int("camera", 0, "индекс камеры")
	sidecarURL := flag.String("sidecar", "ws://127.0.0.1:8765/landmarks", "адрес MediaPipe-сайдкара")
	assetsDir := flag.String("assets", "assets", "каталог ассетов")
	targetsPath := flag.String("targets", "assets/targets.json", "файл определений целей")
	seed := flag.Int64("seed", 0, "сид генератора случайных чисел (0 — от времени)")
	flag.Parse()

	if err := defs.LoadTargetDefinitions(*targetsPath); err != nil {
		log.Fatal(err)
	}

	dispatcher := event.NewDispatcher()
	audio := assets.NewAudioManager(*assetsDir, dispatcher)

	// Недоступный сайдкар не фатален: прицел останется нейтральным
	var detector vision.Detector
	detector, err := vision.NewBridgeDetector(*sidecarURL)
	if err != nil {
		log.Printf("landmark sidecar unavailable, aiming disabled: %v", err)
		detector = vision.NopDetector{}
	}

	// Недоступная камера — фатальная ошибка старта
	source, err := vision.NewCaptureSource(*cameraID, config.ScreenWidth, config.ScreenHeight, detector)
	if err != nil {
		log.Fatal(err)
	}
	source.Start()
	defer source.Close()

	game := app.NewGame(source, audio, dispatcher, *seed)
	audio.StartMusic()

	sm := state.NewStateMachine()
	sm.SetState(state.NewGameState(sm, game, ui.NewHUD(*assetsDir)))

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Gaze Laser Game")
	if err := ebiten.RunGame(&AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}); err != nil {
		log.Fatal(err)
	}
}
