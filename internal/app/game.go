// internal/app/game.go
package app

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/nxu-game/gaze-laser-game/internal/assets"
	"github.com/nxu-game/gaze-laser-game/internal/component"
	"github.com/nxu-game/gaze-laser-game/internal/config"
	"github.com/nxu-game/gaze-laser-game/internal/entity"
	"github.com/nxu-game/gaze-laser-game/internal/event"
	"github.com/nxu-game/gaze-laser-game/internal/system"
	"github.com/nxu-game/gaze-laser-game/internal/utils"
	"github.com/nxu-game/gaze-laser-game/internal/vision"
)

// Game связывает все подсистемы и выполняет один игровой тик в
// фиксированном порядке: прицел → спавн → физика → счёт → эффекты.
// Мир мутируется только из этого потока; горутина захвата общается
// с тиком исключительно через атомарный слот снимков.
type Game struct {
	World      *entity.World
	Dispatcher *event.Dispatcher
	Audio      *assets.AudioManager

	source  vision.Source
	mapper  *vision.Mapper
	spawn   *system.SpawnSystem
	physics *system.PhysicsSystem
	scoring *system.ScoringSystem
	effects *system.EffectsSystem
	render  *system.RenderSystem

	aim          component.AimState
	frame        image.Image
	lastSnap     *vision.Snapshot
	fireCooldown float64
	beamSuppress float64
}

// NewGame собирает игру вокруг общего диспетчера событий.
// source может быть nil (игра без камеры: прицел остаётся
// в нейтральном состоянии).
func NewGame(source vision.Source, audio *assets.AudioManager, dispatcher *event.Dispatcher, seed int64) *Game {
	world := entity.NewWorld()
	rng := utils.NewPRNGService(seed)

	g := &Game{
		World:      world,
		Dispatcher: dispatcher,
		Audio:      audio,
		source:     source,
		mapper:     vision.NewMapper(config.ScreenWidth, config.ScreenHeight, config.NoseTouchDistance, config.FireDebounceTicks),
		spawn:      system.NewSpawnSystem(world, rng),
		physics:    system.NewPhysicsSystem(world),
		scoring:    system.NewScoringSystem(world, dispatcher),
		render:     system.NewRenderSystem(world),
	}
	g.effects = system.NewEffectsSystem(world, dispatcher)
	g.aim = g.mapper.Last()
	return g
}

// Update выполняет один тик игровой логики. Вызывается только в фазе
// Playing: пауза и конец партии замораживают спавн, физику и счёт.
func (g *Game) Update(deltaTime float64) {
	session := g.World.Session
	if session.Paused() || session.GameOver() {
		return
	}

	g.World.GameTime += deltaTime
	if g.fireCooldown > 0 {
		g.fireCooldown -= deltaTime
	}
	if g.beamSuppress > 0 {
		g.beamSuppress -= deltaTime
	}

	// Неразрушающее чтение последнего снимка. Прицел и debounce жеста
	// продвигаются только на свежем снимке: камера работает медленнее
	// игрового цикла, и один кадр лежит в слоте несколько тиков.
	// Устаревший тик переиспользует предыдущее состояние прицела.
	if g.source != nil {
		if snap := g.source.Latest(); snap != nil && snap != g.lastSnap {
			g.lastSnap = snap
			if snap.Frame != nil {
				g.frame = snap.Frame
			}
			aim, fireEdge := g.mapper.Update(&snap.Keypoints)
			g.aim = aim
			if fireEdge {
				g.FireStrongShot()
			}
		}
	}
	aim := g.aim

	g.spawn.Update(deltaTime, aim)
	events := g.physics.Step(deltaTime, aim, g.BeamActive())
	g.scoring.Process(events)
	g.effects.Update(deltaTime)
}

// FireStrongShot выпускает сильный выстрел из точки прицеливания.
// Уважает кулдаун; на время полёта подавляет прицельные лучи.
// Используется и жестом, и отладочной клавишей.
func (g *Game) FireStrongShot() {
	if g.fireCooldown > 0 || !g.aim.Valid {
		return
	}
	g.fireCooldown = config.FireCooldown
	g.beamSuppress = config.BeamSuppressAfter

	g.World.Shots = append(g.World.Shots, &component.LaserShot{
		ID:       g.World.NewEntityID(),
		Position: g.aim.Origin,
		Velocity: g.aim.Direction.Scale(config.ShotSpeed),
		Radius:   config.ShotRadius,
		TTL:      config.ShotTTL,
	})
	g.Dispatcher.Emit(event.StrongLaserFired, nil)
}

// BeamActive сообщает, действует ли сейчас прицельный луч
func (g *Game) BeamActive() bool {
	return g.beamSuppress <= 0 && g.aim.Valid
}

// Aim возвращает текущее состояние прицела
func (g *Game) Aim() component.AimState {
	return g.aim
}

// SetPaused переводит партию в паузу или обратно.
// Мир при этом не тикается и остаётся неизменным.
func (g *Game) SetPaused(paused bool) {
	session := g.World.Session
	if session.GameOver() {
		return
	}
	if paused {
		session.Phase = component.PhasePaused
		if g.Audio != nil {
			g.Audio.PauseMusic()
		}
	} else {
		session.Phase = component.PhasePlaying
		if g.Audio != nil {
			g.Audio.ResumeMusic()
		}
	}
}

// Restart сбрасывает партию к начальным значениям
func (g *Game) Restart() {
	g.World.Reset()
	g.fireCooldown = 0
	g.beamSuppress = 0
	g.Dispatcher.Emit(event.GameRestarted, nil)
}

// ToggleMute переключает звук
func (g *Game) ToggleMute() {
	if g.Audio == nil {
		return
	}
	g.World.Session.Muted = g.Audio.ToggleMute()
}

// Draw отрисовывает мир (без HUD и оверлеев)
func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(screen, g.frame, g.aim, g.BeamActive())
}
