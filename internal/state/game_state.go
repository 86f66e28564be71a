// internal/state/game_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/nxu-game/gaze-laser-game/internal/app"
	"github.com/nxu-game/gaze-laser-game/internal/ui"
)

// GameState — активная партия
type GameState struct {
	sm   *StateMachine
	game *app.Game
	hud  *ui.HUD
}

func NewGameState(sm *StateMachine, game *app.Game, hud *ui.HUD) *GameState {
	return &GameState{sm: sm, game: game, hud: hud}
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.game.SetPaused(true)
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		// Отладочный выстрел без жеста
		g.game.FireStrongShot()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.game.ToggleMute()
	}

	g.game.Update(deltaTime)

	if g.game.World.Session.GameOver() {
		g.sm.SetState(NewGameOverState(g.sm, g))
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.game.Draw(screen)
	g.hud.Draw(screen, g.game.World.Session, ebiten.ActualTPS())
}

func (g *GameState) Exit() {}
