// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает партию: мир не тикается и остаётся
// неизменным до возобновления.
type PauseState struct {
	sm       *StateMachine
	previous *GameState
}

func NewPauseState(sm *StateMachine, previous *GameState) *PauseState {
	return &PauseState{sm: sm, previous: previous}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.previous.game.SetPaused(false)
		s.sm.SetState(s.previous)
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		s.previous.game.ToggleMute()
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	// Замороженный мир остаётся видимым под оверлеем
	s.previous.Draw(screen)
	s.previous.hud.DrawPauseOverlay(screen)
}

func (s *PauseState) Exit() {}
